// ABOUTME: Catalog handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for item listing, search and lookup

package handlers

import (
	"context"
	"net/http"

	"catalog-app-api/api/dto/mappers"
	"catalog-app-api/api/dto/responses"
	"catalog-app-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// CatalogService interface defines the methods needed from the catalog service
type CatalogService interface {
	ListItems(ctx context.Context, query string, page, pageSize int) ([]domain.Item, domain.Pagination, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
}

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers all catalog-related routes
func (h *CatalogHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listItems",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "List catalog items",
		Description: "Returns one page of catalog items, optionally filtered by a free-text query",
		Tags:        []string{"Catalog"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID: "getItem",
		Method:      http.MethodGet,
		Path:        "/items/{id}",
		Summary:     "Get a catalog item",
		Description: "Returns a single catalog item by its identifier",
		Tags:        []string{"Catalog"},
	}, h.GetItem)
}

// ListItemsInput defines the input for the ListItems operation.
// Non-positive page and pageSize values are defaulted by the core rather
// than rejected, so no minimum constraints are declared here.
type ListItemsInput struct {
	Query    string `query:"query,omitempty" doc:"Free-text filter over name, description and category"`
	Page     int    `query:"page,omitempty" default:"1" doc:"Page number (1-based)"`
	PageSize int    `query:"pageSize,omitempty" default:"10" doc:"Number of items per page"`
}

// ListItemsOutput defines the output for the ListItems operation
type ListItemsOutput struct {
	Body responses.ListItemsResponse
}

// ListItems handles the GET /items endpoint
func (h *CatalogHandler) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	items, meta, err := h.catalogService.ListItems(ctx, input.Query, input.Page, input.PageSize)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListItemsOutput{
		Body: mappers.ToListItemsResponse(items, meta),
	}, nil
}

// GetItemInput defines the input for the GetItem operation
type GetItemInput struct {
	ID int `path:"id" doc:"Item identifier"`
}

// GetItemOutput defines the output for the GetItem operation
type GetItemOutput struct {
	Body responses.ItemResponse
}

// GetItem handles the GET /items/{id} endpoint
func (h *CatalogHandler) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	item, err := h.catalogService.GetItem(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetItemOutput{
		Body: mappers.ToItemResponse(*item),
	}, nil
}
