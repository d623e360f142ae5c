// ABOUTME: Mappers convert domain models to response DTOs
// ABOUTME: Keeps JSON shape concerns out of the core packages

package mappers

import (
	"catalog-app-api/api/dto/responses"
	"catalog-app-api/core/domain"
)

// ToItemResponse converts a domain item to its response DTO
func ToItemResponse(item domain.Item) responses.ItemResponse {
	return responses.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       item.Price,
	}
}

// ToListItemsResponse converts one page of items plus metadata to the list DTO
func ToListItemsResponse(items []domain.Item, meta domain.Pagination) responses.ListItemsResponse {
	dtos := make([]responses.ItemResponse, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ToItemResponse(item))
	}

	return responses.ListItemsResponse{
		Items: dtos,
		Pagination: responses.PaginationResponse{
			CurrentPage:  meta.CurrentPage,
			TotalPages:   meta.TotalPages,
			TotalItems:   meta.TotalItems,
			ItemsPerPage: meta.ItemsPerPage,
		},
	}
}

// ToStatsResponse converts domain stats to the response DTO
func ToStatsResponse(stats domain.Stats) responses.StatsResponse {
	categories := stats.Categories
	if categories == nil {
		categories = map[string]int{}
	}

	return responses.StatsResponse{
		TotalItems:   stats.TotalItems,
		AveragePrice: stats.AveragePrice,
		MinPrice:     stats.MinPrice,
		MaxPrice:     stats.MaxPrice,
		Categories:   categories,
	}
}
