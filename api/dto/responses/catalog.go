// ABOUTME: Response DTOs for catalog API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID          int    `json:"id" doc:"Unique identifier for the item"`
	Name        string `json:"name" doc:"Item name"`
	Description string `json:"description" doc:"Item description"`
	Category    string `json:"category" doc:"Item category"`
	Price       string `json:"price" doc:"Item price as stored in the catalog"`
}

// PaginationResponse describes the position of the returned page
type PaginationResponse struct {
	CurrentPage  int `json:"current_page" doc:"Page number that was served (1-based)"`
	TotalPages   int `json:"total_pages" doc:"Total number of pages"`
	TotalItems   int `json:"total_items" doc:"Total number of matching items"`
	ItemsPerPage int `json:"items_per_page" doc:"Applied page size"`
}

// ListItemsResponse represents one page of catalog items
type ListItemsResponse struct {
	Items      []ItemResponse     `json:"items" doc:"Items on this page"`
	Pagination PaginationResponse `json:"pagination" doc:"Page metadata"`
}

// StatsResponse represents aggregate catalog statistics
type StatsResponse struct {
	TotalItems   int            `json:"total_items" doc:"Total number of items"`
	AveragePrice float64        `json:"average_price" doc:"Average price rounded to 2 decimal places"`
	MinPrice     float64        `json:"min_price" doc:"Lowest price"`
	MaxPrice     float64        `json:"max_price" doc:"Highest price"`
	Categories   map[string]int `json:"categories" doc:"Item count per category"`
}
