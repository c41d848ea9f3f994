package dto

// RestaurantCreateRequest is the restaurant signup payload. Coordinates are
// never supplied by the caller; they come from geocoding the address.
type RestaurantCreateRequest struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Address     string `json:"address" binding:"required,min=1,max=255"`
	CuisineType string `json:"cuisine_type" binding:"required,min=1,max=50"`
}
