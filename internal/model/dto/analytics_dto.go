package dto

// FoodWasteResponse reports the waste-diversion estimate.
type FoodWasteResponse struct {
	TotalWasteSavedKg float64 `json:"total_waste_saved_kg"`
	TotalOrders       int64   `json:"total_orders"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status   string `json:"status"`
	App      string `json:"app"`
	Database string `json:"database"`
}

// PopulateResponse summarizes a demo reseed.
type PopulateResponse struct {
	Restaurants int `json:"restaurants"`
	FoodItems   int `json:"food_items"`
}
