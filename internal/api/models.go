package api

// Car
type CreateCarRequest struct {
	Registration string `json:"registration"`
	Description  string `json:"description"`
}
type CreateCarResponse struct {
	ID           int    `json:"id"`
	Registration string `json:"registration"`
}

// Fuel log. Required fields are pointers so that presence is an explicit
// nil check rather than a zero-value sentinel; a literal 0 is a value.
type CreateFuelLogRequest struct {
	CarID        *int     `json:"car_id"`
	LoggedAt     *string  `json:"logged_at"`
	FuelAmount   *float64 `json:"fuel_amount"`
	FuelUnit     *string  `json:"fuel_unit"`
	PricePerUnit *float64 `json:"price_per_unit"`
	Odometer     *float64 `json:"odometer"`
	Notes        *string  `json:"notes"`
}
type CreateFuelLogResponse struct {
	ID        int     `json:"id"`
	TotalCost float64 `json:"total_cost"`
}

// Service log. Same presence convention: cost 0 is a valid cost.
type CreateServiceLogRequest struct {
	CarID       *int     `json:"car_id"`
	Category    *string  `json:"category"`
	LoggedAt    *string  `json:"logged_at"`
	Cost        *float64 `json:"cost"`
	Provider    *string  `json:"provider"`
	Notes       *string  `json:"notes"`
	NextDueDate *string  `json:"next_due_date"`
	NextDueKM   *float64 `json:"next_due_km"`
	Odometer    *float64 `json:"odometer"`
}
type CreateServiceLogResponse struct {
	ID int `json:"id"`
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}
