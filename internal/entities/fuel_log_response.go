package entities

import "time"

// FuelLogResponse is one fuel log row joined with its car, plus the trip
// metrics derived from consecutive odometer readings. The derived fields are
// nil when no positive odometer delta exists for the entry.
type FuelLogResponse struct {
	ID             int       `json:"id"`
	CarID          int       `json:"car_id"`
	Registration   string    `json:"registration"`
	CarDescription string    `json:"car_description"`
	LoggedAt       string    `json:"logged_at"`
	FuelAmount     float64   `json:"fuel_amount"`
	FuelUnit       string    `json:"fuel_unit"`
	PricePerUnit   float64   `json:"price_per_unit"`
	TotalCost      float64   `json:"total_cost"`
	Odometer       *float64  `json:"odometer"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`

	DistanceKM        *float64 `json:"distance_km"`
	ConsumptionPer100 *float64 `json:"consumption_per100"`
	RandPerKM         *float64 `json:"rand_per_km"`
	RandPerLitreTrip  *float64 `json:"rand_per_litre_trip"`
}
