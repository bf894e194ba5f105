package entities

import "time"

type ServiceLogResponse struct {
	ID             int       `json:"id"`
	CarID          int       `json:"car_id"`
	Registration   string    `json:"registration"`
	CarDescription string    `json:"car_description"`
	Category       string    `json:"category"`
	LoggedAt       string    `json:"logged_at"`
	Cost           float64   `json:"cost"`
	Provider       string    `json:"provider"`
	Notes          string    `json:"notes"`
	NextDueDate    *string   `json:"next_due_date"`
	NextDueKM      *float64  `json:"next_due_km"`
	Odometer       *float64  `json:"odometer"`
	CreatedAt      time.Time `json:"created_at"`
}
