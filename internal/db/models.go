package db

import "time"

type Car struct {
	ID           int       `json:"id"`
	Registration string    `json:"registration"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type FuelLog struct {
	ID           int
	CarID        int
	LoggedAt     string
	FuelAmount   float64
	FuelUnit     string
	PricePerUnit float64
	TotalCost    float64
	Odometer     *float64
	Notes        string
	CreatedAt    time.Time
}

type ServiceLog struct {
	ID          int
	CarID       int
	Category    string
	LoggedAt    string
	Cost        float64
	Provider    string
	Notes       string
	NextDueDate *string
	NextDueKM   *float64
	Odometer    *float64
	CreatedAt   time.Time
}
