package repository

import (
	"database/sql"
	"fmt"

	"fuellogger/internal/entities"
)

// FuelTotals carries the raw aggregates the stats service derives rates from.
// FirstOdo/LastOdo are invalid when no entry in scope has an odometer reading.
type FuelTotals struct {
	TotalEntries    int
	TotalFuel       float64
	TotalSpent      float64
	AvgPricePerUnit float64
	FirstOdo        sql.NullFloat64
	LastOdo         sql.NullFloat64
}

type StatsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(database *sql.DB) *StatsRepository {
	return &StatsRepository{DB: database}
}

func (r *StatsRepository) GetFuelTotals(carID *int) (*FuelTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(fuel_amount), 0),
		       COALESCE(SUM(total_cost), 0),
		       COALESCE(AVG(price_per_unit), 0),
		       MIN(odometer),
		       MAX(odometer)
		FROM fuel_logs`

	var row *sql.Row
	if carID != nil {
		row = r.DB.QueryRow(query+` WHERE car_id = $1`, *carID)
	} else {
		row = r.DB.QueryRow(query)
	}

	var t FuelTotals
	err := row.Scan(&t.TotalEntries, &t.TotalFuel, &t.TotalSpent, &t.AvgPricePerUnit, &t.FirstOdo, &t.LastOdo)
	if err != nil {
		return nil, fmt.Errorf("error scanning fuel totals: %w", err)
	}
	return &t, nil
}

// GetServiceBreakdown sums service costs per category within the scope.
func (r *StatsRepository) GetServiceBreakdown(carID *int) ([]entities.ServiceCategoryTotal, error) {
	query := `
		SELECT category, COALESCE(SUM(cost), 0), COUNT(*)
		FROM service_logs`
	if carID != nil {
		query += ` WHERE car_id = $1`
	}
	query += ` GROUP BY category ORDER BY category`

	var rows *sql.Rows
	var err error
	if carID != nil {
		rows, err = r.DB.Query(query, *carID)
	} else {
		rows, err = r.DB.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying service breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := []entities.ServiceCategoryTotal{}
	for rows.Next() {
		var b entities.ServiceCategoryTotal
		if err := rows.Scan(&b.Category, &b.Total, &b.Count); err != nil {
			return nil, fmt.Errorf("error scanning service breakdown: %w", err)
		}
		breakdown = append(breakdown, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating breakdown rows: %w", err)
	}
	return breakdown, nil
}
