package repository

import (
	"database/sql"
	"fmt"

	"fuellogger/internal/db"
	"fuellogger/internal/entities"
)

type FuelLogRepository struct {
	DB *sql.DB
}

func NewFuelLogRepository(database *sql.DB) *FuelLogRepository {
	return &FuelLogRepository{DB: database}
}

// ListFuelLogs returns fuel logs joined with their car, optionally filtered
// to one car, ordered by logged_at ascending. The ascending order is what the
// trip metrics derivation consumes; presentation order is applied later.
func (r *FuelLogRepository) ListFuelLogs(carID *int) ([]entities.FuelLogResponse, error) {
	query := `
		SELECT fl.id, fl.car_id, c.registration, c.description,
		       fl.logged_at, fl.fuel_amount, fl.fuel_unit, fl.price_per_unit,
		       fl.total_cost, fl.odometer, fl.notes, fl.created_at
		FROM fuel_logs fl
		JOIN cars c ON fl.car_id = c.id`

	var rows *sql.Rows
	var err error
	if carID != nil {
		rows, err = r.DB.Query(query+` WHERE fl.car_id = $1 ORDER BY fl.logged_at ASC`, *carID)
	} else {
		rows, err = r.DB.Query(query + ` ORDER BY fl.logged_at ASC`)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying fuel logs: %w", err)
	}
	defer rows.Close()

	logs := []entities.FuelLogResponse{}
	for rows.Next() {
		var l entities.FuelLogResponse
		err := rows.Scan(
			&l.ID, &l.CarID, &l.Registration, &l.CarDescription,
			&l.LoggedAt, &l.FuelAmount, &l.FuelUnit, &l.PricePerUnit,
			&l.TotalCost, &l.Odometer, &l.Notes, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning fuel log: %w", err)
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating fuel log rows: %w", err)
	}
	return logs, nil
}

// CreateFuelLog inserts a fuel log and returns its generated id. TotalCost
// must already be computed; it is persisted as written and never recomputed.
func (r *FuelLogRepository) CreateFuelLog(fl *db.FuelLog) (int, error) {
	query := `
		INSERT INTO fuel_logs
			(car_id, logged_at, fuel_amount, fuel_unit, price_per_unit, total_cost, odometer, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int
	err := r.DB.QueryRow(query,
		fl.CarID,
		fl.LoggedAt,
		fl.FuelAmount,
		fl.FuelUnit,
		fl.PricePerUnit,
		fl.TotalCost,
		fl.Odometer,
		fl.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting fuel log: %w", err)
	}
	return id, nil
}

func (r *FuelLogRepository) DeleteFuelLog(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM fuel_logs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting fuel log %d: %w", id, err)
	}
	return nil
}
