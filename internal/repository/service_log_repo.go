package repository

import (
	"database/sql"
	"fmt"

	"fuellogger/internal/db"
	"fuellogger/internal/entities"
)

type ServiceLogRepository struct {
	DB *sql.DB
}

func NewServiceLogRepository(database *sql.DB) *ServiceLogRepository {
	return &ServiceLogRepository{DB: database}
}

// ListServiceLogs returns service logs joined with their car, newest first.
// Both filters are optional and AND-combined when present.
func (r *ServiceLogRepository) ListServiceLogs(carID *int, category string) ([]entities.ServiceLogResponse, error) {
	query := `
		SELECT sl.id, sl.car_id, c.registration, c.description,
		       sl.category, sl.logged_at, sl.cost, sl.provider, sl.notes,
		       sl.next_due_date, sl.next_due_km, sl.odometer, sl.created_at
		FROM service_logs sl
		JOIN cars c ON sl.car_id = c.id`

	conditions := []string{}
	args := []interface{}{}
	if carID != nil {
		args = append(args, *carID)
		conditions = append(conditions, fmt.Sprintf("sl.car_id = $%d", len(args)))
	}
	if category != "" {
		args = append(args, category)
		conditions = append(conditions, fmt.Sprintf("sl.category = $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY sl.logged_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying service logs: %w", err)
	}
	defer rows.Close()

	logs := []entities.ServiceLogResponse{}
	for rows.Next() {
		var l entities.ServiceLogResponse
		err := rows.Scan(
			&l.ID, &l.CarID, &l.Registration, &l.CarDescription,
			&l.Category, &l.LoggedAt, &l.Cost, &l.Provider, &l.Notes,
			&l.NextDueDate, &l.NextDueKM, &l.Odometer, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning service log: %w", err)
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating service log rows: %w", err)
	}
	return logs, nil
}

func (r *ServiceLogRepository) CreateServiceLog(sl *db.ServiceLog) (int, error) {
	query := `
		INSERT INTO service_logs
			(car_id, category, logged_at, cost, provider, notes, next_due_date, next_due_km, odometer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int
	err := r.DB.QueryRow(query,
		sl.CarID,
		sl.Category,
		sl.LoggedAt,
		sl.Cost,
		sl.Provider,
		sl.Notes,
		sl.NextDueDate,
		sl.NextDueKM,
		sl.Odometer,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting service log: %w", err)
	}
	return id, nil
}

func (r *ServiceLogRepository) DeleteServiceLog(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM service_logs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting service log %d: %w", id, err)
	}
	return nil
}
