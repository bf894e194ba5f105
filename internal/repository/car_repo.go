package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fuellogger/internal/db"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type CarRepository struct {
	DB *sql.DB
}

func NewCarRepository(database *sql.DB) *CarRepository {
	return &CarRepository{DB: database}
}

func (r *CarRepository) ListCars() ([]db.Car, error) {
	query := `SELECT id, registration, description, created_at FROM cars ORDER BY registration`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying cars: %w", err)
	}
	defer rows.Close()

	cars := []db.Car{}
	for rows.Next() {
		var c db.Car
		if err := rows.Scan(&c.ID, &c.Registration, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning car: %w", err)
		}
		cars = append(cars, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating car rows: %w", err)
	}
	return cars, nil
}

// CreateCar inserts a car and returns its generated id. The registration is
// expected to be normalized already; the store enforces uniqueness.
func (r *CarRepository) CreateCar(registration, description string) (int, error) {
	query := `INSERT INTO cars (registration, description) VALUES ($1, $2) RETURNING id`

	var id int
	if err := r.DB.QueryRow(query, registration, description).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting car: %w", err)
	}
	return id, nil
}

// DeleteCar removes a car; fuel and service logs referencing it are removed
// by the schema's ON DELETE CASCADE. Deleting an unknown id is not an error.
func (r *CarRepository) DeleteCar(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM cars WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting car %d: %w", id, err)
	}
	return nil
}

// IsUniqueViolation reports whether err is the store's duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
