package repository

import (
	"testing"
	"time"

	"fuellogger/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fuelLogColumns = []string{
	"id", "car_id", "registration", "description",
	"logged_at", "fuel_amount", "fuel_unit", "price_per_unit",
	"total_cost", "odometer", "notes", "created_at",
}

func newFuelLogRepo(t *testing.T) (*FuelLogRepository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewFuelLogRepository(database), mock
}

func TestListFuelLogsScansNullOdometer(t *testing.T) {
	repo, mock := newFuelLogRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT fl.id, fl.car_id").
		WillReturnRows(sqlmock.NewRows(fuelLogColumns).
			AddRow(1, 1, "CF 12 AB", "Test", "2024-01-01", 40.0, "litres", 22.5, 900.0, 1000.0, "", now).
			AddRow(2, 1, "CF 12 AB", "Test", "2024-01-10", 30.0, "litres", 22.8, 684.0, nil, "forgot odo", now))

	logs, err := repo.ListFuelLogs(nil)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	require.NotNil(t, logs[0].Odometer)
	assert.Equal(t, 1000.0, *logs[0].Odometer)
	assert.Nil(t, logs[1].Odometer)
	assert.Equal(t, "forgot odo", logs[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFuelLogsFiltersByCar(t *testing.T) {
	repo, mock := newFuelLogRepo(t)

	mock.ExpectQuery("WHERE fl.car_id").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(fuelLogColumns))

	carID := 4
	logs, err := repo.ListFuelLogs(&carID)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Len(t, logs, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFuelLogPersistsComputedTotal(t *testing.T) {
	repo, mock := newFuelLogRepo(t)

	odo := 1200.5
	mock.ExpectQuery("INSERT INTO fuel_logs").
		WithArgs(1, "2024-01-15", 25.0, "litres", 23.0, 575.0, odo, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	id, err := repo.CreateFuelLog(&db.FuelLog{
		CarID:        1,
		LoggedAt:     "2024-01-15",
		FuelAmount:   25.0,
		FuelUnit:     "litres",
		PricePerUnit: 23.0,
		TotalCost:    575.0,
		Odometer:     &odo,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFuelLog(t *testing.T) {
	repo, mock := newFuelLogRepo(t)

	mock.ExpectExec("DELETE FROM fuel_logs WHERE id").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteFuelLog(9))
}
