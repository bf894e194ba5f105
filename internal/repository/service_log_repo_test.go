package repository

import (
	"testing"
	"time"

	"fuellogger/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceLogColumns = []string{
	"id", "car_id", "registration", "description",
	"category", "logged_at", "cost", "provider", "notes",
	"next_due_date", "next_due_km", "odometer", "created_at",
}

func newServiceLogRepo(t *testing.T) (*ServiceLogRepository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewServiceLogRepository(database), mock
}

func TestListServiceLogsNoFilters(t *testing.T) {
	repo, mock := newServiceLogRepo(t)

	now := time.Now()
	mock.ExpectQuery("FROM service_logs sl").
		WillReturnRows(sqlmock.NewRows(serviceLogColumns).
			AddRow(1, 1, "CF 12 AB", "Test", "tyres", "2024-03-01", 4200.0, "TyreCo", "", nil, nil, nil, now))

	logs, err := repo.ListServiceLogs(nil, "")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "tyres", logs[0].Category)
	assert.Nil(t, logs[0].NextDueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListServiceLogsCombinesFilters(t *testing.T) {
	repo, mock := newServiceLogRepo(t)

	mock.ExpectQuery(`WHERE sl.car_id = \$1 AND sl.category = \$2`).
		WithArgs(2, "car_wash").
		WillReturnRows(sqlmock.NewRows(serviceLogColumns))

	carID := 2
	logs, err := repo.ListServiceLogs(&carID, "car_wash")
	require.NoError(t, err)
	assert.Len(t, logs, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListServiceLogsCategoryOnly(t *testing.T) {
	repo, mock := newServiceLogRepo(t)

	mock.ExpectQuery(`WHERE sl.category = \$1`).
		WithArgs("tyres").
		WillReturnRows(sqlmock.NewRows(serviceLogColumns))

	_, err := repo.ListServiceLogs(nil, "tyres")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateServiceLog(t *testing.T) {
	repo, mock := newServiceLogRepo(t)

	due := "2024-09-01"
	dueKM := 15000.0
	mock.ExpectQuery("INSERT INTO service_logs").
		WithArgs(1, "car_service", "2024-03-01", 1500.0, "Garage", "major", due, dueKM, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	id, err := repo.CreateServiceLog(&db.ServiceLog{
		CarID:       1,
		Category:    "car_service",
		LoggedAt:    "2024-03-01",
		Cost:        1500.0,
		Provider:    "Garage",
		Notes:       "major",
		NextDueDate: &due,
		NextDueKM:   &dueKM,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteServiceLog(t *testing.T) {
	repo, mock := newServiceLogRepo(t)

	mock.ExpectExec("DELETE FROM service_logs WHERE id").
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteServiceLog(4))
}
