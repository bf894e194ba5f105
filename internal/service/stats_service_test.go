package service

import (
	"testing"

	"fuellogger/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsService(t *testing.T) (*StatsService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStatsService(repository.NewStatsRepository(db)), mock
}

var totalsColumns = []string{"count", "total_fuel", "total_spent", "avg_price", "first_odo", "last_odo"}
var breakdownColumns = []string{"category", "total", "count"}

func TestGetStatsEmptyScope(t *testing.T) {
	svc, mock := newStatsService(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows(totalsColumns).AddRow(0, 0.0, 0.0, 0.0, nil, nil))
	mock.ExpectQuery("SELECT category").
		WillReturnRows(sqlmock.NewRows(breakdownColumns))

	stats, err := svc.GetStats(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalEntries)
	assert.Equal(t, 0.0, stats.TotalFuel)
	assert.Equal(t, 0.0, stats.TotalSpent)
	assert.Nil(t, stats.FirstOdo)
	assert.Nil(t, stats.LastOdo)
	assert.Nil(t, stats.TotalDistanceKM)
	assert.Nil(t, stats.AvgConsumptionPer100)
	assert.Nil(t, stats.OverallRandPerKM)
	assert.Nil(t, stats.OverallRandPerLitre)
	assert.NotNil(t, stats.ServiceBreakdown)
	assert.Len(t, stats.ServiceBreakdown, 0)
	assert.Equal(t, 0.0, stats.TotalServiceCost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatsDerivesRates(t *testing.T) {
	svc, mock := newStatsService(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(totalsColumns).AddRow(3, 90.0, 2070.0, 23.0, 1000.0, 1900.0))
	mock.ExpectQuery("SELECT category").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(breakdownColumns).
			AddRow("car_service", 1500.0, 1).
			AddRow("tyres", 4200.0, 2))

	carID := 7
	stats, err := svc.GetStats(&carID)
	require.NoError(t, err)

	require.NotNil(t, stats.TotalDistanceKM)
	assert.Equal(t, 900.0, *stats.TotalDistanceKM)
	require.NotNil(t, stats.AvgConsumptionPer100)
	assert.Equal(t, 10.0, *stats.AvgConsumptionPer100)
	require.NotNil(t, stats.OverallRandPerKM)
	assert.Equal(t, 2.3, *stats.OverallRandPerKM)
	require.NotNil(t, stats.OverallRandPerLitre)
	assert.Equal(t, 23.0, *stats.OverallRandPerLitre)

	assert.Len(t, stats.ServiceBreakdown, 2)
	assert.Equal(t, 5700.0, stats.TotalServiceCost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatsFlatOdometerSpan(t *testing.T) {
	svc, mock := newStatsService(t)

	// One odometer-bearing entry: MIN == MAX, no distance to derive.
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows(totalsColumns).AddRow(1, 40.0, 900.0, 22.5, 1000.0, 1000.0))
	mock.ExpectQuery("SELECT category").
		WillReturnRows(sqlmock.NewRows(breakdownColumns))

	stats, err := svc.GetStats(nil)
	require.NoError(t, err)

	require.NotNil(t, stats.FirstOdo)
	require.NotNil(t, stats.LastOdo)
	assert.Nil(t, stats.TotalDistanceKM)
	assert.Nil(t, stats.AvgConsumptionPer100)
	assert.Nil(t, stats.OverallRandPerKM)
	require.NotNil(t, stats.OverallRandPerLitre)
	assert.Equal(t, 22.5, *stats.OverallRandPerLitre)
}
