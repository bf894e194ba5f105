package service

import (
	"fuellogger/internal/entities"
	"fuellogger/internal/repository"
)

type StatsService struct {
	Repo *repository.StatsRepository
}

func NewStatsService(repo *repository.StatsRepository) *StatsService {
	return &StatsService{Repo: repo}
}

// GetStats assembles the aggregate statistics for the scope (one car or
// all). Distance-derived rates need a positive odometer span; cost per unit
// needs a nonzero fuel total. Division guards map to nil, never an error.
func (s *StatsService) GetStats(carID *int) (*entities.StatsResponse, error) {
	totals, err := s.Repo.GetFuelTotals(carID)
	if err != nil {
		return nil, err
	}

	stats := &entities.StatsResponse{
		TotalEntries:    totals.TotalEntries,
		TotalFuel:       totals.TotalFuel,
		TotalSpent:      totals.TotalSpent,
		AvgPricePerUnit: totals.AvgPricePerUnit,
	}
	if totals.FirstOdo.Valid {
		stats.FirstOdo = &totals.FirstOdo.Float64
	}
	if totals.LastOdo.Valid {
		stats.LastOdo = &totals.LastOdo.Float64
	}

	if totals.FirstOdo.Valid && totals.LastOdo.Valid && totals.LastOdo.Float64 > totals.FirstOdo.Float64 {
		distance := totals.LastOdo.Float64 - totals.FirstOdo.Float64
		stats.TotalDistanceKM = roundPtr(distance, 1)
		stats.AvgConsumptionPer100 = roundPtr(totals.TotalFuel/distance*100, 2)
		stats.OverallRandPerKM = roundPtr(totals.TotalSpent/distance, 4)
	}
	if totals.TotalFuel > 0 {
		stats.OverallRandPerLitre = roundPtr(totals.TotalSpent/totals.TotalFuel, 4)
	}

	breakdown, err := s.Repo.GetServiceBreakdown(carID)
	if err != nil {
		return nil, err
	}
	stats.ServiceBreakdown = breakdown
	for _, b := range breakdown {
		stats.TotalServiceCost += b.Total
	}
	return stats, nil
}
