package service

import (
	"fuellogger/internal/db"
	"fuellogger/internal/entities"
	"fuellogger/internal/repository"
)

type FuelLogService struct {
	Repo *repository.FuelLogRepository
}

func NewFuelLogService(repo *repository.FuelLogRepository) *FuelLogService {
	return &FuelLogService{Repo: repo}
}

// ListFuelLogs returns fuel logs with trip metrics attached, newest first.
func (s *FuelLogService) ListFuelLogs(carID *int) ([]entities.FuelLogResponse, error) {
	logs, err := s.Repo.ListFuelLogs(carID)
	if err != nil {
		return nil, err
	}
	attachTripMetrics(logs)
	sortLogsNewestFirst(logs)
	return logs, nil
}

// CreateFuelLog computes the total cost from amount and unit price, persists
// the entry and returns its id together with the stored total. The total is
// fixed at insert time.
func (s *FuelLogService) CreateFuelLog(fl *db.FuelLog) (int, float64, error) {
	fl.TotalCost = round(fl.FuelAmount*fl.PricePerUnit, 2)
	id, err := s.Repo.CreateFuelLog(fl)
	if err != nil {
		return 0, 0, err
	}
	return id, fl.TotalCost, nil
}

func (s *FuelLogService) DeleteFuelLog(id int) error {
	return s.Repo.DeleteFuelLog(id)
}
