package service

import (
	"fuellogger/internal/db"
	"fuellogger/internal/entities"
	httperrors "fuellogger/internal/errors"
	"fuellogger/internal/repository"
	"fuellogger/internal/utils"
)

type ServiceLogService struct {
	Repo *repository.ServiceLogRepository
}

func NewServiceLogService(repo *repository.ServiceLogRepository) *ServiceLogService {
	return &ServiceLogService{Repo: repo}
}

func (s *ServiceLogService) ListServiceLogs(carID *int, category string) ([]entities.ServiceLogResponse, error) {
	return s.Repo.ListServiceLogs(carID, category)
}

func (s *ServiceLogService) CreateServiceLog(sl *db.ServiceLog) (int, error) {
	if !utils.IsValidServiceCategory(sl.Category) {
		return 0, httperrors.ErrBadRequest("Invalid category")
	}
	return s.Repo.CreateServiceLog(sl)
}

func (s *ServiceLogService) DeleteServiceLog(id int) error {
	return s.Repo.DeleteServiceLog(id)
}
