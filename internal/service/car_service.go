package service

import (
	"fmt"
	"strings"

	"fuellogger/internal/db"
	httperrors "fuellogger/internal/errors"
	"fuellogger/internal/repository"
	"fuellogger/internal/utils"
)

type CarService struct {
	Repo *repository.CarRepository
}

func NewCarService(repo *repository.CarRepository) *CarService {
	return &CarService{Repo: repo}
}

func (s *CarService) ListCars() ([]db.Car, error) {
	return s.Repo.ListCars()
}

// CreateCar normalizes the registration, enforces case-insensitive
// uniqueness and returns the new id together with the stored registration.
func (s *CarService) CreateCar(registration, description string) (int, string, error) {
	reg := utils.NormalizeRegistration(registration)
	id, err := s.Repo.CreateCar(reg, strings.TrimSpace(description))
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return 0, "", httperrors.ErrConflict(fmt.Sprintf("Registration '%s' already exists", reg))
		}
		return 0, "", err
	}
	return id, reg, nil
}

func (s *CarService) DeleteCar(id int) error {
	return s.Repo.DeleteCar(id)
}
