package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fuellogger/internal/service"

	"github.com/gorilla/mux"
)

type CarHandler struct {
	Service *service.CarService
}

func NewCarHandler(svc *service.CarService) *CarHandler {
	return &CarHandler{Service: svc}
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.ListCars()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if strings.TrimSpace(req.Registration) == "" || strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "registration and description are required")
		return
	}
	id, registration, err := h.Service.CreateCar(req.Registration, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateCarResponse{ID: id, Registration: registration})
}

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := h.Service.DeleteCar(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: id})
}
