package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fuellogger/internal/db"
	"fuellogger/internal/service"

	"github.com/gorilla/mux"
)

type FuelLogHandler struct {
	Service *service.FuelLogService
}

func NewFuelLogHandler(svc *service.FuelLogService) *FuelLogHandler {
	return &FuelLogHandler{Service: svc}
}

func (h *FuelLogHandler) ListFuelLogs(w http.ResponseWriter, r *http.Request) {
	carID, err := carIDFilter(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	logs, err := h.Service.ListFuelLogs(carID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *FuelLogHandler) CreateFuelLog(w http.ResponseWriter, r *http.Request) {
	var req CreateFuelLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if missing := firstMissingFuelLogField(&req); missing != "" {
		writeError(w, http.StatusBadRequest, "Missing field: "+missing)
		return
	}

	fl := &db.FuelLog{
		CarID:        *req.CarID,
		LoggedAt:     *req.LoggedAt,
		FuelAmount:   *req.FuelAmount,
		FuelUnit:     *req.FuelUnit,
		PricePerUnit: *req.PricePerUnit,
		Odometer:     req.Odometer,
	}
	if req.Notes != nil {
		fl.Notes = *req.Notes
	}

	id, totalCost, err := h.Service.CreateFuelLog(fl)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateFuelLogResponse{ID: id, TotalCost: totalCost})
}

func (h *FuelLogHandler) DeleteFuelLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := h.Service.DeleteFuelLog(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: id})
}

// firstMissingFuelLogField names the first required field absent from the
// request, in the contract's order, or "" when all are present.
func firstMissingFuelLogField(req *CreateFuelLogRequest) string {
	switch {
	case req.CarID == nil:
		return "car_id"
	case req.LoggedAt == nil || *req.LoggedAt == "":
		return "logged_at"
	case req.FuelAmount == nil:
		return "fuel_amount"
	case req.FuelUnit == nil || *req.FuelUnit == "":
		return "fuel_unit"
	case req.PricePerUnit == nil:
		return "price_per_unit"
	}
	return ""
}
