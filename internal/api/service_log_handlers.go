package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fuellogger/internal/db"
	"fuellogger/internal/service"

	"github.com/gorilla/mux"
)

type ServiceLogHandler struct {
	Service *service.ServiceLogService
}

func NewServiceLogHandler(svc *service.ServiceLogService) *ServiceLogHandler {
	return &ServiceLogHandler{Service: svc}
}

func (h *ServiceLogHandler) ListServiceLogs(w http.ResponseWriter, r *http.Request) {
	carID, err := carIDFilter(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	category := r.URL.Query().Get("category")
	logs, err := h.Service.ListServiceLogs(carID, category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *ServiceLogHandler) CreateServiceLog(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if missing := firstMissingServiceLogField(&req); missing != "" {
		writeError(w, http.StatusBadRequest, "Missing field: "+missing)
		return
	}

	sl := &db.ServiceLog{
		CarID:     *req.CarID,
		Category:  *req.Category,
		LoggedAt:  *req.LoggedAt,
		Cost:      *req.Cost,
		NextDueKM: req.NextDueKM,
		Odometer:  req.Odometer,
	}
	if req.Provider != nil {
		sl.Provider = *req.Provider
	}
	if req.Notes != nil {
		sl.Notes = *req.Notes
	}
	// An empty next_due_date means "none scheduled", stored as NULL.
	if req.NextDueDate != nil && *req.NextDueDate != "" {
		sl.NextDueDate = req.NextDueDate
	}

	id, err := h.Service.CreateServiceLog(sl)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateServiceLogResponse{ID: id})
}

func (h *ServiceLogHandler) DeleteServiceLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := h.Service.DeleteServiceLog(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: id})
}

func firstMissingServiceLogField(req *CreateServiceLogRequest) string {
	switch {
	case req.CarID == nil:
		return "car_id"
	case req.Category == nil || *req.Category == "":
		return "category"
	case req.LoggedAt == nil || *req.LoggedAt == "":
		return "logged_at"
	case req.Cost == nil:
		return "cost"
	}
	return ""
}
