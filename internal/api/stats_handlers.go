package api

import (
	"net/http"

	"fuellogger/internal/service"
)

type StatsHandler struct {
	Service *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{Service: svc}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	carID, err := carIDFilter(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	stats, err := h.Service.GetStats(carID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
