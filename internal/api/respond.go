package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	httperrors "fuellogger/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError picks the status from an HTTPError when the service
// raised one; anything else is an opaque store failure.
func writeServiceError(w http.ResponseWriter, err error) {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeError(w, httpErr.Code, httpErr.Message)
		return
	}
	log.Printf("Unhandled error: %v", err)
	writeError(w, http.StatusInternalServerError, "Database error")
}

// carIDFilter parses the optional car_id query parameter. nil means no
// filter; a non-numeric value is a client error.
func carIDFilter(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("car_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, httperrors.ErrBadRequest("Invalid car_id")
	}
	return &id, nil
}
