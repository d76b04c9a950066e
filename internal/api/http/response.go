package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Field   string   `json:"field,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses. Gate failures carry
// their reasons so the form can mark the failing sections.
func writeError(w http.ResponseWriter, err error) {
	var (
		conflict   *domain.ConflictError
		transition *domain.InvalidTransitionError
		gate       *domain.GateError
	)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrContractLocked):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrBookingNotLinked):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: conflict.Error(), Field: string(conflict.Field)})
	case errors.As(err, &transition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: transition.Error()})
	case errors.As(err, &gate):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: gate.Error(), Reasons: gate.Reasons})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
