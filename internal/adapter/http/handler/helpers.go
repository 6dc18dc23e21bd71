package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pennyledger/internal/adapter/http/dto"
	"pennyledger/internal/domain"
)

// writeSuccess writes a response in the {success:true, data} envelope.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// writeError writes a response in the {success:false, error} envelope.
// Only the human-readable message crosses the boundary.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTypeRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidEntryType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooSmall):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDescriptionRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDateRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
