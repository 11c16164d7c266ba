package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/transfergate/internal/adapter/http/dto"
	"github.com/iho/transfergate/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Validation
// failures are 422 because the JSON itself was well-formed; only an
// unparseable body is a 400, and the handlers handle that directly.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMissingSource),
		errors.Is(err, domain.ErrMissingDestination),
		errors.Is(err, domain.ErrMissingExternalDetails),
		errors.Is(err, domain.ErrAmbiguousDestination),
		errors.Is(err, domain.ErrSameAccount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTransferNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
