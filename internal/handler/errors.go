package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/report"
)

// ErrorDetail is the machine-readable half of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body for every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes the uniform error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondError maps a service error onto the HTTP taxonomy:
// validation → 422, not found → 404, conflict → 409, unauthorized → 401,
// forbidden → 403, empty export → 422. Anything unrecognized is a 500 whose
// details are logged but never leaked to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, report.ErrNoData):
		writeError(w, http.StatusUnprocessableEntity, "no_data", report.ErrNoData.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", unwrapMessage(err, domain.ErrConflict))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", unwrapMessage(err, domain.ErrUnauthorized))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", unwrapMessage(err, domain.ErrForbidden))
	default:
		slog.ErrorContext(r.Context(), "internal error", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.UserService.Register: validation error: name is
// required" → "name is required". Falls back to the sentinel's own text when
// nothing follows it.
func unwrapMessage(err error, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}
