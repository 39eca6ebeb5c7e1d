package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/evidenca/internal/service"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// pathID parses a numeric path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// serviceError maps a service error to a response. Unclassified errors are
// logged and reported as "failed to <action>".
func serviceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidStatus):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		jsonError(w, http.StatusUnauthorized, err.Error())
	default:
		slog.Error("failed to "+action, "error", err, "request_id", RequestID(r.Context()))
		jsonError(w, http.StatusInternalServerError, "failed to "+action)
	}
}
