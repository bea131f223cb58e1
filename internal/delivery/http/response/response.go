package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error maps a service error to an HTTP status. Anything outside the known
// taxonomy becomes a 500 with the detail withheld from the client.
func Error(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrValidation):
		JSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, custom_errors.ErrEmailExists):
		JSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, custom_errors.ErrInvalidCredentials),
		errors.Is(err, custom_errors.ErrMissingToken),
		errors.Is(err, custom_errors.ErrInvalidToken),
		errors.Is(err, custom_errors.ErrTokenExpired):
		JSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, custom_errors.ErrForbidden):
		JSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, custom_errors.ErrUserNotFound),
		errors.Is(err, custom_errors.ErrPostNotFound):
		JSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		log.Error("Internal error in handler", slog.String("error", err.Error()))
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

// ValidationError reports field-level violations with HTTP 400.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, errorBody{
		Error:  custom_errors.ErrValidation.Error(),
		Fields: fields,
	})
}
