package httpapi

import (
	"errors"
	"net/http"

	"github.com/tarun5004/bankd/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "validation_error")
}

// writeServiceError maps domain sentinel errors onto HTTP statuses. The
// wrapped message names the failing precondition and is passed through as the
// user-facing error.
func writeServiceError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, errs.ErrInvalid):
		writeErr(w, http.StatusBadRequest, msg, "validation_error")
	case errors.Is(err, errs.ErrAuthentication):
		writeErr(w, http.StatusUnauthorized, msg, "authentication_failed")
	case errors.Is(err, errs.ErrNotFound):
		writeErr(w, http.StatusNotFound, "account not found", "account_not_found")
	case errors.Is(err, errs.ErrInsufficientFunds):
		writeErr(w, http.StatusUnprocessableEntity, msg, "insufficient_funds")
	case errors.Is(err, errs.ErrStorage):
		writeErr(w, http.StatusInternalServerError, msg, "storage_failure")
	default:
		writeErr(w, http.StatusInternalServerError, msg, "")
	}
}
