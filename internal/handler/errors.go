package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// errorDetail and errorResponse form the JSON envelope of every error reply:
//
//	{"error": {"code": "not_found", "message": "Trip with id ... not found"}}
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

// messageResponse is the body of successful delete operations.
type messageResponse struct {
	Message string `json:"message"`
}

// requestError marks a request rejected before reaching the service layer
// because a path parameter, query parameter, or body could not be parsed.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequestf(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// respondError maps err onto an HTTP status and error envelope.
// Domain sentinels carry their client message via domain.DetailError.
// Anything unrecognised is logged with the request ID and answered with 500.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		reqErr *requestError
		maxErr *http.MaxBytesError
	)
	switch {
	case errors.As(err, &reqErr):
		writeError(w, http.StatusBadRequest, "bad_request", reqErr.msg)
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", domain.Detail(err, "resource not found"))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", domain.Detail(err, "resource already exists"))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", domain.Detail(err, "invalid input"))
	default:
		s.log.ErrorContext(r.Context(), "unhandled error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
