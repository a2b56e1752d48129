package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Error is an error carrying the HTTP status it should surface with.
// Field-level validation messages go into Fields.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func Validation(fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "validation failed", Fields: fields}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// envelope is the uniform error response shape.
type envelope struct {
	StatusCode int               `json:"statusCode"`
	Timestamp  string            `json:"timestamp"`
	Path       string            `json:"path"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// Write renders err as the uniform JSON error envelope. Unrecognized
// errors become a generic 500, the details stay in the server log only.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := &Error{}
	if !errors.As(err, &apiErr) {
		log.Errorf("internal error serving [%s %s]: %s", r.Method, r.URL.Path, err)
		apiErr = &Error{
			Status:  http.StatusInternalServerError,
			Message: "internal server error",
		}
	} else if apiErr.Status >= http.StatusInternalServerError {
		log.Errorf("server error serving [%s %s]: %s", r.Method, r.URL.Path, err)
	} else {
		log.Tracef("client error serving [%s %s]: %s", r.Method, r.URL.Path, err)
	}

	resp := envelope{
		StatusCode: apiErr.Status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		Message:    apiErr.Message,
		Errors:     apiErr.Fields,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		log.Errorf("failed to write error response: %s", encodeErr)
	}
}
