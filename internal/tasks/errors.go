package tasks

import (
	"errors"
	"net/http"
)

// Domain errors for task operations.
var (
	ErrNotFound       = errors.New("task not found")
	ErrDuplicate      = errors.New("task already exists")
	ErrInvalidStatus  = errors.New("invalid task status")
	ErrAlreadyRunning = errors.New("task analysis is already running")
	ErrRoutineRunning = errors.New("routine generation is already running")
	ErrNotCompleted   = errors.New("task analysis has not completed")
	ErrInvalidImage   = errors.New("selfie must be a PNG or JPEG image")
	ErrFileTooLarge   = errors.New("selfie exceeds the maximum upload size")
	ErrMissingFile    = errors.New("no selfie file provided")
)

// MapHTTPStatus maps task errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrAlreadyRunning),
		errors.Is(err, ErrRoutineRunning),
		errors.Is(err, ErrNotCompleted):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidImage),
		errors.Is(err, ErrMissingFile):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
