package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownStrategy indicates an unrecognized matching strategy name
type ErrUnknownStrategy struct {
	Strategy string
}

func (e *ErrUnknownStrategy) Error() string {
	return fmt.Sprintf("unknown matching strategy: %s", e.Strategy)
}

// ErrResultNotFound indicates a stored match result was not found
type ErrResultNotFound struct {
	ID uuid.UUID
}

func (e *ErrResultNotFound) Error() string {
	return fmt.Sprintf("match result not found: %s", e.ID)
}

// ErrPersistenceDisabled indicates the server runs without a database
type ErrPersistenceDisabled struct{}

func (e *ErrPersistenceDisabled) Error() string {
	return "match history is disabled: no database configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrUnknownStrategy:
		return http.StatusBadRequest
	case *ErrResultNotFound:
		return http.StatusNotFound
	case *ErrPersistenceDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
