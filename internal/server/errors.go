// Package server provides the HTTP REST API for the RoleColor classifier.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/rolecolor/internal/llm"
	"github.com/jonathan/rolecolor/internal/rewriting"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRewriteUnavailable indicates the rewrite collaborator is not configured
type ErrRewriteUnavailable struct {
	Message string
}

func (e *ErrRewriteUnavailable) Error() string {
	return fmt.Sprintf("rewrite unavailable: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var unavailableErr *ErrRewriteUnavailable
	var configErr *rewriting.ConfigError
	var apiErr *rewriting.APICallError
	var attemptsErr *llm.AttemptsError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &unavailableErr), errors.As(err, &configErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &apiErr), errors.As(err, &attemptsErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
