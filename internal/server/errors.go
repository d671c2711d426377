// Package server serves the prompt tools over a JSON HTTP API.
package server

import (
	"errors"
	"net/http"

	"github.com/pthm/promptopt/internal/optimizer"
	"github.com/pthm/promptopt/internal/tools"
)

// ErrMalformedBody indicates the request body was not a JSON object
var ErrMalformedBody = errors.New("malformed request body")

// HTTPStatus returns the appropriate HTTP status code for an error. A
// non-string style wraps both argument errors and maps to 400.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMalformedBody), errors.Is(err, optimizer.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, optimizer.ErrInvalidStyle):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tools.ErrUnknownTool):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
