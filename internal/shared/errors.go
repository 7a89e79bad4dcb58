// Package shared holds the error kinds every layer of the service agrees on.
package shared

import "errors"

// Error kinds surfaced by the stores and services. Callers match them with
// errors.Is; the HTTP boundary maps them to status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)
