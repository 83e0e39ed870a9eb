package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConfiguration         = errors.New("configuration error")
	ErrConstraint            = errors.New("constraint violation")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
