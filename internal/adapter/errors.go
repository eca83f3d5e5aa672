package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrNotServing is returned by the health checker when the server answers
	// but reports a status other than SERVING.
	ErrNotServing = errors.New("server is not serving")

	// ErrEmptyAddress is returned when no server address is configured.
	ErrEmptyAddress = errors.New("empty address")
)
