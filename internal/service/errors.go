package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrLoginOnServer      = errors.New("login on server failed")
	ErrNotAuthenticated   = errors.New("client is not authenticated")
	ErrMalformedSetting   = errors.New("setting value is not a list")
	ErrServerFailure      = errors.New("settings server failed")
	ErrBackendUnavailable = errors.New("settings server is unavailable")
)
