package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrServiceUnavailable,
}

// StatusError is a non-2xx reply of the settings API. It unwraps to the
// sentinel for its status, and Body keeps the server's message, which
// distinguishes a wrong password from an expired token on 401.
type StatusError struct {
	Status int
	Body   string
}

// NewStatusError builds the error mapHTTPError returns for status and body.
func NewStatusError(status int, body string) *StatusError {
	return &StatusError{Status: status, Body: strings.TrimSpace(body)}
}

func (e *StatusError) Error() string {
	reason := e.Body
	if reason == "" {
		reason = http.StatusText(e.Status)
	}
	if sentinel, ok := statusSentinels[e.Status]; ok {
		return fmt.Sprintf("%s: %s", sentinel, reason)
	}
	return fmt.Sprintf("http %d: %s", e.Status, reason)
}

func (e *StatusError) Unwrap() error {
	return statusSentinels[e.Status]
}

func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return NewStatusError(resp.StatusCode(), string(resp.Body()))
}
