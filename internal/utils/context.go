// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminLoginCtxKey is the key used to store the authenticated administrator
// login in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminLoginCtxKey, "admin")
var AdminLoginCtxKey = contextKey("adminLogin")

// TraceIDCtxKey is the key under which the request trace id is stored.
var TraceIDCtxKey = contextKey("traceID")

// GetAdminLoginFromContext retrieves the administrator login from the context.
//
// Returns the login and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetAdminLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminLoginCtxKey).(string)
	return login, ok && login != ""
}

// GetTraceIDFromContext returns the trace id set by the tracing middleware.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
