// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// settings server handlers, the client services and the editors.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API:
// the client matches on them to restore typed errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match the administrator account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgSettingNotFound is returned when no value is stored under the key.
	MsgSettingNotFound = "setting not found"

	// MsgVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client no longer matches the stored one.
	// The client should reload before retrying.
	MsgVersionConflict = "version conflict, please reload"

	// MsgIntegrityCheckFailed is returned when the payload hash does not
	// match the hash sent by the client.
	MsgIntegrityCheckFailed = "integrity check failed"
)
