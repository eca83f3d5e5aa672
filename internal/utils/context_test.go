// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAdminLoginCtxKey(t *testing.T) {
	if AdminLoginCtxKey.String() != "adminLogin" {
		t.Errorf("expected 'adminLogin', got '%s'", AdminLoginCtxKey.String())
	}
}

func TestGetAdminLoginFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminLoginCtxKey, "admin")

	login, ok := GetAdminLoginFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if login != "admin" {
		t.Errorf("expected login=admin, got %s", login)
	}
}

func TestGetAdminLoginFromContext_Missing(t *testing.T) {
	login, ok := GetAdminLoginFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing value")
	}
	if login != "" {
		t.Errorf("expected empty login, got %s", login)
	}
}

func TestGetAdminLoginFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminLoginCtxKey, 42)

	if _, ok := GetAdminLoginFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetAdminLoginFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), AdminLoginCtxKey, "")

	if _, ok := GetAdminLoginFromContext(ctx); ok {
		t.Error("expected ok=false for empty login")
	}
}

func TestGetAdminLoginFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "admin")

	if _, ok := GetAdminLoginFromContext(ctx); ok {
		t.Error("expected ok=false when stored under a different key")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "trace-1" {
		t.Errorf("expected trace-1, got %q (ok=%v)", traceID, ok)
	}
}
