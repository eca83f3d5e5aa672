// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-settings/models"
)

func ptrInt64(v int64) *int64 { return &v }

// ---------------------------------------------------------------------------
// Keys
// ---------------------------------------------------------------------------

func TestSettingsValidator_Key(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: models.SectionsKey},
		{key: models.SocialMediaKey},
		{key: "a"},
		{key: "site_title-2"},
		{key: "a" + strings.Repeat("b", 63)},
		{key: "a" + strings.Repeat("b", 64), wantErr: true},
		{key: "", wantErr: true},
		{key: "1sections", wantErr: true},
		{key: "social media", wantErr: true},
		{key: "../etc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := v.Validate(ctx, tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// SettingUpdate
// ---------------------------------------------------------------------------

func TestSettingsValidator_SettingUpdate(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.SettingUpdate
		wantErr error
	}{
		{
			name:   "valid list",
			update: models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`[{"id":"a","name":"A"},{"id":"b"}]`)},
		},
		{
			name:   "empty list is valid",
			update: models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`[]`)},
		},
		{
			name:   "expected version zero",
			update: models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`[]`), ExpectedVersion: ptrInt64(0)},
		},
		{
			name:    "bad key",
			update:  models.SettingUpdate{Key: "", Value: json.RawMessage(`[]`)},
			wantErr: ErrInvalidKey,
		},
		{
			name:    "no value",
			update:  models.SettingUpdate{Key: models.SectionsKey},
			wantErr: ErrEmptyValue,
		},
		{
			name:    "object instead of list",
			update:  models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`{"id":"a"}`)},
			wantErr: ErrValueIsNotList,
		},
		{
			name:    "null",
			update:  models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`null`)},
			wantErr: ErrValueIsNotList,
		},
		{
			name:    "list of scalars",
			update:  models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`[1,2]`)},
			wantErr: ErrValueIsNotList,
		},
		{
			name:    "item without id",
			update:  models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`[{"name":"A"}]`)},
			wantErr: ErrItemWithoutID,
		},
		{
			name:    "numeric id",
			update:  models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`[{"id":1}]`)},
			wantErr: ErrItemWithoutID,
		},
		{
			name:    "negative expected version",
			update:  models.SettingUpdate{Key: models.SectionsKey, Value: json.RawMessage(`[]`), ExpectedVersion: ptrInt64(-1)},
			wantErr: ErrInvalidExpectedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			// pointer form dispatches the same way
			require.NoError(t, v.Validate(ctx, &tt.update))
		})
	}
}

func TestSettingsValidator_FieldScoping(t *testing.T) {
	v := NewSettingsValidator()
	update := models.SettingUpdate{Key: "", Value: json.RawMessage(`[]`)}

	assert.NoError(t, v.Validate(context.Background(), update, FieldValue))
	assert.ErrorIs(t, v.Validate(context.Background(), update, "unknown"), ErrUnknownField)
}

func TestSettingsValidator_UnsupportedType(t *testing.T) {
	v := NewSettingsValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
