package validators

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/MKhiriev/site-settings/models"
)

const (
	FieldKey             = "key"
	FieldValue           = "value"
	FieldExpectedVersion = "expected_version"
)

var settingKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)

// SettingsValidator checks settings keys and whole-value writes. List values
// get a presence check only: every element must be an object carrying a
// non-empty string "id".
type SettingsValidator struct{}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateKey(value)

	case models.SettingUpdate:
		return v.validateSettingUpdate(ctx, value, fields...)
	case *models.SettingUpdate:
		return v.validateSettingUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateKey(key string) error {
	if !settingKeyPattern.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}

// Default validated fields: Key, Value, ExpectedVersion.
func (v *SettingsValidator) validateSettingUpdate(ctx context.Context, update models.SettingUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldValue, FieldExpectedVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := validateKey(update.Key); err != nil {
				return err
			}
		case FieldValue:
			if err := validateListValue(update.Value); err != nil {
				return err
			}
		case FieldExpectedVersion:
			if update.ExpectedVersion != nil && *update.ExpectedVersion < 0 {
				return ErrInvalidExpectedVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateListValue(raw json.RawMessage) error {
	if len(raw) == 0 {
		return ErrEmptyValue
	}

	var elements []map[string]any
	if err := json.Unmarshal(raw, &elements); err != nil || elements == nil {
		return ErrValueIsNotList
	}

	for _, el := range elements {
		id, ok := el["id"].(string)
		if !ok || id == "" {
			return ErrItemWithoutID
		}
	}

	return nil
}
