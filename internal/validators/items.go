// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/site-settings/models"
)

const (
	FieldID     = "id"
	FieldName   = "name"
	FieldNameEn = "nameEn"
	FieldIcon   = "icon"
	FieldColor  = "color"
)

// ItemValidator checks list items and typed patches against one editor's icon
// catalog and color palette.
type ItemValidator struct {
	icons   []string
	palette []models.ColorPair
}

// NewItemValidator returns a validator bound to the given catalog and
// palette.
func NewItemValidator(icons []string, palette []models.ColorPair) Validator {
	return &ItemValidator{icons: icons, palette: palette}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemPatch:
		return v.validatePatch(value, fields...)
	case *models.ItemPatch:
		return v.validatePatch(*value, fields...)

	case models.ListItem:
		return v.validateItem(value, fields...)
	case *models.ListItem:
		return v.validateItem(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePatch checks only what the patch sets. Name fields may be cleared
// while editing, so emptiness is not checked here.
func (v *ItemValidator) validatePatch(patch models.ItemPatch, fields ...string) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	if len(fields) == 0 {
		fields = []string{FieldIcon, FieldColor}
	}

	for _, f := range fields {
		switch f {
		case FieldIcon:
			if patch.Icon != nil && !slices.Contains(v.icons, *patch.Icon) {
				return ErrUnknownIcon
			}
		case FieldColor:
			if patch.Color != nil && !v.knownColor(*patch.Color) {
				return ErrUnknownColor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Default validated fields: ID, Name, NameEn.
func (v *ItemValidator) validateItem(item models.ListItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldNameEn}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item.ID == "" {
				return ErrMissingItemID
			}
		case FieldName:
			if item.Name == "" {
				return ErrEmptyName
			}
		case FieldNameEn:
			if item.NameEn == "" {
				return ErrEmptyNameEn
			}
		case FieldIcon:
			if !slices.Contains(v.icons, item.Icon) {
				return ErrUnknownIcon
			}
		case FieldColor:
			if !v.knownColor(item.Color()) {
				return ErrUnknownColor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) knownColor(c models.ColorPair) bool {
	for _, p := range v.palette {
		if p.Matches(c) {
			return true
		}
	}
	return false
}
