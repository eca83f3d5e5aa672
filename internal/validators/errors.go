package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidKey             = errors.New("invalid setting key")
	ErrEmptyValue             = errors.New("setting value is required")
	ErrValueIsNotList         = errors.New("setting value must be a JSON array of objects")
	ErrItemWithoutID          = errors.New("list item must have a non-empty string id")
	ErrInvalidExpectedVersion = errors.New("invalid expected version")

	ErrEmptyPatch    = errors.New("patch changes nothing")
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyNameEn   = errors.New("english name is required")
	ErrUnknownIcon   = errors.New("icon is not in the catalog")
	ErrUnknownColor  = errors.New("color pair is not in the palette")
	ErrMissingItemID = errors.New("item id is required")
)
