package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/site-settings/models"
)

var (
	testIcons   = []string{"BookOpen", "Users", "Globe"}
	testPalette = []models.ColorPair{
		{Color: "text-blue-600", Bg: "bg-blue-100", Label: "أزرق"},
		{Color: "text-white", Bg: "bg-gray-900"},
	}
)

func TestItemValidator_Patch(t *testing.T) {
	v := NewItemValidator(testIcons, testPalette)
	ctx := context.Background()

	tests := []struct {
		name    string
		patch   models.ItemPatch
		wantErr error
	}{
		{name: "name only", patch: models.SetName("")},
		{name: "known icon", patch: models.SetIcon("Users")},
		{name: "known color ignores label", patch: models.SetColor(models.ColorPair{Color: "text-white", Bg: "bg-gray-900", Label: "x"})},
		{name: "visibility", patch: models.SetVisible(false)},
		{name: "empty", patch: models.ItemPatch{}, wantErr: ErrEmptyPatch},
		{name: "unknown icon", patch: models.SetIcon("Rocket"), wantErr: ErrUnknownIcon},
		{name: "mismatched pair", patch: models.SetColor(models.ColorPair{Color: "text-blue-600", Bg: "bg-gray-900"}), wantErr: ErrUnknownColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemValidator_Item(t *testing.T) {
	v := NewItemValidator(testIcons, testPalette)
	ctx := context.Background()

	item := models.ListItem{ID: "a", Name: "أ", NameEn: "A", Icon: "Globe", IconColor: "text-white", IconBg: "bg-gray-900"}
	assert.NoError(t, v.Validate(ctx, item))
	assert.NoError(t, v.Validate(ctx, &item, FieldIcon, FieldColor))

	noName := item
	noName.Name = ""
	assert.ErrorIs(t, v.Validate(ctx, noName), ErrEmptyName)

	noNameEn := item
	noNameEn.NameEn = ""
	assert.ErrorIs(t, v.Validate(ctx, noNameEn, FieldName, FieldNameEn), ErrEmptyNameEn)

	// draft checks skip the id
	noID := item
	noID.ID = ""
	assert.NoError(t, v.Validate(ctx, noID, FieldName, FieldNameEn))
	assert.ErrorIs(t, v.Validate(ctx, noID), ErrMissingItemID)

	assert.ErrorIs(t, v.Validate(ctx, item, "bogus"), ErrUnknownField)
}

func TestItemValidator_UnsupportedType(t *testing.T) {
	v := NewItemValidator(testIcons, testPalette)
	assert.ErrorIs(t, v.Validate(context.Background(), "x"), ErrUnsupportedType)
}
