package editor

import (
	"github.com/MKhiriev/site-settings/internal/icons"
	"github.com/MKhiriev/site-settings/models"
)

// SectionPalette lists the color pairs offered for sections.
var SectionPalette = []models.ColorPair{
	{Color: "text-blue-600", Bg: "bg-blue-100", Label: "أزرق"},
	{Color: "text-green-600", Bg: "bg-green-100", Label: "أخضر"},
	{Color: "text-purple-600", Bg: "bg-purple-100", Label: "بنفسجي"},
	{Color: "text-orange-600", Bg: "bg-orange-100", Label: "برتقالي"},
	{Color: "text-red-600", Bg: "bg-red-100", Label: "أحمر"},
	{Color: "text-yellow-600", Bg: "bg-yellow-100", Label: "أصفر"},
	{Color: "text-pink-600", Bg: "bg-pink-100", Label: "وردي"},
	{Color: "text-indigo-600", Bg: "bg-indigo-100", Label: "نيلي"},
}

// SocialPalette lists the color pairs offered for social platforms.
var SocialPalette = []models.ColorPair{
	{Color: "text-white", Bg: "bg-blue-600", Label: "Facebook"},
	{Color: "text-white", Bg: "bg-sky-500", Label: "Twitter"},
	{Color: "text-white", Bg: "bg-pink-600", Label: "Instagram"},
	{Color: "text-white", Bg: "bg-red-600", Label: "Youtube"},
	{Color: "text-white", Bg: "bg-green-600", Label: "Whatsapp"},
	{Color: "text-white", Bg: "bg-gray-900", Label: "Github"},
}

const (
	// SocialIDPrefix starts every generated platform id.
	SocialIDPrefix = "platform_"

	defaultPlatformName   = "منصة جديدة"
	defaultPlatformNameEn = "New Platform"
	defaultPlatformURL    = "https://example.com"
)

// DefaultSectionDraft is the add-form state for a new section.
func DefaultSectionDraft() models.ListItem {
	return models.ListItem{
		Icon:      "BookOpen",
		URL:       "#",
		IconColor: SectionPalette[0].Color,
		IconBg:    SectionPalette[0].Bg,
		Visible:   true,
	}
}

// DefaultSocialDraft is the working copy opened by AddNewPlatform.
func DefaultSocialDraft(id string) models.ListItem {
	return models.ListItem{
		ID:        id,
		Name:      defaultPlatformName,
		NameEn:    defaultPlatformNameEn,
		Icon:      icons.Fallback,
		URL:       defaultPlatformURL,
		IconColor: SocialPalette[0].Color,
		IconBg:    SocialPalette[0].Bg,
		Visible:   false,
	}
}
