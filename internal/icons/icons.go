// Package icons maps the symbolic icon names stored in list items to
// terminal glyphs. Unknown names render as [Fallback].
package icons

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fallback is the icon used for names missing from every catalog.
const Fallback = "Globe"

// SectionIcons is the catalog offered by the section editor.
var SectionIcons = []string{
	"BookOpen", "Users", "Image", "PenTool", "Award", "Calendar",
	"Star", "Heart", "Music", "Camera", "Palette", "Brush",
}

// SocialIcons is the catalog offered by the social media editor.
var SocialIcons = []string{
	"Facebook", "Twitter", "Instagram", "Youtube", "Linkedin", "Github",
	"Telegram", "Whatsapp", "Tiktok", "Snapchat", "Mail", "Phone", "Globe",
}

var glyphs = map[string]string{
	// sections
	"BookOpen": "📖",
	"Users":    "👥",
	"Image":    "🖼",
	"PenTool":  "✒",
	"Award":    "🏅",
	"Calendar": "📅",
	"Star":     "★",
	"Heart":    "♥",
	"Music":    "♫",
	"Camera":   "📷",
	"Palette":  "🎨",
	"Brush":    "🖌",

	// social
	"Facebook":  "ⓕ",
	"Twitter":   "𝕏",
	"Instagram": "◎",
	"Youtube":   "▶",
	"Linkedin":  "ⓘ",
	"Github":    "⌥",
	"Telegram":  "✈",
	"Whatsapp":  "✆",
	"Tiktok":    "♪",
	"Snapchat":  "👻",
	"Mail":      "✉",
	"Phone":     "☎",
	"Globe":     "🌐",
}

// Style tunes how a glyph is rendered. Color and Bg take the item's
// "text-*" and "bg-*" tokens; Size pads the glyph horizontally.
type Style struct {
	Color string
	Bg    string
	Size  int
}

// Known reports whether name has its own glyph.
func Known(name string) bool {
	_, ok := glyphs[name]
	return ok
}

// Glyph returns the raw glyph for name, or the fallback glyph.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return glyphs[Fallback]
}

// Resolve renders name with style. Unknown names fall back to [Fallback].
func Resolve(name string, style Style) string {
	s := lipgloss.NewStyle()
	if c, ok := TokenColor(style.Color); ok {
		s = s.Foreground(c)
	}
	if c, ok := TokenColor(style.Bg); ok {
		s = s.Background(c)
	}
	if style.Size > 0 {
		s = s.Padding(0, style.Size)
	}

	return s.Render(Glyph(name))
}

// InCatalog reports whether name belongs to catalog.
func InCatalog(catalog []string, name string) bool {
	return slices.Contains(catalog, name)
}

// tailwind palette, shade 100/500/600/900 only
var shades = map[string]map[string]string{
	"blue":   {"100": "#DBEAFE", "500": "#3B82F6", "600": "#2563EB"},
	"green":  {"100": "#DCFCE7", "600": "#16A34A"},
	"purple": {"100": "#F3E8FF", "600": "#9333EA"},
	"orange": {"100": "#FFEDD5", "600": "#EA580C"},
	"red":    {"100": "#FEE2E2", "600": "#DC2626"},
	"yellow": {"100": "#FEF9C3", "600": "#CA8A04"},
	"pink":   {"100": "#FCE7F3", "600": "#DB2777"},
	"indigo": {"100": "#E0E7FF", "600": "#4F46E5"},
	"sky":    {"100": "#E0F2FE", "500": "#0EA5E9"},
	"gray":   {"100": "#F3F4F6", "900": "#111827"},
}

// TokenColor converts a "text-<color>-<shade>" or "bg-<color>-<shade>"
// token (or "text-white"/"bg-white") into a terminal color.
func TokenColor(token string) (lipgloss.Color, bool) {
	rest, ok := strings.CutPrefix(token, "text-")
	if !ok {
		rest, ok = strings.CutPrefix(token, "bg-")
	}
	if !ok || rest == "" {
		return "", false
	}

	switch rest {
	case "white":
		return lipgloss.Color("#FFFFFF"), true
	case "black":
		return lipgloss.Color("#000000"), true
	}

	name, shade, ok := strings.Cut(rest, "-")
	if !ok {
		return "", false
	}
	hex, ok := shades[name][shade]
	if !ok {
		return "", false
	}

	return lipgloss.Color(hex), true
}
