package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "fits", in: "Books", max: 10, want: "Books"},
		{name: "cut", in: "Instagram page", max: 8, want: "Insta..."},
		{name: "tiny max", in: "Youtube", max: 2, want: "Yo"},
		{name: "no limit", in: "Youtube", max: 0, want: "Youtube"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestFitText_ArabicIsCutByWidth(t *testing.T) {
	got := fitText("الموسيقى والفنون الجميلة", 10)

	assert.LessOrEqual(t, lipgloss.Width(got), 10)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.True(t, strings.HasPrefix("الموسيقى والفنون الجميلة", strings.TrimSuffix(got, "...")), "cut on rune boundary")
}

func TestPadText(t *testing.T) {
	assert.Equal(t, "ab   ", padText("ab", 5))
	assert.Equal(t, "abcdef", padText("abcdef", 3))
}

func TestRenderPage(t *testing.T) {
	out := renderPage("ЗАГОЛОВОК", "line 1\nline 2", "enter: ок")

	assert.Contains(t, out, "ЗАГОЛОВОК")
	assert.Contains(t, out, "  line 1\n")
	assert.Contains(t, out, "  line 2\n")
	assert.Contains(t, out, "enter: ок")
	assert.Contains(t, out, "ctrl+c: выход")
}

func TestRenderPage_EmptyData(t *testing.T) {
	out := renderPage("T", "   ", "")
	assert.Contains(t, out, "  -\n")
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "#", valueOrDash("#"))
}
