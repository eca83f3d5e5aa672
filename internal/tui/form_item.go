package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/icons"
	"github.com/MKhiriev/site-settings/models"
)

// form rows
const (
	rowName = iota
	rowNameEn
	rowURL
	rowIcon
	rowColor
	rowVisible
	rowCount
)

// formItemModel edits one list item: three text inputs plus icon, color and
// visibility selectors switched with ←/→.
type formItemModel struct {
	inputs  []textinput.Model
	focus   int
	catalog []string
	palette []models.ColorPair

	iconIdx  int
	colorIdx int
	visible  bool
}

func newFormItemModel(item models.ListItem, catalog []string, palette []models.ColorPair) formItemModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
	}
	inputs[rowName].Placeholder = "الاسم"
	inputs[rowNameEn].Placeholder = "English name"
	inputs[rowURL].Placeholder = "https://"

	inputs[rowName].SetValue(item.Name)
	inputs[rowNameEn].SetValue(item.NameEn)
	inputs[rowURL].SetValue(item.URL)
	inputs[rowName].Focus()

	m := formItemModel{
		inputs:   inputs,
		catalog:  catalog,
		palette:  palette,
		iconIdx:  max(slices.Index(catalog, item.Icon), 0),
		colorIdx: 0,
		visible:  item.Visible,
	}
	for i, p := range palette {
		if p.Matches(item.Color()) {
			m.colorIdx = i
			break
		}
	}

	return m
}

func (m formItemModel) Update(msg tea.Msg) (formItemModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.nextField):
			m.setFocus((m.focus + 1) % rowCount)
			return m, nil
		case key.Matches(keyMsg, keys.prevField):
			m.setFocus((m.focus - 1 + rowCount) % rowCount)
			return m, nil
		}
		switch keyMsg.String() {
		case "left", "right", " ":
			if m.focus >= rowIcon {
				m.cycle(keyMsg.String() == "left")
				return m, nil
			}
		}
	}

	if m.focus >= rowIcon {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formItemModel) setFocus(row int) {
	if m.focus < rowIcon {
		m.inputs[m.focus].Blur()
	}
	m.focus = row
	if m.focus < rowIcon {
		m.inputs[m.focus].Focus()
	}
}

func (m *formItemModel) cycle(back bool) {
	step := 1
	if back {
		step = -1
	}

	switch m.focus {
	case rowIcon:
		if n := len(m.catalog); n > 0 {
			m.iconIdx = (m.iconIdx + step + n) % n
		}
	case rowColor:
		if n := len(m.palette); n > 0 {
			m.colorIdx = (m.colorIdx + step + n) % n
		}
	case rowVisible:
		m.visible = !m.visible
	}
}

func (m formItemModel) icon() string {
	if len(m.catalog) == 0 {
		return icons.Fallback
	}
	return m.catalog[m.iconIdx]
}

func (m formItemModel) color() models.ColorPair {
	if len(m.palette) == 0 {
		return models.ColorPair{}
	}
	return m.palette[m.colorIdx]
}

// patchFrom returns the fields of the form that differ from item.
func (m formItemModel) patchFrom(item models.ListItem) models.ItemPatch {
	var p models.ItemPatch

	if v := strings.TrimSpace(m.inputs[rowName].Value()); v != item.Name {
		p.Name = &v
	}
	if v := strings.TrimSpace(m.inputs[rowNameEn].Value()); v != item.NameEn {
		p.NameEn = &v
	}
	if v := strings.TrimSpace(m.inputs[rowURL].Value()); v != item.URL {
		p.URL = &v
	}
	if v := m.icon(); v != item.Icon {
		p.Icon = &v
	}
	if c := m.color(); !c.Matches(item.Color()) {
		p.Color = &c
	}
	if m.visible != item.Visible {
		v := m.visible
		p.Visible = &v
	}

	return p
}

func (m formItemModel) View() string {
	marker := func(row int) string {
		if row == m.focus {
			return ">"
		}
		return " "
	}
	c := m.color()

	var b strings.Builder
	b.WriteString(marker(rowName) + " Название   │ [" + m.inputs[rowName].View() + "]\n")
	b.WriteString(marker(rowNameEn) + " Name (en)  │ [" + m.inputs[rowNameEn].View() + "]\n")
	b.WriteString(marker(rowURL) + " Ссылка     │ [" + m.inputs[rowURL].View() + "]\n")
	b.WriteString(marker(rowIcon) + " Иконка     │ ‹ " + icons.Resolve(m.icon(), icons.Style{Color: c.Color, Bg: c.Bg, Size: 1}) + " " + m.icon() + " ›\n")
	b.WriteString(marker(rowColor) + " Цвет       │ ‹ " + swatch(c) + " " + colorLabel(c) + " ›\n")
	b.WriteString(marker(rowVisible) + " Видимость  │ ‹ " + visibilityLabel(m.visible) + " ›")

	return b.String()
}
