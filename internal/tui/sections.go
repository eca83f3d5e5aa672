// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/editor"
	"github.com/MKhiriev/site-settings/internal/icons"
	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/models"
)

type formMode int

const (
	formNone formMode = iota
	formEdit
	formAdd
)

// sectionsState is the page's own copy of the sections list. The page loads
// it and the editor keeps it current through its update callback.
type sectionsState struct {
	mu    sync.RWMutex
	items models.ItemList
}

func (s *sectionsState) set(items models.ItemList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func (s *sectionsState) get() models.ItemList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Clone()
}

// SectionsModel is the sections page. It owns the list: it fetches it,
// hands it to the [editor.SectionEditor] and renders whatever the editor
// echoes back.
type SectionsModel struct {
	ctx    context.Context
	store  editor.SettingsStore
	editor *editor.SectionEditor
	state  *sectionsState

	idx      int
	loading  bool
	busy     bool
	mode     formMode
	form     formItemModel
	editItem models.ListItem
	errMsg   string
	spinner  spinner.Model
}

// NewSectionsModel creates the page and its editor over st.
func NewSectionsModel(ctx context.Context, st editor.SettingsStore, opts ...editor.Option) *SectionsModel {
	state := &sectionsState{items: models.ItemList{}}
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &SectionsModel{
		ctx:     ctx,
		store:   st,
		editor:  editor.NewSectionEditor(st, nil, 0, state.set, opts...),
		state:   state,
		loading: true,
		spinner: s,
	}
}

func (m *SectionsModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *SectionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sectionsLoadedMsg:
		m.loading = false
		switch {
		case msg.err == nil:
			m.editor.SetData(msg.setting.Items, msg.setting.Version)
			m.state.set(m.editor.Items())
			m.errMsg = ""
		case errors.Is(msg.err, store.ErrSettingNotFound):
			m.editor.SetData(models.ItemList{}, 0)
			m.state.set(models.ItemList{})
			m.errMsg = ""
		default:
			m.errMsg = humanizeError(msg.err)
		}
		m.clampCursor()
		return m, nil

	case opDoneMsg:
		m.busy = false
		m.errMsg = humanizeError(msg.err)
		switch msg.op {
		case "update":
			if msg.err == nil || m.editor.Policy() == editor.PolicyOptimistic {
				m.editor.FinishEdit()
				m.mode = formNone
			}
		case "add":
			if !m.editor.AddFormOpen() {
				m.mode = formNone
				m.idx = len(m.state.get()) - 1
			}
		}
		m.clampCursor()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode != formNone {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.mode != formNone {
		return m.updateForm(keyMsg)
	}

	if m.busy || m.loading {
		if key.Matches(keyMsg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		return m, nil
	}

	items := m.state.get()
	current, hasCurrent := m.current(items)

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.add):
		m.editor.OpenAddForm()
		m.form = newFormItemModel(m.editor.Draft(), icons.SectionIcons, editor.SectionPalette)
		m.mode = formAdd
		m.errMsg = ""
	case !hasCurrent:
		return m, nil
	case key.Matches(keyMsg, keys.toggle):
		return m, m.cmdOp("toggle", func(ctx context.Context) error {
			return m.editor.ToggleVisibility(ctx, current.ID)
		})
	case key.Matches(keyMsg, keys.delete):
		return m, m.cmdOp("delete", func(ctx context.Context) error {
			return m.editor.DeleteItem(ctx, current.ID)
		})
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		m.editor.StartEdit(current.ID)
		m.editItem = current
		m.form = newFormItemModel(current, icons.SectionIcons, editor.SectionPalette)
		m.mode = formEdit
		m.errMsg = ""
	}

	return m, nil
}

func (m *SectionsModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.mode == formEdit {
			m.editor.FinishEdit()
		} else {
			m.editor.CloseAddForm()
		}
		m.mode = formNone
		m.errMsg = ""
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		if m.busy {
			return m, nil
		}
		if m.mode == formEdit {
			return m, m.submitEdit()
		}
		return m, m.submitAdd()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(keyMsg)
	return m, cmd
}

func (m *SectionsModel) submitEdit() tea.Cmd {
	patch := m.form.patchFrom(m.editItem)
	if patch.IsEmpty() {
		m.editor.FinishEdit()
		m.mode = formNone
		return nil
	}

	id := m.editItem.ID
	return m.cmdOp("update", func(ctx context.Context) error {
		return m.editor.UpdateItem(ctx, id, patch)
	})
}

func (m *SectionsModel) submitAdd() tea.Cmd {
	if patch := m.form.patchFrom(m.editor.Draft()); !patch.IsEmpty() {
		if err := m.editor.PatchDraft(patch); err != nil {
			m.errMsg = humanizeError(err)
			return nil
		}
	}

	return m.cmdOp("add", m.editor.AddItem)
}

func (m *SectionsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	st := m.store

	return func() tea.Msg {
		setting, err := st.Get(ctx, models.SectionsKey)
		return sectionsLoadedMsg{setting: setting, err: err}
	}
}

func (m *SectionsModel) cmdOp(op string, fn func(context.Context) error) tea.Cmd {
	m.busy = true
	ctx := m.ctx

	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m *SectionsModel) current(items models.ItemList) (models.ListItem, bool) {
	if len(items) == 0 || m.idx < 0 || m.idx >= len(items) {
		return models.ListItem{}, false
	}
	return items[m.idx], true
}

func (m *SectionsModel) clampCursor() {
	n := len(m.state.get())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *SectionsModel) View() string {
	switch m.mode {
	case formEdit:
		return renderPage("ИЗМЕНЕНИЕ РАЗДЕЛА", m.formBody(), "esc: назад │ tab: след. поле │ ←/→: выбор │ enter: сохранить")
	case formAdd:
		return renderPage("НОВЫЙ РАЗДЕЛ", m.formBody(), "esc: закрыть │ tab: след. поле │ ←/→: выбор │ enter: добавить")
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View() + " Загрузка списка...\n")
		return renderPage("РАЗДЕЛЫ САЙТА", strings.TrimRight(b.String(), "\n"), "esc: меню")
	}
	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}
	if m.busy || m.editor.Pending() {
		b.WriteString(m.spinner.View() + " Сохранение...\n\n")
	}

	items := m.state.get()
	if len(items) == 0 {
		b.WriteString("Разделов нет\n")
	} else {
		b.WriteString(renderItemTable(items, m.idx))
	}

	return renderPage(
		"РАЗДЕЛЫ САЙТА",
		strings.TrimRight(b.String(), "\n"),
		"space: видимость │ e: изм. │ a: добавить │ d: удалить │ r: обновить │ esc: меню",
	)
}

func (m *SectionsModel) formBody() string {
	body := m.form.View()
	if m.busy {
		body += "\n\n" + m.spinner.View() + " Сохранение..."
	}
	if m.errMsg != "" {
		body += "\n\nОшибка: " + m.errMsg
	}
	return body
}

// renderItemTable draws the list shared by both pages.
func renderItemTable(items models.ItemList, cursor int) string {
	var b strings.Builder
	b.WriteString("ID   │    │ " + padText("Название", 20) + " │ " + padText("Name", 16) + " │ Ссылка\n")
	b.WriteString("─────┼────┼──────────────────────┼──────────────────┼────────────────────\n")

	for i, item := range items {
		glyph := icons.Resolve(item.Icon, icons.Style{Color: item.IconColor, Bg: item.IconBg, Size: 1})
		row := fmt.Sprintf("%s│ %s │ %s │ %s │ %s",
			rowNumber(i == cursor, i),
			glyph,
			padText(fitText(item.Name, 20), 20),
			padText(fitText(item.NameEn, 16), 16),
			fitText(valueOrDash(item.URL), 30),
		)
		if !item.Visible {
			row = hiddenStyle.Render(row + " (скрыт)")
		}
		b.WriteString(row + "\n")
	}

	return b.String()
}
