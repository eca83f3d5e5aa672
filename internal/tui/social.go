// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/editor"
	"github.com/MKhiriev/site-settings/internal/icons"
	"github.com/MKhiriev/site-settings/models"
)

// SocialModel is the social media page. The editor owns the list and its
// load/save lifecycle; the page renders it, drives the edit modal and asks
// for confirmation before deleting.
type SocialModel struct {
	ctx    context.Context
	editor *editor.SocialMediaEditor
	copy   func(string) error

	idx      int
	busy     bool
	form     formItemModel
	formOpen bool
	errMsg   string
	status   string
	overlay  *errorOverlayModel
	spinner  spinner.Model
}

// NewSocialModel creates the page over e. URLs are copied with the system
// clipboard.
func NewSocialModel(ctx context.Context, e *editor.SocialMediaEditor) *SocialModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &SocialModel{
		ctx:     ctx,
		editor:  e,
		copy:    clipboard.WriteAll,
		spinner: s,
	}
}

func (m *SocialModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *SocialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case socialLoadedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		}
		m.clampCursor()
		return m, nil

	case opDoneMsg:
		m.busy = false
		m.errMsg = ""
		if msg.op == "save edit" {
			m.formOpen = m.editor.Modal().Open()
		} else {
			m.errMsg = humanizeError(msg.err)
		}
		m.clampCursor()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка копирования: " + msg.err.Error()
			m.status = ""
		} else {
			m.status = "Ссылка скопирована: " + msg.url
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}
	if m.formOpen {
		return m.updateModal(keyMsg)
	}
	if _, pending := m.editor.PendingDelete(); pending {
		return m.updateConfirm(keyMsg)
	}

	if m.busy || m.editor.State() == editor.StateLoading {
		if key.Matches(keyMsg, keys.esc) {
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
		return m, nil
	}

	items := m.editor.Items()
	current, hasCurrent := m.current(items)
	m.status = ""

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
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.add):
		if err := m.editor.AddNewPlatform(); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.openForm()
	case !hasCurrent:
		return m, nil
	case key.Matches(keyMsg, keys.toggle):
		return m, m.cmdOp("toggle", func(ctx context.Context) error {
			return m.editor.ToggleVisibility(ctx, current.ID)
		})
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		if err := m.editor.StartEdit(current.ID); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.openForm()
	case key.Matches(keyMsg, keys.delete):
		if err := m.editor.RequestDelete(current.ID); err != nil {
			m.errMsg = humanizeError(err)
		}
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy(current.URL)
	}

	return m, nil
}

func (m *SocialModel) openForm() {
	m.form = newFormItemModel(m.editor.Modal().Item, icons.SocialIcons, editor.SocialPalette)
	m.formOpen = true
	m.errMsg = ""
}

func (m *SocialModel) updateModal(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.editor.CancelEdit()
		m.formOpen = false
		m.errMsg = ""
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		if m.busy {
			return m, nil
		}
		if patch := m.form.patchFrom(m.editor.Modal().Item); !patch.IsEmpty() {
			if err := m.editor.PatchWorkingCopy(patch); err != nil {
				m.errMsg = humanizeError(err)
				return m, nil
			}
		}
		return m, m.cmdOp("save edit", m.editor.SaveEdit)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(keyMsg)
	return m, cmd
}

func (m *SocialModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		return m, m.cmdOp("delete", m.editor.ConfirmDelete)
	case key.Matches(keyMsg, keys.no):
		m.editor.CancelDelete()
	}
	return m, nil
}

func (m *SocialModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	e := m.editor

	return func() tea.Msg {
		return socialLoadedMsg{err: e.Load(ctx)}
	}
}

func (m *SocialModel) cmdOp(op string, fn func(context.Context) error) tea.Cmd {
	m.busy = true
	ctx := m.ctx

	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m *SocialModel) cmdCopy(url string) tea.Cmd {
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{url: url, err: copyFn(url)}
	}
}

func (m *SocialModel) current(items models.ItemList) (models.ListItem, bool) {
	if len(items) == 0 || m.idx < 0 || m.idx >= len(items) {
		return models.ListItem{}, false
	}
	return items[m.idx], true
}

func (m *SocialModel) clampCursor() {
	n := len(m.editor.Items())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *SocialModel) View() string {
	if m.formOpen {
		return m.viewModal()
	}

	var b strings.Builder
	if m.editor.State() == editor.StateLoading {
		b.WriteString(m.spinner.View() + " Загрузка списка...\n")
		return renderPage("СОЦИАЛЬНЫЕ СЕТИ", strings.TrimRight(b.String(), "\n"), "esc: меню")
	}
	if m.overlay != nil {
		b.WriteString(m.overlay.View() + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n\n")
	}
	if m.busy || m.editor.Pending() {
		b.WriteString(m.spinner.View() + " Сохранение...\n\n")
	}

	items := m.editor.Items()
	if len(items) == 0 {
		b.WriteString("Платформ нет\n")
	} else {
		b.WriteString(renderItemTable(items, m.idx))
	}

	if id, pending := m.editor.PendingDelete(); pending {
		name := id
		if item, ok := items.Find(id); ok {
			name = item.NameEn
		}
		b.WriteString("\n" + confirmModel{name: name}.View() + "\n")
	}

	return renderPage(
		"СОЦИАЛЬНЫЕ СЕТИ",
		strings.TrimRight(b.String(), "\n"),
		"space: видимость │ e: изм. │ n: добавить │ d: удалить │ o: копировать ссылку │ r: обновить │ esc: меню",
	)
}

func (m *SocialModel) viewModal() string {
	modal := m.editor.Modal()
	title := "ИЗМЕНЕНИЕ ПЛАТФОРМЫ"
	if modal.Mode == editor.ModalAdding {
		title = "НОВАЯ ПЛАТФОРМА"
	}

	body := m.form.View()
	if m.busy {
		body += "\n\n" + m.spinner.View() + " Сохранение..."
	}
	if modal.Err != nil {
		body += "\n\n" + errorStyle.Render("Не сохранено: "+humanizeError(modal.Err))
	} else if m.errMsg != "" {
		body += "\n\nОшибка: " + m.errMsg
	}

	return renderPage(title, overlayBoxStyle.Render(body), "esc: отмена │ tab: след. поле │ ←/→: выбор │ enter: сохранить")
}
