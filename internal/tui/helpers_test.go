package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/models"
)

// keyPress builds the key message bubbletea would deliver for s.
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s rune by rune into model.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// run executes cmd and returns its message, or nil.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// collect runs cmd, expanding batches in order, and returns the first
// message of type T.
func collect[T tea.Msg](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	switch msg := cmd().(type) {
	case T:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if got, ok := collect[T](c); ok {
				return got, true
			}
		}
	}
	return zero, false
}

// fakeStore keeps lists in memory with server-like versioning.
type fakeStore struct {
	mu       sync.Mutex
	lists    map[string]models.ItemList
	versions map[string]int64
	writes   int
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{lists: map[string]models.ItemList{}, versions: map[string]int64{}}
}

func (s *fakeStore) seed(key string, items models.ItemList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = items.Clone()
	s.versions[key]++
}

func (s *fakeStore) Get(_ context.Context, key string) (models.ListSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.lists[key]
	if !ok {
		return models.ListSetting{}, fmt.Errorf("get %q: %w", key, store.ErrSettingNotFound)
	}
	return models.ListSetting{Key: key, Items: items.Clone(), Version: s.versions[key]}, nil
}

func (s *fakeStore) Update(_ context.Context, key string, items models.ItemList, expected *int64) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.failWith != nil {
		return models.UpdateResult{}, s.failWith
	}
	if expected != nil && *expected != s.versions[key] {
		return models.UpdateResult{}, store.ErrVersionConflict
	}
	s.lists[key] = items.Clone()
	s.versions[key]++
	return models.UpdateResult{Updated: true, Version: s.versions[key]}, nil
}

func (s *fakeStore) stored(key string) models.ItemList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists[key].Clone()
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func testSections() models.ItemList {
	return models.ItemList{
		{ID: "1", Name: "الكتب", NameEn: "Books", Icon: "BookOpen", URL: "#books", IconColor: "text-blue-600", IconBg: "bg-blue-100", Visible: true},
		{ID: "2", Name: "الفن", NameEn: "Art", Icon: "Palette", URL: "#art", IconColor: "text-pink-600", IconBg: "bg-pink-100", Visible: false},
	}
}

func testPlatforms() models.ItemList {
	return models.ItemList{
		{ID: "1", Name: "فيسبوك", NameEn: "Facebook", Icon: "Facebook", URL: "https://facebook.com", IconColor: "text-white", IconBg: "bg-blue-600", Visible: true},
		{ID: "2", Name: "يوتيوب", NameEn: "Youtube", Icon: "Youtube", URL: "https://youtube.com", IconColor: "text-white", IconBg: "bg-red-600", Visible: true},
	}
}
