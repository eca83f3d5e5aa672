package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/internal/store"
	"github.com/MKhiriev/site-settings/models"
)

// memStore is an in-memory SettingsStore with the same version semantics as
// the server: versions start at 1 and a mismatching expected version fails
// with store.ErrVersionConflict.
type memStore struct {
	mu       sync.Mutex
	lists    map[string]models.ItemList
	versions map[string]int64
	writes   []models.ItemList

	// failWith makes every Update fail with this error
	failWith error
	// reject makes Update answer {Updated: false} without error
	reject bool
	// getErr makes Get fail
	getErr error
	// beforeUpdate runs outside the lock before each Update; call is the
	// zero-based index of the write
	beforeUpdate func(call int)
}

func newMemStore() *memStore {
	return &memStore{
		lists:    map[string]models.ItemList{},
		versions: map[string]int64{},
	}
}

func (s *memStore) seed(key string, items models.ItemList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = items.Clone()
	s.versions[key]++
}

func (s *memStore) Get(_ context.Context, key string) (models.ListSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return models.ListSetting{}, s.getErr
	}
	items, ok := s.lists[key]
	if !ok {
		return models.ListSetting{}, fmt.Errorf("get %q: %w", key, store.ErrSettingNotFound)
	}
	return models.ListSetting{Key: key, Items: items.Clone(), Version: s.versions[key]}, nil
}

func (s *memStore) Update(_ context.Context, key string, items models.ItemList, expected *int64) (models.UpdateResult, error) {
	s.mu.Lock()
	call := len(s.writes)
	hook := s.beforeUpdate
	s.mu.Unlock()

	if hook != nil {
		hook(call)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes = append(s.writes, items.Clone())

	if s.failWith != nil {
		return models.UpdateResult{}, s.failWith
	}
	if s.reject {
		return models.UpdateResult{Updated: false}, nil
	}
	if expected != nil && *expected != s.versions[key] {
		return models.UpdateResult{}, store.ErrVersionConflict
	}

	s.lists[key] = items.Clone()
	s.versions[key]++
	return models.UpdateResult{Updated: true, Version: s.versions[key]}, nil
}

func (s *memStore) stored(key string) models.ItemList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists[key].Clone()
}

func (s *memStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

// recordingNotifier collects pushed notifications.
type recordingNotifier struct {
	mu    sync.Mutex
	items []notify.Notification
}

func (n *recordingNotifier) Push(severity notify.Severity, text string) uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, notify.Notification{ID: uint64(len(n.items) + 1), Severity: severity, Text: text})
	return uint64(len(n.items))
}

func (n *recordingNotifier) all() []notify.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Notification(nil), n.items...)
}

// seqIDs generates "id-1", "id-2", ...
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// constIDs always returns the same id.
type constIDs string

func (c constIDs) Generate() string { return string(c) }

func sampleSections() models.ItemList {
	return models.ItemList{
		{ID: "1", Name: "الكتب", NameEn: "Books", Icon: "BookOpen", URL: "#books", IconColor: "text-blue-600", IconBg: "bg-blue-100", Visible: true},
		{ID: "2", Name: "الفن", NameEn: "Art", Icon: "Palette", URL: "#art", IconColor: "text-pink-600", IconBg: "bg-pink-100", Visible: false},
		{ID: "3", Name: "الموسيقى", NameEn: "Music", Icon: "Music", URL: "#music", IconColor: "text-green-600", IconBg: "bg-green-100", Visible: true},
	}
}

func samplePlatforms() models.ItemList {
	return models.ItemList{
		{ID: "1", Name: "فيسبوك", NameEn: "Facebook", Icon: "Facebook", URL: "https://facebook.com", IconColor: "text-white", IconBg: "bg-blue-600", Visible: true},
		{ID: "2", Name: "يوتيوب", NameEn: "Youtube", Icon: "Youtube", URL: "https://youtube.com", IconColor: "text-white", IconBg: "bg-red-600", Visible: true},
	}
}
