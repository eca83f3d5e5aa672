package models

import (
	"encoding/json"
	"time"
)

// Settings keys used by the list editors.
const (
	SectionsKey    = "sections"
	SocialMediaKey = "socialMedia"
)

// Setting is a raw stored setting: a key, its JSON value and the version
// token incremented on every write.
type Setting struct {
	// Key is the setting name.
	Key string `json:"key" db:"setting_key"`

	// Value is the stored JSON document. List settings hold a JSON array.
	Value json.RawMessage `json:"value" db:"setting_value"`

	// Version starts at 1 on the first write and grows by one per write.
	Version int64 `json:"version" db:"version"`

	// UpdatedAt is the time of the last write.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the name of the database table holding settings.
func (s Setting) TableName() string {
	return "site_settings"
}

// SettingUpdate replaces the whole value of a setting.
type SettingUpdate struct {
	// Key is taken from the URL, never from the body.
	Key string `json:"-"`

	// Value is the new JSON document.
	Value json.RawMessage `json:"value"`

	// ExpectedVersion enables an optimistic concurrency check when set:
	// 0 means "the key must not exist yet", n > 0 means "the stored version
	// must be n". Nil writes unconditionally.
	ExpectedVersion *int64 `json:"expected_version,omitempty"`

	// Hash is the hex HMAC-SHA256 of the compacted Value. It is checked by
	// the server only when both sides share a hash key.
	Hash string `json:"hash,omitempty"`
}

// UpdateResult acknowledges a setting write.
type UpdateResult struct {
	Updated bool  `json:"updated"`
	Version int64 `json:"version"`
}

// ListSetting is a list-valued setting as seen by the editors.
type ListSetting struct {
	Key     string
	Items   ItemList
	Version int64
}
