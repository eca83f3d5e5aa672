// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// ListItem is one record of a list-valued setting. Sections and social media
// platforms share this shape.
type ListItem struct {
	// ID is assigned on creation and never changes afterwards.
	ID string `json:"id"`

	// Name is the primary (Arabic) display label.
	Name string `json:"name"`

	// NameEn is the English display label.
	NameEn string `json:"nameEn"`

	// Icon is a symbolic icon name resolved by the presentation layer.
	Icon string `json:"icon"`

	// URL is the navigation target. Not validated.
	URL string `json:"url"`

	// IconColor and IconBg are the foreground and background style tokens
	// of the icon. They are expected to come from the same palette entry.
	IconColor string `json:"iconColor"`
	IconBg    string `json:"iconBg"`

	// Visible controls whether the site renders the item.
	Visible bool `json:"visible"`
}

// Color returns the item's color pair.
func (i ListItem) Color() ColorPair {
	return ColorPair{Color: i.IconColor, Bg: i.IconBg}
}

// ItemList is an ordered list of items; the whole list is stored under one
// settings key.
type ItemList []ListItem

// Clone returns an independent copy of the list. A nil list stays nil.
func (l ItemList) Clone() ItemList {
	return slices.Clone(l)
}

// IndexOf returns the position of the first item with the given id, or -1.
func (l ItemList) IndexOf(id string) int {
	return slices.IndexFunc(l, func(item ListItem) bool {
		return item.ID == id
	})
}

// Find returns the first item with the given id.
func (l ItemList) Find(id string) (ListItem, bool) {
	idx := l.IndexOf(id)
	if idx < 0 {
		return ListItem{}, false
	}

	return l[idx], true
}

// IDs returns the ids of all items in list order.
func (l ItemList) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, item := range l {
		ids = append(ids, item.ID)
	}

	return ids
}

// ColorPair is one palette entry: a foreground token and its matching
// background token.
type ColorPair struct {
	Color string `json:"iconColor"`
	Bg    string `json:"iconBg"`
	// Label is a human-readable name shown by pickers. Not persisted.
	Label string `json:"-"`
}

// Matches reports whether both tokens equal the other pair's tokens. Labels
// are ignored.
func (c ColorPair) Matches(other ColorPair) bool {
	return c.Color == other.Color && c.Bg == other.Bg
}

// ItemPatch represents a partial update of a single item.
// Only non-nil fields are applied. The color is patched as a pair so the
// foreground and background can't drift apart.
type ItemPatch struct {
	// Name replaces ListItem.Name when set.
	Name *string `json:"name,omitempty"`

	// NameEn replaces ListItem.NameEn when set.
	NameEn *string `json:"nameEn,omitempty"`

	// Icon replaces ListItem.Icon when set.
	Icon *string `json:"icon,omitempty"`

	// URL replaces ListItem.URL when set.
	URL *string `json:"url,omitempty"`

	// Color replaces both IconColor and IconBg when set.
	Color *ColorPair `json:"color,omitempty"`

	// Visible replaces ListItem.Visible when set.
	Visible *bool `json:"visible,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.NameEn == nil && p.Icon == nil &&
		p.URL == nil && p.Color == nil && p.Visible == nil
}

// Apply returns a copy of item with the patch applied. The id is never
// touched.
func (p ItemPatch) Apply(item ListItem) ListItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.NameEn != nil {
		item.NameEn = *p.NameEn
	}
	if p.Icon != nil {
		item.Icon = *p.Icon
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
	if p.Color != nil {
		item.IconColor = p.Color.Color
		item.IconBg = p.Color.Bg
	}
	if p.Visible != nil {
		item.Visible = *p.Visible
	}

	return item
}

// SetName returns a patch that changes only the name.
func SetName(v string) ItemPatch { return ItemPatch{Name: &v} }

// SetNameEn returns a patch that changes only the English name.
func SetNameEn(v string) ItemPatch { return ItemPatch{NameEn: &v} }

// SetIcon returns a patch that changes only the icon.
func SetIcon(v string) ItemPatch { return ItemPatch{Icon: &v} }

// SetURL returns a patch that changes only the URL.
func SetURL(v string) ItemPatch { return ItemPatch{URL: &v} }

// SetColor returns a patch that changes the color pair.
func SetColor(c ColorPair) ItemPatch { return ItemPatch{Color: &c} }

// SetVisible returns a patch that changes only the visibility flag.
func SetVisible(v bool) ItemPatch { return ItemPatch{Visible: &v} }
