package editor

import "github.com/MKhiriev/site-settings/models"

// The functions below never modify their input; each returns a new list.
// Operations on an absent id return an unchanged copy.

// toggleVisibility flips Visible on the first item with the given id.
func toggleVisibility(list models.ItemList, id string) models.ItemList {
	out := list.Clone()
	if idx := out.IndexOf(id); idx >= 0 {
		out[idx].Visible = !out[idx].Visible
	}
	return out
}

// removeItem drops the first item with the given id.
func removeItem(list models.ItemList, id string) models.ItemList {
	out := make(models.ItemList, 0, len(list))
	removed := false
	for _, item := range list {
		if !removed && item.ID == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out
}

// patchItem applies patch to the first item with the given id.
func patchItem(list models.ItemList, id string, patch models.ItemPatch) models.ItemList {
	out := list.Clone()
	if idx := out.IndexOf(id); idx >= 0 {
		out[idx] = patch.Apply(out[idx])
	}
	return out
}

// replaceItem swaps in item for the first item with the same id.
func replaceItem(list models.ItemList, item models.ListItem) models.ItemList {
	out := list.Clone()
	if idx := out.IndexOf(item.ID); idx >= 0 {
		out[idx] = item
	}
	return out
}

// appendItem adds item at the tail.
func appendItem(list models.ItemList, item models.ListItem) models.ItemList {
	out := make(models.ItemList, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}
