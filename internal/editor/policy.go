package editor

import "fmt"

// SavePolicy decides when a derived list becomes the editor's state.
type SavePolicy string

const (
	// PolicyOptimistic adopts the new list and notifies the owner before the
	// write. A failed write is reported as a warning and not rolled back.
	PolicyOptimistic SavePolicy = "optimistic"
	// PolicyConfirmed adopts the new list only after the backend acknowledged
	// the write. A failed write leaves the list untouched and is reported as
	// an error.
	PolicyConfirmed SavePolicy = "confirmed"
)

// ParsePolicy converts a configuration value into a [SavePolicy].
func ParsePolicy(s string) (SavePolicy, error) {
	switch p := SavePolicy(s); p {
	case PolicyOptimistic, PolicyConfirmed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
