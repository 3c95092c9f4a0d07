package slotmap

import "errors"

var (
	// ErrNoValue is returned by Get when the key has no current slot.
	// It signals absence, not failure; callers either check Contains
	// first or test for it with errors.Is.
	ErrNoValue = errors.New("no value for key")
)
