package scorecard

import "errors"

var (
	// ErrEntryConflict is returned when scoring a category that is already filled.
	ErrEntryConflict = errors.New("category already has a score card entry")

	// ErrMalformedSave is returned when serialized scorecard text cannot be read back.
	ErrMalformedSave = errors.New("malformed scorecard")
)
