package enum

import "errors"

// Construction and query errors
var (
	// ErrNoOwner is returned when a value is created or duplicated without an
	// owning enum.
	ErrNoOwner = errors.New("value requires an owning enum")
	// ErrNoName is returned when an enum is created with an empty name.
	ErrNoName = errors.New("enum name cannot be empty")
	// ErrNoValueKey is returned when a structured definition lacks the "value"
	// entry carrying the canonical form.
	ErrNoValueKey = errors.New("structured definition missing \"value\" entry")
	// ErrBadRawValue is returned when a raw definition has no usable string
	// form. Canonical forms are never empty.
	ErrBadRawValue = errors.New("raw definition has no usable string form")
	// ErrNotMember is returned by mnemonic queries for names outside the
	// owning enum's member set.
	ErrNotMember = errors.New("name is not a member of the enum")
)
