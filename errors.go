package jbudget

import "errors"

// Domain errors. Entity constructors, mutators and the Ledger wrap these
// with fmt.Errorf and %w so that callers can classify a failure with
// errors.Is while still reading a message that names the offending field.
var (
	// ErrInvalidID rejects identifiers smaller than 1.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrMissingValue rejects a required value that was not provided
	// (empty name, zero date, nil account...).
	ErrMissingValue = errors.New("missing required value")

	// ErrConstraint rejects an out-of-range numeric value
	// (negative initial balance, non-positive movement amount).
	ErrConstraint = errors.New("constraint violated")

	// ErrDuplicate rejects adding an entity equal to one already present.
	ErrDuplicate = errors.New("already exists")

	// ErrNotFound rejects removing or modifying an entity that is absent
	// from its owning collection.
	ErrNotFound = errors.New("not found")

	// ErrInconsistentRef signals an import row whose account reference
	// resolves to zero or more than one account.
	ErrInconsistentRef = errors.New("inconsistent account reference")

	// ErrParse signals malformed text (date or number) in an import row.
	ErrParse = errors.New("malformed value")
)
