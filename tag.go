package jbudget

import (
	"fmt"
	"strings"
)

// Tag is a user-defined label attachable to transactions and movements.
type Tag struct {
	id          int
	name        string
	description string
}

// NewTag builds a Tag after validating its fields. The name is normalized
// to upper case; the description is free text and may be empty.
func NewTag(id int, name, description string) (*Tag, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: tag ID %d", ErrInvalidID, id)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: tag name", ErrMissingValue)
	}
	return &Tag{id: id, name: strings.ToUpper(name), description: description}, nil
}

// ID returns the tag identifier.
func (t *Tag) ID() int { return t.id }

// Name returns the upper-cased tag name.
func (t *Tag) Name() string { return t.name }

// Description returns the tag description.
func (t *Tag) Description() string { return t.description }

// SetName replaces the name, normalized to upper case.
func (t *Tag) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: tag name", ErrMissingValue)
	}
	t.name = strings.ToUpper(name)
	return nil
}

// SetDescription replaces the description.
func (t *Tag) SetDescription(description string) {
	t.description = description
}

// Equal reports whether two tags are the same: same ID or same name.
// The OR is deliberate, it is the identity rule the whole model relies on
// for uniqueness checks.
func (t *Tag) Equal(o *Tag) bool {
	if o == nil {
		return false
	}
	return t.id == o.id || t.name == o.name
}

func (t *Tag) String() string {
	return fmt.Sprintf("%d) %s: %s", t.id, t.name, t.description)
}

// containsTag reports whether list holds a tag equal to t.
func containsTag(list []*Tag, t *Tag) bool {
	for _, x := range list {
		if x.Equal(t) {
			return true
		}
	}
	return false
}
