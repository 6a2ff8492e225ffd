package jbudget

import "fmt"

// Transaction is a dated group of movements plus descriptive tags.
//
// The transaction is the single owner of its movements' dates: changing
// the transaction date re-dates every owned movement. Its tags cascade the
// same way, a tag added to or removed from the transaction is added to or
// removed from every owned movement.
type Transaction struct {
	id        int
	date      Date
	movements []*Movement
	tags      []*Tag
}

// NewTransaction builds a Transaction after validating its fields.
func NewTransaction(id int, date Date) (*Transaction, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: transaction ID %d", ErrInvalidID, id)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: transaction date", ErrMissingValue)
	}
	return &Transaction{id: id, date: date}, nil
}

// ID returns the transaction identifier.
func (t *Transaction) ID() int { return t.id }

// Date returns the transaction date.
func (t *Transaction) Date() Date { return t.date }

// SetDate replaces the date and propagates it to every owned movement.
func (t *Transaction) SetDate(d Date) error {
	if d.IsZero() {
		return fmt.Errorf("%w: transaction date", ErrMissingValue)
	}
	t.date = d
	for _, m := range t.movements {
		m.date = d
	}
	return nil
}

// Movements returns the owned movements satisfying the predicate, in
// insertion order. A nil predicate selects all of them. The returned slice
// is a snapshot.
func (t *Transaction) Movements(p func(*Movement) bool) []*Movement {
	out := make([]*Movement, 0, len(t.movements))
	for _, m := range t.movements {
		if p == nil || p(m) {
			out = append(out, m)
		}
	}
	return out
}

// AddMovement adopts a movement: the movement's owning transaction and
// date are set to this transaction's before it is appended.
func (t *Transaction) AddMovement(m *Movement) error {
	if m == nil {
		return fmt.Errorf("%w: movement", ErrMissingValue)
	}
	for _, x := range t.movements {
		if x.Equal(m) {
			return fmt.Errorf("%w: movement %d in transaction %d", ErrDuplicate, m.id, t.id)
		}
	}
	if err := m.setTransaction(t); err != nil {
		return err
	}
	if err := m.setDate(t.date); err != nil {
		return err
	}
	t.movements = append(t.movements, m)
	return nil
}

// RemoveMovement drops a movement from this transaction and from the
// movement list of its account.
func (t *Transaction) RemoveMovement(m *Movement) error {
	if m == nil {
		return fmt.Errorf("%w: movement", ErrMissingValue)
	}
	for i, x := range t.movements {
		if x.Equal(m) {
			t.movements = append(t.movements[:i], t.movements[i+1:]...)
			m.account.dropMovement(m)
			return nil
		}
	}
	return fmt.Errorf("%w: movement %d in transaction %d", ErrNotFound, m.id, t.id)
}

// Tags returns a snapshot of the tags attached to this transaction.
func (t *Transaction) Tags() []*Tag {
	return append([]*Tag(nil), t.tags...)
}

// AddTag attaches a tag to the transaction and to every owned movement
// that does not already carry it.
func (t *Transaction) AddTag(tag *Tag) error {
	if tag == nil {
		return fmt.Errorf("%w: tag", ErrMissingValue)
	}
	if containsTag(t.tags, tag) {
		return fmt.Errorf("%w: tag %s in transaction %d", ErrDuplicate, tag.name, t.id)
	}
	t.tags = append(t.tags, tag)
	for _, m := range t.movements {
		if !m.HasTag(tag) {
			m.tags = append(m.tags, tag)
		}
	}
	return nil
}

// RemoveTag detaches a tag from the transaction and from every owned
// movement.
func (t *Transaction) RemoveTag(tag *Tag) error {
	if tag == nil {
		return fmt.Errorf("%w: tag", ErrMissingValue)
	}
	for i, x := range t.tags {
		if x.Equal(tag) {
			t.tags = append(t.tags[:i], t.tags[i+1:]...)
			for _, m := range t.movements {
				if m.HasTag(tag) {
					m.RemoveTag(tag)
				}
			}
			return nil
		}
	}
	return fmt.Errorf("%w: tag %s in transaction %d", ErrNotFound, tag.name, t.id)
}

// HasTag reports whether a tag equal to the given one is attached.
func (t *Transaction) HasTag(tag *Tag) bool { return containsTag(t.tags, tag) }

// TotalAmount computes the net variation of the owned movements:
// increments add, decrements subtract. Account types play no role here.
// Recomputed on every call.
func (t *Transaction) TotalAmount() Money {
	var total Money
	for _, m := range t.movements {
		total = total.Add(m.Signed())
	}
	return total
}

// Equal reports whether two transactions are the same, by ID.
func (t *Transaction) Equal(o *Transaction) bool {
	return o != nil && t.id == o.id
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%d) %s, total: %s", t.id, t.date.Legacy(), t.TotalAmount())
}
