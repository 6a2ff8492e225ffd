package jbudget

import (
	"fmt"
	"strings"
)

// MovementType defines the two directions a movement can take.
type MovementType int

const (
	// Increment adds the amount to the account variation.
	Increment MovementType = iota
	// Decrement subtracts the amount from the account variation.
	Decrement
)

func (t MovementType) String() string {
	switch t {
	case Increment:
		return "INCREMENT"
	case Decrement:
		return "DECREMENT"
	default:
		return "unknown"
	}
}

// ParseMovementType parses a string into a MovementType.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToUpper(s) {
	case "INCREMENT":
		return Increment, nil
	case "DECREMENT":
		return Decrement, nil
	default:
		return 0, fmt.Errorf("%w: movement type %q", ErrParse, s)
	}
}

func (t MovementType) valid() bool { return t == Increment || t == Decrement }

// Movement is a single posting against one account. Its amount and account
// are fixed at construction; its date always mirrors the date of the
// transaction that owns it.
type Movement struct {
	id          int
	typ         MovementType
	amount      Money
	date        Date
	tags        []*Tag
	account     *Account
	transaction *Transaction
}

// NewMovement builds a Movement after validating its fields. The amount
// must be strictly positive; the direction is carried by the type.
// The movement has no date until a Transaction adopts it.
func NewMovement(id int, typ MovementType, amount Money, account *Account) (*Movement, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: movement ID %d", ErrInvalidID, id)
	}
	if !typ.valid() {
		return nil, fmt.Errorf("%w: movement type", ErrMissingValue)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: movement amount %s must be positive", ErrConstraint, amount.Plain())
	}
	if account == nil {
		return nil, fmt.Errorf("%w: movement account", ErrMissingValue)
	}
	return &Movement{id: id, typ: typ, amount: amount, account: account}, nil
}

// ID returns the movement identifier.
func (m *Movement) ID() int { return m.id }

// Type returns the movement direction.
func (m *Movement) Type() MovementType { return m.typ }

// Amount returns the (always positive) movement amount.
func (m *Movement) Amount() Money { return m.amount }

// Signed returns the amount with its direction applied: positive for an
// increment, negative for a decrement.
func (m *Movement) Signed() Money {
	if m.typ == Decrement {
		return m.amount.Neg()
	}
	return m.amount
}

// Date returns the movement date, inherited from the owning transaction.
func (m *Movement) Date() Date { return m.date }

// Account returns the account this movement posts against.
func (m *Movement) Account() *Account { return m.account }

// Transaction returns the owning transaction, nil until the movement is
// added to one.
func (m *Movement) Transaction() *Transaction { return m.transaction }

// Tags returns a snapshot of the tags attached to this movement.
func (m *Movement) Tags() []*Tag {
	return append([]*Tag(nil), m.tags...)
}

// AddTag attaches a tag. Attaching a tag equal to one already present is a
// duplicate.
func (m *Movement) AddTag(t *Tag) error {
	if t == nil {
		return fmt.Errorf("%w: tag", ErrMissingValue)
	}
	if containsTag(m.tags, t) {
		return fmt.Errorf("%w: tag %s on movement %d", ErrDuplicate, t.name, m.id)
	}
	m.tags = append(m.tags, t)
	return nil
}

// RemoveTag detaches a tag.
func (m *Movement) RemoveTag(t *Tag) error {
	if t == nil {
		return fmt.Errorf("%w: tag", ErrMissingValue)
	}
	for i, x := range m.tags {
		if x.Equal(t) {
			m.tags = append(m.tags[:i], m.tags[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: tag %s on movement %d", ErrNotFound, t.name, m.id)
}

// HasTag reports whether a tag equal to t is attached.
func (m *Movement) HasTag(t *Tag) bool { return containsTag(m.tags, t) }

// setTransaction records the owning transaction. Called once by
// Transaction.AddMovement.
func (m *Movement) setTransaction(t *Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction", ErrMissingValue)
	}
	m.transaction = t
	return nil
}

// setDate mirrors the owning transaction date onto the movement.
func (m *Movement) setDate(d Date) error {
	if d.IsZero() {
		return fmt.Errorf("%w: movement date", ErrMissingValue)
	}
	m.date = d
	return nil
}

// Equal reports whether two movements are the same, by ID.
func (m *Movement) Equal(o *Movement) bool {
	return o != nil && m.id == o.id
}

func (m *Movement) String() string {
	return fmt.Sprintf("%d) %s %s on %s", m.id, m.typ, m.amount, m.account.Name())
}
