package jbudget

import (
	"fmt"
	"strings"
)

// AccountType defines the two kinds of account: an asset or a liability.
type AccountType int

const (
	// Asset accounts grow when incremented (cash, bank accounts...).
	Asset AccountType = iota
	// Liability accounts shrink when incremented (loans, debts...).
	Liability
)

func (t AccountType) String() string {
	switch t {
	case Asset:
		return "ASSET"
	case Liability:
		return "LIABILITY"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToUpper(s) {
	case "ASSET":
		return Asset, nil
	case "LIABILITY":
		return Liability, nil
	default:
		return 0, fmt.Errorf("%w: account type %q", ErrParse, s)
	}
}

func (t AccountType) valid() bool { return t == Asset || t == Liability }

// Account is a balance-bearing bucket against which movements post.
//
// The account owns the ordered list of movements referencing it; the list
// is maintained by the Ledger and the owning Transactions, never directly
// by callers.
type Account struct {
	id        int
	typ       AccountType
	name      string
	initial   Money
	movements []*Movement
}

// NewAccount builds an Account after validating its fields.
// The name is normalized to upper case; the initial balance must not be
// negative.
func NewAccount(id int, typ AccountType, name string, initial Money) (*Account, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: account ID %d", ErrInvalidID, id)
	}
	if !typ.valid() {
		return nil, fmt.Errorf("%w: account type", ErrMissingValue)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: account name", ErrMissingValue)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance %s must not be negative", ErrConstraint, initial.Plain())
	}
	return &Account{id: id, typ: typ, name: strings.ToUpper(name), initial: initial}, nil
}

// ID returns the account identifier.
func (a *Account) ID() int { return a.id }

// Type returns the account type.
func (a *Account) Type() AccountType { return a.typ }

// Name returns the upper-cased account name.
func (a *Account) Name() string { return a.name }

// InitialBalance returns the opening balance.
func (a *Account) InitialBalance() Money { return a.initial }

// SetType replaces the account type.
func (a *Account) SetType(typ AccountType) error {
	if !typ.valid() {
		return fmt.Errorf("%w: account type", ErrMissingValue)
	}
	a.typ = typ
	return nil
}

// SetName replaces the name, normalized to upper case.
func (a *Account) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: account name", ErrMissingValue)
	}
	a.name = strings.ToUpper(name)
	return nil
}

// SetInitialBalance replaces the opening balance.
func (a *Account) SetInitialBalance(initial Money) error {
	if initial.IsNegative() {
		return fmt.Errorf("%w: initial balance %s must not be negative", ErrConstraint, initial.Plain())
	}
	a.initial = initial
	return nil
}

// Balance computes the current balance: the initial balance adjusted by
// every movement dated today or earlier. Future-dated movements do not
// count. The sum of increments minus decrements is added for an asset and
// subtracted for a liability.
//
// The value is recomputed on every call, it always reflects the current
// movement list.
func (a *Account) Balance() Money {
	return a.BalanceAt(Today())
}

// BalanceAt computes the balance considering only movements dated on or
// before the given day.
func (a *Account) BalanceAt(day Date) Money {
	var variation Money
	for _, m := range a.movements {
		if m.date.After(day) {
			continue
		}
		variation = variation.Add(m.Signed())
	}
	if a.typ == Liability {
		variation = variation.Neg()
	}
	return a.initial.Add(variation)
}

// Movements returns the movements posted against this account that satisfy
// the predicate, in posting order. A nil predicate selects all of them.
// The returned slice is a snapshot.
func (a *Account) Movements(p func(*Movement) bool) []*Movement {
	out := make([]*Movement, 0, len(a.movements))
	for _, m := range a.movements {
		if p == nil || p(m) {
			out = append(out, m)
		}
	}
	return out
}

// addMovement appends a movement to the account list. Only the Ledger and
// the owning Transaction call this.
func (a *Account) addMovement(m *Movement) error {
	if m == nil {
		return fmt.Errorf("%w: movement", ErrMissingValue)
	}
	for _, x := range a.movements {
		if x.Equal(m) {
			return fmt.Errorf("%w: movement %d on account %s", ErrDuplicate, m.id, a.name)
		}
	}
	a.movements = append(a.movements, m)
	return nil
}

// dropMovement removes a movement from the account list if present.
func (a *Account) dropMovement(m *Movement) {
	for i, x := range a.movements {
		if x.Equal(m) {
			a.movements = append(a.movements[:i], a.movements[i+1:]...)
			return
		}
	}
}

// Equal reports whether two accounts are the same: same ID or same name.
// Same OR rule as Tag.Equal.
func (a *Account) Equal(o *Account) bool {
	if o == nil {
		return false
	}
	return a.id == o.id || a.name == o.name
}

func (a *Account) String() string {
	return fmt.Sprintf("%d) %s (%s), balance: %s", a.id, a.name, a.typ, a.Balance())
}
