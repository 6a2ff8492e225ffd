package jbudget

import "fmt"

// Ledger is the aggregate owning every account, transaction and tag of the
// budget. Movements are reachable only through the transaction that owns
// them and the account they post against; the ledger never stores them
// directly.
//
// The ledger gate-keeps the invariants no single entity can check alone:
// no two accounts share an ID or a name, no two tags share an ID or a
// name, no two transactions share an ID.
type Ledger struct {
	accounts     []*Account
	transactions []*Transaction
	tags         []*Tag
	ids          *Indexer
}

// NewLedger returns an empty ledger with a fresh identifier allocator.
func NewLedger() *Ledger {
	return &Ledger{ids: NewIndexer()}
}

// AddAccount creates an account with a generated ID and adds it.
func (l *Ledger) AddAccount(typ AccountType, name string, initial Money) (*Account, error) {
	a, err := NewAccount(l.ids.NextAccountID(), typ, name, initial)
	if err != nil {
		return nil, err
	}
	return l.appendAccount(a)
}

// AddAccountWithID creates an account with the given ID and adds it,
// resynchronizing the ID allocator past it. Used when replaying imported
// data.
func (l *Ledger) AddAccountWithID(id int, typ AccountType, name string, initial Money) (*Account, error) {
	a, err := NewAccount(id, typ, name, initial)
	if err != nil {
		return nil, err
	}
	return l.appendAccount(a)
}

func (l *Ledger) appendAccount(a *Account) (*Account, error) {
	for _, x := range l.accounts {
		if x.Equal(a) {
			return nil, fmt.Errorf("%w: account %s", ErrDuplicate, a.Name())
		}
	}
	l.accounts = append(l.accounts, a)
	l.ids.ResyncAccounts(l.accounts)
	return a, nil
}

// ModifyAccount mutates the three editable fields of an account already in
// the ledger. The identity (ID) never changes. All three new values are
// validated before any of them is applied.
func (l *Ledger) ModifyAccount(a *Account, typ AccountType, name string, initial Money) error {
	if a == nil {
		return fmt.Errorf("%w: account", ErrMissingValue)
	}
	if !l.hasAccount(a) {
		return fmt.Errorf("%w: account %s", ErrNotFound, a.Name())
	}
	if _, err := NewAccount(a.ID(), typ, name, initial); err != nil {
		return err
	}
	a.SetType(typ)
	a.SetName(name)
	a.SetInitialBalance(initial)
	return nil
}

// RemoveAccount removes an account from the ledger.
//
// Movements posted against the account are NOT removed from their owning
// transactions: stale references may remain. This mirrors the historical
// behavior; see DESIGN.md.
func (l *Ledger) RemoveAccount(a *Account) error {
	if a == nil {
		return fmt.Errorf("%w: account", ErrMissingValue)
	}
	for i, x := range l.accounts {
		if x.Equal(a) {
			l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: account %s", ErrNotFound, a.Name())
}

// Accounts returns the accounts satisfying the predicate, in insertion
// order. A nil predicate selects all of them. The slice is a snapshot.
func (l *Ledger) Accounts(p func(*Account) bool) []*Account {
	out := make([]*Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		if p == nil || p(a) {
			out = append(out, a)
		}
	}
	return out
}

func (l *Ledger) hasAccount(a *Account) bool {
	for _, x := range l.accounts {
		if x.Equal(a) {
			return true
		}
	}
	return false
}

// NewTransaction creates (but does not add) a transaction with a generated
// ID.
func (l *Ledger) NewTransaction(date Date) (*Transaction, error) {
	return NewTransaction(l.ids.NextTransactionID(), date)
}

// NewMovement creates a movement with a generated ID. The movement joins
// the graph when a transaction adopting it is added to the ledger.
func (l *Ledger) NewMovement(typ MovementType, amount Money, account *Account) (*Movement, error) {
	return NewMovement(l.ids.NextMovementID(), typ, amount, account)
}

// AddTransaction adds a transaction and posts each of its movements onto
// the movement list of that movement's account. Nothing is mutated if the
// transaction is a duplicate or any of its movements already posts against
// its account.
func (l *Ledger) AddTransaction(t *Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction", ErrMissingValue)
	}
	for _, x := range l.transactions {
		if x.Equal(t) {
			return fmt.Errorf("%w: transaction %d", ErrDuplicate, t.ID())
		}
	}
	for _, m := range t.movements {
		for _, x := range m.account.movements {
			if x.Equal(m) {
				return fmt.Errorf("%w: movement %d on account %s", ErrDuplicate, m.ID(), m.account.Name())
			}
		}
	}
	l.transactions = append(l.transactions, t)
	for _, m := range t.movements {
		m.account.movements = append(m.account.movements, m)
	}
	l.ids.ResyncTransactions(l.transactions)
	l.ids.ResyncMovements(l.Movements())
	return nil
}

// RemoveTransaction removes a transaction and detaches each of its
// movements from the movement list of that movement's account.
func (l *Ledger) RemoveTransaction(t *Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction", ErrMissingValue)
	}
	for i, x := range l.transactions {
		if x.Equal(t) {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			for _, m := range t.movements {
				m.account.dropMovement(m)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: transaction %d", ErrNotFound, t.ID())
}

// Transactions returns the transactions satisfying the predicate, in
// insertion order. A nil predicate selects all of them. The slice is a
// snapshot.
func (l *Ledger) Transactions(p func(*Transaction) bool) []*Transaction {
	out := make([]*Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if p == nil || p(t) {
			out = append(out, t)
		}
	}
	return out
}

// Movements returns every movement reachable through the transactions, in
// transaction order.
func (l *Ledger) Movements() []*Movement {
	var out []*Movement
	for _, t := range l.transactions {
		out = append(out, t.movements...)
	}
	return out
}

// AddTag creates a tag with a generated ID and adds it.
func (l *Ledger) AddTag(name, description string) (*Tag, error) {
	t, err := NewTag(l.ids.NextTagID(), name, description)
	if err != nil {
		return nil, err
	}
	return l.appendTag(t)
}

// AddTagWithID creates a tag with the given ID and adds it,
// resynchronizing the ID allocator past it.
func (l *Ledger) AddTagWithID(id int, name, description string) (*Tag, error) {
	t, err := NewTag(id, name, description)
	if err != nil {
		return nil, err
	}
	return l.appendTag(t)
}

func (l *Ledger) appendTag(t *Tag) (*Tag, error) {
	if containsTag(l.tags, t) {
		return nil, fmt.Errorf("%w: tag %s", ErrDuplicate, t.Name())
	}
	l.tags = append(l.tags, t)
	l.ids.ResyncTags(l.tags)
	return t, nil
}

// ModifyTag mutates the editable fields of a tag already in the ledger.
func (l *Ledger) ModifyTag(t *Tag, name, description string) error {
	if t == nil {
		return fmt.Errorf("%w: tag", ErrMissingValue)
	}
	if !containsTag(l.tags, t) {
		return fmt.Errorf("%w: tag %s", ErrNotFound, t.Name())
	}
	if _, err := NewTag(t.ID(), name, description); err != nil {
		return err
	}
	t.SetName(name)
	t.SetDescription(description)
	return nil
}

// RemoveTag removes a tag from the ledger.
//
// Transactions and movements still referencing the tag keep their stale
// reference; no cascade happens. This mirrors the historical behavior;
// see DESIGN.md.
func (l *Ledger) RemoveTag(t *Tag) error {
	if t == nil {
		return fmt.Errorf("%w: tag", ErrMissingValue)
	}
	for i, x := range l.tags {
		if x.Equal(t) {
			l.tags = append(l.tags[:i], l.tags[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: tag %s", ErrNotFound, t.Name())
}

// Tags returns a snapshot of every tag, in insertion order.
func (l *Ledger) Tags() []*Tag {
	return append([]*Tag(nil), l.tags...)
}

// Reset clears every collection and restarts the identifier allocator
// at 1.
func (l *Ledger) Reset() {
	l.accounts = nil
	l.transactions = nil
	l.tags = nil
	l.ids.Reset()
}
