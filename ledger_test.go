package jbudget

import (
	"errors"
	"testing"
)

func TestLedgerAddAccountUniqueness(t *testing.T) {
	l := NewLedger()
	if _, err := l.AddAccount(Asset, "conto", M(1000)); err != nil {
		t.Fatal(err)
	}

	// Uniqueness uses the same rule as account equality: ID or name.
	if _, err := l.AddAccount(Liability, "CONTO", M(0)); !errors.Is(err, ErrDuplicate) {
		t.Errorf("same name: error = %v, want ErrDuplicate", err)
	}
	if _, err := l.AddAccountWithID(1, Asset, "cassa", M(0)); !errors.Is(err, ErrDuplicate) {
		t.Errorf("same ID: error = %v, want ErrDuplicate", err)
	}
	if got := len(l.Accounts(nil)); got != 1 {
		t.Errorf("ledger holds %d accounts, want 1", got)
	}
}

func TestLedgerGeneratedIDsResyncAfterExplicitOnes(t *testing.T) {
	l := NewLedger()
	l.AddAccountWithID(1, Asset, "carta", M(0))
	l.AddAccountWithID(2, Asset, "carta2", M(0))

	a, err := l.AddAccount(Asset, "carta3", M(0))
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() != 3 {
		t.Errorf("generated ID = %d, want 3", a.ID())
	}

	l.Reset()
	b, err := l.AddAccount(Asset, "carta", M(0))
	if err != nil {
		t.Fatal(err)
	}
	if b.ID() != 1 {
		t.Errorf("after reset, generated ID = %d, want 1", b.ID())
	}
}

func TestLedgerModifyAccount(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(1000))

	if err := l.ModifyAccount(a, Liability, "prestito", M(500)); err != nil {
		t.Fatal(err)
	}
	if a.Type() != Liability || a.Name() != "PRESTITO" || !a.InitialBalance().Equal(M(500)) {
		t.Errorf("account not modified: %v", a)
	}

	// Validation happens before any field is touched.
	if err := l.ModifyAccount(a, Asset, "conto", M(-1)); !errors.Is(err, ErrConstraint) {
		t.Fatalf("negative balance: error = %v, want ErrConstraint", err)
	}
	if a.Type() != Liability || a.Name() != "PRESTITO" {
		t.Error("failed modification mutated the account")
	}

	stranger, _ := NewAccount(9, Asset, "altro", M(0))
	if err := l.ModifyAccount(stranger, Asset, "x", M(0)); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown account: error = %v, want ErrNotFound", err)
	}
}

func TestLedgerRemoveAccount(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(0))

	if err := l.RemoveAccount(a); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveAccount(a); !errors.Is(err, ErrNotFound) {
		t.Errorf("second removal: error = %v, want ErrNotFound", err)
	}
	if err := l.RemoveAccount(nil); !errors.Is(err, ErrMissingValue) {
		t.Errorf("nil account: error = %v, want ErrMissingValue", err)
	}
}

func TestLedgerAddTransactionPostsMovements(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(1000))
	m, _ := l.NewMovement(Decrement, M(200), a)
	tx := postMovements(t, l, Today(), m)

	if got := len(a.Movements(nil)); got != 1 {
		t.Fatalf("account holds %d movements, want 1", got)
	}
	if err := l.AddTransaction(tx); !errors.Is(err, ErrDuplicate) {
		t.Errorf("adding the same transaction twice: error = %v, want ErrDuplicate", err)
	}
	if err := l.AddTransaction(nil); !errors.Is(err, ErrMissingValue) {
		t.Errorf("nil transaction: error = %v, want ErrMissingValue", err)
	}
}

func TestLedgerRemoveTransactionDetachesMovements(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(1000))
	m1, _ := l.NewMovement(Decrement, M(200), a)
	m2, _ := l.NewMovement(Decrement, M(0.99), a)
	tx := postMovements(t, l, Today(), m1, m2)

	if err := l.RemoveTransaction(tx); err != nil {
		t.Fatal(err)
	}
	if got := len(a.Movements(nil)); got != 0 {
		t.Errorf("account still holds %d movements", got)
	}
	if !a.Balance().Equal(M(1000)) {
		t.Errorf("Balance() = %s, want 1000", a.Balance().Plain())
	}
	if err := l.RemoveTransaction(tx); !errors.Is(err, ErrNotFound) {
		t.Errorf("second removal: error = %v, want ErrNotFound", err)
	}
}

func TestLedgerMovementsIsDerived(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(0))

	if got := len(l.Movements()); got != 0 {
		t.Fatalf("empty ledger reports %d movements", got)
	}

	m1, _ := l.NewMovement(Increment, M(1), a)
	postMovements(t, l, Today(), m1)
	m2, _ := l.NewMovement(Decrement, M(2), a)
	m3, _ := l.NewMovement(Increment, M(3), a)
	postMovements(t, l, Today(), m2, m3)

	if got := len(l.Movements()); got != 3 {
		t.Errorf("ledger reports %d movements, want 3", got)
	}
}

func TestLedgerAccountPredicates(t *testing.T) {
	l := NewLedger()
	l.AddAccount(Asset, "conto corrente", M(1000))
	l.AddAccount(Asset, "prepagata", M(800))
	l.AddAccount(Asset, "cassa contante", M(1500))
	l.AddAccount(Liability, "prestito macchina", M(25000))
	l.AddAccount(Liability, "debiti", M(50000))

	assets := l.Accounts(func(a *Account) bool { return a.Type() == Asset })
	if len(assets) != 3 {
		t.Errorf("asset accounts = %d, want 3", len(assets))
	}
	rich := l.Accounts(func(a *Account) bool { return a.Balance().GreaterThan(M(14000)) })
	if len(rich) != 2 {
		t.Errorf("accounts above 14000 = %d, want 2", len(rich))
	}
}

func TestLedgerTransactionPredicates(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(0))

	m1, _ := l.NewMovement(Decrement, M(5000), a)
	postMovements(t, l, Today(), m1)
	m2, _ := l.NewMovement(Decrement, M(100), a)
	m3, _ := l.NewMovement(Increment, M(600), a)
	postMovements(t, l, MustParseDate("2012-12-12"), m2, m3)
	tx3, _ := l.NewTransaction(MustParseDate("2002-05-18"))
	if err := l.AddTransaction(tx3); err != nil {
		t.Fatal(err)
	}

	withMovements := l.Transactions(func(tx *Transaction) bool { return len(tx.Movements(nil)) > 0 })
	if len(withMovements) != 2 {
		t.Errorf("transactions with movements = %d, want 2", len(withMovements))
	}
	positive := l.Transactions(func(tx *Transaction) bool { return tx.TotalAmount().IsPositive() })
	if len(positive) != 1 {
		t.Errorf("transactions with positive total = %d, want 1", len(positive))
	}
	before2014 := l.Transactions(func(tx *Transaction) bool {
		return tx.Date().Before(MustParseDate("2014-01-15"))
	})
	if len(before2014) != 2 {
		t.Errorf("transactions before 2014 = %d, want 2", len(before2014))
	}
}

func TestLedgerTags(t *testing.T) {
	l := NewLedger()
	food, err := l.AddTag("food", "groceries and restaurants")
	if err != nil {
		t.Fatal(err)
	}
	if food.Name() != "FOOD" {
		t.Errorf("tag name = %q, want FOOD", food.Name())
	}

	if _, err := l.AddTag("FOOD", "other"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("same name: error = %v, want ErrDuplicate", err)
	}
	if _, err := l.AddTagWithID(1, "casa", "home"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("same ID: error = %v, want ErrDuplicate", err)
	}

	if err := l.ModifyTag(food, "spesa", "only groceries"); err != nil {
		t.Fatal(err)
	}
	if food.Name() != "SPESA" || food.Description() != "only groceries" {
		t.Errorf("tag not modified: %v", food)
	}

	if err := l.RemoveTag(food); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveTag(food); !errors.Is(err, ErrNotFound) {
		t.Errorf("second removal: error = %v, want ErrNotFound", err)
	}
}

func TestLedgerReset(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(100))
	l.AddTag("food", "")
	m, _ := l.NewMovement(Increment, M(10), a)
	postMovements(t, l, Today(), m)

	l.Reset()

	if len(l.Accounts(nil)) != 0 || len(l.Transactions(nil)) != 0 || len(l.Tags()) != 0 {
		t.Error("reset left entities behind")
	}
	b, _ := l.AddAccount(Asset, "nuovo", M(0))
	if b.ID() != 1 {
		t.Errorf("after reset, first generated ID = %d, want 1", b.ID())
	}
}
