package jbudget

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAccountValidation(t *testing.T) {
	testCases := []struct {
		name    string
		id      int
		typ     AccountType
		acName  string
		initial Money
		wantErr error
	}{
		{name: "valid", id: 1, typ: Asset, acName: "Conto", initial: M(100)},
		{name: "zero ID", id: 0, typ: Asset, acName: "Conto", initial: M(100), wantErr: ErrInvalidID},
		{name: "negative ID", id: -3, typ: Asset, acName: "Conto", initial: M(100), wantErr: ErrInvalidID},
		{name: "unknown type", id: 1, typ: AccountType(42), acName: "Conto", initial: M(100), wantErr: ErrMissingValue},
		{name: "empty name", id: 1, typ: Asset, acName: "", initial: M(100), wantErr: ErrMissingValue},
		{name: "negative initial balance", id: 1, typ: Asset, acName: "Conto", initial: M(-1), wantErr: ErrConstraint},
		{name: "zero initial balance ok", id: 1, typ: Liability, acName: "Prestito", initial: M(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAccount(tc.id, tc.typ, tc.acName, tc.initial)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("NewAccount error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAccount unexpected error: %v", err)
			}
			if a.Name() != strings.ToUpper(tc.acName) {
				t.Errorf("name %q not normalized to upper case", a.Name())
			}
			if !a.Balance().Equal(tc.initial) {
				t.Errorf("fresh account balance = %s, want %s", a.Balance().Plain(), tc.initial.Plain())
			}
		})
	}
}

func TestAccountNameNormalization(t *testing.T) {
	a, err := NewAccount(1, Asset, "conto corrente", M(50))
	if err != nil {
		t.Fatal(err)
	}
	if a.Name() != "CONTO CORRENTE" {
		t.Errorf("Name() = %q, want CONTO CORRENTE", a.Name())
	}
	if err := a.SetName("cassa"); err != nil {
		t.Fatal(err)
	}
	if a.Name() != "CASSA" {
		t.Errorf("after SetName, Name() = %q, want CASSA", a.Name())
	}
}

// postMovements creates a dated transaction adopting the given movements
// and adds it to the ledger.
func postMovements(t *testing.T, l *Ledger, date Date, movements ...*Movement) *Transaction {
	t.Helper()
	tx, err := l.NewTransaction(date)
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}
	for _, m := range movements {
		if err := tx.AddMovement(m); err != nil {
			t.Fatalf("AddMovement: %v", err)
		}
	}
	if err := l.AddTransaction(tx); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	return tx
}

func TestAccountBalanceSigns(t *testing.T) {
	testCases := []struct {
		name string
		typ  AccountType
		mtyp MovementType
		want Money
	}{
		{name: "asset increment adds", typ: Asset, mtyp: Increment, want: M(1100)},
		{name: "asset decrement subtracts", typ: Asset, mtyp: Decrement, want: M(900)},
		{name: "liability increment subtracts", typ: Liability, mtyp: Increment, want: M(900)},
		{name: "liability decrement adds", typ: Liability, mtyp: Decrement, want: M(1100)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			a, err := l.AddAccount(tc.typ, "conto", M(1000))
			if err != nil {
				t.Fatal(err)
			}
			m, err := l.NewMovement(tc.mtyp, M(100), a)
			if err != nil {
				t.Fatal(err)
			}
			postMovements(t, l, Today(), m)
			if got := a.Balance(); !got.Equal(tc.want) {
				t.Errorf("Balance() = %s, want %s", got.Plain(), tc.want.Plain())
			}
		})
	}
}

func TestAccountBalanceExcludesFutureMovements(t *testing.T) {
	// Account CONTO holds 15000. T1 moves -1000/+2000 today, T2 moves
	// -3000/+4000 in the future: only T1 counts.
	l := NewLedger()
	conto, err := l.AddAccount(Asset, "CONTO", M(15000))
	if err != nil {
		t.Fatal(err)
	}

	m1, _ := l.NewMovement(Decrement, M(1000), conto)
	m2, _ := l.NewMovement(Increment, M(2000), conto)
	postMovements(t, l, Today(), m1, m2)

	m3, _ := l.NewMovement(Decrement, M(3000), conto)
	m4, _ := l.NewMovement(Increment, M(4000), conto)
	postMovements(t, l, Today().AddDays(10), m3, m4)

	if got := conto.Balance(); !got.Equal(M(16000)) {
		t.Errorf("Balance() = %s, want 16000", got.Plain())
	}

	// On the future day itself, every movement counts.
	if got := conto.BalanceAt(Today().AddDays(10)); !got.Equal(M(17000)) {
		t.Errorf("BalanceAt(+10d) = %s, want 17000", got.Plain())
	}
}

func TestAccountBalanceTracksGraphMutations(t *testing.T) {
	// Balance is recomputed on each read: re-dating the owning
	// transaction into the future removes its movements from the balance.
	l := NewLedger()
	a, err := l.AddAccount(Asset, "conto", M(500))
	if err != nil {
		t.Fatal(err)
	}
	m, _ := l.NewMovement(Increment, M(100), a)
	tx := postMovements(t, l, Today(), m)

	if got := a.Balance(); !got.Equal(M(600)) {
		t.Fatalf("Balance() = %s, want 600", got.Plain())
	}
	if err := tx.SetDate(Today().AddDays(5)); err != nil {
		t.Fatal(err)
	}
	if got := a.Balance(); !got.Equal(M(500)) {
		t.Errorf("after re-dating, Balance() = %s, want 500", got.Plain())
	}
}

func TestAccountEqual(t *testing.T) {
	a, _ := NewAccount(1, Asset, "CONTO", M(0))
	sameID, _ := NewAccount(1, Liability, "OTHER", M(0))
	sameName, _ := NewAccount(9, Asset, "conto", M(0))
	different, _ := NewAccount(9, Asset, "CASSA", M(0))

	// Same ID or same name is enough.
	if !a.Equal(sameID) {
		t.Error("accounts with the same ID must be equal")
	}
	if !a.Equal(sameName) {
		t.Error("accounts with the same name must be equal")
	}
	if a.Equal(different) {
		t.Error("accounts with different ID and name must not be equal")
	}
	if a.Equal(nil) {
		t.Error("no account equals nil")
	}
}

func TestAccountMovementsFilter(t *testing.T) {
	l := NewLedger()
	a, err := l.AddAccount(Asset, "conto", M(0))
	if err != nil {
		t.Fatal(err)
	}
	inc, _ := l.NewMovement(Increment, M(10), a)
	dec, _ := l.NewMovement(Decrement, M(5), a)
	postMovements(t, l, Today(), inc, dec)

	if got := len(a.Movements(nil)); got != 2 {
		t.Fatalf("Movements(nil) = %d movements, want 2", got)
	}
	decs := a.Movements(func(m *Movement) bool { return m.Type() == Decrement })
	if len(decs) != 1 || !decs[0].Equal(dec) {
		t.Errorf("filtered movements = %v, want just the decrement", decs)
	}
}
