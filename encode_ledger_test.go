package jbudget

import (
	"errors"
	"testing"
)

func TestParseAccountRow(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "valid", line: "1;ASSET;CONTO;15000"},
		{name: "valid liability", line: "2;LIABILITY;PRESTITO;0"},
		{name: "bad id", line: "x;ASSET;CONTO;15000", wantErr: ErrParse},
		{name: "bad type", line: "1;SAVINGS;CONTO;15000", wantErr: ErrParse},
		{name: "bad balance", line: "1;ASSET;CONTO;lots", wantErr: ErrParse},
		{name: "too few fields", line: "1;ASSET", wantErr: ErrParse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseAccountRow(tc.line)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("parseAccountRow(%q): %v", tc.line, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("parseAccountRow(%q) error = %v, want %v", tc.line, err, tc.wantErr)
			}
		})
	}
}

func TestParseTransactionRow(t *testing.T) {
	row, err := parseTransactionRow("3;14-03-2025;1,2")
	if err != nil {
		t.Fatal(err)
	}
	if row.id != 3 || row.date != MustParseDate("2025-03-14") {
		t.Errorf("row = %+v", row)
	}
	if len(row.tagIDs) != 2 || row.tagIDs[0] != 1 || row.tagIDs[1] != 2 {
		t.Errorf("tagIDs = %v, want [1 2]", row.tagIDs)
	}

	// ISO dates and a trailing tag-ID comma are accepted on read.
	if _, err := parseTransactionRow("3;2025-03-14;1,2,"); err != nil {
		t.Errorf("ISO date with trailing comma rejected: %v", err)
	}
	// The tag list may be missing entirely (older rows).
	row, err = parseTransactionRow("3;14-03-2025")
	if err != nil {
		t.Fatal(err)
	}
	if len(row.tagIDs) != 0 {
		t.Errorf("tagIDs = %v, want none", row.tagIDs)
	}

	if _, err := parseTransactionRow("3;14.03.2025;"); !errors.Is(err, ErrParse) {
		t.Errorf("malformed date: error = %v, want ErrParse", err)
	}
}

func TestParseMovementRow(t *testing.T) {
	row, err := parseMovementRow("7;DECREMENT;250.5;1;3;2")
	if err != nil {
		t.Fatal(err)
	}
	if row.id != 7 || row.typ != Decrement || !row.amount.Equal(M(250.5)) {
		t.Errorf("row = %+v", row)
	}
	if row.accountID != 1 || row.transactionID != 3 {
		t.Errorf("references = account %d transaction %d, want 1 and 3", row.accountID, row.transactionID)
	}

	if _, err := parseMovementRow("7;SIDEWAYS;250.5;1;3;"); !errors.Is(err, ErrParse) {
		t.Errorf("bad type: error = %v, want ErrParse", err)
	}
	if _, err := parseMovementRow("7;DECREMENT;250.5;one;3;"); !errors.Is(err, ErrParse) {
		t.Errorf("bad account reference: error = %v, want ErrParse", err)
	}
}

func TestEncodeRows(t *testing.T) {
	l := NewLedger()
	a, _ := l.AddAccount(Asset, "conto", M(15000))
	food, _ := l.AddTag("food", "groceries")
	m, _ := l.NewMovement(Decrement, M(250.5), a)
	tx := postMovements(t, l, MustParseDate("2025-03-14"), m)
	tx.AddTag(food)

	if got, want := encodeAccount(a), "1;ASSET;CONTO;15000"; got != want {
		t.Errorf("encodeAccount = %q, want %q", got, want)
	}
	if got, want := encodeTag(food), "1;FOOD;groceries"; got != want {
		t.Errorf("encodeTag = %q, want %q", got, want)
	}
	if got, want := encodeTransaction(tx), "1;14-03-2025;1"; got != want {
		t.Errorf("encodeTransaction = %q, want %q", got, want)
	}
	if got, want := encodeMovement(m), "1;DECREMENT;250.5;1;1;1"; got != want {
		t.Errorf("encodeMovement = %q, want %q", got, want)
	}
}
