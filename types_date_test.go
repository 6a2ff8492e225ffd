package jbudget

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "iso", input: "2025-03-14", want: NewDate(2025, time.March, 14)},
		{name: "legacy day-first", input: "14-03-2025", want: NewDate(2025, time.March, 14)},
		{name: "garbage", input: "14/03/2025", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not a date", input: "yesterday", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.input, got)
				}
				if !errors.Is(err, ErrParse) {
					t.Errorf("ParseDate(%q) error = %v, want ErrParse", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(2024, time.December, 31)
	if d.String() != "2024-12-31" {
		t.Errorf("String() = %q, want 2024-12-31", d.String())
	}
	if d.Legacy() != "31-12-2024" {
		t.Errorf("Legacy() = %q, want 31-12-2024", d.Legacy())
	}
	for _, s := range []string{d.String(), d.Legacy()} {
		back, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if back != d {
			t.Errorf("round trip through %q = %v, want %v", s, back, d)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, time.January, 31)
	b := NewDate(2025, time.February, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: want %v < %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After: want %v > %v", b, a)
	}
	if a.After(a) || a.Before(a) {
		t.Error("a day is neither before nor after itself")
	}
}

func TestDateNormalization(t *testing.T) {
	// Overflowing day counts roll into the next month, like time.Date.
	got := NewDate(2025, time.January, 32)
	want := NewDate(2025, time.February, 1)
	if got != want {
		t.Errorf("NewDate(2025, jan, 32) = %v, want %v", got, want)
	}
	if d := want.AddDays(-1); d != NewDate(2025, time.January, 31) {
		t.Errorf("AddDays(-1) = %v", d)
	}
}
