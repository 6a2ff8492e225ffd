package jbudget

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file contains the row codec for the flat-file format: one
// semicolon-delimited row per entity, one resource per entity kind.
// The format must stay human readable and round-trippable; nothing else
// about the storage backend leaks into the core.
//
// Row shapes:
//
//	account:     ID;TYPE;NAME;INITIAL_BALANCE
//	tag:         ID;NAME;DESCRIPTION
//	transaction: ID;DATE;TAG_IDS
//	movement:    ID;TYPE;AMOUNT;ACCOUNT_ID;TRANSACTION_ID;TAG_IDS
//
// Dates are written day-first (dd-MM-yyyy) and read in either that form or
// ISO. TAG_IDS is a comma-separated, possibly empty, list of integers.

const rowSeparator = ";"

func encodeAccount(a *Account) string {
	return strings.Join([]string{
		strconv.Itoa(a.ID()), a.Type().String(), a.Name(), a.InitialBalance().Plain(),
	}, rowSeparator)
}

func encodeTag(t *Tag) string {
	return strings.Join([]string{
		strconv.Itoa(t.ID()), t.Name(), t.Description(),
	}, rowSeparator)
}

func encodeTransaction(t *Transaction) string {
	return strings.Join([]string{
		strconv.Itoa(t.ID()), t.Date().Legacy(), encodeTagIDs(t.Tags()),
	}, rowSeparator)
}

func encodeMovement(m *Movement) string {
	return strings.Join([]string{
		strconv.Itoa(m.ID()), m.Type().String(), m.Amount().Plain(),
		strconv.Itoa(m.Account().ID()), strconv.Itoa(m.Transaction().ID()),
		encodeTagIDs(m.Tags()),
	}, rowSeparator)
}

func encodeTagIDs(tags []*Tag) string {
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = strconv.Itoa(t.ID())
	}
	return strings.Join(ids, ",")
}

type accountRow struct {
	id      int
	typ     AccountType
	name    string
	initial Money
}

type tagRow struct {
	id          int
	name        string
	description string
}

type transactionRow struct {
	id     int
	date   Date
	tagIDs []int
}

type movementRow struct {
	id            int
	typ           MovementType
	amount        Money
	accountID     int
	transactionID int
	tagIDs        []int
}

func parseAccountRow(line string) (row accountRow, err error) {
	fields, err := splitRow(line, 4)
	if err != nil {
		return row, err
	}
	if row.id, err = parseID(fields[0]); err != nil {
		return row, err
	}
	if row.typ, err = ParseAccountType(fields[1]); err != nil {
		return row, err
	}
	row.name = fields[2]
	if row.initial, err = ParseMoney(fields[3]); err != nil {
		return row, err
	}
	return row, nil
}

func parseTagRow(line string) (row tagRow, err error) {
	fields, err := splitRow(line, 3)
	if err != nil {
		return row, err
	}
	if row.id, err = parseID(fields[0]); err != nil {
		return row, err
	}
	row.name = fields[1]
	row.description = fields[2]
	return row, nil
}

func parseTransactionRow(line string) (row transactionRow, err error) {
	fields, err := splitRow(line, 3)
	if err != nil {
		return row, err
	}
	if row.id, err = parseID(fields[0]); err != nil {
		return row, err
	}
	if row.date, err = ParseDate(fields[1]); err != nil {
		return row, err
	}
	if row.tagIDs, err = parseTagIDs(fields[2]); err != nil {
		return row, err
	}
	return row, nil
}

func parseMovementRow(line string) (row movementRow, err error) {
	fields, err := splitRow(line, 6)
	if err != nil {
		return row, err
	}
	if row.id, err = parseID(fields[0]); err != nil {
		return row, err
	}
	if row.typ, err = ParseMovementType(fields[1]); err != nil {
		return row, err
	}
	if row.amount, err = ParseMoney(fields[2]); err != nil {
		return row, err
	}
	if row.accountID, err = parseID(fields[3]); err != nil {
		return row, err
	}
	if row.transactionID, err = parseID(fields[4]); err != nil {
		return row, err
	}
	if row.tagIDs, err = parseTagIDs(fields[5]); err != nil {
		return row, err
	}
	return row, nil
}

// splitRow splits a row and checks the field count. Rows written by older
// versions omitted the trailing empty tag list, so want-1 fields is
// accepted and padded.
func splitRow(line string, want int) ([]string, error) {
	fields := strings.Split(line, rowSeparator)
	if len(fields) == want-1 {
		fields = append(fields, "")
	}
	if len(fields) != want {
		return nil, fmt.Errorf("%w: row %q has %d fields, want %d", ErrParse, line, len(fields), want)
	}
	return fields, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: identifier %q", ErrParse, s)
	}
	return id, nil
}

func parseTagIDs(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(strings.TrimSuffix(s, ","), ",") {
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// writeRows writes one row per line.
func writeRows(w io.Writer, rows []string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(row + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// readRows collects the non-empty lines of r.
func readRows(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows, scanner.Err()
}
