package jbudget

import (
	"fmt"
	"os"
	"path/filepath"
)

// This file contains the flat-file persistence collaborators: an exporter
// and an importer working on a directory of four row-oriented text files,
// one per entity kind.

// File names of the four resources inside the export directory.
const (
	AccountsFile     = "accounts.txt"
	TagsFile         = "tags.txt"
	TransactionsFile = "transactions.txt"
	MovementsFile    = "movements.txt"
)

// TextExporter writes the whole entity graph of a controller to a
// directory of flat text files. It implements ExportManager.
type TextExporter struct {
	controller *Controller
}

// NewTextExporter returns an exporter reading from the given controller.
func NewTextExporter(c *Controller) *TextExporter {
	return &TextExporter{controller: c}
}

// ExportAll writes the four resources under dir, creating it if needed.
// Any write failure aborts the export; files already written remain.
func (e *TextExporter) ExportAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var accounts, tags, transactions, movements []string
	for _, a := range e.controller.Accounts(nil) {
		accounts = append(accounts, encodeAccount(a))
	}
	for _, t := range e.controller.Tags() {
		tags = append(tags, encodeTag(t))
	}
	for _, t := range e.controller.Transactions(nil) {
		transactions = append(transactions, encodeTransaction(t))
	}
	for _, m := range e.controller.Movements() {
		movements = append(movements, encodeMovement(m))
	}

	for _, res := range []struct {
		name string
		rows []string
	}{
		{AccountsFile, accounts},
		{TagsFile, tags},
		{TransactionsFile, transactions},
		{MovementsFile, movements},
	} {
		if err := writeResource(filepath.Join(dir, res.name), res.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeResource(path string, rows []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeRows(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// TextImporter reconstructs the entity graph from a directory of flat text
// files into a controller. It implements ImportManager.
//
// Resources are replayed in dependency order: accounts, tags,
// transactions, movements. Entities keep their persisted IDs; the ledger
// resynchronizes its allocator as they enter. There is no rollback: a
// failure on a later resource leaves the earlier ones already applied.
type TextImporter struct {
	controller *Controller
}

// NewTextImporter returns an importer feeding the given controller.
func NewTextImporter(c *Controller) *TextImporter {
	return &TextImporter{controller: c}
}

// ImportAll reads the four resources under dir and rebuilds the graph.
func (i *TextImporter) ImportAll(dir string) error {
	if err := i.importAccounts(filepath.Join(dir, AccountsFile)); err != nil {
		return err
	}
	if err := i.importTags(filepath.Join(dir, TagsFile)); err != nil {
		return err
	}
	created, err := i.importTransactions(filepath.Join(dir, TransactionsFile))
	if err != nil {
		return err
	}
	if err := i.importMovements(filepath.Join(dir, MovementsFile), created); err != nil {
		return err
	}
	for _, t := range created {
		if err := i.controller.AddTransaction(t); err != nil {
			return err
		}
	}
	return nil
}

func (i *TextImporter) importAccounts(path string) error {
	rows, err := readResource(path)
	if err != nil {
		return err
	}
	for _, line := range rows {
		row, err := parseAccountRow(line)
		if err != nil {
			return err
		}
		if _, err := i.controller.AddAccountWithID(row.id, row.typ, row.name, row.initial); err != nil {
			return err
		}
	}
	return nil
}

func (i *TextImporter) importTags(path string) error {
	rows, err := readResource(path)
	if err != nil {
		return err
	}
	for _, line := range rows {
		row, err := parseTagRow(line)
		if err != nil {
			return err
		}
		if _, err := i.controller.AddTagWithID(row.id, row.name, row.description); err != nil {
			return err
		}
	}
	return nil
}

func (i *TextImporter) importTransactions(path string) ([]*Transaction, error) {
	rows, err := readResource(path)
	if err != nil {
		return nil, err
	}
	var created []*Transaction
	for _, line := range rows {
		row, err := parseTransactionRow(line)
		if err != nil {
			return nil, err
		}
		t, err := i.controller.NewTransactionWithID(row.id, row.date)
		if err != nil {
			return nil, err
		}
		for _, tag := range i.resolveTags(row.tagIDs) {
			if err := t.AddTag(tag); err != nil {
				return nil, err
			}
		}
		created = append(created, t)
	}
	return created, nil
}

func (i *TextImporter) importMovements(path string, created []*Transaction) error {
	rows, err := readResource(path)
	if err != nil {
		return err
	}
	for _, line := range rows {
		row, err := parseMovementRow(line)
		if err != nil {
			return err
		}
		account, err := i.resolveAccount(row.accountID)
		if err != nil {
			return err
		}
		m, err := i.controller.NewMovementWithID(row.id, row.typ, row.amount, account)
		if err != nil {
			return err
		}
		for _, tag := range i.resolveTags(row.tagIDs) {
			if err := m.AddTag(tag); err != nil {
				return err
			}
		}
		if err := attach(m, row.transactionID, created); err != nil {
			return err
		}
	}
	return nil
}

// resolveAccount looks an account up by ID; anything but exactly one match
// is an inconsistent reference.
func (i *TextImporter) resolveAccount(id int) (*Account, error) {
	matches := i.controller.Accounts(func(a *Account) bool { return a.ID() == id })
	if len(matches) != 1 {
		return nil, fmt.Errorf("%w: account %d matches %d accounts", ErrInconsistentRef, id, len(matches))
	}
	return matches[0], nil
}

// resolveTags returns the already-imported tags with these IDs, in row
// order; unknown IDs are skipped.
func (i *TextImporter) resolveTags(ids []int) []*Tag {
	var out []*Tag
	for _, id := range ids {
		for _, tag := range i.controller.Tags() {
			if tag.ID() == id {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}

// attach adds the movement to the created transaction carrying this ID.
func attach(m *Movement, transactionID int, created []*Transaction) error {
	for _, t := range created {
		if t.ID() == transactionID {
			return t.AddMovement(m)
		}
	}
	return fmt.Errorf("%w: movement %d references unknown transaction %d", ErrInconsistentRef, m.ID(), transactionID)
}

func readResource(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRows(f)
}
