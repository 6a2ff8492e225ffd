package sqlitestore

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/catervpillar/jbudget"
)

// Importer rebuilds the entity graph of a controller from a SQLite
// database file written by an Exporter.
type Importer struct {
	controller *jbudget.Controller
}

// NewImporter returns an import manager feeding the given controller.
func NewImporter(c *jbudget.Controller) *Importer {
	return &Importer{controller: c}
}

// ImportAll loads every entity from the database file at path into the
// controller, resources in dependency order so every reference can be
// resolved against entities already loaded. A failure leaves entities of
// earlier resources already applied.
func (i *Importer) ImportAll(path string) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := i.importAccounts(db); err != nil {
		return err
	}
	if err := i.importTags(db); err != nil {
		return err
	}
	created, err := i.importTransactions(db)
	if err != nil {
		return err
	}
	if err := i.importMovements(db, created); err != nil {
		return err
	}

	ids := make([]int, 0, len(created))
	for id := range created {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if err := i.controller.AddTransaction(created[id]); err != nil {
			return fmt.Errorf("registering transaction %d: %w", id, err)
		}
	}
	return nil
}

func (i *Importer) importAccounts(db *sql.DB) error {
	rows, err := db.Query("SELECT id, type, name, initial_balance FROM accounts ORDER BY id")
	if err != nil {
		return fmt.Errorf("reading accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var typ, name, initial string
		if err := rows.Scan(&id, &typ, &name, &initial); err != nil {
			return fmt.Errorf("reading accounts: %w", err)
		}
		at, err := jbudget.ParseAccountType(typ)
		if err != nil {
			return fmt.Errorf("account %d: %w", id, err)
		}
		balance, err := jbudget.ParseMoney(initial)
		if err != nil {
			return fmt.Errorf("account %d: %w", id, err)
		}
		if _, err := i.controller.AddAccountWithID(id, at, name, balance); err != nil {
			return fmt.Errorf("account %d: %w", id, err)
		}
	}
	return rows.Err()
}

func (i *Importer) importTags(db *sql.DB) error {
	rows, err := db.Query("SELECT id, name, description FROM tags ORDER BY id")
	if err != nil {
		return fmt.Errorf("reading tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var name, description string
		if err := rows.Scan(&id, &name, &description); err != nil {
			return fmt.Errorf("reading tags: %w", err)
		}
		if _, err := i.controller.AddTagWithID(id, name, description); err != nil {
			return fmt.Errorf("tag %d: %w", id, err)
		}
	}
	return rows.Err()
}

func (i *Importer) importTransactions(db *sql.DB) (map[int]*jbudget.Transaction, error) {
	rows, err := db.Query("SELECT id, date FROM transactions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	defer rows.Close()

	created := make(map[int]*jbudget.Transaction)
	for rows.Next() {
		var id int
		var date string
		if err := rows.Scan(&id, &date); err != nil {
			return nil, fmt.Errorf("reading transactions: %w", err)
		}
		day, err := jbudget.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", id, err)
		}
		t, err := i.controller.NewTransactionWithID(id, day)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", id, err)
		}
		created[id] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for id, t := range created {
		tags, err := i.tagsOf(db, "SELECT tag_id FROM transaction_tags WHERE transaction_id = ? ORDER BY tag_id", id)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", id, err)
		}
		for _, g := range tags {
			if err := t.AddTag(g); err != nil {
				return nil, fmt.Errorf("transaction %d: %w", id, err)
			}
		}
	}
	return created, nil
}

func (i *Importer) importMovements(db *sql.DB, created map[int]*jbudget.Transaction) error {
	rows, err := db.Query("SELECT id, type, amount, account_id, transaction_id FROM movements ORDER BY id")
	if err != nil {
		return fmt.Errorf("reading movements: %w", err)
	}
	defer rows.Close()

	type movementRow struct {
		id, accountID, transactionID int
		typ, amount                  string
	}
	var pending []movementRow
	for rows.Next() {
		var r movementRow
		if err := rows.Scan(&r.id, &r.typ, &r.amount, &r.accountID, &r.transactionID); err != nil {
			return fmt.Errorf("reading movements: %w", err)
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, r := range pending {
		mt, err := jbudget.ParseMovementType(r.typ)
		if err != nil {
			return fmt.Errorf("movement %d: %w", r.id, err)
		}
		amount, err := jbudget.ParseMoney(r.amount)
		if err != nil {
			return fmt.Errorf("movement %d: %w", r.id, err)
		}
		account, err := i.resolveAccount(r.accountID)
		if err != nil {
			return fmt.Errorf("movement %d: %w", r.id, err)
		}
		m, err := i.controller.NewMovementWithID(r.id, mt, amount, account)
		if err != nil {
			return fmt.Errorf("movement %d: %w", r.id, err)
		}
		tags, err := i.tagsOf(db, "SELECT tag_id FROM movement_tags WHERE movement_id = ? ORDER BY tag_id", r.id)
		if err != nil {
			return fmt.Errorf("movement %d: %w", r.id, err)
		}
		for _, g := range tags {
			if err := m.AddTag(g); err != nil {
				return fmt.Errorf("movement %d: %w", r.id, err)
			}
		}
		t, ok := created[r.transactionID]
		if !ok {
			return fmt.Errorf("%w: movement %d references unknown transaction %d",
				jbudget.ErrInconsistentRef, r.id, r.transactionID)
		}
		if err := t.AddMovement(m); err != nil {
			return fmt.Errorf("movement %d: %w", r.id, err)
		}
	}
	return nil
}

// tagsOf resolves the tag rows of the given join query against the tags
// already loaded into the controller.
func (i *Importer) tagsOf(db *sql.DB, query string, ownerID int) ([]*jbudget.Tag, error) {
	rows, err := db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*jbudget.Tag
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		matches := i.controller.Tags()
		var found *jbudget.Tag
		for _, g := range matches {
			if g.ID() == id {
				found = g
				break
			}
		}
		if found == nil {
			return nil, fmt.Errorf("%w: unknown tag %d", jbudget.ErrInconsistentRef, id)
		}
		tags = append(tags, found)
	}
	return tags, rows.Err()
}

func (i *Importer) resolveAccount(id int) (*jbudget.Account, error) {
	matches := i.controller.Accounts(func(a *jbudget.Account) bool { return a.ID() == id })
	if len(matches) != 1 {
		return nil, fmt.Errorf("%w: account %d matches %d accounts", jbudget.ErrInconsistentRef, id, len(matches))
	}
	return matches[0], nil
}
