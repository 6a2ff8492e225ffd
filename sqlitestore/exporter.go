package sqlitestore

import (
	"database/sql"
	"fmt"

	"github.com/catervpillar/jbudget"
)

// Exporter writes the whole entity graph of a controller into a SQLite
// database file, replacing whatever the file held before.
type Exporter struct {
	controller *jbudget.Controller
}

// NewExporter returns an export manager reading from the given
// controller.
func NewExporter(c *jbudget.Controller) *Exporter {
	return &Exporter{controller: c}
}

// ExportAll writes every account, tag, transaction and movement to the
// database file at path. The write is atomic: either the file ends up
// holding the full graph or its previous content is kept.
func (e *Exporter) ExportAll(path string) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return inTx(db, func(tx *sql.Tx) error {
		for _, table := range []string{"movement_tags", "transaction_tags", "movements", "transactions", "tags", "accounts"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		for _, a := range e.controller.Accounts(nil) {
			_, err := tx.Exec("INSERT INTO accounts (id, type, name, initial_balance) VALUES (?, ?, ?, ?)",
				a.ID(), a.Type().String(), a.Name(), a.InitialBalance().Plain())
			if err != nil {
				return fmt.Errorf("writing account %d: %w", a.ID(), err)
			}
		}
		for _, g := range e.controller.Tags() {
			_, err := tx.Exec("INSERT INTO tags (id, name, description) VALUES (?, ?, ?)",
				g.ID(), g.Name(), g.Description())
			if err != nil {
				return fmt.Errorf("writing tag %d: %w", g.ID(), err)
			}
		}
		for _, t := range e.controller.Transactions(nil) {
			_, err := tx.Exec("INSERT INTO transactions (id, date) VALUES (?, ?)",
				t.ID(), t.Date().String())
			if err != nil {
				return fmt.Errorf("writing transaction %d: %w", t.ID(), err)
			}
			for _, g := range t.Tags() {
				_, err := tx.Exec("INSERT INTO transaction_tags (transaction_id, tag_id) VALUES (?, ?)",
					t.ID(), g.ID())
				if err != nil {
					return fmt.Errorf("writing transaction %d tags: %w", t.ID(), err)
				}
			}
		}
		for _, m := range e.controller.Movements() {
			_, err := tx.Exec("INSERT INTO movements (id, type, amount, account_id, transaction_id) VALUES (?, ?, ?, ?, ?)",
				m.ID(), m.Type().String(), m.Amount().Plain(), m.Account().ID(), m.Transaction().ID())
			if err != nil {
				return fmt.Errorf("writing movement %d: %w", m.ID(), err)
			}
			for _, g := range m.Tags() {
				_, err := tx.Exec("INSERT INTO movement_tags (movement_id, tag_id) VALUES (?, ?)",
					m.ID(), g.ID())
				if err != nil {
					return fmt.Errorf("writing movement %d tags: %w", m.ID(), err)
				}
			}
		}
		return nil
	})
}
