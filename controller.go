package jbudget

import "fmt"

// ExportManager persists the whole entity graph to the given location.
type ExportManager interface {
	ExportAll(path string) error
}

// ImportManager reconstructs the entity graph from the given location.
type ImportManager interface {
	ImportAll(path string) error
}

// Controller is the single entry point front ends and persistence
// collaborators use. It wraps a Ledger, creates entities through the
// ledger's identifier allocator, and tracks whether every change has been
// persisted.
type Controller struct {
	ledger   *Ledger
	exporter ExportManager
	importer ImportManager
	saved    bool
}

// NewController returns a controller over an empty ledger. The flat-file
// text managers are used for export and import until others are injected.
func NewController() *Controller {
	return &Controller{ledger: NewLedger(), saved: true}
}

// IsSaved reports whether every change since the last successful export,
// import or reset has been persisted.
func (c *Controller) IsSaved() bool { return c.saved }

// SetExportManager injects the persistence collaborator used by Export.
func (c *Controller) SetExportManager(m ExportManager) { c.exporter = m }

// SetImportManager injects the persistence collaborator used by Import.
func (c *Controller) SetImportManager(m ImportManager) { c.importer = m }

// AddAccount creates an account with a generated ID and adds it to the
// ledger.
func (c *Controller) AddAccount(typ AccountType, name string, initial Money) (*Account, error) {
	a, err := c.ledger.AddAccount(typ, name, initial)
	if err != nil {
		return nil, err
	}
	c.saved = false
	return a, nil
}

// AddAccountWithID adds an account with an externally supplied ID.
func (c *Controller) AddAccountWithID(id int, typ AccountType, name string, initial Money) (*Account, error) {
	a, err := c.ledger.AddAccountWithID(id, typ, name, initial)
	if err != nil {
		return nil, err
	}
	c.saved = false
	return a, nil
}

// ModifyAccount updates the editable fields of an account.
func (c *Controller) ModifyAccount(a *Account, typ AccountType, name string, initial Money) error {
	if err := c.ledger.ModifyAccount(a, typ, name, initial); err != nil {
		return err
	}
	c.saved = false
	return nil
}

// RemoveAccount removes an account from the ledger.
func (c *Controller) RemoveAccount(a *Account) error {
	if err := c.ledger.RemoveAccount(a); err != nil {
		return err
	}
	c.saved = false
	return nil
}

// Accounts returns the accounts satisfying the predicate (nil for all).
func (c *Controller) Accounts(p func(*Account) bool) []*Account {
	return c.ledger.Accounts(p)
}

// NewMovement creates a movement with a generated ID. The movement is not
// part of the ledger until a transaction adopting it is added.
func (c *Controller) NewMovement(typ MovementType, amount Money, account *Account) (*Movement, error) {
	return c.ledger.NewMovement(typ, amount, account)
}

// NewMovementWithID creates a movement with an externally supplied ID.
func (c *Controller) NewMovementWithID(id int, typ MovementType, amount Money, account *Account) (*Movement, error) {
	return NewMovement(id, typ, amount, account)
}

// Movements returns every movement reachable through the ledger's
// transactions.
func (c *Controller) Movements() []*Movement { return c.ledger.Movements() }

// NewTransaction creates a transaction with a generated ID.
func (c *Controller) NewTransaction(date Date) (*Transaction, error) {
	return c.ledger.NewTransaction(date)
}

// NewTransactionWithID creates a transaction with an externally supplied
// ID.
func (c *Controller) NewTransactionWithID(id int, date Date) (*Transaction, error) {
	return NewTransaction(id, date)
}

// AddTransaction adds a transaction to the ledger.
func (c *Controller) AddTransaction(t *Transaction) error {
	if err := c.ledger.AddTransaction(t); err != nil {
		return err
	}
	c.saved = false
	return nil
}

// RemoveTransaction removes a transaction from the ledger.
func (c *Controller) RemoveTransaction(t *Transaction) error {
	if err := c.ledger.RemoveTransaction(t); err != nil {
		return err
	}
	c.saved = false
	return nil
}

// Transactions returns the transactions satisfying the predicate (nil for
// all).
func (c *Controller) Transactions(p func(*Transaction) bool) []*Transaction {
	return c.ledger.Transactions(p)
}

// AddTag creates a tag with a generated ID and adds it to the ledger.
func (c *Controller) AddTag(name, description string) (*Tag, error) {
	t, err := c.ledger.AddTag(name, description)
	if err != nil {
		return nil, err
	}
	c.saved = false
	return t, nil
}

// AddTagWithID adds a tag with an externally supplied ID.
func (c *Controller) AddTagWithID(id int, name, description string) (*Tag, error) {
	t, err := c.ledger.AddTagWithID(id, name, description)
	if err != nil {
		return nil, err
	}
	c.saved = false
	return t, nil
}

// ModifyTag updates the editable fields of a tag.
func (c *Controller) ModifyTag(t *Tag, name, description string) error {
	if err := c.ledger.ModifyTag(t, name, description); err != nil {
		return err
	}
	c.saved = false
	return nil
}

// RemoveTag removes a tag from the ledger.
func (c *Controller) RemoveTag(t *Tag) error {
	if err := c.ledger.RemoveTag(t); err != nil {
		return err
	}
	c.saved = false
	return nil
}

// Tags returns every tag of the ledger.
func (c *Controller) Tags() []*Tag { return c.ledger.Tags() }

// Export persists the whole ledger to the given location through the
// injected export manager (the flat-file text exporter when none was
// injected). On success the controller is marked saved.
func (c *Controller) Export(path string) error {
	if c.exporter == nil {
		c.exporter = NewTextExporter(c)
	}
	if err := c.exporter.ExportAll(path); err != nil {
		return fmt.Errorf("export to %s: %w", path, err)
	}
	c.saved = true
	return nil
}

// Import loads the whole ledger from the given location through the
// injected import manager (the flat-file text importer when none was
// injected). On success the controller is marked saved.
//
// A failed import may leave the entities of earlier resources already
// applied: there is no rollback.
func (c *Controller) Import(path string) error {
	if c.importer == nil {
		c.importer = NewTextImporter(c)
	}
	if err := c.importer.ImportAll(path); err != nil {
		return fmt.Errorf("import from %s: %w", path, err)
	}
	c.saved = true
	return nil
}

// Reset clears the ledger and restarts identifier allocation at 1.
func (c *Controller) Reset() {
	c.ledger.Reset()
	c.saved = true
}
