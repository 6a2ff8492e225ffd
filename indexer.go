package jbudget

// Identifiable is implemented by every entity carrying a unique ID.
type Identifiable interface {
	ID() int
}

// Indexer allocates unique ascending identifiers, one independent sequence
// per entity kind, each starting at 1.
//
// It is a plain struct passed to whoever constructs entities, not a
// process-wide singleton: the Ledger owns one and resynchronizes it when
// entities with externally supplied IDs enter the collections.
type Indexer struct {
	account     int
	tag         int
	transaction int
	movement    int
}

// NewIndexer returns an Indexer with every sequence at 1.
func NewIndexer() *Indexer {
	return &Indexer{account: 1, tag: 1, transaction: 1, movement: 1}
}

// NextAccountID issues the next account identifier.
func (x *Indexer) NextAccountID() int { return next(&x.account) }

// NextTagID issues the next tag identifier.
func (x *Indexer) NextTagID() int { return next(&x.tag) }

// NextTransactionID issues the next transaction identifier.
func (x *Indexer) NextTransactionID() int { return next(&x.transaction) }

// NextMovementID issues the next movement identifier.
func (x *Indexer) NextMovementID() int { return next(&x.movement) }

func next(counter *int) int {
	id := *counter
	*counter++
	return id
}

// ResyncAccounts moves the account sequence past the highest existing ID.
func (x *Indexer) ResyncAccounts(accounts []*Account) { x.account = pastMax(accounts) }

// ResyncTags moves the tag sequence past the highest existing ID.
func (x *Indexer) ResyncTags(tags []*Tag) { x.tag = pastMax(tags) }

// ResyncTransactions moves the transaction sequence past the highest
// existing ID.
func (x *Indexer) ResyncTransactions(transactions []*Transaction) {
	x.transaction = pastMax(transactions)
}

// ResyncMovements moves the movement sequence past the highest existing ID.
func (x *Indexer) ResyncMovements(movements []*Movement) { x.movement = pastMax(movements) }

// Reset restarts every sequence at 1. Previously issued IDs may be reissued:
// the caller must clear the ledger first.
func (x *Indexer) Reset() {
	x.account, x.tag, x.transaction, x.movement = 1, 1, 1, 1
}

// pastMax returns max(IDs)+1, or 1 for an empty collection.
func pastMax[T Identifiable](items []T) int {
	max := 0
	for _, it := range items {
		if it.ID() > max {
			max = it.ID()
		}
	}
	return max + 1
}
