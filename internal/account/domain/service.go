package domain

import "context"

// Listener observes store mutations. The selection session subscribes so
// it never renders a reference to an account that no longer exists.
type Listener interface {
	// OnAccountUpdated fires after a full-record update. amountOverridden
	// reports whether the caller supplied an explicit amount, or the store
	// fell back to the previous one.
	OnAccountUpdated(account Account, amountOverridden bool)
	// OnAccountDeleted fires after a record is removed.
	OnAccountDeleted(id int64)
	// Revalidate fires after every mutation with a membership probe.
	Revalidate(exists func(id int64) bool)
}

// Service owns the canonical in-memory account collection.
//
// Update and Remove are silent no-ops when the id is absent, and Update
// keeps the stored amount when the draft's amount is zero. Both behaviors
// are part of the published contract, even though the fallback can mask a
// deliberate "set amount to zero".
type Service interface {
	// List returns the accounts in insertion order.
	List(ctx context.Context) []Account
	// Get returns the account with the given id.
	Get(ctx context.Context, id int64) (Account, bool)
	// Add stores a draft under a freshly assigned id and returns the
	// stored record. A zero amount is replaced with the default invoice
	// amount.
	Add(ctx context.Context, draft Draft) Account
	// Update replaces the record's fields. Returns false when no record
	// matches.
	Update(ctx context.Context, id int64, draft Draft) (Account, bool)
	// UpdateAmount sets only the amount from a raw user-entered string.
	// Unparseable input becomes zero.
	UpdateAmount(ctx context.Context, id int64, raw string)
	// Remove deletes the record with the given id.
	Remove(ctx context.Context, id int64)
	// Subscribe registers a mutation listener.
	Subscribe(l Listener)
}
