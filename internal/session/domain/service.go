package domain

import (
	"context"
	"errors"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
)

// QueryResetter clears any pending search input. Selecting an account
// resets the search so the list view returns to its unfiltered state.
type QueryResetter interface {
	Reset()
}

// Service tracks which single account is active and the invoice amount
// being composed against it. Two states: empty and active. A deleted
// active account always resets the session; the store's listener hooks
// guarantee no dangling reference survives a mutation.
type Service interface {
	// Select makes the account active, seeding the invoice amount and the
	// discount/GST snapshots from it.
	Select(ctx context.Context, account accountdomain.Account)
	// SetInvoiceAmount replaces the invoice amount from raw user input.
	// Unparseable input becomes zero. Fails when nothing is selected.
	SetInvoiceAmount(ctx context.Context, raw string) error
	// Clear drops the selection.
	Clear(ctx context.Context)
	// Active returns the current selection.
	Active(ctx context.Context) (Selection, bool)
	// Breakdown derives the discount/GST/final figures for the active
	// invoice amount. ok is false in the empty state.
	Breakdown(ctx context.Context) (Breakdown, bool)
}

var ErrNoActiveAccount = errors.New("no_active_account")
