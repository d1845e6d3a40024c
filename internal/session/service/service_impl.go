package service

import (
	"context"
	"sync"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	"github.com/DevalGit/AccountEntry/internal/finance"
	sessiondomain "github.com/DevalGit/AccountEntry/internal/session/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Service is the selection and invoice session. It holds a reference
// into the account store, never a copy of the full record: only the
// discount and GST number are snapshotted at selection time so the
// summary can render while an edit is in flight.
type Service struct {
	log     *zap.Logger
	queries sessiondomain.QueryResetter

	mu        sync.Mutex
	active    bool
	accountID int64
	amount    float64
	discount  float64
	gstNo     string
}

type ServiceParam struct {
	fx.In

	Log     *zap.Logger
	Queries sessiondomain.QueryResetter `optional:"true"`
}

func NewService(p ServiceParam) sessiondomain.Service {
	return &Service{
		log:     p.Log.Named("session.service"),
		queries: p.Queries,
	}
}

func (s *Service) Select(ctx context.Context, account accountdomain.Account) {
	s.mu.Lock()
	s.active = true
	s.accountID = account.ID
	s.amount = account.Amount
	s.discount = account.Discount
	s.gstNo = account.GSTNo
	s.mu.Unlock()

	if s.queries != nil {
		s.queries.Reset()
	}
	s.log.Info("account selected", zap.Int64("account_id", account.ID))
}

func (s *Service) SetInvoiceAmount(ctx context.Context, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return sessiondomain.ErrNoActiveAccount
	}
	s.amount = finance.ParseAmount(raw)
	return nil
}

func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Service) Active(ctx context.Context) (sessiondomain.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return sessiondomain.Selection{}, false
	}
	return sessiondomain.Selection{
		ActiveAccountID: s.accountID,
		InvoiceAmount:   s.amount,
		Discount:        s.discount,
		GSTNo:           s.gstNo,
	}, true
}

func (s *Service) Breakdown(ctx context.Context) (sessiondomain.Breakdown, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return sessiondomain.Breakdown{}, false
	}
	return sessiondomain.Breakdown{
		InvoiceAmount:  s.amount,
		DiscountAmount: finance.DiscountAmount(s.amount, s.discount),
		AfterDiscount:  finance.DiscountedTotal(s.amount, s.discount),
		GST:            finance.GST(s.amount, s.discount),
		FinalAmount:    finance.FinalAmount(s.amount, s.discount),
	}, true
}

// OnAccountUpdated refreshes the snapshots when the active account is
// edited. The invoice amount follows the record only when the editor
// left the amount blank; an explicit override keeps the session's value.
func (s *Service) OnAccountUpdated(account accountdomain.Account, amountOverridden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.accountID != account.ID {
		return
	}
	s.discount = account.Discount
	s.gstNo = account.GSTNo
	if !amountOverridden {
		s.amount = account.Amount
	}
}

// OnAccountDeleted resets the session when the active account is gone.
func (s *Service) OnAccountDeleted(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && s.accountID == id {
		s.log.Info("active account deleted, clearing session", zap.Int64("account_id", id))
		s.reset()
	}
}

// Revalidate drops a selection whose account no longer exists.
func (s *Service) Revalidate(exists func(id int64) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && !exists(s.accountID) {
		s.log.Warn("dangling selection reset", zap.Int64("account_id", s.accountID))
		s.reset()
	}
}

func (s *Service) reset() {
	s.active = false
	s.accountID = 0
	s.amount = 0
	s.discount = 0
	s.gstNo = ""
}
