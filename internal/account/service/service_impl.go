package service

import (
	"context"
	"math"
	"sync"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	"github.com/DevalGit/AccountEntry/internal/finance"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Service is the in-memory account store. All state lives for the
// lifetime of the process; mutations are serialized behind a mutex so id
// assignment and listener notification stay consistent under concurrent
// callers.
type Service struct {
	log *zap.Logger

	mu        sync.Mutex
	accounts  []accountdomain.Account
	listeners []accountdomain.Listener
}

type ServiceParam struct {
	fx.In

	Log *zap.Logger
}

func NewService(p ServiceParam) accountdomain.Service {
	return &Service{
		log: p.Log.Named("account.service"),
	}
}

func (s *Service) List(ctx context.Context) []accountdomain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]accountdomain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Service) Get(ctx context.Context, id int64) (accountdomain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.accounts[idx], true
	}
	return accountdomain.Account{}, false
}

func (s *Service) Add(ctx context.Context, draft accountdomain.Draft) accountdomain.Account {
	s.mu.Lock()

	record := fromDraft(draft)
	record.ID = s.nextID()
	if isFalsyAmount(record.Amount) {
		record.Amount = finance.DefaultInvoiceAmount
	}
	s.accounts = append(s.accounts, record)

	s.log.Info("account added",
		zap.Int64("account_id", record.ID),
		zap.String("name", record.Name),
	)

	s.mu.Unlock()
	s.revalidate()
	return record
}

func (s *Service) Update(ctx context.Context, id int64, draft accountdomain.Draft) (accountdomain.Account, bool) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("update on missing account ignored", zap.Int64("account_id", id))
		return accountdomain.Account{}, false
	}

	overridden := !isFalsyAmount(draft.Amount)
	record := fromDraft(draft)
	record.ID = id
	if !overridden {
		record.Amount = s.accounts[idx].Amount
	}
	s.accounts[idx] = record

	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l.OnAccountUpdated(record, overridden)
	}
	s.revalidate()
	return record, true
}

func (s *Service) UpdateAmount(ctx context.Context, id int64, raw string) {
	s.mu.Lock()

	if idx := s.indexOf(id); idx >= 0 {
		s.accounts[idx].Amount = finance.ParseAmount(raw)
	}

	s.mu.Unlock()
	s.revalidate()
}

func (s *Service) Remove(ctx context.Context, id int64) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("delete on missing account ignored", zap.Int64("account_id", id))
		return
	}
	s.accounts = append(s.accounts[:idx], s.accounts[idx+1:]...)

	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, l := range listeners {
		l.OnAccountDeleted(id)
	}
	s.revalidate()
}

func (s *Service) Subscribe(l accountdomain.Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// revalidate hands every listener a membership probe so dangling
// selections reset after any mutation, whichever operation caused it.
func (s *Service) revalidate() {
	s.mu.Lock()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	exists := func(id int64) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.indexOf(id) >= 0
	}
	for _, l := range listeners {
		l.Revalidate(exists)
	}
}

func (s *Service) indexOf(id int64) int {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) nextID() int64 {
	var max int64
	for i := range s.accounts {
		if s.accounts[i].ID > max {
			max = s.accounts[i].ID
		}
	}
	return max + 1
}

func (s *Service) snapshotListeners() []accountdomain.Listener {
	out := make([]accountdomain.Listener, len(s.listeners))
	copy(out, s.listeners)
	return out
}

func fromDraft(draft accountdomain.Draft) accountdomain.Account {
	return accountdomain.Account{
		Name:          draft.Name,
		PANNo:         draft.PANNo,
		GSTNo:         draft.GSTNo,
		Address:       draft.Address,
		ContactPerson: draft.ContactPerson,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Discount:      draft.Discount,
		Amount:        draft.Amount,
	}
}

func isFalsyAmount(amount float64) bool {
	return amount == 0 || math.IsNaN(amount)
}
