package service

import (
	"context"
	"testing"

	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	"go.uber.org/zap"
)

func newTestService() accountdomain.Service {
	return NewService(ServiceParam{Log: zap.NewNop()})
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := svc.Add(ctx, accountdomain.Draft{Name: "ABC Company", Amount: 1000})
	if first.ID != 1 {
		t.Fatalf("expected first id 1, got %d", first.ID)
	}

	second := svc.Add(ctx, accountdomain.Draft{Name: "XYZ Enterprises", Amount: 1500})
	if second.ID != 2 {
		t.Fatalf("expected second id 2, got %d", second.ID)
	}

	// Removing a lower id must not cause reuse of the highest id.
	svc.Remove(ctx, 1)
	third := svc.Add(ctx, accountdomain.Draft{Name: "PQR Services", Amount: 2000})
	if third.ID != 3 {
		t.Fatalf("expected third id 3 after removing id 1, got %d", third.ID)
	}

	seen := map[int64]bool{}
	for _, acc := range svc.List(ctx) {
		if seen[acc.ID] {
			t.Fatalf("duplicate id %d in store", acc.ID)
		}
		seen[acc.ID] = true
	}
}

func TestAddSubstitutesDefaultAmount(t *testing.T) {
	svc := newTestService()

	stored := svc.Add(context.Background(), accountdomain.Draft{Name: "X"})
	if stored.Amount != 1000 {
		t.Fatalf("expected default amount 1000, got %v", stored.Amount)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		svc.Add(ctx, accountdomain.Draft{Name: name, Amount: 10})
	}
	svc.Remove(ctx, 2)

	accounts := svc.List(ctx)
	if len(accounts) != 2 || accounts[0].Name != "a" || accounts[1].Name != "c" {
		t.Fatalf("unexpected order after delete: %+v", accounts)
	}
}

func TestUpdateFallsBackToExistingAmount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	stored := svc.Add(ctx, accountdomain.Draft{Name: "ABC Company", Amount: 2500, Discount: 10})

	updated, ok := svc.Update(ctx, stored.ID, accountdomain.Draft{Name: "ABC Company Ltd", Discount: 12})
	if !ok {
		t.Fatalf("expected update to find account %d", stored.ID)
	}
	if updated.Amount != 2500 {
		t.Fatalf("expected amount to fall back to 2500, got %v", updated.Amount)
	}
	if updated.Name != "ABC Company Ltd" || updated.Discount != 12 {
		t.Fatalf("expected remaining fields replaced, got %+v", updated)
	}

	updated, _ = svc.Update(ctx, stored.ID, accountdomain.Draft{Name: "ABC Company Ltd", Amount: 750})
	if updated.Amount != 750 {
		t.Fatalf("expected explicit amount 750, got %v", updated.Amount)
	}
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, ok := svc.Update(ctx, 42, accountdomain.Draft{Name: "ghost"}); ok {
		t.Fatal("expected update on missing id to report no match")
	}
	svc.Remove(ctx, 42)
	if got := len(svc.List(ctx)); got != 0 {
		t.Fatalf("expected empty store, got %d accounts", got)
	}
}

func TestUpdateAmountParsesRawInput(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	stored := svc.Add(ctx, accountdomain.Draft{Name: "X", Amount: 1000})

	tests := []struct {
		raw  string
		want float64
	}{
		{"1234.56", 1234.56},
		{" 99 ", 99},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		svc.UpdateAmount(ctx, stored.ID, tt.raw)
		got, _ := svc.Get(ctx, stored.ID)
		if got.Amount != tt.want {
			t.Fatalf("UpdateAmount(%q): amount = %v, want %v", tt.raw, got.Amount, tt.want)
		}
	}
}

type recordingListener struct {
	updated    []accountdomain.Account
	overridden []bool
	deleted    []int64
	revalidate int
}

func (r *recordingListener) OnAccountUpdated(account accountdomain.Account, amountOverridden bool) {
	r.updated = append(r.updated, account)
	r.overridden = append(r.overridden, amountOverridden)
}

func (r *recordingListener) OnAccountDeleted(id int64) {
	r.deleted = append(r.deleted, id)
}

func (r *recordingListener) Revalidate(exists func(id int64) bool) {
	r.revalidate++
}

func TestListenerNotifications(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	listener := &recordingListener{}
	svc.Subscribe(listener)

	stored := svc.Add(ctx, accountdomain.Draft{Name: "X", Amount: 100})
	svc.Update(ctx, stored.ID, accountdomain.Draft{Name: "Y"})
	svc.Update(ctx, stored.ID, accountdomain.Draft{Name: "Y", Amount: 300})
	svc.Remove(ctx, stored.ID)

	if len(listener.updated) != 2 {
		t.Fatalf("expected 2 update notifications, got %d", len(listener.updated))
	}
	if listener.overridden[0] || !listener.overridden[1] {
		t.Fatalf("expected overridden flags [false true], got %v", listener.overridden)
	}
	if len(listener.deleted) != 1 || listener.deleted[0] != stored.ID {
		t.Fatalf("expected delete notification for %d, got %v", stored.ID, listener.deleted)
	}
	if listener.revalidate != 4 {
		t.Fatalf("expected revalidation after each of 4 mutations, got %d", listener.revalidate)
	}
}
