package seed

import (
	"context"
	"testing"

	accountservice "github.com/DevalGit/AccountEntry/internal/account/service"
	"github.com/DevalGit/AccountEntry/internal/config"
	"go.uber.org/zap"
)

func TestEnsureDemoAccounts(t *testing.T) {
	store := accountservice.NewService(accountservice.ServiceParam{Log: zap.NewNop()})
	cfg := config.Config{SeedDemoAccounts: true}

	EnsureDemoAccounts(cfg, store, zap.NewNop())

	accounts := store.List(context.Background())
	if len(accounts) != 5 {
		t.Fatalf("expected 5 demo accounts, got %d", len(accounts))
	}
	if accounts[0].ID != 1 || accounts[4].ID != 5 {
		t.Fatalf("expected sequential ids 1..5, got %d..%d", accounts[0].ID, accounts[4].ID)
	}
	if accounts[3].Name != "Deval Solutions" {
		t.Fatalf("unexpected fixture order: %+v", accounts[3])
	}

	// Seeding twice must not duplicate.
	EnsureDemoAccounts(cfg, store, zap.NewNop())
	if got := len(store.List(context.Background())); got != 5 {
		t.Fatalf("expected idempotent seeding, got %d accounts", got)
	}
}

func TestSeedDisabled(t *testing.T) {
	store := accountservice.NewService(accountservice.ServiceParam{Log: zap.NewNop()})

	EnsureDemoAccounts(config.Config{}, store, zap.NewNop())
	if got := len(store.List(context.Background())); got != 0 {
		t.Fatalf("expected no seeding when disabled, got %d", got)
	}
}
