package service

import (
	"context"
	"testing"
	"time"

	auditdomain "github.com/DevalGit/AccountEntry/internal/audit/domain"
	"github.com/DevalGit/AccountEntry/internal/config"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func newTestAudit(t *testing.T, capacity int) *Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return NewService(ServiceParam{
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fixedClock{now: time.Unix(1700000000, 0)},
		Cfg:   config.Config{AuditTrailSize: capacity},
	}).(*Service)
}

func TestRecordMasksMetadata(t *testing.T) {
	svc := newTestAudit(t, 10)
	ctx := context.Background()

	svc.Record(ctx, auditdomain.ActionAccountCreate, "account", "1", map[string]any{
		"name":  "ABC Company",
		"email": "john@abc.com",
		"phone": "9876543210",
	})

	entries := svc.List(ctx, 0)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	meta := entries[0].Metadata
	if meta["email"] != "j***@abc.com" {
		t.Fatalf("expected masked email, got %v", meta["email"])
	}
	if meta["phone"] != "****3210" {
		t.Fatalf("expected masked phone, got %v", meta["phone"])
	}
	if meta["name"] != "ABC Company" {
		t.Fatalf("expected name untouched, got %v", meta["name"])
	}
}

func TestTrailIsBoundedAndNewestFirst(t *testing.T) {
	svc := newTestAudit(t, 3)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		svc.Record(ctx, auditdomain.ActionAccountDelete, "account", id, nil)
	}

	entries := svc.List(ctx, 0)
	if len(entries) != 3 {
		t.Fatalf("expected capacity 3, got %d entries", len(entries))
	}
	if entries[0].TargetID != "5" || entries[2].TargetID != "3" {
		t.Fatalf("expected newest first [5 4 3], got %v %v %v",
			entries[0].TargetID, entries[1].TargetID, entries[2].TargetID)
	}

	limited := svc.List(ctx, 2)
	if len(limited) != 2 || limited[0].TargetID != "5" {
		t.Fatalf("expected limit honored, got %d entries", len(limited))
	}
}
