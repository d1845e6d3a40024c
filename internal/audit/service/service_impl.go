package service

import (
	"context"
	"sync"

	auditdomain "github.com/DevalGit/AccountEntry/internal/audit/domain"
	"github.com/DevalGit/AccountEntry/internal/clock"
	"github.com/DevalGit/AccountEntry/internal/config"
	"github.com/DevalGit/AccountEntry/internal/observability/logger"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Service keeps a bounded in-memory audit trail. Oldest entries fall
// off once the configured capacity is reached. Metadata is masked
// before it is stored or logged; audit output must not leak contact
// details or tax ids.
type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clk   clock.Clock
	cap   int

	mu      sync.Mutex
	entries []auditdomain.Entry
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Cfg   config.Config
}

func NewService(p ServiceParam) auditdomain.Service {
	return &Service{
		log:   p.Log.Named("audit.service"),
		genID: p.GenID,
		clk:   p.Clock,
		cap:   p.Cfg.AuditTrailSize,
	}
}

func (s *Service) Record(ctx context.Context, action, targetType, targetID string, metadata map[string]any) {
	entry := auditdomain.Entry{
		ID:         s.genID.Generate(),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Metadata:   logger.MaskMetadata(metadata),
		CreatedAt:  s.clk.Now().UTC(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.cap {
		s.entries = s.entries[len(s.entries)-s.cap:]
	}
	s.mu.Unlock()

	s.log.Info("audit",
		zap.String("action", action),
		zap.String("target_type", targetType),
		zap.String("target_id", targetID),
	)
}

// List returns the most recent entries, newest first.
func (s *Service) List(ctx context.Context, limit int) []auditdomain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	out := make([]auditdomain.Entry, 0, limit)
	for i := len(s.entries) - 1; i >= len(s.entries)-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out
}
