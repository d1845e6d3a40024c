package pending

import (
	"github.com/DevalGit/AccountEntry/internal/clock"
	"github.com/DevalGit/AccountEntry/internal/config"
	sessiondomain "github.com/DevalGit/AccountEntry/internal/session/domain"
	"go.uber.org/fx"
)

// SearchState tracks the settling window of the current search query.
type SearchState struct {
	*Tracker
}

// SubmitState tracks the artificial latency window of the most recent
// account mutation.
type SubmitState struct {
	*Tracker
}

func NewSearchState(clk clock.Clock, cfg config.Config) *SearchState {
	return &SearchState{Tracker: NewTracker(clk, cfg.SearchSettleDelay)}
}

func NewSubmitState(clk clock.Clock, cfg config.Config) *SubmitState {
	return &SubmitState{Tracker: NewTracker(clk, cfg.SubmitDelay)}
}

var Module = fx.Module("pending",
	fx.Provide(NewSearchState),
	fx.Provide(NewSubmitState),
	fx.Provide(func(s *SearchState) sessiondomain.QueryResetter {
		return s
	}),
)
