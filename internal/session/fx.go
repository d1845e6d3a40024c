package session

import (
	accountdomain "github.com/DevalGit/AccountEntry/internal/account/domain"
	sessiondomain "github.com/DevalGit/AccountEntry/internal/session/domain"
	"github.com/DevalGit/AccountEntry/internal/session/service"
	"go.uber.org/fx"
)

var Module = fx.Module("session.service",
	fx.Provide(service.NewService),
	fx.Invoke(subscribeStore),
)

// subscribeStore wires the session into the store's mutation hooks so
// edits and deletes of the active account reach the session.
func subscribeStore(store accountdomain.Service, svc sessiondomain.Service) {
	if listener, ok := svc.(accountdomain.Listener); ok {
		store.Subscribe(listener)
	}
}
