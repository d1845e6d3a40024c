package totals

import (
	"github.com/DevalGit/AccountEntry/internal/totals/service"
	"go.uber.org/fx"
)

var Module = fx.Module("totals.service",
	fx.Provide(service.NewService),
)
