package observability

import (
	"github.com/DevalGit/AccountEntry/internal/observability/logger"
	"github.com/DevalGit/AccountEntry/internal/observability/metrics"
	"github.com/DevalGit/AccountEntry/internal/observability/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	logger.Module,
	fx.Provide(tracing.NewProvider),
	fx.Provide(metrics.NewHTTPMetrics),
	fx.Invoke(func(provider *sdktrace.TracerProvider) {}),
)
