package bootstrap

import (
	"net/http"

	"lease-engine/internal/infra/metrics"
	"lease-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewPrometheusRecorder,
		func(r *metrics.PrometheusRecorder) shared.Recorder { return r },
		func(r *metrics.PrometheusRecorder) http.Handler { return r.Handler() },
	),
)
