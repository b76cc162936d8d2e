package auth

import (
	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"auth",
		logger.WithNamedLogger("auth"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewTokenIssuer, fx.Private),
		fx.Provide(
			func() (*Metrics, error) { return NewMetrics(prometheus.DefaultRegisterer) },
			fx.Private,
		),
		fx.Provide(NewService),
	)
}
