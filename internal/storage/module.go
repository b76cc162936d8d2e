package storage

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"storage",
		logger.WithNamedLogger("storage"),
		fx.Provide(NewBackend),
		fx.Invoke(func(backend *Backend, logger *zap.Logger, lifecycle fx.Lifecycle) {
			lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("starting storage module")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("stopping storage module")
					return backend.Close()
				},
			})
		}),
	)
}
