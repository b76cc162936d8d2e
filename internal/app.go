package internal

import (
	"context"

	"github.com/codebar/admin/internal/auth"
	"github.com/codebar/admin/internal/config"
	"github.com/codebar/admin/internal/instructors"
	"github.com/codebar/admin/internal/server"
	"github.com/codebar/admin/internal/storage"
	"github.com/codebar/admin/internal/students"
	"github.com/codebar/admin/internal/workshops"
	"github.com/codebar/admin/pkg/openapifx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		storage.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		openapifx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "1.0.0", ReleaseID: 1} }),
		auth.Module(),
		students.Module(),
		instructors.Module(),
		workshops.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("codebar admin starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("codebar admin shutting down")
					return nil
				},
			})
		}),
	).Run()
}
