package students

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"students",
		logger.WithNamedLogger("students"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
