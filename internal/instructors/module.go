package instructors

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"instructors",
		logger.WithNamedLogger("instructors"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
