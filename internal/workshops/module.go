package workshops

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"workshops",
		logger.WithNamedLogger("workshops"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
