package server

import (
	"github.com/codebar/admin/internal/server/docs"
	"github.com/codebar/admin/internal/server/handlers/auth"
	"github.com/codebar/admin/internal/server/handlers/instructors"
	"github.com/codebar/admin/internal/server/handlers/students"
	"github.com/codebar/admin/internal/server/handlers/workshops"
	"github.com/codebar/admin/internal/server/request"
	"github.com/codebar/admin/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(auth.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(students.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(instructors.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(workshops.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(
					handlers []handler.Handler,
					healthHandler handler.Handler,
					openapiHandler *openapifx.Handler,
					app *fiber.App,
				) {
					healthHandler.Register(app)
					openapiHandler.Register(app.Group("/docs"))

					api := app.Group("")
					api.Use(validation.Middleware, request.DecodeErrors)

					for _, h := range handlers {
						h.Register(api)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
