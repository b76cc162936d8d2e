package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Handler serves Swagger UI for the registered swag document.
type Handler struct {
	config Config

	logger *zap.Logger
}

func New(config Config, info *swag.Spec, logger *zap.Logger) *Handler {
	if config.PublicHost != "" {
		info.Host = config.PublicHost
	}
	if config.PublicPath != "" {
		info.BasePath = config.PublicPath
	}

	return &Handler{
		config: config,
		logger: logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		h.logger.Info("OpenAPI documentation disabled")
		return
	}

	r.Get("/*", swagger.HandlerDefault)
}
