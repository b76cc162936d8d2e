package config

import (
	"path/filepath"

	"github.com/codebar/admin/internal/auth"
	"github.com/codebar/admin/internal/storage"
	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/codebar/admin/pkg/gormfx"
	"github.com/codebar/admin/pkg/openapifx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) storage.Config {
			return storage.Config{
				Driver: storage.Driver(cfg.Storage.Driver),
				Badger: badgerfx.Config{
					Dir: filepath.Join(cfg.Storage.DataDir, "badger"),
				},
				SQL: gormfx.Config{
					DSN:     cfg.Storage.DSN,
					DataDir: cfg.Storage.DataDir,
					Debug:   cfg.Storage.Debug,
				},
			}
		}),
		fx.Provide(func(cfg Config) auth.Config {
			return auth.Config{
				SecretKey:      []byte(cfg.Auth.SecretKey),
				Issuer:         cfg.Auth.Issuer,
				AccessTokenTTL: cfg.Auth.AccessTokenTTL,
				BcryptCost:     cfg.Auth.BcryptCost,
			}
		}),
	)
}
