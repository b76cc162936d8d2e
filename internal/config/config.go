package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

var ErrSecretKeyMissing = errors.New("auth.secret_key is required")

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`

	OpenAPI openAPIConfig `koanf:"openapi"`
}

type openAPIConfig struct {
	Enabled    bool   `koanf:"enabled"`
	PublicHost string `koanf:"public_host"`
	PublicPath string `koanf:"public_path"`
}

type storageConfig struct {
	// Driver is one of badger, sqlite, mysql or postgres.
	Driver  string `koanf:"driver"`
	DataDir string `koanf:"data_dir"`
	DSN     string `koanf:"dsn"`
	Debug   bool   `koanf:"debug"`
}

type authConfig struct {
	SecretKey      string        `koanf:"secret_key"`
	Issuer         string        `koanf:"issuer"`
	AccessTokenTTL time.Duration `koanf:"access_token_ttl"`
	BcryptCost     int           `koanf:"bcrypt_cost"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage storageConfig `koanf:"storage"`
	Auth    authConfig    `koanf:"auth"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},

			OpenAPI: openAPIConfig{
				Enabled: true,
			},
		},

		Storage: storageConfig{
			Driver:  "badger",
			DataDir: "./data",
		},

		Auth: authConfig{
			Issuer:         "codebar",
			AccessTokenTTL: 30 * time.Minute,
			BcryptCost:     10,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Auth.SecretKey == "" {
		return ErrSecretKeyMissing
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive, got %s", c.Auth.AccessTokenTTL)
	}

	return nil
}
