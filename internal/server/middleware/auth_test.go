package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codebar/admin/internal/auth"
	"github.com/codebar/admin/internal/server/middleware"
	"github.com/codebar/admin/internal/storage"
	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	app     *fiber.App
	backend *storage.Backend
	authSvc *auth.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zaptest.NewLogger(t)

	backend, err := storage.NewBackend(
		storage.Config{Driver: storage.DriverBadger, Badger: badgerfx.Config{InMemory: true}},
		logger,
	)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, backend.Close()) })

	repo, err := auth.NewRepository(backend)
	require.NoError(t, err)

	metrics, err := auth.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	config := auth.Config{
		SecretKey:      []byte("test-secret"),
		AccessTokenTTL: time.Minute,
		BcryptCost:     bcrypt.MinCost,
	}

	authSvc, err := auth.NewService(config, repo, auth.NewTokenIssuer(config), metrics, logger)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/me", middleware.BearerAuth(authSvc), func(c *fiber.Ctx) error {
		return c.SendString(middleware.CurrentUser(c).Username)
	})

	return &testEnv{app: app, backend: backend, authSvc: authSvc}
}

func (e *testEnv) get(t *testing.T, authorization string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestBearerAuth(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.authSvc.Register(ctx, auth.UserDraft{Username: "ada", Password: "secret", Role: "admin"})
	require.NoError(t, err)

	token, err := env.authSvc.Login(ctx, "ada", "secret")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		status        int
		body          string
	}{
		{name: "valid", authorization: "Bearer " + token.AccessToken, status: fiber.StatusOK, body: "ada"},
		{name: "lowercase scheme", authorization: "bearer " + token.AccessToken, status: fiber.StatusOK, body: "ada"},
		{name: "missing header", status: fiber.StatusUnauthorized, body: "Invalid token"},
		{name: "wrong scheme", authorization: "Basic " + token.AccessToken, status: fiber.StatusUnauthorized},
		{name: "garbage token", authorization: "Bearer nope", status: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.get(t, tt.authorization)
			assert.Equal(t, tt.status, resp.StatusCode, body)
			if tt.status == fiber.StatusUnauthorized {
				assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
			}
			if tt.body != "" {
				assert.Equal(t, tt.body, body)
			}
		})
	}
}

func TestBearerAuth_StorageFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.authSvc.Register(ctx, auth.UserDraft{Username: "ada", Password: "secret", Role: "admin"})
	require.NoError(t, err)

	token, err := env.authSvc.Login(ctx, "ada", "secret")
	require.NoError(t, err)

	require.NoError(t, env.backend.Close())

	resp, body := env.get(t, "Bearer "+token.AccessToken)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, body)
	assert.Empty(t, resp.Header.Get(fiber.HeaderWWWAuthenticate))
}
