package workshops_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handlers "github.com/codebar/admin/internal/server/handlers/workshops"
	"github.com/codebar/admin/internal/server/request"
	"github.com/codebar/admin/internal/storage"
	"github.com/codebar/admin/internal/workshops"
	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestHandler(t *testing.T) {
	logger := zaptest.NewLogger(t)

	backend, err := storage.NewBackend(
		storage.Config{Driver: storage.DriverBadger, Badger: badgerfx.Config{InMemory: true}},
		logger,
	)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, backend.Close()) })

	repo, err := workshops.NewRepository(backend)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(validation.Middleware, request.DecodeErrors)
	handlers.NewHandler(workshops.NewService(repo, logger), validator.New(), logger).Register(app)

	do := func(method, path, body string) (int, string) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, testErr := app.Test(req)
		require.NoError(t, testErr)
		defer resp.Body.Close()

		data, readErr := io.ReadAll(resp.Body)
		require.NoError(t, readErr)

		return resp.StatusCode, string(data)
	}

	status, body := do(http.MethodPost, "/workshops/",
		`{"subject":"Intro to Go","date":"2024-06-01T18:30:00Z","instructors":["Grace"],"students":["Ada"]}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.JSONEq(t,
		`{"id":1,"subject":"Intro to Go","date":"2024-06-01T18:30:00Z","instructors":["Grace"],"students":["Ada"],"description":null}`,
		body,
	)

	status, _ = do(http.MethodPost, "/workshops/", `{"subject":"Intro to Go"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(http.MethodPost, "/workshops/", `{"subject":"Bad date","date":"tomorrow"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = do(http.MethodPut, "/workshops/1", `{"students":["Ada","Bob"],"description":"Bring a laptop"}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.JSONEq(t,
		`{"id":1,"subject":"Intro to Go","date":"2024-06-01T18:30:00Z","instructors":["Grace"],"students":["Ada","Bob"],"description":"Bring a laptop"}`,
		body,
	)

	status, _ = do(http.MethodPut, "/workshops/2", `{"subject":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = do(http.MethodDelete, "/workshops/1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Workshop deleted successfully"}`, body)

	status, _ = do(http.MethodDelete, "/workshops/1", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}
