package instructors_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codebar/admin/internal/instructors"
	handlers "github.com/codebar/admin/internal/server/handlers/instructors"
	"github.com/codebar/admin/internal/server/request"
	"github.com/codebar/admin/internal/storage"
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

	repo, err := instructors.NewRepository(backend)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(validation.Middleware, request.DecodeErrors)
	handlers.NewHandler(instructors.NewService(repo, logger), validator.New(), logger).Register(app)

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

	status, body := do(http.MethodPost, "/instructors/", `{"name":"Grace","skills":["COBOL"],"bio":"Admiral"}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.JSONEq(t, `{"id":1,"name":"Grace","skills":["COBOL"],"bio":"Admiral"}`, body)

	status, _ = do(http.MethodPost, "/instructors/", `{"name":"Grace"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = do(http.MethodPut, "/instructors/1", `{"skills":["COBOL","FLOW-MATIC"],"bio":null}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.JSONEq(t, `{"id":1,"name":"Grace","skills":["COBOL","FLOW-MATIC"],"bio":"Admiral"}`, body)

	status, body = do(http.MethodGet, "/instructors/", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[{"id":1,"name":"Grace","skills":["COBOL","FLOW-MATIC"],"bio":"Admiral"}]`, body)

	status, body = do(http.MethodDelete, "/instructors/1", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Instructor deleted successfully"}`, body)

	status, _ = do(http.MethodGet, "/instructors/1", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = do(http.MethodGet, "/instructors/", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}
