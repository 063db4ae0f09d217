package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filestore/internal/auth"
)

type stubResolver map[string]string

func (s stubResolver) ResolveIdentity(_ context.Context, token string) (auth.Identity, error) {
	if token == "broken" {
		return auth.Identity{}, errors.New("redis: connection refused")
	}
	userID, ok := s[token]
	if !ok {
		return auth.Identity{}, auth.ErrUnauthenticated
	}
	return auth.Identity{UserID: userID, SessionKey: "auth_" + token}, nil
}

func identityApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/who", mw, func(c *fiber.Ctx) error {
		return c.SendString("user=" + UserIDFrom(c))
	})
	return app
}

func call(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/who", nil)
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestRequireIdentity(t *testing.T) {
	app := identityApp(RequireIdentity(stubResolver{"tok": "u1"}))

	status, body := call(t, app, "tok")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user=u1", body)

	status, _ = call(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, "expired")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, "broken")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestOptionalIdentity(t *testing.T) {
	app := identityApp(OptionalIdentity(stubResolver{"tok": "u1"}))

	status, body := call(t, app, "tok")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user=u1", body)

	status, body = call(t, app, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user=", body)

	status, body = call(t, app, "expired")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user=", body)

	status, _ = call(t, app, "broken")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
