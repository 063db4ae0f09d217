package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"filestore/internal/auth"
)

// IdentityLocalKey is where the resolved auth.Identity is stored in locals.
const IdentityLocalKey = "identity"

// IdentityResolver resolves session tokens.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (auth.Identity, error)
}

// RequireIdentity rejects requests without a live session token with 401.
func RequireIdentity(r IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := r.ResolveIdentity(c.UserContext(), c.Get(auth.TokenHeader))
		if err != nil {
			if errors.Is(err, auth.ErrUnauthenticated) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
			}
			return err
		}
		c.Locals(IdentityLocalKey, id)
		return c.Next()
	}
}

// OptionalIdentity resolves the session token when one is sent and otherwise
// lets the request through anonymously. An unknown token is treated as anonymous.
func OptionalIdentity(r IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(auth.TokenHeader)
		if token == "" {
			return c.Next()
		}
		id, err := r.ResolveIdentity(c.UserContext(), token)
		if err != nil && !errors.Is(err, auth.ErrUnauthenticated) {
			return err
		}
		if err == nil {
			c.Locals(IdentityLocalKey, id)
		}
		return c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireIdentity or OptionalIdentity.
func IdentityFrom(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(IdentityLocalKey).(auth.Identity)
	return id, ok
}

// UserIDFrom returns the caller's user id, or "" for anonymous requests.
func UserIDFrom(c *fiber.Ctx) string {
	id, _ := IdentityFrom(c)
	return id.UserID
}
