package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codebar/admin/internal/auth"
	"github.com/gofiber/fiber/v2"
)

const localsUser = "user"

// BearerAuth resolves the Authorization bearer token to the stored user.
func BearerAuth(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c)
		}

		user, err := authSvc.Authenticate(c.UserContext(), token)
		if errors.Is(err, auth.ErrUnauthorized) {
			return unauthorized(c)
		}
		if err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}

		c.Locals(localsUser, user)

		return c.Next()
	}
}

// CurrentUser returns the user stored by BearerAuth.
func CurrentUser(c *fiber.Ctx) *auth.User {
	user, _ := c.Locals(localsUser).(*auth.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
}
