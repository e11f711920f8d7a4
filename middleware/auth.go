package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireToken rejects requests without a bearer token and stores the token
// in locals under "token". The token itself is verified downstream by
// Supabase: data routes through RLS, identity routes through gotrue.
func RequireToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Unauthorized",
			})
		}
		c.Locals("token", strings.TrimPrefix(auth, "Bearer "))
		return c.Next()
	}
}

// Token returns the bearer token stored by RequireToken, or "".
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
