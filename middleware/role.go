package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole allows the request through when the authenticated user carries
// one of the given roles. Must run after Protected().
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
}
