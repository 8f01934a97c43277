package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndikaSaputra/RumahLink/internal/pkg/permissions"
	"github.com/AndikaSaputra/RumahLink/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in session and returns JSON 401 otherwise.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

// RequirePermission ensures the session user's role carries the given
// permission; returns JSON 403 otherwise. Implies RequireAuth.
func RequirePermission(perm permissions.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !usercontext.IsLoggedIn(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": "login required",
			})
		}
		if !usercontext.Can(c, perm) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "forbidden",
				"message": "insufficient permissions",
			})
		}
		return c.Next()
	}
}

// RequireAdmin ensures the session user is an admin.
func RequireAdmin(c *fiber.Ctx) error {
	return RequirePermission(permissions.PermUserManage)(c)
}
