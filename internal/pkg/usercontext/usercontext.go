package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndikaSaputra/RumahLink/internal/pkg/permissions"
)

// UserContext represents the complete user context for a request
type UserContext struct {
	UserID     uint             `json:"user_id"`
	Username   string           `json:"username"`
	Role       permissions.Role `json:"role"`
	IsLoggedIn bool             `json:"is_logged_in"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals("USER_CONTEXT"); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false, Role: permissions.RoleUser}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}

// Can reports whether the current user holds the given permission.
func Can(c *fiber.Ctx, perm permissions.Permission) bool {
	ctx := GetUserContext(c)
	return ctx.IsLoggedIn && permissions.Can(ctx.Role, perm)
}
