package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "yugamki_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validates the caller role against an
// allow-list. ADMIN always passes.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		if helper.RoleAllowed(role, allowedRoles) {
			return c.Next()
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is the shorthand used by route files.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
