package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yugamki_backend/internals/constants"
)

// Claims are stored in Fiber Locals by the auth middleware.

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing authentication")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals("user_role").(string)
	if !ok || v == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing authentication")
	}
	return v, nil
}

func GetUserEmail(c *fiber.Ctx) string {
	v, _ := c.Locals("user_email").(string)
	return v
}

// RoleAllowed is the authorization gate: ADMIN bypasses every check,
// everything else must be in the explicit allow-list.
func RoleAllowed(role string, allowed []string) bool {
	if role == constants.RoleAdmin {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// EnsureRoles applies the gate for in-handler checks. Missing identity is a
// 401, insufficient role a 403.
func EnsureRoles(c *fiber.Ctx, allowed ...string) error {
	role, err := GetUserRole(c)
	if err != nil {
		return err
	}
	if !RoleAllowed(role, allowed) {
		return fiber.NewError(fiber.StatusForbidden, "You are not authorized to perform this action")
	}
	return nil
}

func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("user_role").(string)
	return role == constants.RoleAdmin
}
