package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id (uuid) dari locals hasil AuthMiddleware.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID format")
	}
	return id, nil
}

func GetUserEmail(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return email, nil
}

// Role hasil resolve ulang per-request (bukan klaim token mentah).
func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}
