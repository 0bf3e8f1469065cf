package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var errNoIdentity = errors.New("no user identity in token")

// currentUserID resolves the authenticated caller from the JWT the
// Protected middleware stored on the request context.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errNoIdentity
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errNoIdentity
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errNoIdentity
	}
	return uuid.Parse(raw)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}
