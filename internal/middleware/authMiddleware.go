package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sol1corejz/ecotrack/internal/auth"
	"github.com/sol1corejz/ecotrack/internal/tokenstorage"
)

func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt")
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if tokenstorage.IsRevoked(tokenString) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Token revoked",
		})
	}

	userID, err := auth.GetUserID(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	c.Locals("userID", userID)

	return c.Next()
}
