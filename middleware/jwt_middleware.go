package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"projectview/models"
	"projectview/utils"
)

// Protected validates the bearer token and loads the authenticated user
// into the request context. A raw token without the "Bearer " prefix is
// tolerated for lenient clients.
func Protected(jwt *utils.JWTManager, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Failure(c, fiber.StatusUnauthorized, "Authorization required")
		}

		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			return utils.Failure(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		var user models.User
		if err := db.First(&user, "LOWER(user_name) = LOWER(?)", claims.Username).Error; err != nil {
			return utils.Failure(c, fiber.StatusUnauthorized, "User not found")
		}

		c.Locals("user", &user)
		c.Locals("username", user.UserName)

		return c.Next()
	}
}
