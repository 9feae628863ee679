package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/auth"
	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

const currentUserKey = "currentUser"

// AuthMiddleware validates the bearer token and resolves its subject to
// a live user row. A token whose user has since been deleted is just as
// invalid as a forged one.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("Authorization")
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		if tokenString == "" {
			return utils.Unauthorized(c, "Could not validate credentials")
		}

		pseudo, err := auth.ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			return utils.Unauthorized(c, "Could not validate credentials")
		}

		var user models.User
		if err := db.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.Unauthorized(c, "L'utilisateur n'existe pas")
			}
			return utils.InternalError(c, "Erreur lors de la validation du token: %v", err)
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// AdminMiddleware requires the platform-wide admin flag. Must run after
// AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Unauthorized(c, "Could not validate credentials")
		}
		if !user.EstAdmin {
			return utils.Forbidden(c, "Accès restreint : vous n'êtes pas administrateur")
		}
		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware, nil when the
// route is not behind it.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
