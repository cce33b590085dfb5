package middleware

import (
	"claimit/database"
	"claimit/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CurrentUser loads the authenticated, non-deleted user for this request.
// Returns nil when the token is missing or the account no longer exists.
func CurrentUser(c *fiber.Ctx) *models.User {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return nil
	}
	return &user
}

// CanAccess reports whether the user may touch a resource owned by ownerID.
// Admins may access anything; everyone else only their own rows.
func CanAccess(user *models.User, ownerID uint) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin() || user.ID == ownerID
}

// OwnedScope narrows a query to rows the user may see. Admins see all rows,
// regular users only rows where user_id matches. Listing endpoints must go
// through this so foreign rows are filtered before they leave the store.
func OwnedScope(db *gorm.DB, user *models.User) *gorm.DB {
	if user.IsAdmin() {
		return db
	}
	return db.Where("user_id = ?", user.ID)
}

// RequireAdmin returns the current user only when it carries the admin role.
func RequireAdmin(c *fiber.Ctx) *models.User {
	user := CurrentUser(c)
	if user == nil || !user.IsAdmin() {
		return nil
	}
	return user
}
