package middleware

import (
	"claimit/config"
	"claimit/database"
	"claimit/models"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAccessDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Claim{}))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test", Email: email, Role: role, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestCanAccess(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}
	admin.ID = 1
	owner := &models.User{Role: models.RoleUser}
	owner.ID = 2

	assert.True(t, CanAccess(admin, 99), "admin may touch any owner's resource")
	assert.True(t, CanAccess(owner, 2))
	assert.False(t, CanAccess(owner, 3), "regular user must not reach a foreign resource")
	assert.False(t, CanAccess(nil, 2))
}

func TestOwnedScope(t *testing.T) {
	db := setupAccessDB(t)

	alice := createUser(t, db, "alice@example.com", models.RoleUser)
	bob := createUser(t, db, "bob@example.com", models.RoleUser)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)

	require.NoError(t, db.Create(&models.Claim{UserID: alice.ID, Status: models.StatusPending}).Error)
	require.NoError(t, db.Create(&models.Claim{UserID: alice.ID, Status: models.StatusPending}).Error)
	require.NoError(t, db.Create(&models.Claim{UserID: bob.ID, Status: models.StatusPending}).Error)

	var count int64
	OwnedScope(db.Model(&models.Claim{}), &alice).Count(&count)
	assert.EqualValues(t, 2, count)

	OwnedScope(db.Model(&models.Claim{}), &bob).Count(&count)
	assert.EqualValues(t, 1, count)

	OwnedScope(db.Model(&models.Claim{}), &admin).Count(&count)
	assert.EqualValues(t, 3, count, "admin scope sees every row")
}

func TestCurrentUserAndRequireAdmin(t *testing.T) {
	db := setupAccessDB(t)

	user := createUser(t, db, "user@example.com", models.RoleUser)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)

	deleted := createUser(t, db, "gone@example.com", models.RoleUser)
	require.NoError(t, db.Model(&deleted).Update("is_deleted", true).Error)

	app := fiber.New()
	app.Get("/whoami", JWTMiddleware, func(c *fiber.Ctx) error {
		current := CurrentUser(c)
		if current == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unknown account", nil)
		}
		if RequireAdmin(c) != nil {
			return JsonResponse(c, fiber.StatusOK, true, "admin", nil)
		}
		return JsonResponse(c, fiber.StatusOK, true, "user", nil)
	})

	call := func(u models.User) int {
		token, err := GenerateJWT(u.ID, u.Name, u.Role, u.Email)
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, call(user))
	assert.Equal(t, fiber.StatusOK, call(admin))

	// A token for a soft-deleted account must no longer resolve.
	assert.Equal(t, fiber.StatusUnauthorized, call(deleted))

	// No token at all is rejected before any lookup.
	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
