package claimController_test

import (
	"bytes"
	"claimit/config"
	"claimit/database"
	"claimit/middleware"
	"claimit/models"
	"claimit/routers/claimRoutes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupClaimApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Claim{},
		&models.ClaimDocument{},
		&models.Notification{},
	))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		UploadDir: t.TempDir(),
	}

	app := fiber.New()
	claimRoutes.SetupClaimRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Role: role, Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

type attachment struct {
	name    string
	content []byte
}

func claimForm(t *testing.T, fields map[string]string, files []attachment) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile("documents", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

var validClaimFields = map[string]string{
	"disaster_type":  "flood",
	"property_type":  "house",
	"description":    "basement flooded after the storm",
	"estimated_loss": "12500.50",
}

func TestCreateClaimWithDocuments(t *testing.T) {
	app, db := setupClaimApp(t)
	user, token := createUser(t, db, "claimant@example.com", models.RoleUser)

	body, contentType := claimForm(t, validClaimFields, []attachment{
		{"estimate.pdf", []byte("pdf-bytes")},
		{"roof.JPG", []byte("jpg-bytes")},
	})

	resp := doRequest(t, app, "POST", "/claim/create", token, body, contentType)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var claim models.Claim
	require.NoError(t, db.Preload("Documents").Where("user_id = ?", user.ID).First(&claim).Error)

	assert.Equal(t, models.StatusPending, claim.Status)
	require.NotNil(t, claim.ClaimNumber)
	assert.True(t, strings.HasPrefix(*claim.ClaimNumber, "CLM-"))
	require.NotNil(t, claim.InsurancePolicyNumber)
	assert.True(t, strings.HasPrefix(*claim.InsurancePolicyNumber, "POL"))

	require.Len(t, claim.Documents, 2)
	for _, doc := range claim.Documents {
		stored := filepath.Join(config.AppConfig.UploadDir, doc.FilePath)
		_, err := os.Stat(stored)
		assert.NoError(t, err, "document %s missing on disk", doc.FileName)
	}
}

// One bad attachment must sink the whole submission: no claim row, no
// document rows, nothing on disk.
func TestCreateClaimRejectsBadFileAtomically(t *testing.T) {
	app, db := setupClaimApp(t)
	_, token := createUser(t, db, "claimant@example.com", models.RoleUser)

	body, contentType := claimForm(t, validClaimFields, []attachment{
		{"estimate.pdf", []byte("pdf-bytes")},
		{"payload.exe", []byte("mz-bytes")},
	})

	resp := doRequest(t, app, "POST", "/claim/create", token, body, contentType)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	responseBody := decodeBody(t, resp)
	assert.Contains(t, responseBody["message"], "payload.exe")

	var claims, docs int64
	db.Model(&models.Claim{}).Count(&claims)
	db.Model(&models.ClaimDocument{}).Count(&docs)
	assert.Zero(t, claims)
	assert.Zero(t, docs)

	entries, err := os.ReadDir(config.AppConfig.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected submission must leave no files behind")
}

func TestCreateClaimRejectsOversizeFile(t *testing.T) {
	app, db := setupClaimApp(t)
	_, token := createUser(t, db, "claimant@example.com", models.RoleUser)

	big := bytes.Repeat([]byte("a"), 5*1024*1024+1)
	body, contentType := claimForm(t, validClaimFields, []attachment{{"huge.pdf", big}})

	resp := doRequest(t, app, "POST", "/claim/create", token, body, contentType)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var claims int64
	db.Model(&models.Claim{}).Count(&claims)
	assert.Zero(t, claims)
}

func TestCreateClaimValidation(t *testing.T) {
	app, db := setupClaimApp(t)
	_, token := createUser(t, db, "claimant@example.com", models.RoleUser)

	fields := map[string]string{
		"disaster_type":  "meteor",
		"property_type":  "house",
		"description":    "x",
		"estimated_loss": "-5",
	}
	body, contentType := claimForm(t, fields, nil)

	resp := doRequest(t, app, "POST", "/claim/create", token, body, contentType)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetClaimHidesForeignRows(t *testing.T) {
	app, db := setupClaimApp(t)
	alice, aliceToken := createUser(t, db, "alice@example.com", models.RoleUser)
	_, bobToken := createUser(t, db, "bob@example.com", models.RoleUser)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	claim := models.Claim{UserID: alice.ID, DisasterType: models.DisasterFlood, PropertyType: models.PropertyHouse, Status: models.StatusPending}
	require.NoError(t, db.Create(&claim).Error)
	path := fmt.Sprintf("/claim/%d", claim.ID)

	resp := doRequest(t, app, "GET", path, aliceToken, nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Foreign claim reads as absent, not forbidden.
	resp = doRequest(t, app, "GET", path, bobToken, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, "GET", path, adminToken, nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestClaimListScopedToOwner(t *testing.T) {
	app, db := setupClaimApp(t)
	alice, aliceToken := createUser(t, db, "alice@example.com", models.RoleUser)
	bob, _ := createUser(t, db, "bob@example.com", models.RoleUser)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	for _, ownerID := range []uint{alice.ID, alice.ID, bob.ID} {
		require.NoError(t, db.Create(&models.Claim{UserID: ownerID, DisasterType: models.DisasterFlood, PropertyType: models.PropertyHouse, Status: models.StatusPending}).Error)
	}

	countClaims := func(token string) int {
		resp := doRequest(t, app, "GET", "/claim/list", token, nil, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		data := body["data"].(map[string]interface{})
		return len(data["claims"].([]interface{}))
	}

	assert.Equal(t, 2, countClaims(aliceToken))
	assert.Equal(t, 3, countClaims(adminToken))
}

func TestUpdateClaimOnlyWhilePending(t *testing.T) {
	app, db := setupClaimApp(t)
	alice, token := createUser(t, db, "alice@example.com", models.RoleUser)

	claim := models.Claim{UserID: alice.ID, DisasterType: models.DisasterFlood, PropertyType: models.PropertyHouse, Status: models.StatusPending}
	require.NoError(t, db.Create(&claim).Error)
	path := fmt.Sprintf("/claim/%d", claim.ID)
	payload := strings.NewReader(`{"description": "revised damage description"}`)

	resp := doRequest(t, app, "PUT", path, token, payload, "application/json")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Model(&claim).Update("status", models.StatusUnderReview).Error)
	payload = strings.NewReader(`{"description": "too late"}`)
	resp = doRequest(t, app, "PUT", path, token, payload, "application/json")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateClaimStatusTransitions(t *testing.T) {
	app, db := setupClaimApp(t)
	alice, aliceToken := createUser(t, db, "alice@example.com", models.RoleUser)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	claim := models.Claim{UserID: alice.ID, DisasterType: models.DisasterFlood, PropertyType: models.PropertyHouse, Status: models.StatusPending}
	require.NoError(t, db.Create(&claim).Error)

	statusBody := func(status string) io.Reader {
		return strings.NewReader(fmt.Sprintf(`{"claim_id": %d, "status": %q}`, claim.ID, status))
	}

	// Claimants cannot adjudicate, not even their own claim.
	resp := doRequest(t, app, "POST", "/claim/admin/status", aliceToken, statusBody(models.StatusApproved), "application/json")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// pending -> approved skips review and is refused.
	resp = doRequest(t, app, "POST", "/claim/admin/status", adminToken, statusBody(models.StatusApproved), "application/json")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/claim/admin/status", adminToken, statusBody(models.StatusUnderReview), "application/json")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.Claim
	require.NoError(t, db.First(&stored, claim.ID).Error)
	assert.Equal(t, models.StatusUnderReview, stored.Status)

	// A refused transition must not write a ledger entry; the accepted one must.
	var notifications int64
	db.Model(&models.Notification{}).Where("user_id = ?", alice.ID).Count(&notifications)
	assert.EqualValues(t, 1, notifications)
}

func TestUpdateClaimPredictionAdminOnly(t *testing.T) {
	app, db := setupClaimApp(t)
	alice, aliceToken := createUser(t, db, "alice@example.com", models.RoleUser)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	claim := models.Claim{UserID: alice.ID, DisasterType: models.DisasterFlood, PropertyType: models.PropertyHouse, Status: models.StatusPending}
	require.NoError(t, db.Create(&claim).Error)

	payload := fmt.Sprintf(`{"claim_id": %d, "predicted_approval": 0.85, "predicted_limit": 10000}`, claim.ID)

	resp := doRequest(t, app, "POST", "/claim/admin/prediction", aliceToken, strings.NewReader(payload), "application/json")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/claim/admin/prediction", adminToken, strings.NewReader(payload), "application/json")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.Claim
	require.NoError(t, db.First(&stored, claim.ID).Error)
	require.NotNil(t, stored.PredictedApproval)
	assert.InDelta(t, 0.85, *stored.PredictedApproval, 0.001)
	require.NotNil(t, stored.PredictedLimit)
	assert.InDelta(t, 10000, *stored.PredictedLimit, 0.001)

	// Out-of-range score is refused by validation.
	bad := fmt.Sprintf(`{"claim_id": %d, "predicted_approval": 1.5}`, claim.ID)
	resp = doRequest(t, app, "POST", "/claim/admin/prediction", adminToken, strings.NewReader(bad), "application/json")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteClaimRemovesDocuments(t *testing.T) {
	app, db := setupClaimApp(t)
	alice, token := createUser(t, db, "alice@example.com", models.RoleUser)

	body, contentType := claimForm(t, validClaimFields, []attachment{{"estimate.pdf", []byte("pdf-bytes")}})
	resp := doRequest(t, app, "POST", "/claim/create", token, body, contentType)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var claim models.Claim
	require.NoError(t, db.Where("user_id = ?", alice.ID).First(&claim).Error)

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/claim/%d", claim.ID), token, nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var claims, docs int64
	db.Model(&models.Claim{}).Count(&claims)
	db.Model(&models.ClaimDocument{}).Count(&docs)
	assert.Zero(t, claims)
	assert.Zero(t, docs)

	_, err := os.Stat(filepath.Join(config.AppConfig.UploadDir, fmt.Sprintf("%d", alice.ID), "claims", fmt.Sprintf("%d", claim.ID)))
	assert.True(t, os.IsNotExist(err))
}
