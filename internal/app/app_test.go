package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"classifieds_backend/internal/config"
	"classifieds_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 10 << 20
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	return cfg
}

// setupTestRouter mounts the complete application over a throwaway sqlite
// database, exactly as Run does over postgres.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "app.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Ad{}, &models.Message{}))

	return SetupRouter(testConfig(t), db)
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func registerUser(t *testing.T, router *gin.Engine, email, name string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     name,
		"location": "Polokwane",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	userID, _ := body["user_id"].(string)
	require.NotEmpty(t, userID)
	return userID
}

func TestApplication_FullFlow(t *testing.T) {
	router := setupTestRouter(t)

	// Health probe
	w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])

	// Registration auto-verifies
	sellerID := registerUser(t, router, "seller@x.com", "Seller")
	buyerID := registerUser(t, router, "buyer@x.com", "Buyer")

	// Duplicate registration is rejected with a 400
	w = doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"email":    "seller@x.com",
		"password": "another",
		"name":     "Imposter",
		"location": "Tzaneen",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Login works straight away
	w = doJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email":    "seller@x.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sellerID, decode(t, w)["user_id"])

	// Wrong password is a 401
	w = doJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email":    "seller@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Post an ad with an image
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"title":       "New in town",
		"description": "Recently moved to Polokwane, keen to meet people",
		"category":    "Men Seeking Women",
		"location":    "Polokwane",
		"user_id":     sellerID,
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("image", "profile.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	adID, _ := decode(t, rec)["ad_id"].(string)
	require.NotEmpty(t, adID)

	// The ad shows up in the listing with the poster's name
	w = doJSON(t, router, http.MethodGet, "/api/ads", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ads, _ := decode(t, w)["ads"].([]interface{})
	require.Len(t, ads, 1)
	first, _ := ads[0].(map[string]interface{})
	assert.Equal(t, "Seller", first["user_name"])
	assert.EqualValues(t, 0, first["views"])

	// The saved image is served from the static uploads route
	imageURL, _ := first["image_url"].(string)
	require.NotEmpty(t, imageURL)
	req = httptest.NewRequest(http.MethodGet, imageURL, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not really a jpeg", rec.Body.String())

	// Every single-ad fetch counts one view
	w = doJSON(t, router, http.MethodGet, "/api/ads/"+adID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["views"])

	w = doJSON(t, router, http.MethodGet, "/api/ads/"+adID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode(t, w)["views"])

	// Buyer messages the seller
	w = doJSON(t, router, http.MethodPost, "/api/messages?sender_id="+buyerID, gin.H{
		"to_user_id": sellerID,
		"content":    "Saw your ad, coffee sometime?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// First fetch by the seller shows the message unread, then flips it
	w = doJSON(t, router, http.MethodGet, "/api/messages/"+sellerID+"?other_user_id="+buyerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	msgs, _ := decode(t, w)["messages"].([]interface{})
	require.Len(t, msgs, 1)
	msg, _ := msgs[0].(map[string]interface{})
	assert.Equal(t, false, msg["read"])

	w = doJSON(t, router, http.MethodGet, "/api/messages/"+sellerID+"?other_user_id="+buyerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	msgs, _ = decode(t, w)["messages"].([]interface{})
	require.Len(t, msgs, 1)
	msg, _ = msgs[0].(map[string]interface{})
	assert.Equal(t, true, msg["read"])

	// The owner takes the ad down and it disappears everywhere
	w = doJSON(t, router, http.MethodDelete, "/api/ads/"+adID+"?user_id="+sellerID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/ads/"+adID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/ads", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ads, _ = decode(t, w)["ads"].([]interface{})
	assert.Empty(t, ads)
}

func TestApplication_ReferenceData(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/locations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	locations, _ := decode(t, w)["locations"].([]interface{})
	assert.Len(t, locations, 15)

	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories, _ := decode(t, w)["categories"].([]interface{})
	assert.Len(t, categories, 6)
}
