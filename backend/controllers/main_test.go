package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/auth"
	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/database"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/routes"
	"github.com/yipfram/DidactypoBack/backend/services"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

var appSeq int

// newTestApp builds the full route surface on an isolated in-memory
// database. The shared-cache DSN keeps every pooled connection on the
// same database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	appSeq++
	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", appSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:          "testsecret",
		TokenExpireMinutes: 30,
	}
	weekly := services.NewWeeklyChallengeService(db, utils.InitLogger())

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg, weekly)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, pseudo, password string, admin bool) {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Pseudo:     pseudo,
		MotDePasse: hashed,
		EstAdmin:   admin,
	}).Error)
}

// login exchanges credentials on /token and returns the bearer token.
func login(t *testing.T, app *fiber.App, pseudo, password string) string {
	t.Helper()
	form := fmt.Sprintf("username=%s&password=%s", pseudo, password)
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

// do sends a request through the app; a non-nil body is JSON-encoded
// and a non-empty token becomes the Authorization header.
func do(t *testing.T, app *fiber.App, method, target string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
