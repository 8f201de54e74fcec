package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/letters", RequireAuth(), RequirePermission("letter.read"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/letters/approve", RequireAuth(), RequirePermission("letter.approve"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func accessTokenWith(t *testing.T, permissions ...string) string {
	t.Helper()

	user := models.User{Name: "Petugas", Email: "petugas@example.com"}
	user.ID = 7

	token, _, err := utils.GenerateAccessToken(user, permissions)
	require.NoError(t, err)
	return token
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/letters", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthRejectsMalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/letters", nil)
	req.Header.Set("Authorization", "Bearer bukan.token.valid")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePermissionUsesTokenSnapshot(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(t)

	token := accessTokenWith(t, "letter.read")

	req := httptest.NewRequest(http.MethodGet, "/letters", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Snapshot tidak memuat letter.approve.
	req = httptest.NewRequest(http.MethodPost, "/letters/approve", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRefreshTokenRejectedOnProtectedRoute(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newProtectedApp(t)

	user := models.User{Name: "Petugas", Email: "petugas@example.com"}
	user.ID = 7
	refresh, _, err := utils.GenerateRefreshToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/letters", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
