package middleware_test

import (
	"eduak/config"
	"eduak/middleware"
	"eduak/models"
	"eduak/policies"
	"eduak/testutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whoAmI(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.SendString(user.Email)
}

func get(t *testing.T, app *fiber.App, auth string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJWTMiddleware(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice", models.RoleTeacher, true)

	app := fiber.New()
	app.Get("/", middleware.JWTMiddleware, whoAmI)

	assert.Equal(t, http.StatusOK, get(t, app, testutil.AuthHeader(t, alice)))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, ""))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Token abc"))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer abc"))

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userId": alice.ID,
			"exp":    time.Now().Add(-time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer "+signed))
	})

	t.Run("foreign signature", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": alice.ID})
		signed, err := token.SignedString([]byte("someone-else"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer "+signed))
	})
}

func TestOptionalJWTMiddleware(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice", models.RoleTeacher, true)

	app := fiber.New()
	app.Get("/", middleware.OptionalJWTMiddleware, func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userId").(uint); !ok {
			return c.SendStatus(http.StatusNoContent)
		}
		return whoAmI(c)
	})

	assert.Equal(t, http.StatusNoContent, get(t, app, ""))
	assert.Equal(t, http.StatusOK, get(t, app, testutil.AuthHeader(t, alice)))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer abc"))
}

func TestRequireRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice", models.RoleTeacher, true)
	sam := testutil.CreateUser(t, db, "sam", models.RoleStudent, true)

	app := fiber.New()
	app.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), whoAmI)

	assert.Equal(t, http.StatusOK, get(t, app, testutil.AuthHeader(t, alice)))
	assert.Equal(t, http.StatusForbidden, get(t, app, testutil.AuthHeader(t, sam)))
}

func TestErrorResponse(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Get("/forbidden", func(c *fiber.Ctx) error { return middleware.ErrorResponse(c, policies.ErrNotOwner) })
	app.Get("/boom", func(c *fiber.Ctx) error { return assert.AnError })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/forbidden", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
