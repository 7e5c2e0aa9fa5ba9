package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newApp(opts AuthJWTOpts, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/probe", AuthJWT(opts), handler)
	return app
}

func TestAuthJWTHydratesLocals(t *testing.T) {
	userID := uuid.New()
	schoolID := uuid.New()

	token := signToken(t, testSecret, jwt.MapClaims{
		"id":        userID.String(),
		"user_name": "dana",
		"is_owner":  false,
		"school_roles": []map[string]any{
			{"school_id": schoolID.String(), "roles": []string{"admin"}},
		},
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	var gotUserID uuid.UUID
	var gotRoles []string
	app := newApp(AuthJWTOpts{Secret: testSecret}, func(c *fiber.Ctx) error {
		id, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		gotUserID = id
		gotRoles = helperAuth.RolesForSchool(c, schoolID)
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, []string{"admin"}, gotRoles)
}

func TestAuthJWTRejectsMissingToken(t *testing.T) {
	app := newApp(AuthJWTOpts{Secret: testSecret}, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	app := newApp(AuthJWTOpts{Secret: testSecret}, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	app := newApp(AuthJWTOpts{Secret: testSecret}, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsBlacklistedToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	app := newApp(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(raw string) (bool, error) { return raw == token, nil },
	}, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTFailsClosedOnBlacklistError(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	app := newApp(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: func(string) (bool, error) { return false, errors.New("store down") },
	}, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAuthJWTCookieFallback(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	app := newApp(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
