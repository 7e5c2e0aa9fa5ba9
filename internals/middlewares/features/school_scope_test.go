package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scopeApp(entries []helperAuth.SchoolRolesEntry, isOwner bool, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := []fiber.Handler{
		func(c *fiber.Ctx) error {
			c.Locals(helperAuth.LocUserID, uuid.New().String())
			c.Locals(helperAuth.LocSchoolRoles, entries)
			c.Locals(helperAuth.LocIsOwner, isOwner)
			return c.Next()
		},
		UseSchoolScope(),
	}
	chain = append(chain, extra...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.SendString(asString(c.Locals(helperAuth.LocActiveRole)))
	})
	app.Get("/probe", chain...)
	return app
}

func probe(t *testing.T, app *fiber.App, schoolID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if schoolID != "" {
		req.Header.Set("X-School-ID", schoolID)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUseSchoolScopeRequiresSchoolID(t *testing.T) {
	app := scopeApp(nil, false)
	resp := probe(t, app, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUseSchoolScopeRejectsInvalidUUID(t *testing.T) {
	app := scopeApp(nil, false)
	resp := probe(t, app, "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUseSchoolScopeHidesForeignSchool(t *testing.T) {
	mine := uuid.New()
	app := scopeApp([]helperAuth.SchoolRolesEntry{
		{SchoolID: mine, Roles: []string{"member"}},
	}, false)

	// a school the viewer has no role on reads as not found
	resp := probe(t, app, uuid.New().String())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUseSchoolScopeResolvesBestRole(t *testing.T) {
	schoolID := uuid.New()
	app := scopeApp([]helperAuth.SchoolRolesEntry{
		{SchoolID: schoolID, Roles: []string{"member", "admin"}},
	}, false)

	resp := probe(t, app, schoolID.String())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUseSchoolScopeOwnerBypassesMembership(t *testing.T) {
	app := scopeApp(nil, true)
	resp := probe(t, app, uuid.New().String())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIsSchoolAdminBlocksMembers(t *testing.T) {
	schoolID := uuid.New()
	app := scopeApp([]helperAuth.SchoolRolesEntry{
		{SchoolID: schoolID, Roles: []string{"member"}},
	}, false, IsSchoolAdmin())

	resp := probe(t, app, schoolID.String())
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestIsSchoolAdminAllowsAdmins(t *testing.T) {
	schoolID := uuid.New()
	app := scopeApp([]helperAuth.SchoolRolesEntry{
		{SchoolID: schoolID, Roles: []string{"admin"}},
	}, false, IsSchoolAdmin())

	resp := probe(t, app, schoolID.String())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
