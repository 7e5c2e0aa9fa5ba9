package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth/scope middlewares. Handlers never touch
// ambient state directly; they go through SessionContext.
const (
	LocUserID         = "user_id"
	LocUserName       = "user_name"
	LocSchoolRoles    = "school_roles"
	LocActiveSchoolID = "active_school_id"
	LocActiveRole     = "active_role"
	LocIsOwner        = "is_owner"
)

type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

// SessionContext is the explicit viewer/tenant scope passed into feature
// code: who is asking, on which school, with what role.
type SessionContext struct {
	UserID   uuid.UUID
	SchoolID uuid.UUID
	Role     string
	IsOwner  bool
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

func GetActiveSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocActiveSchoolID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "School scope is not set")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "School scope is not valid")
	}
	return id, nil
}

func IsOwner(c *fiber.Ctx) bool {
	v, ok := c.Locals(LocIsOwner).(bool)
	return ok && v
}

// GetSessionContext builds the explicit per-request context from locals.
func GetSessionContext(c *fiber.Ctx) (SessionContext, error) {
	userID, err := GetUserIDFromToken(c)
	if err != nil {
		return SessionContext{}, err
	}
	schoolID, err := GetActiveSchoolID(c)
	if err != nil {
		return SessionContext{}, err
	}
	role, _ := c.Locals(LocActiveRole).(string)
	return SessionContext{
		UserID:   userID,
		SchoolID: schoolID,
		Role:     strings.ToLower(strings.TrimSpace(role)),
		IsOwner:  IsOwner(c),
	}, nil
}

// RolesForSchool returns the viewer's roles on the given school, from the
// school_roles claim hydrated by the auth middleware.
func RolesForSchool(c *fiber.Ctx, schoolID uuid.UUID) []string {
	v := c.Locals(LocSchoolRoles)
	entries, ok := v.([]SchoolRolesEntry)
	if !ok {
		return nil
	}
	for _, e := range entries {
		if e.SchoolID == schoolID {
			return e.Roles
		}
	}
	return nil
}

func HasRoleInSchool(c *fiber.Ctx, schoolID uuid.UUID, role string) bool {
	for _, r := range RolesForSchool(c, schoolID) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
