package middleware

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alumnihub_backend/internals/constants"
	helperAuth "alumnihub_backend/internals/helpers/auth"
)

func trimLower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// extractSchoolID pulls the tenant id from path, query or header.
func extractSchoolID(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Params("school_id")); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Query("school_id")); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Get("X-School-ID")); v != "" {
		return v
	}
	return ""
}

var rolePriority = map[string]int{
	constants.RoleOwner:  100,
	constants.RoleAdmin:  90,
	constants.RoleMember: 40,
	constants.RoleUser:   10,
}

func bestRoleFor(roles []string) string {
	if len(roles) == 0 {
		return ""
	}
	cands := make([]string, 0, len(roles))
	for _, r := range roles {
		if r = trimLower(r); r != "" {
			cands = append(cands, r)
		}
	}
	if len(cands) == 0 {
		return ""
	}
	sort.Slice(cands, func(i, j int) bool { return rolePriority[cands[i]] > rolePriority[cands[j]] })
	return cands[0]
}

// UseSchoolScope resolves the active tenant for the request:
//   - school_id comes from path/query/header (UUID only);
//   - non-owners must hold a role on that school (claim school_roles);
//   - sets locals active_school_id + active_role for the handlers.
//
// A viewer acting on a school they do not belong to gets 404-equivalent
// treatment further down; here membership is the gate.
func UseSchoolScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqSchool := strings.TrimSpace(extractSchoolID(c))
		if reqSchool == "" {
			return fiber.NewError(fiber.StatusBadRequest, "school_id is required in path, query or header")
		}
		schoolID, err := uuid.Parse(reqSchool)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "school_id is not valid")
		}

		if helperAuth.IsOwner(c) {
			c.Locals(helperAuth.LocActiveSchoolID, schoolID.String())
			c.Locals(helperAuth.LocActiveRole, constants.RoleOwner)
			return c.Next()
		}

		roles := helperAuth.RolesForSchool(c, schoolID)
		if len(roles) == 0 {
			// do not reveal whether the school exists
			return fiber.NewError(fiber.StatusNotFound, "Not found or access denied")
		}

		activeRole := bestRoleFor(roles)
		if activeRole == "" {
			return fiber.NewError(fiber.StatusForbidden, "No role on this school")
		}

		c.Locals(helperAuth.LocActiveSchoolID, schoolID.String())
		c.Locals(helperAuth.LocActiveRole, activeRole)
		return c.Next()
	}
}

// IsSchoolAdmin only lets owner/admin through. Run after UseSchoolScope.
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID := strings.TrimSpace(asString(c.Locals(helperAuth.LocActiveSchoolID)))
		role := trimLower(asString(c.Locals(helperAuth.LocActiveRole)))
		if schoolID == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "School scope is not set")
		}
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin role required")
		}
		return c.Next()
	}
}

// IsSchoolMember lets any member (admin included) through. Run after
// UseSchoolScope, which already verified the role claim.
func IsSchoolMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID := strings.TrimSpace(asString(c.Locals(helperAuth.LocActiveSchoolID)))
		role := trimLower(asString(c.Locals(helperAuth.LocActiveRole)))
		if schoolID == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "School scope is not set")
		}
		return c.Next()
	}
}
