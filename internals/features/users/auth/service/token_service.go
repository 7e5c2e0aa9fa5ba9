package service

import (
	"context"
	"fmt"
	"time"

	authModel "alumnihub_backend/internals/features/users/auth/model"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const accessTTLDefault = 24 * time.Hour

type schoolRoleRow struct {
	SchoolID uuid.UUID `gorm:"column:school_id"`
	Role     string    `gorm:"column:role"`
}

// SchoolRolesClaim loads the user's active memberships as the school_roles
// claim the auth middleware hydrates back into locals.
func SchoolRolesClaim(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]helperAuth.SchoolRolesEntry, error) {
	var rows []schoolRoleRow
	if err := db.WithContext(ctx).
		Table("school_members").
		Select("school_member_school_id AS school_id, school_member_role AS role").
		Where("school_member_user_id = ? AND school_member_status = 'active'", userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	bySchool := make(map[uuid.UUID][]string, len(rows))
	order := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if _, seen := bySchool[r.SchoolID]; !seen {
			order = append(order, r.SchoolID)
		}
		bySchool[r.SchoolID] = append(bySchool[r.SchoolID], r.Role)
	}

	entries := make([]helperAuth.SchoolRolesEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, helperAuth.SchoolRolesEntry{SchoolID: id, Roles: bySchool[id]})
	}
	return entries, nil
}

// IssueAccessToken signs an HS256 access token carrying identity plus the
// school_roles claim.
func IssueAccessToken(ctx context.Context, db *gorm.DB, secret string, user *authModel.UserModel) (string, time.Time, error) {
	roles, err := SchoolRolesClaim(ctx, db, user.UserID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("load school roles: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(accessTTLDefault)

	schoolRoles := make([]map[string]any, 0, len(roles))
	for _, e := range roles {
		schoolRoles = append(schoolRoles, map[string]any{
			"school_id": e.SchoolID.String(),
			"roles":     e.Roles,
		})
	}

	claims := jwt.MapClaims{
		"id":           user.UserID.String(),
		"user_name":    user.UserName,
		"is_owner":     user.UserRole == "owner",
		"school_roles": schoolRoles,
		"iat":          now.Unix(),
		"exp":          expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// BlacklistToken stores the raw token until its expiry.
func BlacklistToken(db *gorm.DB, rawToken string, expiresAt time.Time) error {
	entry := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     rawToken,
		TokenBlacklistExpiredAt: expiresAt,
	}
	return db.Create(&entry).Error
}

// IsTokenBlacklisted backs the auth middleware's BlacklistChecker.
func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var count int64
		err := db.Model(&authModel.TokenBlacklistModel{}).
			Where("token_blacklist_token = ?", rawToken).
			Count(&count).Error
		return count > 0, err
	}
}

// TokenExpiry parses the token without verification just to read exp, for
// the blacklist TTL. Verification already happened in the middleware.
func TokenExpiry(rawToken string) time.Time {
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(rawToken, jwt.MapClaims{})
	if err != nil {
		return time.Now().Add(accessTTLDefault)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return time.Now().Add(accessTTLDefault)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(accessTTLDefault)
}
