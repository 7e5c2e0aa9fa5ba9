package helper

import (
	"strings"
)

// IsUniqueViolation detects a Postgres unique-constraint violation (23505).
// String fallback keeps it compatible with lib/pq and wrapped pgx errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}

// IsForeignKeyViolation detects a Postgres FK violation (23503); in
// tenant-scoped writes this usually means the referenced row is gone.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "foreign key constraint") ||
		strings.Contains(s, "23503")
}
