package helper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes   = regexp.MustCompile(`-{2,}`)
	fileUnsafe   = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
)

// GenerateSlug turns a title into a lowercase dash-separated slug.
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func sanitizeFilename(filename string) string {
	return fileUnsafe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename builds "<folder>/<yyyymmdd>-<uuid>-<name>" for
// object storage so concurrent uploads never collide.
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
