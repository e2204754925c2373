package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug builds a URL slug from a title with a millisecond suffix, so
// two posts with the same title never collide on the unique index.
func MakeSlug(title string) string {
	base := strings.ToLower(title)
	base = slugCleanup.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "untitled"
	}
	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())
}

// isUUID decides whether a path segment is an id or a slug. The id
// column is a uuid, so a slug must never reach the id query.
func isUUID(s string) bool {
	return uuid.Validate(s) == nil
}
