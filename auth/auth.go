package auth

import (
	"strings"

	"github.com/google/uuid"
)

// NewPollID allocates a short random poll identifier: the first 8 hex
// characters of a random UUID. 32 bits of entropy is plenty for the
// poll volume a single bot sees.
func NewPollID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}

// IsAdmin reports whether the invoking user is the configured admin.
// Exact match against a single id; an unset admin id (zero) matches
// nobody.
func IsAdmin(userID, adminID int64) bool {
	return adminID != 0 && userID == adminID
}
