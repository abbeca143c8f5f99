// internal/app/system/search/search.go
package search

import (
	"strings"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
)

// Status filter values accepted by FilterUsers.
const (
	StatusAll        = "all"
	StatusVerified   = "verified"
	StatusUnverified = "unverified"
)

// FilterUsers returns the users whose name OR email contains query
// (case-insensitive substring match) and whose verification state matches
// status. An empty query matches everyone; an unrecognized status behaves
// like "all".
//
// The source slice is never mutated; filtering the result again with the
// same arguments returns an equal set.
func FilterUsers(users []models.User, query, status string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if q != "" &&
			!strings.Contains(strings.ToLower(u.Name), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		switch status {
		case StatusVerified:
			if !u.EmailVerified {
				continue
			}
		case StatusUnverified:
			if u.EmailVerified {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}
