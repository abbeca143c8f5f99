// Package adminlist holds the set of email addresses authorized to use the
// dashboard. The list is built once from configuration and injected into
// the auth features; nothing reads it from ambient global state.
package adminlist

import "strings"

// List is an immutable set of authorized admin emails.
type List struct {
	emails map[string]struct{}
}

// New builds a List from raw email strings. Entries are trimmed and
// lower-cased; empty entries are dropped.
func New(emails []string) *List {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return &List{emails: set}
}

// Parse builds a List from a comma-separated config value.
func Parse(value string) *List {
	return New(strings.Split(value, ","))
}

// Allowed reports whether email belongs to an authorized admin. Matching
// is case-insensitive and ignores surrounding whitespace.
func (l *List) Allowed(email string) bool {
	if l == nil {
		return false
	}
	_, ok := l.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// Len returns the number of authorized emails.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.emails)
}
