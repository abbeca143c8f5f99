// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Community titles and descriptions are user-generated; they are stripped
// of any markup before leaving the API so admin tooling can render them
// without escaping concerns.
var strict = bluemonday.StrictPolicy()

// Text removes all HTML from user-generated content and trims the result.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
