// backend/src/validation/sanitizers.go
package validation

import (
	"github.com/microcosm-cc/bluemonday"
)

var strictHTMLPolicy *bluemonday.Policy

func init() {
	// Initialize strict policy once at startup
	strictHTMLPolicy = bluemonday.StrictPolicy() // Removes all HTML tags
}

// SanitizeDescription removes all HTML tags and attributes from a free-text
// transaction description. Descriptions are echoed back to the dashboard,
// so they are sanitized before they are stored or returned.
func SanitizeDescription(s string) string {
	return strictHTMLPolicy.Sanitize(s)
}
