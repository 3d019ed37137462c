// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe HTML from user-supplied content before
// it is stored. Plain text passes through unchanged; scripts, event handler
// attributes, and javascript: URLs are removed.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy is a user-generated-content policy: basic formatting, links
// (nofollow enforced), lists, tables, and images.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with disallowed HTML removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
