// Package htmlsanitize strips dangerous markup from user-supplied content
// before it is stored. Blog bodies and profile about-sections may contain
// HTML; scripts, event handlers, and javascript: URLs must not survive.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Plain text passes through
// unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
