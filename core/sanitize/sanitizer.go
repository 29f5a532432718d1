// Package sanitize implements the Sanitizer interface with bluemonday.
// It is the display-side safety policy applied after normalization; the
// normalizer itself is a structural formatter only.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// PolicySanitizer sanitizes HTML with a bluemonday policy.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// New creates a sanitizer using the user-generated-content policy, which
// keeps formatting, links, images and lists but drops scripts, styles and
// event handlers.
func New() *PolicySanitizer {
	return NewWithPolicy(bluemonday.UGCPolicy())
}

// NewWithPolicy creates a sanitizer using p.
func NewWithPolicy(p *bluemonday.Policy) *PolicySanitizer {
	return &PolicySanitizer{policy: p}
}

// Sanitize returns html with everything outside the policy removed.
func (s *PolicySanitizer) Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return s.policy.Sanitize(html)
}

// Passthrough is a Sanitizer that leaves HTML untouched.
type Passthrough struct{}

// Sanitize returns html unchanged.
func (Passthrough) Sanitize(html string) string {
	return html
}
