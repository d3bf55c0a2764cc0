// Package sanitize strips markup from user-supplied free text before it is
// stored or echoed back in API responses.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Service cleans free-text input fields such as device names and locations.
type Service struct {
	policy *bluemonday.Policy
}

// NewService creates a sanitizer with the strict policy, which removes
// every HTML element and attribute.
func NewService() *Service {
	return &Service{
		policy: bluemonday.StrictPolicy(),
	}
}

// Clean removes all markup from s, unescapes the remaining entities and
// trims surrounding whitespace.
func (s *Service) Clean(input string) string {
	cleaned := s.policy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
