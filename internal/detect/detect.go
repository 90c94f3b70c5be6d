// Package detect scans a sender profile for signals that the submitted
// content is placeholder or spam-like. The result is advisory: warnings are
// returned alongside a successful generation and never block it.
package detect

import (
	"strings"

	"github.com/outreachx/outreachx/internal/profile"
	"github.com/outreachx/outreachx/internal/validate"
)

// Common throwaway names typed into demo forms.
var placeholderNames = []string{"test", "user", "name", "john doe", "jane doe", "asdf", "qwerty"}

// Warnings returns every advisory warning that applies to the profile.
// Checks are independent; multiple warnings may co-occur.
func Warnings(p profile.StudentProfile) []string {
	var warnings []string

	lower := strings.ToLower(p.Name)
	for _, n := range placeholderNames {
		if strings.Contains(lower, n) {
			warnings = append(warnings, "Profile name appears to be a placeholder")
			break
		}
	}

	if len(strings.TrimSpace(p.Skills)) < 10 {
		warnings = append(warnings, "Skills section seems incomplete")
	}
	if len(strings.TrimSpace(p.Experience)) < 20 {
		warnings = append(warnings, "Experience section seems too brief for verification")
	}

	if hasRepeatedRun(p.Name, 5) || hasRepeatedRun(p.Skills, 5) || hasRepeatedRun(p.Experience, 5) {
		warnings = append(warnings, "Content contains suspicious repetitive patterns")
	}

	if url := strings.TrimSpace(p.LinkedInURL); url != "" && !validate.LinkedInURL(url) {
		warnings = append(warnings, "LinkedIn URL format is invalid")
	}

	return warnings
}

// hasRepeatedRun reports whether s contains n or more identical characters
// in a row. Equivalent to the PCRE `(.)\1{n-1,}`, which RE2 cannot express
// because it needs a backreference.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
