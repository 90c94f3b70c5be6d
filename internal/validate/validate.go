// Package validate enforces the required-field and format contracts for an
// outreach request. Every rule is evaluated independently so the caller gets
// the full list of problems in a single pass, in a fixed order suitable for
// direct display in a form.
package validate

import (
	"regexp"
	"strings"

	"github.com/outreachx/outreachx/internal/profile"
)

var (
	// Accepts personal, legacy public, and profile-style LinkedIn paths.
	linkedInRe = regexp.MustCompile(`(?i)^https?://(www\.)?linkedin\.com/(in|pub|profile)/[\w-]+/?$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Request checks required fields and formats. An empty result means the
// request is valid. Error strings are user-facing and ordered: student
// fields, target fields, intent, then format checks.
func Request(r profile.Request) []string {
	var errs []string

	s := r.Student
	if blank(s.Name) {
		errs = append(errs, "Please enter your name")
	}
	if blank(s.Email) {
		errs = append(errs, "Please enter your email")
	}
	if blank(s.University) {
		errs = append(errs, "Please enter your university")
	}
	if blank(s.Major) {
		errs = append(errs, "Please enter your major/field")
	}
	if blank(s.Skills) {
		errs = append(errs, "Please enter your skills")
	}
	if blank(s.Experience) {
		errs = append(errs, "Please enter your experience")
	}

	// Only company and industry are required on the target side; the sender
	// may not know the specific person.
	t := r.Target
	if blank(t.Company) {
		errs = append(errs, "Please enter the company name")
	}
	if blank(t.Industry) {
		errs = append(errs, "Please enter the industry")
	}

	if blank(r.Intent) {
		errs = append(errs, "Please select an outreach intent")
	}

	if !blank(s.Email) && !emailRe.MatchString(strings.TrimSpace(s.Email)) {
		errs = append(errs, "Please enter a valid email address")
	}
	if !blank(s.LinkedInURL) && !LinkedInURL(s.LinkedInURL) {
		errs = append(errs, "Please enter a valid LinkedIn URL (e.g., https://linkedin.com/in/yourname)")
	}
	if !blank(t.LinkedInURL) && !LinkedInURL(t.LinkedInURL) {
		errs = append(errs, "Please enter a valid LinkedIn URL for the professional")
	}

	return errs
}

// LinkedInURL reports whether s is a well-formed LinkedIn profile URL.
// Blank input is not valid here; optionality is the caller's concern.
func LinkedInURL(s string) bool {
	return linkedInRe.MatchString(strings.TrimSpace(s))
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
