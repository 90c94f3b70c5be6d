// Package template holds the deterministic generation path: a matrix of
// authored message templates keyed by intent, tone, and length. Rendering is
// pure and performs no I/O, which makes it the guaranteed fallback for every
// AI-backed operation.
package template

import (
	"fmt"
	"strings"

	"github.com/outreachx/outreachx/internal/profile"
)

// Func interpolates a preprocessed request into a complete message.
type Func func(r profile.Request) string

// Recognized enum values. Unrecognized input falls back rather than failing:
// intent to networking, tone to professional, length to standard.
const (
	IntentMentorship    = "mentorship"
	IntentInternship    = "internship"
	IntentInformational = "informational"
	IntentReferral      = "referral"
	IntentNetworking    = "networking"
	IntentAdvice        = "advice"

	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneEnthusiastic = "enthusiastic"
	ToneHumble       = "humble"

	LengthConcise  = "concise"
	LengthStandard = "standard"
	LengthDetailed = "detailed"
)

// Render produces the message for the request. It applies the greeting
// preprocessing itself, so callers can hand over the raw (normalized)
// request. For fixed input the output is byte-identical across calls.
func Render(r profile.Request) string {
	r = profile.Preprocess(r)

	intents, ok := matrix[r.Intent]
	if !ok {
		intents = matrix[IntentNetworking]
	}
	tones, ok := intents[resolveTone(r.Tone)]
	if !ok {
		tones = intents[ToneProfessional]
	}
	fn, ok := tones[r.Length]
	if !ok {
		fn = tones[LengthStandard]
	}
	if fn == nil {
		return generic(r)
	}
	return fn(r)
}

// resolveTone maps the four user-facing tones onto the two authored prose
// sets. Enthusiastic and humble are deliberate aliases of friendly and
// professional respectively: tone only selects vocabulary, never structure.
// Authoring bespoke prose for them is an open follow-up, not a requirement.
func resolveTone(tone string) string {
	switch tone {
	case ToneEnthusiastic:
		return ToneFriendly
	case ToneHumble:
		return ToneProfessional
	case ToneProfessional, ToneFriendly:
		return tone
	default:
		return ToneProfessional
	}
}

// generic is the last-resort message when no template function resolves.
// Unreachable through the fallback chain above, kept so Render is total.
func generic(r profile.Request) string {
	return fmt.Sprintf("Dear %s,\n\nI am %s, a student at %s. I am reaching out to connect and learn from your experience at %s.\n\nBest regards,\n%s",
		r.Target.Name, r.Student.Name, r.Student.University, r.Target.Company, r.Student.Name)
}

// or returns s, or def when s is blank.
func or(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
