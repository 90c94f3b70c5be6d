package refine

import (
	"math"
	"regexp"
	"strings"
)

var (
	sentenceRe = regexp.MustCompile(`[.!?]+`)
	greetingRe = regexp.MustCompile(`(?i)^(Dear|Hi|Hello)[^,\n]*[,\n]\s*`)
	cantWaitRe = regexp.MustCompile(`(?i)can't wait`)
	awesomeRe  = regexp.MustCompile(`(?i)awesome`)
	reallyRe   = regexp.MustCompile(`(?i)really `)
)

const empathySentence = "I truly appreciate your time and understand how valuable it is. "

const specificsSentence = "\n\nI would be happy to share more specific details about my projects and how they align with your work."

// Apply runs the deterministic rule for op. Operations without a rule
// (friendly, confident, unknown) return the message unchanged.
func Apply(op Op, message string) string {
	switch op {
	case OpShorten:
		return shorten(message)
	case OpFormalize:
		return formalize(message)
	case OpEmpathy:
		return addEmpathy(message)
	case OpSpecifics:
		return message + specificsSentence
	default:
		return message
	}
}

// shorten keeps the leading 60% of sentences (at least two). Messages of two
// sentences or fewer are already short and pass through unchanged.
func shorten(message string) string {
	parts := sentenceRe.Split(message, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) <= 2 {
		return message
	}
	keep := int(math.Ceil(float64(len(sentences)) * 0.6))
	if keep < 2 {
		keep = 2
	}
	out := strings.Join(sentences[:keep], ". ")
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

// formalize applies fixed substitutions, ordered so that "Thanks!" is
// rewritten before the blanket exclamation-mark replacement.
func formalize(message string) string {
	out := message
	out = strings.ReplaceAll(out, "Hi ", "Dear ")
	out = strings.ReplaceAll(out, "Hey ", "Dear ")
	out = strings.ReplaceAll(out, "Thanks!", "Thank you.")
	out = strings.ReplaceAll(out, "!", ".")
	out = strings.ReplaceAll(out, "I'd love to", "I would be honored to")
	out = cantWaitRe.ReplaceAllString(out, "look forward to")
	out = awesomeRe.ReplaceAllString(out, "excellent")
	out = reallyRe.ReplaceAllString(out, "")
	return out
}

// addEmpathy inserts the fixed sentence right after the greeting line, or
// prepends it when no greeting is recognized.
func addEmpathy(message string) string {
	if loc := greetingRe.FindStringIndex(message); loc != nil {
		return message[:loc[1]] + empathySentence + message[loc[1]:]
	}
	return empathySentence + message
}
