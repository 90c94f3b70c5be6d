package profile

import "strings"

// StudentProfile describes the sender. All fields are free-form strings;
// a field that is blank after Normalize is treated as absent.
type StudentProfile struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	University  string `json:"university" yaml:"university"`
	Major       string `json:"major" yaml:"major"`
	Year        string `json:"year,omitempty" yaml:"year,omitempty"`
	Skills      string `json:"skills" yaml:"skills"`
	Experience  string `json:"experience" yaml:"experience"`
	Interests   string `json:"interests,omitempty" yaml:"interests,omitempty"`
	LinkedInURL string `json:"linkedinUrl,omitempty" yaml:"linkedinUrl,omitempty"`
}

// TargetProfessional describes the recipient. Name and Title may be unknown;
// Company and Industry are the only required fields.
type TargetProfessional struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Company     string `json:"company" yaml:"company"`
	Industry    string `json:"industry" yaml:"industry"`
	Background  string `json:"background,omitempty" yaml:"background,omitempty"`
	Connection  string `json:"connection,omitempty" yaml:"connection,omitempty"`
	LinkedInURL string `json:"linkedinUrl,omitempty" yaml:"linkedinUrl,omitempty"`
}

// Request bundles everything a single generation call needs. Requests are
// plain values owned by the caller; the engine never mutates them.
type Request struct {
	Student           StudentProfile     `json:"studentProfile" yaml:"studentProfile"`
	Target            TargetProfessional `json:"targetProfessional" yaml:"targetProfessional"`
	Intent            string             `json:"intent" yaml:"intent"`
	Tone              string             `json:"tone" yaml:"tone"`
	Length            string             `json:"length" yaml:"length"`
	AdditionalContext string             `json:"additionalContext,omitempty" yaml:"additionalContext,omitempty"`
}

// Message is a generated outreach message. Refinement and follow-up produce
// new Message values; an existing Message is never edited in place.
type Message struct {
	ID             string   `json:"id"`
	Text           string   `json:"text"`
	GenerationType string   `json:"generationType"`
	Warnings       []string `json:"warnings,omitempty"`
}

// Generation type markers recorded on Message.
const (
	TypeAI               = "ai"
	TypeTemplate         = "template"
	TypeAIFollowUp       = "ai-followup"
	TypeTemplateFollowUp = "template-followup"
)

// Normalize returns a copy of the request with every field cleaned at the
// boundary: whitespace trimmed, Unicode NFC-applied, and HTML tags stripped
// from pasted rich text. After Normalize, presence checks inside the engine
// are simple comparisons against the empty string.
func Normalize(r Request) Request {
	s := &r.Student
	s.Name = cleanField(s.Name)
	s.Email = cleanField(s.Email)
	s.University = cleanField(s.University)
	s.Major = cleanField(s.Major)
	s.Year = cleanField(s.Year)
	s.Skills = cleanField(s.Skills)
	s.Experience = cleanField(s.Experience)
	s.Interests = cleanField(s.Interests)
	s.LinkedInURL = cleanField(s.LinkedInURL)

	t := &r.Target
	t.Name = cleanField(t.Name)
	t.Title = cleanField(t.Title)
	t.Company = cleanField(t.Company)
	t.Industry = cleanField(t.Industry)
	t.Background = cleanField(t.Background)
	t.Connection = cleanField(t.Connection)
	t.LinkedInURL = cleanField(t.LinkedInURL)

	r.Intent = strings.ToLower(cleanField(r.Intent))
	r.Tone = strings.ToLower(cleanField(r.Tone))
	r.Length = strings.ToLower(cleanField(r.Length))
	r.AdditionalContext = cleanField(r.AdditionalContext)
	return r
}

// Preprocess returns a copy of the request with greeting fallbacks applied:
// an unknown recipient name falls back to the title, then to
// "{Company} Team", and an unknown title becomes the literal "professional".
// The input is passed by value, so callers keep their original request (the
// variant paths must see the unmodified fields).
func Preprocess(r Request) Request {
	if strings.TrimSpace(r.Target.Name) == "" {
		r.Target.Name = Greeting(r.Target)
	}
	if strings.TrimSpace(r.Target.Title) == "" {
		r.Target.Title = "professional"
	}
	return r
}

// Greeting resolves the salutation subject for a target whose name may be
// unknown: name, else title, else "{Company} Team".
func Greeting(t TargetProfessional) string {
	if s := strings.TrimSpace(t.Name); s != "" {
		return s
	}
	if s := strings.TrimSpace(t.Title); s != "" {
		return s
	}
	return t.Company + " Team"
}
