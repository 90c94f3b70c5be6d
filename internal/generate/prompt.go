package generate

import (
	"fmt"
	"strings"

	"github.com/outreachx/outreachx/internal/profile"
)

const generateSystemMessage = "You are an expert professional networking coach who helps students craft compelling outreach messages. Your messages are always personalized, professional, and have high response rates. You never use generic phrases and always make the message feel authentic."

const followUpSystemMessage = "You are an expert at writing professional follow-up messages that are polite, brief, and effective. Your follow-ups have high response rates because they respect the recipient's time while showing genuine interest."

var intentDescriptions = map[string]string{
	"mentorship":    "seeking mentorship and career guidance",
	"internship":    "exploring internship opportunities",
	"informational": "requesting an informational interview to learn about their career path",
	"referral":      "requesting a job referral",
	"networking":    "building professional connections",
	"advice":        "seeking industry-specific advice and insights",
}

var toneDescriptions = map[string]string{
	"professional": "formal and business-like, maintaining a professional demeanor",
	"friendly":     "warm yet professional, approachable but respectful",
	"enthusiastic": "energetic and passionate, showing genuine excitement",
	"humble":       "humble and curious, respectful and eager to learn",
}

var lengthDescriptions = map[string]string{
	"concise":  "under 100 words, brief and to the point",
	"standard": "100-150 words, balanced detail",
	"detailed": "150-200 words, comprehensive",
}

func describe(m map[string]string, key string) string {
	if d, ok := m[key]; ok {
		return d
	}
	return key
}

func orNote(s, note string) string {
	if strings.TrimSpace(s) == "" {
		return note
	}
	return s
}

// buildPrompt assembles the full generation prompt. The target's name may be
// unknown, in which case the model is told to address the team or company
// rather than invent a person.
func buildPrompt(r profile.Request) string {
	s, t := r.Student, r.Target
	profName := strings.TrimSpace(t.Name)
	hasPerson := profName != ""
	if !hasPerson {
		profName = "the hiring team"
	}
	profTitle := orNote(t.Title, "professional")

	var b strings.Builder
	b.WriteString("You are an expert at writing professional networking outreach messages. Generate a personalized LinkedIn/email outreach message based on the following details:\n")

	b.WriteString("\n## Student Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", s.Name)
	fmt.Fprintf(&b, "- University: %s\n", s.University)
	fmt.Fprintf(&b, "- Major: %s\n", s.Major)
	fmt.Fprintf(&b, "- Year: %s\n", orNote(s.Year, "Not specified"))
	fmt.Fprintf(&b, "- Skills: %s\n", orNote(s.Skills, "Not specified"))
	fmt.Fprintf(&b, "- Experience: %s\n", orNote(s.Experience, "Not specified"))
	fmt.Fprintf(&b, "- Career Interests: %s\n", orNote(s.Interests, "Not specified"))
	fmt.Fprintf(&b, "- LinkedIn URL: %s\n", orNote(s.LinkedInURL, "Not provided"))

	b.WriteString("\n## Target Professional/Company:\n")
	if hasPerson {
		fmt.Fprintf(&b, "- Name: %s\n", profName)
	} else {
		fmt.Fprintf(&b, "- Name: %s (Unknown - address to team/company)\n", profName)
	}
	fmt.Fprintf(&b, "- Job Title: %s\n", profTitle)
	fmt.Fprintf(&b, "- Company: %s\n", t.Company)
	fmt.Fprintf(&b, "- Industry: %s\n", orNote(t.Industry, "Not specified"))
	fmt.Fprintf(&b, "- Background/Achievements: %s\n", orNote(t.Background, "Not specified"))
	fmt.Fprintf(&b, "- Connection/Common Ground: %s\n", orNote(t.Connection, "None mentioned"))

	b.WriteString("\n## Message Requirements:\n")
	fmt.Fprintf(&b, "- Intent: %s\n", describe(intentDescriptions, r.Intent))
	fmt.Fprintf(&b, "- Tone: %s\n", describe(toneDescriptions, r.Tone))
	fmt.Fprintf(&b, "- Length: %s\n", describe(lengthDescriptions, r.Length))
	if r.AdditionalContext != "" {
		fmt.Fprintf(&b, "- Additional Context: %s\n", r.AdditionalContext)
	}

	b.WriteString("\n## Guidelines:\n")
	if hasPerson {
		b.WriteString("1. Start with a personalized greeting using the professional's name\n")
	} else {
		b.WriteString("1. Start with an appropriate greeting (e.g., 'Dear Hiring Team at [Company]' or 'Hello [Company] Team')\n")
	}
	b.WriteString("2. Establish credibility briefly (who you are)\n")
	b.WriteString("3. Show genuine interest and specific knowledge about the company/industry\n")
	b.WriteString("4. Make a clear, specific ask (e.g., 15-20 minute call, application consideration)\n")
	b.WriteString("5. Be respectful of their time\n")
	b.WriteString("6. End with a professional signature\n")
	b.WriteString("7. Do NOT include generic phrases like \"I came across your profile\"\n")
	b.WriteString("8. Make it feel authentic and personalized\n")
	b.WriteString("9. Include specific details from the provided information\n")
	if !hasPerson {
		b.WriteString("10. Since no specific person is mentioned, focus on the company and role rather than personal details\n")
	}

	b.WriteString("\nGenerate ONLY the message text, no additional commentary or explanations.")
	return b.String()
}

// buildFollowUpPrompt condenses the profile and references the previous
// message so the model writes a short, polite nudge rather than a rehash.
func buildFollowUpPrompt(r profile.Request, previous string) string {
	profName := orNote(r.Target.Name, "the team")

	var b strings.Builder
	b.WriteString("You are an expert at writing professional follow-up messages. Generate a polite follow-up message based on the following:\n")
	b.WriteString("\n## Original Message:\n")
	b.WriteString(previous)
	b.WriteString("\n\n## Context:\n")
	fmt.Fprintf(&b, "- Student Name: %s\n", r.Student.Name)
	fmt.Fprintf(&b, "- Target: %s at %s\n", profName, r.Target.Company)
	fmt.Fprintf(&b, "- Industry: %s\n", orNote(r.Target.Industry, "Not specified"))
	b.WriteString("\n## Follow-up Guidelines:\n")
	b.WriteString("1. Keep it short (50-80 words)\n")
	b.WriteString("2. Reference the previous outreach politely\n")
	b.WriteString("3. Reiterate interest briefly\n")
	b.WriteString("4. Respect their time\n")
	b.WriteString("5. Don't be pushy or desperate\n")
	b.WriteString("6. Add one new piece of value if possible (e.g., recent achievement, shared news)\n")
	b.WriteString("7. End with a gentle call-to-action\n")
	b.WriteString("\nGenerate ONLY the follow-up message text.")
	return b.String()
}
