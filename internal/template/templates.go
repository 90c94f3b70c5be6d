package template

import (
	"fmt"
	"strings"

	"github.com/outreachx/outreachx/internal/profile"
)

// matrix holds bespoke prose for the professional and friendly tones of each
// intent. The enthusiastic and humble tones are resolved to these buckets by
// resolveTone; see the note there.
var matrix = map[string]map[string]map[string]Func{
	IntentMentorship: {
		ToneProfessional: {
			LengthConcise:  mentorshipProfessionalConcise,
			LengthStandard: mentorshipProfessionalStandard,
			LengthDetailed: mentorshipProfessionalDetailed,
		},
		ToneFriendly: {
			LengthConcise:  mentorshipFriendlyConcise,
			LengthStandard: mentorshipFriendlyStandard,
			LengthDetailed: mentorshipFriendlyDetailed,
		},
	},
	IntentInternship: {
		ToneProfessional: {
			LengthConcise:  internshipProfessionalConcise,
			LengthStandard: internshipProfessionalStandard,
			LengthDetailed: internshipProfessionalDetailed,
		},
		ToneFriendly: {
			LengthConcise:  internshipFriendlyConcise,
			LengthStandard: internshipFriendlyStandard,
			LengthDetailed: internshipFriendlyDetailed,
		},
	},
	IntentInformational: {
		ToneProfessional: {
			LengthConcise:  informationalProfessionalConcise,
			LengthStandard: informationalProfessionalStandard,
			LengthDetailed: informationalProfessionalDetailed,
		},
		ToneFriendly: {
			LengthConcise:  informationalFriendlyConcise,
			LengthStandard: informationalFriendlyStandard,
			LengthDetailed: informationalFriendlyDetailed,
		},
	},
	IntentReferral: {
		ToneProfessional: {
			LengthConcise:  referralProfessionalConcise,
			LengthStandard: referralProfessionalStandard,
			LengthDetailed: referralProfessionalDetailed,
		},
		ToneFriendly: {
			LengthConcise:  referralFriendlyConcise,
			LengthStandard: referralFriendlyStandard,
			LengthDetailed: referralFriendlyDetailed,
		},
	},
	IntentNetworking: {
		ToneProfessional: {
			LengthConcise:  networkingProfessionalConcise,
			LengthStandard: networkingProfessionalStandard,
			LengthDetailed: networkingProfessionalDetailed,
		},
		ToneFriendly: {
			LengthConcise:  networkingFriendlyConcise,
			LengthStandard: networkingFriendlyStandard,
			LengthDetailed: networkingFriendlyDetailed,
		},
	},
	IntentAdvice: {
		ToneProfessional: {
			LengthConcise:  adviceProfessionalConcise,
			LengthStandard: adviceProfessionalStandard,
			LengthDetailed: adviceProfessionalDetailed,
		},
		ToneFriendly: {
			LengthConcise:  adviceFriendlyConcise,
			LengthStandard: adviceFriendlyStandard,
			LengthDetailed: adviceFriendlyDetailed,
		},
	},
}

// signWith appends "Closing,\nName" and the LinkedIn line when present.
// Exclamatory closings ("Thanks!") already carry their punctuation.
func signWith(b *strings.Builder, closing, name, url string) {
	b.WriteString("\n\n")
	b.WriteString(closing)
	if !strings.HasSuffix(closing, "!") {
		b.WriteString(",")
	}
	b.WriteString("\n")
	b.WriteString(name)
	if url != "" {
		b.WriteString("\n")
		b.WriteString(url)
	}
}

// --- mentorship ---

func mentorshipProfessionalConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s studying %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I noticed %s. ", t.Connection)
	}
	fmt.Fprintf(&b, "Your work at %s as %s aligns closely with my career interests", t.Company, t.Title)
	if s.Interests != "" {
		fmt.Fprintf(&b, " in %s", s.Interests)
	}
	b.WriteString(".\n\nWould you be open to a 15-20 minute call to discuss your career journey? I would greatly value your insights.")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func mentorshipProfessionalStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, and I am a %s pursuing %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I came across your profile while %s. ", t.Connection)
	}
	fmt.Fprintf(&b, "I have been following your impressive career trajectory at %s, and I am deeply inspired by your work as %s.\n\n", t.Company, t.Title)
	if t.Background != "" {
		fmt.Fprintf(&b, "I was particularly impressed by %s. ", t.Background)
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, "In my own journey, I have %s. ", s.Experience)
	}
	fmt.Fprintf(&b, "Your experience in the %s closely aligns with my career aspirations", or(t.Industry, "industry"))
	if s.Interests != "" {
		fmt.Fprintf(&b, ", particularly in %s", s.Interests)
	}
	b.WriteString(".\n\nI would be incredibly grateful if you could spare 15-20 minutes for a brief conversation to discuss your career path and any advice you might have for someone starting out. I am flexible with timing and happy to work around your schedule.")
	b.WriteString("\n\nThank you for considering my request. I look forward to the possibility of connecting with you.")
	signWith(&b, "Warm regards", s.Name, s.LinkedInURL)
	return b.String()
}

func mentorshipProfessionalDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, a %s pursuing a degree in %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I discovered your profile through %s, and ", t.Connection)
	}
	fmt.Fprintf(&b, "I am reaching out because your career journey and current role as %s at %s represent exactly the path I aspire to follow.\n\n", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, "I have been particularly inspired by %s. ", t.Background)
	} else {
		b.WriteString("Your work in this field has caught my attention for the innovative approach you bring. ")
	}
	if s.Skills != "" {
		fmt.Fprintf(&b, "I have been developing skills in %s, and ", s.Skills)
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, "through my experiences including %s, I have ", s.Experience)
	} else {
		b.WriteString("I have ")
	}
	b.WriteString("cultivated a strong foundation that I believe could benefit from your mentorship.\n\n")
	if s.Interests != "" {
		fmt.Fprintf(&b, "My specific interests lie in %s, and ", s.Interests)
	}
	fmt.Fprintf(&b, "I believe your insights could be invaluable in helping me navigate the early stages of my career in %s. I am eager to learn about:\n", or(t.Industry, "this field"))
	b.WriteString("- How you approached critical career decisions\n")
	b.WriteString("- Skills you consider most valuable in your role\n")
	b.WriteString("- Any recommendations for someone at my stage\n\n")
	b.WriteString("Would you be open to a brief 20-minute virtual coffee chat? I would be deeply honored to learn from your experience. I am flexible with scheduling and happy to accommodate your availability.")
	b.WriteString("\n\nThank you for taking the time to consider my request. I genuinely appreciate your time and understand how valuable it is.")
	signWith(&b, "Best regards", s.Name+"\n"+s.University, s.LinkedInURL)
	return b.String()
}

func mentorshipFriendlyConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I noticed %s - how cool! ", t.Connection)
	}
	fmt.Fprintf(&b, "Your journey to %s at %s is super inspiring.", t.Title, t.Company)
	b.WriteString("\n\nAny chance you'd have 15 minutes for a quick chat about your career path? Would love to hear your story!")
	signWith(&b, "Cheers", s.Name, "")
	return b.String()
}

func mentorshipFriendlyStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "Hope you're having a great week! I'm %s, currently a %s studying %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I found your profile while %s, and ", t.Connection)
	}
	b.WriteString("I've been really inspired by your career journey!\n\n")
	if t.Background != "" {
		fmt.Fprintf(&b, "I especially loved learning about %s. ", t.Background)
	}
	fmt.Fprintf(&b, "Your role as %s at %s is exactly the kind of career I'm working towards", t.Title, t.Company)
	if s.Interests != "" {
		fmt.Fprintf(&b, ", especially the %s aspect", s.Interests)
	}
	b.WriteString(".\n\n")
	if s.Experience != "" {
		fmt.Fprintf(&b, "I've been working on %s, and ", s.Experience)
	}
	b.WriteString("I'd love to hear more about your path and any advice you might have for someone just starting out. Would you be open to a quick 15-20 minute chat?")
	b.WriteString("\n\nThanks so much for considering!")
	signWith(&b, "Best", s.Name, "")
	return b.String()
}

func mentorshipFriendlyDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "Hope this message finds you well and not too buried in emails! I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I came across your profile through %s, and ", t.Connection)
	}
	b.WriteString("I just had to reach out because your career path is genuinely inspiring!\n\n")
	if t.Background != "" {
		fmt.Fprintf(&b, "I was particularly amazed by %s. That's exactly the kind of impact I hope to make someday! ", t.Background)
	}
	fmt.Fprintf(&b, "Your role as %s at %s represents the perfect blend of %s that I'm striving for.\n\n", t.Title, t.Company, or(s.Interests, "skills and impact"))
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've been building my skills in %s, and ", s.Skills)
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, "through projects like %s, ", s.Experience)
	}
	b.WriteString("I've gotten a taste of what I love about this field. But I know there's so much more to learn, and that's where I'm hoping you might be able to help!\n\n")
	b.WriteString("I'd absolutely love to hear about:\n")
	b.WriteString("- What first drew you to this field\n")
	b.WriteString("- How you navigated key turning points in your career\n")
	b.WriteString("- What you wish you knew when starting out\n\n")
	b.WriteString("Would you be open to a quick virtual coffee chat sometime? I promise to keep it brief and respect your time. Any insights you could share would mean the world to me!")
	b.WriteString("\n\nThanks so much for reading this far - I really appreciate it!")
	signWith(&b, "Warmly", s.Name, s.LinkedInURL)
	return b.String()
}

// --- internship ---

func internshipProfessionalConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s in %s at %s. I am interested in internship opportunities at %s", s.Name, or(s.Year, "student"), s.Major, s.University, t.Company)
	if s.Skills != "" {
		fmt.Fprintf(&b, ", particularly roles involving %s", s.Skills)
	}
	b.WriteString(".\n\nWould you be able to share any insights about opportunities or the application process?")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func internshipProfessionalStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, and I am a %s studying %s at %s. I am reaching out to express my strong interest in internship opportunities at %s.\n\n", s.Name, or(s.Year, "student"), s.Major, s.University, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, "I have been following %s's work, particularly %s, and ", t.Company, t.Background)
	}
	b.WriteString("I believe my background aligns well with your team's work. ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I have developed skills in %s", s.Skills)
	} else {
		b.WriteString("I have been building relevant technical skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, ", and my experience includes %s", s.Experience)
	}
	fmt.Fprintf(&b, ".\n\nI would greatly appreciate any insights you could share about potential opportunities or the best way to pursue a role at %s.", t.Company)
	b.WriteString("\n\nThank you for your time and consideration.")
	signWith(&b, "Best regards", s.Name, s.LinkedInURL)
	return b.String()
}

func internshipProfessionalDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, a %s pursuing %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I came across your profile while %s, and ", t.Connection)
	}
	fmt.Fprintf(&b, "I am reaching out to express my strong interest in internship opportunities at %s.\n\n", t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, "I have been following %s's innovative work in %s, and ", t.Company, t.Background)
	}
	b.WriteString("I am genuinely excited about the possibility of contributing to your team. ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I have developed a strong foundation in %s", s.Skills)
	} else {
		b.WriteString("I have been developing relevant technical skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, ", complemented by hands-on experience in %s", s.Experience)
	}
	b.WriteString(".\n\n")
	if s.Interests != "" {
		fmt.Fprintf(&b, "My particular interest lies in %s, which ", s.Interests)
	} else {
		b.WriteString("My career interests ")
	}
	fmt.Fprintf(&b, "align closely with %s's mission and values. I am eager to apply my skills in a real-world setting and contribute meaningfully to your %s.\n\n", t.Company, or(t.Industry, "team"))
	b.WriteString("I would be grateful for any insights you could share regarding:\n")
	b.WriteString("- Current or upcoming internship openings\n")
	b.WriteString("- The qualities your team values in candidates\n")
	b.WriteString("- Any advice on strengthening my application\n\n")
	b.WriteString("I understand you have a demanding schedule, and I truly appreciate any guidance you can provide. Would you be open to a brief conversation at your convenience?")
	b.WriteString("\n\nThank you for considering my request.")
	signWith(&b, "Sincerely", s.Name+"\n"+s.University, s.LinkedInURL)
	return b.String()
}

func internshipFriendlyConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s at %s studying %s. I'm really interested in internship opportunities at %s!", s.Name, or(s.Year, "student"), s.University, s.Major, t.Company)
	b.WriteString("\n\nAny advice on the best way to apply or what the team looks for?")
	signWith(&b, "Thanks!", s.Name, "")
	return b.String()
}

func internshipFriendlyStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I hope you're doing well! I'm %s, a %s at %s studying %s. I've been super interested in %s's work", s.Name, or(s.Year, "student"), s.University, s.Major, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, ", especially %s", t.Background)
	}
	b.WriteString(", and I'm hoping to find an internship opportunity there.\n\n")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've been working on %s", s.Skills)
	} else {
		b.WriteString("I've been building my skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " through projects like %s", s.Experience)
	}
	fmt.Fprintf(&b, ", and I'd love to put them to use at %s!", t.Company)
	b.WriteString("\n\nWould you have any insights on the best way to apply or what the team typically looks for in interns? Any advice would be hugely appreciated!")
	signWith(&b, "Thanks so much!", s.Name, "")
	return b.String()
}

func internshipFriendlyDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "Hope you're having a great day! I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I found your profile while %s, and ", t.Connection)
	}
	fmt.Fprintf(&b, "I'm reaching out because %s has been my dream place to intern!\n\n", t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, "I've been following the company's work on %s, and it's exactly the kind of innovative environment I want to be part of. ", t.Background)
	}
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've developed skills in %s", s.Skills)
	} else {
		b.WriteString("I've been building relevant skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, ", and through %s, I've gotten hands-on experience that I think would transfer well", s.Experience)
	}
	b.WriteString(".\n\n")
	if s.Interests != "" {
		fmt.Fprintf(&b, "I'm especially excited about opportunities related to %s. ", s.Interests)
	}
	b.WriteString("I know landing a great internship takes more than just applying online, so I'd love to hear:\n")
	fmt.Fprintf(&b, "- What made you choose %s?\n", t.Company)
	b.WriteString("- What qualities does the team value most?\n")
	b.WriteString("- Any tips for making my application stand out?\n\n")
	b.WriteString("I know you're busy, so even a quick response would mean a lot. Thanks so much for taking the time to read this!")
	signWith(&b, "Cheers", s.Name, s.LinkedInURL)
	return b.String()
}

// --- informational ---

func informationalProfessionalConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s %s at %s. I am exploring careers in %s and would appreciate learning about your experience at %s.", s.Name, s.Major, or(s.Year, "student"), s.University, or(t.Industry, "your field"), t.Company)
	b.WriteString("\n\nWould you be open to a brief informational interview?")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func informationalProfessionalStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s studying %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I discovered your profile through %s. ", t.Connection)
	}
	fmt.Fprintf(&b, "I am researching career paths in %s and would value the opportunity to learn from your experience.\n\n", or(t.Industry, "your field"))
	fmt.Fprintf(&b, "Your journey to %s at %s represents the kind of career trajectory I aspire to.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I am particularly interested in learning more about %s.", t.Background)
	}
	b.WriteString("\n\nWould you be available for a brief 15-20 minute informational interview? I would be grateful for any insights you could share about the industry and your career path.")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func informationalProfessionalDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, and I am a %s pursuing %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I came across your profile while %s, and ", t.Connection)
	}
	b.WriteString("I am reaching out to request an informational interview to learn about your career journey.\n\n")
	fmt.Fprintf(&b, "Your experience as %s at %s is incredibly inspiring. ", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, "I was particularly impressed by %s. ", t.Background)
	}
	fmt.Fprintf(&b, "As I navigate my own career exploration, I am eager to understand the %s better from someone with your expertise.\n\n", or(t.Industry, "industry"))
	if s.Skills != "" {
		fmt.Fprintf(&b, "I have been developing skills in %s", s.Skills)
	} else {
		b.WriteString("I have been building my skill set")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " and recently worked on %s", s.Experience)
	}
	b.WriteString(".")
	if s.Interests != "" {
		fmt.Fprintf(&b, " I am particularly interested in %s.", s.Interests)
	}
	b.WriteString("\n\nI would be grateful for 15-20 minutes of your time to discuss:\n")
	b.WriteString("- Your career journey and key decisions along the way\n")
	b.WriteString("- Day-to-day responsibilities in your role\n")
	fmt.Fprintf(&b, "- Trends and opportunities in the %s\n", or(t.Industry, "field"))
	b.WriteString("- Advice for someone starting out\n\n")
	b.WriteString("I understand your time is valuable, and I am happy to work around your schedule.")
	b.WriteString("\n\nThank you for considering my request.")
	signWith(&b, "Respectfully", s.Name, s.LinkedInURL)
	return b.String()
}

func informationalFriendlyConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s %s at %s. Would love to hear about your journey to %s at %s!", s.Name, s.Major, or(s.Year, "student"), s.University, t.Title, t.Company)
	b.WriteString("\n\nOpen to a quick chat?")
	signWith(&b, "Thanks!", s.Name, "")
	return b.String()
}

func informationalFriendlyStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I found your profile through %s, and ", t.Connection)
	}
	b.WriteString("I'm really curious about your career path!\n\n")
	fmt.Fprintf(&b, "Your role as %s at %s sounds fascinating.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I especially want to hear about %s.", t.Background)
	}
	fmt.Fprintf(&b, " I'm exploring careers in %s and would love to learn from your experience.", or(t.Industry, "this space"))
	b.WriteString("\n\nWould you be up for a quick virtual coffee chat? I'd love to hear your story!")
	signWith(&b, "Thanks for considering!", s.Name, "")
	return b.String()
}

func informationalFriendlyDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "Hope you're having a great week! I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I found your profile through %s, and ", t.Connection)
	}
	b.WriteString("I'm reaching out because your career journey really caught my attention!\n\n")
	fmt.Fprintf(&b, "Your path to becoming %s at %s is exactly the kind of story I'd love to learn from.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I'm especially interested in hearing about %s!", t.Background)
	}
	fmt.Fprintf(&b, " As someone exploring the %s, I have so many questions!\n\n", or(t.Industry, "industry"))
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've been working on %s", s.Skills)
	} else {
		b.WriteString("I've been developing my skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " through %s", s.Experience)
	}
	b.WriteString(", but I know there's so much I can learn from someone with your experience.")
	if s.Interests != "" {
		fmt.Fprintf(&b, " I'm particularly drawn to %s.", s.Interests)
	}
	b.WriteString("\n\nI'd love to chat about:\n")
	b.WriteString("- What drew you to this field\n")
	b.WriteString("- How you made key career decisions\n")
	b.WriteString("- What a typical day looks like for you\n")
	b.WriteString("- Any \"I wish I knew this earlier\" wisdom!\n\n")
	b.WriteString("Would you be open to a 15-20 minute call? I promise to be respectful of your time!")
	signWith(&b, "Thanks so much!", s.Name, s.LinkedInURL)
	return b.String()
}

// --- referral ---

func referralProfessionalConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s %s at %s. I am interested in opportunities at %s", s.Name, s.Major, or(s.Year, "student"), s.University, t.Company)
	if s.Skills != "" {
		fmt.Fprintf(&b, " and have experience in %s", s.Skills)
	}
	b.WriteString(".\n\nWould you be open to discussing the referral process or sharing advice on the application?")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func referralProfessionalStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s studying %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "%s. ", t.Connection)
	}
	fmt.Fprintf(&b, "I am reaching out regarding opportunities at %s.\n\n", t.Company)
	fmt.Fprintf(&b, "I have been following %s's work", t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, ", particularly %s,", t.Background)
	}
	b.WriteString(" and I am genuinely excited about the possibility of joining your team. ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "My background includes %s", s.Skills)
	} else {
		b.WriteString("I have developed relevant skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, ", and I have gained experience through %s", s.Experience)
	}
	b.WriteString(".\n\nI understand if a referral is not possible, but I would be grateful for any guidance on positioning myself as a strong candidate. I have attached my resume for your reference.")
	b.WriteString("\n\nThank you for considering my request.")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func referralProfessionalDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, a %s pursuing %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I reached out because %s. ", t.Connection)
	}
	fmt.Fprintf(&b, "I am writing to express my strong interest in opportunities at %s.\n\n", t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, "I have been following %s's impressive work on %s, and ", t.Company, t.Background)
	}
	b.WriteString("I believe my background and skills align well with your team's needs. ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I have developed expertise in %s", s.Skills)
	} else {
		b.WriteString("I have built a strong foundation")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, ", complemented by hands-on experience including %s", s.Experience)
	}
	b.WriteString(".\n\n")
	if s.Interests != "" {
		fmt.Fprintf(&b, "I am particularly drawn to %s, which ", s.Interests)
	} else {
		b.WriteString("My career interests ")
	}
	fmt.Fprintf(&b, "align closely with %s's mission. I understand that employee referrals carry significant weight in the hiring process, and I am wondering if you would be willing to:\n", t.Company)
	b.WriteString("- Review my resume and share feedback\n")
	b.WriteString("- Provide insights on what the team looks for in candidates\n")
	b.WriteString("- Consider referring me if you feel my profile is a good match\n\n")
	b.WriteString("I completely understand if this is not something you are comfortable with, and I would be equally grateful for any advice on how to position myself effectively.")
	b.WriteString("\n\nThank you for taking the time to consider my request.")
	signWith(&b, "Respectfully", s.Name, s.LinkedInURL)
	return b.String()
}

func referralFriendlyConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s %s interested in %s. Would you be open to sharing any tips on the application process?", s.Name, s.Major, or(s.Year, "student"), t.Company)
	signWith(&b, "Thanks!", s.Name, "")
	return b.String()
}

func referralFriendlyStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "%s. ", t.Connection)
	}
	fmt.Fprintf(&b, "I'm really excited about opportunities at %s!\n\n", t.Company)
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've been working with %s", s.Skills)
	} else {
		b.WriteString("I've been building relevant skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " on projects like %s", s.Experience)
	}
	b.WriteString(", and I think I'd be a great fit.")
	if t.Background != "" {
		fmt.Fprintf(&b, " I'm especially interested in the work around %s.", t.Background)
	}
	b.WriteString("\n\nWould you be open to chatting about the referral process or any tips for the application? No pressure at all – any guidance would be amazing!")
	signWith(&b, "Thanks so much!", s.Name, "")
	return b.String()
}

func referralFriendlyDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "Hope you're doing great! I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I found your profile through %s, and ", t.Connection)
	}
	fmt.Fprintf(&b, "I'm reaching out because %s is genuinely my dream company!\n\n", t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, "I've been following the amazing work around %s, and ", t.Background)
	}
	b.WriteString("I'm super excited about potentially joining the team. ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've developed skills in %s", s.Skills)
	} else {
		b.WriteString("I've been building relevant experience")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " through projects like %s", s.Experience)
	}
	b.WriteString(".")
	if s.Interests != "" {
		fmt.Fprintf(&b, " I'm especially passionate about %s!", s.Interests)
	}
	b.WriteString("\n\nI know referrals are a big ask, so I wanted to be upfront about what I'm hoping for:\n")
	b.WriteString("- Any advice on making my application stand out\n")
	b.WriteString("- Insights on what the team values most\n")
	b.WriteString("- If you feel comfortable, potentially a referral (totally okay if not!)\n\n")
	b.WriteString("I'd love to send over my resume if you're open to taking a look. No pressure at all – I really appreciate any guidance you can offer!")
	signWith(&b, "Thanks so much for your time!", s.Name, s.LinkedInURL)
	return b.String()
}

// --- networking ---

func networkingProfessionalConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s %s at %s. I would be honored to connect with you and learn from your experience in %s.", s.Name, s.Major, or(s.Year, "student"), s.University, or(t.Industry, "the industry"))
	b.WriteString("\n\nLooking forward to connecting.")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func networkingProfessionalStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "My name is %s, and I am a %s studying %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I noticed %s. ", t.Connection)
	}
	fmt.Fprintf(&b, "I am reaching out to connect with professionals in %s.\n\n", or(t.Industry, "the field"))
	fmt.Fprintf(&b, "Your experience as %s at %s caught my attention.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I was particularly impressed by %s.", t.Background)
	}
	if s.Interests != "" {
		fmt.Fprintf(&b, " My interests in %s align closely with your work.", s.Interests)
	} else {
		b.WriteString(" I believe we share similar professional interests.")
	}
	b.WriteString("\n\nI would be honored to connect and learn from your experience as I develop my own career path.")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func networkingProfessionalDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, a %s pursuing %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I came across your profile while %s, and ", t.Connection)
	}
	fmt.Fprintf(&b, "I am reaching out to expand my professional network in %s.\n\n", or(t.Industry, "the field"))
	fmt.Fprintf(&b, "Your career as %s at %s is truly inspiring.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I was particularly impressed by %s.", t.Background)
	}
	b.WriteString(" ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I have been developing skills in %s", s.Skills)
	} else {
		b.WriteString("I have been building my professional skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " through %s", s.Experience)
	}
	b.WriteString(".\n\n")
	if s.Interests != "" {
		fmt.Fprintf(&b, "My interests in %s ", s.Interests)
	} else {
		b.WriteString("My professional interests ")
	}
	b.WriteString("align closely with the work you do, and I believe connecting could be mutually beneficial. I am always eager to learn from experienced professionals and share insights from my own journey.\n\n")
	fmt.Fprintf(&b, "I would be honored to add you to my network and perhaps exchange perspectives on %s from time to time.", or(t.Industry, "the industry"))
	b.WriteString("\n\nThank you for considering my connection request.")
	signWith(&b, "Warm regards", s.Name, s.LinkedInURL)
	return b.String()
}

func networkingFriendlyConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s %s at %s. Would love to connect and learn from your experience at %s!", s.Name, s.Major, or(s.Year, "student"), s.University, t.Company)
	signWith(&b, "Best", s.Name, "")
	return b.String()
}

func networkingFriendlyStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I found your profile through %s, and ", t.Connection)
	}
	b.WriteString("I'd love to connect!\n\n")
	fmt.Fprintf(&b, "Your work as %s at %s is really inspiring.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I especially admire %s!", t.Background)
	}
	if s.Interests != "" {
		fmt.Fprintf(&b, " I'm interested in %s, which seems aligned with your work.", s.Interests)
	}
	fmt.Fprintf(&b, "\n\nAlways looking to learn from amazing people in %s!", or(t.Industry, "the industry"))
	signWith(&b, "Cheers", s.Name, "")
	return b.String()
}

func networkingFriendlyDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "Hope you're having a fantastic week! I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I discovered your profile while %s, and ", t.Connection)
	}
	b.WriteString("I'm reaching out because connecting with great people is the best part of building a career!\n\n")
	fmt.Fprintf(&b, "Your journey to %s at %s is super inspiring!", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I especially love %s – so cool!", t.Background)
	}
	b.WriteString(" ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've been working on %s", s.Skills)
	} else {
		b.WriteString("I've been developing my skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " and recently %s", s.Experience)
	}
	b.WriteString(".\n\n")
	if s.Interests != "" {
		fmt.Fprintf(&b, "My interests in %s ", s.Interests)
	} else {
		b.WriteString("My professional interests ")
	}
	b.WriteString("seem really aligned with your work, and I think we'd have some great conversations!\n\n")
	fmt.Fprintf(&b, "I don't have a specific ask – I just love connecting with people who are doing interesting things in %s. Would love to have you in my network!", or(t.Industry, "the field"))
	signWith(&b, "Cheers", s.Name, s.LinkedInURL)
	return b.String()
}

// --- advice ---

func adviceProfessionalConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s %s at %s. I would appreciate any advice you might have about %s.", s.Name, s.Major, or(s.Year, "student"), s.University, or(s.Interests, "succeeding in your field"))
	b.WriteString("\n\nThank you for your time.")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func adviceProfessionalStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I am %s, a %s studying %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I encountered your profile while %s. ", t.Connection)
	}
	fmt.Fprintf(&b, "I am seeking advice from experienced professionals in %s.\n\n", or(t.Industry, "your field"))
	fmt.Fprintf(&b, "Your expertise as %s at %s makes you an ideal person to ask about %s.", t.Title, t.Company, or(s.Interests, "industry trends and career development"))
	if t.Background != "" {
		fmt.Fprintf(&b, " Your work on %s is particularly relevant to my interests.", t.Background)
	}
	b.WriteString("\n\nIf you have a moment, I would greatly appreciate your perspective on current trends or skills that are becoming increasingly valuable in the field.")
	b.WriteString("\n\nThank you for your time.")
	signWith(&b, "Best regards", s.Name, "")
	return b.String()
}

func adviceProfessionalDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", t.Name)
	fmt.Fprintf(&b, "I hope this message finds you well. My name is %s, a %s pursuing %s at %s. ", s.Name, or(s.Year, "student"), s.Major, s.University)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I came across your profile while %s, and ", t.Connection)
	}
	b.WriteString("I am reaching out to seek advice from someone with your expertise.\n\n")
	fmt.Fprintf(&b, "Your experience as %s at %s places you at the forefront of %s.", t.Title, t.Company, or(t.Industry, "the industry"))
	if t.Background != "" {
		fmt.Fprintf(&b, " I have been following your work on %s, and I believe your insights would be invaluable as I navigate my career path.\n\n", t.Background)
	} else {
		b.WriteString(" I believe your insights would be invaluable as I navigate my career path.\n\n")
	}
	if s.Skills != "" {
		fmt.Fprintf(&b, "I have been developing skills in %s", s.Skills)
	} else {
		b.WriteString("I have been building my skill set")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " and have experience including %s", s.Experience)
	}
	b.WriteString(".")
	if s.Interests != "" {
		fmt.Fprintf(&b, " My interests lie specifically in %s.", s.Interests)
	}
	b.WriteString("\n\nI would be grateful for your perspective on:\n")
	fmt.Fprintf(&b, "- Critical skills for success in %s\n", or(t.Industry, "your field"))
	b.WriteString("- Emerging trends shaping the industry\n")
	b.WriteString("- How to position myself as a strong candidate\n\n")
	b.WriteString("I understand your time is valuable, and even a brief response would be tremendously helpful.")
	b.WriteString("\n\nThank you for considering my request.")
	signWith(&b, "Respectfully", s.Name, s.LinkedInURL)
	return b.String()
}

func adviceFriendlyConcise(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s %s curious about %s. Any quick tips for someone starting out?", s.Name, s.Major, or(s.Year, "student"), or(t.Industry, "your field"))
	signWith(&b, "Thanks!", s.Name, "")
	return b.String()
}

func adviceFriendlyStandard(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I discovered you while %s, and ", t.Connection)
	}
	fmt.Fprintf(&b, "I'm hoping to pick your brain about %s!\n\n", or(t.Industry, "the industry"))
	fmt.Fprintf(&b, "Your work as %s at %s is super impressive.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I've especially noticed %s.", t.Background)
	}
	b.WriteString(" ")
	if s.Interests != "" {
		fmt.Fprintf(&b, "I'm interested in %s", s.Interests)
	} else {
		b.WriteString("I'm exploring this field")
	}
	b.WriteString(" and would love any advice you might have!")
	b.WriteString("\n\nWhat skills or trends should someone like me be focusing on?")
	signWith(&b, "Thanks so much!", s.Name, "")
	return b.String()
}

func adviceFriendlyDetailed(r profile.Request) string {
	s, t := r.Student, r.Target
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", t.Name)
	fmt.Fprintf(&b, "Hope I'm not catching you at a busy time! I'm %s, a %s at %s studying %s. ", s.Name, or(s.Year, "student"), s.University, s.Major)
	if t.Connection != "" {
		fmt.Fprintf(&b, "I found your profile while %s, and ", t.Connection)
	}
	fmt.Fprintf(&b, "I'm on a mission to learn as much as I can about %s!\n\n", or(t.Industry, "your field"))
	fmt.Fprintf(&b, "Your experience as %s at %s makes you one of the best people to learn from.", t.Title, t.Company)
	if t.Background != "" {
		fmt.Fprintf(&b, " I've been especially curious about %s!", t.Background)
	}
	b.WriteString(" ")
	if s.Skills != "" {
		fmt.Fprintf(&b, "I've been working on %s", s.Skills)
	} else {
		b.WriteString("I've been building my skills")
	}
	if s.Experience != "" {
		fmt.Fprintf(&b, " through %s", s.Experience)
	}
	b.WriteString(".\n\n")
	if s.Interests != "" {
		fmt.Fprintf(&b, "I'm particularly interested in %s, so ", s.Interests)
	}
	b.WriteString("I was hoping you might share:\n")
	b.WriteString("- Skills that really make a difference in your work\n")
	b.WriteString("- Trends you're most excited about\n")
	b.WriteString("- \"Do this, not that\" advice for someone starting out\n\n")
	b.WriteString("Even a super quick response would make my day! I know you're busy, so I really appreciate any wisdom you can share.")
	signWith(&b, "Thanks so much!", s.Name, s.LinkedInURL)
	return b.String()
}
