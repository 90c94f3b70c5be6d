package profile

import "testing"

func TestNormalize_TrimsAndLowercasesSelectors(t *testing.T) {
	r := Request{
		Student: StudentProfile{Name: "  Ava Chen  ", Email: " ava@example.com "},
		Target:  TargetProfessional{Company: " Acme Corp\n"},
		Intent:  " Mentorship ",
		Tone:    "Friendly",
		Length:  "CONCISE",
	}
	got := Normalize(r)
	if got.Student.Name != "Ava Chen" {
		t.Fatalf("name not trimmed: %q", got.Student.Name)
	}
	if got.Target.Company != "Acme Corp" {
		t.Fatalf("company not trimmed: %q", got.Target.Company)
	}
	if got.Intent != "mentorship" || got.Tone != "friendly" || got.Length != "concise" {
		t.Fatalf("selectors not lowercased: %q %q %q", got.Intent, got.Tone, got.Length)
	}
}

func TestNormalize_StripsPastedMarkup(t *testing.T) {
	r := Request{Student: StudentProfile{Experience: "<p>Built a <b>compiler</b></p>"}}
	got := Normalize(r)
	if got.Student.Experience != "Built a compiler" {
		t.Fatalf("markup not stripped: %q", got.Student.Experience)
	}
}

func TestNormalize_DropsScriptBodies(t *testing.T) {
	r := Request{Student: StudentProfile{Skills: `Go<script>alert("x")</script>, SQL`}}
	got := Normalize(r)
	if got.Student.Skills != "Go, SQL" {
		t.Fatalf("script body survived: %q", got.Student.Skills)
	}
}

func TestNormalize_DoesNotMutateCaller(t *testing.T) {
	r := Request{Intent: " Mentorship ", Student: StudentProfile{Name: " Ava "}}
	_ = Normalize(r)
	if r.Intent != " Mentorship " || r.Student.Name != " Ava " {
		t.Fatalf("caller's request was mutated: %+v", r)
	}
}

func TestPreprocess_NameFallsBackToTitle(t *testing.T) {
	r := Request{Target: TargetProfessional{Title: "Engineering Manager", Company: "Acme"}}
	got := Preprocess(r)
	if got.Target.Name != "Engineering Manager" {
		t.Fatalf("expected title fallback, got %q", got.Target.Name)
	}
}

func TestPreprocess_NameFallsBackToCompanyTeam(t *testing.T) {
	r := Request{Target: TargetProfessional{Company: "Acme"}}
	got := Preprocess(r)
	if got.Target.Name != "Acme Team" {
		t.Fatalf("expected company-team fallback, got %q", got.Target.Name)
	}
	if got.Target.Title != "professional" {
		t.Fatalf("expected title placeholder, got %q", got.Target.Title)
	}
}

func TestPreprocess_KeepsKnownFields(t *testing.T) {
	r := Request{Target: TargetProfessional{Name: "Jordan Lee", Title: "CTO", Company: "Acme"}}
	got := Preprocess(r)
	if got.Target.Name != "Jordan Lee" || got.Target.Title != "CTO" {
		t.Fatalf("known fields changed: %+v", got.Target)
	}
	if r.Target.Name != "Jordan Lee" {
		t.Fatalf("caller's request was mutated")
	}
}

func TestGreeting_FallbackChain(t *testing.T) {
	cases := []struct {
		in   TargetProfessional
		want string
	}{
		{TargetProfessional{Name: "Jordan Lee", Title: "CTO", Company: "Acme"}, "Jordan Lee"},
		{TargetProfessional{Title: "CTO", Company: "Acme"}, "CTO"},
		{TargetProfessional{Company: "Acme"}, "Acme Team"},
		{TargetProfessional{Name: "   ", Title: "  ", Company: "Acme"}, "Acme Team"},
	}
	for _, c := range cases {
		if got := Greeting(c.in); got != c.want {
			t.Fatalf("Greeting(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}
