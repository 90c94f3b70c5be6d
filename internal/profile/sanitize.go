package profile

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// cleanField trims a form field and applies NFC so that visually identical
// input produces byte-identical output downstream. Fields that look like
// pasted rich text (contain a tag) are reduced to their text content first.
func cleanField(s string) string {
	if strings.ContainsRune(s, '<') {
		s = stripTags(s)
	}
	return strings.TrimSpace(norm.NFC.String(s))
}

// stripTags drops HTML markup from a field, keeping text content only.
// Script and style bodies are dropped entirely. Malformed markup is handled
// by the tokenizer; on a tokenizer error the text collected so far is
// returned, which for plain text with a stray '<' is the input itself.
func stripTags(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				if skip > 0 {
					skip--
				}
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}
