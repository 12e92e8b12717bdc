package plain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase canonicalizes a header name: "content-length" -> "Content-Length".
// A Caser is stateful, so one is created per call instead of being shared.
func TitleCase(content string) string {
	return cases.Title(language.English).String(content)
}
