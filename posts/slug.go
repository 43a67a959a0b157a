package posts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify derives the URL slug for a title: surrounding whitespace is
// trimmed, every inner run of whitespace becomes one hyphen, and the result
// is lower-cased. Whitespace is any Unicode space (NBSP, em space, \v...).
// Slugs are not unique and nothing is transliterated.
func Slugify(title string) string {
	return cases.Lower(language.Und).String(strings.Join(strings.Fields(title), "-"))
}
