package rewrite

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonHandle  = regexp.MustCompile(`[^a-z0-9]+`)
)

// SanitizeHandleSlug produces registry-safe scope and handle strings:
// lower-cased with everything outside [a-z0-9] removed.
func SanitizeHandleSlug(s string) string {
	return nonHandle.ReplaceAllString(strings.ToLower(s), "")
}

// Kebab lower-cases s and joins whitespace runs with "-".
func Kebab(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// Snake lower-cases s and joins whitespace runs with "_".
func Snake(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "_")
}

func UpperSnake(s string) string {
	return strings.ToUpper(Snake(s))
}

func UpperKebab(s string) string {
	return strings.ToUpper(Kebab(s))
}

// Compact lower-cases s and drops all whitespace.
func Compact(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(s), "")
}

// SplitWords breaks s on non-alphanumerics and camel-case boundaries.
// "Hermes Chat", "hermes-chat" and "HermesChat" all yield two words.
func SplitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var words []string
	for _, f := range fields {
		words = append(words, camelcase.Split(f)...)
	}
	return words
}

// PascalCase joins the words of s with each first letter upper-cased.
// Existing capitals are kept, so "API gateway" becomes "APIGateway".
func PascalCase(s string) string {
	// Casers hold state; one per call keeps PascalCase safe for concurrent rule runs.
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range SplitWords(s) {
		b.WriteString(caser.String(w))
	}
	return b.String()
}
