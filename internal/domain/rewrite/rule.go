package rewrite

import (
	"regexp"
	"strings"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// Rule migrates one legacy token to its brand equivalent.
type Rule struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Pattern     *regexp.Regexp `json:"-"`
	// Replacement returns a regexp.Expand template; ${n} refers to capture groups.
	Replacement func(brand domain.BrandMetadata) string `json:"-"`
	// NotFollowedBy leaves a match untouched when the text right after it starts
	// with any of these strings. RE2 has no lookahead.
	NotFollowedBy []string `json:"notFollowedBy,omitempty"`
}

// RuleSet is an ordered rule list. Order is significant: each rule sees the
// output of the rules before it.
type RuleSet []Rule

// IDs returns the rule identifiers in application order.
func (rs RuleSet) IDs() []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

// Lookup finds a rule by ID.
func (rs RuleSet) Lookup(id string) (Rule, bool) {
	for _, r := range rs {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// PatternSource exposes the regular expression for catalogues and reports.
func (r Rule) PatternSource() string {
	return r.Pattern.String()
}

// replaceAll rewrites every non-guarded match of r in text using template and
// returns the new text with the number of matches replaced.
func (r Rule) replaceAll(text, template string) (string, int) {
	matches := r.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var (
		out   []byte
		last  int
		count int
	)
	for _, m := range matches {
		if r.guarded(text[m[1]:]) {
			continue
		}
		out = append(out, text[last:m[0]]...)
		out = r.Pattern.ExpandString(out, template, text, m)
		last = m[1]
		count++
	}
	if count == 0 {
		return text, 0
	}
	out = append(out, text[last:]...)
	return string(out), count
}

func (r Rule) guarded(rest string) bool {
	for _, g := range r.NotFollowedBy {
		if strings.HasPrefix(rest, g) {
			return true
		}
	}
	return false
}

// literal escapes a brand value for use inside an Expand template.
func literal(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
