package rewrite

import "github.com/hermeslabs/hermes-rebrand/internal/domain"

// Result is the outcome of Apply over one text.
type Result struct {
	Text     string
	Counts   map[string]int
	Modified bool
}

// Apply runs every rule in order over text; rule N+1 sees the output of rule N.
// Each rule replaces all of its matches or none. Counts only holds rules that matched.
func Apply(text string, brand domain.BrandMetadata, rules RuleSet) Result {
	buf := text
	counts := make(map[string]int)

	for _, rule := range rules {
		if !rule.Pattern.MatchString(buf) {
			continue
		}
		next, n := rule.replaceAll(buf, rule.Replacement(brand))
		if n == 0 {
			continue
		}
		buf = next
		counts[rule.ID] += n
	}

	return Result{Text: buf, Counts: counts, Modified: buf != text}
}
