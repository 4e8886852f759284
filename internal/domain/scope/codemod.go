package scope

import (
	"regexp"
	"slices"
	"strings"
)

// Each pattern captures the quoted module specifier in the group named module.
var specifierPatterns = []struct {
	action string
	re     *regexp.Regexp
}{
	{"import", regexp.MustCompile(`(?m)^[ \t]*import\s+(?:type\s+)?[\w$*{},\s]+?\s*from\s*['"](?P<module>[^'"\n]+)['"]`)},
	{"export", regexp.MustCompile(`(?m)^[ \t]*export\s+(?:type\s+)?[\w$*{},\s]+?\s*from\s*['"](?P<module>[^'"\n]+)['"]`)},
	{"import", regexp.MustCompile(`(?m)^[ \t]*import\s*['"](?P<module>[^'"\n]+)['"]`)},
	{"dynamic import", regexp.MustCompile(`\bimport\s*\(\s*['"](?P<module>[^'"\n]+)['"]`)},
	{"require", regexp.MustCompile(`\brequire\s*\(\s*['"](?P<module>[^'"\n]+)['"]`)},
	{"vi.mock", regexp.MustCompile(`\bvi\.mock\s*\(\s*['"](?P<module>[^'"\n]+)['"]`)},
	{"jest.mock", regexp.MustCompile(`\bjest\.mock\s*\(\s*['"](?P<module>[^'"\n]+)['"]`)},
}

type edit struct {
	start, end int
	text       string
	action     string
}

// RewriteSpecifiers rewrites module specifiers that start with legacy so they
// start with target instead. Only specifiers in import, export, dynamic
// import, require and test mock calls are touched. The returned actions
// describe each rewrite in source order.
func RewriteSpecifiers(src, legacy, target string) (string, []string) {
	var edits []edit
	for _, p := range specifierPatterns {
		idx := p.re.SubexpIndex("module")
		for _, m := range p.re.FindAllStringSubmatchIndex(src, -1) {
			start, end := m[2*idx], m[2*idx+1]
			s := src[start:end]
			if !strings.HasPrefix(s, legacy) {
				continue
			}
			next := target + strings.TrimPrefix(s, legacy)
			edits = append(edits, edit{start: start, end: end, text: next, action: p.action + " -> " + next})
		}
	}
	if len(edits) == 0 {
		return src, nil
	}

	slices.SortStableFunc(edits, func(a, b edit) int { return a.start - b.start })

	var b strings.Builder
	var actions []string
	last := 0
	for _, e := range edits {
		if e.start < last {
			continue
		}
		b.WriteString(src[last:e.start])
		b.WriteString(e.text)
		last = e.end
		actions = append(actions, e.action)
	}
	b.WriteString(src[last:])
	return b.String(), actions
}

// ReplaceText swaps every occurrence of legacy for target.
func ReplaceText(src, legacy, target string) (string, bool) {
	if !strings.Contains(src, legacy) {
		return src, false
	}
	return strings.ReplaceAll(src, legacy, target), true
}

// TextAction is the action recorded for a plain text replacement.
const TextAction = "text replace"
