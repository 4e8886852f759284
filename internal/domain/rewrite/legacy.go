package rewrite

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

var legacyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)lobe[ _-]?(?:chat|hub)`),
	regexp.MustCompile(`LOBE_THEME_`),
}

// LegacyHit is one residual legacy token.
type LegacyHit struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Token  string `json:"token"`
}

// FindLegacy reports every legacy brand literal left in text, ordered by
// position. Lines and columns are 1-based; columns count bytes.
func FindLegacy(text string) []LegacyHit {
	var hits []LegacyHit
	for i, line := range strings.Split(text, "\n") {
		taken := make(map[int]bool)
		for _, re := range legacyPatterns {
			for _, loc := range re.FindAllStringIndex(line, -1) {
				if taken[loc[0]] {
					continue
				}
				taken[loc[0]] = true
				hits = append(hits, LegacyHit{Line: i + 1, Column: loc[0] + 1, Token: line[loc[0]:loc[1]]})
			}
		}
	}
	slices.SortFunc(hits, func(a, b LegacyHit) int {
		if a.Line != b.Line {
			return cmp.Compare(a.Line, b.Line)
		}
		return cmp.Compare(a.Column, b.Column)
	})
	return hits
}

// LegacyFile groups the hits found in one file.
type LegacyFile struct {
	Path string      `json:"path"`
	Hits []LegacyHit `json:"hits"`
}

// LegacyReport is the result of auditing a workspace for legacy tokens.
type LegacyReport struct {
	FilesScanned int          `json:"filesScanned"`
	Files        []LegacyFile `json:"files"`
}

// Total returns the number of hits across all files.
func (r LegacyReport) Total() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Hits)
	}
	return n
}

// Clean reports whether no legacy tokens were found.
func (r LegacyReport) Clean() bool {
	return len(r.Files) == 0
}
