package domain

import (
	"sort"
	"time"
)

// SkipReason explains why a candidate file was not rewritten.
type SkipReason string

const (
	SkipNone      SkipReason = ""
	SkipExtension SkipReason = "extension"
	SkipBinary    SkipReason = "binary"
)

// FileResult is the outcome of running the rule set over one file.
type FileResult struct {
	Path     string
	Modified bool
	Skipped  SkipReason
	Counts   map[string]int
	Err      error
}

// RebrandSummary aggregates a whole run. It is built once by Summarize.
type RebrandSummary struct {
	DryRun        bool           `json:"dryRun"`
	FilesScanned  int            `json:"filesScanned"`
	FilesModified int            `json:"filesModified"`
	FilesSkipped  int            `json:"filesSkipped"`
	FilesFailed   int            `json:"filesFailed"`
	Replacements  map[string]int `json:"replacements"`
	ModifiedFiles []string       `json:"modifiedFiles"`
	FailedFiles   []string       `json:"failedFiles,omitempty"`
}

// RuleCount is one line of the per-rule breakdown.
type RuleCount struct {
	RuleID string `json:"ruleId"`
	Count  int    `json:"count"`
}

// Summarize folds per-file results, in the order given, into a summary.
// Counts from files that ended up unmodified are not aggregated.
func Summarize(dryRun bool, results []FileResult) RebrandSummary {
	s := RebrandSummary{
		DryRun:        dryRun,
		FilesScanned:  len(results),
		Replacements:  make(map[string]int),
		ModifiedFiles: []string{},
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			s.FilesFailed++
			s.FailedFiles = append(s.FailedFiles, r.Path)
		case r.Skipped != SkipNone:
			s.FilesSkipped++
		case r.Modified:
			s.FilesModified++
			s.ModifiedFiles = append(s.ModifiedFiles, r.Path)
			for id, n := range r.Counts {
				s.Replacements[id] += n
			}
		}
	}

	return s
}

// Total returns the number of replacements across all rules.
func (s RebrandSummary) Total() int {
	total := 0
	for _, n := range s.Replacements {
		total += n
	}
	return total
}

// Breakdown lists ruleIDs in the given order with their counts, zeros included.
// Counts for IDs not in ruleIDs are appended sorted by ID.
func (s RebrandSummary) Breakdown(ruleIDs []string) []RuleCount {
	seen := make(map[string]bool, len(ruleIDs))
	out := make([]RuleCount, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		seen[id] = true
		out = append(out, RuleCount{RuleID: id, Count: s.Replacements[id]})
	}

	var extra []string
	for id := range s.Replacements {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		out = append(out, RuleCount{RuleID: id, Count: s.Replacements[id]})
	}
	return out
}

// RunEntry is one line of the run history kept under .hermes-rebrand/history.
type RunEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Workspace string         `json:"workspace"`
	Commit    string         `json:"commit,omitempty"`
	Mode      Mode           `json:"mode"`
	Summary   RebrandSummary `json:"summary"`
}
