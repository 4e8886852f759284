package tui_test

import (
	"testing"
	"time"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/tui"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleSummary() domain.RebrandSummary {
	return domain.RebrandSummary{
		FilesScanned:  12,
		FilesModified: 3,
		FilesSkipped:  2,
		Replacements:  map[string]int{"primary-domain": 4, "product-name-titlecase": 2},
		ModifiedFiles: []string{"/repo/README.md", "/repo/src/app.ts", "/repo/docs/intro.mdx"},
	}
}

var ruleIDs = []string{"primary-domain", "support-email", "product-name-titlecase"}

func TestRenderRebrandSummary_Header(t *testing.T) {
	output := tui.RenderRebrandSummary(sampleSummary(), ruleIDs, 1500*time.Millisecond)
	assert.Contains(t, output, "hermes-rebrand")
	assert.Contains(t, output, "3 files updated")
	assert.Contains(t, output, "6 replacements")
	assert.Contains(t, output, "Processed 12 files (2 skipped) in 1.50s.")
}

func TestRenderRebrandSummary_ListsEveryRule(t *testing.T) {
	output := tui.RenderRebrandSummary(sampleSummary(), ruleIDs, time.Second)
	assert.Contains(t, output, "Replacement breakdown by rule")
	for _, id := range ruleIDs {
		assert.Contains(t, output, id)
	}
}

func TestRenderRebrandSummary_DryRun(t *testing.T) {
	s := sampleSummary()
	s.DryRun = true
	output := tui.RenderRebrandSummary(s, ruleIDs, time.Second)
	assert.Contains(t, output, "Dry Run")
	assert.Contains(t, output, "3 files would be updated")
	assert.Contains(t, output, "rerun without --dry-run")
}

func TestRenderRebrandSummary_NothingToDo(t *testing.T) {
	output := tui.RenderRebrandSummary(domain.RebrandSummary{FilesScanned: 4, Replacements: map[string]int{}}, ruleIDs, time.Second)
	assert.Contains(t, output, "No files required updates for the provided mapping.")
	assert.NotContains(t, output, "rerun without --dry-run")
}

func TestRenderRebrandSummary_Failures(t *testing.T) {
	s := sampleSummary()
	s.FilesFailed = 1
	s.FailedFiles = []string{"/repo/deep/nested/dir/locked.ts"}
	output := tui.RenderRebrandSummary(s, ruleIDs, time.Second)
	assert.Contains(t, output, "Failures")
	assert.Contains(t, output, "nested/dir/locked.ts")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No run history found.")
}

func TestRenderHistory_Entries(t *testing.T) {
	entries := []domain.RunEntry{
		{
			Timestamp: time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC),
			Commit:    "abcdef1234567",
			Mode:      domain.ModeApply,
			Summary:   domain.RebrandSummary{FilesModified: 5, Replacements: map[string]int{"primary-domain": 9}},
		},
		{
			Timestamp: time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC),
			Mode:      domain.ModeValidate,
			Summary:   domain.RebrandSummary{DryRun: true, Replacements: map[string]int{"primary-domain": 2}},
		},
	}
	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "Run History")
	assert.Contains(t, output, "2026-02-25")
	assert.Contains(t, output, "abcdef1")
	assert.NotContains(t, output, "abcdef12")
	assert.Contains(t, output, "validate")
	assert.Contains(t, output, "↓7")
}
