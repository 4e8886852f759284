package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// ── Hermes palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderRebrandSummary formats a rewrite run with its per-rule breakdown.
// ruleIDs fixes the breakdown order; every rule is listed, zeros included.
func RenderRebrandSummary(s domain.RebrandSummary, ruleIDs []string, elapsed time.Duration) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("hermes-rebrand")
	subtitle := dimStyle.Render("Brand Rewrite")
	if s.DryRun {
		subtitle = warnStyle.Render("Dry Run")
	}

	verb := "updated"
	if s.DryRun {
		verb = "would be updated"
	}
	filesStyle := passStyle
	if s.FilesModified == 0 {
		filesStyle = dimStyle
	}
	stats := filesStyle.Bold(true).Render(fmt.Sprintf("%d files %s", s.FilesModified, verb)) +
		dimStyle.Render(fmt.Sprintf("  ·  %d replacements", s.Total()))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + stats))
	b.WriteString("\n\n")

	// ── Breakdown ──
	breakdown := s.Breakdown(ruleIDs)
	peak := 0
	for _, rc := range breakdown {
		peak = max(peak, rc.Count)
	}

	b.WriteString("  " + titleStyle.Render("Replacement breakdown by rule") + "\n\n")
	for _, rc := range breakdown {
		name := padRight(rc.RuleID, 34)
		if rc.Count == 0 {
			fmt.Fprintf(&b, "    %s %s %s\n", skipStyle.Render("○"), skipStyle.Render(name), skipStyle.Render("0"))
			continue
		}
		fmt.Fprintf(&b, "    %s %s %s %s\n",
			passStyle.Render("●"), name, shareBar(rc.Count, peak, 16), dimStyle.Render(fmt.Sprintf("%d", rc.Count)))
	}

	// ── Failures ──
	if len(s.FailedFiles) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render("Failures"), errorTagStyle.Render(fmt.Sprintf("%d files", len(s.FailedFiles))))
		for _, f := range s.FailedFiles {
			fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render("error"), fileStyle.Render(shortenPath(f)))
		}
	}

	// ── Footer ──
	b.WriteString("\n  " + separatorLine + "\n\n")
	if s.FilesModified == 0 {
		b.WriteString("  " + dimStyle.Render("No files required updates for the provided mapping.") + "\n")
	}
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("Processed %d files (%d skipped) in %.2fs.",
		s.FilesScanned, s.FilesSkipped, elapsed.Seconds())))
	if s.DryRun {
		b.WriteString("  " + warnTagStyle.Render("Dry run was enabled; rerun without --dry-run to persist changes.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

// shareBar draws n relative to peak.
func shareBar(n, peak, width int) string {
	filled := 0
	if peak > 0 {
		filled = max(1, min(n*width/peak, width))
	}
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats rewrite run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.Commit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		mode := string(e.Mode)
		if e.Summary.DryRun && e.Mode == domain.ModeApply {
			mode += " (dry)"
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(e.Timestamp.UTC().Format(time.DateOnly)),
			faintStyle.Render(hash),
			padRight(mode, 14),
			fmt.Sprintf("%d files · %d replacements", e.Summary.FilesModified, e.Summary.Total()),
		)

		// Fewer replacements than the previous run means less legacy text is left.
		if i > 0 {
			diff := e.Summary.Total() - entries[i-1].Summary.Total()
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
