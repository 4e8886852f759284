package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hermeslabs/hermes-rebrand/internal/domain/redirects"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/rewrite"
)

// RenderRedirectSummary formats a verified redirect catalogue.
func RenderRedirectSummary(s redirects.Summary) string {
	var b strings.Builder

	title := headerStyle.Render("Hermes redirect catalogue validated")
	stats := passStyle.Bold(true).Render(fmt.Sprintf("Total rules: %d", s.Total))
	b.WriteString(boxStyle.Render(title + "\n\n" + stats))
	b.WriteString("\n\n")

	for _, cat := range slices.Sorted(maps.Keys(s.Categories)) {
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render(padRight(string(cat)+" rules:", 18)),
			dimStyle.Render(fmt.Sprintf("%d", s.Categories[cat])),
		)
		for _, host := range slices.Sorted(maps.Keys(s.Hosts)) {
			h := s.Hosts[host]
			if h.Category != cat {
				continue
			}
			fmt.Fprintf(&b, "    %s %s %s\n", passStyle.Render("●"), padRight(host, 24), dimStyle.Render(fmt.Sprintf("%d", h.Count)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderLegacyAudit lists residual legacy tokens per file and line.
func RenderLegacyAudit(r rewrite.LegacyReport) string {
	var b strings.Builder

	title := headerStyle.Render("Legacy Audit")
	status := passStyle.Bold(true).Render("No legacy brand tokens found")
	if !r.Clean() {
		status = errorTagStyle.Render(fmt.Sprintf("%d legacy tokens in %d files", r.Total(), len(r.Files)))
	}
	b.WriteString(boxStyle.Render(title + "\n" + dimStyle.Render(fmt.Sprintf("%d files scanned", r.FilesScanned)) + "\n\n" + status))
	b.WriteString("\n")

	for _, f := range r.Files {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n", fileStyle.Render(f.Path), dimStyle.Render(fmt.Sprintf("(%d)", len(f.Hits))))
		for _, h := range f.Hits {
			fmt.Fprintf(&b, "    %s %s  %s\n",
				warnTagStyle.Render("warn "),
				faintStyle.Render(fmt.Sprintf("%d:%d", h.Line, h.Column)),
				h.Token,
			)
		}
	}

	b.WriteString("\n")
	return b.String()
}
