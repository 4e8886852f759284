package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderScopeManifest lists the files still referencing the legacy scope,
// grouped by category.
func RenderScopeManifest(m domain.ScopeManifest, manifestPath string) string {
	var b strings.Builder

	title := headerStyle.Render("Scope Scan")
	scopes := titleStyle.Render(m.LegacyScope) + dimStyle.Render("  →  ") + titleStyle.Render(m.TargetScope)
	count := passStyle.Render("no references")
	if len(m.Matches) > 0 {
		count = warnStyle.Render(fmt.Sprintf("%d files reference the legacy scope", len(m.Matches)))
	}
	b.WriteString(boxStyle.Render(title + "\n" + scopes + "\n\n" + count))
	b.WriteString("\n")

	for _, cat := range []domain.ScopeCategory{domain.ScopeTypescript, domain.ScopeMDX, domain.ScopeConfig} {
		var files []string
		for _, match := range m.Matches {
			if match.Category == cat {
				files = append(files, match.RelativePath)
			}
		}
		renderFileSection(&b, string(cat), files, warnStyle)
	}

	if manifestPath != "" {
		b.WriteString("\n  " + hintStyle.Render("Manifest written to "+manifestPath) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderScopeMigration shows the codemod actions per file.
func RenderScopeMigration(r domain.ScopeMigrationReport) string {
	var b strings.Builder

	title := headerStyle.Render("Scope Migration")
	mode := warnStyle.Render("dry run")
	if r.Write {
		mode = passStyle.Render("write")
	}
	stats := dimStyle.Render(fmt.Sprintf("%d files  ·  target ", len(r.Changes))) + titleStyle.Render(r.TargetScope)
	b.WriteString(boxStyle.Render(title + "\n" + mode + "\n\n" + stats))
	b.WriteString("\n\n")

	if len(r.Changes) == 0 {
		b.WriteString("  " + passStyle.Render("No files required updates.") + "\n\n")
		return b.String()
	}

	for _, c := range r.Changes {
		fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("●"), fileStyle.Render(c.File))
		for _, a := range c.Actions {
			fmt.Fprintf(&b, "      %s\n", infoTagStyle.Render(a))
		}
	}

	if !r.Write {
		b.WriteString("\n  " + hintStyle.Render("Dry run only; rerun with --write to persist changes.") + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderPackageMigration lists updated and unchanged package manifests.
func RenderPackageMigration(r domain.PackageMigrationReport) string {
	var b strings.Builder

	title := headerStyle.Render("Package Scope Migration")
	mode := warnStyle.Render("dry run")
	if r.Write {
		mode = passStyle.Render("write")
	}
	stats := dimStyle.Render(fmt.Sprintf("%d updated  ·  %d unchanged", len(r.Updated), len(r.Unchanged)))
	b.WriteString(boxStyle.Render(title + "\n" + mode + "\n\n" + stats))
	b.WriteString("\n")

	renderFileSection(&b, "Updated", r.Updated, passStyle)
	renderFileSection(&b, "Unchanged", r.Unchanged, skipStyle)

	b.WriteString("\n")
	return b.String()
}

func renderFileSection(b *strings.Builder, title string, files []string, bullet lipgloss.Style) {
	if len(files) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", len(files))),
	)
	for _, f := range files {
		fmt.Fprintf(b, "    %s %s\n", bullet.Render("●"), f)
	}
}
