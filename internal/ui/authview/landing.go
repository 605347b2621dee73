// Package authview renders the landing page and the sign-up, sign-in and
// verification screens shown before a session exists.
package authview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/bennu/internal/ui/styles"
)

type feature struct {
	title string
	text  string
}

var features = []feature{
	{"Smart Task Organization", "Categorization and priority suggestions based on what you write."},
	{"Distraction-Free UI", "Adjustable interface with visual cues and color coding."},
	{"Focus Mode", "One task at a time, picked for you when you need it."},
	{"Progress Visualization", "See what you have accomplished this week."},
	{"Personalized Support", "Font size, color scheme, density and motion that suit you."},
}

// Landing renders the pre-authentication landing page
func Landing(s *styles.Styles, width int) string {
	var b strings.Builder

	b.WriteString(s.Brand.Render("◎ Bennu"))
	b.WriteString("  ")
	b.WriteString(s.Muted.Render("AI-Powered Task Manager"))
	b.WriteString("\n\n")

	b.WriteString(s.Muted.Render("Designed for Neurodivergent Minds"))
	b.WriteString("\n")
	b.WriteString(s.SectionTitle.Render("Task Management That Actually Works for You"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(min(width, 72)).Render(
		"Bennu helps you organize, prioritize, and complete tasks in a way that works with your brain, not against it."))
	b.WriteString("\n")
	b.WriteString(styles.Gap(s.SectionGap + 1))

	b.WriteString(s.SectionTitle.Render("Built for Your Success"))
	b.WriteString("\n")
	for _, f := range features {
		b.WriteString(s.Success.Render("✓ "))
		b.WriteString(s.TaskTitle.Render(f.title))
		b.WriteString("  ")
		b.WriteString(s.Muted.Render(f.text))
		b.WriteString("\n")
	}
	b.WriteString(styles.Gap(s.SectionGap + 1))

	b.WriteString(s.TabActive.Render("Enter  Get Started"))
	b.WriteString("   ")
	b.WriteString(s.Muted.Render("q  Quit"))

	return b.String()
}
