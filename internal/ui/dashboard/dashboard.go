// Package dashboard renders the quick stats header, the focus view and the
// progress view.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// Progress is the read-only history shown on the progress view
type Progress struct {
	Week         []domain.DailyProgress
	Achievements []domain.Achievement
	Streak       int
}

// Dashboard renders the non-list views for one styles value
type Dashboard struct {
	styles *styles.Styles
	width  int
}

// New creates a dashboard renderer
func New(s *styles.Styles, width int) *Dashboard {
	return &Dashboard{styles: s, width: width}
}

// bar builds a static progress bar in the given colour
func (d *Dashboard) bar(color lipgloss.Color, width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

// QuickStats renders the one-line stats header
func (d *Dashboard) QuickStats(stats domain.QuickStats) string {
	s := d.styles
	p := s.Palette

	item := func(label string, value string, color lipgloss.Color) string {
		return lipgloss.NewStyle().Foreground(color).Bold(true).Render(value) + " " + s.Muted.Render(label)
	}

	parts := []string{
		item("active", fmt.Sprint(stats.Active), p.Blue),
		item("done", fmt.Sprint(stats.Completed), p.Green),
		item("due today", fmt.Sprint(stats.DueToday), p.Peach),
	}
	if stats.Overdue > 0 {
		parts = append(parts, item("overdue", fmt.Sprint(stats.Overdue), p.Red))
	}
	parts = append(parts,
		item("complete", fmt.Sprintf("%d%%", stats.CompletionRate), p.Mauve),
		item("day streak", fmt.Sprint(stats.Streak), p.Yellow),
	)
	return strings.Join(parts, s.Muted.Render("  │  "))
}

// Focus renders the single task in focus. ok is false when every task is
// completed. pinned reports whether the user picked the task explicitly.
func (d *Dashboard) Focus(task domain.Task, ok, pinned bool, now time.Time) string {
	s := d.styles
	if !ok {
		return s.Success.Render("Nothing left to focus on. Every task is done!")
	}

	source := "Most urgent task"
	if pinned {
		source = "Your focus"
	}

	lines := []string{
		s.Muted.Render(source),
		"",
		s.SectionTitle.Render(task.Title),
	}
	if task.Description != "" {
		lines = append(lines, s.Description.Render(task.Description))
	}
	lines = append(lines, "")

	meta := s.PriorityBadge(task.Priority).Render(task.Priority.String()) +
		"  " + s.Category.Render("◆ "+task.Category)
	if task.DueDate != nil {
		meta += "  " + s.TaskMeta.Render(dueIn(*task.DueDate, now))
	}
	lines = append(lines, meta)
	if len(task.Tags) > 0 {
		lines = append(lines, s.Tag.Render("#"+strings.Join(task.Tags, " #")))
	}
	if task.Completed {
		lines = append(lines, "", s.Success.Render("✓ Completed"))
	}

	card := s.CardActive.Width(max(30, d.width-s.CardActive.GetHorizontalFrameSize()+s.CardActive.GetHorizontalPadding()))
	return card.Render(strings.Join(lines, "\n"))
}

// dueIn describes a due date relative to now's calendar day
func dueIn(due, now time.Time) string {
	y, m, dd := now.Date()
	today := time.Date(y, m, dd, 0, 0, 0, 0, now.Location())
	dy, dm, ddd := due.In(now.Location()).Date()
	dueDay := time.Date(dy, dm, ddd, 0, 0, 0, 0, now.Location())
	days := int(dueDay.Sub(today).Hours() / 24)

	switch {
	case days < -1:
		return fmt.Sprintf("overdue by %d days", -days)
	case days == -1:
		return "overdue by 1 day"
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	default:
		return fmt.Sprintf("due in %d days", days)
	}
}

// Progress renders the week chart, the weekly rate and achievements
func (d *Dashboard) Progress(data Progress) string {
	s := d.styles
	p := s.Palette
	barWidth := max(10, min(40, d.width-24))
	var b strings.Builder

	b.WriteString(s.SectionTitle.Render("Daily Task Completion"))
	b.WriteString("\n")
	if len(data.Week) == 0 {
		b.WriteString(s.Muted.Render("No history yet"))
		b.WriteString("\n")
	}
	dayBar := d.bar(p.Primary, barWidth)
	for _, day := range data.Week {
		fmt.Fprintf(&b, "%-4s %s %s\n",
			day.Day,
			dayBar.ViewAs(float64(day.Percent())/100),
			s.Muted.Render(fmt.Sprintf("%d/%d", day.Completed, day.Total)),
		)
	}

	b.WriteString(styles.Gap(s.SectionGap + 1))
	b.WriteString(s.SectionTitle.Render("Weekly Trends"))
	b.WriteString("\n")
	rate := domain.WeeklyCompletionRate(data.Week)
	fmt.Fprintf(&b, "%s %s\n",
		d.bar(p.Green, barWidth).ViewAs(float64(rate)/100),
		s.Success.Render(fmt.Sprintf("%d%% completion rate", rate)),
	)
	fmt.Fprintf(&b, "%s\n", s.Muted.Render(fmt.Sprintf("%d day focus streak", data.Streak)))

	b.WriteString(styles.Gap(s.SectionGap + 1))
	b.WriteString(s.SectionTitle.Render("Your Achievements"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Milestones and accomplishments"))
	b.WriteString("\n")
	achBar := d.bar(p.Mauve, barWidth)
	for _, a := range data.Achievements {
		mark := s.Muted.Render("○")
		if a.Completed {
			mark = s.Success.Render("✓")
		}
		fmt.Fprintf(&b, "%s %s  %s\n", mark, s.TaskTitle.Render(a.Title), s.Muted.Render(a.Description))
		fmt.Fprintf(&b, "  %s %s\n", achBar.ViewAs(float64(a.ClampedProgress())/100), s.Muted.Render(fmt.Sprintf("%d%%", a.ClampedProgress())))
	}

	return strings.TrimRight(b.String(), "\n")
}
