// Package tasklist renders the filtered, sorted task list.
package tasklist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// EmptyMessage is shown when no task passes the current query
const EmptyMessage = "No tasks found. Try adjusting your filters or create a new task."

// ListView renders a slice of tasks as stacked cards
type ListView struct {
	tasks   []domain.Task
	cursor  int
	focusID string
	styles  *styles.Styles
	width   int
	height  int
	now     time.Time
}

// NewListView creates a list over tasks, already filtered and sorted
func NewListView(tasks []domain.Task, width, height int, s *styles.Styles) *ListView {
	return &ListView{
		tasks:  tasks,
		styles: s,
		width:  width,
		height: height,
		now:    time.Now(),
	}
}

// SetCursor sets the cursor position, clamped to the list
func (lv *ListView) SetCursor(index int) {
	switch {
	case index < 0:
		lv.cursor = 0
	case index >= len(lv.tasks):
		lv.cursor = max(0, len(lv.tasks)-1)
	default:
		lv.cursor = index
	}
}

// SetFocus marks the task currently in focus
func (lv *ListView) SetFocus(id string) {
	lv.focusID = id
}

// SetNow fixes the clock used for due labels
func (lv *ListView) SetNow(now time.Time) {
	lv.now = now
}

// Render renders the visible window of rows around the cursor
func (lv *ListView) Render() string {
	if len(lv.tasks) == 0 {
		return lv.styles.Muted.Render(EmptyMessage)
	}

	rows := make([]string, len(lv.tasks))
	for i, task := range lv.tasks {
		rows[i] = lv.renderRow(i, task)
	}

	start, end := lv.window(rows)
	sep := "\n" + styles.Gap(lv.styles.RowGap)
	return strings.Join(rows[start:end], sep)
}

// window picks the run of rows that fits height and contains the cursor
func (lv *ListView) window(rows []string) (int, int) {
	if lv.height <= 0 {
		return 0, len(rows)
	}

	heights := make([]int, len(rows))
	for i, r := range rows {
		heights[i] = lipgloss.Height(r) + lv.styles.RowGap
	}

	start := 0
	used := 0
	for i := 0; i <= lv.cursor; i++ {
		used += heights[i]
		for used > lv.height && start < i {
			used -= heights[start]
			start++
		}
	}

	end := lv.cursor + 1
	for end < len(rows) && used+heights[end] <= lv.height {
		used += heights[end]
		end++
	}
	return start, end
}

func (lv *ListView) renderRow(index int, task domain.Task) string {
	s := lv.styles
	active := index == lv.cursor

	cardStyle := s.Card
	if active {
		cardStyle = s.CardActive
	}
	innerWidth := max(20, lv.width-cardStyle.GetHorizontalFrameSize())
	cardStyle = cardStyle.Width(innerWidth + cardStyle.GetHorizontalPadding())

	check := "[ ]"
	titleStyle := s.TaskTitle
	if task.Completed {
		check = "[x]"
		titleStyle = s.TaskTitleDone
	}

	cursor := "  "
	if active {
		cursor = s.Cursor.Render("▶ ")
	}

	badges := s.PriorityBadge(task.Priority).Render(task.Priority.String()) +
		" " + s.Category.Render("◆ "+task.Category)
	if task.ID == lv.focusID {
		badges += " " + s.Cursor.Render("◎ focus")
	}

	titleWidth := max(10, innerWidth-lipgloss.Width(badges)-lipgloss.Width(check)-6)
	titleLine := cursor + check + " " + titleStyle.Render(truncate(task.Title, titleWidth)) + "  " + badges

	lines := []string{titleLine}
	if task.Description != "" && s.ShowDescriptions {
		lines = append(lines, "     "+s.Description.Render(truncate(task.Description, innerWidth-5)))
	}
	if meta := lv.renderMeta(task); meta != "" {
		lines = append(lines, "     "+meta)
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderMeta renders the due date and tags line
func (lv *ListView) renderMeta(task domain.Task) string {
	s := lv.styles
	var parts []string
	if task.DueDate != nil {
		parts = append(parts, lv.dueLabel(*task.DueDate, task.Completed))
	}
	for _, tag := range task.Tags {
		parts = append(parts, s.Tag.Render("#"+tag))
	}
	return strings.Join(parts, "  ")
}

// dueLabel formats a due date, flagging overdue and today for active tasks
func (lv *ListView) dueLabel(due time.Time, completed bool) string {
	s := lv.styles
	text := "due " + due.Format("Jan 2, 2006")
	if completed {
		return s.TaskMeta.Render(text)
	}

	y, m, d := lv.now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, lv.now.Location())
	local := due.In(lv.now.Location())
	switch {
	case local.Before(today):
		return s.Error.Render(text + " (overdue)")
	case local.Before(today.AddDate(0, 0, 1)):
		return lipgloss.NewStyle().Foreground(s.Palette.Peach).Render(text + " (today)")
	default:
		return s.TaskMeta.Render(text)
	}
}

// Summary returns the "n of m" line shown above the list
func Summary(visible, total int, q domain.Query) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d tasks", visible, total)
	fmt.Fprintf(&b, " • %s • sorted by %s", q.Status, q.SortKey.Label())
	if search := strings.TrimSpace(q.Search); search != "" {
		fmt.Fprintf(&b, " • search %q", search)
	}
	return b.String()
}

// truncate shortens s to width runes, ending with an ellipsis when cut
func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
