package tasklist

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func day(offset int) *time.Time {
	d := testNow.AddDate(0, 0, offset)
	return &d
}

func createTestTasks(n int) []domain.Task {
	tasks := make([]domain.Task, n)
	for i := range tasks {
		tasks[i] = domain.Task{
			ID:       fmt.Sprintf("%d", i+1),
			Title:    fmt.Sprintf("Task %d", i+1),
			Priority: domain.PriorityMedium,
			Category: "personal",
		}
	}
	return tasks
}

func newTestList(tasks []domain.Task, height int) *ListView {
	lv := NewListView(tasks, 80, height, styles.Default())
	lv.SetNow(testNow)
	return lv
}

func TestSetCursor(t *testing.T) {
	lv := newTestList(createTestTasks(5), 0)

	tests := []struct {
		name     string
		index    int
		expected int
	}{
		{"Normal position", 2, 2},
		{"Negative position", -1, 0},
		{"Beyond end", 10, 4},
		{"At end", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lv.SetCursor(tt.index)
			if lv.cursor != tt.expected {
				t.Errorf("Expected cursor %d, got %d", tt.expected, lv.cursor)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	out := newTestList(nil, 0).Render()
	if !strings.Contains(out, EmptyMessage) {
		t.Errorf("Expected empty message, got %q", out)
	}
}

func TestRenderRow(t *testing.T) {
	tasks := []domain.Task{
		{
			ID:          "1",
			Title:       "Buy groceries",
			Description: "Milk, eggs, bread",
			Priority:    domain.PriorityLow,
			Category:    "personal",
			Tags:        []string{"shopping"},
			DueDate:     day(2),
		},
		{ID: "2", Title: "Pay bills", Priority: domain.PriorityHigh, Category: "finance", Completed: true},
	}
	out := newTestList(tasks, 0).Render()

	for _, want := range []string{"▶", "[ ] Buy groceries", "[x]", "low", "◆ personal", "Milk, eggs, bread", "#shopping", "due Jun 12, 2025"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestDueLabels(t *testing.T) {
	tests := []struct {
		name      string
		due       *time.Time
		completed bool
		want      string
		absent    string
	}{
		{"overdue", day(-1), false, "(overdue)", ""},
		{"today", day(0), false, "(today)", ""},
		{"future", day(3), false, "due Jun 13, 2025", "(overdue)"},
		{"completed overdue is plain", day(-1), true, "due Jun 9, 2025", "(overdue)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := domain.Task{ID: "1", Title: "t", Priority: domain.PriorityLow, Category: "work", DueDate: tt.due, Completed: tt.completed}
			out := newTestList([]domain.Task{task}, 0).Render()
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in %q", tt.want, out)
			}
			if tt.absent != "" && strings.Contains(out, tt.absent) {
				t.Errorf("Did not expect %q in %q", tt.absent, out)
			}
		})
	}
}

func TestFocusMarker(t *testing.T) {
	lv := newTestList(createTestTasks(2), 0)
	lv.SetFocus("2")
	out := lv.Render()
	if strings.Count(out, "◎ focus") != 1 {
		t.Errorf("Expected exactly one focus marker")
	}
}

func TestRenderWindowFollowsCursor(t *testing.T) {
	lv := newTestList(createTestTasks(20), 12)
	lv.SetCursor(19)
	out := lv.Render()

	if !strings.Contains(out, "Task 20") {
		t.Error("Expected the cursor row to be visible")
	}
	if strings.Contains(out, "Task 1 ") {
		t.Error("Expected the first row to scroll out of view")
	}
}

func TestHiddenDescriptionsForSmallFont(t *testing.T) {
	s := styles.Default()
	s.ShowDescriptions = false
	tasks := []domain.Task{{ID: "1", Title: "t", Description: "secret detail", Priority: domain.PriorityLow, Category: "work"}}

	out := NewListView(tasks, 80, 0, s).Render()
	if strings.Contains(out, "secret detail") {
		t.Error("Expected description to be hidden")
	}
}

func TestSummary(t *testing.T) {
	q := domain.DefaultQuery()
	q.Search = " gro "
	got := Summary(1, 5, q)
	want := fmt.Sprintf("1 of 5 tasks • %s • sorted by %s • search \"gro\"", q.Status, q.SortKey.Label())
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"too long title", 6, "too l…"},
		{"x", 0, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
