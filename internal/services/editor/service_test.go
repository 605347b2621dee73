package editor

import (
	"testing"

	"github.com/riordanpawley/bennu/internal/domain"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Complete project proposal", Priority: domain.PriorityUrgent},
		{ID: "2", Title: "Schedule doctor appointment", Priority: domain.PriorityHigh},
		{ID: "3", Title: "Buy groceries", Priority: domain.PriorityMedium, Completed: true},
		{ID: "4", Title: "Read chapter 5", Priority: domain.PriorityLow},
	}
}

func TestNewService(t *testing.T) {
	svc := NewService()
	if svc == nil {
		t.Fatal("NewService returned nil")
	}

	if svc.GetMode() != ModeNormal {
		t.Errorf("Expected ModeNormal, got %v", svc.GetMode())
	}

	q := svc.Query()
	if q.Status != domain.FilterAll || q.SortKey != domain.SortByPriority || q.SearchPolicy != domain.SearchCombines {
		t.Errorf("Unexpected default query %+v", q)
	}
	if svc.IsFilterActive() {
		t.Error("Expected no active filter by default")
	}
}

func TestService_ExitMode(t *testing.T) {
	svc := NewService()

	if svc.ExitMode() {
		t.Error("ExitMode in normal mode should return false")
	}

	svc.EnterSearch()
	if !svc.IsSearch() {
		t.Fatal("Expected search mode")
	}
	if !svc.ExitMode() {
		t.Error("ExitMode in search mode should return true")
	}
	if svc.GetMode() != ModeNormal {
		t.Errorf("Expected ModeNormal after exit, got %v", svc.GetMode())
	}
}

func TestService_CycleStatus(t *testing.T) {
	svc := NewService()

	want := []domain.StatusFilter{domain.FilterActive, domain.FilterCompleted, domain.FilterAll}
	for i, w := range want {
		if got := svc.CycleStatus(); got != w {
			t.Errorf("CycleStatus() step %d = %v, want %v", i, got, w)
		}
	}
}

func TestService_CycleSort(t *testing.T) {
	svc := NewService()

	if got := svc.CycleSort(); got != domain.SortByDueDate {
		t.Errorf("CycleSort() = %v, want dueDate", got)
	}
	if got := svc.Query().SortKey; got != domain.SortByDueDate {
		t.Errorf("Query().SortKey = %v, want dueDate", got)
	}
}

func TestService_FilterAndSort(t *testing.T) {
	svc := NewService()
	svc.SetStatus(domain.FilterActive)

	got := svc.FilterAndSort(sampleTasks())
	if len(got) != 3 {
		t.Fatalf("Expected 3 active tasks, got %d", len(got))
	}
	if got[0].ID != "1" {
		t.Errorf("Expected urgent task first, got %s", got[0].ID)
	}

	svc.SetSearchQuery("groceries")
	if got := svc.FilterAndSort(sampleTasks()); len(got) != 0 {
		t.Errorf("Combine policy should hide completed match, got %d", len(got))
	}

	svc.SetSearchPolicy(domain.SearchOverrides)
	if got := svc.FilterAndSort(sampleTasks()); len(got) != 1 || got[0].ID != "3" {
		t.Errorf("Override policy should find groceries, got %v", got)
	}

	svc.ClearSearch()
	if !svc.IsFilterActive() {
		t.Error("Status filter should still count as active")
	}
}

func TestService_Cursor(t *testing.T) {
	svc := NewService()
	visible := sampleTasks()

	svc.MoveCursor(1, len(visible))
	svc.MoveCursor(1, len(visible))
	if svc.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", svc.Cursor())
	}

	svc.MoveCursor(10, len(visible))
	if svc.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want clamp to 3", svc.Cursor())
	}

	task, ok := svc.Selected(visible)
	if !ok || task.ID != "4" {
		t.Errorf("Selected() = (%s, %v), want (4, true)", task.ID, ok)
	}

	svc.MoveCursor(-10, len(visible))
	if svc.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", svc.Cursor())
	}

	svc.ClampCursor(0)
	if _, ok := svc.Selected(nil); ok {
		t.Error("Selected(nil) should report false")
	}
}

func TestService_FilterChangeResetsCursor(t *testing.T) {
	svc := NewService()
	svc.MoveCursor(2, 4)

	svc.SetStatus(domain.FilterCompleted)
	if svc.Cursor() != 0 {
		t.Errorf("Cursor() = %d after filter change, want 0", svc.Cursor())
	}
}

func TestService_FocusTask(t *testing.T) {
	svc := NewService()
	tasks := sampleTasks()

	task, ok := svc.FocusTask(tasks)
	if !ok || task.ID != "1" {
		t.Errorf("FocusTask() default = (%s, %v), want most urgent", task.ID, ok)
	}

	svc.SetFocus("4")
	task, _ = svc.FocusTask(tasks)
	if task.ID != "4" || !svc.IsFocus("4") {
		t.Errorf("FocusTask() = %s, want chosen task 4", task.ID)
	}

	// A completed focus task falls back to the most urgent active one
	svc.SetFocus("3")
	task, _ = svc.FocusTask(tasks)
	if task.ID != "1" {
		t.Errorf("FocusTask() = %s, want fallback 1", task.ID)
	}

	svc.ClearFocus()
	if svc.IsFocus("3") {
		t.Error("ClearFocus() left focus set")
	}
}
