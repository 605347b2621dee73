// Package editor provides task list view state management
package editor

import (
	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
)

// Service manages list view state (mode, status filter, search, sort, cursor, focus)
type Service struct {
	mode    Mode
	query   domain.Query
	cursor  int
	focusID string
}

// NewService creates a new editor service showing all tasks by priority
func NewService() *Service {
	return &Service{
		mode:  ModeNormal,
		query: domain.DefaultQuery(),
	}
}

// NewServiceWithQuery creates a service starting from q
func NewServiceWithQuery(q domain.Query) *Service {
	return &Service{mode: ModeNormal, query: q}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// EnterSearch switches to search mode
func (s *Service) EnterSearch() {
	s.mode = ModeSearch
}

// ExitMode returns to normal mode if not already normal
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.mode = ModeNormal
		return true
	}
	return false
}

// IsSearch returns true if in search mode
func (s *Service) IsSearch() bool {
	return s.mode == ModeSearch
}

// Query management

// Query returns the current query
func (s *Service) Query() domain.Query {
	return s.query
}

// SetStatus sets the completion filter and resets the cursor
func (s *Service) SetStatus(status domain.StatusFilter) {
	s.query.Status = status
	s.cursor = 0
}

// CycleStatus advances all -> active -> completed -> all
func (s *Service) CycleStatus() domain.StatusFilter {
	s.SetStatus(s.query.Status.Cycle())
	return s.query.Status
}

// SetSearchQuery updates the search text
func (s *Service) SetSearchQuery(query string) {
	s.query.Search = query
	s.cursor = 0
}

// ClearSearch clears the search text
func (s *Service) ClearSearch() {
	s.SetSearchQuery("")
}

// SetSortKey sets the sort key
func (s *Service) SetSortKey(key domain.SortKey) {
	s.query.SortKey = key
}

// CycleSort advances to the next sort key
func (s *Service) CycleSort() domain.SortKey {
	s.query.SortKey = s.query.SortKey.Cycle()
	return s.query.SortKey
}

// SetSearchPolicy sets how search interacts with the status filter
func (s *Service) SetSearchPolicy(p domain.SearchPolicy) {
	s.query.SearchPolicy = p
}

// IsFilterActive returns true if the list is narrowed by status or search
func (s *Service) IsFilterActive() bool {
	return s.query.Status != domain.FilterAll || s.query.Search != ""
}

// FilterAndSort runs the query over tasks
func (s *Service) FilterAndSort(tasks []domain.Task) []domain.Task {
	return domain.View(tasks, s.query)
}

// Cursor management

// Cursor returns the highlighted row
func (s *Service) Cursor() int {
	return s.cursor
}

// MoveCursor shifts the cursor by delta, clamped to [0, n)
func (s *Service) MoveCursor(delta, n int) {
	s.cursor += delta
	s.ClampCursor(n)
}

// ClampCursor keeps the cursor inside a list of n rows
func (s *Service) ClampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// Selected returns the task under the cursor in a rendered list
func (s *Service) Selected(visible []domain.Task) (domain.Task, bool) {
	if s.cursor < 0 || s.cursor >= len(visible) {
		return domain.Task{}, false
	}
	return visible[s.cursor], true
}

// Focus management

// SetFocus marks a task as the focus task
func (s *Service) SetFocus(id string) {
	s.focusID = id
}

// ClearFocus unsets the focus task
func (s *Service) ClearFocus() {
	s.focusID = ""
}

// FocusTask returns the chosen focus task if it is still active, otherwise
// the most urgent active task
func (s *Service) FocusTask(tasks []domain.Task) (domain.Task, bool) {
	if s.focusID != "" {
		for _, t := range tasks {
			if t.ID == s.focusID && !t.Completed {
				return t, true
			}
		}
	}
	return domain.FocusCandidate(tasks)
}

// IsFocus reports whether id is the explicitly chosen focus task
func (s *Service) IsFocus(id string) bool {
	return id != "" && s.focusID == id
}
