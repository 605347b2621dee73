// Package creation drives the new-task form: draft editing, live suggestions
// and submission to the store.
package creation

import (
	"log/slog"
	"strings"
	"time"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/suggest"
)

// State is the flow's lifecycle position
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateDone
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Creator persists a task. Satisfied by *store.Memory.
type Creator interface {
	Create(task domain.Task) (domain.Task, error)
}

// CloseFunc is told when the flow finishes. task is nil on cancel.
type CloseFunc func(task *domain.Task)

// Flow owns one draft and its suggestions
type Flow struct {
	state       State
	draft       domain.Draft
	suggestions domain.SuggestionSet
	suggester   suggest.Suggester
	store       Creator
	onClose     CloseFunc
	logger      *slog.Logger
}

// New creates a flow in the editing state with a fresh draft
func New(store Creator, suggester suggest.Suggester, onClose CloseFunc, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		state:     StateEditing,
		draft:     domain.NewDraft(),
		suggester: suggester,
		store:     store,
		onClose:   onClose,
		logger:    logger,
	}
}

// State returns the current state
func (f *Flow) State() State {
	return f.state
}

// Draft returns a copy of the current draft
func (f *Flow) Draft() domain.Draft {
	d := f.draft
	d.Tags = append([]string(nil), f.draft.Tags...)
	return d
}

// Suggestions returns the full suggestion set for the current text
func (f *Flow) Suggestions() domain.SuggestionSet {
	return f.suggestions
}

// PendingSuggestions returns suggestions the draft has not already taken
func (f *Flow) PendingSuggestions() domain.SuggestionSet {
	return f.suggestions.Pending(f.draft)
}

// SetTitle updates the title and recomputes suggestions
func (f *Flow) SetTitle(title string) {
	f.draft.Title = title
	f.refresh()
}

// SetDescription updates the description and recomputes suggestions
func (f *Flow) SetDescription(description string) {
	f.draft.Description = description
	f.refresh()
}

func (f *Flow) refresh() {
	if f.suggester == nil {
		f.suggestions = domain.SuggestionSet{}
		return
	}
	f.suggestions = f.suggester.Suggest(f.draft.Title, f.draft.Description)
}

// SetPriority sets the draft priority. Unknown priorities are ignored.
func (f *Flow) SetPriority(p domain.Priority) bool {
	if !p.Valid() {
		return false
	}
	f.draft.Priority = p
	return true
}

// SetCategory sets the draft category. Blank categories are ignored.
func (f *Flow) SetCategory(category string) bool {
	category = strings.TrimSpace(category)
	if category == "" {
		return false
	}
	f.draft.Category = category
	return true
}

// SetDueDate sets the due date
func (f *Flow) SetDueDate(due time.Time) {
	f.draft.DueDate = &due
}

// ClearDueDate removes the due date
func (f *Flow) ClearDueDate() {
	f.draft.DueDate = nil
}

// AddTag adds a trimmed, non-duplicate tag
func (f *Flow) AddTag(tag string) bool {
	return f.draft.AddTag(tag)
}

// RemoveTag removes a tag
func (f *Flow) RemoveTag(tag string) bool {
	return f.draft.RemoveTag(tag)
}

// Accept copies one kind of suggestion into the draft
func (f *Flow) Accept(kind domain.SuggestionKind) bool {
	accepted := f.suggestions.ApplyTo(&f.draft, kind)
	if accepted {
		f.logger.Debug("suggestion accepted", "kind", kind)
	}
	return accepted
}

// Submit validates the draft and hands it to the store. On failure the flow
// stays in editing with the draft intact. On success it signals close and
// resets to a fresh draft.
func (f *Flow) Submit() (domain.Task, error) {
	if f.state != StateEditing {
		return domain.Task{}, &domain.ValidationError{Message: "a submission is already in progress"}
	}
	if strings.TrimSpace(f.draft.Title) == "" {
		return domain.Task{}, &domain.ValidationError{Field: "title", Message: "is required"}
	}

	f.state = StateSubmitting
	task, err := f.store.Create(f.draft.Task())
	if err != nil {
		f.state = StateEditing
		f.logger.Warn("task submission failed", "error", err)
		return domain.Task{}, err
	}

	f.state = StateDone
	f.logger.Info("task created", "id", task.ID)
	if f.onClose != nil {
		f.onClose(&task)
	}
	f.reset()
	return task, nil
}

// Cancel discards the draft and signals close with no task
func (f *Flow) Cancel() {
	f.reset()
	if f.onClose != nil {
		f.onClose(nil)
	}
}

func (f *Flow) reset() {
	f.draft = domain.NewDraft()
	f.suggestions = domain.SuggestionSet{}
	f.state = StateEditing
}
