package creation

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/store"
	"github.com/riordanpawley/bennu/internal/suggest"
)

type closeRecorder struct {
	calls []*domain.Task
}

func (r *closeRecorder) onClose(task *domain.Task) {
	r.calls = append(r.calls, task)
}

func newTestFlow(t *testing.T) (*Flow, *store.Memory, *closeRecorder) {
	t.Helper()
	s := store.NewMemory(store.WithAllocator(store.NewSequenceAllocator("t")))
	rec := &closeRecorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(s, suggest.New(), rec.onClose, logger), s, rec
}

func TestFlow_Defaults(t *testing.T) {
	f, _, _ := newTestFlow(t)

	assert.Equal(t, StateEditing, f.State())
	d := f.Draft()
	assert.Equal(t, domain.PriorityMedium, d.Priority)
	assert.Equal(t, "personal", d.Category)
	assert.Empty(t, d.Tags)
	assert.Nil(t, d.DueDate)
	assert.True(t, f.Suggestions().Empty())
}

func TestFlow_SuggestionsFollowText(t *testing.T) {
	f, _, _ := newTestFlow(t)

	f.SetTitle("Urgent work meeting")
	assert.Equal(t, domain.SuggestionSet{
		Priority: domain.PriorityHigh,
		Category: "work",
		Tags:     []string{"meeting"},
	}, f.Suggestions())

	f.SetDescription("reply by email")
	assert.Equal(t, []string{"meeting", "email"}, f.Suggestions().Tags)

	f.SetTitle("Groceries")
	f.SetDescription("")
	assert.True(t, f.Suggestions().Empty())
}

func TestFlow_AcceptSuggestions(t *testing.T) {
	f, _, _ := newTestFlow(t)
	f.SetTitle("urgent work meeting")
	f.AddTag("meeting")

	assert.True(t, f.Accept(domain.SuggestPriority))
	assert.True(t, f.Accept(domain.SuggestCategory))
	assert.False(t, f.Accept(domain.SuggestTags), "tag already present")

	d := f.Draft()
	assert.Equal(t, domain.PriorityHigh, d.Priority)
	assert.Equal(t, "work", d.Category)
	assert.Equal(t, []string{"meeting"}, d.Tags)
	assert.True(t, f.PendingSuggestions().Empty())
}

func TestFlow_TagsAreIdempotent(t *testing.T) {
	f, _, _ := newTestFlow(t)

	assert.True(t, f.AddTag("x"))
	assert.False(t, f.AddTag("x"))
	assert.False(t, f.AddTag("  "))
	assert.Equal(t, []string{"x"}, f.Draft().Tags)

	assert.True(t, f.RemoveTag("x"))
	assert.Empty(t, f.Draft().Tags)
}

func TestFlow_FieldSetters(t *testing.T) {
	f, _, _ := newTestFlow(t)

	assert.True(t, f.SetPriority(domain.PriorityUrgent))
	assert.False(t, f.SetPriority(domain.Priority("someday")))
	assert.True(t, f.SetCategory("finance"))
	assert.False(t, f.SetCategory("   "))

	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	f.SetDueDate(due)

	d := f.Draft()
	assert.Equal(t, domain.PriorityUrgent, d.Priority)
	assert.Equal(t, "finance", d.Category)
	require.NotNil(t, d.DueDate)
	assert.Equal(t, due, *d.DueDate)

	f.ClearDueDate()
	assert.Nil(t, f.Draft().DueDate)
}

func TestFlow_SubmitEmptyTitleRejected(t *testing.T) {
	f, s, rec := newTestFlow(t)
	f.SetTitle("   ")
	f.AddTag("keep")

	_, err := f.Submit()
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, []string{"keep"}, f.Draft().Tags, "draft kept")
	assert.Empty(t, rec.calls)
}

func TestFlow_SubmitSuccess(t *testing.T) {
	f, s, rec := newTestFlow(t)
	f.SetTitle("  Quarterly review  ")
	f.SetPriority(domain.PriorityHigh)
	f.AddTag("work")

	task, err := f.Submit()
	require.NoError(t, err)

	assert.Equal(t, "t-1", task.ID)
	assert.Equal(t, "Quarterly review", task.Title)
	assert.Equal(t, 1, s.Len())

	require.Len(t, rec.calls, 1)
	require.NotNil(t, rec.calls[0])
	assert.Equal(t, "t-1", rec.calls[0].ID)

	// Reset for the next task
	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, domain.NewDraft(), f.Draft())
}

type failingStore struct{}

func (failingStore) Create(domain.Task) (domain.Task, error) {
	return domain.Task{}, &domain.ConflictError{ID: "dup"}
}

func TestFlow_SubmitStoreFailureKeepsDraft(t *testing.T) {
	rec := &closeRecorder{}
	f := New(failingStore{}, suggest.New(), rec.onClose, nil)
	f.SetTitle("Something")

	_, err := f.Submit()
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, "Something", f.Draft().Title)
	assert.Empty(t, rec.calls)
}

func TestFlow_Cancel(t *testing.T) {
	f, s, rec := newTestFlow(t)
	f.SetTitle("urgent thing")
	f.AddTag("x")

	f.Cancel()

	assert.Equal(t, 0, s.Len())
	require.Len(t, rec.calls, 1)
	assert.Nil(t, rec.calls[0])
	assert.Equal(t, domain.NewDraft(), f.Draft())
	assert.True(t, f.Suggestions().Empty())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", State(9).String())
}
