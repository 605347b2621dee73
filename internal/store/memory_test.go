package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/bennu/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
}

func newTestStore() *Memory {
	return NewMemory(WithAllocator(NewSequenceAllocator("t")), WithClock(fixedClock))
}

func TestMemory_CreateAssignsFreshID(t *testing.T) {
	s := newTestStore()

	first, err := s.Create(domain.Task{Title: "  Write tests  "})
	require.NoError(t, err)
	second, err := s.Create(domain.Task{Title: "Ship"})
	require.NoError(t, err)

	assert.Equal(t, "t-1", first.ID)
	assert.Equal(t, "t-2", second.ID)
	assert.Equal(t, "Write tests", first.Title)
	assert.Equal(t, fixedClock(), first.CreatedAt)
	assert.Equal(t, 2, s.Len())
}

func TestMemory_CreateRejectsBlankTitle(t *testing.T) {
	s := newTestStore()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.Create(domain.Task{Title: title})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	}
	assert.Equal(t, 0, s.Len())
}

func TestMemory_CreateRejectsDuplicateID(t *testing.T) {
	s := newTestStore()

	_, err := s.Create(domain.Task{ID: "a", Title: "one"})
	require.NoError(t, err)

	_, err = s.Create(domain.Task{ID: "a", Title: "two"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, s.Len())
}

type stuckAllocator struct{ id string }

func (s stuckAllocator) NextID() string { return s.id }

func TestMemory_CreateDetectsAllocatorCollision(t *testing.T) {
	s := NewMemory(WithAllocator(stuckAllocator{id: "same"}))

	_, err := s.Create(domain.Task{Title: "first"})
	require.NoError(t, err)

	_, err = s.Create(domain.Task{Title: "second"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 1, s.Len())
}

func TestMemory_CreateNormalizesTags(t *testing.T) {
	s := newTestStore()

	task, err := s.Create(domain.Task{Title: "x", Tags: []string{"a", " a", "", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, task.Tags)
}

func TestMemory_SetCompletion(t *testing.T) {
	s := newTestStore()
	task, err := s.Create(domain.Task{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, s.SetCompletion(task.ID, true))
	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, s.SetCompletion(task.ID, false))
	got, _ = s.Get(task.ID)
	assert.False(t, got.Completed)
}

func TestMemory_SetCompletionUnknownID(t *testing.T) {
	s := newTestStore()

	err := s.SetCompletion("missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "missing", nf.ID)
}

func TestMemory_GetUnknownID(t *testing.T) {
	_, err := newTestStore().Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_AllIsSnapshot(t *testing.T) {
	s := newTestStore()
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.Create(domain.Task{Title: "a", Tags: []string{"x"}, DueDate: &due})
	require.NoError(t, err)
	_, err = s.Create(domain.Task{Title: "b"})
	require.NoError(t, err)

	snapshot := s.All()
	snapshot[0].Title = "mutated"
	snapshot[0].Tags[0] = "mutated"
	*snapshot[0].DueDate = due.AddDate(1, 0, 0)

	fresh := s.All()
	require.Len(t, fresh, 2)
	assert.Equal(t, "a", fresh[0].Title)
	assert.Equal(t, []string{"x"}, fresh[0].Tags)
	assert.Equal(t, due, *fresh[0].DueDate)
	assert.Equal(t, "b", fresh[1].Title)
}

func TestMemory_Load(t *testing.T) {
	s := newTestStore()

	err := s.Load([]domain.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}, {ID: "1", Title: "dup"}})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 2, s.Len())
}

func TestMemory_ConcurrentCreate(t *testing.T) {
	s := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Create(domain.Task{Title: fmt.Sprintf("task %d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all := s.All()
	require.Len(t, all, 50)
	seen := make(map[string]bool)
	for _, task := range all {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}
