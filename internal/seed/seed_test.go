package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/bennu/internal/domain"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	require.Len(t, d.Tasks, 5)
	assert.Equal(t, "Complete project proposal", d.Tasks[0].Title)
	assert.Equal(t, domain.PriorityUrgent, d.Tasks[0].Priority)
	require.NotNil(t, d.Tasks[0].DueDate)
	assert.True(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.Local).Equal(*d.Tasks[0].DueDate))
	assert.True(t, d.Tasks[2].Completed)
	assert.Nil(t, d.Tasks[3].DueDate)

	require.Len(t, d.Achievements, 3)
	assert.True(t, d.Achievements[0].Completed)
	assert.Equal(t, 64, d.Achievements[2].Progress)

	require.Len(t, d.Week, 7)
	assert.Equal(t, "Sun", d.Week[6].Day)
	assert.Equal(t, 5, d.Streak)
}

func TestDefault_SeedPriorityOrder(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	view := domain.View(d.Tasks, domain.DefaultQuery())
	titles := make([]string, len(view))
	for i, task := range view {
		titles[i] = task.Title
	}

	assert.Equal(t, []string{
		"Complete project proposal",
		"Schedule doctor appointment",
		"Pay utility bills",
		"Buy groceries",
		"Read chapter 5 of textbook",
	}, titles)
}

func TestParse_DueDatesAreLocalDays(t *testing.T) {
	d, err := Parse([]byte(`
tasks:
  - id: "1"
    title: Pay rent
    priority: high
    due_date: 2024-07-01
`))
	require.NoError(t, err)
	require.NotNil(t, d.Tasks[0].DueDate)

	due := *d.Tasks[0].DueDate
	assert.Equal(t, time.Local, due.Location())
	y, m, day := due.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.July, m)
	assert.Equal(t, 1, day)
	assert.Zero(t, due.Hour())

	// same value the create form produces for "2024-07-01"
	typed, err := time.ParseInLocation("2006-01-02", "2024-07-01", time.Local)
	require.NoError(t, err)
	assert.True(t, typed.Equal(due))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("tasks: [this is: not valid"))
	assert.Error(t, err)

	_, err = Parse([]byte("tasks:\n  - id: x\n    title: y\n    priority: someday\n"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
