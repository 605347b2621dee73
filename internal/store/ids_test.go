package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceAllocator(t *testing.T) {
	a := NewSequenceAllocator("task")
	assert.Equal(t, "task-1", a.NextID())
	assert.Equal(t, "task-2", a.NextID())

	bare := NewSequenceAllocator("")
	assert.Equal(t, "1", bare.NextID())
}

func TestUUIDAllocator(t *testing.T) {
	var a UUIDAllocator

	id := a.NextID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, id, a.NextID())
}
