package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDAllocator hands out task identifiers. Implementations must be safe for
// concurrent use. The store still checks uniqueness of every returned id.
type IDAllocator interface {
	NextID() string
}

// UUIDAllocator returns random version 4 UUIDs
type UUIDAllocator struct{}

// NextID returns a new random UUID string
func (UUIDAllocator) NextID() string {
	return uuid.NewString()
}

// SequenceAllocator returns prefix-1, prefix-2, ... (or 1, 2, ... with no prefix)
type SequenceAllocator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequenceAllocator starts counting at 1
func NewSequenceAllocator(prefix string) *SequenceAllocator {
	return &SequenceAllocator{prefix: prefix, next: 1}
}

// NextID returns the next identifier in the sequence
func (s *SequenceAllocator) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	s.next++
	if s.prefix == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s-%d", s.prefix, n)
}
