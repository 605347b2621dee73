// Package store holds the in-memory task collection for a session.
package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/riordanpawley/bennu/internal/domain"
)

// maxAllocAttempts bounds retries when an allocator returns a taken id
const maxAllocAttempts = 8

// Memory is an insertion-ordered task store guarded by a RWMutex.
// Bubbletea commands run on their own goroutines, so every method locks.
type Memory struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	index  map[string]int
	ids    IDAllocator
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Memory store
type Option func(*Memory)

// WithAllocator overrides the default UUID allocator
func WithAllocator(a IDAllocator) Option {
	return func(m *Memory) { m.ids = a }
}

// WithClock overrides time.Now for CreatedAt stamps
func WithClock(now func() time.Time) Option {
	return func(m *Memory) { m.now = now }
}

// WithLogger sets the logger for mutation events
func WithLogger(l *slog.Logger) Option {
	return func(m *Memory) { m.logger = l }
}

// NewMemory creates an empty store
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		index:  make(map[string]int),
		ids:    UUIDAllocator{},
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create validates and appends task, returning the stored copy.
// An empty ID is filled from the allocator.
func (m *Memory) Create(task domain.Task) (domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return domain.Task{}, &domain.ValidationError{Field: "title", Message: "is required"}
	}
	task.Tags = domain.NormalizeTags(task.Tags)
	if task.DueDate != nil {
		due := *task.DueDate
		task.DueDate = &due
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if task.ID == "" {
		id, err := m.allocateLocked()
		if err != nil {
			return domain.Task{}, err
		}
		task.ID = id
	} else if _, exists := m.index[task.ID]; exists {
		return domain.Task{}, &domain.ConflictError{ID: task.ID}
	}

	if task.CreatedAt.IsZero() {
		task.CreatedAt = m.now()
	}

	m.index[task.ID] = len(m.tasks)
	m.tasks = append(m.tasks, task)

	m.logger.Debug("task created", "id", task.ID, "priority", task.Priority, "category", task.Category)
	return cloneTask(task), nil
}

func (m *Memory) allocateLocked() (string, error) {
	for i := 0; i < maxAllocAttempts; i++ {
		id := m.ids.NextID()
		if _, exists := m.index[id]; !exists && id != "" {
			return id, nil
		}
		m.logger.Warn("allocator returned taken id", "id", id)
	}
	return "", &domain.ConflictError{ID: "<allocated>"}
}

// SetCompletion flips the completion flag of an existing task
func (m *Memory) SetCompletion(id string, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return &domain.NotFoundError{ID: id}
	}
	m.tasks[i].Completed = completed

	m.logger.Debug("task completion set", "id", id, "completed", completed)
	return nil
}

// Get returns a copy of the task with the given id
func (m *Memory) Get(id string) (domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[id]
	if !ok {
		return domain.Task{}, &domain.NotFoundError{ID: id}
	}
	return cloneTask(m.tasks[i]), nil
}

// All returns a snapshot in insertion order
func (m *Memory) All() []domain.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Task, len(m.tasks))
	for i, t := range m.tasks {
		out[i] = cloneTask(t)
	}
	return out
}

// Len returns the number of stored tasks
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tasks)
}

// Load inserts tasks in order, stopping at the first failure
func (m *Memory) Load(tasks []domain.Task) error {
	for _, t := range tasks {
		if _, err := m.Create(t); err != nil {
			return err
		}
	}
	return nil
}

func cloneTask(t domain.Task) domain.Task {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}
