// Package domain contains core business types for the Bennu application.
package domain

import (
	"strings"
	"time"
)

// Task represents a single to-do item owned by the task store
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Category    string     `json:"category" yaml:"category"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Completed   bool       `json:"completed" yaml:"completed"`
	CreatedAt   time.Time  `json:"created_at" yaml:"-"`
}

// HasDueDate reports whether the task carries a due date
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// HasTag reports whether tag is already attached to the task
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Priority represents task urgency
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority, most urgent first
var Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

var priorityRank = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// Rank returns the sort rank (0 = most urgent). Unknown priorities rank last.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts user input to a Priority
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

// Categories offered by the creation form. The store accepts any label.
var Categories = []string{"personal", "work", "health", "education", "finance"}

// NormalizeTags trims tags, drops blanks and duplicates, keeping first-seen order
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
