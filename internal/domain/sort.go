package domain

import (
	"sort"
	"strings"
)

// SortKey represents a field to sort by
type SortKey string

const (
	SortByPriority SortKey = "priority"
	SortByDueDate  SortKey = "dueDate"
	SortByCategory SortKey = "category"
)

// SortKeys lists the keys in menu order
var SortKeys = []SortKey{SortByPriority, SortByDueDate, SortByCategory}

// ParseSortKey converts user input to a SortKey, falling back to priority
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duedate", "due", "due_date":
		return SortByDueDate
	case "category":
		return SortByCategory
	default:
		return SortByPriority
	}
}

// Cycle returns the following sort key, wrapping around
func (k SortKey) Cycle() SortKey {
	for i, candidate := range SortKeys {
		if candidate == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortByPriority
}

// Label returns the menu label
func (k SortKey) Label() string {
	switch k {
	case SortByDueDate:
		return "Due Date"
	case SortByCategory:
		return "Category"
	default:
		return "Priority"
	}
}

// Apply stably sorts a copy of tasks. The input slice is never modified.
func (k SortKey) Apply(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	copy(result, tasks)

	if len(result) < 2 {
		return result
	}

	switch k {
	case SortByDueDate:
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := result[i].DueDate, result[j].DueDate
			switch {
			case di == nil:
				// Undated tasks never move ahead of anything
				return false
			case dj == nil:
				return true
			default:
				return di.Before(*dj)
			}
		})

	case SortByCategory:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Category) < strings.ToLower(result[j].Category)
		})

	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Priority.Rank() < result[j].Priority.Rank()
		})
	}

	return result
}
