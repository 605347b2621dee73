package domain

import "strings"

// Query describes one rendering of the task list
type Query struct {
	Status       StatusFilter
	Search       string
	SortKey      SortKey
	SearchPolicy SearchPolicy
}

// DefaultQuery shows every task by priority
func DefaultQuery() Query {
	return Query{
		Status:       FilterAll,
		SortKey:      SortByPriority,
		SearchPolicy: SearchCombines,
	}
}

// Matches reports whether a task survives the filter and search stages
func (q Query) Matches(t Task) bool {
	search := strings.TrimSpace(q.Search)
	if search == "" {
		return q.Status.Matches(t)
	}
	if q.SearchPolicy == SearchOverrides {
		return MatchesSearch(t, search)
	}
	return q.Status.Matches(t) && MatchesSearch(t, search)
}

// View filters, searches and sorts tasks into a new slice.
// The input is never modified.
func View(tasks []Task, q Query) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return q.SortKey.Apply(filtered)
}
