package domain

import "strings"

// StatusFilter selects tasks by completion state
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
)

// StatusFilters lists the filters in tab order
var StatusFilters = []StatusFilter{FilterAll, FilterActive, FilterCompleted}

// ParseStatusFilter converts user input to a StatusFilter, falling back to all
func ParseStatusFilter(s string) StatusFilter {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterActive, FilterCompleted:
		return f
	default:
		return FilterAll
	}
}

// Cycle returns the following filter, wrapping around
func (f StatusFilter) Cycle() StatusFilter {
	for i, candidate := range StatusFilters {
		if candidate == f {
			return StatusFilters[(i+1)%len(StatusFilters)]
		}
	}
	return FilterAll
}

// Matches reports whether the task passes the completion filter
func (f StatusFilter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// String returns the display string
func (f StatusFilter) String() string {
	return string(f)
}

// SearchPolicy decides how a search query interacts with the status filter
type SearchPolicy string

const (
	// SearchCombines keeps tasks that pass both the status filter and the query
	SearchCombines SearchPolicy = "combine"
	// SearchOverrides ignores the status filter while a query is present
	SearchOverrides SearchPolicy = "override"
)

// ParseSearchPolicy converts user input to a SearchPolicy, falling back to combine
func ParseSearchPolicy(s string) SearchPolicy {
	if SearchPolicy(strings.ToLower(strings.TrimSpace(s))) == SearchOverrides {
		return SearchOverrides
	}
	return SearchCombines
}

// MatchesSearch reports whether the title or description contains query,
// ignoring case. An empty query matches everything.
func MatchesSearch(t Task, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}
