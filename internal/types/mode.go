// Package types contains shared types used across the application.
package types

// Mode represents the current input mode of the task list
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// Tab identifies a dashboard tab
type Tab int

const (
	TabTasks Tab = iota
	TabFocus
	TabProgress
)

// Tabs lists the dashboard tabs in display order
var Tabs = []Tab{TabTasks, TabFocus, TabProgress}

// String returns the tab label
func (t Tab) String() string {
	switch t {
	case TabTasks:
		return "Tasks"
	case TabFocus:
		return "Focus"
	case TabProgress:
		return "Progress"
	default:
		return "?"
	}
}

// Next returns the following tab, wrapping around
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the preceding tab, wrapping around
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}
