package domain

import (
	"math"
	"time"
)

// Achievement is a read-only milestone shown on the progress dashboard
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
	Progress    int    `json:"progress" yaml:"progress"`
}

// ClampedProgress returns Progress bounded to 0..100
func (a Achievement) ClampedProgress() int {
	switch {
	case a.Progress < 0:
		return 0
	case a.Progress > 100:
		return 100
	default:
		return a.Progress
	}
}

// DailyProgress is one day's completed/total tally
type DailyProgress struct {
	Day       string `json:"day" yaml:"day"`
	Completed int    `json:"completed" yaml:"completed"`
	Total     int    `json:"total" yaml:"total"`
}

// Percent returns the rounded completion percentage, 0 when Total is 0
func (d DailyProgress) Percent() int {
	if d.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(d.Completed) / float64(d.Total) * 100))
}

// WeeklyCompletionRate returns the rounded percentage of completed over total
// across all days. Returns 0 for empty input or a zero total.
func WeeklyCompletionRate(days []DailyProgress) int {
	var completed, total int
	for _, d := range days {
		completed += d.Completed
		total += d.Total
	}
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// QuickStats summarises the task list for the dashboard header
type QuickStats struct {
	Total          int
	Completed      int
	Active         int
	DueToday       int
	Overdue        int
	CompletionRate int
	Streak         int
}

// ComputeQuickStats tallies tasks relative to now
func ComputeQuickStats(tasks []Task, now time.Time, streak int) QuickStats {
	stats := QuickStats{Total: len(tasks), Streak: streak}
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Active++
		if t.DueDate == nil {
			continue
		}
		due := t.DueDate.In(now.Location())
		switch {
		case due.Before(startOfDay):
			stats.Overdue++
		case due.Before(endOfDay):
			stats.DueToday++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// FocusCandidate returns the most urgent active task, earliest due first on ties.
// Returns false when every task is completed.
func FocusCandidate(tasks []Task) (Task, bool) {
	active := View(tasks, Query{Status: FilterActive, SortKey: SortByDueDate})
	active = SortByPriority.Apply(active)
	if len(active) == 0 {
		return Task{}, false
	}
	return active[0], true
}
