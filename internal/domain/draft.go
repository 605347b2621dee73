package domain

import (
	"strings"
	"time"
)

// Draft is the in-progress task held by the creation form
type Draft struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    Priority
	Category    string
	Tags        []string
}

// NewDraft returns an empty draft with the form defaults
func NewDraft() Draft {
	return Draft{
		Priority: PriorityMedium,
		Category: "personal",
	}
}

// AddTag trims tag and appends it unless it is blank or already present.
// Returns true if the tag was added.
func (d *Draft) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, existing := range d.Tags {
		if existing == tag {
			return false
		}
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// RemoveTag drops every occurrence of tag. Returns true if anything was removed.
func (d *Draft) RemoveTag(tag string) bool {
	kept := d.Tags[:0]
	removed := false
	for _, existing := range d.Tags {
		if existing == tag {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	d.Tags = kept
	return removed
}

// HasTag reports whether the draft already carries tag
func (d Draft) HasTag(tag string) bool {
	for _, existing := range d.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Task converts the draft into a task ready for the store.
// The store assigns the identifier and trims the title.
func (d Draft) Task() Task {
	var due *time.Time
	if d.DueDate != nil {
		v := *d.DueDate
		due = &v
	}
	return Task{
		Title:       d.Title,
		Description: d.Description,
		DueDate:     due,
		Priority:    d.Priority,
		Category:    d.Category,
		Tags:        append([]string(nil), d.Tags...),
	}
}
