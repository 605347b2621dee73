package domain

// SuggestionKind identifies which part of a SuggestionSet to accept
type SuggestionKind string

const (
	SuggestPriority SuggestionKind = "priority"
	SuggestCategory SuggestionKind = "category"
	SuggestTags     SuggestionKind = "tags"
)

// SuggestionSet is advisory output from a suggester. Empty fields mean no suggestion.
type SuggestionSet struct {
	Priority Priority
	Category string
	Tags     []string
}

// Empty reports whether nothing is suggested
func (s SuggestionSet) Empty() bool {
	return s.Priority == "" && s.Category == "" && len(s.Tags) == 0
}

// Pending returns the suggestions the draft has not already taken
func (s SuggestionSet) Pending(d Draft) SuggestionSet {
	var out SuggestionSet
	if s.Priority != "" && s.Priority != d.Priority {
		out.Priority = s.Priority
	}
	if s.Category != "" && s.Category != d.Category {
		out.Category = s.Category
	}
	for _, tag := range s.Tags {
		if !d.HasTag(tag) {
			out.Tags = append(out.Tags, tag)
		}
	}
	return out
}

// ApplyTo copies the suggestion of the given kind into the draft.
// Returns false when there is nothing of that kind to accept.
func (s SuggestionSet) ApplyTo(d *Draft, kind SuggestionKind) bool {
	switch kind {
	case SuggestPriority:
		if s.Priority == "" {
			return false
		}
		d.Priority = s.Priority
		return true
	case SuggestCategory:
		if s.Category == "" {
			return false
		}
		d.Category = s.Category
		return true
	case SuggestTags:
		added := false
		for _, tag := range s.Tags {
			if d.AddTag(tag) {
				added = true
			}
		}
		return added
	default:
		return false
	}
}
