// Package suggest derives advisory priority, category and tag hints from task text.
package suggest

import (
	"strings"

	"github.com/riordanpawley/bennu/internal/domain"
)

// Suggester produces suggestions for a draft's title and description
type Suggester interface {
	Suggest(title, description string) domain.SuggestionSet
}

// Rule maps a keyword to the suggestion it triggers. Exactly one of
// Priority, Category or Tag is expected to be set.
type Rule struct {
	Keyword  string
	Priority domain.Priority
	Category string
	Tag      string
}

// DefaultRules is the keyword table used by New
var DefaultRules = []Rule{
	{Keyword: "urgent", Priority: domain.PriorityHigh},
	{Keyword: "work", Category: "work"},
	{Keyword: "meeting", Tag: "meeting"},
	{Keyword: "email", Tag: "email"},
}

// KeywordEngine matches case-insensitive keywords against title and description
type KeywordEngine struct {
	rules []Rule
}

var _ Suggester = (*KeywordEngine)(nil)

// New returns an engine over DefaultRules
func New() *KeywordEngine {
	return NewWithRules(DefaultRules)
}

// NewWithRules returns an engine over a custom rule table.
// Keywords are lowercased once here.
func NewWithRules(rules []Rule) *KeywordEngine {
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		r.Keyword = strings.ToLower(strings.TrimSpace(r.Keyword))
		if r.Keyword == "" {
			continue
		}
		normalized = append(normalized, r)
	}
	return &KeywordEngine{rules: normalized}
}

// Suggest applies the rules in table order. The first matching priority and
// category rule win. Tags accumulate in rule order without duplicates.
func (e *KeywordEngine) Suggest(title, description string) domain.SuggestionSet {
	text := strings.ToLower(title) + "\n" + strings.ToLower(description)

	var set domain.SuggestionSet
	for _, r := range e.rules {
		if !strings.Contains(text, r.Keyword) {
			continue
		}
		if r.Priority != "" && set.Priority == "" {
			set.Priority = r.Priority
		}
		if r.Category != "" && set.Category == "" {
			set.Category = r.Category
		}
		if r.Tag != "" && !contains(set.Tags, r.Tag) {
			set.Tags = append(set.Tags, r.Tag)
		}
	}
	return set
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
