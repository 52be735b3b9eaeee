package service

import (
	"sort"
	"strings"
	"time"
)

// Item is a single tracked work item (issue, ticket, task).
type Item struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	State       string    `json:"state" yaml:"state"`
	Priority    int       `json:"priority" yaml:"priority"`
	Assignee    string    `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Labels      []string  `json:"labels,omitempty" yaml:"labels,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
	URL         string    `json:"url" yaml:"url"`
	Service     string    `json:"service" yaml:"service,omitempty"`
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	ret := *i
	if i.Labels != nil {
		ret.Labels = append([]string(nil), i.Labels...)
	}
	return &ret
}

// Matches reports whether query is a case-insensitive substring of the title
// or the description.
func (i *Item) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(i.Title), q) ||
		strings.Contains(strings.ToLower(i.Description), q)
}

// Recent sorts items by UpdatedAt, newest first, and truncates the result to
// limit. A non-positive limit falls back to DefaultLimit. A nil input comes
// back as an empty, non-nil slice.
func Recent(items []*Item, limit int) []*Item {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if items == nil {
		return []*Item{}
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].UpdatedAt.After(items[b].UpdatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
