package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecent(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	newItems := func() []*Item {
		return []*Item{
			{ID: "a", UpdatedAt: base},
			{ID: "b", UpdatedAt: base.Add(2 * time.Hour)},
			{ID: "c", UpdatedAt: base.Add(time.Hour)},
		}
	}

	testCases := []struct {
		name     string
		limit    int
		expected []string
	}{
		{name: "all", limit: 10, expected: []string{"b", "c", "a"}},
		{name: "truncated", limit: 2, expected: []string{"b", "c"}},
		{name: "default limit", limit: 0, expected: []string{"b", "c", "a"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ids []string
			for _, item := range Recent(newItems(), tc.limit) {
				ids = append(ids, item.ID)
			}
			assert.EqualValues(t, tc.expected, ids)
		})
	}
}

func TestRecentEmpty(t *testing.T) {
	items := Recent(nil, 5)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemMatches(t *testing.T) {
	item := &Item{Title: "Fix Login redirect", Description: "Users land on a 404 page"}
	assert.True(t, item.Matches("login"))
	assert.True(t, item.Matches("404 PAGE"))
	assert.False(t, item.Matches("billing"))
}

func TestItemClone(t *testing.T) {
	item := &Item{ID: "a", Labels: []string{"bug"}}
	clone := item.Clone()
	clone.Labels[0] = "feature"
	assert.Equal(t, "bug", item.Labels[0])
	assert.Nil(t, (*Item)(nil).Clone())
}

func TestConfig(t *testing.T) {
	disabled := false
	var nilConfig *Config
	assert.False(t, nilConfig.IsEnabled())
	assert.True(t, (&Config{}).IsEnabled())
	assert.False(t, (&Config{Enabled: &disabled}).IsEnabled())

	assert.Equal(t, "linear", (&Config{}).KindOr("linear"))
	assert.Equal(t, "static", (&Config{Kind: "static"}).KindOr("linear"))

	cfg := &Config{Options: map[string]interface{}{"owner": "ana", "pages": 3}}
	assert.Equal(t, "ana", cfg.Option("owner"))
	assert.Equal(t, "3", cfg.Option("pages"))
	assert.Equal(t, "", cfg.Option("missing"))
}
