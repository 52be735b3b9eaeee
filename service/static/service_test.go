package static

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-get/service"
)

const fixture = `
- id: ENG-1
  title: Fix login redirect
  description: Users land on a 404 page
  state: In Progress
  priority: 2
  assignee: ana
  labels: [bug]
  createdAt: 2024-05-01T10:00:00Z
  updatedAt: 2024-05-03T10:00:00Z
  url: https://example.com/ENG-1
- id: ENG-2
  title: Billing export
  description: CSV export for invoices
  state: Todo
  priority: 3
  assignee: bob
  createdAt: 2024-05-01T10:00:00Z
  updatedAt: 2024-05-04T10:00:00Z
  url: https://example.com/ENG-2
- id: ENG-3
  title: Login rate limit
  description: Throttle brute force attempts
  state: Backlog
  priority: 1
  assignee: ana
  createdAt: 2024-05-01T10:00:00Z
  updatedAt: 2024-05-05T10:00:00Z
  url: https://example.com/ENG-3
`

func writeFixture(t *testing.T) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(location, []byte(fixture), 0o644))
	return location
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, "local", &service.Config{URL: writeFixture(t), Options: map[string]interface{}{"owner": "ana"}})
	require.NoError(t, err)
	assert.Equal(t, "local", svc.ID())

	items, err := svc.MyItems(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ENG-3", items[0].ID)
	assert.Equal(t, "ENG-1", items[1].ID)
	assert.Equal(t, "local", items[0].Service)
	assert.Equal(t, time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC), items[0].UpdatedAt.UTC())
}

func TestNewErrors(t *testing.T) {
	ctx := context.Background()
	_, err := New(ctx, "local", &service.Config{})
	assert.True(t, errors.Is(err, service.ErrConstruction))

	_, err = New(ctx, "local", &service.Config{URL: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.True(t, errors.Is(err, service.ErrConstruction))
}

func TestService(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, "local", &service.Config{URL: writeFixture(t)})
	require.NoError(t, err)

	t.Run("my items without owner", func(t *testing.T) {
		items, err := svc.MyItems(ctx, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "ENG-3", items[0].ID)
		assert.Equal(t, "ENG-2", items[1].ID)
	})

	t.Run("item", func(t *testing.T) {
		item, err := svc.Item(ctx, "ENG-1")
		require.NoError(t, err)
		assert.Equal(t, "Fix login redirect", item.Title)
		assert.EqualValues(t, []string{"bug"}, item.Labels)
		item.Title = "changed"
		again, _ := svc.Item(ctx, "ENG-1")
		assert.Equal(t, "Fix login redirect", again.Title)
	})

	t.Run("item not found", func(t *testing.T) {
		_, err := svc.Item(ctx, "ENG-404")
		assert.True(t, errors.Is(err, service.ErrNotFound))
	})

	t.Run("search", func(t *testing.T) {
		items, err := svc.Search(ctx, "LOGIN", 10)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "ENG-3", items[0].ID)

		items, err = svc.Search(ctx, "invoices", 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "ENG-2", items[0].ID)
	})

	t.Run("tools", func(t *testing.T) {
		tools := svc.Tools()
		require.Len(t, tools, 3)
		assert.Equal(t, "local_get_my_issues", tools[0].Name)
	})
}
