package mcp

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-get/mcp/config"
	"github.com/viant/mcp-get/service"
	"github.com/viant/mcp-get/service/static"
)

var fixtureItems = []*service.Item{
	{ID: "A-1", Title: "Login fails on Safari", State: "Todo", Assignee: "ana", UpdatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	{ID: "A-2", Title: "Dark mode", State: "In Progress", Assignee: "ana", UpdatedAt: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
	{ID: "A-3", Title: "Export to CSV", State: "Done", Assignee: "bob", UpdatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
}

func fixtureKind(_ context.Context, id string, _ *service.Config) (service.Service, error) {
	return static.NewWithItems(id, "", fixtureItems), nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService starts a service with one fixture backed tracker per id.
func newTestService(t *testing.T, items []*service.Config, opts ...Option) *Service {
	t.Helper()
	ctx := context.Background()
	cfg := &config.Config{Services: &config.Group[*service.Config]{Items: items}, Builtins: []string{"nop"}}
	opts = append([]Option{WithConfig(cfg), WithKind(static.Kind, fixtureKind), WithLogger(quietLogger())}, opts...)
	svc, err := New(ctx, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Shutdown(ctx) })
	return svc
}

func staticEntries(ids ...string) []*service.Config {
	var ret []*service.Config
	for _, id := range ids {
		ret = append(ret, &service.Config{ID: id, Kind: static.Kind})
	}
	return ret
}
