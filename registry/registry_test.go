package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-get/service"
	"github.com/viant/mcp-get/service/static"
)

func staticKind(items ...*service.Item) Option {
	return WithKind(static.Kind, func(_ context.Context, id string, cfg *service.Config) (service.Service, error) {
		return static.NewWithItems(id, cfg.Option("owner"), items), nil
	})
}

func failingKind(kind string) Option {
	return WithKind(kind, func(context.Context, string, *service.Config) (service.Service, error) {
		return nil, fmt.Errorf("api key is required")
	})
}

type misnamed struct{ *static.Service }

func (m *misnamed) Tools() []*service.Tool {
	return service.StandardTools("other", service.Vocabulary{Backend: "Other"})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		description string
		id          string
		cfg         *service.Config
		expectErr   error
	}{
		{description: "kind defaults to identifier", id: "static"},
		{description: "explicit kind", id: "local", cfg: &service.Config{Kind: "static"}},
		{description: "unknown kind", id: "jira", expectErr: ErrUnknownServiceKind},
		{description: "underscore in identifier", id: "my_local", cfg: &service.Config{Kind: "static"}, expectErr: ErrInvalidIdentifier},
		{description: "empty identifier", id: "", expectErr: ErrInvalidIdentifier},
		{description: "construction failure", id: "linear", expectErr: service.ErrConstruction},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			r := New(staticKind(), failingKind("linear"))
			svc, err := r.Register(ctx, tc.id, tc.cfg)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), "unexpected error: %v", err)
				assert.Nil(t, svc)
				assert.Empty(t, r.Services())
				_, ok := r.Lookup(tc.id)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, svc.ID())
			found, ok := r.Lookup(tc.id)
			assert.True(t, ok)
			assert.Same(t, svc, found)
		})
	}
}

func TestRegisterDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	r := New(staticKind(&service.Item{ID: "A-1"}))

	first, err := r.Register(ctx, "static", nil)
	require.NoError(t, err)

	second, err := r.Register(ctx, "static", &service.Config{Options: map[string]interface{}{"owner": "bob"}})
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
	assert.Nil(t, second)

	found, ok := r.Lookup("static")
	require.True(t, ok)
	assert.Same(t, first, found)
	assert.Len(t, r.Services(), 1)
}

func TestRegisterRejectsForeignToolNames(t *testing.T) {
	r := New(WithKind("odd", func(_ context.Context, id string, _ *service.Config) (service.Service, error) {
		return &misnamed{static.NewWithItems(id, "", nil)}, nil
	}))
	_, err := r.Register(context.Background(), "odd", nil)
	assert.True(t, errors.Is(err, service.ErrConstruction))
	assert.Empty(t, r.IDs())
}

func TestLookupIsExact(t *testing.T) {
	r := New(staticKind())
	_, err := r.Register(context.Background(), "static", nil)
	require.NoError(t, err)

	for _, id := range []string{"Static", "stat", "static ", ""} {
		_, ok := r.Lookup(id)
		assert.False(t, ok, id)
	}
}

func TestTools(t *testing.T) {
	ctx := context.Background()
	r := New(staticKind())
	for _, id := range []string{"static", "alpha", "beta"} {
		_, err := r.Register(ctx, id, &service.Config{Kind: "static"})
		require.NoError(t, err)
	}

	expected := 0
	for _, svc := range r.Services() {
		expected += len(svc.Tools())
		for _, aTool := range svc.Tools() {
			assert.True(t, strings.HasPrefix(aTool.Name, svc.ID()+"_"), aTool.Name)
		}
	}
	tools := r.Tools()
	assert.Len(t, tools, expected)
	assert.Equal(t, "static_get_my_issues", tools[0].Name)
	assert.Equal(t, "alpha_get_my_issues", tools[3].Name)
	assert.Equal(t, "beta_search_issues", tools[8].Name)
	assert.EqualValues(t, []string{"static", "alpha", "beta"}, r.IDs())
}

func TestKinds(t *testing.T) {
	r := New(staticKind(), failingKind("linear"))
	assert.EqualValues(t, []string{"linear", "static"}, r.Kinds())
}
