// Package static implements a read-only backend serving items from a fixture
// document (YAML or JSON list of items) loaded once at construction.
package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/mcp-get/service"
	"gopkg.in/yaml.v3"
)

// Kind is the backend kind name.
const Kind = "static"

// Service serves a fixed item set.
type Service struct {
	id    string
	owner string
	items []*service.Item
}

// New loads items from cfg.URL (any afs URL or a local path). Option "owner"
// restricts MyItems to items assigned to that name.
func New(ctx context.Context, id string, cfg *service.Config) (service.Service, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, fmt.Errorf("%w: fixture url is required", service.ErrConstruction)
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: download fixture %q: %v", service.ErrConstruction, cfg.URL, err)
	}
	var items []*service.Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parse fixture %q: %v", service.ErrConstruction, cfg.URL, err)
	}
	return NewWithItems(id, cfg.Option("owner"), items), nil
}

// NewWithItems creates a service over a copy of items.
func NewWithItems(id, owner string, items []*service.Item) *Service {
	s := &Service{id: id, owner: owner}
	for _, item := range items {
		if item == nil {
			continue
		}
		clone := item.Clone()
		clone.Service = id
		s.items = append(s.items, clone)
	}
	return s
}

func (s *Service) ID() string { return s.id }

func (s *Service) MyItems(_ context.Context, limit int) ([]*service.Item, error) {
	return s.collect(limit, func(item *service.Item) bool {
		return s.owner == "" || strings.EqualFold(item.Assignee, s.owner)
	}), nil
}

func (s *Service) Item(_ context.Context, id string) (*service.Item, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), nil
		}
	}
	return nil, fmt.Errorf("issue %s: %w", id, service.ErrNotFound)
}

func (s *Service) Search(_ context.Context, query string, limit int) ([]*service.Item, error) {
	return s.collect(limit, func(item *service.Item) bool {
		return item.Matches(query)
	}), nil
}

func (s *Service) Tools() []*service.Tool {
	return service.StandardTools(s.id, service.Vocabulary{Backend: "the local fixture"})
}

func (s *Service) collect(limit int, keep func(*service.Item) bool) []*service.Item {
	result := make([]*service.Item, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item.Clone())
		}
	}
	return service.Recent(result, limit)
}
