// Package linear implements the Linear (linear.app) issue tracker backend on
// top of its GraphQL API.
package linear

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"github.com/viant/mcp-get/service"
)

const (
	// Kind is the backend kind name.
	Kind = "linear"
	// DefaultEndpoint is the Linear GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	defaultTimeout = 30 * time.Second
)

// Service talks to the Linear GraphQL API with a personal API key.
type Service struct {
	id       string
	endpoint string
	apiKey   string
	client   *http.Client
}

// New creates a Linear service. cfg.APIKey is required; cfg.URL overrides the
// GraphQL endpoint; option "timeout" (Go duration) overrides the HTTP timeout.
func New(_ context.Context, id string, cfg *service.Config) (service.Service, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: linear api key is required", service.ErrConstruction)
	}
	timeout := defaultTimeout
	if value := cfg.Option("timeout"); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid timeout %q: %v", service.ErrConstruction, value, err)
		}
		timeout = parsed
	}
	return NewWithClient(id, cfg.APIKey, cfg.URL, &http.Client{Timeout: timeout}), nil
}

// NewWithClient creates a Linear service using the supplied HTTP client. An
// empty endpoint selects DefaultEndpoint.
func NewWithClient(id, apiKey, endpoint string, client *http.Client) *Service {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Service{id: id, endpoint: endpoint, apiKey: apiKey, client: client}
}

func (s *Service) ID() string { return s.id }

// MyItems returns issues assigned to the API key owner.
func (s *Service) MyItems(ctx context.Context, limit int) ([]*service.Item, error) {
	limit = normalize(limit)
	data, err := s.execute(ctx, myIssuesQuery, map[string]interface{}{"first": limit})
	if err != nil {
		return nil, err
	}
	return service.Recent(parseIssues(data.Get("viewer.assignedIssues.nodes"), s.id), limit), nil
}

func (s *Service) Item(ctx context.Context, id string) (*service.Item, error) {
	data, err := s.execute(ctx, issueQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	issue := data.Get("issue")
	if !issue.Exists() || issue.Type == gjson.Null {
		return nil, fmt.Errorf("linear: issue %s: %w", id, service.ErrNotFound)
	}
	return parseIssue(issue, s.id), nil
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]*service.Item, error) {
	limit = normalize(limit)
	data, err := s.execute(ctx, searchIssuesQuery, map[string]interface{}{
		"first":  limit,
		"filter": searchFilter(query),
	})
	if err != nil {
		return nil, err
	}
	return service.Recent(parseIssues(data.Get("issues.nodes"), s.id), limit), nil
}

func (s *Service) Tools() []*service.Tool {
	return service.StandardTools(s.id, service.Vocabulary{Backend: "Linear"})
}

func normalize(limit int) int {
	if limit <= 0 {
		return service.DefaultLimit
	}
	return limit
}
