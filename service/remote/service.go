// Package remote implements a backend that federates the tracker tools of an
// upstream MCP server, for example another mcp-get instance.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/mcp"
	"github.com/viant/mcp-get/internal/conv"
	mcpctx "github.com/viant/mcp-get/mcp/context"
	"github.com/viant/mcp-get/mcp/tool"
	"github.com/viant/mcp-get/service"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
)

const (
	// Kind is the backend kind name.
	Kind = "mcp"

	defaultTransport = "sse"
	errorPrefix      = "Error: "
	notFound         = "not found"
)

// Service proxies the standard tracker methods to tools named
// {prefix}_{method} on an upstream MCP server.
type Service struct {
	id      string
	prefix  string
	apiKey  string
	client  mcpclient.Interface
	backend string
}

// New connects to the upstream server at cfg.URL. Option "prefix" selects the
// upstream service identifier (defaults to id); option "transport" selects the
// client transport (defaults to sse); option "name" names the backend in tool
// descriptions. cfg.APIKey, when set, is sent as the
// bearer token of every call.
func New(ctx context.Context, id string, cfg *service.Config) (service.Service, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, fmt.Errorf("%w: mcp upstream url is required", service.ErrConstruction)
	}
	transportType := cfg.Option("transport")
	if transportType == "" {
		transportType = defaultTransport
	}
	opts := &mcp.ClientOptions{
		Name: id,
		Transport: mcp.ClientTransport{
			Type:                transportType,
			ClientTransportHTTP: mcp.ClientTransportHTTP{URL: cfg.URL},
		},
	}
	opts.Init()
	cli, err := mcp.NewClient(newHandler(), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: create mcp client %q: %v", service.ErrConstruction, cfg.URL, err)
	}
	prefix := cfg.Option("prefix")
	if prefix == "" {
		prefix = id
	}
	svc, err := NewWithClient(ctx, id, prefix, cli)
	if err != nil {
		return nil, err
	}
	svc.apiKey = cfg.APIKey
	if name := cfg.Option("name"); name != "" {
		svc.backend = name
	}
	return svc, nil
}

// NewWithClient creates a service on top of a connected client and checks
// that the upstream advertises every standard method under prefix.
func NewWithClient(ctx context.Context, id, prefix string, cli mcpclient.Interface) (*Service, error) {
	svc := &Service{id: id, prefix: prefix, client: cli, backend: prefix}
	tools, err := svc.listTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list upstream tools: %v", service.ErrConstruction, err)
	}
	advertised := make(map[string]bool, len(tools))
	for _, t := range tools {
		advertised[t.Name] = true
	}
	for _, method := range service.Methods {
		if name := svc.upstream(method); !advertised[name] {
			return nil, fmt.Errorf("%w: upstream does not advertise %s", service.ErrConstruction, name)
		}
	}
	return svc, nil
}

func (s *Service) listTools(ctx context.Context) ([]mcpschema.Tool, error) {
	var tools []mcpschema.Tool
	var cursor *string
	for {
		res, err := s.client.ListTools(ctx, cursor)
		if err != nil {
			return nil, err
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			return tools, nil
		}
		cursor = res.NextCursor
	}
}

func (s *Service) upstream(method string) string {
	return tool.NewName(s.prefix, method).String()
}

func (s *Service) ID() string { return s.id }

func (s *Service) MyItems(ctx context.Context, limit int) ([]*service.Item, error) {
	var items []*service.Item
	err := s.call(ctx, service.MethodMyItems, map[string]interface{}{"limit": limit}, &items)
	return s.own(items), err
}

func (s *Service) Item(ctx context.Context, id string) (*service.Item, error) {
	var item *service.Item
	if err := s.call(ctx, service.MethodItem, map[string]interface{}{"issueId": id}, &item); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("issue %s: %w", id, service.ErrNotFound)
	}
	item.Service = s.id
	return item, nil
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]*service.Item, error) {
	var items []*service.Item
	err := s.call(ctx, service.MethodSearch, map[string]interface{}{"query": query, "limit": limit}, &items)
	return s.own(items), err
}

func (s *Service) Tools() []*service.Tool {
	return service.StandardTools(s.id, service.Vocabulary{Backend: s.backend})
}

// call invokes the upstream tool for method and decodes its text content into out.
func (s *Service) call(ctx context.Context, method string, args map[string]interface{}, out interface{}) error {
	if s.apiKey != "" {
		ctx = mcpctx.WithAuthToken(ctx, s.apiKey)
	}
	params := &mcpschema.CallToolRequestParams{
		Name:      s.upstream(method),
		Arguments: mcpschema.CallToolRequestParamsArguments(args),
	}
	res, err := s.client.CallTool(ctx, params)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", params.Name, service.ErrBackendUnavailable, err)
	}
	if res == nil || len(res.Content) == 0 {
		return fmt.Errorf("%s: %w: empty result", params.Name, service.ErrBackendUnavailable)
	}
	text := res.Content[0].Text
	if conv.Dereference(res.IsError) {
		return upstreamError(params.Name, strings.TrimPrefix(text, errorPrefix))
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%s: %w: decode result: %v", params.Name, service.ErrBackendUnavailable, err)
	}
	return nil
}

// own rebinds items to this service's identifier.
func (s *Service) own(items []*service.Item) []*service.Item {
	if items == nil {
		return []*service.Item{}
	}
	for _, item := range items {
		item.Service = s.id
	}
	return items
}

func upstreamError(name, message string) error {
	lower := strings.ToLower(message)
	switch {
	case strings.HasSuffix(lower, notFound):
		return fmt.Errorf("%s: %w", strings.TrimRight(message[:len(message)-len(notFound)], " :"), service.ErrNotFound)
	case strings.Contains(lower, service.ErrBackendAuth.Error()):
		return fmt.Errorf("%s: %w: %s", name, service.ErrBackendAuth, message)
	}
	return fmt.Errorf("%s: %w: %s", name, service.ErrBackendUnavailable, message)
}
