package mcp

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-get/dispatch"
	"github.com/viant/mcp-get/mcp/matcher"
	"github.com/viant/mcp-get/mcp/tool/conversion"
	"github.com/viant/mcp-get/service"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns an MCP tool entry for every registered tracker tool, in
// service registration order.
func (s *Service) Tools() serverproto.Tools {
	result := make(serverproto.Tools, 0)
	for _, aTool := range s.registry.Tools() {
		entry, err := s.toolEntry(aTool)
		if err != nil {
			s.logger.Warn("skipping tool", "tool", aTool.Name, "error", err)
			continue
		}
		result = append(result, entry)
	}
	return result
}

// MatchTools returns the tool entries whose name satisfies pattern; see matcher.Match.
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	result := make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		if matcher.Match(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// LookupTool returns the tool entry registered under name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	aTool, ok := s.lookupTool(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return s.toolEntry(aTool)
}

// ToolMetadata returns description and input schema for a named tool. The
// second return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	aTool, ok := s.lookupTool(name)
	if !ok {
		return "", nil, false
	}
	return aTool.Description, aTool.InputSchema, true
}

// ExecuteTool dispatches a tool call and returns its envelope.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) *dispatch.Envelope {
	return s.dispatcher.Dispatch(ctx, name, args)
}

func (s *Service) lookupTool(name string) (*service.Tool, bool) {
	for _, aTool := range s.registry.Tools() {
		if aTool.Name == name {
			return aTool, true
		}
	}
	return nil, false
}

func (s *Service) toolEntry(aTool *service.Tool) (*serverproto.ToolEntry, error) {
	metadata, err := conversion.BuildTool(aTool)
	if err != nil {
		return nil, err
	}
	return &serverproto.ToolEntry{
		Metadata: metadata,
		Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return conversion.CallToolResult(s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments)), nil
		},
	}, nil
}
