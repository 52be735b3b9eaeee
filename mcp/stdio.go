package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/viant/mcp-get/dispatch"
)

const (
	// ServerName is the MCP implementation name.
	ServerName = "mcp-get"
	// ServerVersion is the MCP implementation version.
	ServerVersion = "1.0.0"
)

// StdioServer builds an MCP server advertising the tracker tools, for the
// stdio transport.
func (s *Service) StdioServer() (*sdk.Server, error) {
	server := sdk.NewServer(&sdk.Implementation{Name: ServerName, Version: ServerVersion}, nil)
	for _, aTool := range s.registry.Tools() {
		inputSchema, err := json.Marshal(aTool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("input schema of %s: %w", aTool.Name, err)
		}
		server.AddTool(&sdk.Tool{
			Name:        aTool.Name,
			Description: aTool.Description,
			InputSchema: json.RawMessage(inputSchema),
		}, s.handleStdioCall)
	}
	return server, nil
}

// ServeStdio serves the tracker tools over stdin/stdout until ctx is done or
// the client disconnects.
func (s *Service) ServeStdio(ctx context.Context) error {
	return s.serveTransport(ctx, &sdk.StdioTransport{})
}

func (s *Service) serveTransport(ctx context.Context, transport sdk.Transport) error {
	server, err := s.StdioServer()
	if err != nil {
		return err
	}
	s.logger.Info("serving MCP over stdio", "tools", len(s.registry.Tools()))
	return server.Run(ctx, transport)
}

func (s *Service) handleStdioCall(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
	var args map[string]interface{}
	if raw := req.Params.Arguments; len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return stdioResult(dispatch.Failure(fmt.Errorf("%w: %v", dispatch.ErrMalformedArguments, err))), nil
		}
	}
	return stdioResult(s.ExecuteTool(ctx, req.Params.Name, args)), nil
}

func stdioResult(envelope *dispatch.Envelope) *sdk.CallToolResult {
	ret := &sdk.CallToolResult{IsError: envelope.IsError}
	for _, content := range envelope.Content {
		ret.Content = append(ret.Content, &sdk.TextContent{Text: content.Text})
	}
	return ret
}
