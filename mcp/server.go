package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns an MCP handler exposing the tracker tools. Tools are
// fixed after bootstrap, so every connection gets the same entries.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.Tools() {
		impl.Registry.ToolRegistry.Put(tool.Metadata.Name, tool)
	}
	return impl, nil
}

// NewServer creates the HTTP MCP server using the configured server options.
func (s *Service) NewServer() (*mcp.Server, error) {
	return mcp.NewServer(s.NewHandler, s.config.Server)
}
