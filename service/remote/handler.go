package remote

import (
	"context"

	"github.com/viant/jsonrpc"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// handler answers server-initiated requests on upstream connections. A
// tracker backend only lists and calls tools, so every callback is declined.
type handler struct{}

func newHandler() protoclient.Handler { return &handler{} }

func (*handler) Init(context.Context, *mcpschema.ClientCapabilities) {}

func (*handler) OnNotification(context.Context, *jsonrpc.Notification) {}

func (*handler) Implements(string) bool { return false }

func (*handler) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, declined(mcpschema.MethodRootsList)
}

func (*handler) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, declined(mcpschema.MethodSamplingCreateMessage)
}

func (*handler) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, declined(mcpschema.MethodElicitationCreate)
}

func (*handler) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, declined(mcpschema.MethodInteractionCreate)
}

func declined(method string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.MethodNotFound, "tracker client does not handle "+method, nil)
}
