// Package context carries per-call values for outgoing MCP client requests.
package context

import (
	"context"
	"strings"

	"github.com/viant/mcp/client/auth/transport"
)

const bearerPrefix = "Bearer "

// WithAuthToken attaches the token the client transport sends as bearer
// credentials. A "Bearer " prefix is stripped; an empty token leaves ctx as is.
func WithAuthToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(strings.TrimPrefix(token, bearerPrefix))
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, transport.ContextAuthTokenKey, token)
}

// AuthToken returns the token attached by WithAuthToken.
func AuthToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(transport.ContextAuthTokenKey).(string)
	return token, ok && token != ""
}
