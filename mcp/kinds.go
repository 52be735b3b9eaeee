package mcp

import (
	"github.com/viant/mcp-get/service"
	"github.com/viant/mcp-get/service/linear"
	"github.com/viant/mcp-get/service/remote"
	"github.com/viant/mcp-get/service/static"
)

// defaultKinds lists the backend kinds available without options.
func defaultKinds() map[string]service.Constructor {
	return map[string]service.Constructor{
		linear.Kind: linear.New,
		static.Kind: static.New,
		remote.Kind: remote.New,
	}
}
