package mcp

import (
	"sort"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/mcp-get/mcp/matcher"

	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	exec "github.com/viant/fluxor/service/action/system/exec"
	secret "github.com/viant/fluxor/service/action/system/secret"
	storage "github.com/viant/fluxor/service/action/system/storage"
)

// builtinFactories lists the Fluxor action services workflows may combine
// with tracker actions. Keys match the service names.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/exec":    func() types.Service { return exec.New() },
	"system/storage": func() types.Service { return storage.New() },
	"system/secret":  func() types.Service { return secret.New() },
}

// resolveBuiltinServices instantiates the builtins selected by patterns, in
// name order.
func resolveBuiltinServices(patterns []string) []types.Service {
	var names []string
	for name := range builtinFactories {
		if matcher.Any(patterns, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]types.Service, 0, len(names))
	for _, name := range names {
		out = append(out, builtinFactories[name]())
	}
	return out
}
