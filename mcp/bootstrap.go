package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/mcp-get/dispatch"
	"github.com/viant/mcp-get/internal/observe"
	"github.com/viant/mcp-get/mcp/action"
	"github.com/viant/mcp-get/mcp/config"
	"github.com/viant/mcp-get/registry"
)

// init orchestrates the bootstrap steps once all options have been applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := s.registerServices(ctx); err != nil {
		return fmt.Errorf("register services: %w", err)
	}
	s.dispatcher = dispatch.New(s.registry, dispatch.WithMetrics(s.metrics), dispatch.WithLogger(s.logger))
	s.initWorkflowService()

	// callers get a ready-to-use instance without an extra Start call
	return s.Start(ctx)
}

// initDefaults applies fall-back values for dependencies not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if len(s.config.Builtins) == 0 {
		s.config.Builtins = append(s.config.Builtins, "*")
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.metrics == nil {
		s.metrics = observe.DefaultMetrics()
	}
	kinds := defaultKinds()
	for kind, ctor := range s.kinds {
		kinds[kind] = ctor
	}
	s.kinds = kinds
	var opts []registry.Option
	for kind, ctor := range s.kinds {
		opts = append(opts, registry.WithKind(kind, ctor))
	}
	s.registry = registry.New(opts...)
}

// initWorkflowService instantiates the Fluxor engine with builtin actions, a
// tracker/{id} action service per registered tracker and caller extensions.
func (s *Service) initWorkflowService() {
	opts := append([]fluxor.Option{}, s.config.Options...)

	extensions := append([]types.Service{}, s.config.Extensions...)
	extensions = append(extensions, resolveBuiltinServices(s.config.Builtins)...)
	for _, id := range s.registry.IDs() {
		extensions = append(extensions, action.New(id, s.dispatcher))
	}
	extensions = append(extensions, s.Workflow.Extensions...)
	if len(extensions) > 0 {
		opts = append(opts, fluxor.WithExtensionServices(extensions...))
	}

	// caller options go last so they can override defaults
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
