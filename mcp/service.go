package mcp

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/mcp-get/dispatch"
	"github.com/viant/mcp-get/internal/observe"
	"github.com/viant/mcp-get/mcp/config"
	"github.com/viant/mcp-get/registry"
	"github.com/viant/mcp-get/service"
)

// Service bundles configuration, the tracker service registry, the tool
// dispatcher and a Fluxor workflow engine exposing every tracker as actions.
// Bootstrap lives in bootstrap.go.
type Service struct {
	Workflow
	started int32
	config  *config.Config
	env     *config.Env

	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	kinds      map[string]service.Constructor
	logger     *slog.Logger
	metrics    *observe.Metrics
}

type Workflow struct {
	Options    []fluxor.Option
	Runtime    *fluxor.Runtime
	Service    *fluxor.Service
	Extensions []types.Service
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service holding all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Registry returns the tracker service registry.
func (s *Service) Registry() *registry.Registry { return s.registry }

// Dispatcher returns the tool dispatcher.
func (s *Service) Dispatcher() *dispatch.Dispatcher { return s.dispatcher }

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger { return s.logger }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets the configuration. When omitted, services come from the environment.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithEnv overrides the environment settings read by ParseEnv.
func WithEnv(e *config.Env) Option {
	return func(s *Service) {
		s.env = e
	}
}

// WithWorkflowOptions appends Fluxor options used when the workflow engine
// gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers custom Fluxor services next to the tracker actions.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// WithKind makes an additional backend kind available, or replaces a default one.
func WithKind(kind string, ctor service.Constructor) Option {
	return func(s *Service) {
		if s.kinds == nil {
			s.kinds = map[string]service.Constructor{}
		}
		s.kinds[kind] = ctor
	}
}

// WithLogger sets the logger, slog.Default by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithMetrics overrides the metric instruments.
func WithMetrics(m *observe.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs and starts a service. Services failing to register are
// logged and skipped; see bootstrap.go.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is New with the configuration given first.
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Start launches the Fluxor runtime. Subsequent calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime. Calls after the first have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
