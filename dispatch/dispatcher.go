package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/viant/mcp-get/internal/observe"
	"github.com/viant/mcp-get/mcp/tool"
	"github.com/viant/mcp-get/service"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrMalformedToolName is returned for names without a service/method split.
	ErrMalformedToolName = errors.New("malformed tool name")
	// ErrServiceNotFound is returned when no service is registered under the prefix.
	ErrServiceNotFound = errors.New("not found")
	// ErrUnknownMethod is returned for method identifiers outside the method table.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrMalformedArguments is returned when arguments do not satisfy the input schema.
	ErrMalformedArguments = errors.New("malformed arguments")
)

// Lookup resolves a service by identifier.
type Lookup interface {
	Lookup(id string) (service.Service, bool)
}

// Dispatcher routes tool calls to services. It holds no per-call state and is
// safe for concurrent use.
type Dispatcher struct {
	services Lookup
	metrics  *observe.Metrics
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics overrides the metric instruments, observe.DefaultMetrics by default.
func WithMetrics(m *observe.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithLogger sets the logger, slog.Default by default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a dispatcher resolving services through services.
func New(services Lookup, opts ...Option) *Dispatcher {
	d := &Dispatcher{services: services}
	for _, opt := range opts {
		opt(d)
	}
	if d.metrics == nil {
		d.metrics = observe.DefaultMetrics()
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Dispatch executes the named tool and wraps the outcome into an envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]interface{}) *Envelope {
	result, err := d.Call(ctx, name, args)
	if err != nil {
		return Failure(err)
	}
	return Success(result)
}

// Call executes the named tool and returns the raw capability result. Panics
// raised by a service are recovered and reported as errors.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]interface{}) (result interface{}, err error) {
	ctx, span := observe.StartSpan(ctx, "dispatch "+name, trace.WithAttributes(attribute.String("tool", name)))
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("tool %s panicked: %v", name, r)
		}
		d.record(ctx, span, name, started, err)
	}()

	toolName := tool.Name(name)
	if !toolName.Valid() {
		return nil, fmt.Errorf("%w: %q, expected {service}%s{method}", ErrMalformedToolName, name, tool.Separator)
	}
	svc, ok := d.services.Lookup(toolName.Service())
	if !ok {
		return nil, fmt.Errorf("service %s %w", toolName.Service(), ErrServiceNotFound)
	}
	m, ok := methods[toolName.Method()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, toolName.Method())
	}
	bound, err := m.bindArguments(args)
	if err != nil {
		return nil, err
	}
	return m.invoke(ctx, svc, bound)
}

func (d *Dispatcher) record(ctx context.Context, span trace.Span, name string, started time.Time, err error) {
	defer span.End()
	status := observe.StatusOK
	if err != nil {
		status = observe.StatusError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observe.Logger(ctx, d.logger).Debug("tool call failed", "tool", name, "error", err)
	}
	d.metrics.ToolCalls.Add(ctx, 1, metric.WithAttributes(attribute.String("tool", name), attribute.String("status", status)))
	d.metrics.ToolDuration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(attribute.String("tool", name)))
}

