// Package observe provides the observability primitives used by the
// dispatcher and the CLI: OpenTelemetry metrics and tracing, and a slog
// logger enriched with the active span.
//
// Tests should use [NewMetrics] with their own [metric.MeterProvider] instead
// of [DefaultMetrics] to avoid cross-test pollution.
package observe

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// scope is the instrumentation scope name for metrics and traces.
const scope = "github.com/viant/mcp-get"

// Tool call status attribute values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the metric instruments recorded per dispatched tool call.
type Metrics struct {
	// ToolCalls counts tool invocations. Attributes: tool, status.
	ToolCalls metric.Int64Counter

	// ToolDuration tracks tool execution latency in seconds. Attributes: tool.
	ToolDuration metric.Float64Histogram

	// RegisteredServices tracks registered services. Attributes: kind.
	RegisteredServices metric.Int64UpDownCounter
}

var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
}

// NewMetrics creates instruments using mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(scope)
	var err error
	met := &Metrics{}
	if met.ToolCalls, err = m.Int64Counter("mcpget.tool.calls",
		metric.WithDescription("Total tool invocations by tool name and status."),
	); err != nil {
		return nil, err
	}
	if met.ToolDuration, err = m.Float64Histogram("mcpget.tool.duration",
		metric.WithDescription("Latency of tool execution."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.RegisteredServices, err = m.Int64UpDownCounter("mcpget.services",
		metric.WithDescription("Number of registered services by kind."),
	); err != nil {
		return nil, err
	}
	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level Metrics instance created from the
// global meter provider. Panics if instrument creation fails.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}
