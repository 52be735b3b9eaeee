package mcp

import (
	"context"

	"github.com/viant/mcp-get/mcp/config"
	"github.com/viant/mcp-get/service"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// registerServices registers every enabled service entry. A failing entry is
// logged and skipped so that the remaining services stay available.
func (s *Service) registerServices(ctx context.Context) error {
	items, err := s.loadServiceConfigs(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if !item.IsEnabled() {
			s.logger.Info("service disabled", "service", item.ID)
			continue
		}
		kind := item.KindOr(item.ID)
		svc, err := s.registry.Register(ctx, item.ID, item)
		if err != nil {
			s.logger.Error("failed to register service", "service", item.ID, "kind", kind, "error", err)
			continue
		}
		s.metrics.RegisteredServices.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
		s.logger.Info("registered service", "service", svc.ID(), "kind", kind, "tools", len(svc.Tools()))
	}
	s.logger.Info("mcp-get ready", "services", len(s.registry.IDs()), "tools", len(s.registry.Tools()))
	return nil
}

// loadServiceConfigs resolves service entries from the configuration or,
// when it lists none, from the environment. Empty API keys fall back to
// <ID>_API_KEY.
func (s *Service) loadServiceConfigs(ctx context.Context) ([]*service.Config, error) {
	items, err := s.config.LoadServices(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		if s.env == nil {
			if s.env, err = config.ParseEnv(); err != nil {
				return nil, err
			}
		}
		items = s.env.Services()
	}
	if err := config.ApplyEnv(items); err != nil {
		return nil, err
	}
	return items, nil
}
