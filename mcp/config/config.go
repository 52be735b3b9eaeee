package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/mcp"
	"github.com/viant/mcp-get/mcp/tool"
	"github.com/viant/mcp-get/service"
	"gopkg.in/yaml.v3"
)

// Group holds either inline items or a URL of a YAML document listing them.
type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty" short:"i" long:"items" description:"items"`
}

type Config struct {
	Server   *mcp.ServerOptions      `yaml:"server,omitempty" json:"server,omitempty"`
	Services *Group[*service.Config] `yaml:"services,omitempty" json:"services,omitempty"`
	// Builtins selects Fluxor builtin actions available to workflows ("*", prefix or exact).
	Builtins   []string        `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	Options    []fluxor.Option `yaml:"-" json:"-"`
	Extensions []types.Service `yaml:"-" json:"-"`
}

// Load reads a YAML or JSON configuration from any afs supported URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Validate checks inline service entries. Duplicate identifiers are left to
// the registry, which keeps the first entry.
func (c *Config) Validate() error {
	if c == nil || c.Services == nil {
		return nil
	}
	for i, item := range c.Services.Items {
		if item == nil {
			return fmt.Errorf("services.items[%d]: empty entry", i)
		}
		if err := tool.ValidateService(item.ID); err != nil {
			return fmt.Errorf("services.items[%d]: %w", i, err)
		}
	}
	return nil
}

// LoadServices returns the inline service entries or, when none are inline,
// the entries listed by the YAML document at Services.URL.
func (c *Config) LoadServices(ctx context.Context) ([]*service.Config, error) {
	if c == nil || c.Services == nil {
		return nil, nil
	}
	if len(c.Services.Items) > 0 {
		return c.Services.Items, nil
	}
	if c.Services.URL == "" {
		return nil, nil
	}
	data, err := afs.New().DownloadWithURL(ctx, c.Services.URL)
	if err != nil {
		return nil, fmt.Errorf("download services config %q: %w", c.Services.URL, err)
	}
	var out []*service.Config
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse services config %q: %w", c.Services.URL, err)
	}
	return out, nil
}
