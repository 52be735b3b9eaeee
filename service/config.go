package service

import "fmt"

// Config holds the settings of one service entry.
type Config struct {
	// ID is the service identifier; used when entries come from a list.
	ID string `yaml:"id,omitempty" json:"id,omitempty"`
	// Kind selects the backend variant, defaults to ID.
	Kind    string                 `yaml:"kind,omitempty" json:"kind,omitempty"`
	Enabled *bool                  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	APIKey  string                 `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	URL     string                 `yaml:"url,omitempty" json:"url,omitempty"`
	Options map[string]interface{} `yaml:"options,omitempty" json:"options,omitempty"`
}

// IsEnabled reports whether the entry should be registered. Entries are
// enabled unless explicitly disabled.
func (c *Config) IsEnabled() bool {
	return c != nil && (c.Enabled == nil || *c.Enabled)
}

// KindOr returns the configured kind or the fallback identifier.
func (c *Config) KindOr(id string) string {
	if c == nil || c.Kind == "" {
		return id
	}
	return c.Kind
}

// Option returns a string option or the empty string.
func (c *Config) Option(key string) string {
	if c == nil || c.Options == nil {
		return ""
	}
	v, ok := c.Options[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
