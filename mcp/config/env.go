package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/viant/mcp-get/service"
)

// Env holds settings read from the process environment.
type Env struct {
	ConfigURL     string `env:"MCP_GET_CONFIG"`
	Debug         bool   `env:"MCP_GET_DEBUG"`
	LinearEnabled bool   `env:"LINEAR_ENABLED" envDefault:"true"`
	LinearAPIKey  string `env:"LINEAR_API_KEY"`
	LinearAPIURL  string `env:"LINEAR_API_URL"`
	StaticFixture string `env:"STATIC_FIXTURE"`
}

type credentials struct {
	APIKey string `env:"API_KEY"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (*Env, error) {
	ret := &Env{}
	if err := env.Parse(ret); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return ret, nil
}

// Services returns the service entries implied by the environment: linear when
// enabled and keyed, static when a fixture is set.
func (e *Env) Services() []*service.Config {
	var ret []*service.Config
	if e.LinearEnabled && e.LinearAPIKey != "" {
		ret = append(ret, &service.Config{ID: "linear", APIKey: e.LinearAPIKey, URL: e.LinearAPIURL})
	}
	if e.StaticFixture != "" {
		ret = append(ret, &service.Config{ID: "static", URL: e.StaticFixture})
	}
	return ret
}

// APIKey returns <ID>_API_KEY for the service identifier id.
func APIKey(id string) (string, error) {
	var c credentials
	if err := env.ParseWithOptions(&c, env.Options{Prefix: strings.ToUpper(id) + "_"}); err != nil {
		return "", fmt.Errorf("parse env: %w", err)
	}
	return c.APIKey, nil
}

// ApplyEnv fills empty API keys from the environment.
func ApplyEnv(items []*service.Config) error {
	for _, item := range items {
		if item == nil || item.APIKey != "" {
			continue
		}
		key, err := APIKey(item.ID)
		if err != nil {
			return err
		}
		item.APIKey = key
	}
	return nil
}

// LoadDotEnv loads variables from path; a missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
