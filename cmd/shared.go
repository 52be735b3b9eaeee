package cmd

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/viant/mcp-get/internal/observe"
	"github.com/viant/mcp-get/mcp"
	"github.com/viant/mcp-get/mcp/config"
)

var (
	rootOptions *Options

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

func setRootOptions(opts *Options) { rootOptions = opts }

// serviceSingleton initialises an mcp.Service only once and reuses the instance
// across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		svcInst, svcErr = newService(context.Background(), rootOptions)
	})
	return svcInst, svcErr
}

// newService loads the dotenv file, the environment and the optional
// configuration file, then bootstraps the service. Logs go to stderr since
// stdout carries the stdio transport.
func newService(ctx context.Context, opts *Options) (*mcp.Service, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := config.LoadDotEnv(opts.Env); err != nil {
		return nil, err
	}
	env, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	logger := observe.NewLogger(os.Stderr, opts.Debug || env.Debug)
	slog.SetDefault(logger)

	URL := opts.Config
	if URL == "" {
		URL = env.ConfigURL
	}
	var cfg *config.Config
	if URL != "" {
		if cfg, err = config.Load(ctx, URL); err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "url", URL)
	}
	return mcp.New(ctx, mcp.WithConfig(cfg), mcp.WithEnv(env), mcp.WithLogger(logger))
}
