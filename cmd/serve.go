package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd launches an MCP server exposing the tracker tools. HTTP settings
// (port, auth, ...) come from the server section of the config file; --stdio
// serves a single client over stdin/stdout instead.
type ServeCmd struct {
	Stdio bool `long:"stdio" description:"serve over stdin/stdout instead of HTTP"`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = svc.Shutdown(context.Background()) }()

	if c.Stdio {
		if err := svc.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	mcpServer, err := svc.NewServer()
	if err != nil {
		return err
	}
	httpSrv := mcpServer.HTTP(ctx, "")

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		svc.Logger().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	svc.Logger().Info("MCP server listening", "addr", httpSrv.Addr, "services", len(svc.Registry().IDs()))
	return group.Wait()
}
