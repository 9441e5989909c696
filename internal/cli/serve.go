package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reeldesigner/pkg/config"
	"github.com/matzehuels/reeldesigner/pkg/errors"
	"github.com/matzehuels/reeldesigner/pkg/server"
)

type serveOpts struct {
	addr     string
	backend  string
	redisURL string
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reel designer form and API",
		Long: `Serve starts an HTTP server with the design form at / and a JSON/SVG API
under /api/v1. Rendered diagrams are cached in the configured backend;
use --cache redis to share the cache between instances.`,
		Example: `  reeldesigner serve --addr :8080
  reeldesigner serve --cache redis --redis-url redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = opts.addr
			}
			if cmd.Flags().Changed("cache") {
				c.Config.Cache.Backend = opts.backend
			}
			if cmd.Flags().Changed("redis-url") {
				c.Config.Cache.RedisURL = opts.redisURL
			}
			if err := c.Config.Validate(); err != nil {
				return err
			}
			return c.runServe(cmd.Context())
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&opts.addr, "addr", defaults.Server.Addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "cache", defaults.Cache.Backend, "render cache: none, file, redis")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for --cache redis")

	return cmd
}

func (c *CLI) runServe(ctx context.Context) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return errors.Wrap(errors.ErrCodeCache, err, "open %s cache", c.Config.Cache.Backend)
	}
	defer runner.Close()

	logger.Info("starting server", "addr", c.Config.Server.Addr, "cache", c.Config.Cache.Backend)
	return server.New(runner, c.Config, logger).ListenAndServe(ctx)
}
