package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packista/packista/internal/server"
	"github.com/packista/packista/pkg/cache"
	"github.com/packista/packista/pkg/integrations/packagist"
	"github.com/packista/packista/pkg/release"
)

// serveCommand creates the API server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Long: `Run the JSON API server.

The server exposes release resolution over HTTP:

  GET /healthz
  GET /packages/{vendor}/{package}/latest
  GET /packages/{vendor}/{package}/versions
  GET /packages/{vendor}/{package}/versions/{version}

Configuration is read from a TOML file when --config is given; flags
override file values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = server.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if c.registryURL != "" {
				cfg.Registry.BaseURL = c.registryURL
			}
			if c.noCache {
				cfg.Cache.Backend = "none"
			}

			store, err := c.serverCache(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("init cache backend: %w", err)
			}
			defer store.Close()

			client := packagist.NewClient(store, cfg.Registry.BaseURL, cfg.Cache.TTL.Duration())
			svc := release.NewService(client, nil, c.Logger)

			c.Logger.Info("starting server", "listen", cfg.Listen, "cache", cfg.Cache.Backend)
			return server.New(svc, c.Logger).Run(cmd.Context(), cfg.Listen)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")

	return cmd
}

// serverCache builds the cache backend named by the config.
func (c *CLI) serverCache(ctx context.Context, cfg server.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
	case "mongo":
		return cache.NewMongoCache(ctx, cfg.Cache.MongoURI, cfg.Cache.MongoDatabase, cfg.Cache.MongoCollection)
	case "none":
		return cache.NewNullCache(), nil
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	}
}
