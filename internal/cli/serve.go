package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/svgforge/svgforge/internal/server"
	"github.com/svgforge/svgforge/pkg/cache"
	"github.com/svgforge/svgforge/pkg/errors"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	scenes  string
	redis   string // optional redis address; in-memory cache when empty
	ttl     time.Duration
	noCache bool
}

// newServeCmd creates the serve command for the preview HTTP server.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:   ":8080",
		scenes: ".",
		ttl:    5 * time.Minute,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered scenes over HTTP",
		Long: `Serve starts an HTTP server that renders scene manifests on demand.

GET /scenes/{name}.svg renders {name}.toml from the scene directory.
GET /healthz reports liveness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.scenes, "scenes", opts.scenes, "directory holding scene manifests")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the render cache (e.g. localhost:6379)")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "cache entry lifetime")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	if info, err := os.Stat(opts.scenes); err != nil || !info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "scene directory %s does not exist", opts.scenes)
	}

	store, err := serveCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(server.Config{
		Addr:     opts.addr,
		SceneDir: opts.scenes,
		TTL:      opts.ttl,
	}, store, logger)

	printInfo("Serving scenes from %s", opts.scenes)
	printNextStep("Preview a scene", "curl http://localhost"+opts.addr+"/scenes/<name>.svg")
	return srv.Start(ctx)
}

// serveCache picks the cache backend: redis when requested, otherwise an
// in-process map.
func serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	logger := loggerFromContext(ctx)

	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		logger.Debugf("Using redis cache at %s", opts.redis)
		return cache.NewRedisCache(ctx, opts.redis)
	}
	return cache.NewMemoryCache(), nil
}
