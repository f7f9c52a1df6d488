package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/svgforge/svgforge/pkg/cache"
	"github.com/svgforge/svgforge/pkg/errors"
	"github.com/svgforge/svgforge/pkg/export"
	"github.com/svgforge/svgforge/pkg/scene"
)

// defaultCacheTTL bounds how long converted renders stay reusable. Scene
// edits change the content hash, so this only ages out abandoned entries.
const defaultCacheTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path; derived from the input when empty
	format  string  // output format: "svg", "png", "pdf"
	scale   float64 // raster scale factor for PNG export
	noCache bool    // bypass the render cache
}

// newRenderCmd creates the render command for compiling scene manifests.
// Given a directory instead of a manifest, it opens an interactive picker.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: "svg",
		scale:  1.0,
	}

	cmd := &cobra.Command{
		Use:   "render [file|dir]",
		Short: "Compile a scene manifest to SVG, PNG, or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			input, err := resolveInput(args[0])
			if err != nil || input == "" {
				return err
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG export")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// resolveInput returns the manifest path for the given argument. Directories
// open the interactive scene picker; an empty return means the user quit.
func resolveInput(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeFileNotFound, "no such file or directory: %s", arg)
		}
		return "", err
	}
	if info.IsDir() {
		return pickScene(arg)
	}
	return arg, nil
}

// runRender parses the manifest, renders the scene, converts it to the
// requested format and writes the result.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Rendering %s", input)

	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", input)
	}

	s, err := scene.Parse(data)
	if err != nil {
		return err
	}
	logger.Debugf("Parsed scene: %d shapes, %d gradients", len(s.Shapes), len(s.Gradients))

	store, key := renderCache(ctx, data, opts)
	defer store.Close()

	out, cached, err := renderScene(ctx, s, store, key, opts)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", outputPath)
	}

	if cached {
		prog.done("Rendered (cached)")
	} else {
		prog.done("Rendered")
	}
	printFile(outputPath)
	return nil
}

// renderCache builds the cache backend and key for this invocation.
// --no-cache and the plain SVG format skip caching; SVG serialization is
// cheaper than the disk round trip.
func renderCache(ctx context.Context, manifest []byte, opts *renderOpts) (cache.Cache, string) {
	logger := loggerFromContext(ctx)

	if opts.noCache || opts.format == "svg" {
		return cache.NewNullCache(), ""
	}

	dir, err := cacheDir()
	if err != nil {
		logger.Debugf("Cache unavailable: %v", err)
		return cache.NewNullCache(), ""
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Debugf("Cache unavailable: %v", err)
		return cache.NewNullCache(), ""
	}

	key := cache.NewDefaultKeyer().RenderKey(cache.Hash(manifest), opts.format, opts.scale)
	return store, key
}

// renderScene produces the output bytes, consulting the cache first.
func renderScene(ctx context.Context, s *scene.Scene, store cache.Cache, key string, opts *renderOpts) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	if key != "" {
		if data, hit, err := store.Get(ctx, key); err == nil && hit {
			logger.Debug("Cache hit")
			return data, true, nil
		}
	}

	markup, err := s.Render()
	if err != nil {
		return nil, false, err
	}

	out := []byte(markup)
	if opts.format != "svg" {
		sp := newSpinner(ctx, "Converting with rsvg-convert")
		sp.Start()
		out, err = export.Convert(ctx, out, opts.format, opts.scale)
		sp.Stop()
		if err != nil {
			return nil, false, err
		}
	}

	if key != "" {
		if err := store.Set(ctx, key, out, defaultCacheTTL); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}
	return out, false, nil
}
