package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgforge/svgforge/pkg/errors"
	"github.com/svgforge/svgforge/pkg/export"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	output string
	format string
	scale  float64
}

// newDotCmd creates the dot command for laying out Graphviz DOT input.
func newDotCmd() *cobra.Command {
	opts := dotOpts{
		format: "svg",
		scale:  1.0,
	}

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Lay out a Graphviz DOT file and export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format); err != nil {
				return err
			}
			return runDot(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG export")

	return cmd
}

func runDot(ctx context.Context, input string, opts *dotOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Laying out %s", input)

	dot, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", input)
	}

	svg, err := export.FromDOT(ctx, dot)
	if err != nil {
		return err
	}
	logger.Debugf("Generated SVG: %d bytes", len(svg))

	out, err := export.Convert(ctx, svg, opts.format, opts.scale)
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

	prog.done("Layout complete")
	printFile(outputPath)
	return nil
}
