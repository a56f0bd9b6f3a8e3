package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockforge/blockforge/pkg/config"
	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/render"
)

const (
	formatSVG = "svg" // compartment-style vector output
	formatDOT = "dot" // Graphviz source with containment clusters
	formatPNG = "png" // raster output via the DOT pipeline
)

type renderOpts struct {
	output string // output file path
	format string // svg, dot, or png
	config string // editor defaults TOML file
}

// newRenderCmd creates the render command for generating diagram output
// from a model file.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a model file as SVG, DOT, or PNG",
		Long:  `Render the model. SVG output draws the diagram in the editor's compartment style; DOT output expresses the containment hierarchy as Graphviz clusters; PNG rasterizes the DOT graph with the embedded Graphviz engine.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cfg, err := config.LoadEditor(opts.config)
			if err != nil {
				return err
			}
			format := opts.format
			if format == "" {
				format = cfg.Render.Format
			}

			m, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case formatSVG:
				data = render.RenderSVG(m, render.WithBackground(cfg.Render.Background))
			case formatDOT:
				data = []byte(render.ToDOT(m))
			case formatPNG:
				data, err = render.RenderPNG(cmd.Context(), m)
				if err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, dot, or png)", format)
			}

			out := opts.output
			if out == "" {
				out = outputPath(args[0], format)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			prog.done(fmt.Sprintf("Rendered %d blocks", m.BlockCount()))
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, dot, or png")
	cmd.Flags().StringVar(&opts.config, "config", "blockforge.toml", "editor defaults file")

	return cmd
}

// outputPath swaps the model file's extension for the render format's.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
