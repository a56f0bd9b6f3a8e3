package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/model"
)

type layoutOpts struct {
	block  string // lay out a single block instead of all roots
	output string // write to a different file
}

// newLayoutCmd creates the layout command, which runs auto-layout on a
// model file and writes the result back.
func newLayoutCmd() *cobra.Command {
	opts := layoutOpts{}

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Run auto-layout on a model file",
		Long:  `Run auto-layout on the model: children are stacked vertically inside their parent's content area, and parents grow to fit. By default all root blocks are laid out; --block restricts layout to one block's subtree.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}

			if opts.block != "" {
				if _, ok := m.Block(opts.block); !ok {
					return fmt.Errorf("layout: %w: %s", model.ErrBlockNotFound, opts.block)
				}
				m.AutoLayout(opts.block)
			} else {
				for _, root := range m.Roots() {
					m.AutoLayout(root.ID)
				}
			}

			out := opts.output
			if out == "" {
				out = args[0]
			}
			if err := io.ExportJSON(m, out); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Laid out %d blocks", m.BlockCount()))
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.block, "block", "", "lay out only this block's subtree")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}
