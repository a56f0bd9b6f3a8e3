package cli

import (
	"github.com/spf13/cobra"

	"github.com/blockforge/blockforge/pkg/config"
	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/model"
)

type newOpts struct {
	output string // output model file path
	config string // editor defaults TOML file
}

// newNewCmd creates the new command, which writes a starter model file
// with a small sample hierarchy.
func newNewCmd() *cobra.Command {
	opts := newOpts{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a starter model file",
		Long:  `Create a model file containing a small sample hierarchy: a logical system block with two functional children, a port, and a connection. Block geometry defaults can be overridden with a TOML config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.LoadEditor(opts.config)
			if err != nil {
				return err
			}

			m := starterModel(cfg)
			if err := io.ExportJSON(m, opts.output); err != nil {
				return err
			}

			logger.Debug("starter model written", "blocks", m.BlockCount(), "connections", m.ConnectionCount())
			printSuccess("Created %s", opts.output)
			printDetail("%d blocks, %d connections", m.BlockCount(), m.ConnectionCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "model.json", "output file path")
	cmd.Flags().StringVar(&opts.config, "config", "blockforge.toml", "editor defaults file")

	return cmd
}

// starterModel builds the sample hierarchy emitted by the new command.
func starterModel(cfg config.Editor) *model.Model {
	m := model.New()

	root := m.CreateBlock(model.KindLogical, 60, 40, "")
	applyDefaults(m, root, cfg)
	_ = m.RenameBlock(root, "System")

	sensor := m.CreateBlock(model.KindFunctional, 0, 0, root)
	applyDefaults(m, sensor, cfg)
	_ = m.RenameBlock(sensor, "Sensing")

	control := m.CreateBlock(model.KindFunctional, 0, 0, root)
	applyDefaults(m, control, cfg)
	_ = m.RenameBlock(control, "Control")

	out, _ := m.CreatePort(root, "out", model.SideRight)
	m.CreateConnection(sensor, control, "", "")
	m.CreateConnection(control, root, "", out)

	m.AutoLayout(root)
	return m
}

func applyDefaults(m *model.Model, id string, cfg config.Editor) {
	if b, ok := m.Block(id); ok {
		cfg.Apply(b)
	}
}
