package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/model"
)

// newHitCmd creates the hit command, which resolves what lies under a
// canvas point: the deepest visible block, a port within reach, and a
// connection within reach.
func newHitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hit FILE X Y",
		Short: "Resolve what lies under a canvas point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid x coordinate %q", args[1])
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid y coordinate %q", args[2])
			}

			m, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}

			blockID, port, conn := resolveHit(m, x, y)
			if blockID == "" && conn == "" {
				printInfo("Nothing at (%v, %v)", x, y)
				return nil
			}
			if blockID != "" {
				b, _ := m.Block(blockID)
				printKeyValue("Block", fmt.Sprintf("%s (%s, depth %d)", b.Name, blockID, m.NestingLevel(blockID)))
			}
			if port != "" {
				printKeyValue("Port", port)
			}
			if conn != "" {
				printKeyValue("Connection", conn)
			}
			return nil
		},
	}
	return cmd
}

// resolveHit performs the editor's hit test: deepest visible block
// first, then a port of that block, then any connection near the point.
func resolveHit(m *model.Model, x, y float64) (blockID, portID, connID string) {
	if id, ok := m.BlockAt(x, y); ok {
		blockID = id
		if p, ok := m.PortAt(id, x, y); ok {
			portID = p.ID
		}
	}
	if c, ok := m.ConnectionAt(x, y, 0); ok {
		connID = c.ID
	}
	return blockID, portID, connID
}
