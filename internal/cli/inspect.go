package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/model"
)

// newInspectCmd creates the inspect command, which prints the
// containment tree and statistics of a model file.
func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the containment tree and statistics of a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(args[0]))
			fmt.Println()
			fmt.Print(renderTree(m))
			fmt.Println()

			s := collectStats(m)
			printKeyValue("Blocks", fmt.Sprintf("%d (%d logical, %d functional)", s.blocks, s.logical, s.functional))
			printKeyValue("Ports", fmt.Sprintf("%d", s.ports))
			printKeyValue("Connections", fmt.Sprintf("%d", s.connections))
			printKeyValue("Max depth", fmt.Sprintf("%d", s.maxDepth))
			return nil
		},
	}
	return cmd
}

type stats struct {
	blocks      int
	logical     int
	functional  int
	ports       int
	connections int
	maxDepth    int
}

func collectStats(m *model.Model) stats {
	s := stats{
		blocks:      m.BlockCount(),
		connections: m.ConnectionCount(),
	}
	for _, b := range m.Blocks() {
		if b.Kind == model.KindLogical {
			s.logical++
		} else {
			s.functional++
		}
		s.ports += len(b.Ports)
		if d := m.NestingLevel(b.ID) + 1; d > s.maxDepth {
			s.maxDepth = d
		}
	}
	return s
}

// renderTree renders the containment hierarchy as an indented tree with
// box-drawing connectors, blocks colored by kind.
func renderTree(m *model.Model) string {
	var b strings.Builder
	roots := m.Roots()
	for i, root := range roots {
		writeTreeNode(&b, m, root, "", i == len(roots)-1)
	}
	return b.String()
}

func writeTreeNode(w *strings.Builder, m *model.Model, blk *model.Block, prefix string, last bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	style := StyleLogical
	if blk.Kind == model.KindFunctional {
		style = StyleFunctional
	}

	label := style.Render(blk.Name)
	var extras []string
	if len(blk.Ports) > 0 {
		extras = append(extras, fmt.Sprintf("%d ports", len(blk.Ports)))
	}
	if !blk.ShowContent && len(blk.Children) > 0 {
		extras = append(extras, "collapsed")
	}
	if len(extras) > 0 {
		label += " " + StyleDim.Render("("+strings.Join(extras, ", ")+")")
	}

	fmt.Fprintf(w, "%s%s%s %s\n", prefix, connector, label, StyleDim.Render(blk.ID))

	for i, childID := range blk.Children {
		child, ok := m.Block(childID)
		if !ok {
			continue
		}
		writeTreeNode(w, m, child, childPrefix, i == len(blk.Children)-1)
	}
}
