package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/model"
)

var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

type browseOpts struct {
	write bool // write edits back to the file on exit
}

// newBrowseCmd creates the browse command, an interactive terminal view
// of a model file's containment tree.
func newBrowseCmd() *cobra.Command {
	opts := browseOpts{}

	cmd := &cobra.Command{
		Use:   "browse FILE",
		Short: "Explore a model file interactively",
		Long:  `Open an interactive tree view of the model. Navigate with the arrow keys, toggle a block's content with enter, run auto-layout with l, and delete a block with d. With --write, edits are saved back to the file on exit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}

			bm := newBrowseModel(m, args[0])
			final, err := tea.NewProgram(bm, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			result := final.(browseModel)
			if opts.write && result.dirty {
				if err := io.ExportJSON(result.model, args[0]); err != nil {
					return err
				}
				printSuccess("Saved %s", args[0])
			} else if result.dirty {
				printInfo("Edits discarded (run with --write to save)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "write edits back to the file on exit")

	return cmd
}

// browseRow is one visible line of the tree: a block and its depth.
type browseRow struct {
	id    string
	depth int
}

// browseModel is the bubbletea model for the browse command.
type browseModel struct {
	model  *model.Model
	file   string
	rows   []browseRow
	cursor int
	height int
	offset int
	dirty  bool
	status string
}

func newBrowseModel(m *model.Model, file string) browseModel {
	bm := browseModel{model: m, file: file, height: 20}
	bm.rebuild()
	return bm
}

// rebuild flattens the visible containment tree into rows. Children of
// collapsed blocks are omitted, matching the canvas.
func (bm *browseModel) rebuild() {
	bm.rows = bm.rows[:0]
	for _, root := range bm.model.Roots() {
		bm.appendRows(root, 0)
	}
	if bm.cursor >= len(bm.rows) {
		bm.cursor = len(bm.rows) - 1
	}
	if bm.cursor < 0 {
		bm.cursor = 0
	}
}

func (bm *browseModel) appendRows(b *model.Block, depth int) {
	bm.rows = append(bm.rows, browseRow{id: b.ID, depth: depth})
	if !b.ShowContent {
		return
	}
	for _, childID := range b.Children {
		child, ok := bm.model.Block(childID)
		if !ok {
			continue
		}
		bm.appendRows(child, depth+1)
	}
}

func (bm browseModel) selected() (*model.Block, bool) {
	if bm.cursor < 0 || bm.cursor >= len(bm.rows) {
		return nil, false
	}
	return bm.model.Block(bm.rows[bm.cursor].id)
}

func (bm browseModel) Init() tea.Cmd {
	return nil
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return bm, tea.Quit
		case "up", "k":
			if bm.cursor > 0 {
				bm.cursor--
				if bm.cursor < bm.offset {
					bm.offset = bm.cursor
				}
			}
		case "down", "j":
			if bm.cursor < len(bm.rows)-1 {
				bm.cursor++
				if bm.cursor >= bm.offset+bm.height {
					bm.offset = bm.cursor - bm.height + 1
				}
			}
		case "enter", " ":
			if b, ok := bm.selected(); ok && len(b.Children) > 0 {
				_ = bm.model.ToggleContent(b.ID)
				bm.dirty = true
				bm.status = ""
				bm.rebuild()
			}
		case "l":
			if b, ok := bm.selected(); ok {
				bm.model.AutoLayout(b.ID)
				bm.dirty = true
				bm.status = fmt.Sprintf("laid out %s", b.Name)
			}
		case "d":
			if b, ok := bm.selected(); ok {
				name := b.Name
				if err := bm.model.DeleteBlock(b.ID); err == nil {
					bm.dirty = true
					bm.status = fmt.Sprintf("deleted %s", name)
					bm.rebuild()
				}
			}
		case "E":
			bm.model.ExpandAll()
			bm.dirty = true
			bm.rebuild()
		case "C":
			bm.model.CollapseAll()
			bm.dirty = true
			bm.rebuild()
		}
	case tea.WindowSizeMsg:
		bm.height = msg.Height - 7
		if bm.height < 5 {
			bm.height = 5
		}
	}
	return bm, nil
}

func (bm browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(bm.file))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("↑/↓ navigate  ⏎ toggle  l layout  d delete  E/C expand/collapse all  q quit"))
	b.WriteString("\n\n")

	end := bm.offset + bm.height
	if end > len(bm.rows) {
		end = len(bm.rows)
	}

	for i := bm.offset; i < end; i++ {
		row := bm.rows[i]
		blk, ok := bm.model.Block(row.id)
		if !ok {
			continue
		}

		cursor := "  "
		if i == bm.cursor {
			cursor = "▸ "
		}

		marker := "·"
		if len(blk.Children) > 0 {
			marker = "▶"
			if blk.ShowContent {
				marker = "▼"
			}
		}

		style := StyleLogical
		if blk.Kind == model.KindFunctional {
			style = StyleFunctional
		}

		counts := fmt.Sprintf("%d ports · %d connections", len(blk.Ports), len(bm.model.ConnectionsFor(blk.ID)))
		line := fmt.Sprintf("%s%s%s %s  %s",
			cursor,
			strings.Repeat("  ", row.depth),
			marker,
			style.Render(blk.Name),
			browseDimStyle.Render(counts),
		)
		if i == bm.cursor {
			line = browseSelectedStyle.Render(fmt.Sprintf("%s%s%s %s",
				cursor, strings.Repeat("  ", row.depth), marker, blk.Name)) +
				"  " + browseDimStyle.Render(counts)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("  [%d/%d] %d blocks, %d connections",
		bm.cursor+1, len(bm.rows), bm.model.BlockCount(), bm.model.ConnectionCount())
	if bm.status != "" {
		footer += " · " + bm.status
	}
	if bm.dirty {
		footer += " · " + StyleWarning.Render("modified")
	}
	b.WriteString(browseDimStyle.Render(footer))

	return b.String()
}
