package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/blockforge/blockforge/pkg/model"
)

// ToDOT exports the model as a Graphviz DOT graph. Blocks with visible
// children become cluster subgraphs, so the containment hierarchy shows
// up as nested boxes; leaf and collapsed blocks become plain nodes.
// Connections are drawn as edges between blocks, with bound port names
// as edge labels.
func ToDOT(m *model.Model) string {
	var buf bytes.Buffer
	buf.WriteString("digraph model {\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, b := range m.Roots() {
		writeBlock(&buf, m, b, 1)
	}

	buf.WriteString("\n")
	for _, c := range m.Connections() {
		writeEdge(&buf, m, c)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeBlock(buf *bytes.Buffer, m *model.Model, b *model.Block, depth int) {
	pad := strings.Repeat("  ", depth)
	fill := "lightsteelblue"
	if b.Kind == model.KindFunctional {
		fill = "darkseagreen"
	}

	if b.ShowContent && len(b.Children) > 0 {
		fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", pad, b.ID)
		fmt.Fprintf(buf, "%s  label=%q;\n", pad, b.Name)
		fmt.Fprintf(buf, "%s  style=\"rounded,filled\";\n", pad)
		fmt.Fprintf(buf, "%s  fillcolor=%s;\n", pad, fill)
		// Anchor node so edges can target the cluster itself.
		fmt.Fprintf(buf, "%s  %q [label=%q, fillcolor=white];\n", pad, b.ID, b.Name)
		for _, childID := range b.Children {
			child, ok := m.Block(childID)
			if !ok {
				continue
			}
			writeBlock(buf, m, child, depth+1)
		}
		fmt.Fprintf(buf, "%s}\n", pad)
		return
	}

	label := b.Name
	if len(b.Children) > 0 {
		label = fmt.Sprintf("%s [%d]", b.Name, len(b.Children))
	}
	fmt.Fprintf(buf, "%s%q [label=%q, fillcolor=%s];\n", pad, b.ID, label, fill)
}

// writeEdge skips connections with a missing or hidden endpoint, since
// hidden blocks have no node declaration and would otherwise be
// implicitly created by Graphviz.
func writeEdge(buf *bytes.Buffer, m *model.Model, c model.Connection) {
	if !m.Visible(c.FromBlock) || !m.Visible(c.ToBlock) {
		return
	}

	var labels []string
	if name := portName(m, c.FromBlock, c.FromPort); name != "" {
		labels = append(labels, name)
	}
	if name := portName(m, c.ToBlock, c.ToPort); name != "" {
		labels = append(labels, name)
	}

	if len(labels) > 0 {
		fmt.Fprintf(buf, "  %q -> %q [label=%q];\n", c.FromBlock, c.ToBlock, strings.Join(labels, " → "))
		return
	}
	fmt.Fprintf(buf, "  %q -> %q;\n", c.FromBlock, c.ToBlock)
}

func portName(m *model.Model, blockID, portID string) string {
	if portID == "" {
		return ""
	}
	b, ok := m.Block(blockID)
	if !ok {
		return ""
	}
	if p, ok := b.Port(portID); ok {
		return p.Name
	}
	return ""
}

// RenderDOT rasterizes a DOT graph with the embedded Graphviz engine.
// Supported formats are graphviz.SVG and graphviz.PNG.
func RenderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG rasterizes the model as a PNG image via the DOT pipeline.
func RenderPNG(ctx context.Context, m *model.Model) ([]byte, error) {
	return RenderDOT(ctx, ToDOT(m), graphviz.PNG)
}
