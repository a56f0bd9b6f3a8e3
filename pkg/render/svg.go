package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/blockforge/blockforge/pkg/model"
)

// Colors follow the editor's compartment palette.
const (
	logicalHeader    = "#357ABD"
	logicalBorder    = "#2C5AA0"
	functionalHeader = "#27AE60"
	functionalBorder = "#1E8449"
	portFill         = "#34495E"
	portSectionFill  = "#ECF0F1"
	connectionStroke = "#2C3E50"
	sourceDotFill    = "#3498DB"
	targetDotFill    = "#2ECC71"
	labelColor       = "#2C3E50"
)

const (
	portSize     = 10.0
	endpointDot  = 4.0
	canvasMargin = 20.0
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background      string
	hideConnections bool
}

// WithBackground sets the canvas background color. Default is white.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithoutConnections draws blocks and ports only.
func WithoutConnections() SVGOption {
	return func(r *svgRenderer) { r.hideConnections = true }
}

// RenderSVG draws the model as a compartment-style SVG. Hidden blocks
// and connections with missing or hidden endpoints are skipped.
func RenderSVG(m *model.Model, opts ...SVGOption) []byte {
	r := svgRenderer{background: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}

	blocks := visibleBlocks(m)
	minX, minY, w, h := canvasBounds(blocks)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		minX, minY, w, h, r.background)

	for _, b := range blocks {
		renderBlock(&buf, b)
	}

	if !r.hideConnections {
		for _, c := range m.Connections() {
			renderConnection(&buf, m, c)
		}
	}

	for _, b := range blocks {
		renderPorts(&buf, b)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// visibleBlocks returns the drawable blocks sorted shallow-first, so
// children paint over their parents.
func visibleBlocks(m *model.Model) []*model.Block {
	var blocks []*model.Block
	for _, b := range m.Blocks() {
		if m.Visible(b.ID) {
			blocks = append(blocks, b)
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return m.NestingLevel(blocks[i].ID) < m.NestingLevel(blocks[j].ID)
	})
	return blocks
}

func canvasBounds(blocks []*model.Block) (minX, minY, w, h float64) {
	if len(blocks) == 0 {
		return 0, 0, 2 * canvasMargin, 2 * canvasMargin
	}
	minX, minY = blocks[0].X, blocks[0].Y
	maxX, maxY := minX, minY
	for _, b := range blocks {
		minX = min(minX, b.X)
		minY = min(minY, b.Y)
		maxX = max(maxX, b.X+b.Width)
		maxY = max(maxY, b.Y+b.Height)
	}
	minX -= canvasMargin
	minY -= canvasMargin
	return minX, minY, maxX - minX + canvasMargin, maxY - minY + canvasMargin
}

func renderBlock(buf *bytes.Buffer, b *model.Block) {
	header, border := logicalHeader, logicalBorder
	if b.Kind == model.KindFunctional {
		header, border = functionalHeader, functionalBorder
	}

	// Body and header.
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="white" stroke="%s" stroke-width="2"/>`+"\n",
		b.X, b.Y, b.Width, b.Height, border)
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		b.X, b.Y, b.Width, b.HeaderHeight, header)

	// Port sections flank the content area when the block has ports.
	if len(b.Ports) > 0 {
		sectionH := b.Height - b.HeaderHeight
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			b.X, b.Y+b.HeaderHeight, b.PortSectionWidth, sectionH, portSectionFill)
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			b.X+b.Width-b.PortSectionWidth, b.Y+b.HeaderHeight, b.PortSectionWidth, sectionH, portSectionFill)
	}

	// Stereotype and name, centered in the header.
	stereotype := "«Logical»"
	if b.Kind == model.KindFunctional {
		stereotype = "«Functional»"
	}
	cx := b.X + b.Width/2
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial" font-size="8" font-style="italic" fill="white">%s</text>`+"\n",
		cx, b.Y+14, stereotype)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial" font-size="10" font-weight="bold" fill="white">%s</text>`+"\n",
		cx, b.Y+31, escape(b.Name))

	// Collapse indicator and child count for container blocks.
	if len(b.Children) > 0 {
		indicator := "▶"
		if b.ShowContent {
			indicator = "▼"
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="Arial" font-size="10" fill="white">%s</text>`+"\n",
			b.X+6, b.Y+b.HeaderHeight/2+4, indicator)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="end" font-family="Arial" font-size="8" fill="white">[%d]</text>`+"\n",
			b.X+b.Width-6, b.Y+14, len(b.Children))
	}
}

func renderPorts(buf *bytes.Buffer, b *model.Block) {
	for _, p := range b.Ports {
		pos := model.PortPosition(b, p)
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" fill="%s" stroke="white" stroke-width="2"/>`+"\n",
			pos.X-portSize/2, pos.Y-portSize/2, portSize, portSize, portFill)
		if p.Name == "" {
			continue
		}

		// Labels sit outside the block, away from the port's side.
		lx, ly, anchor := pos.X, pos.Y, "middle"
		switch p.Side {
		case model.SideLeft:
			lx, anchor = pos.X-12, "end"
			ly += 3
		case model.SideRight:
			lx, anchor = pos.X+12, "start"
			ly += 3
		case model.SideTop:
			ly = pos.Y - 10
		case model.SideBottom:
			ly = pos.Y + 16
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="%s" font-family="Arial" font-size="7" fill="%s">%s</text>`+"\n",
			lx, ly, anchor, labelColor, escape(p.Name))
	}
}

func renderConnection(buf *bytes.Buffer, m *model.Model, c model.Connection) {
	if !m.Visible(c.FromBlock) || !m.Visible(c.ToBlock) {
		return
	}
	from, to, ok := m.Endpoints(c)
	if !ok {
		return
	}

	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" stroke-linecap="round"/>`+"\n",
		from.X, from.Y, to.X, to.Y, connectionStroke)
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>`+"\n",
		from.X, from.Y, endpointDot, sourceDotFill)
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>`+"\n",
		to.X, to.Y, endpointDot, targetDotFill)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
