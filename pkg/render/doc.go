// Package render turns block diagram models into visual output.
//
// # Overview
//
// Two renderers are provided:
//
//   - [RenderSVG] draws the model directly as a compartment-style SVG:
//     blocks as rectangles with a colored header, port sections on the
//     left and right edges, ports as squares on the block boundary, and
//     connections as straight lines between boundary points. The
//     picture matches what the interactive editor shows.
//
//   - [ToDOT] exports the model as a Graphviz DOT graph, with the
//     containment hierarchy expressed as nested clusters. The DOT text
//     can be rasterized with [RenderDOT] using the embedded Graphviz
//     engine, which is how PNG output is produced.
//
// Both renderers skip hidden blocks (those inside a collapsed ancestor)
// and connections whose endpoints are missing or hidden, so output
// always reflects the visible state of the model.
package render
