// Package pkg provides the core libraries for blockforge diagram editing.
//
// # Overview
//
// Blockforge models hierarchical block diagrams: nested logical and
// functional blocks with ports on their edges and connections routed
// between block boundaries. The pkg directory is organized by concern:
//
//   - [geom] - 2D primitives (points, rectangles, edge intersection)
//   - [model] - The diagram model: blocks, ports, connections, layout
//   - [io] - JSON snapshot import and export
//   - [store] - Named snapshot storage (file, Redis, MongoDB)
//   - [render] - SVG and Graphviz output
//   - [config] - Editor defaults and server settings
//   - [errors] - Structured error codes shared by CLI and API
//   - [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through blockforge:
//
//	Snapshot file / HTTP payload
//	         ↓
//	    [io] package (decode, validate, restore)
//	         ↓
//	    [model] package (edit, lay out, hit test)
//	         ↓
//	    [render] package (SVG / DOT / PNG output)
//
// The [model] package is the heart of the system: a single-writer
// entity store with derived geometry computed on demand. Everything
// else is an adapter around it.
//
// [geom]: github.com/blockforge/blockforge/pkg/geom
// [model]: github.com/blockforge/blockforge/pkg/model
// [io]: github.com/blockforge/blockforge/pkg/io
// [store]: github.com/blockforge/blockforge/pkg/store
// [render]: github.com/blockforge/blockforge/pkg/render
// [config]: github.com/blockforge/blockforge/pkg/config
// [errors]: github.com/blockforge/blockforge/pkg/errors
// [buildinfo]: github.com/blockforge/blockforge/pkg/buildinfo
package pkg
