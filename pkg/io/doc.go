// Package io provides JSON import and export for block diagram models.
//
// # Overview
//
// This package serializes a [model.Model] to and from the snapshot
// document format shared by the editor, the HTTP API, and the snapshot
// stores. The format is designed for:
//
//   - Saving and loading diagrams from disk
//   - Transporting a full model over the HTTP API
//   - Storing named snapshots in file, Redis, or MongoDB backends
//   - Round-trip preservation: export and re-import identically
//
// # JSON Format
//
// The document has two required top-level arrays:
//
//	{
//	  "blocks": [
//	    {
//	      "id": "block_0", "type": "logical", "name": "System",
//	      "x": 100, "y": 80, "width": 220, "height": 150,
//	      "parent_id": null, "children": ["block_1"],
//	      "ports": [{"id": "port_0", "name": "in", "side": "left", "offset": 0.5}],
//	      "collapsed": false, "show_content": true,
//	      "header_height": 40, "port_section_width": 25,
//	      "padding": 10, "child_spacing": 8
//	    }
//	  ],
//	  "connections": [
//	    {"id": "conn_0", "from_block": "block_0", "to_block": "block_1",
//	     "from_port": null, "to_port": null}
//	  ]
//	}
//
// Field presence and naming are exact; parent_id, from_port, and to_port
// are nullable.
//
// # Import
//
// Use [ImportJSON] to read a model from a file path, or [ReadJSON] to
// read from any io.Reader. Both validate the document structure (IDs
// present, known kinds and sides, no duplicate block IDs) and return an
// error carrying the MALFORMED_SNAPSHOT code on failure. Import is
// atomic by construction: a new model is built from scratch and only
// returned when the whole document decoded and validated, so the
// caller's existing model is never partially mutated.
//
// Loading reseeds all three ID counters to the highest numeric suffix
// seen per entity kind plus one, so entities created after a load never
// collide with loaded ones.
//
// # Export
//
// Use [ExportJSON] to write a model to a file, or [WriteJSON] to write
// to any io.Writer. Blocks are emitted in creation order (ascending ID
// suffix) and connections in insertion order, so exports are
// deterministic.
package io
