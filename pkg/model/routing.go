package model

import (
	"fmt"
	"slices"

	"github.com/blockforge/blockforge/pkg/geom"
)

// DefaultConnectionTolerance is the hit-test distance for connection
// lines, in user units.
const DefaultConnectionTolerance = 10

// CreateConnection adds a directed connection between two blocks and
// returns its ID. fromPort and toPort may be empty; a set port ID binds
// that endpoint to the exact port, an empty one binds to the block's
// boundary toward the other endpoint.
//
// Endpoint IDs are not validated here: a connection whose block later
// disappears is simply skipped by routing and hit-testing.
func (m *Model) CreateConnection(fromBlock, toBlock, fromPort, toPort string) string {
	id := fmt.Sprintf("%s%d", connIDPrefix, m.connSeq)
	m.connSeq++

	m.conns = append(m.conns, Connection{
		ID:        id,
		FromBlock: fromBlock,
		ToBlock:   toBlock,
		FromPort:  fromPort,
		ToPort:    toPort,
	})
	return id
}

// DeleteConnection removes the connection with the given ID.
// Returns ErrConnectionNotFound if no such connection exists.
func (m *Model) DeleteConnection(id string) error {
	before := len(m.conns)
	m.conns = slices.DeleteFunc(m.conns, func(c Connection) bool { return c.ID == id })
	if len(m.conns) == before {
		return ErrConnectionNotFound
	}
	return nil
}

// ConnectionsFor returns every connection naming the block or one of its
// ports, in insertion order.
func (m *Model) ConnectionsFor(blockID string) []Connection {
	var out []Connection
	for _, c := range m.conns {
		if c.FromBlock == blockID || c.ToBlock == blockID {
			out = append(out, c)
		}
	}
	return out
}

// Endpoints resolves both endpoint coordinates of a connection. Each
// endpoint resolves independently: a bound port that still exists on the
// named block yields that port's position; otherwise the endpoint is the
// point on the block's boundary closest to the other block's center
// (with the block's own center as the degenerate fallback).
//
// ok is false when either endpoint block is absent from the model; such
// connections are never routed or hit-tested.
func (m *Model) Endpoints(c Connection) (from, to geom.Point, ok bool) {
	fromBlock, okFrom := m.blocks[c.FromBlock]
	toBlock, okTo := m.blocks[c.ToBlock]
	if !okFrom || !okTo {
		return geom.Point{}, geom.Point{}, false
	}

	from = m.endpoint(fromBlock, toBlock, c.FromPort)
	to = m.endpoint(toBlock, fromBlock, c.ToPort)
	return from, to, true
}

// endpoint resolves one side of a connection against the block it is
// attached to, aiming at the other endpoint's block.
func (m *Model) endpoint(b, other *Block, portID string) geom.Point {
	if portID != "" {
		if p, ok := b.Port(portID); ok {
			return PortPosition(b, *p)
		}
	}
	return geom.EdgePoint(b.Bounds(), other.Center())
}

// ConnectionAt returns the first connection (in insertion order) whose
// rendered segment passes within tolerance of (x, y). Pass tolerance <= 0
// to use [DefaultConnectionTolerance]. Connections referencing a missing
// block are skipped entirely.
func (m *Model) ConnectionAt(x, y, tolerance float64) (Connection, bool) {
	if tolerance <= 0 {
		tolerance = DefaultConnectionTolerance
	}

	p := geom.Point{X: x, Y: y}
	for _, c := range m.conns {
		from, to, ok := m.Endpoints(c)
		if !ok {
			continue
		}
		if geom.SegmentDistance(p, from, to) < tolerance {
			return c, true
		}
	}
	return Connection{}, false
}
