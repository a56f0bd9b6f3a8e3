package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/blockforge/blockforge/pkg/geom"
)

// Port offset clamp for interactive dragging. Keeping ports away from the
// extreme ends leaves room for the header corner and the block corners.
const (
	minPortOffset = 0.1
	maxPortOffset = 0.9
)

// portHitTolerance is the half-size of the square hit box around a port,
// matching the rendered port glyph plus a small grab margin.
const portHitTolerance = 12

// CreatePort adds a port to the block's side at the default offset (0.5)
// and returns the new port ID.
//
// Returns ErrBlockNotFound if the block ID is unknown.
func (m *Model) CreatePort(blockID, name string, side Side) (string, error) {
	b, ok := m.blocks[blockID]
	if !ok {
		return "", fmt.Errorf("create port on %s: %w", blockID, ErrBlockNotFound)
	}

	id := fmt.Sprintf("%s%d", portIDPrefix, m.portSeq)
	m.portSeq++

	b.Ports = append(b.Ports, Port{ID: id, Name: name, Side: side, Offset: DefaultPortOffset})
	return id, nil
}

// DeletePort removes the port from its block along with every connection
// naming that port.
//
// Returns ErrBlockNotFound if the block ID is unknown, or ErrPortNotFound
// if the block owns no such port.
func (m *Model) DeletePort(blockID, portID string) error {
	b, ok := m.blocks[blockID]
	if !ok {
		return ErrBlockNotFound
	}

	idx := -1
	for i := range b.Ports {
		if b.Ports[i].ID == portID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPortNotFound
	}

	m.conns = slices.DeleteFunc(m.conns, func(c Connection) bool {
		return c.FromPort == portID || c.ToPort == portID
	})
	b.Ports = slices.Delete(b.Ports, idx, idx+1)
	return nil
}

// RenamePort sets the port's display name.
func (m *Model) RenamePort(blockID, portID, name string) error {
	p, err := m.port(blockID, portID)
	if err != nil {
		return err
	}
	p.Name = name
	return nil
}

// SetPortSide moves the port to another side of its block. The offset is
// kept; positions along the new side are derived on the next query.
func (m *Model) SetPortSide(blockID, portID string, side Side) error {
	p, err := m.port(blockID, portID)
	if err != nil {
		return err
	}
	p.Side = side
	return nil
}

// SetPortOffset sets the port's relative position along its side,
// clamped to [0.1, 0.9] as during interactive port dragging.
func (m *Model) SetPortOffset(blockID, portID string, offset float64) error {
	p, err := m.port(blockID, portID)
	if err != nil {
		return err
	}
	p.Offset = math.Max(minPortOffset, math.Min(maxPortOffset, offset))
	return nil
}

// port resolves a block/port ID pair to the stored port.
func (m *Model) port(blockID, portID string) (*Port, error) {
	b, ok := m.blocks[blockID]
	if !ok {
		return nil, ErrBlockNotFound
	}
	p, ok := b.Port(portID)
	if !ok {
		return nil, ErrPortNotFound
	}
	return p, nil
}

// PortPosition derives a port's absolute coordinates from its owning
// block's current geometry. Left and right ports are distributed over the
// vertical span below the header (the header is not part of the
// port-bearing region); top and bottom ports are distributed over the
// full width. Nothing is cached — a move or resize is reflected on the
// next call.
func PortPosition(b *Block, p Port) geom.Point {
	switch p.Side {
	case SideLeft:
		return geom.Point{
			X: b.X,
			Y: b.Y + b.HeaderHeight + (b.Height-b.HeaderHeight)*p.Offset,
		}
	case SideRight:
		return geom.Point{
			X: b.X + b.Width,
			Y: b.Y + b.HeaderHeight + (b.Height-b.HeaderHeight)*p.Offset,
		}
	case SideTop:
		return geom.Point{
			X: b.X + b.Width*p.Offset,
			Y: b.Y + b.HeaderHeight,
		}
	default: // bottom
		return geom.Point{
			X: b.X + b.Width*p.Offset,
			Y: b.Y + b.Height,
		}
	}
}

// PortAt returns the first of the block's ports (in display order) whose
// position lies within the square hit tolerance (±12 units on both axes)
// of (x, y), or nil and false when none matches or the block is unknown.
func (m *Model) PortAt(blockID string, x, y float64) (*Port, bool) {
	b, ok := m.blocks[blockID]
	if !ok {
		return nil, false
	}

	for i := range b.Ports {
		pos := PortPosition(b, b.Ports[i])
		if math.Abs(x-pos.X) < portHitTolerance && math.Abs(y-pos.Y) < portHitTolerance {
			return &b.Ports[i], true
		}
	}
	return nil, false
}
