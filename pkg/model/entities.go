package model

import "github.com/blockforge/blockforge/pkg/geom"

// Kind distinguishes the two block stereotypes.
type Kind string

// Block kinds.
const (
	KindLogical    Kind = "logical"
	KindFunctional Kind = "functional"
)

// Valid reports whether k is a known block kind.
func (k Kind) Valid() bool {
	return k == KindLogical || k == KindFunctional
}

// Side identifies the block edge a port sits on.
type Side string

// Port sides.
const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Valid reports whether s is a known port side.
func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideTop, SideBottom:
		return true
	}
	return false
}

// Default geometry for newly created blocks. These mirror the compartment
// style: a title header on top and reserved port strips on the left and
// right edges.
const (
	DefaultWidth            = 220
	DefaultHeight           = 150
	DefaultHeaderHeight     = 40
	DefaultPortSectionWidth = 25
	DefaultPadding          = 10
	DefaultChildSpacing     = 8

	// DefaultPortOffset places new ports at the middle of their side.
	DefaultPortOffset = 0.5
)

// Block is a positioned, sized rectangular entity that may contain child
// blocks and own ports. Coordinates are absolute, not relative to the
// parent; containment is expressed purely through ParentID/Children ID
// references into the owning [Model].
//
// The Children order is display and layout order, and is significant.
type Block struct {
	ID       string
	Kind     Kind
	Name     string
	X, Y     float64
	Width    float64
	Height   float64
	ParentID string   // empty for root blocks
	Children []string // ordered child block IDs
	Ports    []Port   // ordered, owned by this block

	// Collapsed and ShowContent are independent flags kept in sync by
	// callers: ShowContent=false means children exist but are neither
	// rendered, laid out, nor hit-testable.
	Collapsed   bool
	ShowContent bool

	// Compartment layout parameters.
	HeaderHeight     float64
	PortSectionWidth float64
	Padding          float64
	ChildSpacing     float64
}

// Bounds returns the block's rectangle.
func (b *Block) Bounds() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// ContainsPoint reports whether (x, y) lies inside the block's rectangle.
func (b *Block) ContainsPoint(x, y float64) bool {
	return b.Bounds().Contains(x, y)
}

// Center returns the center point of the block's rectangle.
func (b *Block) Center() geom.Point {
	return b.Bounds().Center()
}

// ContentArea returns the interior rectangle reserved for child blocks:
// the full rectangle inset by the port section width on the left and
// right, by the header height on top, and by the port section width on
// the bottom.
//
// Degenerate blocks (smaller than their header and port sections) yield
// a rectangle with negative width or height; that configuration is left
// as-is rather than clamped.
func (b *Block) ContentArea() geom.Rect {
	return geom.Rect{
		X:      b.X + b.PortSectionWidth,
		Y:      b.Y + b.HeaderHeight,
		Width:  b.Width - 2*b.PortSectionWidth,
		Height: b.Height - b.HeaderHeight - b.PortSectionWidth,
	}
}

// Port returns the port with the given ID and true, or nil and false if
// this block owns no such port.
func (b *Block) Port(portID string) (*Port, bool) {
	for i := range b.Ports {
		if b.Ports[i].ID == portID {
			return &b.Ports[i], true
		}
	}
	return nil, false
}

// Port is a named attachment point on one side of a block. A port has no
// independent position: its coordinates are always derived from the
// owning block's current geometry via [PortPosition].
type Port struct {
	ID     string
	Name   string
	Side   Side
	Offset float64 // position along the side, 0 = top/left end, 1 = bottom/right end
}

// Connection is a directed link between two blocks. When FromPort or
// ToPort is set, that endpoint binds to the exact port; otherwise it
// binds to the block's boundary, computed dynamically toward the other
// endpoint's center.
type Connection struct {
	ID        string
	FromBlock string
	ToBlock   string
	FromPort  string // optional, empty when unbound
	ToPort    string // optional, empty when unbound
}
