package model

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrBlockNotFound is returned by mutations that reference a block ID
	// absent from the model.
	ErrBlockNotFound = errors.New("block not found")

	// ErrPortNotFound is returned by mutations that reference a port ID
	// absent from its block.
	ErrPortNotFound = errors.New("port not found")

	// ErrConnectionNotFound is returned by [Model.DeleteConnection] when
	// the connection ID is absent from the model.
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrDuplicateID is returned by [Restore] when a snapshot contains
	// two entities of the same kind with the same ID.
	ErrDuplicateID = errors.New("duplicate entity ID")
)

// ID prefixes per entity kind.
const (
	blockIDPrefix = "block_"
	portIDPrefix  = "port_"
	connIDPrefix  = "conn_"
)

// Minimum interactive resize dimensions, matching the editor's resize
// handles.
const (
	MinBlockWidth  = 150
	MinBlockHeight = 100
)

// Model is the authoritative store of blocks, ports, and connections.
// The zero value is not usable — use [New] or [Restore].
type Model struct {
	blocks map[string]*Block
	conns  []Connection

	blockSeq int
	portSeq  int
	connSeq  int
}

// New creates an empty model with all ID counters at zero.
func New() *Model {
	return &Model{blocks: make(map[string]*Block)}
}

// Restore builds a model from previously persisted entities, keeping
// their IDs, and reseeds all three ID counters to max(numeric suffix)+1
// per kind so that subsequently created entities never collide with
// loaded ones.
//
// Returns ErrDuplicateID if two entities of the same kind share an ID;
// ports are checked model-wide, not per block. The input slices are
// copied; the caller may reuse them.
func Restore(blocks []Block, conns []Connection) (*Model, error) {
	m := New()
	seenPorts := make(map[string]struct{})
	for i := range blocks {
		b := blocks[i]
		if _, exists := m.blocks[b.ID]; exists {
			return nil, fmt.Errorf("block %s: %w", b.ID, ErrDuplicateID)
		}
		b.Children = slices.Clone(b.Children)
		b.Ports = slices.Clone(b.Ports)
		m.blocks[b.ID] = &b

		m.blockSeq = max(m.blockSeq, numericSuffix(b.ID, blockIDPrefix)+1)
		for _, p := range b.Ports {
			if _, exists := seenPorts[p.ID]; exists {
				return nil, fmt.Errorf("port %s: %w", p.ID, ErrDuplicateID)
			}
			seenPorts[p.ID] = struct{}{}
			m.portSeq = max(m.portSeq, numericSuffix(p.ID, portIDPrefix)+1)
		}
	}
	seenConns := make(map[string]struct{})
	for _, c := range conns {
		if _, exists := seenConns[c.ID]; exists {
			return nil, fmt.Errorf("connection %s: %w", c.ID, ErrDuplicateID)
		}
		seenConns[c.ID] = struct{}{}
		m.conns = append(m.conns, c)
		m.connSeq = max(m.connSeq, numericSuffix(c.ID, connIDPrefix)+1)
	}
	return m, nil
}

// numericSuffix parses the counter part of an ID like "block_7".
// Returns -1 for IDs that don't match the prefix or carry a non-numeric
// suffix, so they never advance a counter.
func numericSuffix(id, prefix string) int {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return -1
	}
	return n
}

// =============================================================================
// Block operations
// =============================================================================

// CreateBlock adds a new block of the given kind at (x, y) and returns
// its ID. The block gets default compartment geometry and a generated
// name ("Logical N" / "Functional N").
//
// parentID may be empty for a root block. When the parent exists, the new
// block is appended to its children; an unknown parent ID is recorded on
// the block but treated as absent by every consumer.
func (m *Model) CreateBlock(kind Kind, x, y float64, parentID string) string {
	id := fmt.Sprintf("%s%d", blockIDPrefix, m.blockSeq)
	m.blockSeq++

	kindName := "Logical"
	if kind == KindFunctional {
		kindName = "Functional"
	}

	b := &Block{
		ID:               id,
		Kind:             kind,
		Name:             fmt.Sprintf("%s %d", kindName, m.blockSeq),
		X:                x,
		Y:                y,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		ParentID:         parentID,
		ShowContent:      true,
		HeaderHeight:     DefaultHeaderHeight,
		PortSectionWidth: DefaultPortSectionWidth,
		Padding:          DefaultPadding,
		ChildSpacing:     DefaultChildSpacing,
	}
	m.blocks[id] = b

	if parent, ok := m.blocks[parentID]; ok {
		parent.Children = append(parent.Children, id)
	}

	return id
}

// DeleteBlock removes the block, every descendant block (recursively),
// the entry in its parent's child list, and every connection naming the
// block or any descendant. The cascade completes fully before returning.
//
// Returns ErrBlockNotFound if the ID is unknown.
func (m *Model) DeleteBlock(id string) error {
	if _, ok := m.blocks[id]; !ok {
		return ErrBlockNotFound
	}
	m.deleteBlockCascade(id)
	return nil
}

// deleteBlockCascade is the recursive worker behind DeleteBlock. It
// tolerates already-deleted children so a partially dangling child list
// never aborts the cascade.
func (m *Model) deleteBlockCascade(id string) {
	b, ok := m.blocks[id]
	if !ok {
		return
	}

	for _, childID := range slices.Clone(b.Children) {
		m.deleteBlockCascade(childID)
	}

	if parent, ok := m.blocks[b.ParentID]; ok {
		parent.Children = slices.DeleteFunc(parent.Children, func(cid string) bool { return cid == id })
	}

	m.conns = slices.DeleteFunc(m.conns, func(c Connection) bool {
		return c.FromBlock == id || c.ToBlock == id
	})

	delete(m.blocks, id)
}

// MoveBlock translates the block by (dx, dy). With withChildren set,
// every descendant is translated by the same offset — coordinates are
// absolute per block, so the walk is explicit.
//
// Returns ErrBlockNotFound if the ID is unknown.
func (m *Model) MoveBlock(id string, dx, dy float64, withChildren bool) error {
	b, ok := m.blocks[id]
	if !ok {
		return ErrBlockNotFound
	}

	b.X += dx
	b.Y += dy

	if withChildren {
		m.moveChildren(id, dx, dy)
	}
	return nil
}

func (m *Model) moveChildren(parentID string, dx, dy float64) {
	parent := m.blocks[parentID]
	for _, childID := range parent.Children {
		child, ok := m.blocks[childID]
		if !ok {
			continue
		}
		child.X += dx
		child.Y += dy
		m.moveChildren(childID, dx, dy)
	}
}

// ResizeBlock sets the block's size, clamped to the interactive minimum
// (150×100). If the block shows children, its compartment is re-laid out
// to the new size.
//
// Returns ErrBlockNotFound if the ID is unknown.
func (m *Model) ResizeBlock(id string, width, height float64) error {
	b, ok := m.blocks[id]
	if !ok {
		return ErrBlockNotFound
	}

	b.Width = max(MinBlockWidth, width)
	b.Height = max(MinBlockHeight, height)

	if len(b.Children) > 0 && b.ShowContent {
		m.AutoLayout(id)
	}
	return nil
}

// RenameBlock sets the block's display name.
// Returns ErrBlockNotFound if the ID is unknown.
func (m *Model) RenameBlock(id, name string) error {
	b, ok := m.blocks[id]
	if !ok {
		return ErrBlockNotFound
	}
	b.Name = name
	return nil
}

// ToggleContent flips the block's show_content and collapsed flags
// together, the way a header double-click does in the editor.
// Returns ErrBlockNotFound if the ID is unknown.
func (m *Model) ToggleContent(id string) error {
	b, ok := m.blocks[id]
	if !ok {
		return ErrBlockNotFound
	}
	b.ShowContent = !b.ShowContent
	b.Collapsed = !b.Collapsed
	return nil
}

// ExpandAll shows content on every block.
func (m *Model) ExpandAll() {
	for _, b := range m.blocks {
		b.ShowContent = true
		b.Collapsed = false
	}
}

// CollapseAll hides content on every block that has children. Leaf
// blocks are untouched.
func (m *Model) CollapseAll() {
	for _, b := range m.blocks {
		if len(b.Children) > 0 {
			b.ShowContent = false
			b.Collapsed = true
		}
	}
}

// =============================================================================
// Hierarchy queries
// =============================================================================

// Visible reports whether the block is visible: every ancestor up to the
// root must have show_content enabled. Root blocks (no parent, or a
// dangling parent reference) are always visible. Unknown IDs are not
// visible.
//
// Visibility is recomputed on every call; ancestor flags change
// independently, so caching here would go stale.
func (m *Model) Visible(id string) bool {
	b, ok := m.blocks[id]
	if !ok {
		return false
	}

	parent, ok := m.blocks[b.ParentID]
	if !ok {
		return true
	}
	if !parent.ShowContent {
		return false
	}
	return m.Visible(parent.ID)
}

// NestingLevel returns the number of ancestor hops to a root block.
// Roots are level 0; unknown IDs and dangling parent references
// terminate the walk.
func (m *Model) NestingLevel(id string) int {
	level := 0
	b, ok := m.blocks[id]
	if !ok {
		return 0
	}
	for {
		parent, ok := m.blocks[b.ParentID]
		if !ok {
			return level
		}
		level++
		b = parent
	}
}

// =============================================================================
// Accessors
// =============================================================================

// Block returns the block with the given ID and true, or nil and false.
// The returned pointer refers to the stored block; mutate through the
// model's methods, not directly, unless you own the session.
func (m *Model) Block(id string) (*Block, bool) {
	b, ok := m.blocks[id]
	return b, ok
}

// Blocks returns all blocks in creation order (ascending numeric ID
// suffix). The slice is fresh; the pointers are the stored blocks.
func (m *Model) Blocks() []*Block {
	out := make([]*Block, 0, len(m.blocks))
	for _, b := range m.blocks {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *Block) int {
		return cmp.Or(
			cmp.Compare(numericSuffix(a.ID, blockIDPrefix), numericSuffix(b.ID, blockIDPrefix)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out
}

// Roots returns all blocks without a resolvable parent, in creation order.
func (m *Model) Roots() []*Block {
	var out []*Block
	for _, b := range m.Blocks() {
		if _, ok := m.blocks[b.ParentID]; !ok {
			out = append(out, b)
		}
	}
	return out
}

// Connections returns a copy of all connections in insertion order.
func (m *Model) Connections() []Connection {
	return slices.Clone(m.conns)
}

// Connection returns the connection with the given ID and true, or a
// zero connection and false.
func (m *Model) Connection(id string) (Connection, bool) {
	for _, c := range m.conns {
		if c.ID == id {
			return c, true
		}
	}
	return Connection{}, false
}

// BlockCount returns the number of blocks in the model.
func (m *Model) BlockCount() int { return len(m.blocks) }

// ConnectionCount returns the number of connections in the model.
func (m *Model) ConnectionCount() int { return len(m.conns) }
