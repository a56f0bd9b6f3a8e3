package model

import "math"

// MinChildHeight is the floor for auto-laid-out child blocks. With many
// children the floor wins over even distribution, so the stacked height
// can exceed the parent's content area; the parent is then grown to fit.
const MinChildHeight = 60

// AutoLayout stacks the block's children vertically inside its content
// compartment: each child spans the content width minus two paddings,
// children share the content height equally (subject to [MinChildHeight]),
// and siblings are separated by the configured child spacing. After a
// child is placed, its own visible children are laid out recursively
// before the next sibling is positioned.
//
// If the resulting stack does not fit, the parent grows to accommodate it
// plus its header, bottom port section, and paddings. The parent never
// shrinks automatically.
//
// AutoLayout is a no-op for unknown IDs, blocks without children, and
// blocks with hidden content.
func (m *Model) AutoLayout(parentID string) {
	parent, ok := m.blocks[parentID]
	if !ok {
		return
	}
	if len(parent.Children) == 0 || !parent.ShowContent {
		return
	}

	content := parent.ContentArea()

	children := make([]*Block, 0, len(parent.Children))
	for _, cid := range parent.Children {
		if c, ok := m.blocks[cid]; ok {
			children = append(children, c)
		}
	}
	if len(children) == 0 {
		return
	}

	n := float64(len(children))
	childHeight := (content.Height - parent.ChildSpacing*(n-1)) / n
	childHeight = math.Max(MinChildHeight, childHeight)

	y := content.Y
	for _, child := range children {
		child.X = content.X + parent.Padding
		child.Y = y
		child.Width = content.Width - 2*parent.Padding
		child.Height = childHeight
		y += childHeight + parent.ChildSpacing

		if len(child.Children) > 0 && child.ShowContent {
			m.AutoLayout(child.ID)
		}
	}

	totalHeight := n*childHeight + (n-1)*parent.ChildSpacing
	minParentHeight := totalHeight + parent.HeaderHeight + parent.PortSectionWidth + 2*parent.Padding
	if parent.Height < minParentHeight {
		parent.Height = minParentHeight
	}
}

// ConstrainToParent clamps a proposed position for the block into its
// parent's content area, the way interactive dragging keeps children
// inside their compartment. Blocks without a resolvable parent are
// unconstrained. The block itself is not moved.
func (m *Model) ConstrainToParent(id string, x, y float64) (float64, float64) {
	b, ok := m.blocks[id]
	if !ok {
		return x, y
	}
	parent, ok := m.blocks[b.ParentID]
	if !ok {
		return x, y
	}

	content := parent.ContentArea()
	x = math.Max(content.X, math.Min(x, content.X+content.Width-b.Width))
	y = math.Max(content.Y, math.Min(y, content.Y+content.Height-b.Height))
	return x, y
}
