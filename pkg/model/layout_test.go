package model

import (
	"math"
	"testing"
)

// layoutParent creates a parent whose content area is exactly content
// width × height given the default header (40) and port section (25).
func layoutParent(t *testing.T, m *Model, contentW, contentH float64) string {
	t.Helper()
	id := m.CreateBlock(KindLogical, 0, 0, "")
	b, _ := m.Block(id)
	b.Width = contentW + 2*b.PortSectionWidth
	b.Height = contentH + b.HeaderHeight + b.PortSectionWidth
	return id
}

func TestAutoLayoutEvenDistribution(t *testing.T) {
	m := New()
	parent := layoutParent(t, m, 300, 400)
	c1 := m.CreateBlock(KindLogical, 0, 0, parent)
	c2 := m.CreateBlock(KindLogical, 0, 0, parent)

	m.AutoLayout(parent)

	p, _ := m.Block(parent)
	content := p.ContentArea()

	// (400 - 8) / 2 = 196 per child, above the 60 minimum.
	wantHeight := 196.0
	wantWidth := content.Width - 2*p.Padding

	first, _ := m.Block(c1)
	second, _ := m.Block(c2)

	if first.X != content.X+p.Padding || first.Y != content.Y {
		t.Errorf("first child at (%v, %v), want (%v, %v)", first.X, first.Y, content.X+p.Padding, content.Y)
	}
	if first.Width != wantWidth || first.Height != wantHeight {
		t.Errorf("first child %vx%v, want %vx%v", first.Width, first.Height, wantWidth, wantHeight)
	}
	if wantY := content.Y + wantHeight + p.ChildSpacing; second.Y != wantY {
		t.Errorf("second child Y = %v, want %v", second.Y, wantY)
	}
}

func TestAutoLayoutMinimumHeightGrowsParent(t *testing.T) {
	m := New()
	parent := layoutParent(t, m, 300, 100)
	for i := 0; i < 5; i++ {
		m.CreateBlock(KindLogical, 0, 0, parent)
	}

	m.AutoLayout(parent)

	p, _ := m.Block(parent)

	// (100 - 4*8) / 5 = 13.6, floored to 60 per child.
	for _, cid := range p.Children {
		c, _ := m.Block(cid)
		if c.Height != 60 {
			t.Errorf("child %s height = %v, want 60", cid, c.Height)
		}
	}

	// Stack = 5*60 + 4*8 = 332; plus header 40, port section 25, 2*padding 20.
	wantHeight := 332.0 + 40 + 25 + 20
	if p.Height != wantHeight {
		t.Errorf("parent height = %v, want %v", p.Height, wantHeight)
	}
}

func TestAutoLayoutNeverShrinksParent(t *testing.T) {
	m := New()
	parent := layoutParent(t, m, 300, 800)
	m.CreateBlock(KindLogical, 0, 0, parent)

	p, _ := m.Block(parent)
	before := p.Height

	m.AutoLayout(parent)
	if p.Height != before {
		t.Errorf("parent height changed from %v to %v", before, p.Height)
	}
}

func TestAutoLayoutRecursesDepthFirst(t *testing.T) {
	m := New()
	parent := layoutParent(t, m, 400, 400)
	child := m.CreateBlock(KindLogical, 0, 0, parent)
	grand := m.CreateBlock(KindLogical, 0, 0, child)

	m.AutoLayout(parent)

	c, _ := m.Block(child)
	g, _ := m.Block(grand)
	inner := c.ContentArea()

	if g.X != inner.X+c.Padding || g.Y != inner.Y {
		t.Errorf("grandchild at (%v, %v), want (%v, %v)", g.X, g.Y, inner.X+c.Padding, inner.Y)
	}
	if g.Height < MinChildHeight {
		t.Errorf("grandchild height = %v, below minimum", g.Height)
	}
}

func TestAutoLayoutSkipsHiddenContent(t *testing.T) {
	m := New()
	parent := layoutParent(t, m, 300, 400)
	child := m.CreateBlock(KindLogical, 77, 88, parent)

	p, _ := m.Block(parent)
	p.ShowContent = false

	m.AutoLayout(parent)

	c, _ := m.Block(child)
	if c.X != 77 || c.Y != 88 {
		t.Errorf("child moved to (%v, %v) despite hidden content", c.X, c.Y)
	}
}

func TestAutoLayoutNoopCases(t *testing.T) {
	m := New()
	leaf := m.CreateBlock(KindLogical, 10, 10, "")

	m.AutoLayout("block_42") // unknown: must not panic
	m.AutoLayout(leaf)       // no children: no-op

	b, _ := m.Block(leaf)
	if b.X != 10 || b.Y != 10 {
		t.Errorf("leaf moved to (%v, %v)", b.X, b.Y)
	}
}

func TestAutoLayoutToleratesDanglingChild(t *testing.T) {
	m := New()
	parent := layoutParent(t, m, 300, 400)
	child := m.CreateBlock(KindLogical, 0, 0, parent)

	p, _ := m.Block(parent)
	p.Children = append(p.Children, "block_42")

	m.AutoLayout(parent)

	// The dangling ID is skipped and does not occupy a layout slot: the
	// one real child receives the entire content height.
	c, _ := m.Block(child)
	if c.Height != 400 {
		t.Errorf("child height = %v, want 400", c.Height)
	}
}

func TestConstrainToParent(t *testing.T) {
	m := New()
	parent := layoutParent(t, m, 300, 400)
	child := m.CreateBlock(KindLogical, 0, 0, parent)

	c, _ := m.Block(child)
	c.Width, c.Height = 100, 80

	p, _ := m.Block(parent)
	content := p.ContentArea()

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{
			name: "inside is unchanged",
			x:    content.X + 10, y: content.Y + 10,
			wantX: content.X + 10, wantY: content.Y + 10,
		},
		{
			name: "clamped to top-left",
			x:    -500, y: -500,
			wantX: content.X, wantY: content.Y,
		},
		{
			name: "clamped to bottom-right",
			x:    5000, y: 5000,
			wantX: content.X + content.Width - 100, wantY: content.Y + content.Height - 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := m.ConstrainToParent(child, tt.x, tt.y)
			if math.Abs(gotX-tt.wantX) > 1e-9 || math.Abs(gotY-tt.wantY) > 1e-9 {
				t.Errorf("ConstrainToParent = (%v, %v), want (%v, %v)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}

	// Root blocks are unconstrained.
	if x, y := m.ConstrainToParent(parent, -99, -99); x != -99 || y != -99 {
		t.Errorf("root constrained to (%v, %v)", x, y)
	}
}
