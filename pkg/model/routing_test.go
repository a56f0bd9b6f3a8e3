package model

import (
	"testing"
)

// twoBlocks builds the canonical routing fixture: two 100×100 blocks at
// (0,0) and (300,0).
func twoBlocks(t *testing.T) (*Model, string, string) {
	t.Helper()
	m := New()
	a := m.CreateBlock(KindLogical, 0, 0, "")
	b := m.CreateBlock(KindLogical, 300, 0, "")
	for _, id := range []string{a, b} {
		blk, _ := m.Block(id)
		blk.Width, blk.Height = 100, 100
	}
	return m, a, b
}

func TestEndpointsBoundaryFallback(t *testing.T) {
	m, a, b := twoBlocks(t)
	id := m.CreateConnection(a, b, "", "")

	c, _ := m.Connection(id)
	from, to, ok := m.Endpoints(c)
	if !ok {
		t.Fatal("Endpoints not resolvable")
	}
	if from.X != 100 || from.Y != 50 {
		t.Errorf("from = %v, want (100, 50)", from)
	}
	if to.X != 300 || to.Y != 50 {
		t.Errorf("to = %v, want (300, 50)", to)
	}
}

func TestEndpointsBoundPort(t *testing.T) {
	m, a, b := twoBlocks(t)
	blkA, _ := m.Block(a)
	blkA.HeaderHeight = 40

	port, err := m.CreatePort(a, "out", SideRight)
	if err != nil {
		t.Fatal(err)
	}
	id := m.CreateConnection(a, b, port, "")

	c, _ := m.Connection(id)
	from, _, ok := m.Endpoints(c)
	if !ok {
		t.Fatal("Endpoints not resolvable")
	}
	// Port position, not boundary fallback: (100, 40 + 60*0.5) = (100, 70).
	if from.X != 100 || from.Y != 70 {
		t.Errorf("from = %v, want (100, 70)", from)
	}
}

func TestEndpointsStalePortFallsBack(t *testing.T) {
	m, a, b := twoBlocks(t)
	id := m.CreateConnection(a, b, "port_42", "")

	c, _ := m.Connection(id)
	from, _, ok := m.Endpoints(c)
	if !ok {
		t.Fatal("Endpoints not resolvable")
	}
	if from.X != 100 || from.Y != 50 {
		t.Errorf("stale port endpoint = %v, want boundary point (100, 50)", from)
	}
}

func TestEndpointsMissingBlock(t *testing.T) {
	m, a, _ := twoBlocks(t)
	id := m.CreateConnection(a, "block_42", "", "")

	c, _ := m.Connection(id)
	if _, _, ok := m.Endpoints(c); ok {
		t.Error("Endpoints should not resolve with a missing block")
	}
}

func TestEndpointsCoincidentCenters(t *testing.T) {
	m := New()
	a := m.CreateBlock(KindLogical, 0, 0, "")
	b := m.CreateBlock(KindLogical, 0, 0, "")
	id := m.CreateConnection(a, b, "", "")

	c, _ := m.Connection(id)
	from, _, ok := m.Endpoints(c)
	if !ok {
		t.Fatal("Endpoints not resolvable")
	}
	center := mustBlock(t, m, a).Center()
	if from != center {
		t.Errorf("degenerate direction endpoint = %v, want own center %v", from, center)
	}
}

func TestConnectionAtTolerance(t *testing.T) {
	m, a, b := twoBlocks(t)
	id := m.CreateConnection(a, b, "", "") // segment (100,50)–(300,50)

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"on the segment", 200, 50, true},
		{"9.9 units away", 200, 59.9, true},
		{"10.1 units away", 200, 60.1, false},
		{"near endpoint", 100, 55, true},
		{"far beyond endpoint", 500, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := m.ConnectionAt(tt.x, tt.y, 0)
			if ok != tt.hit {
				t.Fatalf("ConnectionAt(%v, %v) hit = %v, want %v", tt.x, tt.y, ok, tt.hit)
			}
			if ok && c.ID != id {
				t.Errorf("ConnectionAt returned %s, want %s", c.ID, id)
			}
		})
	}
}

func TestConnectionAtSkipsDanglingConnections(t *testing.T) {
	m, a, _ := twoBlocks(t)
	m.CreateConnection(a, "block_42", "", "")

	if _, ok := m.ConnectionAt(200, 50, 0); ok {
		t.Error("connection with missing endpoint must never be hit")
	}
}

func TestDeleteConnection(t *testing.T) {
	m, a, b := twoBlocks(t)
	id := m.CreateConnection(a, b, "", "")

	if err := m.DeleteConnection(id); err != nil {
		t.Fatalf("DeleteConnection: %v", err)
	}
	if err := m.DeleteConnection(id); err == nil {
		t.Error("second delete should report not found")
	}
}

func TestConnectionsFor(t *testing.T) {
	m, a, b := twoBlocks(t)
	c := m.CreateBlock(KindLogical, 600, 0, "")

	first := m.CreateConnection(a, b, "", "")
	second := m.CreateConnection(b, c, "", "")
	m.CreateConnection(c, c, "", "")

	got := m.ConnectionsFor(b)
	if len(got) != 2 || got[0].ID != first || got[1].ID != second {
		t.Errorf("ConnectionsFor = %v, want [%s %s]", got, first, second)
	}
}

func mustBlock(t *testing.T, m *Model, id string) *Block {
	t.Helper()
	b, ok := m.Block(id)
	if !ok {
		t.Fatalf("block %s not found", id)
	}
	return b
}

func TestSegmentDistanceSymmetry(t *testing.T) {
	// The hit test must use segment distance, not line distance: a point
	// past the segment end is measured to the endpoint.
	m, a, b := twoBlocks(t)
	m.CreateConnection(a, b, "", "")

	// (309, 50) is 9 units past the "to" endpoint along the line.
	if _, ok := m.ConnectionAt(309, 50, 0); !ok {
		t.Error("point within tolerance of the endpoint should hit")
	}
	if _, ok := m.ConnectionAt(311, 50, 0); ok {
		t.Error("point beyond tolerance of the endpoint should miss")
	}
}
