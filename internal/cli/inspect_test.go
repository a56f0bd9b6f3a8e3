package cli

import (
	"strings"
	"testing"

	"github.com/blockforge/blockforge/pkg/model"
)

func inspectFixture(t *testing.T) *model.Model {
	t.Helper()
	m := model.New()
	root := m.CreateBlock(model.KindLogical, 0, 0, "")
	child := m.CreateBlock(model.KindFunctional, 0, 0, root)
	m.CreateBlock(model.KindFunctional, 0, 0, child)
	if _, err := m.CreatePort(root, "out", model.SideRight); err != nil {
		t.Fatal(err)
	}
	m.CreateConnection(root, child, "", "")
	return m
}

func TestCollectStats(t *testing.T) {
	s := collectStats(inspectFixture(t))

	if s.blocks != 3 || s.logical != 1 || s.functional != 2 {
		t.Errorf("blocks = %d (%d logical, %d functional)", s.blocks, s.logical, s.functional)
	}
	if s.ports != 1 {
		t.Errorf("ports = %d, want 1", s.ports)
	}
	if s.connections != 1 {
		t.Errorf("connections = %d, want 1", s.connections)
	}
	if s.maxDepth != 3 {
		t.Errorf("maxDepth = %d, want 3", s.maxDepth)
	}
}

func TestRenderTree(t *testing.T) {
	tree := renderTree(inspectFixture(t))

	for _, want := range []string{"Logical 1", "Functional 2", "Functional 3", "block_0", "└── "} {
		if !strings.Contains(tree, want) {
			t.Errorf("tree missing %q:\n%s", want, tree)
		}
	}

	// Grandchild is indented deeper than its parent.
	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("tree lines = %d, want 3:\n%s", len(lines), tree)
	}
	if strings.Index(lines[2], "└──") <= strings.Index(lines[1], "└──") {
		t.Errorf("grandchild not indented:\n%s", tree)
	}
}

func TestRenderTreeMarksCollapsed(t *testing.T) {
	m := inspectFixture(t)
	if err := m.ToggleContent("block_0"); err != nil {
		t.Fatal(err)
	}

	tree := renderTree(m)
	if !strings.Contains(tree, "collapsed") {
		t.Errorf("collapsed container not marked:\n%s", tree)
	}
}
