package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockforge/blockforge/pkg/model"
)

func browseFixture(t *testing.T) browseModel {
	t.Helper()
	m := model.New()
	root := m.CreateBlock(model.KindLogical, 0, 0, "")
	child := m.CreateBlock(model.KindFunctional, 0, 0, root)
	m.CreateBlock(model.KindFunctional, 0, 0, child)
	m.CreateBlock(model.KindLogical, 500, 0, "")
	return newBrowseModel(m, "test.json")
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, bm browseModel, keys ...string) browseModel {
	t.Helper()
	var m tea.Model = bm
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m.(browseModel)
}

func TestBrowseRowsFollowVisibility(t *testing.T) {
	bm := browseFixture(t)

	// Fully expanded: both roots and the nested chain.
	if len(bm.rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(bm.rows))
	}
	if bm.rows[0].depth != 0 || bm.rows[1].depth != 1 || bm.rows[2].depth != 2 {
		t.Errorf("depths = %v", bm.rows)
	}

	// Collapsing the first root hides its subtree.
	bm = update(t, bm, "enter")
	if len(bm.rows) != 2 {
		t.Errorf("rows after collapse = %d, want 2", len(bm.rows))
	}
	if !bm.dirty {
		t.Error("toggle should mark the model dirty")
	}

	// Expanding again restores the subtree.
	bm = update(t, bm, "enter")
	if len(bm.rows) != 4 {
		t.Errorf("rows after expand = %d, want 4", len(bm.rows))
	}
}

func TestBrowseNavigationBounds(t *testing.T) {
	bm := browseFixture(t)

	bm = update(t, bm, "k")
	if bm.cursor != 0 {
		t.Errorf("cursor = %d, up from top should stay", bm.cursor)
	}

	bm = update(t, bm, "j", "j", "j", "j", "j")
	if bm.cursor != 3 {
		t.Errorf("cursor = %d, down past bottom should clamp to 3", bm.cursor)
	}
}

func TestBrowseDeleteCascades(t *testing.T) {
	bm := browseFixture(t)

	// Delete the first root: its whole subtree disappears.
	bm = update(t, bm, "d")
	if len(bm.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(bm.rows))
	}
	if bm.model.BlockCount() != 1 {
		t.Errorf("blocks = %d, want 1", bm.model.BlockCount())
	}
	if bm.cursor != 0 {
		t.Errorf("cursor = %d, want 0", bm.cursor)
	}
}

func TestBrowseCollapseExpandAll(t *testing.T) {
	bm := browseFixture(t)

	bm = update(t, bm, "C")
	if len(bm.rows) != 2 {
		t.Errorf("rows after collapse all = %d, want 2", len(bm.rows))
	}

	bm = update(t, bm, "E")
	if len(bm.rows) != 4 {
		t.Errorf("rows after expand all = %d, want 4", len(bm.rows))
	}
}

func TestBrowseLayoutMarksDirty(t *testing.T) {
	bm := browseFixture(t)

	bm = update(t, bm, "l")
	if !bm.dirty {
		t.Error("layout should mark the model dirty")
	}

	child, _ := bm.model.Block("block_1")
	if child.X == 0 && child.Y == 0 {
		t.Error("layout should have positioned the child")
	}
}
