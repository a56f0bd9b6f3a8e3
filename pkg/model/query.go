package model

// BlockAt returns the deepest visible block whose rectangle contains
// (x, y), or false when no visible block does. Depth is the nesting
// level; among equally deep candidates the smallest ID (creation order)
// wins so the query is deterministic — overlapping siblings are not a
// modeled scenario.
func (m *Model) BlockAt(x, y float64) (string, bool) {
	bestID := ""
	bestLevel := -1

	for _, b := range m.Blocks() {
		if !b.ContainsPoint(x, y) || !m.Visible(b.ID) {
			continue
		}
		if level := m.NestingLevel(b.ID); level > bestLevel {
			bestID = b.ID
			bestLevel = level
		}
	}

	return bestID, bestLevel >= 0
}
