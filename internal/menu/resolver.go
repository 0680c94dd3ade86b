package menu

// Resolve walks tree along segments. Each segment must equal the last path
// segment of a node at the current level. When segments remain but the
// matched node is a leaf, the leaf is returned.
func Resolve(tree []Node, segments []string) (*Node, bool) {
	if len(segments) == 0 {
		return nil, false
	}

	for i := range tree {
		n := &tree[i]
		if n.Segment() != segments[0] {
			continue
		}
		if len(segments) > 1 && n.HasChildren() {
			return Resolve(n.Children, segments[1:])
		}
		return n, true
	}
	return nil, false
}
