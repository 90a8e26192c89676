package core

// Path is an ordered sequence of node IDs from source to destination.
// Consecutive entries are adjacent in the graph; a Path never repeats a node.
type Path []string

// Hops returns the number of links traversed (len-1), or 0 for an empty path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Source returns the first node, or "" for an empty path.
func (p Path) Source() string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}

// Destination returns the last node, or "" for an empty path.
func (p Path) Destination() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// NextHop returns the node following the source, or "" if the path has fewer
// than two nodes.
func (p Path) NextHop() string {
	if len(p) < 2 {
		return ""
	}

	return p[1]
}

// Intermediates returns the nodes strictly between source and destination.
// The returned slice aliases p.
func (p Path) Intermediates() []string {
	if len(p) < 3 {
		return nil
	}

	return p[1 : len(p)-1]
}

// Reverse returns a new path with the order of p reversed.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, id := range p {
		out[len(p)-1-i] = id
	}

	return out
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Equal reports whether p and q visit the same nodes in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Less orders paths by hop count, then lexicographically node by node.
func (p Path) Less(q Path) bool {
	if len(p) != len(q) {
		return len(p) < len(q)
	}
	for i := range p {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}

	return false
}
