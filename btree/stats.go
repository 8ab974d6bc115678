package btree

// Stats is a point-in-time summary of the tree's shape.
type Stats struct {
	Degree     int `json:"degree"`
	Height     int `json:"height"`
	Keys       int `json:"keys"`
	Nodes      int `json:"nodes"`
	Leaves     int `json:"leaves"`
	Splits     int `json:"splits"`
	RootSplits int `json:"root_splits"`
}

// Stats walks the tree and returns its current statistics.
func (t *Tree[K]) Stats() Stats {
	s := Stats{
		Degree:     t.degree,
		Height:     t.height,
		Keys:       t.size,
		Splits:     t.splits,
		RootSplits: t.rootSplits,
	}
	t.Walk(func(n *Node[K], _ int) bool {
		s.Nodes++
		if n.leaf {
			s.Leaves++
		}
		return true
	})
	return s
}
