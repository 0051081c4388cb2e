package soup

// filterTree reduces root to the nodes matching q. Matching elements are
// kept whole and their descendants are not examined further.
func filterTree(root *Node, q *Query) {
	var keep []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		for _, c := range n.children {
			if q.Matches(c) {
				keep = append(keep, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)

	for _, c := range root.Children() {
		c.Extract()
	}
	for _, n := range keep {
		n.Extract()
		n.parent = root
		root.children = append(root.children, n)
	}
}
