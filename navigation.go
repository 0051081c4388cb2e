package soup

import "fmt"

// ============================================================================
// Parents and children
// ============================================================================

// Parent returns the node containing n, or nil for detached nodes and
// documents.
func (n *Node) Parent() *Node {
	return n.parent
}

// Parents returns every ancestor of n, nearest first. For nodes in a
// parsed document the last entry is the document itself.
func (n *Node) Parents() []*Node {
	var parents []*Node
	for p := n.parent; p != nil; p = p.parent {
		parents = append(parents, p)
	}
	return parents
}

// Children returns a copy of n's direct children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildAt returns the child at index i.
func (n *Node) ChildAt(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: child %d of %d", ErrIndexOutOfRange, i, len(n.children))
	}
	return n.children[i], nil
}

// FirstChild returns the first child of n, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child of n, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// Index returns the position of child among n's children. Children are
// compared by identity, not by Equal.
func (n *Node) Index(child *Node) (int, error) {
	for i, c := range n.children {
		if c == child {
			return i, nil
		}
	}
	return -1, ErrNotChild
}

// Descendants returns every node below n in document order, not
// including n.
func (n *Node) Descendants() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// isAncestorOf reports whether n contains other somewhere below it.
func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// ============================================================================
// Siblings
// ============================================================================

func (n *Node) siblingIndex() int {
	if n.parent == nil {
		return -1
	}
	i, _ := n.parent.Index(n)
	return i
}

// NextSibling returns the node following n in its parent, or nil.
func (n *Node) NextSibling() *Node {
	i := n.siblingIndex()
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// PreviousSibling returns the node preceding n in its parent, or nil.
func (n *Node) PreviousSibling() *Node {
	i := n.siblingIndex()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// NextSiblings returns every node after n in its parent, nearest first.
func (n *Node) NextSiblings() []*Node {
	i := n.siblingIndex()
	if i < 0 {
		return nil
	}
	out := make([]*Node, len(n.parent.children)-i-1)
	copy(out, n.parent.children[i+1:])
	return out
}

// PreviousSiblings returns every node before n in its parent, nearest
// first.
func (n *Node) PreviousSiblings() []*Node {
	i := n.siblingIndex()
	if i < 0 {
		return nil
	}
	out := make([]*Node, 0, i)
	for j := i - 1; j >= 0; j-- {
		out = append(out, n.parent.children[j])
	}
	return out
}

// ============================================================================
// Document order
// ============================================================================

// NextElement returns the node parsed immediately after n: its first
// child, else the next sibling of n or of its nearest ancestor having one.
func (n *Node) NextElement() *Node {
	if len(n.children) > 0 {
		return n.children[0]
	}
	for cur := n; cur != nil; cur = cur.parent {
		if s := cur.NextSibling(); s != nil {
			return s
		}
	}
	return nil
}

// PreviousElement returns the node parsed immediately before n.
func (n *Node) PreviousElement() *Node {
	if p := n.PreviousSibling(); p != nil {
		for len(p.children) > 0 {
			p = p.children[len(p.children)-1]
		}
		return p
	}
	if n.parent != nil && n.parent.Type != DocumentNode {
		return n.parent
	}
	return nil
}

// NextElements returns every node after n in document order.
func (n *Node) NextElements() []*Node {
	var out []*Node
	for e := n.NextElement(); e != nil; e = e.NextElement() {
		out = append(out, e)
	}
	return out
}

// PreviousElements returns every node before n in document order, nearest
// first.
func (n *Node) PreviousElements() []*Node {
	var out []*Node
	for e := n.PreviousElement(); e != nil; e = e.PreviousElement() {
		out = append(out, e)
	}
	return out
}

// ============================================================================
// Shortcuts
// ============================================================================

// StringNode returns the only string below n. If n has exactly one child
// and that child is a string it is returned; if the child is an element
// the search continues inside it. Otherwise StringNode returns nil. For a
// string node, the node itself is returned.
func (n *Node) StringNode() *Node {
	if !n.isContainer() {
		return n
	}
	if len(n.children) != 1 {
		return nil
	}
	c := n.children[0]
	if c.isContainer() {
		return c.StringNode()
	}
	return c
}

// First returns the first descendant element named name, or nil.
func (n *Node) First(name string) *Node {
	return n.Find(Tag(name))
}
