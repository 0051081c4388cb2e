package soup

import "fmt"

// ============================================================================
// Insertion
// ============================================================================

// Insert places child at position i among n's children. Positions past
// the end append. A child that already has a parent is moved; when it is
// already a child of n the position is interpreted as if it had been
// removed first. Inserting a *Document inserts its children in order.
func (n *Node) Insert(i int, child Child) error {
	if child == nil {
		return ErrNilNode
	}
	if n.decomposed {
		return ErrDecomposed
	}
	if !n.isContainer() {
		return fmt.Errorf("%w: %s", ErrNotContainer, n.Type)
	}
	if i < 0 {
		return fmt.Errorf("%w: cannot insert at %d", ErrIndexOutOfRange, i)
	}

	c := child.asNode()
	if c == nil {
		return ErrNilNode
	}
	if c.Type == DocumentNode {
		for k, grandchild := range c.Children() {
			if err := n.Insert(i+k, grandchild); err != nil {
				return err
			}
		}
		return nil
	}
	if c == n {
		return ErrInsertSelf
	}
	if c.isAncestorOf(n) {
		return ErrInsertAncestor
	}

	if i > len(n.children) {
		i = len(n.children)
	}
	if c.parent == n {
		if cur, _ := n.Index(c); cur < i {
			i--
		}
	}
	c.Extract()

	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	c.parent = n
	return nil
}

// Append adds child after n's last child.
func (n *Node) Append(child Child) error {
	return n.Insert(len(n.children), child)
}

// Extend appends each child in order.
func (n *Node) Extend(children ...Child) error {
	for _, c := range children {
		if err := n.Append(c); err != nil {
			return err
		}
	}
	return nil
}

// insertionNodes resolves children to the nodes they insert, in order. A
// *Document stands for its children. Every argument is checked before
// anything in the tree moves.
func (n *Node) insertionNodes(children []Child, ancestorErr error) ([]*Node, error) {
	nodes := make([]*Node, 0, len(children))
	for _, child := range children {
		if child == nil {
			return nil, ErrNilNode
		}
		c := child.asNode()
		if c == nil {
			return nil, ErrNilNode
		}
		if c.decomposed {
			return nil, ErrDecomposed
		}
		if c.isAncestorOf(n) {
			return nil, ancestorErr
		}
		if c.Type == DocumentNode {
			nodes = append(nodes, c.Children()...)
			continue
		}
		nodes = append(nodes, c)
	}
	return nodes, nil
}

// InsertBefore places each child immediately before n, keeping their
// order.
func (n *Node) InsertBefore(children ...Child) error {
	parent := n.parent
	if parent == nil {
		return fmt.Errorf("%w: nothing to insert before", ErrNotInTree)
	}
	nodes, err := n.insertionNodes(children, ErrInsertAncestor)
	if err != nil {
		return err
	}
	for _, c := range nodes {
		if c == n {
			return ErrInsertSelf
		}
	}

	for _, c := range nodes {
		if c.parent == parent {
			c.Extract()
		}
		i, err := parent.Index(n)
		if err != nil {
			return err
		}
		if err := parent.Insert(i, c); err != nil {
			return err
		}
	}
	return nil
}

// InsertAfter places each child immediately after n, keeping their order.
func (n *Node) InsertAfter(children ...Child) error {
	parent := n.parent
	if parent == nil {
		return fmt.Errorf("%w: nothing to insert after", ErrNotInTree)
	}
	nodes, err := n.insertionNodes(children, ErrInsertAncestor)
	if err != nil {
		return err
	}
	for _, c := range nodes {
		if c == n {
			return ErrInsertSelf
		}
	}

	for k, c := range nodes {
		if c.parent == parent {
			c.Extract()
		}
		i, err := parent.Index(n)
		if err != nil {
			return err
		}
		if err := parent.Insert(i+1+k, c); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Removal and replacement
// ============================================================================

// Extract removes n from its parent and returns it. Detached nodes are
// returned unchanged.
func (n *Node) Extract() *Node {
	p := n.parent
	if p == nil {
		return n
	}
	if i, err := p.Index(n); err == nil {
		copy(p.children[i:], p.children[i+1:])
		p.children[len(p.children)-1] = nil
		p.children = p.children[:len(p.children)-1]
	}
	n.parent = nil
	return n
}

// ReplaceWith removes n and puts children in its place. It returns n.
func (n *Node) ReplaceWith(children ...Child) (*Node, error) {
	if len(children) == 0 {
		return nil, ErrNoReplacement
	}
	parent := n.parent
	if parent == nil {
		return nil, fmt.Errorf("%w: cannot replace a detached element", ErrNotInTree)
	}

	nodes, err := n.insertionNodes(children, ErrReplaceWithAncestor)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, ErrNoReplacement
	}
	if len(nodes) == 1 && nodes[0] == n {
		return n, nil
	}

	i, err := parent.Index(n)
	if err != nil {
		return nil, err
	}
	n.Extract()
	for k, c := range nodes {
		if err := parent.Insert(i+k, c); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Wrap replaces n with wrapper and moves n inside it. It returns wrapper.
func (n *Node) Wrap(wrapper *Node) (*Node, error) {
	if wrapper == nil {
		return nil, ErrNilNode
	}
	if wrapper.decomposed {
		return nil, ErrDecomposed
	}
	if !wrapper.isContainer() || wrapper.Type == DocumentNode {
		return nil, fmt.Errorf("%w: wrapper is a %s", ErrNotContainer, wrapper.Type)
	}
	if _, err := n.ReplaceWith(wrapper); err != nil {
		return nil, err
	}
	if err := wrapper.Append(n); err != nil {
		return nil, err
	}
	return wrapper, nil
}

// Unwrap replaces n with its own children. It returns the now empty n.
func (n *Node) Unwrap() (*Node, error) {
	parent := n.parent
	if parent == nil {
		return nil, fmt.Errorf("%w: cannot unwrap a detached element", ErrNotInTree)
	}
	i, err := parent.Index(n)
	if err != nil {
		return nil, err
	}
	n.Extract()

	children := n.Children()
	for k := len(children) - 1; k >= 0; k-- {
		if err := parent.Insert(i, children[k]); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Clear removes every child of n. With decompose set the children are
// destroyed as well.
func (n *Node) Clear(decompose bool) {
	for _, c := range n.Children() {
		if decompose {
			c.Decompose()
		} else {
			c.Extract()
		}
	}
}

// Decompose removes n from the tree and destroys it and everything below
// it: names, attributes, data and children are dropped and Decomposed
// reports true.
func (n *Node) Decompose() {
	n.Extract()
	n.destroy()
}

func (n *Node) destroy() {
	children := n.children
	n.Name = ""
	n.Prefix = ""
	n.Namespace = ""
	n.Data = ""
	n.attrs = nil
	n.children = nil
	n.parent = nil
	n.container = ""
	n.decomposed = true
	for _, c := range children {
		c.destroy()
	}
}

// ============================================================================
// Content shortcuts
// ============================================================================

// SetString replaces n's contents with a single string.
func (n *Node) SetString(s string) error {
	if !n.isContainer() {
		return fmt.Errorf("%w: %s", ErrNotContainer, n.Type)
	}
	n.Clear(false)
	return n.Append(Text(s))
}

// Smooth merges adjacent plain strings throughout the subtree, as left
// behind by repeated appends.
func (n *Node) Smooth() {
	if len(n.children) == 0 {
		return
	}

	merged := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if c.isContainer() {
			c.Smooth()
		}
		if k := len(merged); k > 0 && c.Type == TextNode && merged[k-1].Type == TextNode {
			merged[k-1].Data += c.Data
			c.parent = nil
			continue
		}
		merged = append(merged, c)
	}
	n.children = merged
}
