package soup

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Select returns the descendants of n matching the CSS selector group css,
// in document order. Selectors are evaluated against the whole tree, so
// combinators may refer to ancestors of n.
//
// Example:
//
//	items, err := doc.Select("ul.menu > li a[href]")
func (n *Node) Select(css string) (ResultSet, error) {
	sel, err := cascadia.ParseGroup(css)
	if err != nil {
		return nil, fmt.Errorf("soup: invalid selector %q: %w", css, err)
	}

	top := n
	for top.parent != nil {
		top = top.parent
	}
	m := newMirror()
	m.build(top)

	var out ResultSet
	for _, hn := range cascadia.QueryAll(m.forward[n], sel) {
		if orig := m.back[hn]; orig != nil {
			out = append(out, orig)
		}
	}
	return out, nil
}

// SelectOne returns the first match of Select, or nil.
func (n *Node) SelectOne(css string) (*Node, error) {
	res, err := n.Select(css)
	if err != nil {
		return nil, err
	}
	return res.First(), nil
}

// mirror is a copy of a tree as x/net/html nodes, which is what the
// selector engine understands.
type mirror struct {
	forward map[*Node]*html.Node
	back    map[*html.Node]*Node
}

func newMirror() *mirror {
	return &mirror{
		forward: make(map[*Node]*html.Node),
		back:    make(map[*html.Node]*Node),
	}
}

func (m *mirror) build(n *Node) *html.Node {
	hn := &html.Node{}
	switch n.Type {
	case DocumentNode:
		hn.Type = html.DocumentNode
	case ElementNode:
		hn.Type = html.ElementNode
		hn.Data = n.QualifiedName()
		hn.DataAtom = atom.Lookup([]byte(hn.Data))
		hn.Namespace = n.Namespace
		hn.Attr = make([]html.Attribute, 0, len(n.attrs))
		for _, a := range n.attrs {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Value()})
		}
	case TextNode, CDataNode:
		hn.Type = html.TextNode
		hn.Data = n.Data
	case DoctypeNode:
		hn.Type = html.DoctypeNode
		hn.Data = n.Data
	default:
		hn.Type = html.CommentNode
		hn.Data = n.Data
	}

	m.forward[n] = hn
	m.back[hn] = n
	for _, c := range n.children {
		hn.AppendChild(m.build(c))
	}
	return hn
}
