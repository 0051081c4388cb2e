package soup

import "strings"

// stringKind returns the string container n answers for: its own name when
// n is a script, style or template element, otherwise "".
func (n *Node) stringKind() string {
	if n.Type == ElementNode && n.config().StringContainers[n.Name] {
		return n.Name
	}
	return ""
}

// Strings returns the text of every string below n in document order.
// Comments and other markup declarations are skipped, and so are strings
// inside script, style and template elements unless n is that element.
func (n *Node) Strings() []string {
	if n.Type == TextNode || n.Type == CDataNode {
		return []string{n.Data}
	}

	kind := n.stringKind()
	var out []string
	for _, d := range n.Descendants() {
		if d.Type != TextNode && d.Type != CDataNode {
			continue
		}
		if d.container != kind {
			continue
		}
		out = append(out, d.Data)
	}
	return out
}

// StrippedStrings is Strings with surrounding whitespace removed and empty
// strings dropped.
func (n *Node) StrippedStrings() []string {
	var out []string
	for _, s := range n.Strings() {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// GetText joins the strings below n with sep, optionally stripping each.
func (n *Node) GetText(sep string, strip bool) string {
	if strip {
		return strings.Join(n.StrippedStrings(), sep)
	}
	return strings.Join(n.Strings(), sep)
}

// Text returns all text below n concatenated.
func (n *Node) Text() string {
	return n.GetText("", false)
}
