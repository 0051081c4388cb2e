package soup

import "strings"

// Attrs returns a copy of the element's attributes in source order.
func (n *Node) Attrs() []Attribute {
	if n.attrs == nil {
		return nil
	}
	out := make([]Attribute, len(n.attrs))
	for i, a := range n.attrs {
		out[i] = cloneAttribute(a)
	}
	return out
}

// Attr returns the attribute named key.
func (n *Node) Attr(key string) (Attribute, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return cloneAttribute(a), true
		}
	}
	return Attribute{}, false
}

// HasAttr reports whether the element carries attribute key.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Get returns the value of attribute key. Multi-valued attributes are
// joined with a single space.
func (n *Node) Get(key string) (string, bool) {
	a, ok := n.Attr(key)
	if !ok {
		return "", false
	}
	return a.Value(), true
}

// GetOr returns the value of attribute key, or def when it is missing.
func (n *Node) GetOr(key, def string) string {
	if v, ok := n.Get(key); ok {
		return v
	}
	return def
}

// GetList returns attribute key as a list: the split values of a
// multi-valued attribute, or a one element list otherwise.
func (n *Node) GetList(key string) ([]string, bool) {
	a, ok := n.Attr(key)
	if !ok {
		return nil, false
	}
	if a.IsMulti() {
		return a.List, true
	}
	return []string{a.Val}, true
}

// SetAttr sets attribute key, splitting the value if the document treats
// key as multi-valued for this element.
func (n *Node) SetAttr(key, val string) {
	n.setAttribute(n.config().SplitAttribute(n.Name, Attribute{Key: key, Val: val}))
}

// SetAttrList sets key as a multi-valued attribute.
func (n *Node) SetAttrList(key string, vals []string) {
	list := append([]string{}, vals...)
	n.setAttribute(Attribute{Key: key, List: list})
}

func (n *Node) setAttribute(a Attribute) {
	if n.Type != ElementNode {
		return
	}
	for i := range n.attrs {
		if n.attrs[i].Key == a.Key {
			n.attrs[i] = a
			return
		}
	}
	n.attrs = append(n.attrs, a)
}

// DelAttr removes attribute key. It reports whether the attribute existed.
func (n *Node) DelAttr(key string) bool {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// HasClass reports whether class is one of the element's classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.GetOr("class", "")) {
		if c == class {
			return true
		}
	}
	return false
}
