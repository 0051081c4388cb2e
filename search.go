package soup

import "strings"

// Query is a compiled set of search filters. All filters must match.
type Query struct {
	name      Matcher
	attrs     []attrFilter
	str       Matcher
	where     func(*Node) bool
	limit     int
	recursive bool
}

type attrFilter struct {
	key string
	m   Matcher
}

// QueryOption configures a Query.
type QueryOption func(*Query)

// NewQuery builds a Query from opts.
func NewQuery(opts ...QueryOption) *Query {
	q := &Query{recursive: true}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Name filters elements by tag name. Prefixed XML elements also match on
// their "prefix:name" form.
func Name(m Matcher) QueryOption {
	return func(q *Query) { q.name = m }
}

// Tag filters elements whose name is one of names.
func Tag(names ...string) QueryOption {
	if len(names) == 1 {
		return Name(Eq(names[0]))
	}
	return Name(In(names...))
}

// Attr filters elements by the value of attribute key. Use Any to require
// the attribute and Absent to forbid it.
func Attr(key string, m Matcher) QueryOption {
	return func(q *Query) { q.attrs = append(q.attrs, attrFilter{key: key, m: m}) }
}

// Class filters elements by CSS class. A single class or the complete
// class attribute value may match.
func Class(m Matcher) QueryOption {
	return Attr("class", m)
}

// ID filters elements by their id attribute.
func ID(m Matcher) QueryOption {
	return Attr("id", m)
}

// WithString filters by string content. Combined with element filters it
// requires the element's single string (see Node.StringNode) to match;
// on its own it makes the search return matching strings instead of
// elements.
func WithString(m Matcher) QueryOption {
	return func(q *Query) { q.str = m }
}

// Where filters elements with an arbitrary predicate.
func Where(f func(*Node) bool) QueryOption {
	return func(q *Query) { q.where = f }
}

// Limit stops the search after n results. Zero or less means no limit.
func Limit(n int) QueryOption {
	return func(q *Query) { q.limit = n }
}

// NonRecursive restricts FindAll and Find to direct children.
func NonRecursive() QueryOption {
	return func(q *Query) { q.recursive = false }
}

// searchesStrings reports whether the query looks for strings rather than
// elements.
func (q *Query) searchesStrings() bool {
	return q.str != nil && q.name == nil && len(q.attrs) == 0 && q.where == nil
}

// Matches reports whether n satisfies the query.
func (q *Query) Matches(n *Node) bool {
	if n == nil {
		return false
	}
	if q.searchesStrings() {
		return n.IsString() && q.str.Match(n.Data, true)
	}
	return q.matchElement(n, true)
}

// matchElement tests n against the element filters. withString controls
// whether the string filter is applied.
func (q *Query) matchElement(n *Node, withString bool) bool {
	if n.Type != ElementNode {
		return false
	}
	if q.name != nil && !q.name.Match(n.Name, true) {
		if n.Prefix == "" || !q.name.Match(n.QualifiedName(), true) {
			return false
		}
	}
	for _, f := range q.attrs {
		a, ok := n.Attr(f.key)
		if !matchAttribute(f.m, a, ok) {
			return false
		}
	}
	if q.where != nil && !q.where(n) {
		return false
	}
	if withString && q.str != nil {
		s := n.StringNode()
		if s == nil || !q.str.Match(s.Data, true) {
			return false
		}
	}
	return true
}

func (q *Query) collect(candidates []*Node) ResultSet {
	var out ResultSet
	for _, c := range candidates {
		if !q.Matches(c) {
			continue
		}
		out = append(out, c)
		if q.limit > 0 && len(out) >= q.limit {
			break
		}
	}
	return out
}

// ResultSet is the ordered result of a search.
type ResultSet []*Node

// String renders the results as "[a, b]".
func (r ResultSet) String() string {
	parts := make([]string, len(r))
	for i, n := range r {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// First returns the first result, or nil.
func (r ResultSet) First() *Node {
	if len(r) == 0 {
		return nil
	}
	return r[0]
}

// ============================================================================
// Find family
// ============================================================================

// FindAll returns every descendant (or, with NonRecursive, every child)
// matching the query, in document order.
func (n *Node) FindAll(opts ...QueryOption) ResultSet {
	q := NewQuery(opts...)
	if q.recursive {
		return q.collect(n.Descendants())
	}
	return q.collect(n.children)
}

// Find returns the first match of FindAll, or nil.
func (n *Node) Find(opts ...QueryOption) *Node {
	return n.FindAll(firstOnly(opts)...).First()
}

// FindParents returns every ancestor matching the query, nearest first.
func (n *Node) FindParents(opts ...QueryOption) ResultSet {
	return NewQuery(opts...).collect(n.Parents())
}

// FindParent returns the nearest matching ancestor, or nil.
func (n *Node) FindParent(opts ...QueryOption) *Node {
	return n.FindParents(firstOnly(opts)...).First()
}

// FindNextSiblings returns every following sibling matching the query.
func (n *Node) FindNextSiblings(opts ...QueryOption) ResultSet {
	return NewQuery(opts...).collect(n.NextSiblings())
}

// FindNextSibling returns the nearest matching following sibling, or nil.
func (n *Node) FindNextSibling(opts ...QueryOption) *Node {
	return n.FindNextSiblings(firstOnly(opts)...).First()
}

// FindPreviousSiblings returns every preceding sibling matching the
// query, nearest first.
func (n *Node) FindPreviousSiblings(opts ...QueryOption) ResultSet {
	return NewQuery(opts...).collect(n.PreviousSiblings())
}

// FindPreviousSibling returns the nearest matching preceding sibling, or
// nil.
func (n *Node) FindPreviousSibling(opts ...QueryOption) *Node {
	return n.FindPreviousSiblings(firstOnly(opts)...).First()
}

// FindAllNext returns every node after n in document order matching the
// query.
func (n *Node) FindAllNext(opts ...QueryOption) ResultSet {
	return NewQuery(opts...).collect(n.NextElements())
}

// FindNext returns the first node after n matching the query, or nil.
func (n *Node) FindNext(opts ...QueryOption) *Node {
	return n.FindAllNext(firstOnly(opts)...).First()
}

// FindAllPrevious returns every node before n in document order matching
// the query, nearest first.
func (n *Node) FindAllPrevious(opts ...QueryOption) ResultSet {
	return NewQuery(opts...).collect(n.PreviousElements())
}

// FindPrevious returns the first node before n matching the query, or
// nil.
func (n *Node) FindPrevious(opts ...QueryOption) *Node {
	return n.FindAllPrevious(firstOnly(opts)...).First()
}

// firstOnly returns opts plus Limit(1) without writing past len(opts).
func firstOnly(opts []QueryOption) []QueryOption {
	return append(opts[:len(opts):len(opts)], Limit(1))
}
