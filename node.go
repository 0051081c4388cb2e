package soup

import (
	"github.com/tsawler/soup/builder"
)

// NodeType identifies the kind of a Node.
type NodeType uint32

const (
	// DocumentNode is the hidden root of a parsed document.
	DocumentNode NodeType = iota
	// ElementNode is a tag.
	ElementNode
	// TextNode is an ordinary string.
	TextNode
	// CommentNode is <!--...-->.
	CommentNode
	// CDataNode is <![CDATA[...]]>.
	CDataNode
	// DoctypeNode is <!DOCTYPE ...>.
	DoctypeNode
	// DeclarationNode is any other <!...> declaration.
	DeclarationNode
	// ProcessingInstructionNode is <?...>.
	ProcessingInstructionNode
)

// String returns the name of the node type.
func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case CDataNode:
		return "CData"
	case DoctypeNode:
		return "Doctype"
	case DeclarationNode:
		return "Declaration"
	case ProcessingInstructionNode:
		return "ProcessingInstruction"
	default:
		return "Unknown"
	}
}

// documentName is the name carried by document nodes.
const documentName = "[document]"

// Attribute is a single element attribute. List is non-nil when the
// attribute is multi-valued (class, rel, ...).
type Attribute = builder.Attribute

// Node is an element, string or document in a parse tree.
//
// Tree structure is only changed through the mutation methods, which keep
// parent and child links consistent.
type Node struct {
	Type NodeType

	// Name is the tag name of an element. Documents are named "[document]".
	Name string

	// Prefix is the namespace prefix of an XML element.
	Prefix string

	// Namespace is the namespace of a foreign (svg, math) HTML5 element.
	Namespace string

	// Data is the content of a string, comment, doctype, declaration,
	// CDATA section or processing instruction.
	Data string

	attrs    []Attribute
	parent   *Node
	children []*Node

	cfg *builder.Config

	// container is the string-container tag (script, style, template) a
	// string was parsed inside, or "".
	container string

	decomposed bool
}

// Child is anything that can be inserted into a tree: a *Node, a
// *Document (whose children are inserted) or a Text string.
type Child interface {
	asNode() *Node
}

func (n *Node) asNode() *Node { return n }

// Text is a plain string to be inserted into a tree.
type Text string

func (t Text) asNode() *Node { return NewString(string(t)) }

var htmlDefaults = builder.DefaultHTMLConfig()

// NewElement creates a detached HTML element.
func NewElement(name string, attrs ...Attribute) *Node {
	return newElement(&htmlDefaults, name, "", attrs)
}

func newElement(cfg *builder.Config, name, prefix string, attrs []Attribute) *Node {
	n := &Node{
		Type:   ElementNode,
		Name:   name,
		Prefix: prefix,
		cfg:    cfg,
	}
	for _, a := range attrs {
		n.attrs = append(n.attrs, cfg.SplitAttribute(name, a))
	}
	return n
}

// NewString creates a detached string node.
func NewString(s string) *Node {
	return &Node{Type: TextNode, Data: s}
}

// NewComment creates a detached comment node.
func NewComment(s string) *Node {
	return &Node{Type: CommentNode, Data: s}
}

func newDataNode(t NodeType, data string) *Node {
	return &Node{Type: t, Data: data}
}

func (n *Node) config() *builder.Config {
	if n.cfg == nil {
		return &htmlDefaults
	}
	return n.cfg
}

// IsElement reports whether n is a tag.
func (n *Node) IsElement() bool {
	return n != nil && n.Type == ElementNode
}

// IsString reports whether n is any kind of string node.
func (n *Node) IsString() bool {
	return n != nil && n.Type != ElementNode && n.Type != DocumentNode
}

// isContainer reports whether n may hold children.
func (n *Node) isContainer() bool {
	return n.Type == ElementNode || n.Type == DocumentNode
}

// QualifiedName returns "prefix:name" for prefixed elements, else Name.
func (n *Node) QualifiedName() string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Name
	}
	return n.Name
}

// SetName renames an element.
func (n *Node) SetName(name string) {
	n.Name = name
}

// IsEmptyElement reports whether n is an element with no children that is
// allowed to be written in self-closed form.
func (n *Node) IsEmptyElement() bool {
	return n.Type == ElementNode && len(n.children) == 0 && n.config().IsEmptyElement(n.Name)
}

// Decomposed reports whether Decompose destroyed n.
func (n *Node) Decomposed() bool {
	return n.decomposed
}

// Equal reports whether n and other have the same structure: same type,
// name, attributes (in any order) and recursively equal children. Strings
// compare by content.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil || n.Type != other.Type {
		return false
	}
	if !n.isContainer() {
		return n.Data == other.Data
	}
	if n.Name != other.Name || n.Prefix != other.Prefix {
		return false
	}
	if len(n.attrs) != len(other.attrs) || len(n.children) != len(other.children) {
		return false
	}
	for _, a := range n.attrs {
		b, ok := other.Attr(a.Key)
		if !ok || a.Value() != b.Value() {
			return false
		}
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a detached deep copy of n.
func (n *Node) Clone() *Node {
	c := &Node{
		Type:       n.Type,
		Name:       n.Name,
		Prefix:     n.Prefix,
		Namespace:  n.Namespace,
		Data:       n.Data,
		cfg:        n.cfg,
		container:  n.container,
		decomposed: n.decomposed,
	}
	if n.attrs != nil {
		c.attrs = make([]Attribute, len(n.attrs))
		for i, a := range n.attrs {
			c.attrs[i] = cloneAttribute(a)
		}
	}
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

func cloneAttribute(a Attribute) Attribute {
	if a.List != nil {
		a.List = append([]string{}, a.List...)
	}
	return a
}
