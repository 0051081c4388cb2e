package soup

import (
	"strings"

	"github.com/tsawler/soup/builder"
)

// Document is a parsed document. It embeds the hidden root node, so every
// navigation, search, mutation and output method of Node is available on
// it directly.
type Document struct {
	*Node

	builderName      string
	originalEncoding string
	warnings         []Warning
}

func newDocument(cfg *builder.Config, builderName string) *Document {
	root := &Node{
		Type: DocumentNode,
		Name: documentName,
		cfg:  cfg,
	}
	return &Document{Node: root, builderName: builderName}
}

func (d *Document) asNode() *Node {
	if d == nil {
		return nil
	}
	return d.Node
}

// NewTag creates a detached element that follows this document's attribute
// and void element rules.
func (d *Document) NewTag(name string, attrs ...Attribute) *Node {
	prefix := ""
	if d.IsXML() {
		if p, local, ok := strings.Cut(name, ":"); ok && p != "" {
			prefix, name = p, local
		}
	}
	return newElement(d.cfg, name, prefix, attrs)
}

// NewString creates a detached string node.
func (d *Document) NewString(s string) *Node {
	n := NewString(s)
	n.cfg = d.cfg
	return n
}

// NewComment creates a detached comment node.
func (d *Document) NewComment(s string) *Node {
	n := NewComment(s)
	n.cfg = d.cfg
	return n
}

// OriginalEncoding returns the encoding the input bytes were decoded from.
// It is empty when the document was parsed from a string.
func (d *Document) OriginalEncoding() string {
	return d.originalEncoding
}

// IsXML reports whether the document was built by an XML builder.
func (d *Document) IsXML() bool {
	return d.config().XML
}

// BuilderName returns the name of the tree builder that parsed the
// document.
func (d *Document) BuilderName() string {
	return d.builderName
}

// Warnings returns the non-fatal issues reported while parsing.
func (d *Document) Warnings() []Warning {
	return append([]Warning(nil), d.warnings...)
}
