package soup

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/tsawler/soup/internal/decode"
)

// xmlDeclaration is written at the start of every XML document.
const xmlDeclaration = `<?xml version="1.0" encoding="%s"?>` + "\n"

// renderer writes a subtree as markup. level is the indentation level for
// pretty printing, or -1 for compact output.
type renderer struct {
	sb       strings.Builder
	f        *Formatter
	encoding string
}

func (n *Node) defaultFormatter() *Formatter {
	if n.config().XML {
		return XMLMinimalFormatter
	}
	return MinimalFormatter
}

func (n *Node) newRenderer(f *Formatter) *renderer {
	if f == nil {
		f = n.defaultFormatter()
	}
	return &renderer{f: f, encoding: "utf-8"}
}

// String renders n. Elements and documents render as markup; string nodes
// of every kind return their bare text, so a comment yields its content
// without the <!-- --> delimiters.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsString() {
		return n.Data
	}
	return n.Format(nil)
}

// Format renders n as compact markup using f. A nil f selects the minimal
// formatter.
func (n *Node) Format(f *Formatter) string {
	r := n.newRenderer(f)
	r.node(n, -1)
	return r.sb.String()
}

// Render writes the compact markup of n to w.
func (n *Node) Render(w io.Writer, f *Formatter) error {
	_, err := io.WriteString(w, n.Format(f))
	return err
}

// InnerHTML renders the children of n without n's own tags.
func (n *Node) InnerHTML() string {
	r := n.newRenderer(nil)
	r.contents(n, -1)
	return r.sb.String()
}

// Prettify renders n with one node per line, indented by nesting depth.
// Whitespace inside pre and textarea is left as it is.
func (n *Node) Prettify() string {
	return n.PrettifyWith(nil)
}

// PrettifyWith is Prettify using formatter f.
func (n *Node) PrettifyWith(f *Formatter) string {
	r := n.newRenderer(f)
	level := 1
	if n.Type == DocumentNode {
		level = 0
	}
	r.node(n, level)
	out := r.sb.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// Encode renders n and encodes the result in charset. Characters the
// charset cannot represent become numeric character references. XML
// documents declare charset in their XML declaration.
func (n *Node) Encode(charset string) ([]byte, error) {
	enc, name, err := decode.Lookup(charset)
	if err != nil {
		return nil, err
	}
	r := n.newRenderer(nil)
	r.encoding = name
	r.node(n, -1)

	out, err := encoding.HTMLEscapeUnsupported(enc.NewEncoder()).String(r.sb.String())
	if err != nil {
		return nil, fmt.Errorf("soup: encoding as %s: %w", name, err)
	}
	return []byte(out), nil
}

// ============================================================================
// Rendering
// ============================================================================

func (r *renderer) node(n *Node, level int) {
	switch n.Type {
	case DocumentNode:
		if n.config().XML {
			fmt.Fprintf(&r.sb, xmlDeclaration, r.encoding)
		}
		contentsLevel := -1
		if level >= 0 {
			contentsLevel = level + 1
		}
		r.contents(n, contentsLevel)
	case ElementNode:
		r.element(n, level)
	default:
		r.sb.WriteString(r.outputReady(n))
	}
}

func (r *renderer) element(n *Node, level int) {
	cfg := n.config()
	pretty := level >= 0 && !cfg.PreserveWhitespaceTags[n.Name]
	indent := ""
	if level > 0 {
		indent = strings.Repeat(r.f.Indent, level-1)
	}
	void := n.IsEmptyElement()
	name := n.QualifiedName()

	if level >= 0 {
		r.sb.WriteString(indent)
	}
	r.sb.WriteByte('<')
	r.sb.WriteString(name)
	r.attributes(n)
	if void && r.f.VoidElementCloseSlash {
		r.sb.WriteByte('/')
	}
	r.sb.WriteByte('>')
	if pretty {
		r.sb.WriteByte('\n')
	}
	if void {
		return
	}

	contentsLevel := -1
	if pretty {
		contentsLevel = level + 1
	}
	inner := &renderer{f: r.f, encoding: r.encoding}
	inner.contents(n, contentsLevel)
	contents := inner.sb.String()
	r.sb.WriteString(contents)
	if pretty && contents != "" && !strings.HasSuffix(contents, "\n") {
		r.sb.WriteByte('\n')
	}

	if pretty {
		r.sb.WriteString(indent)
	}
	r.sb.WriteString("</")
	r.sb.WriteString(name)
	r.sb.WriteByte('>')
	if level >= 0 && n.NextSibling() != nil {
		r.sb.WriteByte('\n')
	}
}

func (r *renderer) attributes(n *Node) {
	if len(n.attrs) == 0 {
		return
	}
	attrs := make([]Attribute, len(n.attrs))
	copy(attrs, n.attrs)
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })

	for _, a := range attrs {
		r.sb.WriteByte(' ')
		r.sb.WriteString(a.Key)
		val := a.Value()
		if val == "" && r.f.EmptyAttributesAreBooleans {
			continue
		}
		if r.f.Substitute != nil {
			val = r.f.Substitute(val)
		}
		r.sb.WriteByte('=')
		r.sb.WriteString(quoteAttribute(val))
	}
}

func (r *renderer) contents(n *Node, level int) {
	pretty := level >= 0
	preserve := n.Type == ElementNode && n.config().PreserveWhitespaceTags[n.Name]

	for _, c := range n.children {
		if c.isContainer() {
			r.node(c, level)
			continue
		}
		text := r.outputReady(c)
		if text != "" && level > 0 && !preserve {
			text = strings.TrimSpace(text)
		}
		if text == "" {
			continue
		}
		if pretty && !preserve {
			r.sb.WriteString(strings.Repeat(r.f.Indent, level-1))
		}
		r.sb.WriteString(text)
		if pretty && !preserve {
			r.sb.WriteByte('\n')
		}
	}
}

// outputReady returns the markup for a string node.
func (r *renderer) outputReady(n *Node) string {
	switch n.Type {
	case TextNode:
		if r.f.Substitute == nil {
			return n.Data
		}
		if p := n.parent; p != nil && p.Type == ElementNode && r.f.CDataContainingTags[p.Name] {
			return n.Data
		}
		return r.f.Substitute(n.Data)
	case CommentNode:
		return "<!--" + n.Data + "-->"
	case CDataNode:
		return "<![CDATA[" + n.Data + "]]>"
	case DoctypeNode:
		return "<!DOCTYPE " + n.Data + ">\n"
	case DeclarationNode:
		return "<!" + n.Data + ">"
	case ProcessingInstructionNode:
		return "<?" + n.Data + ">"
	default:
		return ""
	}
}
