package soup

import (
	"strings"

	"github.com/tsawler/soup/builder"
)

// treeSink assembles builder events into a Document.
type treeSink struct {
	doc  *Document
	cfg  *builder.Config
	open []*Node // open[0] is the document root
	text strings.Builder
}

func newTreeSink(doc *Document) *treeSink {
	return &treeSink{
		doc:  doc,
		cfg:  doc.cfg,
		open: []*Node{doc.Node},
	}
}

func (s *treeSink) current() *Node {
	return s.open[len(s.open)-1]
}

// preserving reports whether a whitespace-preserving element is open.
func (s *treeSink) preserving() bool {
	for i := len(s.open) - 1; i > 0; i-- {
		if s.cfg.PreserveWhitespaceTags[s.open[i].Name] {
			return true
		}
	}
	return false
}

// stringContainer returns the innermost open string container, or "".
func (s *treeSink) stringContainer() string {
	for i := len(s.open) - 1; i > 0; i-- {
		if s.cfg.StringContainers[s.open[i].Name] {
			return s.open[i].Name
		}
	}
	return ""
}

func (s *treeSink) attach(n *Node) {
	p := s.current()
	n.parent = p
	p.children = append(p.children, n)
}

// flush turns buffered character data into a string node.
func (s *treeSink) flush() {
	if s.text.Len() == 0 {
		return
	}
	data := s.text.String()
	s.text.Reset()

	if strings.Trim(data, asciiSpaces) == "" && !s.preserving() {
		if strings.Contains(data, "\n") {
			data = "\n"
		} else {
			data = " "
		}
	}
	n := &Node{Type: TextNode, Data: data, cfg: s.cfg, container: s.stringContainer()}
	s.attach(n)
}

const asciiSpaces = " \t\n\r\f"

func (s *treeSink) StartTag(name, prefix, namespace string, attrs []builder.Attribute) {
	s.flush()
	n := newElement(s.cfg, name, prefix, attrs)
	n.Namespace = namespace
	s.attach(n)
	s.open = append(s.open, n)
}

func (s *treeSink) EndTag(name, prefix string) {
	s.flush()
	for i := len(s.open) - 1; i > 0; i-- {
		if s.open[i].Name == name && s.open[i].Prefix == prefix {
			s.open = s.open[:i]
			return
		}
	}
}

func (s *treeSink) Text(data string) {
	s.text.WriteString(data)
}

func (s *treeSink) data(t NodeType, data string) {
	s.flush()
	n := newDataNode(t, data)
	n.cfg = s.cfg
	s.attach(n)
}

func (s *treeSink) Comment(data string)               { s.data(CommentNode, data) }
func (s *treeSink) CData(data string)                 { s.data(CDataNode, data) }
func (s *treeSink) Doctype(data string)               { s.data(DoctypeNode, data) }
func (s *treeSink) Declaration(data string)           { s.data(DeclarationNode, data) }
func (s *treeSink) ProcessingInstruction(data string) { s.data(ProcessingInstructionNode, data) }

// finish flushes pending text and closes every open element.
func (s *treeSink) finish() {
	s.flush()
	s.open = s.open[:1]
}
