package builder

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTML5Builder builds trees the way a browser does, adding implied html,
// head and body elements and repairing misnested markup.
type HTML5Builder struct {
	cfg Config
}

// NewHTML5Builder creates an html5 builder.
func NewHTML5Builder(cfg Config) *HTML5Builder {
	return &HTML5Builder{cfg: cfg}
}

// Name returns "html5".
func (b *HTML5Builder) Name() string { return FeatureHTML5 }

// Features returns the features the builder answers to.
func (b *HTML5Builder) Features() []string {
	return []string{FeatureHTML5, FeaturePermissive, FeatureHTML}
}

// Config returns the builder configuration.
func (b *HTML5Builder) Config() *Config { return &b.cfg }

// Feed parses markup with the HTML5 algorithm and replays the resulting
// tree into sink.
func (b *HTML5Builder) Feed(markup string, sink Sink) error {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return fmt.Errorf("builder: parsing HTML: %w", err)
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		b.replay(c, sink)
	}
	return nil
}

func (b *HTML5Builder) replay(n *html.Node, sink Sink) {
	switch n.Type {
	case html.ElementNode:
		var attrs []Attribute
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			attrs = b.cfg.appendAttribute(n.Data, attrs, Attribute{Key: key, Val: a.Val})
		}

		sink.StartTag(n.Data, "", n.Namespace, attrs)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.replay(c, sink)
		}
		sink.EndTag(n.Data, "")

	case html.TextNode:
		sink.Text(n.Data)

	case html.CommentNode:
		sink.Comment(n.Data)

	case html.DoctypeNode:
		sink.Doctype(doctypeString(n))
	}
}

// doctypeString rebuilds the doctype declaration from the parsed node.
func doctypeString(n *html.Node) string {
	var public, system string
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			public = a.Val
		case "system":
			system = a.Val
		}
	}

	var sb strings.Builder
	sb.WriteString(n.Data)
	switch {
	case public != "":
		fmt.Fprintf(&sb, " PUBLIC %q", public)
		if system != "" {
			fmt.Fprintf(&sb, " %q", system)
		}
	case system != "":
		fmt.Fprintf(&sb, " SYSTEM %q", system)
	}
	return sb.String()
}
