package builder

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLParserBuilder is a lenient, structure-preserving HTML builder driven
// by the x/net/html tokenizer. Unlike the html5 builder it reports the
// document exactly as written.
type HTMLParserBuilder struct {
	cfg Config
}

// NewHTMLParserBuilder creates an html.parser builder.
func NewHTMLParserBuilder(cfg Config) *HTMLParserBuilder {
	return &HTMLParserBuilder{cfg: cfg}
}

// Name returns "html.parser".
func (b *HTMLParserBuilder) Name() string { return FeatureHTMLParser }

// Features returns the features the builder answers to.
func (b *HTMLParserBuilder) Features() []string {
	return []string{FeatureHTMLParser, FeatureHTML, FeatureStrict}
}

// Config returns the builder configuration.
func (b *HTMLParserBuilder) Config() *Config { return &b.cfg }

// Feed tokenizes markup and reports every token to sink.
func (b *HTMLParserBuilder) Feed(markup string, sink Sink) error {
	for markup != "" {
		rest, err := b.feed(markup, sink)
		if err != nil {
			return err
		}
		markup = rest
	}
	return nil
}

// feed tokenizes markup until it ends or a CDATA section runs past the
// tokenizer's comment token. In that case the section is reported whole
// and the markup after its "]]>" is returned.
func (b *HTMLParserBuilder) feed(markup string, sink Sink) (string, error) {
	z := html.NewTokenizer(strings.NewReader(markup))
	pos := 0

	for {
		tt := z.Next()
		raw := string(z.Raw())
		start := pos
		pos += len(raw)

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("builder: tokenizing: %w", err)
			}
			return "", nil

		case html.TextToken:
			sink.Text(string(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)

			var attrs []Attribute
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attrs = b.cfg.appendAttribute(tag, attrs, Attribute{Key: string(key), Val: string(val)})
			}

			sink.StartTag(tag, "", "", attrs)
			if tt == html.SelfClosingTagToken || b.cfg.IsEmptyElement(tag) {
				sink.EndTag(tag, "")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			sink.EndTag(string(name), "")

		case html.CommentToken:
			// the tokenizer ends "<![CDATA[" at the first '>'
			if strings.HasPrefix(raw, cdataOpen) && !strings.HasSuffix(raw, cdataClose) {
				body := markup[start+len(cdataOpen):]
				if end := strings.Index(body, cdataClose); end >= 0 {
					sink.CData(body[:end])
					return body[end+len(cdataClose):], nil
				}
			}
			b.markupDeclaration(raw, z, sink)

		case html.DoctypeToken:
			sink.Doctype(strings.TrimSpace(string(z.Text())))
		}
	}
}

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// markupDeclaration sorts the tokenizer's comment tokens into comments,
// CDATA sections, declarations and processing instructions.
func (b *HTMLParserBuilder) markupDeclaration(raw string, z *html.Tokenizer, sink Sink) {
	inner := func(prefix, suffix string) string {
		s := strings.TrimPrefix(raw, prefix)
		return strings.TrimSuffix(s, suffix)
	}

	switch {
	case strings.HasPrefix(raw, "<!--"):
		sink.Comment(string(z.Text()))
	case strings.HasPrefix(raw, cdataOpen):
		sink.CData(inner(cdataOpen, cdataClose))
	case strings.HasPrefix(raw, "<?"):
		sink.ProcessingInstruction(inner("<?", ">"))
	case strings.HasPrefix(raw, "<!"):
		sink.Declaration(inner("<!", ">"))
	default:
		sink.Comment(string(z.Text()))
	}
}
