package builder

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// XMLBuilder parses XML documents. Namespace prefixes are preserved and
// attributes are never split into lists.
type XMLBuilder struct {
	cfg Config
}

// NewXMLBuilder creates an xml builder.
func NewXMLBuilder(cfg Config) *XMLBuilder {
	cfg.XML = true
	return &XMLBuilder{cfg: cfg}
}

// Name returns "xml".
func (b *XMLBuilder) Name() string { return FeatureXML }

// Features returns the features the builder answers to.
func (b *XMLBuilder) Features() []string { return []string{FeatureXML} }

// Config returns the builder configuration.
func (b *XMLBuilder) Config() *Config { return &b.cfg }

// Feed decodes markup token by token and reports each token to sink.
func (b *XMLBuilder) Feed(markup string, sink Sink) error {
	d := xml.NewDecoder(strings.NewReader(markup))
	d.Strict = false
	d.Entity = xml.HTMLEntity

	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("builder: parsing XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var attrs []Attribute
			for _, a := range t.Attr {
				key := a.Name.Local
				if a.Name.Space != "" {
					key = a.Name.Space + ":" + a.Name.Local
				}
				attrs = b.cfg.appendAttribute(t.Name.Local, attrs, Attribute{Key: key, Val: a.Value})
			}
			sink.StartTag(t.Name.Local, t.Name.Space, "", attrs)

		case xml.EndElement:
			sink.EndTag(t.Name.Local, t.Name.Space)

		case xml.CharData:
			sink.Text(string(t))

		case xml.Comment:
			sink.Comment(string(t))

		case xml.ProcInst:
			// The declaration is regenerated on output.
			if t.Target == "xml" {
				continue
			}
			data := t.Target
			if len(t.Inst) > 0 {
				data += " " + string(t.Inst)
			}
			sink.ProcessingInstruction(data + "?")

		case xml.Directive:
			s := string(t)
			if len(s) >= 7 && strings.EqualFold(s[:7], "DOCTYPE") {
				sink.Doctype(strings.TrimSpace(s[7:]))
			} else {
				sink.Declaration(s)
			}
		}
	}
}
