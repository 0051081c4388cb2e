package soup

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/soup/builder"
	"github.com/tsawler/soup/format"
	"github.com/tsawler/soup/internal/decode"
)

// Loader provides a fluent interface for parsing a document. Each
// configuration method returns a new Loader instance, making it safe for
// concurrent use and allowing method chaining.
type Loader struct {
	// Source (exactly one is used)
	filename string
	markup   string
	data     []byte
	isBytes  bool

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated before parsing
	warnings []Warning
}

// clone creates a shallow copy of the Loader with a deep copy of options.
func (l *Loader) clone() *Loader {
	return &Loader{
		filename: l.filename,
		markup:   l.markup,
		data:     l.data,
		isBytes:  l.isBytes,
		options:  l.options.clone(),
		err:      l.err,
		warnings: append([]Warning(nil), l.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Loader instance)
// ============================================================================

// Features selects the tree builder. Each argument may name several
// space separated features; the most recently registered builder offering
// all of them is used.
//
// Example:
//
//	doc, _, err := soup.FromString(markup).Features("html5").Document()
func (l *Loader) Features(features ...string) *Loader {
	newL := l.clone()
	newL.options.features = append(newL.options.features, features...)
	return newL
}

// MultiValuedAttributes replaces the table of attributes whose values are
// split into lists. Passing nil disables splitting, so class="a b" stays a
// single string.
//
// Example:
//
//	doc, _, err := soup.FromString(markup).MultiValuedAttributes(nil).Document()
func (l *Loader) MultiValuedAttributes(table map[string][]string) *Loader {
	newL := l.clone()
	newL.options.multiValuedSet = true
	newL.options.multiValued = nil
	if table != nil {
		newL.options.multiValued = make(map[string][]string, len(table))
		for k, v := range table {
			newL.options.multiValued[k] = append([]string(nil), v...)
		}
	}
	return newL
}

// OnDuplicateAttribute chooses which value wins when a tag repeats an
// attribute.
func (l *Loader) OnDuplicateAttribute(policy builder.DuplicatePolicy) *Loader {
	newL := l.clone()
	newL.options.onDuplicate = policy
	newL.options.onDuplicateSet = true
	return newL
}

// PreserveWhitespaceTags adds tags whose whitespace is kept verbatim, in
// addition to pre and textarea.
func (l *Loader) PreserveWhitespaceTags(tags ...string) *Loader {
	newL := l.clone()
	newL.options.preserveWhitespace = append(newL.options.preserveWhitespace, tags...)
	return newL
}

// FromEncoding declares the encoding of byte input, skipping detection.
func (l *Loader) FromEncoding(name string) *Loader {
	newL := l.clone()
	newL.options.fromEncoding = name
	return newL
}

// ExcludeEncodings rules out encodings during detection.
func (l *Loader) ExcludeEncodings(names ...string) *Loader {
	newL := l.clone()
	newL.options.excludeEncodings = append(newL.options.excludeEncodings, names...)
	return newL
}

// ParseOnly keeps only the parts of the document matching the query: the
// outermost matching elements with their contents, or the matching strings
// when the query filters only on strings.
//
// Example:
//
//	doc, _, err := soup.FromString(markup).ParseOnly(soup.Tag("a")).Document()
func (l *Loader) ParseOnly(opts ...QueryOption) *Loader {
	newL := l.clone()
	newL.options.parseOnly = NewQuery(opts...)
	return newL
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Document parses the source and returns the tree, along with warnings
// about non-fatal issues.
//
// Example:
//
//	doc, warnings, err := soup.Open("page.html").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", soup.FormatWarnings(warnings))
//	}
func (l *Loader) Document() (*Document, []Warning, error) {
	if l.err != nil {
		return nil, nil, l.err
	}

	warnings := append([]Warning(nil), l.warnings...)
	features := l.options.features

	var (
		markup   string
		encoding string
		raw      []byte
	)
	switch {
	case l.filename != "":
		data, err := os.ReadFile(l.filename)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open %s: %w", l.filename, err)
		}
		raw = data
		if len(features) == 0 {
			if f := format.Detect(l.filename).Features(); f != "" {
				features = []string{f}
			}
		}
	case l.isBytes:
		raw = l.data
	default:
		markup = l.markup
	}

	if l.filename != "" || l.isBytes {
		res, err := decode.Decode(raw, l.options.fromEncoding, l.options.excludeEncodings)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode input: %w", err)
		}
		markup, encoding = res.Text, res.Encoding
		if res.Replaced {
			warnings = append(warnings, Warning{
				Type:    WarningReplacementCharacters,
				Message: fmt.Sprintf("some bytes could not be decoded as %s and were replaced with U+FFFD", encoding),
			})
		}
	}

	if l.filename == "" && !strings.Contains(markup, "<") {
		switch {
		case format.LooksLikeURL(markup):
			warnings = append(warnings, Warning{
				Type:    WarningMarkupResemblesURL,
				Message: fmt.Sprintf("%q looks like a URL, not markup; fetch the document first", markup),
			})
		case format.LooksLikeFilename(markup):
			warnings = append(warnings, Warning{
				Type:    WarningMarkupResemblesFilename,
				Message: fmt.Sprintf("%q looks like a filename, not markup; use Open to read a file", markup),
			})
		}
	}

	reg, err := builder.Lookup(features...)
	if err != nil {
		return nil, nil, err
	}
	if len(features) == 0 {
		warnings = append(warnings, Warning{
			Type:    WarningGuessedParser,
			Message: fmt.Sprintf("no parser was requested, so %q was used", reg.Name),
		})
	}

	cfg := reg.DefaultConfig()
	l.options.apply(&cfg)
	tb := reg.New(cfg)

	if !tb.Config().XML && format.DetectFromMagic([]byte(markup)) == format.XML {
		warnings = append(warnings, Warning{
			Type:    WarningXMLParsedAsHTML,
			Message: fmt.Sprintf("an XML document is being parsed with the %q HTML builder; use the xml feature", reg.Name),
		})
	}

	doc := newDocument(tb.Config(), tb.Name())
	sink := newTreeSink(doc)
	if err := tb.Feed(markup, sink); err != nil {
		return nil, nil, fmt.Errorf("failed to parse with %s: %w", tb.Name(), err)
	}
	sink.finish()

	if l.options.parseOnly != nil {
		filterTree(doc.Node, l.options.parseOnly)
	}

	doc.originalEncoding = encoding
	doc.warnings = warnings
	return doc, append([]Warning(nil), warnings...), nil
}
