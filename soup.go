// Package soup parses HTML and XML into a navigable, mutable tree.
//
// Basic usage:
//
//	doc, err := soup.Parse(`<p class="lead">Hello <b>world</b></p>`, "html.parser")
//	if err != nil {
//	    // handle error
//	}
//	b := doc.First("b")
//	fmt.Println(b.Text()) // world
//
// With options:
//
//	doc, warnings, err := soup.Open("page.html").
//	    Features("html5").
//	    MultiValuedAttributes(nil).
//	    Document()
//
// Searching accepts names, regular expressions, lists and presence tests:
//
//	links := doc.FindAll(soup.Tag("a"), soup.Attr("href", soup.Pattern(`^https://`)))
//	first, err := doc.SelectOne("div.content > p")
//
// Trees are edited in place with Insert, Append, InsertBefore,
// InsertAfter, ReplaceWith, Wrap, Unwrap, Extract and Decompose, and written
// back out with String, Prettify or Encode.
//
// The builder subpackage holds the tree builders and their registry.
package soup

import (
	"bytes"
	"fmt"
	"io"
)

// Open returns a Loader reading the named file. The builder is chosen from
// the file extension unless Features is called.
//
// Example:
//
//	doc, warnings, err := soup.Open("page.html").Document()
func Open(filename string) *Loader {
	l := &Loader{
		filename: filename,
		options:  defaultOptions(),
	}
	if filename == "" {
		l.err = fmt.Errorf("no filename specified")
	}
	return l
}

// FromString returns a Loader for markup that is already text.
func FromString(markup string) *Loader {
	return &Loader{
		markup:  markup,
		options: defaultOptions(),
	}
}

// FromBytes returns a Loader for encoded markup. The encoding is detected
// unless FromEncoding is called.
func FromBytes(data []byte) *Loader {
	return &Loader{
		data:    bytes.Clone(data),
		isBytes: true,
		options: defaultOptions(),
	}
}

// FromReader reads r to the end and returns a Loader for its bytes. Read
// errors are reported by the terminal call.
func FromReader(r io.Reader) *Loader {
	data, err := io.ReadAll(r)
	l := FromBytes(data)
	if err != nil {
		l.err = fmt.Errorf("failed to read input: %w", err)
	}
	return l
}

// Parse builds a Document from markup using the builder that offers
// features. Warnings are available from Document.Warnings.
//
// Example:
//
//	doc, err := soup.Parse("<p>hi</p>", "html.parser")
func Parse(markup string, features ...string) (*Document, error) {
	doc, _, err := FromString(markup).Features(features...).Document()
	return doc, err
}

// MustParse is like Parse but panics if the markup cannot be parsed. It is
// intended for tests and fixtures.
func MustParse(markup string, features ...string) *Document {
	return Must(Parse(markup, features...))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	p := soup.Must(doc.SelectOne("p"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Loader.Document and panics
// if the error is non-nil. It discards warnings.
//
// Example:
//
//	doc := soup.MustDocument(soup.FromString(markup).Features("xml").Document())
func MustDocument(doc *Document, _ []Warning, err error) *Document {
	if err != nil {
		panic(err)
	}
	return doc
}
