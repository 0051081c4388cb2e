// Package decode turns document bytes into UTF-8 text.
//
// The encoding is chosen in this order:
//
//   - the encoding the caller declared
//   - a byte order mark
//   - a <meta charset> or <meta http-equiv> declaration in the first 1024 bytes
//   - UTF-8, if the bytes are valid UTF-8
//   - windows-1252, which accepts any byte sequence
//
// Encodings the caller excludes are skipped. Names follow the WHATWG
// Encoding Standard, so "latin1" and "iso-8859-1" both select windows-1252.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for encoding names that are not in the
// WHATWG index.
var ErrUnknownEncoding = errors.New("decode: unknown encoding")

// Result is decoded text plus the name of the encoding it came from.
type Result struct {
	Text     string
	Encoding string

	// Replaced is true when undecodable bytes were replaced with U+FFFD.
	Replaced bool
}

// Lookup resolves an encoding name to its canonical WHATWG name.
func Lookup(name string) (encoding.Encoding, string, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(strings.TrimSpace(name))
	}
	return enc, canonical, nil
}

// Decode converts data to UTF-8. declared may be empty.
func Decode(data []byte, declared string, exclude []string) (Result, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		if _, canonical, err := Lookup(name); err == nil {
			excluded[canonical] = true
		}
	}

	if declared != "" {
		enc, name, err := Lookup(declared)
		if err != nil {
			return Result{}, err
		}
		if !excluded[name] {
			return decodeWith(data, enc, name)
		}
	}

	for _, name := range candidates(data) {
		if excluded[name] {
			continue
		}
		enc, canonical, err := Lookup(name)
		if err != nil {
			continue
		}
		if canonical == "utf-8" && !utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
			continue
		}
		return decodeWith(data, enc, canonical)
	}

	// Every candidate was excluded; keep what can be kept.
	return decodeWith(data, unicode.UTF8, "utf-8")
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// candidates lists encodings to try, most likely first.
func candidates(data []byte) []string {
	var names []string
	_, name, certain := charset.DetermineEncoding(data, "text/html")
	// windows-1252 is the sniffer's fallback rather than a finding.
	if certain || name != "windows-1252" {
		names = append(names, name)
	}
	return append(names, "utf-8", "windows-1252")
}

func decodeWith(data []byte, enc encoding.Encoding, name string) (Result, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return Result{}, fmt.Errorf("decode: %s: %w", name, err)
	}
	text := string(out)
	replaced := strings.Count(text, string(utf8.RuneError)) > bytes.Count(data, []byte(string(utf8.RuneError)))
	return Result{Text: text, Encoding: name, Replaced: replaced}, nil
}
