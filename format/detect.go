// Package format provides markup format detection for the soup library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a markup dialect.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML document.
	HTML
	// XHTML indicates an HTML document serialized as XML.
	XHTML
	// XML indicates a generic XML document.
	XML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case XHTML:
		return "XHTML"
	case XML:
		return "XML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case XHTML:
		return ".xhtml"
	case XML:
		return ".xml"
	default:
		return ""
	}
}

// Features returns the builder feature that parses the format, or "" when
// the default builder should be used.
func (f Format) Features() string {
	if f == XML {
		return "xml"
	}
	return ""
}

// Detect determines the markup format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".shtml":
		return HTML
	case ".xhtml", ".xht":
		return XHTML
	case ".xml", ".svg", ".rss", ".atom", ".xsd", ".xsl", ".opf", ".kml":
		return XML
	default:
		return Unknown
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFromMagic inspects the start of a document. An XML declaration
// marks XML unless an <html> element follows it, in which case the
// document is XHTML.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeft(data, " \t\r\n\f")
	if len(data) == 0 {
		return Unknown
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	upper := strings.ToUpper(string(head))

	if strings.HasPrefix(upper, "<?XML") {
		if strings.Contains(upper, "<HTML") {
			return XHTML
		}
		return XML
	}
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return HTML
	}
	return Unknown
}

// maxLocatorLength bounds the markup considered by the locator checks.
// Real documents are rarely this short and locators rarely this long.
const maxLocatorLength = 256

// LooksLikeURL reports whether markup is probably a URL that was passed
// where a document was expected.
func LooksLikeURL(markup string) bool {
	if len(markup) > maxLocatorLength || strings.ContainsAny(markup, "< \t\n") {
		return false
	}
	return strings.HasPrefix(markup, "http:") || strings.HasPrefix(markup, "https:")
}

var filenameExtensions = []string{".html", ".htm", ".xml", ".xhtml", ".txt"}

// LooksLikeFilename reports whether markup is probably a file path that
// was passed where a document was expected.
func LooksLikeFilename(markup string) bool {
	if markup == "" || len(markup) > maxLocatorLength || strings.ContainsAny(markup, "<> \t\n") {
		return false
	}
	if LooksLikeURL(markup) || strings.ContainsAny(markup, "?*#&;=") {
		return false
	}
	if strings.ContainsAny(markup, `/\`) {
		return true
	}
	lower := strings.ToLower(markup)
	for _, ext := range filenameExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
