package soup

import "strings"

// Formatter controls how a tree is turned back into markup.
type Formatter struct {
	Name string

	// Substitute escapes strings and attribute values. Nil writes them
	// unchanged.
	Substitute func(string) string

	// VoidElementCloseSlash writes void elements as <br/> rather than <br>.
	VoidElementCloseSlash bool

	// EmptyAttributesAreBooleans writes attributes with empty values as a
	// bare name: <input disabled>.
	EmptyAttributesAreBooleans bool

	// CDataContainingTags lists elements whose strings are never escaped.
	CDataContainingTags map[string]bool

	// Indent is the per-level indentation used by Prettify.
	Indent string
}

var htmlCDataTags = map[string]bool{"script": true, "style": true}

// HTML formatters.
var (
	// MinimalFormatter escapes only &, < and >. It is the default.
	MinimalFormatter = &Formatter{
		Name:                  "minimal",
		Substitute:            substituteXML,
		VoidElementCloseSlash: true,
		CDataContainingTags:   htmlCDataTags,
		Indent:                " ",
	}

	// HTMLFormatter converts every character with a named entity.
	HTMLFormatter = &Formatter{
		Name:                  "html",
		Substitute:            substituteHTML,
		VoidElementCloseSlash: true,
		CDataContainingTags:   htmlCDataTags,
		Indent:                " ",
	}

	// HTML5Formatter writes void elements without a closing slash and
	// empty attributes as booleans.
	HTML5Formatter = &Formatter{
		Name:                       "html5",
		Substitute:                 substituteHTML,
		EmptyAttributesAreBooleans: true,
		CDataContainingTags:        htmlCDataTags,
		Indent:                     " ",
	}

	// NoEscapeFormatter writes strings exactly as stored. The output may not
	// be valid markup.
	NoEscapeFormatter = &Formatter{
		Name:                  "null",
		VoidElementCloseSlash: true,
		CDataContainingTags:   htmlCDataTags,
		Indent:                " ",
	}
)

// XML formatters.
var (
	XMLMinimalFormatter = &Formatter{
		Name:                  "minimal",
		Substitute:            substituteXML,
		VoidElementCloseSlash: true,
		CDataContainingTags:   map[string]bool{},
		Indent:                " ",
	}

	XMLHTMLFormatter = &Formatter{
		Name:                  "html",
		Substitute:            substituteHTML,
		VoidElementCloseSlash: true,
		CDataContainingTags:   map[string]bool{},
		Indent:                " ",
	}

	XMLNoEscapeFormatter = &Formatter{
		Name:                  "null",
		VoidElementCloseSlash: true,
		CDataContainingTags:   map[string]bool{},
		Indent:                " ",
	}
)

// LookupFormatter returns the formatter registered under name for HTML or
// XML output.
func LookupFormatter(name string, xml bool) (*Formatter, bool) {
	var candidates []*Formatter
	if xml {
		candidates = []*Formatter{XMLMinimalFormatter, XMLHTMLFormatter, XMLNoEscapeFormatter}
	} else {
		candidates = []*Formatter{MinimalFormatter, HTMLFormatter, HTML5Formatter, NoEscapeFormatter}
	}
	for _, f := range candidates {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

var xmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func substituteXML(s string) string {
	return xmlReplacer.Replace(s)
}

func substituteHTML(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if name, ok := namedEntities[r]; ok {
			sb.WriteByte('&')
			sb.WriteString(name)
			sb.WriteByte(';')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// quoteAttribute wraps an attribute value in quotes. Double quotes are
// preferred; single quotes are used when the value holds only double
// quotes, and &quot; when it holds both.
func quoteAttribute(v string) string {
	if !strings.Contains(v, `"`) {
		return `"` + v + `"`
	}
	if !strings.Contains(v, "'") {
		return "'" + v + "'"
	}
	return `"` + strings.ReplaceAll(v, `"`, "&quot;") + `"`
}
