package builder

import "strings"

// DuplicatePolicy decides what happens when a start tag repeats an
// attribute.
type DuplicatePolicy int

const (
	// DuplicateReplace keeps the last value seen (default).
	DuplicateReplace DuplicatePolicy = iota
	// DuplicateIgnore keeps the first value seen.
	DuplicateIgnore
)

// AnyTag is the key of Config.MultiValuedAttributes that applies to every
// tag.
const AnyTag = "*"

// Config holds tree-construction settings shared by a builder and the tree
// it feeds.
type Config struct {
	// MultiValuedAttributes maps a tag name (or AnyTag) to the attributes
	// whose values are split on whitespace. A nil map disables splitting.
	MultiValuedAttributes map[string][]string

	// EmptyElementTags lists the void elements. A nil set means any element
	// may be empty, which is how XML behaves.
	EmptyElementTags map[string]bool

	// PreserveWhitespaceTags lists elements whose whitespace-only strings
	// are kept verbatim and whose contents are never re-indented.
	PreserveWhitespaceTags map[string]bool

	// StringContainers lists elements whose strings are a separate kind,
	// excluded from the text of enclosing elements.
	StringContainers map[string]bool

	// CDataContainingTags lists elements whose strings are written without
	// entity substitution.
	CDataContainingTags map[string]bool

	OnDuplicateAttribute DuplicatePolicy

	XML bool
}

// DefaultMultiValuedAttributes returns the attributes split into lists by
// HTML builders.
func DefaultMultiValuedAttributes() map[string][]string {
	return map[string][]string{
		AnyTag:   {"class", "accesskey", "dropzone"},
		"a":      {"rel", "rev"},
		"link":   {"rel", "rev"},
		"td":     {"headers"},
		"th":     {"headers"},
		"form":   {"accept-charset"},
		"object": {"archive"},
		"area":   {"rel"},
		"icon":   {"sizes"},
		"iframe": {"sandbox"},
		"output": {"for"},
	}
}

func setOf(items ...string) map[string]bool {
	s := make(map[string]bool, len(items))
	for _, item := range items {
		s[item] = true
	}
	return s
}

// DefaultHTMLConfig returns the configuration used by the HTML builders.
func DefaultHTMLConfig() Config {
	return Config{
		MultiValuedAttributes: DefaultMultiValuedAttributes(),
		EmptyElementTags: setOf(
			"area", "base", "br", "col", "embed", "hr", "img", "input",
			"keygen", "link", "menuitem", "meta", "param", "source", "track",
			"wbr",
			// obsolete but still void
			"basefont", "bgsound", "command", "frame", "image", "isindex",
			"nextid", "spacer",
		),
		PreserveWhitespaceTags: setOf("pre", "textarea"),
		StringContainers:       setOf("script", "style", "template"),
		CDataContainingTags:    setOf("script", "style"),
	}
}

// DefaultXMLConfig returns the configuration used by the XML builder.
func DefaultXMLConfig() Config {
	return Config{
		PreserveWhitespaceTags: map[string]bool{},
		StringContainers:       map[string]bool{},
		CDataContainingTags:    map[string]bool{},
		XML:                    true,
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	if c.MultiValuedAttributes != nil {
		out.MultiValuedAttributes = make(map[string][]string, len(c.MultiValuedAttributes))
		for k, v := range c.MultiValuedAttributes {
			out.MultiValuedAttributes[k] = append([]string(nil), v...)
		}
	}
	out.EmptyElementTags = cloneSet(c.EmptyElementTags)
	out.PreserveWhitespaceTags = cloneSet(c.PreserveWhitespaceTags)
	out.StringContainers = cloneSet(c.StringContainers)
	out.CDataContainingTags = cloneSet(c.CDataContainingTags)
	return out
}

func cloneSet(s map[string]bool) map[string]bool {
	if s == nil {
		return nil
	}
	out := make(map[string]bool, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// IsEmptyElement reports whether tag may be rendered self-closed.
func (c *Config) IsEmptyElement(tag string) bool {
	if c.EmptyElementTags == nil {
		return true
	}
	return c.EmptyElementTags[tag]
}

// IsMultiValued reports whether attribute key of tag holds a list.
func (c *Config) IsMultiValued(tag, key string) bool {
	if c.MultiValuedAttributes == nil {
		return false
	}
	for _, k := range c.MultiValuedAttributes[AnyTag] {
		if k == key {
			return true
		}
	}
	for _, k := range c.MultiValuedAttributes[strings.ToLower(tag)] {
		if k == key {
			return true
		}
	}
	return false
}

// SplitAttribute returns attr with List populated when the attribute is
// multi-valued for tag.
func (c *Config) SplitAttribute(tag string, attr Attribute) Attribute {
	if attr.List != nil || !c.IsMultiValued(tag, attr.Key) {
		return attr
	}
	fields := strings.Fields(attr.Val)
	if fields == nil {
		fields = []string{}
	}
	attr.List = fields
	return attr
}

// appendAttribute adds attr to attrs honouring the duplicate policy.
func (c *Config) appendAttribute(tag string, attrs []Attribute, attr Attribute) []Attribute {
	attr = c.SplitAttribute(tag, attr)
	for i := range attrs {
		if attrs[i].Key != attr.Key {
			continue
		}
		if c.OnDuplicateAttribute == DuplicateReplace {
			attrs[i] = attr
		}
		return attrs
	}
	return append(attrs, attr)
}
