// Package builder turns markup into a stream of tree-construction events.
//
// A [TreeBuilder] reads a complete document and reports what it finds to a
// [Sink]: start and end tags, strings, comments, doctypes, declarations,
// processing instructions and CDATA sections. The soup package implements
// Sink to assemble its parse tree, so builders never allocate tree nodes
// themselves.
//
// # Builders
//
// Three builders are registered by default:
//
//   - html.parser - a lenient streaming parser built on the x/net/html
//     tokenizer. It keeps the document exactly as written: no html, head or
//     body elements are synthesized and unclosed tags nest.
//   - html5 - full HTML5 tree construction as performed by browsers.
//   - xml - an XML parser that keeps namespace prefixes and lets any element
//     be empty.
//
// Builders are found by feature name:
//
//	reg, err := builder.Lookup("html.parser")
//	if err != nil {
//	    // no builder supports the features
//	}
//	b := reg.New(reg.DefaultConfig())
//
// # Configuration
//
// [Config] controls how attributes are split into lists (the class
// attribute is multi-valued by default in HTML), which tags are void, which
// tags preserve whitespace and how duplicate attributes are resolved.
package builder
