package builder

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoBuilder is returned by Lookup when no registered builder supports
// every requested feature.
var ErrNoBuilder = errors.New("builder: no tree builder supports the requested features")

// Feature names advertised by the registered builders.
const (
	FeatureHTML       = "html"
	FeatureHTMLParser = "html.parser"
	FeatureHTML5      = "html5"
	FeatureXML        = "xml"
	FeatureStrict     = "strict"
	FeaturePermissive = "permissive"
)

// DefaultFeature names the builder used when no features are requested.
const DefaultFeature = FeatureHTMLParser

// Attribute is a single attribute of a start tag.
type Attribute struct {
	Key string
	Val string

	// List holds the whitespace separated values of a multi-valued
	// attribute. It is nil for single-valued attributes.
	List []string
}

// IsMulti reports whether the attribute was split into a list.
func (a Attribute) IsMulti() bool {
	return a.List != nil
}

// Value returns the attribute value, joining list values with a space.
func (a Attribute) Value() string {
	if a.List != nil {
		return strings.Join(a.List, " ")
	}
	return a.Val
}

// Sink receives the events produced by a TreeBuilder.
type Sink interface {
	StartTag(name, prefix, namespace string, attrs []Attribute)
	EndTag(name, prefix string)
	Text(data string)
	Comment(data string)
	CData(data string)
	Doctype(data string)
	Declaration(data string)
	ProcessingInstruction(data string)
}

// TreeBuilder parses a document and reports its structure to a Sink.
type TreeBuilder interface {
	// Name returns the registered name of the builder.
	Name() string

	// Features returns every feature name the builder answers to.
	Features() []string

	// Config returns the configuration the builder was created with.
	Config() *Config

	// Feed parses markup, reporting every node to sink.
	Feed(markup string, sink Sink) error
}

// Registration describes a builder that can be found with Lookup.
type Registration struct {
	Name          string
	Features      []string
	DefaultConfig func() Config
	New           func(cfg Config) TreeBuilder
}

// Supports reports whether the registration advertises every feature.
func (r Registration) Supports(features ...string) bool {
	for _, f := range features {
		found := false
		for _, have := range r.Features {
			if strings.EqualFold(have, f) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var (
	registryMu sync.RWMutex
	registry   []Registration
)

// Register adds a builder to the registry. Builders registered later take
// precedence over earlier ones offering the same features.
func Register(r Registration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append([]Registration{r}, registry...)
}

// Lookup returns the most recently registered builder supporting all of
// features. With no features the default html.parser builder is returned.
func Lookup(features ...string) (Registration, error) {
	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		// "lxml html.parser" style strings name several features at once
		cleaned = append(cleaned, strings.Fields(f)...)
	}
	if len(cleaned) == 0 {
		cleaned = []string{DefaultFeature}
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, r := range registry {
		if r.Supports(cleaned...) {
			return r, nil
		}
	}
	return Registration{}, fmt.Errorf("%w: %s", ErrNoBuilder, strings.Join(cleaned, ", "))
}

// Registered returns the names of all registered builders, most recent
// first.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.Name)
	}
	return names
}

func init() {
	Register(Registration{
		Name:          FeatureXML,
		Features:      []string{FeatureXML},
		DefaultConfig: DefaultXMLConfig,
		New:           func(cfg Config) TreeBuilder { return NewXMLBuilder(cfg) },
	})
	Register(Registration{
		Name:          FeatureHTML5,
		Features:      []string{FeatureHTML5, FeaturePermissive, FeatureHTML},
		DefaultConfig: DefaultHTMLConfig,
		New:           func(cfg Config) TreeBuilder { return NewHTML5Builder(cfg) },
	})
	// Registered last so that a bare "html" lookup picks it.
	Register(Registration{
		Name:          FeatureHTMLParser,
		Features:      []string{FeatureHTMLParser, FeatureHTML, FeatureStrict},
		DefaultConfig: DefaultHTMLConfig,
		New:           func(cfg Config) TreeBuilder { return NewHTMLParserBuilder(cfg) },
	})
}
