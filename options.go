package soup

import "github.com/tsawler/soup/builder"

// ParseOptions holds configuration for building a Document.
type ParseOptions struct {
	// Builder selection
	features []string

	// Attribute handling
	multiValued    map[string][]string
	multiValuedSet bool // true once MultiValuedAttributes was called, even with nil
	onDuplicate    builder.DuplicatePolicy
	onDuplicateSet bool

	preserveWhitespace []string

	// Decoding of byte input
	fromEncoding     string
	excludeEncodings []string

	// Post-parse filtering
	parseOnly *Query
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		features: nil, // nil means the default builder
	}
}

// clone creates a deep copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	newOpts := ParseOptions{
		multiValuedSet: o.multiValuedSet,
		onDuplicate:    o.onDuplicate,
		onDuplicateSet: o.onDuplicateSet,
		fromEncoding:   o.fromEncoding,
		parseOnly:      o.parseOnly,
	}

	if o.features != nil {
		newOpts.features = append([]string(nil), o.features...)
	}
	if o.multiValued != nil {
		newOpts.multiValued = make(map[string][]string, len(o.multiValued))
		for k, v := range o.multiValued {
			newOpts.multiValued[k] = append([]string(nil), v...)
		}
	}
	if o.preserveWhitespace != nil {
		newOpts.preserveWhitespace = append([]string(nil), o.preserveWhitespace...)
	}
	if o.excludeEncodings != nil {
		newOpts.excludeEncodings = append([]string(nil), o.excludeEncodings...)
	}

	return newOpts
}

// apply adjusts a builder's default configuration.
func (o ParseOptions) apply(cfg *builder.Config) {
	if o.multiValuedSet {
		cfg.MultiValuedAttributes = nil
		if o.multiValued != nil {
			cfg.MultiValuedAttributes = make(map[string][]string, len(o.multiValued))
			for k, v := range o.multiValued {
				cfg.MultiValuedAttributes[k] = append([]string(nil), v...)
			}
		}
	}
	if o.onDuplicateSet {
		cfg.OnDuplicateAttribute = o.onDuplicate
	}
	if len(o.preserveWhitespace) > 0 {
		if cfg.PreserveWhitespaceTags == nil {
			cfg.PreserveWhitespaceTags = make(map[string]bool, len(o.preserveWhitespace))
		}
		for _, tag := range o.preserveWhitespace {
			cfg.PreserveWhitespaceTags[tag] = true
		}
	}
}
