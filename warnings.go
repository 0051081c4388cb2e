package soup

import (
	"fmt"
	"strings"
)

// WarningType classifies a non-fatal parsing issue.
type WarningType int

const (
	// WarningGuessedParser: no features were requested, so the default
	// builder was chosen.
	WarningGuessedParser WarningType = iota
	// WarningMarkupResemblesURL: the markup looks like a URL rather than a
	// document.
	WarningMarkupResemblesURL
	// WarningMarkupResemblesFilename: the markup looks like a file name
	// rather than a document.
	WarningMarkupResemblesFilename
	// WarningXMLParsedAsHTML: an XML document was handed to an HTML builder.
	WarningXMLParsedAsHTML
	// WarningReplacementCharacters: decoding replaced undecodable bytes with
	// U+FFFD.
	WarningReplacementCharacters
)

// String returns the name of the warning type.
func (t WarningType) String() string {
	switch t {
	case WarningGuessedParser:
		return "GuessedParser"
	case WarningMarkupResemblesURL:
		return "MarkupResemblesURL"
	case WarningMarkupResemblesFilename:
		return "MarkupResemblesFilename"
	case WarningXMLParsedAsHTML:
		return "XMLParsedAsHTML"
	case WarningReplacementCharacters:
		return "ReplacementCharacters"
	default:
		return "Unknown"
	}
}

// Warning describes an issue that did not stop parsing but may make the
// resulting tree differ from what the caller expected.
type Warning struct {
	Type    WarningType
	Message string
}

// String returns the warning as "Type: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Type, w.Message)
}

// FormatWarnings joins warnings into a single line-per-warning string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "\n")
}

// HasWarning reports whether warnings contains one of type t.
func HasWarning(warnings []Warning, t WarningType) bool {
	for _, w := range warnings {
		if w.Type == t {
			return true
		}
	}
	return false
}
