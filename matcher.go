package soup

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher tests a tag name, attribute value or string against a filter.
// present is false when the value does not exist at all (a missing
// attribute).
type Matcher interface {
	Match(value string, present bool) bool
}

type eqMatcher string

func (m eqMatcher) Match(value string, present bool) bool {
	return present && value == string(m)
}

func (m eqMatcher) String() string { return fmt.Sprintf("%q", string(m)) }

// Eq matches values equal to s.
func Eq(s string) Matcher {
	return eqMatcher(s)
}

type reMatcher struct {
	re *regexp.Regexp
}

func (m reMatcher) Match(value string, present bool) bool {
	return present && m.re.MatchString(value)
}

func (m reMatcher) String() string { return "/" + m.re.String() + "/" }

// Re matches values in which re finds a match anywhere. Anchor the
// expression to match from the start.
func Re(re *regexp.Regexp) Matcher {
	return reMatcher{re: re}
}

// Pattern compiles expr and matches like Re. It panics if expr is not a
// valid regular expression.
func Pattern(expr string) Matcher {
	return reMatcher{re: regexp.MustCompile(expr)}
}

type anyOfMatcher []Matcher

func (m anyOfMatcher) Match(value string, present bool) bool {
	for _, sub := range m {
		if sub.Match(value, present) {
			return true
		}
	}
	return false
}

func (m anyOfMatcher) String() string {
	parts := make([]string, len(m))
	for i, sub := range m {
		parts[i] = fmt.Sprint(sub)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// In matches values equal to any of values.
func In(values ...string) Matcher {
	m := make(anyOfMatcher, len(values))
	for i, v := range values {
		m[i] = eqMatcher(v)
	}
	return m
}

// AnyOf matches when any of matchers does.
func AnyOf(matchers ...Matcher) Matcher {
	return anyOfMatcher(matchers)
}

type presenceMatcher bool

func (m presenceMatcher) Match(_ string, present bool) bool {
	return present == bool(m)
}

func (m presenceMatcher) String() string {
	if m {
		return "True"
	}
	return "False"
}

var (
	// Any matches every value that exists: every tag, or every element
	// carrying the attribute.
	Any Matcher = presenceMatcher(true)

	// Absent matches only missing values, such as attributes an element
	// does not carry.
	Absent Matcher = presenceMatcher(false)
)

type funcMatcher func(string) bool

func (m funcMatcher) Match(value string, present bool) bool {
	return present && m(value)
}

// Func matches values for which f returns true.
func Func(f func(string) bool) Matcher {
	return funcMatcher(f)
}

// matchAttribute applies m to an attribute. Multi-valued attributes match
// if any single value matches or if the whole space-joined value does.
func matchAttribute(m Matcher, a Attribute, present bool) bool {
	if !present {
		return m.Match("", false)
	}
	if a.IsMulti() {
		for _, v := range a.List {
			if m.Match(v, true) {
				return true
			}
		}
	}
	return m.Match(a.Value(), true)
}
