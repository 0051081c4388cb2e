package soup

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindAll(t *testing.T) {
	doc := parseFixture(t, paragraphFixture)

	const (
		p = `<p>This paragraph has a section which is<b class="boldest">Extremely bold</b></p>`
		b = `<b class="boldest">Extremely bold</b>`
	)

	tests := []struct {
		name string
		opts []QueryOption
		want string
	}{
		{"string", []QueryOption{Tag("b")}, "[" + b + "]"},
		{"regular expression", []QueryOption{Name(Re(regexp.MustCompile("^p")))}, "[" + p + "]"},
		{"list", []QueryOption{Tag("b", "p")}, "[" + p + ", " + b + "]"},
		{"true", []QueryOption{Name(Any)}, "[<html><body>" + p + "</body></html>, <body>" + p + "</body>, " + p + ", " + b + "]"},
		{"no match", []QueryOption{Tag("table")}, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.FindAll(tt.opts...).String(); got != tt.want {
				t.Errorf("FindAll() = %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestFindAll_Attributes(t *testing.T) {
	doc := parseFixture(t, `
		<a id="first" class="ext link" href="https://example.com">1</a>
		<a class="link" href="/local">2</a>
		<a>3</a>
		<span class="ext">4</span>`)

	// texts collects the text of each result
	texts := func(rs ResultSet) []string {
		var out []string
		for _, n := range rs {
			out = append(out, n.Text())
		}
		return out
	}

	tests := []struct {
		name string
		opts []QueryOption
		want []string
	}{
		{"single class of several", []QueryOption{Class(Eq("ext"))}, []string{"1", "4"}},
		{"whole class value", []QueryOption{Class(Eq("ext link"))}, []string{"1"}},
		{"attribute present", []QueryOption{Tag("a"), Attr("href", Any)}, []string{"1", "2"}},
		{"attribute absent", []QueryOption{Tag("a"), Attr("href", Absent)}, []string{"3"}},
		{"attribute pattern", []QueryOption{Attr("href", Pattern(`^https://`))}, []string{"1"}},
		{"id", []QueryOption{ID(Eq("first"))}, []string{"1"}},
		{"any of", []QueryOption{Attr("href", AnyOf(Eq("/local"), Pattern("example")))}, []string{"1", "2"}},
		{"function", []QueryOption{Name(Func(func(s string) bool { return len(s) > 1 }))}, []string{"4"}},
		{"where", []QueryOption{Where(func(n *Node) bool { return n.Text() == "3" })}, []string{"3"}},
		{"with string", []QueryOption{Tag("a"), WithString(Eq("2"))}, []string{"2"}},
		{"limit", []QueryOption{Tag("a"), Limit(2)}, []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, texts(doc.FindAll(tt.opts...))); diff != "" {
				t.Errorf("FindAll() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindAll_Strings(t *testing.T) {
	doc := parseFixture(t, "<p>one</p><p>two <b>three</b></p><!--one-->")

	got := doc.FindAll(WithString(Pattern("^t")))
	var data []string
	for _, n := range got {
		if !n.IsString() {
			t.Errorf("result %v is not a string", n)
		}
		data = append(data, n.Data)
	}
	if diff := cmp.Diff([]string{"two ", "three"}, data); diff != "" {
		t.Errorf("FindAll(WithString) mismatch (-want +got):\n%s", diff)
	}

	// comments are strings too
	if n := len(doc.FindAll(WithString(Eq("one")))); n != 2 {
		t.Errorf("FindAll(WithString(one)) = %d results, want 2", n)
	}
}

func TestFind_NonRecursive(t *testing.T) {
	doc := parseFixture(t, "<div><p><span>inner</span></p><span>outer</span></div>")
	div := mustFirst(t, doc.Node, "div")

	got := div.FindAll(Tag("span"), NonRecursive())
	if len(got) != 1 || got[0].Text() != "outer" {
		t.Errorf("FindAll(NonRecursive) = %v, want the outer span", got)
	}
	if got := div.Find(Tag("span")); got == nil || got.Text() != "inner" {
		t.Errorf("Find(span) = %v, want the inner span", got)
	}
	if got := div.Find(Tag("table")); got != nil {
		t.Errorf("Find(table) = %v, want nil", got)
	}
}

func TestFind_KeepsCallerOptions(t *testing.T) {
	doc := parseFixture(t, "<b>1</b><b>2</b><i>3</i>")

	// spare capacity holds an unlimited query
	full := []QueryOption{Tag("b"), Limit(0)}
	opts := full[:1]

	if got := doc.Find(opts...); got == nil || got.Text() != "1" {
		t.Fatalf("Find(b) = %v, want the first b", got)
	}
	if got := doc.Find(Tag("i")).FindPrevious(opts...); got == nil || got.Text() != "2" {
		t.Fatalf("FindPrevious(b) = %v, want the second b", got)
	}
	if n := len(doc.FindAll(full...)); n != 2 {
		t.Errorf("FindAll(b) after Find = %d results, want 2", n)
	}
}

func TestFindRelatives(t *testing.T) {
	doc := parseFixture(t, `<div class="outer"><div class="inner"><ul><li>1</li><li id="two">2</li><li>3</li></ul></div></div><p>after</p>`)
	two := doc.Find(ID(Eq("two")))
	if two == nil {
		t.Fatal("Find(id=two) = nil")
	}

	classes := func(rs ResultSet) []string {
		var out []string
		for _, n := range rs {
			out = append(out, n.GetOr("class", n.Name))
		}
		return out
	}

	if diff := cmp.Diff([]string{"inner", "outer"}, classes(two.FindParents(Tag("div")))); diff != "" {
		t.Errorf("FindParents() mismatch (-want +got):\n%s", diff)
	}
	if got := two.FindParent(Tag("div")); got == nil || got.GetOr("class", "") != "inner" {
		t.Errorf("FindParent() = %v, want the inner div", got)
	}
	if got := two.FindNextSibling(Tag("li")); got == nil || got.Text() != "3" {
		t.Errorf("FindNextSibling() = %v, want li 3", got)
	}
	if got := two.FindPreviousSibling(Tag("li")); got == nil || got.Text() != "1" {
		t.Errorf("FindPreviousSibling() = %v, want li 1", got)
	}
	if n := len(two.FindNextSiblings()); n != 1 {
		t.Errorf("FindNextSiblings() = %d results, want 1", n)
	}
	if n := len(two.FindPreviousSiblings()); n != 1 {
		t.Errorf("FindPreviousSiblings() = %d results, want 1", n)
	}
	if got := two.FindNext(Tag("p")); got == nil || got.Text() != "after" {
		t.Errorf("FindNext(p) = %v, want the trailing paragraph", got)
	}
	if n := len(two.FindAllNext(Tag("li"))); n != 1 {
		t.Errorf("FindAllNext(li) = %d results, want 1", n)
	}
	if got := two.FindPrevious(Tag("li")); got == nil || got.Text() != "1" {
		t.Errorf("FindPrevious(li) = %v, want li 1", got)
	}
	if diff := cmp.Diff([]string{"ul", "inner", "outer"}, classes(two.FindAllPrevious(Tag("ul", "div")))); diff != "" {
		t.Errorf("FindAllPrevious() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindAll_PrefixedNames(t *testing.T) {
	doc := MustDocument(FromString(`<root xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>T</dc:title><title>U</title></root>`).
		Features("xml").Document())

	if n := len(doc.FindAll(Tag("title"))); n != 2 {
		t.Errorf("FindAll(title) = %d results, want 2", n)
	}
	got := doc.FindAll(Tag("dc:title"))
	if len(got) != 1 || got[0].Text() != "T" {
		t.Errorf("FindAll(dc:title) = %v, want the prefixed element", got)
	}
}

func TestResultSet(t *testing.T) {
	var empty ResultSet
	if empty.First() != nil {
		t.Error("First() on empty ResultSet should be nil")
	}
	if got := empty.String(); got != "[]" {
		t.Errorf("String() = %q, want []", got)
	}

	doc := parseFixture(t, "<i>a</i><i>b</i>")
	if got := doc.FindAll(Tag("i")).String(); !strings.HasPrefix(got, "[<i>a</i>, ") {
		t.Errorf("String() = %q", got)
	}
}
