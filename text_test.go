package soup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestText(t *testing.T) {
	doc := parseFixture(t, `<div> a <b>bold</b><!--hidden--><script>var x = 1;</script><style>p {}</style> c </div>`)
	div := mustFirst(t, doc.Node, "div")

	if got, want := div.Text(), " a bold c "; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got, want := div.GetText("|", true), "a|bold|c"; got != want {
		t.Errorf("GetText(|, strip) = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{" a ", "bold", " c "}, div.Strings()); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "bold", "c"}, div.StrippedStrings()); diff != "" {
		t.Errorf("StrippedStrings() mismatch (-want +got):\n%s", diff)
	}

	// a string container answers for its own strings
	if got, want := mustFirst(t, div, "script").Text(), "var x = 1;"; got != want {
		t.Errorf("script.Text() = %q, want %q", got, want)
	}
	if got, want := mustFirst(t, div, "b").StringNode().Text(), "bold"; got != want {
		t.Errorf("string Text() = %q, want %q", got, want)
	}
}

func TestText_Document(t *testing.T) {
	doc := parseFixture(t, paragraphFixture)
	want := "\nThis paragraph has a section which isExtremely bold\n"
	if got := doc.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
