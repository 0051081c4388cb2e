package soup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelect(t *testing.T) {
	doc := parseFixture(t, `
		<div id="main">
			<ul class="menu">
				<li><a href="/a" class="active">A</a></li>
				<li><a href="/b">B</a></li>
			</ul>
			<p lang="en">text <b>bold</b></p>
		</div>
		<p>outside</p>`)

	tests := []struct {
		css  string
		want []string
	}{
		{"a", []string{"A", "B"}},
		{"ul.menu > li a[href]", []string{"A", "B"}},
		{"a.active", []string{"A"}},
		{"#main p", []string{"text bold"}},
		{"p", []string{"text bold", "outside"}},
		{"li:first-child a", []string{"A"}},
		{"p[lang|=en] b, a[href$=b]", []string{"B", "bold"}},
		{"table", nil},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			res, err := doc.Select(tt.css)
			if err != nil {
				t.Fatalf("Select(%q) error = %v", tt.css, err)
			}
			var got []string
			for _, n := range res {
				got = append(got, n.Text())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Select(%q) mismatch (-want +got):\n%s", tt.css, diff)
			}
		})
	}
}

func TestSelect_FromElement(t *testing.T) {
	doc := parseFixture(t, `<div class="a"><p>1</p><div class="b"><p>2</p></div></div>`)
	inner := doc.Find(Class(Eq("b")))

	// the combinator reaches the outer div, but only descendants of inner
	// are returned
	res, err := inner.Select("div.a p")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(res) != 1 || res[0].Text() != "2" {
		t.Errorf("Select() = %v, want the inner paragraph", res)
	}

	first, err := doc.SelectOne("p")
	if err != nil {
		t.Fatalf("SelectOne() error = %v", err)
	}
	if first == nil || first.Text() != "1" {
		t.Errorf("SelectOne(p) = %v, want the first paragraph", first)
	}

	none, err := doc.SelectOne("span")
	if err != nil || none != nil {
		t.Errorf("SelectOne(span) = %v, %v, want nil, nil", none, err)
	}
}

func TestSelect_InvalidSelector(t *testing.T) {
	doc := parseFixture(t, "<p>x</p>")
	if _, err := doc.Select("p["); err == nil {
		t.Error("Select(p[) should fail")
	}
	if _, err := doc.SelectOne(":::"); err == nil {
		t.Error("SelectOne(:::) should fail")
	}
}
