package soup

import (
	"testing"
)

// familyFixture has elements with zero, one and two children and a tag
// with multi-valued attributes.
const familyFixture = `
            <html>
              <body>
                <nochild></nochild>
                <onechild><child></child></onechild>
                <twochildren><child1></child1><child2></child2></twochildren>
                <grandchildren><withchild>a</withchild><withchild2>b</withchild2></grandchildren>
                <a id="34df9e" class="class-a class-b" rel="nofollow"></a>
              </body>
            </html>
        `

// paragraphFixture is a single paragraph holding a bold run.
const paragraphFixture = `
                <html><body><p>This paragraph has a section which is<b class="boldest">Extremely bold</b></p></body></html>
            `

// helloFixture has a paragraph inside a div, and a second div mixing an
// element with loose text.
const helloFixture = `
                <html>
                    <body>
                        <div><p>Hello World</p></div>
                        <div class="test_insert"><p> Hello World </p> Hello World </div>
                    </body>
                </html>
            `

// parseFixture parses markup with html.parser, failing the test on error.
func parseFixture(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := Parse(markup, "html.parser")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

// mustFirst returns the first element named name, failing the test if
// there is none.
func mustFirst(t *testing.T, n *Node, name string) *Node {
	t.Helper()
	found := n.First(name)
	if found == nil {
		t.Fatalf("First(%q) = nil", name)
	}
	return found
}

// assertSameNodes checks that got holds exactly the nodes in want, by
// identity and in order.
func assertSameNodes(t *testing.T, what string, got, want []*Node) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d nodes %v, want %d %v", what, len(got), ResultSet(got), len(want), ResultSet(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", what, i, got[i], want[i])
		}
	}
}
