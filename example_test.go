package soup_test

import (
	"fmt"
	"log"
	"regexp"

	"github.com/tsawler/soup"
)

func ExampleParse() {
	doc, err := soup.Parse(`<p class="lead">Hello <b>world</b></p>`, "html.parser")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(doc.First("b").Text())
	fmt.Println(doc.First("p").GetOr("class", ""))
	// Output:
	// world
	// lead
}

func ExampleNode_FindAll() {
	doc := soup.MustParse(`<ul><li>apple</li><li class="x">pear</li><li>plum</li></ul>`, "html.parser")

	fmt.Println(doc.FindAll(soup.Tag("li"), soup.WithString(soup.Pattern("^p"))))
	fmt.Println(doc.FindAll(soup.Name(soup.Re(regexp.MustCompile("^u")))).First().Name)
	fmt.Println(len(doc.FindAll(soup.Class(soup.Any))))
	// Output:
	// [<li class="x">pear</li>, <li>plum</li>]
	// ul
	// 1
}

func ExampleNode_Wrap() {
	doc := soup.MustParse(`<p>I wish I was bold.</p>`, "html.parser")

	if _, err := doc.First("p").StringNode().Wrap(doc.NewTag("b")); err != nil {
		log.Fatal(err)
	}
	fmt.Println(doc)
	// Output:
	// <p><b>I wish I was bold.</b></p>
}

func ExampleNode_InsertAfter() {
	doc := soup.MustParse(`<div><p>Hello</p></div>`, "html.parser")
	p := doc.First("p")

	if err := p.InsertAfter(soup.Text(" world"), doc.NewTag("hr")); err != nil {
		log.Fatal(err)
	}
	fmt.Println(doc)
	// Output:
	// <div><p>Hello</p> world<hr/></div>
}

func ExampleNode_Prettify() {
	doc := soup.MustParse(`<ul><li>one</li><li>two</li></ul>`, "html.parser")
	fmt.Print(doc.Prettify())
	// Output:
	// <ul>
	//  <li>
	//   one
	//  </li>
	//  <li>
	//   two
	//  </li>
	// </ul>
}

func ExampleNode_Select() {
	doc := soup.MustParse(`<nav><a href="/">Home</a><a href="/docs" class="active">Docs</a></nav>`, "html.parser")

	active := soup.Must(doc.SelectOne("nav a.active"))
	fmt.Println(active.GetOr("href", ""))
	// Output:
	// /docs
}

func ExampleLoader_Document() {
	doc, warnings, err := soup.FromString(`<p class="a b">x</p>`).
		Features("html.parser").
		MultiValuedAttributes(nil).
		Document()
	if err != nil {
		log.Fatal(err)
	}

	attr, _ := doc.First("p").Attr("class")
	fmt.Println(attr.IsMulti(), len(warnings))
	// Output:
	// false 0
}
