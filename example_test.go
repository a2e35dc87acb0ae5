package mdlite_test

import (
	"fmt"

	mdlite "github.com/alnah/go-mdlite"
)

func ExampleParse() {
	fmt.Println(mdlite.Parse("# Hello"))
	// Output: <h1>Hello</h1>
}

func ExampleParseDocument() {
	doc := mdlite.ParseDocument("---\ntitle: \"My Post\"\nfeatured: true\n---\n# Hi")

	title, _ := doc.Frontmatter.Get("title")
	fmt.Println(title)
	fmt.Println(doc.Content)
	// Output:
	// My Post
	// <h1>Hi</h1>
}

func ExampleSlugify() {
	fmt.Println(mdlite.Slugify("Hello, World! 2025"))
	// Output: hello-world-2025
}
