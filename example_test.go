package reggy_test

import (
	"fmt"

	"github.com/coregx/reggy"
)

// ExamplePattern_FindAll demonstrates matching every occurrence of a
// pattern over a whole in-memory haystack.
func ExamplePattern_FindAll() {
	p, err := reggy.NewPattern(`dogs?`)
	if err != nil {
		panic(err)
	}
	for _, span := range p.FindAll("cat dog dogs cats") {
		fmt.Println(span)
	}
	// Output:
	// [4 7]
	// [8 12]
}

// ExampleCompile demonstrates the streaming searcher over a single chunk.
func ExampleCompile() {
	s, err := reggy.Compile([]string{`(John|Jane) Doe`})
	if err != nil {
		panic(err)
	}
	for _, m := range s.Next("Jane Doe") {
		fmt.Println(m.Start, m.End)
	}
	// Output:
	// 0 8
}

// ExampleParseAst demonstrates lowering a pattern to its regular-expression
// form without compiling a searcher over it.
func ExampleParseAst() {
	a, err := reggy.ParseAst(`dog(gy)?|dawg|(!CAT|KITTY CAT)`)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.ToRegex())
	// Output:
	// \b(?mi:dog(?:gy)?|dawg|(?-i:CAT|KITTY\s+CAT))\b
}
