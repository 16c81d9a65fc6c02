package reggy

import "github.com/coregx/reggy/internal/lang"

// Ast is a parsed pattern, exposed so callers can inspect or transpile a
// pattern without compiling a Search over it.
type Ast struct {
	node *lang.Node
}

// ParseAst parses source under reggy's pattern dialect and returns its AST.
func ParseAst(source string) (*Ast, error) {
	n, err := lang.Parse(source)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &Ast{node: n}, nil
}

// ToRegex lowers the AST to the externally-visible regular-expression form:
// the whole pattern wrapped in implicit word-boundary assertions and a
// case-insensitive, multi-line group.
//
//	a, _ := reggy.ParseAst(`dog(gy)?|dawg|(!CAT|KITTY CAT)`)
//	a.ToRegex() // => `\b(?mi:dog(?:gy)?|dawg|(?-i:CAT|KITTY\s+CAT))\b`
func (a *Ast) ToRegex() string {
	return a.node.ToRegex()
}

// MaxBytes returns a conservative upper bound on how many bytes any single
// match of the pattern can consume.
func (a *Ast) MaxBytes() int {
	return a.node.MaxBytes()
}
