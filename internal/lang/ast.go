package lang

// NodeKind is the tag of an AST node. The set is closed: every consumer
// switches over it exhaustively rather than dispatching through an open
// interface.
type NodeKind int

const (
	NChar NodeKind = iota
	NDigit
	NSpace
	NSeq
	NOr
	NOptional
	NZeroOrMore
	NOneOrMore
	NQuantifier
	NCaseSensitive
)

// Node is a reggy pattern AST node. Only the fields relevant to Kind are
// populated:
//
//	NChar          Char
//	NSeq, NOr      Children
//	NOptional      Children[0]
//	NZeroOrMore    Children[0]
//	NOneOrMore     Children[0]
//	NQuantifier    Children[0], Min, Max (both inclusive)
//	NCaseSensitive Children[0]
type Node struct {
	Kind     NodeKind
	Char     rune
	Children []*Node
	Min, Max int
}

func charNode(c rune) *Node { return &Node{Kind: NChar, Char: c} }
func digitNode() *Node      { return &Node{Kind: NDigit} }
func spaceNode() *Node      { return &Node{Kind: NSpace} }

// IsCS reports whether n is inherently case-agnostic: Digit, Space,
// CaseSensitive, or an aggregate containing only such nodes. This drives the
// CaseSensitive-elision normalization in CaseSensitive below.
func (n *Node) IsCS() bool {
	switch n.Kind {
	case NChar:
		return false
	case NDigit, NSpace, NCaseSensitive:
		return true
	case NOptional, NZeroOrMore, NOneOrMore, NQuantifier:
		return n.Children[0].IsCS()
	case NOr, NSeq:
		for _, c := range n.Children {
			if !c.IsCS() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CaseSensitive wraps inner in a case-sensitive subtree, eliding the wrapper
// when inner is already case-agnostic.
func CaseSensitive(inner *Node) *Node {
	if inner.IsCS() {
		return inner
	}
	return &Node{Kind: NCaseSensitive, Children: []*Node{inner}}
}

// Then appends rhs after lhs in a concatenation, folding adjacent Space
// nodes so a Seq never holds two in a row.
func Then(lhs, rhs *Node) *Node {
	if lhs.Kind == NSeq {
		if rhs.Kind == NSpace && len(lhs.Children) > 0 && lhs.Children[len(lhs.Children)-1].Kind == NSpace {
			return lhs
		}
		lhs.Children = append(lhs.Children, rhs)
		return lhs
	}
	if lhs.Kind == NSpace && rhs.Kind == NSpace {
		return lhs
	}
	return &Node{Kind: NSeq, Children: []*Node{lhs, rhs}}
}

// Or combines lhs and rhs into an alternation, flattening a left-associated
// chain instead of nesting.
func Or(lhs, rhs *Node) *Node {
	if lhs.Kind == NOr {
		lhs.Children = append(lhs.Children, rhs)
		return lhs
	}
	return &Node{Kind: NOr, Children: []*Node{lhs, rhs}}
}

func optional(inner *Node) *Node    { return &Node{Kind: NOptional, Children: []*Node{inner}} }
func zeroOrMore(inner *Node) *Node  { return &Node{Kind: NZeroOrMore, Children: []*Node{inner}} }
func oneOrMore(inner *Node) *Node   { return &Node{Kind: NOneOrMore, Children: []*Node{inner}} }
func quantifier(inner *Node, min, max int) *Node {
	return &Node{Kind: NQuantifier, Children: []*Node{inner}, Min: min, Max: max}
}

// MaxBytes returns a conservative upper bound on how many bytes any single
// match of n can consume. It must never underestimate.
func (n *Node) MaxBytes() int {
	switch n.Kind {
	case NChar:
		return len(string(n.Char))
	case NDigit, NSpace:
		return 1
	case NCaseSensitive, NOptional:
		return n.Children[0].MaxBytes()
	case NZeroOrMore, NOneOrMore:
		// Unbounded repetition has no finite maximum; the searcher treats
		// this as "never definitely complete until the DFA dies or the
		// stream ends" by reporting a sentinel that can't be reached via
		// ws-folded distance growth alone. We approximate with a very
		// large bound so promotion effectively never fires early; dead
		// states and stream end still retire these candidates correctly.
		return maxBytesUnbounded
	case NQuantifier:
		return n.Children[0].MaxBytes() * n.Max
	case NOr:
		m := 0
		for _, c := range n.Children {
			if b := c.MaxBytes(); b > m {
				m = b
			}
		}
		return m
	case NSeq:
		sum := 0
		for _, c := range n.Children {
			sum += c.MaxBytes()
		}
		return sum
	default:
		return 0
	}
}

// maxBytesUnbounded stands in for "no finite bound" for Kleene-star/plus
// subtrees, which have no natural finite upper bound to define a rule for
// (the table only covers Char/Digit/Space/Optional/Or/Seq/Quantifier).
const maxBytesUnbounded = 1 << 30
