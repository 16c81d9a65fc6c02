package automaton

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/reggy/internal/lang"
)

// Prefilter conservatively rules out chunks that cannot possibly contain the
// start of any compiled pattern, using an Aho-Corasick automaton over each
// pattern's mandatory literal prefix (a "literal start filter").
// It never produces false negatives: a chunk it rejects genuinely cannot
// start a match, but a chunk it accepts may still fail once walked through
// the DFA. Patterns with no usable literal prefix (e.g. `#...` or
// `(a|b)...`) make the filter unconditionally permissive, since rejecting
// a chunk without a literal to check it against would risk a false
// negative.
type Prefilter struct {
	matcher   *ahocorasick.Matcher
	universal bool // true when at least one pattern has no literal prefix
}

// BuildPrefilter extracts a case-folded literal prefix from each pattern and
// compiles them into a multi-pattern literal matcher. The returned filter is
// always safe to consult before Step-ing the DFA; it is a performance
// optimization, not a correctness boundary.
func BuildPrefilter(patterns []*lang.Node) *Prefilter {
	prefixes := make([]string, 0, len(patterns))
	universal := false
	for _, p := range patterns {
		pre := literalPrefix(p)
		if pre == "" {
			universal = true
			continue
		}
		prefixes = append(prefixes, strings.ToLower(pre))
	}
	if universal || len(prefixes) == 0 {
		return &Prefilter{universal: true}
	}
	return &Prefilter{matcher: ahocorasick.NewStringMatcher(prefixes)}
}

// MayMatch reports whether chunk could possibly contain the start of a
// compiled pattern. A false return means the searcher can skip admitting
// any new VisitedWord over chunk entirely.
func (f *Prefilter) MayMatch(chunk []byte) bool {
	if f.universal || f.matcher == nil {
		return true
	}
	folded := strings.ToLower(string(chunk))
	return len(f.matcher.Match([]byte(folded))) > 0
}

// literalPrefix walks n's leading edge, collecting consecutive literal
// NChar bytes under default case-insensitive folding. It stops at the first
// node that isn't a plain NChar — Digit, Space, Optional, Or, repetition,
// and CaseSensitive subtrees all end the prefix, since none of them commit
// to a single fixed byte sequence the way a bare NChar run does.
func literalPrefix(n *lang.Node) string {
	var sb strings.Builder
	cur := n
	for cur != nil {
		switch cur.Kind {
		case lang.NChar:
			sb.WriteRune(cur.Char)
			cur = nil
		case lang.NSeq:
			if len(cur.Children) == 0 || cur.Children[0].Kind != lang.NChar {
				cur = nil
				continue
			}
			i := 0
			for i < len(cur.Children) && cur.Children[i].Kind == lang.NChar {
				sb.WriteRune(cur.Children[i].Char)
				i++
			}
			cur = nil
		default:
			cur = nil
		}
	}
	return sb.String()
}
