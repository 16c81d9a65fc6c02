package lang

import (
	"regexp"
	"strconv"
	"strings"
)

// metaChars mirrors the set a standard byte-oriented regex engine treats as
// special, so Char nodes escape exactly those.
const metaChars = `\.+*?()|[]{}^$`

func isMeta(c rune) bool {
	return strings.ContainsRune(metaChars, c)
}

func escapeChar(c rune) string {
	if isMeta(c) {
		return "\\" + string(c)
	}
	return string(c)
}

// ToRegex emits the externally-visible lowering: the whole pattern
// wrapped in implicit word-boundary assertions and a case-insensitive,
// multi-line group, with Space compiled to `\s+`.
//
//	n, _ := lang.Parse(`dog(gy)?|dawg|(!CAT|KITTY CAT)`)
//	n.ToRegex() // => `\b(?mi:dog(?:gy)?|dawg|(?-i:CAT|KITTY\s+CAT))\b`
func (n *Node) ToRegex() string {
	return `\b(?mi:` + n.toRegex(false, true) + `)\b`
}

// ToInternalRegex emits the lowering the DFA driver compiles from: no outer
// word-boundary assertions (the stream searcher enforces word bounding
// itself) and Space compiled to a single literal space rather than `\s+`
// (the searcher folds whitespace itself before it ever reaches the DFA).
func (n *Node) ToInternalRegex() string {
	return `(?mi:` + n.toRegex(false, false) + `)`
}

// toRegex lowers n. cs tracks whether the enclosing scope is already
// case-sensitive (so nested CaseSensitive wrappers don't re-flip flags).
// external selects between \s+ (true) and a literal space (false) for Space.
func (n *Node) toRegex(cs, external bool) string {
	switch n.Kind {
	case NChar:
		return escapeChar(n.Char)
	case NDigit:
		return `\d`
	case NSpace:
		if external {
			return `\s+`
		}
		return ` `
	case NSeq:
		var b strings.Builder
		for _, c := range n.Children {
			if c.Kind == NOr {
				b.WriteString("(?:")
				b.WriteString(c.toRegex(cs, external))
				b.WriteString(")")
			} else {
				b.WriteString(c.toRegex(cs, external))
			}
		}
		return b.String()
	case NOr:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.toRegex(cs, external)
		}
		return strings.Join(parts, "|")
	case NOptional:
		return wrapRepeat(n.Children[0], "?", "*", cs, external)
	case NZeroOrMore:
		return wrapRepeat(n.Children[0], "*", "*", cs, external)
	case NOneOrMore:
		return wrapRepeat(n.Children[0], "+", "+", cs, external)
	case NQuantifier:
		suffix := "{" + strconv.Itoa(n.Min) + "," + strconv.Itoa(n.Max) + "}"
		return wrapRepeat(n.Children[0], suffix, suffix, cs, external)
	case NCaseSensitive:
		if cs {
			return "(?:" + n.Children[0].toRegex(true, external) + ")"
		}
		return "(?-i:" + n.Children[0].toRegex(true, external) + ")"
	default:
		return ""
	}
}

// wrapRepeat emits inner followed by a postfix repetition suffix, using the
// compact single-atom form for Char/Digit/Space and a non-capturing group
// for everything else. spaceSuffix substitutes for Space specifically (e.g.
// Optional(Space) collapses to `\s*`, not `(?:\s+)?`).
func wrapRepeat(inner *Node, suffix, spaceSuffix string, cs, external bool) string {
	switch inner.Kind {
	case NChar:
		return escapeChar(inner.Char) + suffix
	case NDigit:
		return `\d` + suffix
	case NSpace:
		if external {
			return `\s` + spaceSuffix
		}
		return ` ` + spaceSuffix
	default:
		return "(?:" + inner.toRegex(cs, external) + ")" + suffix
	}
}

// regexpMustCompilable is a light sanity check used in tests to confirm
// ToRegex output is accepted by a standard regex engine (it is not used on
// the matching hot path — the stream searcher compiles patterns through
// internal/automaton directly from the AST).
func regexpMustCompilable(pattern string) bool {
	_, err := regexp.Compile(pattern)
	return err == nil
}
