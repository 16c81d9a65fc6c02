package automaton

import (
	"unicode"
	"unicode/utf8"

	"github.com/coregx/reggy/internal/conv"
	"github.com/coregx/reggy/internal/lang"
)

// PatternID identifies one of the patterns compiled into a set.
type PatternID uint32

const noTarget uint32 = ^uint32(0)

type opcode uint8

const (
	opByteRange opcode = iota // matches a single byte in [lo, hi], goto out
	opSplit                   // epsilon to out and out2, tried in order
	opNop                     // unconditional epsilon to out
	opMatch                   // records Pattern as matched, terminal
)

type inst struct {
	op      opcode
	lo, hi  byte
	out     uint32
	out2    uint32
	pattern PatternID
}

// nfa is a Thompson construction over one or more patterns. Each pattern
// keeps its own start instruction; the DFA driver seeds determinization
// from the union of all of them, which is what makes a single automaton
// report matches for every pattern simultaneously (the "all overlapping
// patterns" match kind).
type nfa struct {
	insts  []inst
	starts []uint32
}

// patch is a dangling instruction output awaiting a target.
type patch struct {
	inst  uint32
	which uint8 // 0 => out, 1 => out2
}

// frag is a partially-built NFA fragment: an entry point and a list of
// dangling outputs to be patched to whatever follows.
type frag struct {
	start uint32
	outs  []patch
}

type builder struct {
	insts []inst
}

func (b *builder) add(i inst) uint32 {
	b.insts = append(b.insts, i)
	return conv.IntToUint32(len(b.insts) - 1)
}

func (b *builder) patch(outs []patch, target uint32) {
	for _, p := range outs {
		if p.which == 0 {
			b.insts[p.inst].out = target
		} else {
			b.insts[p.inst].out2 = target
		}
	}
}

// buildNFA compiles patterns (already normalized per lang's AST invariants)
// into a combined multi-pattern NFA.
func buildNFA(patterns []*lang.Node) (*nfa, error) {
	b := &builder{}
	starts := make([]uint32, len(patterns))
	for i, p := range patterns {
		f := b.compile(p, false)
		m := b.add(inst{op: opMatch, pattern: PatternID(i)})
		b.patch(f.outs, m)
		starts[i] = f.start
	}
	return &nfa{insts: b.insts, starts: starts}, nil
}

func (b *builder) compile(n *lang.Node, cs bool) frag {
	switch n.Kind {
	case lang.NChar:
		return b.compileChar(n.Char, cs)
	case lang.NDigit:
		return b.compileByteRange('0', '9')
	case lang.NSpace:
		return b.compileByteRange(' ', ' ')
	case lang.NSeq:
		return b.compileSeq(n.Children, cs)
	case lang.NOr:
		return b.compileOr(n.Children, cs)
	case lang.NOptional:
		return b.makeOptional(b.compile(n.Children[0], cs))
	case lang.NZeroOrMore:
		return b.makeZeroOrMore(n.Children[0], cs)
	case lang.NOneOrMore:
		return b.makeOneOrMore(n.Children[0], cs)
	case lang.NQuantifier:
		return b.compileQuantifier(n.Children[0], n.Min, n.Max, cs)
	case lang.NCaseSensitive:
		return b.compile(n.Children[0], true)
	default:
		return b.emptyFrag()
	}
}

func (b *builder) emptyFrag() frag {
	i := b.add(inst{op: opNop, out: noTarget})
	return frag{start: i, outs: []patch{{inst: i, which: 0}}}
}

func (b *builder) compileByteRange(lo, hi byte) frag {
	i := b.add(inst{op: opByteRange, lo: lo, hi: hi, out: noTarget})
	return frag{start: i, outs: []patch{{inst: i, which: 0}}}
}

// compileChar compiles a literal rune, expanding to every byte-exact
// Unicode simple-case-fold variant when cs is false (the default). Variants
// with a different UTF-8 length than c are skipped: they cannot be reached
// by a byte-range chain built for c's own length, and simple folding across
// differing encoded lengths is rare enough in practice (and explicitly out
// of scope for this dialect's character classes) not to chase.
func (b *builder) compileChar(c rune, cs bool) frag {
	variants := []rune{c}
	if !cs {
		variants = foldVariants(c)
	}

	var alt frag
	first := true
	for _, v := range variants {
		f := b.compileExactRune(v)
		if first {
			alt = f
			first = false
		} else {
			alt = b.altFrag(alt, f)
		}
	}
	return alt
}

// foldVariants returns c plus every rune unicode.SimpleFold reaches whose
// UTF-8 encoded length matches c's, deduplicated, c first.
func foldVariants(c rune) []rune {
	out := []rune{c}
	width := utf8.RuneLen(c)
	for f := unicode.SimpleFold(c); f != c; f = unicode.SimpleFold(f) {
		if utf8.RuneLen(f) == width {
			out = append(out, f)
		}
	}
	return out
}

func (b *builder) compileExactRune(r rune) frag {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return b.compileExactBytes(buf[:n])
}

func (b *builder) compileExactBytes(bs []byte) frag {
	var f frag
	first := true
	for _, byt := range bs {
		next := b.compileByteRange(byt, byt)
		if first {
			f = next
			first = false
		} else {
			b.patch(f.outs, next.start)
			f.outs = next.outs
		}
	}
	return f
}

func (b *builder) compileSeq(children []*lang.Node, cs bool) frag {
	var f frag
	first := true
	for _, c := range children {
		next := b.compile(c, cs)
		if first {
			f = next
			first = false
		} else {
			b.patch(f.outs, next.start)
			f.outs = next.outs
		}
	}
	if first {
		return b.emptyFrag()
	}
	return f
}

func (b *builder) compileOr(children []*lang.Node, cs bool) frag {
	var alt frag
	first := true
	for _, c := range children {
		f := b.compile(c, cs)
		if first {
			alt = f
			first = false
		} else {
			alt = b.altFrag(alt, f)
		}
	}
	return alt
}

// altFrag joins two fragments as alternatives via a split instruction.
func (b *builder) altFrag(a, c frag) frag {
	s := b.add(inst{op: opSplit, out: a.start, out2: c.start})
	outs := make([]patch, 0, len(a.outs)+len(c.outs))
	outs = append(outs, a.outs...)
	outs = append(outs, c.outs...)
	return frag{start: s, outs: outs}
}

func (b *builder) makeOptional(inner frag) frag {
	s := b.add(inst{op: opSplit, out: inner.start, out2: noTarget})
	outs := append([]patch{{inst: s, which: 1}}, inner.outs...)
	return frag{start: s, outs: outs}
}

func (b *builder) makeZeroOrMore(n *lang.Node, cs bool) frag {
	inner := b.compile(n, cs)
	s := b.add(inst{op: opSplit, out: inner.start, out2: noTarget})
	b.patch(inner.outs, s)
	return frag{start: s, outs: []patch{{inst: s, which: 1}}}
}

func (b *builder) makeOneOrMore(n *lang.Node, cs bool) frag {
	inner := b.compile(n, cs)
	s := b.add(inst{op: opSplit, out: inner.start, out2: noTarget})
	b.patch(inner.outs, s)
	return frag{start: inner.start, outs: []patch{{inst: s, which: 1}}}
}

// compileQuantifier builds min mandatory copies followed by (max-min)
// greedy-optional copies, each a fresh compilation (patterns are small and
// {n,m} bounds are expected to be small in this dialect).
func (b *builder) compileQuantifier(n *lang.Node, min, max int, cs bool) frag {
	if max == 0 {
		return b.emptyFrag()
	}

	var result frag
	for i := 0; i < max; i++ {
		next := b.compile(n, cs)
		if i >= min {
			next = b.makeOptional(next)
		}
		if i == 0 {
			result = next
		} else {
			b.patch(result.outs, next.start)
			result.outs = next.outs
		}
	}
	return result
}
