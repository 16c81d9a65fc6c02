package automaton

import (
	"testing"

	"github.com/coregx/reggy/internal/lang"
)

func buildOne(t *testing.T, src string) *DFA {
	t.Helper()
	n := mustParse(t, src)
	d, err := Build([]*lang.Node{n})
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return d
}

func step(d *DFA, s StateID, bs string) StateID {
	for i := 0; i < len(bs); i++ {
		s = d.Step(s, bs[i])
	}
	return s
}

func TestDFAMatchesLiteral(t *testing.T) {
	d := buildOne(t, `abc`)
	s := step(d, d.InitialState(), "abc")
	if !d.IsMatch(s) {
		t.Fatalf("expected match state after consuming \"abc\"")
	}
	if got := d.MatchPatterns(s); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected pattern 0, got %v", got)
	}
}

func TestDFACaseInsensitiveByDefault(t *testing.T) {
	d := buildOne(t, `abc`)
	s := step(d, d.InitialState(), "ABC")
	if !d.IsMatch(s) {
		t.Fatalf("expected case-insensitive match for \"ABC\"")
	}
}

func TestDFACaseSensitiveGroupRejectsFold(t *testing.T) {
	d := buildOne(t, `(!abc)`)
	s := step(d, d.InitialState(), "ABC")
	if d.IsMatch(s) {
		t.Fatalf("case-sensitive literal unexpectedly matched differently-cased input")
	}
}

func TestDFADeadStateIsSticky(t *testing.T) {
	d := buildOne(t, `abc`)
	s := step(d, d.InitialState(), "xyz")
	if !d.IsDead(s) {
		t.Fatalf("expected dead state after non-matching prefix")
	}
	s2 := d.Step(s, 'a')
	if !d.IsDead(s2) {
		t.Fatalf("dead state must stay dead on further input")
	}
}

func TestDFAMultiPatternBothReported(t *testing.T) {
	a := mustParse(t, `ab`)
	b := mustParse(t, `ab?`)
	d, err := Build([]*lang.Node{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := step(d, d.InitialState(), "ab")
	got := d.MatchPatterns(s)
	if len(got) != 2 {
		t.Fatalf("expected both patterns to have matched by \"ab\", got %v", got)
	}
}

func TestDFAQuantifierBounds(t *testing.T) {
	d := buildOne(t, `a{2,3}`)
	s1 := step(d, d.InitialState(), "a")
	if d.IsMatch(s1) {
		t.Fatalf("single 'a' should not satisfy a{2,3}")
	}
	s2 := d.Step(s1, 'a')
	if !d.IsMatch(s2) {
		t.Fatalf("\"aa\" should satisfy a{2,3}")
	}
	s3 := d.Step(s2, 'a')
	if !d.IsMatch(s3) {
		t.Fatalf("\"aaa\" should satisfy a{2,3}")
	}
	if !d.IsDead(d.Step(s3, 'a')) {
		t.Fatalf("\"aaaa\" should exceed a{2,3} and die")
	}
}
