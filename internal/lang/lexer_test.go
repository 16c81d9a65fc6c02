package lang

import "testing"

func drainKinds(t *testing.T, src string) []Kind {
	t.Helper()
	toks := drain(src)
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexerReservedChars(t *testing.T) {
	kinds := drainKinds(t, `|?()!*+`)
	want := []Kind{KindOr, KindQMark, KindLParen, KindRParen, KindExclam, KindStar, KindPlus}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
}

func TestLexerHashIsDigit(t *testing.T) {
	toks := drain(`#`)
	if len(toks) != 1 || toks[0].Kind != KindDigit {
		t.Fatalf("expected single KindDigit token, got %+v", toks)
	}
}

func TestLexerBounds(t *testing.T) {
	toks := drain(`a\d\?`)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}
	if s, e := toks[0].Bounds(); s != 0 || e != 1 {
		t.Fatalf("token 0 bounds = (%d,%d), want (0,1)", s, e)
	}
	if s, e := toks[1].Bounds(); s != 1 || e != 3 {
		t.Fatalf("token 1 (\\d) bounds = (%d,%d), want (1,3)", s, e)
	}
	if s, e := toks[2].Bounds(); s != 3 || e != 5 {
		t.Fatalf("token 2 (\\?) bounds = (%d,%d), want (3,5)", s, e)
	}
}

func TestLexerDanglingEscape(t *testing.T) {
	toks := drain(`a\`)
	last := toks[len(toks)-1]
	if last.Kind != KindError {
		t.Fatalf("expected trailing error token, got %+v", last)
	}
	e, ok := last.Err.(*Error)
	if !ok || e.Kind != ErrKindDanglingEscape {
		t.Fatalf("expected dangling escape, got %v", last.Err)
	}
}

func TestLexerUnicodeSingleToken(t *testing.T) {
	toks := drain(`Ⲁ`)
	if len(toks) != 1 || toks[0].Kind != KindChar || toks[0].Char != 'Ⲁ' {
		t.Fatalf("expected single Char('Ⲁ') token, got %+v", toks)
	}
}
