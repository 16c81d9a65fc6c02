package automaton

import (
	"testing"

	"github.com/coregx/reggy/internal/lang"
)

func TestLiteralPrefixPlainWord(t *testing.T) {
	n := mustParse(t, `dog(gy)?`)
	if got := literalPrefix(n); got != "dog" {
		t.Fatalf("literalPrefix = %q, want %q", got, "dog")
	}
}

func TestLiteralPrefixDigitStopsExtraction(t *testing.T) {
	n := mustParse(t, `#23`)
	if got := literalPrefix(n); got != "" {
		t.Fatalf("literalPrefix = %q, want empty (leads with digit)", got)
	}
}

func TestPrefilterRejectsAbsentLiteral(t *testing.T) {
	pf := BuildPrefilter([]*lang.Node{mustParse(t, `dog`), mustParse(t, `cat`)})
	if pf.MayMatch([]byte("a field of grass")) {
		t.Fatalf("expected MayMatch to reject a chunk with neither literal")
	}
	if !pf.MayMatch([]byte("the dog ran")) {
		t.Fatalf("expected MayMatch to accept a chunk containing \"dog\"")
	}
}

func TestPrefilterCaseInsensitiveByDefault(t *testing.T) {
	pf := BuildPrefilter([]*lang.Node{mustParse(t, `dog`)})
	if !pf.MayMatch([]byte("DOG")) {
		t.Fatalf("expected case-insensitive prefilter to accept \"DOG\"")
	}
}

func TestPrefilterUniversalWhenNoLiteral(t *testing.T) {
	pf := BuildPrefilter([]*lang.Node{mustParse(t, `#23`)})
	if !pf.MayMatch([]byte("anything at all")) {
		t.Fatalf("expected universal prefilter to accept any chunk")
	}
}
