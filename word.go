package reggy

import "github.com/coregx/reggy/internal/automaton"

// visitedWord is an in-flight match attempt rooted at a particular input
// position. It is opened at a word boundary
// that could begin a match, advanced by each subsequent segment, and
// retired when its DFA state dies (its pending candidates are reported at
// that point) or the stream ends. A word whose candidates have all been
// promoted to definitely-complete matches is not retired for that reason;
// it stays live until its DFA state dies or the stream ends.
type visitedWord struct {
	startByte     int
	wsFoldedStart int
	state         automaton.StateID
	candidateEnds map[automaton.PatternID]int // pattern -> best known end byte
}

func newVisitedWord(startByte, wsFoldedStart int, dfa *automaton.DFA) *visitedWord {
	return &visitedWord{
		startByte:     startByte,
		wsFoldedStart: wsFoldedStart,
		state:         dfa.InitialState(),
		candidateEnds: make(map[automaton.PatternID]int),
	}
}

// dump converts every remaining candidate end into a final Match.
func (w *visitedWord) dump() []Match {
	if len(w.candidateEnds) == 0 {
		return nil
	}
	out := make([]Match, 0, len(w.candidateEnds))
	for pid, end := range w.candidateEnds {
		out = append(out, Match{PatternID: uint32(pid), Start: w.startByte, End: end})
	}
	return out
}

// retireable reports whether w can be dropped outright: no further state to
// reach a match, and nothing pending to flush at finish.
func (w *visitedWord) retireable(dfa *automaton.DFA) bool {
	return dfa.IsDead(w.state) && len(w.candidateEnds) == 0
}
