package reggy

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/reggy/internal/asciiscan"
	"github.com/coregx/reggy/internal/automaton"
	"github.com/coregx/reggy/internal/lang"
	"github.com/coregx/reggy/internal/segment"
)

// Search is the multi-pattern streaming searcher: it
// advances a population of in-flight visitedWords across chunk
// boundaries, folding whitespace and reassembling ragged UTF-8 edges, and
// decides when a pending candidate becomes a definitely-complete match it
// can report immediately versus a pending one retained until Finish.
//
// A Search owns its position and word set exclusively; it is not safe for
// concurrent use. Its DFA is determinized lazily: Step adds newly
// discovered states to the DFA's cache, so the DFA is not read-only and is
// not safe to share between goroutines.
type Search struct {
	dfa      *automaton.DFA
	maxBytes []int // per_pattern_max_bytes, indexed by PatternID
	pf       *automaton.Prefilter

	seg               segment.Segmenter
	pos               int
	wsFoldedPos       int
	prevWasWhitespace bool
	words             []*visitedWord

	// openFed tracks how much of the current trailing (not yet confirmed)
	// segment has already been stepped into the DFA, so a later call that
	// extends it feeds only the new bytes instead of re-admitting or
	// re-stepping what a previous call already processed. openFed is only
	// meaningful while openPending is true.
	openPending bool
	openFed     int

	raggedTail []byte
}

// Compile parses sources and builds a Search over the resulting patterns.
func Compile(sources []string) (*Search, error) {
	asts := make([]*Ast, len(sources))
	for i, src := range sources {
		a, err := ParseAst(src)
		if err != nil {
			return nil, err
		}
		asts[i] = a
	}
	return New(asts)
}

// New builds a Search directly from already-parsed patterns.
func New(patterns []*Ast) (*Search, error) {
	nodes := make([]*lang.Node, len(patterns))
	for i, a := range patterns {
		nodes[i] = a.node
	}
	dfa, err := automaton.Build(nodes)
	if err != nil {
		return nil, err
	}
	maxBytes := make([]int, len(patterns))
	for i, a := range patterns {
		maxBytes[i] = a.MaxBytes()
	}
	return &Search{
		dfa:      dfa,
		maxBytes: maxBytes,
		pf:       automaton.BuildPrefilter(nodes),
	}, nil
}

// Next feeds one UTF-8 chunk and returns every match that became
// definitely complete during this call — including ones ending in the
// chunk's trailing word, which is stepped immediately rather than held
// back for a later call to report.
func (s *Search) Next(chunk string) []Match {
	if len(s.raggedTail) > 0 {
		panic("reggy: Next called while a ragged UTF-8 tail is buffered; use NextBytes consistently or finish the stream first")
	}
	confirmed, open, ok := s.seg.Feed(chunk)

	var out []Match
	for i, seg := range confirmed {
		if i == 0 && s.openPending {
			out = append(out, s.continueSegment(seg.Whitespace, seg.Text[s.openFed:])...)
			s.openPending = false
			continue
		}
		out = append(out, s.stepSegment(seg, true)...)
	}

	switch {
	case !ok:
		s.openPending = false
	case s.openPending:
		out = append(out, s.continueSegment(open.Whitespace, open.Text[s.openFed:])...)
		s.openFed = len(open.Text)
	default:
		out = append(out, s.stepSegment(open, false)...)
		s.openPending = true
		s.openFed = len(open.Text)
	}
	return out
}

// NextBytes feeds one raw byte chunk, reassembling UTF-8 sequences split
// across the chunk boundary. A definitive invalid encoding
// in the interior returns a *StreamError with ErrKindUTF8; an incomplete
// trailing sequence is buffered, not an error.
func (s *Search) NextBytes(chunk []byte) ([]Match, error) {
	full := make([]byte, 0, len(s.raggedTail)+len(chunk))
	full = append(full, s.raggedTail...)
	full = append(full, chunk...)

	valid, tail, err := splitValidUTF8(full)
	if err != nil {
		return nil, utf8Error(err)
	}
	s.raggedTail = tail
	return s.Next(valid), nil
}

// splitValidUTF8 returns the longest valid-UTF-8 prefix of b and any
// trailing 1-3 bytes that are an incomplete (not yet invalid) encoding. A
// chunk that is pure ASCII (the common case for natural-language streams)
// is necessarily already valid and byte-aligned, so it skips the
// rune-by-rune decode loop entirely.
func splitValidUTF8(b []byte) (valid string, tail []byte, err error) {
	if asciiscan.IsASCII(b) {
		return string(b), nil, nil
	}
	i := 0
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			if size == 0 {
				break
			}
			rest := b[i:]
			if !utf8.FullRune(rest) {
				return string(b[:i]), append([]byte(nil), rest...), nil
			}
			return "", nil, &invalidUTF8Error{offset: i}
		}
		i += size
	}
	return string(b), nil, nil
}

type invalidUTF8Error struct{ offset int }

func (e *invalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 encoding at byte offset %d", e.offset)
}

// Finish flushes: every remaining live word's pending candidates are
// reported as final matches regardless of the definitely-complete
// threshold (the trailing segment's bytes were already stepped by Next).
// The searcher is then reset.
func (s *Search) Finish() []Match {
	out := s.drain()
	s.Reset()
	return out
}

// PeekFinish returns what Finish would return, without resetting.
func (s *Search) PeekFinish() []Match {
	return s.clone().drain()
}

// Reset clears all position and word-set state, rearming the searcher as
// if freshly constructed over the same compiled pattern set. The
// underlying DFA is not rebuilt.
func (s *Search) Reset() {
	s.seg.Reset()
	s.pos = 0
	s.wsFoldedPos = 0
	s.prevWasWhitespace = false
	s.words = nil
	s.openPending = false
	s.openFed = 0
	s.raggedTail = nil
}

// drain dumps every live word's remaining candidates as final matches. The
// trailing open segment needs no special handling here: Next already
// stepped every byte of it into the DFA as it arrived, so by the time
// drain runs there is nothing left unfed.
func (s *Search) drain() []Match {
	var out []Match
	for _, w := range s.words {
		out = append(out, w.dump()...)
	}
	return out
}

func (s *Search) clone() *Search {
	words := make([]*visitedWord, len(s.words))
	for i, w := range s.words {
		cp := *w
		cp.candidateEnds = make(map[automaton.PatternID]int, len(w.candidateEnds))
		for k, v := range w.candidateEnds {
			cp.candidateEnds[k] = v
		}
		words[i] = &cp
	}
	return &Search{
		dfa:               s.dfa,
		maxBytes:          s.maxBytes,
		pf:                s.pf,
		seg:               s.seg,
		pos:               s.pos,
		wsFoldedPos:       s.wsFoldedPos,
		prevWasWhitespace: s.prevWasWhitespace,
		words:             words,
		openPending:       s.openPending,
		openFed:           s.openFed,
	}
}

// stepSegment implements the per-segment stepping algorithm for a segment
// seen here in full for the first time: it snapshots pos/ws_folded_pos,
// applies whitespace folding, optionally admits a new VisitedWord anchored
// at this segment's start, and feeds the segment's bytes through the DFA.
//
// confirmed is false for the chunk's still-open trailing segment: seg.Text
// is only a prefix of the eventual word, and a prefilter that legitimately
// rules out seg.Text (too short to contain any pattern's literal start) may
// not rule out the word once later chunks extend it. Since a segment is
// admitted at most once — continueSegment never re-admits — skipping the
// prefilter here and always admitting is the only safe choice; it only
// costs the prefilter's win on a word that turns out to be one chunk long.
func (s *Search) stepSegment(seg segment.Segment, confirmed bool) []Match {
	startPos, startWSFolded := s.pos, s.wsFoldedPos
	s.pos += len(seg.Text)

	if seg.Whitespace && s.prevWasWhitespace {
		return nil
	}
	if seg.Whitespace {
		s.wsFoldedPos++
	} else {
		s.wsFoldedPos += len(seg.Text)
	}
	s.prevWasWhitespace = seg.Whitespace

	if !confirmed || s.pf == nil || s.pf.MayMatch([]byte(seg.Text)) {
		s.words = append(s.words, newVisitedWord(startPos, startWSFolded, s.dfa))
	}

	if seg.Whitespace {
		return s.feedBytes([]byte{' '})
	}
	return s.feedBytes([]byte(seg.Text))
}

// continueSegment feeds newly arrived bytes of an already-open segment —
// one whose start was already processed by stepSegment in an earlier call
// — into every live word. No new VisitedWord is admitted and no fold
// decision is repeated, since both happened when the segment was first
// opened. A whitespace segment was already represented by its single
// folded byte at that time, so delta is ignored for it.
func (s *Search) continueSegment(whitespace bool, delta string) []Match {
	s.pos += len(delta)
	if whitespace {
		return nil
	}
	s.wsFoldedPos += len(delta)
	return s.feedBytes([]byte(delta))
}

// feedBytes steps bytesToFeed through every live word, retiring dead ones
// and promoting definitely-complete candidates.
func (s *Search) feedBytes(bytesToFeed []byte) []Match {
	var out []Match
	live := s.words[:0]
	for _, w := range s.words {
		for _, b := range bytesToFeed {
			w.state = s.dfa.Step(w.state, b)
		}

		if s.dfa.IsDead(w.state) {
			out = append(out, w.dump()...)
			continue
		}

		eoi := s.dfa.EOIClose(w.state)
		if s.dfa.IsMatch(eoi) {
			for _, pid := range s.dfa.MatchPatterns(eoi) {
				w.candidateEnds[pid] = s.pos
			}
		}

		for pid, end := range w.candidateEnds {
			if s.wsFoldedPos-w.wsFoldedStart >= s.maxBytes[pid] {
				out = append(out, Match{PatternID: uint32(pid), Start: w.startByte, End: end})
				delete(w.candidateEnds, pid)
			}
		}

		if w.retireable(s.dfa) {
			continue
		}
		live = append(live, w)
	}
	s.words = live

	return out
}
