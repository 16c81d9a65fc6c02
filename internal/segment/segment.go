// Package segment turns a UTF-8 haystack into the Unicode-word-bounded
// units the stream searcher steps over (a "segment"). Feed re-derives word
// boundaries from the held-back tail of the previous call plus the new
// chunk, so a word split across a chunk boundary is classified identically
// no matter where the boundary fell — but unlike a naive buffer, it hands
// the still-open trailing segment back to the caller on every call
// alongside the confirmed ones, so the caller can step it into its matcher
// immediately instead of waiting for a later call to close it out.
// Grounded on orig/src/search/mod.rs's use of split_word_bounds,
// generalized from a single whole-string call to an incremental one.
package segment

import (
	"github.com/rivo/uniseg"

	"github.com/coregx/reggy/internal/asciiscan"
)

// Segment is one unicode-word-bounded unit of a haystack.
type Segment struct {
	Text       string
	Whitespace bool // every byte in Text is ASCII space, tab, or newline
}

// Segmenter incrementally splits a stream of chunks into Segments, holding
// the trailing word across calls so that a word split across a chunk
// boundary is classified identically no matter where the boundary fell.
type Segmenter struct {
	pending string
}

// Feed appends chunk to any held-back text and splits the result into
// word-bounded segments. Every segment but the last is confirmed — no
// later call can change how it was split — and is returned in confirmed.
// The last is still open: a following Feed might extend it before a new
// boundary closes it out. It is returned separately as open, with ok false
// only when Feed has never seen any text at all. open is still the
// caller's to act on immediately: re-segmentation only protects where word
// boundaries fall, not when the caller may step a segment's bytes into its
// matcher.
func (s *Segmenter) Feed(chunk string) (confirmed []Segment, open Segment, ok bool) {
	full := s.pending + chunk
	if full == "" {
		return nil, Segment{}, false
	}
	words := splitWords(full)
	last := words[len(words)-1]
	words = words[:len(words)-1]
	s.pending = last
	return classify(words), classifyOne(last), true
}

// Reset clears any buffered trailing text.
func (s *Segmenter) Reset() {
	s.pending = ""
}

func splitWords(s string) []string {
	var words []string
	state := -1
	for len(s) > 0 {
		var word string
		word, s, state = uniseg.FirstWordInString(s, state)
		words = append(words, word)
	}
	return words
}

func classify(words []string) []Segment {
	if len(words) == 0 {
		return nil
	}
	out := make([]Segment, len(words))
	for i, w := range words {
		out[i] = classifyOne(w)
	}
	return out
}

func classifyOne(w string) Segment {
	return Segment{Text: w, Whitespace: asciiscan.IsWhitespaceRun([]byte(w))}
}
