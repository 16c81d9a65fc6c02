package reggy

import (
	"bufio"
	"io"
	"iter"
)

// Iter adapts Search to pull from a buffered byte source, yielding each
// match as it becomes available and finishing the stream automatically at
// EOF (a reader iterator; grounded on
// orig/src/search/stream.rs's StreamSearch, adapted from a
// next()-returning-Option Iterator to a Go range-over-func iter.Seq2).
//
// Range over the result with a two-value for loop; a non-nil error ends
// iteration after that yield.
func (s *Search) Iter(r io.Reader) iter.Seq2[Match, error] {
	br := bufio.NewReader(r)
	return func(yield func(Match, error) bool) {
		buf := make([]byte, 4096)
		for {
			n, rerr := br.Read(buf)
			if n > 0 {
				matches, merr := s.NextBytes(buf[:n])
				if merr != nil {
					yield(Match{}, merr)
					return
				}
				for _, m := range matches {
					if !yield(m, nil) {
						return
					}
				}
			}
			if rerr == io.EOF {
				for _, m := range s.Finish() {
					if !yield(m, nil) {
						return
					}
				}
				return
			}
			if rerr != nil {
				yield(Match{}, ioError(rerr))
				return
			}
		}
	}
}
