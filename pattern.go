package reggy

import "sort"

// Pattern is the convenience façade over a single compiled pattern, for
// callers holding the whole haystack in memory at once rather than
// streaming it in chunks.
type Pattern struct {
	search *Search
}

// NewPattern parses source and compiles it as a single-pattern Search.
func NewPattern(source string) (*Pattern, error) {
	s, err := Compile([]string{source})
	if err != nil {
		return nil, err
	}
	return &Pattern{search: s}, nil
}

// FindAll returns every non-overlapping-per-start match span in haystack,
// ordered by start byte.
func (p *Pattern) FindAll(haystack string) [][2]int {
	p.search.Reset()
	matches := p.search.Next(haystack)
	matches = append(matches, p.search.Finish()...)

	sort.Slice(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })

	spans := make([][2]int, len(matches))
	for i, m := range matches {
		spans[i] = [2]int{m.Start, m.End}
	}
	return spans
}
