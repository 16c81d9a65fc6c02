package segment

import "testing"

func texts(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text
	}
	return out
}

func TestFeedReturnsConfirmedAndOpenSegments(t *testing.T) {
	var s Segmenter
	confirmed, open, ok := s.Feed("hello world")
	if len(confirmed) == 0 {
		t.Fatalf("expected at least one confirmed segment")
	}
	if !ok || open.Text == "" {
		t.Fatalf("expected an open trailing segment")
	}
	if s.pending != open.Text {
		t.Fatalf("open segment should mirror buffered pending text")
	}
}

func TestChunkSplitMidWordReassembles(t *testing.T) {
	var whole Segmenter
	confirmed, open, _ := whole.Feed("hello world")
	full := append(confirmed, open)

	var split Segmenter
	var got []Segment
	var lastOpen Segment
	for _, chunk := range []string{"hel", "lo wor", "ld"} {
		c, o, ok := split.Feed(chunk)
		got = append(got, c...)
		if ok {
			lastOpen = o
		}
	}
	got = append(got, lastOpen)

	if len(full) != len(got) {
		t.Fatalf("segment count differs across chunking: whole=%v split=%v", texts(full), texts(got))
	}
	for i := range full {
		if full[i].Text != got[i].Text || full[i].Whitespace != got[i].Whitespace {
			t.Fatalf("segment %d differs: whole=%+v split=%+v", i, full[i], got[i])
		}
	}
}

func TestWhitespaceClassification(t *testing.T) {
	var s Segmenter
	confirmed, open, _ := s.Feed("a b")
	segs := append(confirmed, open)
	foundSpace := false
	for _, seg := range segs {
		if seg.Text == " " {
			foundSpace = true
			if !seg.Whitespace {
				t.Fatalf("single-space segment should classify as whitespace")
			}
		}
	}
	if !foundSpace {
		t.Fatalf("expected a bare space segment among %v", texts(segs))
	}
}

func TestEmptyChunkIsNoop(t *testing.T) {
	var s Segmenter
	s.Feed("abc")
	before := s.pending
	confirmed, _, _ := s.Feed("")
	if confirmed != nil {
		t.Fatalf("expected nil confirmed segments for empty chunk feed")
	}
	if s.pending != before {
		t.Fatalf("empty chunk feed must not disturb buffered state")
	}
}
