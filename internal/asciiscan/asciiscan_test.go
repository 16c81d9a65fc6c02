package asciiscan

import "testing"

func TestIsASCII(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"hello", true},
		{"hello world this is a longer ascii string over sixteen bytes", true},
		{"café", false},
		{"héllo wörld this is a longer string with accents repeated", false},
	}
	for _, c := range cases {
		if got := IsASCII([]byte(c.in)); got != c.want {
			t.Errorf("IsASCII(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsWhitespaceRun(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{" ", true},
		{"\t\n ", true},
		{" a", false},
		{"a", false},
	}
	for _, c := range cases {
		if got := IsWhitespaceRun([]byte(c.in)); got != c.want {
			t.Errorf("IsWhitespaceRun(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
