package lang

import "testing"

func TestToRegexReadmeExample(t *testing.T) {
	n, err := Parse(`dog(gy)?|dawg|(!CAT|KITTY CAT)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := n.ToRegex()
	want := `\b(?mi:dog(?:gy)?|dawg|(?-i:CAT|KITTY\s+CAT))\b`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !regexpMustCompilable(got) {
		t.Fatalf("ToRegex output not accepted by regexp: %q", got)
	}
}

func TestToInternalRegexDropsWordBoundsAndFoldsSpace(t *testing.T) {
	n, err := Parse(`a b`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := n.ToInternalRegex()
	want := `(?mi:a b)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToRegexQuantifier(t *testing.T) {
	n, err := Parse(`(very ){1,4}strange`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := n.ToRegex()
	if !regexpMustCompilable(got) {
		t.Fatalf("ToRegex output not accepted by regexp: %q", got)
	}
}

func TestMaxBytes(t *testing.T) {
	cases := []struct {
		pattern string
		want    int
	}{
		{`abc`, 3},
		{`a?`, 1},
		{`a{2,4}`, 4},
		{`#`, 1},
		{`a|bcd`, 3},
		{`café`, len("café")},
	}
	for _, c := range cases {
		n, err := Parse(c.pattern)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.pattern, err)
		}
		if got := n.MaxBytes(); got != c.want {
			t.Errorf("%s: MaxBytes() = %d, want %d", c.pattern, got, c.want)
		}
	}
}
