package lang

import "unicode/utf8"

// reserved maps a reserved pattern-source character to its structural Kind.
// '#' is not listed here: it is recognized separately below since, unlike
// the others, it resolves to KindDigit rather than a dedicated token.
var reserved = map[rune]Kind{
	'|': KindOr,
	'?': KindQMark,
	'(': KindLParen,
	')': KindRParen,
	'!': KindExclam,
	'*': KindStar,
	'+': KindPlus,
}

// Lexer scans reggy pattern source into a forward-only stream of Tokens.
// It is a single-use, non-restartable iterator: the parser drains it
// exactly once via Next.
type Lexer struct {
	src    string
	i      int // byte offset of the next rune to scan
	escape bool
	escAt  int // byte offset of the backslash that opened the pending escape
}

// NewLexer returns a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token, or ok=false once the source is exhausted.
func (l *Lexer) Next() (Token, bool) {
	for l.i < len(l.src) {
		start := l.i
		c, width := decodeRune(l.src, l.i)
		l.i += width

		if l.escape {
			l.escape = false
			return l.scanEscaped(c), true
		}

		if c == '\\' {
			l.escape = true
			l.escAt = start
			continue
		}

		if kind, ok := reserved[c]; ok {
			return Token{Start: start, Width: width, Kind: kind}, true
		}

		switch c {
		case '#':
			return Token{Start: start, Width: width, Kind: KindDigit}, true
		case ' ':
			return Token{Start: start, Width: width, Kind: KindSpace}, true
		default:
			return Token{Start: start, Width: width, Kind: KindChar, Char: c, Escaped: false}, true
		}
	}

	if l.escape {
		l.escape = false
		return Token{Start: l.escAt, Width: len(l.src) - l.escAt, Kind: KindError,
			Err: DanglingEscapeError(l.escAt)}, true
	}

	return Token{}, false
}

// scanEscaped interprets c as the character following a backslash at l.escAt.
func (l *Lexer) scanEscaped(c rune) Token {
	width := l.i - l.escAt
	if _, ok := reserved[c]; ok {
		return Token{Start: l.escAt, Width: width, Kind: KindChar, Char: c, Escaped: true}
	}
	switch c {
	case '\\':
		return Token{Start: l.escAt, Width: width, Kind: KindChar, Char: '\\', Escaped: true}
	case 'd':
		return Token{Start: l.escAt, Width: width, Kind: KindDigit}
	case ' ':
		return Token{Start: l.escAt, Width: width, Kind: KindChar, Char: ' ', Escaped: true}
	default:
		return Token{Start: l.escAt, Width: width, Kind: KindError, Err: UnnecessaryEscapeError(l.escAt)}
	}
}

// decodeRune decodes the rune starting at byte offset i in s, returning its
// width in bytes. Invalid UTF-8 decodes as utf8.RuneError with width 1, so
// malformed pattern source still advances instead of looping.
func decodeRune(s string, i int) (rune, int) {
	return utf8.DecodeRuneInString(s[i:])
}
