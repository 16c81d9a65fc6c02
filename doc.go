// Package reggy is a pattern-matching engine for text analytics over
// natural-language streams. It defines a simplified pattern dialect aimed
// at human-language queries rather than full regular-expression power, and
// searches one or more such patterns simultaneously over text that
// arrives in arbitrarily sized chunks, reporting byte-aligned match spans
// relative to the start of the stream.
//
// Three subsystems do the work:
//
//   - internal/lang — a lexer, operator-precedence parser, and AST for
//     reggy's pattern dialect, with two regex lowerings (external,
//     word-bounded; internal, used by the searcher itself).
//   - internal/automaton — a Thompson NFA compiler and a lazily
//     determinized multi-pattern DFA, reporting every pattern that
//     matches rather than only the first.
//   - Search (this package) — the streaming matcher: word-bounded
//     stepping, whitespace folding, definitely-complete match promotion,
//     and ragged UTF-8 reassembly across chunk boundaries.
//
// Basic usage:
//
//	p, err := reggy.NewPattern(`dogs?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range p.FindAll("cat dog dogs cats") {
//	    fmt.Println(m)
//	}
//
// Streaming usage:
//
//	s, err := reggy.Compile([]string{"(John|Jane) Doe"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range s.Next("Jane Doe paid ") {
//	    fmt.Println(m)
//	}
//	for _, m := range s.Finish() {
//	    fmt.Println(m)
//	}
package reggy
