// Package rebuilder provides a fluent, chainable builder for regular
// expression patterns.
//
// A Builder assembles pattern text out of composable calls (anchors,
// quantifiers, character classes, alternation, lookahead, capture
// groups) instead of raw pattern syntax. The builder only produces the
// pattern; matching is performed by the compiled matcher returned from
// Compile, which routes to [engine] for execution.
//
// Basic usage:
//
//	re, err := rebuilder.New().
//		StartOfInput().
//		Exactly(3).Digits().
//		Then("-").
//		Min(2).Max(5).Letters().
//		EndOfInput().
//		Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("123-abcde") // true
//
// Builders hold per-instance mutable state and are not safe for
// concurrent use; use one builder per goroutine.
package rebuilder
