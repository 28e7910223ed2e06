// Package engine compiles builder-produced patterns into usable matchers.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible
// engine) whenever possible. When a pattern uses constructs that RE2
// engines cannot execute (lookaround assertions, numeric
// backreferences), the package automatically falls back to [regexp2]
// for full PCRE compatibility. Mode flags accumulated by a builder ("i",
// "m", "g") are applied at compile time; "g" has no compile-time meaning
// in Go and is only reported back to the caller.
package engine
