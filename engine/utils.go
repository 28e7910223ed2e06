package engine

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// needsPCRE reports whether pattern uses constructs that RE2-style
// engines reject. A builder emits exactly two such constructs: lookaround
// assertions and numeric backreferences.
func needsPCRE(pattern string) bool {
	for _, tok := range []string{"(?=", "(?!", "(?<=", "(?<!"} {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// Numeric backreferences: \1 .. \9, skipping escaped backslashes.
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' {
			if !escaped && i+1 < len(pattern) {
				if next := pattern[i+1]; next >= '1' && next <= '9' {
					return true
				}
			}
			escaped = !escaped
		} else {
			escaped = false
		}
	}

	return false
}

// toPCRENames rewrites Go-style named groups (?P<name>...) into the
// (?<name>...) spelling regexp2 parses. An escaped "(" in a pattern
// literal renders as `\(`, so the token below can only come from a real
// group opener.
func toPCRENames(pattern string) string {
	return strings.ReplaceAll(pattern, "(?P<", "(?<")
}

// inlineFlags renders the compile-time flags as an inline flag group for
// the RE2-compatible path, e.g. "(?im)". The "g" flag selects nothing at
// compile time and is skipped.
func inlineFlags(flags string) string {
	var inline string
	if strings.ContainsRune(flags, 'i') {
		inline += "i"
	}
	if strings.ContainsRune(flags, 'm') {
		inline += "m"
	}
	if inline == "" {
		return ""
	}
	return "(?" + inline + ")"
}

// pcreOptions maps the compile-time flags to regexp2 options.
func pcreOptions(flags string) regexp2.RegexOptions {
	opts := regexp2.None
	if strings.ContainsRune(flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(flags, 'm') {
		opts |= regexp2.Multiline
	}
	return opts
}

// runeRangeToByte converts a regexp2 rune-based (start, length) pair into
// byte offsets within s.
func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	start := runeToByteOffset(s, startRune)
	end := runeToByteOffset(s, startRune+length)
	return start, end
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
