package engine

import (
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled match pattern that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// pattern features detected at compile time.
type Regexp struct {
	pattern string
	flags   string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile compiles pattern together with the accumulated single-character
// mode flags ("i" case-insensitive, "m" multi-line, "g" global). Patterns
// that require PCRE-only features (detected by needsPCRE) are compiled
// with regexp2; everything else uses coregex for speed. Compile errors
// from the selected engine are returned unmodified.
func Compile(pattern, flags string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(toPCRENames(pattern), pcreOptions(flags))
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, flags: flags, pcre: re}, nil
	}

	re, err := coregex.Compile(inlineFlags(flags) + pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, flags: flags, core: re}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern, flags string) *Regexp {
	re, err := Compile(pattern, flags)
	if err != nil {
		panic(err)
	}
	return re
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Regexp, without
// flags.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the mode flags the Regexp was compiled with.
func (r *Regexp) Flags() string {
	return r.flags
}

// Global reports whether the "g" flag was set. Go matchers have no
// global/sticky cursor; callers use the FindAll variants instead.
func (r *Regexp) Global() bool {
	return strings.ContainsRune(r.flags, 'g')
}

// Match reports whether the byte slice b contains any match of the Regexp.
func (r *Regexp) Match(b []byte) bool {
	if r.core != nil {
		return r.core.Match(b)
	}

	matched, err := r.pcre.MatchString(string(b))
	return err == nil && matched
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns a two-element slice with the start and end byte
// index of the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and
// its submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return groupsToStrings(s, m.Groups())
}

// FindAllString returns a slice of all successive matches of the Regexp
// in s. As with the stdlib, n < 0 means all matches.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	matches := make([]string, 0)
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}
		matches = append(matches, m.String())
		m, err = r.pcre.FindNextMatch(m)
	}
	return matches
}

// FindAllStringIndex returns a slice of all successive match byte-index
// pairs of the Regexp in s.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringIndex(s, n)
	}

	matches := make([][]int, 0)
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}

		start, end := runeRangeToByte(s, m.Index, m.Length)
		matches = append(matches, []int{start, end})
		m, err = r.pcre.FindNextMatch(m)
	}

	return matches
}

// ReplaceAllString returns a copy of src, replacing matches of the Regexp
// with repl.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	if r.core != nil {
		return r.core.ReplaceAllString(src, repl)
	}

	replaced, err := r.pcre.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return replaced
}

// NumSubexp returns the number of parenthesized subexpressions in this
// Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	nums := r.pcre.GetGroupNumbers()
	max := 0
	for _, v := range nums {
		if v > max {
			max = v
		}
	}
	return max
}

// SubexpNames returns the names of the parenthesized subexpressions in
// this Regexp. The name for the first sub-expression is names[1].
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	nums := r.pcre.GetGroupNumbers()
	max := 0
	for _, v := range nums {
		if v > max {
			max = v
		}
	}

	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		name := r.pcre.GroupNameFromNumber(i)
		// regexp2 reports unnamed groups by number; the stdlib contract
		// is an empty string.
		if name != "" && (name[0] < '0' || name[0] > '9') {
			names[i] = name
		}
	}

	return names
}

func groupsToStrings(s string, groups []regexp2.Group) []string {
	out := make([]string, len(groups))
	runes := []rune(s)
	for i, g := range groups {
		if g.Index < 0 || g.Length < 0 {
			continue
		}
		out[i] = string(runes[g.Index : g.Index+g.Length])
	}
	return out
}
