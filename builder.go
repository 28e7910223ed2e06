package rebuilder

import (
	"strconv"
	"strings"

	"go.dw1.io/rebuilder/engine"
)

// Builder accumulates a regular-expression pattern through chained
// calls. Every call either refines the token currently being specified,
// or commits that token as a finished pattern fragment and starts a new
// one. The zero value is not usable; call New.
type Builder struct {
	literal    []string
	groupsUsed int
	flags      string

	// Pending token. -1 means an unset bound or group number; the string
	// fields are unset when empty. At most one character source is
	// meaningful at a time; ambiguity is resolved by charLiteral's fixed
	// precedence, never rejected.
	min, max    int
	of          string
	ofAny       bool
	ofGroup     int
	from        string
	notFrom     string
	like        string
	hasLike     bool
	either      string
	reluctant   bool
	capture     bool
	captureName string
}

// New returns an empty Builder.
func New() *Builder {
	b := &Builder{}
	b.clear()
	return b
}

// GetNew returns a fresh Builder of the same kind as the receiver. The
// builder uses it internally wherever a disposable sub-builder is
// needed.
func (b *Builder) GetNew() *Builder {
	return New()
}

func (b *Builder) clear() {
	b.min = -1
	b.max = -1
	b.of = ""
	b.ofAny = false
	b.ofGroup = -1
	b.from = ""
	b.notFrom = ""
	b.like = ""
	b.hasLike = false
	b.either = ""
	b.reluctant = false
	b.capture = false
	b.captureName = ""
}

// pending reports whether a character source has been set on the
// current token. Quantity bounds alone do not make a token pending, so
// a flush between two quantity calls leaves the bounds layered on the
// same token.
func (b *Builder) pending() bool {
	return b.of != "" || b.ofAny || b.ofGroup > 0 || b.from != "" ||
		b.notFrom != "" || b.hasLike
}

// flushState commits the pending token as one pattern fragment and
// resets the token. This is the only place a pending token becomes
// permanent.
func (b *Builder) flushState() {
	if !b.pending() {
		return
	}

	captureLiteral := "?:"
	if b.capture {
		if b.captureName != "" {
			captureLiteral = "?P<" + b.captureName + ">"
		} else {
			captureLiteral = ""
		}
	}

	suffix := ""
	if b.reluctant {
		suffix = "?"
	}

	b.literal = append(b.literal,
		"("+captureLiteral+"(?:"+b.charLiteral()+")"+b.quantityLiteral()+suffix+")")
	b.clear()
}

func (b *Builder) quantityLiteral() string {
	if b.min != -1 {
		if b.max != -1 {
			return "{" + strconv.Itoa(b.min) + "," + strconv.Itoa(b.max) + "}"
		}
		return "{" + strconv.Itoa(b.min) + ",}"
	}
	// With neither bound set, max is still the -1 sentinel and this
	// renders "{0,-1}". Engines treat an unparseable repeat as literal
	// brace text; kept for compatibility with existing patterns.
	return "{0," + strconv.Itoa(b.max) + "}"
}

// charLiteral renders the character source. First match wins; several
// sources can be set through the public surface and the precedence
// below resolves them.
func (b *Builder) charLiteral() string {
	switch {
	case b.of != "":
		return b.of
	case b.ofAny:
		return "."
	case b.ofGroup > 0:
		return "\\" + strconv.Itoa(b.ofGroup)
	case b.from != "":
		return "[" + b.from + "]"
	case b.notFrom != "":
		return "[^" + b.notFrom + "]"
	case b.hasLike:
		return b.like
	}
	return ""
}

// combine extracts the sub-builder's literal text exactly once, shifts
// its backreferences past this builder's existing capture groups, and
// advances the group counter by the sub-builder's own count. Mutating r
// after it has been combined is out of contract.
func (b *Builder) combine(r *Builder) string {
	lit := shiftBackrefs(r.Literal(), b.groupsUsed)
	b.groupsUsed += r.groupsUsed
	return lit
}

func (b *Builder) addFlag(flag string) *Builder {
	if !strings.Contains(b.flags, flag) {
		b.flags += flag
	}
	return b
}

// IgnoreCase sets the "i" mode flag.
func (b *Builder) IgnoreCase() *Builder {
	return b.addFlag("i")
}

// MultiLine sets the "m" mode flag.
func (b *Builder) MultiLine() *Builder {
	return b.addFlag("m")
}

// GlobalMatch sets the "g" mode flag. Go matchers have no global
// cursor; the flag is carried through to Regexp.Global for the caller.
func (b *Builder) GlobalMatch() *Builder {
	return b.addFlag("g")
}

// Exactly commits any pending token and requires exactly n repetitions
// of the next one.
func (b *Builder) Exactly(n int) *Builder {
	b.flushState()
	b.min = n
	b.max = n
	return b
}

// Min commits any pending token and requires at least n repetitions of
// the next one.
func (b *Builder) Min(n int) *Builder {
	b.flushState()
	b.min = n
	return b
}

// Max commits any pending token and allows at most n repetitions of the
// next one.
func (b *Builder) Max(n int) *Builder {
	b.flushState()
	b.max = n
	return b
}

// Of sets the pending token to match the string s verbatim.
// Metacharacters in s are escaped.
func (b *Builder) Of(s string) *Builder {
	b.of = sanitize(s)
	return b
}

// OfAny sets the pending token to match any character.
func (b *Builder) OfAny() *Builder {
	b.ofAny = true
	return b
}

// OfGroup sets the pending token to a backreference to capture group n.
func (b *Builder) OfGroup(n int) *Builder {
	b.ofGroup = n
	return b
}

// From sets the pending token to an inclusive character set built from
// the given members. Members are concatenated and escaped.
func (b *Builder) From(chars ...string) *Builder {
	b.from = sanitize(strings.Join(chars, ""))
	return b
}

// NotFrom sets the pending token to an exclusive character set built
// from the given members.
func (b *Builder) NotFrom(chars ...string) *Builder {
	b.notFrom = sanitize(strings.Join(chars, ""))
	return b
}

// Like sets the pending token to the rendered text of the sub-builder
// r, with its capture groups renumbered past this builder's own.
func (b *Builder) Like(r *Builder) *Builder {
	b.like = b.combine(r)
	b.hasLike = true
	return b
}

// Reluctantly makes the pending token's quantifier non-greedy.
func (b *Builder) Reluctantly() *Builder {
	b.reluctant = true
	return b
}

// AsGroup makes the pending token a capturing group, optionally named.
// The group counter advances now rather than at commit: an embedding
// layered onto this same token must number itself past the pending
// group, whose opening parenthesis precedes the embedded text.
func (b *Builder) AsGroup(name ...string) *Builder {
	b.capture = true
	if len(name) > 0 {
		b.captureName = name[0]
	}
	b.groupsUsed++
	return b
}

// Ahead commits any pending token and appends a lookahead assertion for
// the sub-builder r.
func (b *Builder) Ahead(r *Builder) *Builder {
	b.flushState()
	b.literal = append(b.literal, "(?="+b.combine(r)+")")
	return b
}

// NotAhead commits any pending token and appends a negative lookahead
// assertion for the sub-builder r.
func (b *Builder) NotAhead(r *Builder) *Builder {
	b.flushState()
	b.literal = append(b.literal, "(?!"+b.combine(r)+")")
	return b
}

// Append embeds r exactly once at the current position.
func (b *Builder) Append(r *Builder) *Builder {
	b.Exactly(1)
	b.like = b.combine(r)
	b.hasLike = true
	return b
}

// Optional embeds r at most once at the current position.
func (b *Builder) Optional(r *Builder) *Builder {
	b.Max(1)
	b.like = b.combine(r)
	b.hasLike = true
	return b
}

// Literal commits any pending token and returns the accumulated pattern
// text. Flags are not included; see Flags.
func (b *Builder) Literal() string {
	b.flushState()
	return strings.Join(b.literal, "")
}

// Flags returns the accumulated mode flags in the order they were first
// set.
func (b *Builder) Flags() string {
	return b.flags
}

// Compile commits any pending token and compiles the pattern text with
// the accumulated flags. Compile errors from the selected engine are
// returned unmodified.
func (b *Builder) Compile() (*engine.Regexp, error) {
	return engine.Compile(b.Literal(), b.flags)
}

// MustCompile is like Compile but panics if the pattern cannot be
// parsed.
func (b *Builder) MustCompile() *engine.Regexp {
	return engine.MustCompile(b.Literal(), b.flags)
}
