package rebuilder

// StartOfInput commits any pending token and anchors the pattern at the
// start of input.
func (b *Builder) StartOfInput() *Builder {
	b.flushState()
	b.literal = append(b.literal, "(?:^)")
	return b
}

// StartOfLine anchors at the start of a line by setting the multi-line
// flag before anchoring at start of input.
func (b *Builder) StartOfLine() *Builder {
	b.MultiLine()
	return b.StartOfInput()
}

// EndOfInput commits any pending token and anchors the pattern at the
// end of input.
func (b *Builder) EndOfInput() *Builder {
	b.flushState()
	b.literal = append(b.literal, "(?:$)")
	return b
}

// EndOfLine anchors at the end of a line by setting the multi-line flag
// before anchoring at end of input.
func (b *Builder) EndOfLine() *Builder {
	b.MultiLine()
	return b.EndOfInput()
}

// Then matches the string s exactly once.
func (b *Builder) Then(s string) *Builder {
	return b.Exactly(1).Of(s)
}

// Find is an alias of Then.
func (b *Builder) Find(s string) *Builder {
	return b.Then(s)
}

// Some matches one or more characters from the given set members.
func (b *Builder) Some(chars ...string) *Builder {
	return b.Min(1).From(chars...)
}

// MaybeSome matches zero or more characters from the given set members.
func (b *Builder) MaybeSome(chars ...string) *Builder {
	return b.Min(0).From(chars...)
}

// Maybe matches the string s at most once.
func (b *Builder) Maybe(s string) *Builder {
	return b.Max(1).Of(s)
}

// Anything matches zero or more of any character.
func (b *Builder) Anything() *Builder {
	return b.Min(0).OfAny()
}

// AnythingBut matches anywhere s does not. A single character renders
// as an exclusive character set; a longer string as a negative
// lookahead followed by zero or more of any character.
func (b *Builder) AnythingBut(s string) *Builder {
	if len(s) == 1 {
		return b.Min(0).NotFrom(s)
	}

	b.NotAhead(b.GetNew().Exactly(1).Of(s))
	return b.Min(0).OfAny()
}

// Something matches one or more of any character.
func (b *Builder) Something() *Builder {
	return b.Min(1).OfAny()
}

// Any matches exactly one of any character.
func (b *Builder) Any() *Builder {
	return b.Exactly(1).OfAny()
}

// LineBreak commits any pending token and matches one line break of any
// convention.
func (b *Builder) LineBreak() *Builder {
	b.flushState()
	b.literal = append(b.literal, `(?:\r\n|\r|\n)`)
	return b
}

// LineBreaks matches line breaks under a pending quantity, e.g.
// Exactly(2).LineBreaks().
func (b *Builder) LineBreaks() *Builder {
	return b.Like(b.GetNew().LineBreak())
}

// Whitespace matches a whitespace character. With no quantity pending
// it commits directly; under a pending quantity it becomes the token's
// source so the bounds apply.
func (b *Builder) Whitespace() *Builder {
	if b.min == -1 && b.max == -1 {
		b.flushState()
		b.literal = append(b.literal, `(?:\s)`)
		return b
	}

	b.like = `\s`
	b.hasLike = true
	return b
}

// NotWhitespace matches a non-whitespace character, with the same
// quantity handling as Whitespace.
func (b *Builder) NotWhitespace() *Builder {
	if b.min == -1 && b.max == -1 {
		b.flushState()
		b.literal = append(b.literal, `(?:\S)`)
		return b
	}

	b.like = `\S`
	b.hasLike = true
	return b
}

// Tab commits any pending token and matches one tab character.
func (b *Builder) Tab() *Builder {
	b.flushState()
	b.literal = append(b.literal, `(?:\t)`)
	return b
}

// Tabs matches tab characters under a pending quantity.
func (b *Builder) Tabs() *Builder {
	return b.Like(b.GetNew().Tab())
}

// Digit commits any pending token and matches one digit.
func (b *Builder) Digit() *Builder {
	b.flushState()
	b.literal = append(b.literal, `(?:\d)`)
	return b
}

// Digits matches digits under a pending quantity.
func (b *Builder) Digits() *Builder {
	return b.Like(b.GetNew().Digit())
}

// Letter matches exactly one ASCII letter.
func (b *Builder) Letter() *Builder {
	b.Exactly(1)
	b.from = "A-Za-z"
	return b
}

// Letters matches ASCII letters under a pending quantity.
func (b *Builder) Letters() *Builder {
	b.from = "A-Za-z"
	return b
}

// LowerCaseLetter matches exactly one lower-case ASCII letter.
func (b *Builder) LowerCaseLetter() *Builder {
	b.Exactly(1)
	b.from = "a-z"
	return b
}

// LowerCaseLetters matches lower-case ASCII letters under a pending
// quantity.
func (b *Builder) LowerCaseLetters() *Builder {
	b.from = "a-z"
	return b
}

// UpperCaseLetter matches exactly one upper-case ASCII letter.
func (b *Builder) UpperCaseLetter() *Builder {
	b.Exactly(1)
	b.from = "A-Z"
	return b
}

// UpperCaseLetters matches upper-case ASCII letters under a pending
// quantity.
func (b *Builder) UpperCaseLetters() *Builder {
	b.from = "A-Z"
	return b
}
