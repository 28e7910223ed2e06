package rebuilder

// asBuilder converts an alternation operand into a sub-builder: a
// string becomes a one-shot verbatim token, a *Builder passes through.
// Anything else renders as an empty branch, consistent with the
// builder's no-validation contract.
func (b *Builder) asBuilder(v any) *Builder {
	switch r := v.(type) {
	case *Builder:
		return r
	case string:
		return b.GetNew().Exactly(1).Of(r)
	}
	return b.GetNew()
}

// EitherFind commits any pending token and records v (a string or a
// *Builder) as the first alternative of an alternation. No fragment is
// committed until OrFind supplies the next branch.
func (b *Builder) EitherFind(v any) *Builder {
	b.flushState()
	b.either = b.combine(b.asBuilder(v))
	return b
}

// OrFind adds v (a string or a *Builder) as the next alternative. With
// a first alternative recorded by EitherFind, both are committed as one
// non-capturing alternation fragment. Without one, the last committed
// fragment is rewritten in place to grow into an n-way alternation, so
// repeated OrFind calls extend a single fragment instead of nesting
// wrapper groups.
func (b *Builder) OrFind(v any) *Builder {
	b.flushState()
	or := b.combine(b.asBuilder(v))

	if b.either == "" {
		last := len(b.literal) - 1
		b.literal[last] = b.literal[last][:len(b.literal[last])-1] + "|(?:" + or + "))"
	} else {
		b.literal = append(b.literal, "(?:(?:"+b.either+")|(?:"+or+"))")
	}

	b.clear()
	return b
}

// AnyOf builds an alternation across all the given operands: the first
// seeds EitherFind and each remaining one is a successive OrFind. With
// no operands it is a no-op.
func (b *Builder) AnyOf(vs ...any) *Builder {
	if len(vs) < 1 {
		return b
	}

	b.EitherFind(vs[0])
	for _, v := range vs[1:] {
		b.OrFind(v)
	}
	return b
}

// Neither asserts that v (a string or a *Builder) does not match at the
// current position.
func (b *Builder) Neither(v any) *Builder {
	return b.NotAhead(b.asBuilder(v))
}

// Nor appends a further negative assertion. A pending "zero or more of
// any character" token is reset first and re-armed afterwards, yielding
// the idiom "match anywhere that is not X". Only that exact pending
// shape is reset; anything else commits as usual.
func (b *Builder) Nor(v any) *Builder {
	if b.min == 0 && b.ofAny {
		b.min = -1
		b.ofAny = false
	}
	b.Neither(v)
	return b.Min(0).OfAny()
}
