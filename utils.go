package rebuilder

import (
	"strconv"
	"strings"

	"go.dw1.io/rebuilder/engine"
)

// sanitize escapes every pattern metacharacter in s so the stored text
// matches verbatim. Character-class member lists share the same
// metacharacter set and go through the same escape.
func sanitize(s string) string {
	return engine.QuoteMeta(s)
}

// shiftBackrefs adds by to every unescaped numeric backreference \N in
// literal. Sub-builders number their capture groups from 1; embedding
// shifts them past the parent's existing groups.
func shiftBackrefs(literal string, by int) string {
	if by <= 0 {
		return literal
	}

	var out strings.Builder
	out.Grow(len(literal))
	for i := 0; i < len(literal); {
		if literal[i] == '\\' && i+1 < len(literal) {
			next := literal[i+1]
			if next >= '1' && next <= '9' {
				j := i + 1
				for j < len(literal) && literal[j] >= '0' && literal[j] <= '9' {
					j++
				}
				n, _ := strconv.Atoi(literal[i+1 : j])
				out.WriteByte('\\')
				out.WriteString(strconv.Itoa(n + by))
				i = j
				continue
			}
			// Escaped pair: copy both bytes so `\\1` is not misread as a
			// backreference.
			out.WriteByte(literal[i])
			out.WriteByte(next)
			i += 2
			continue
		}
		out.WriteByte(literal[i])
		i++
	}
	return out.String()
}
