package token

import "github.com/Flyclops/toml/lexer"

// escapeAccumulator builds a decoded string value while reading the body
// of a string literal, borrowing from the original input for as long as
// possible and copying into an owned buffer the first time it has to:
// either a subtoken is skipped (trimmed whitespace, a leading newline)
// after something was already borrowed, or an escape decodes to text that
// differs from its own source bytes.
//
// Once owning, it stays owning for the rest of the literal - there's no
// benefit in flip-flopping back to borrowing mid-string.
type escapeAccumulator struct {
	source string
	begin  int
	pos    int
	owning bool
	buf    []byte
}

func newEscapeAccumulator(source string, begin int) *escapeAccumulator {
	return &escapeAccumulator{source: source, begin: begin, pos: begin}
}

// appendVerbatim records a span whose raw source bytes are exactly what
// belongs in the decoded value (an ordinary Char subtoken).
func (a *escapeAccumulator) appendVerbatim(span lexer.Span) {
	if a.owning {
		a.buf = append(a.buf, a.source[span.Start:span.End]...)
	}
	a.pos = span.End
}

// appendDecoded records a span whose raw source bytes (an escape
// sequence) decode to text different from themselves, forcing ownership.
func (a *escapeAccumulator) appendDecoded(span lexer.Span, decoded string) {
	if !a.owning {
		a.buf = append(a.buf, a.source[a.begin:span.Start]...)
		a.owning = true
	}
	a.buf = append(a.buf, decoded...)
	a.pos = span.End
}

// skip records a span that contributes nothing to the decoded value (a
// leading newline, or whitespace trimmed after a line-ending backslash).
func (a *escapeAccumulator) skip(span lexer.Span) {
	if a.owning {
		a.pos = span.End
		return
	}
	if a.pos == a.begin {
		// Nothing borrowed yet; just move the window's start past this.
		a.begin = span.End
		a.pos = span.End
		return
	}
	a.buf = append(a.buf, a.source[a.begin:a.pos]...)
	a.owning = true
	a.pos = span.End
}

// finish returns the decoded value.
func (a *escapeAccumulator) finish() string {
	if a.owning {
		return string(a.buf)
	}
	return a.source[a.begin:a.pos]
}
