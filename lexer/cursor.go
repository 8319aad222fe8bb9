package lexer

import "unicode/utf8"

// Span is a half-open byte range `[Start, End)` into the original input.
// Spans are cheap to copy and never outlive the input they were cut from.
type Span struct {
	Start int
	End   int
}

// cursor is a forward-only reader over a string that folds every "\r\n"
// pair into a single "\n", whose byte index is that of the "\r". Folding
// here means every component built on top of the cursor sees one newline
// convention, at the cost of a folded newline's span being two bytes wide.
//
// Indices handed out by the cursor are byte offsets into the *original*
// input, not into some rewritten copy - nothing is actually rewritten.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) cursor {
	return cursor{input: input}
}

// string returns the complete input the cursor was built from.
func (c *cursor) string() string {
	return c.input
}

// currentIndex is the byte offset of the next unconsumed rune, or
// len(input) once exhausted.
func (c *cursor) currentIndex() int {
	return c.pos
}

// spanFrom builds the span covering everything consumed since start.
func (c *cursor) spanFrom(start int) Span {
	return Span{Start: start, End: c.currentIndex()}
}

// decodeFolded decodes the rune at byte offset i, folding a "\r\n" pair
// into a bare "\n" whose width still only advances past the "\r\n" as a
// whole when consumed. Returns the rune, the number of input bytes it
// occupies (for advancing), and whether a rune was present at all.
func (c *cursor) decodeFolded(i int) (rune, int, bool) {
	if i >= len(c.input) {
		return 0, 0, false
	}
	r, w := utf8.DecodeRuneInString(c.input[i:])
	if r == '\r' {
		if i+w < len(c.input) && c.input[i+w] == '\n' {
			return '\n', w + 1, true
		}
	}
	return r, w, true
}

// peekOne returns the next rune without consuming it.
func (c *cursor) peekOne() (rune, bool) {
	r, _, ok := c.decodeFolded(c.pos)
	return r, ok
}

// peekTwo returns the next two runes without consuming either.
func (c *cursor) peekTwo() (rune, rune, bool) {
	r1, w1, ok := c.decodeFolded(c.pos)
	if !ok {
		return 0, 0, false
	}
	r2, _, ok := c.decodeFolded(c.pos + w1)
	if !ok {
		return 0, 0, false
	}
	return r1, r2, true
}

// one consumes and returns the next rune.
func (c *cursor) one() (rune, bool) {
	r, w, ok := c.decodeFolded(c.pos)
	if !ok {
		return 0, false
	}
	c.pos += w
	return r, ok
}

// tryConsume advances past the next rune iff it equals ch, reporting
// whether it did.
func (c *cursor) tryConsume(ch rune) bool {
	if r, ok := c.peekOne(); ok && r == ch {
		c.one()
		return true
	}
	return false
}
