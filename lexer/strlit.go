package lexer

//go:generate stringer -type=StrLitKind,QuotesLen,HexLen,StrLitSubtokenKind -output=strlit_string.go

// StrLitKind is the kind of TOML string literal: single-quoted literal
// strings that never process escapes, or double-quoted basic strings that
// do.
type StrLitKind uint8

const (
	// Literal is a single-quoted string. Escape sequences are never
	// processed inside one.
	Literal StrLitKind = '\''
	// Basic is a double-quoted string with C-style escape processing.
	Basic StrLitKind = '"'
)

// Quote returns the quote character this kind uses to open and close.
func (k StrLitKind) Quote() rune {
	return rune(k)
}

// strLitKindFromQuote classifies a quote character, reporting false if ch
// isn't a quote at all.
func strLitKindFromQuote(ch rune) (StrLitKind, bool) {
	switch ch {
	case '\'':
		return Literal, true
	case '"':
		return Basic, true
	default:
		return 0, false
	}
}

// QuotesLen is the number of quote characters opening/closing a literal:
// one for single-line strings, three for multiline (triple-quoted) ones.
type QuotesLen uint8

const (
	X1 QuotesLen = 1
	X3 QuotesLen = 3
)

// Quotes describes the leading (or trailing) quotes of a string literal.
type Quotes struct {
	Kind StrLitKind
	Len  QuotesLen
}

// HexLen is the number of hex digits a unicode escape expects: four for
// `\uXXXX`, eight for `\UXXXXXXXX`.
type HexLen uint8

const (
	X4 HexLen = 4
	X8 HexLen = 8
)

// UnicodeEscapeKind discriminates the outcome of decoding a `\u`/`\U`
// escape sequence.
type UnicodeEscapeKind uint8

const (
	// UnicodeValid means the escape decoded to a valid Unicode scalar
	// value, held in UnicodeEscape.Char.
	UnicodeValid UnicodeEscapeKind = iota
	// UnicodeNotEnoughDigits means fewer than the expected number of hex
	// digits were found; UnicodeEscape.NotEnoughDigits holds how many.
	UnicodeNotEnoughDigits
	// UnicodeInvalidScalarValue means all digits were present but the
	// resulting code point isn't a valid scalar value (a surrogate, or
	// >= 0x110000); UnicodeEscape.InvalidScalar holds the raw value.
	UnicodeInvalidScalarValue
)

// UnicodeEscape is the result of decoding a `\uXXXX` or `\UXXXXXXXX`
// escape sequence.
type UnicodeEscape struct {
	Kind            UnicodeEscapeKind
	Char            rune   // valid iff Kind == UnicodeValid
	NotEnoughDigits uint32 // valid iff Kind == UnicodeNotEnoughDigits; digits actually read, 0..kind
	InvalidScalar   uint32 // valid iff Kind == UnicodeInvalidScalarValue
}

// ShorthandEscape is the result of decoding a one-character escape such as
// `\n` or `\t`.
type ShorthandEscape struct {
	OK     bool // true iff the character after the backslash is a recognized shorthand
	Char   rune // the decoded character, valid iff OK
	Bad    rune // the unrecognized character, valid iff !OK && HasBad
	HasBad bool // false means a trailing bare backslash at EOF (Err(None) in the source model)
}

// StrLitSubtokenKind discriminates the variants of StrLitSubtoken.
type StrLitSubtokenKind uint8

const (
	SubLeadingNewline StrLitSubtokenKind = iota
	SubUnicodeEscape
	SubShorthandEscape
	SubChar
	SubBannedChar
	SubTrimmedWhitespace
	SubLeadingQuotes
	SubTrailingQuotes
)

// StrLitSubtoken is a low-level, possibly-malformed subtoken found inside a
// string literal. Exactly one group of fields is meaningful, selected by
// Kind; see the StrLitSubtokenKind constants.
type StrLitSubtoken struct {
	Kind StrLitSubtokenKind

	Char rune // SubChar, SubBannedChar

	HexKind HexLen        // SubUnicodeEscape
	Unicode UnicodeEscape // SubUnicodeEscape

	Shorthand ShorthandEscape // SubShorthandEscape

	IncludesNewline bool // SubTrimmedWhitespace

	Quotes Quotes // SubLeadingQuotes
}

// strLitState is the string sub-tokenizer's state machine.
type strLitState uint8

const (
	stateBegin strLitState = iota
	stateContent
	stateEnd
)

// strLitTokenizer walks the interior of a string literal, emitting
// StrLitSubtokens. It is constructed via tryStrLit, which consumes and
// classifies the leading quotes.
type strLitTokenizer struct {
	cur       cursor
	state     strLitState
	kind      StrLitKind
	multiline bool
}

// tryStrLit attempts to read a string literal's leading quotes starting at
// cur's current position. It reports ok=false, leaving cur untouched, if
// the next character isn't a quote.
func tryStrLit(cur cursor) (span Span, quotes Quotes, tok strLitTokenizer, ok bool) {
	start := cur.currentIndex()
	quote, present := cur.one()
	if !present {
		return Span{}, Quotes{}, strLitTokenizer{}, false
	}
	kind, isQuote := strLitKindFromQuote(quote)
	if !isQuote {
		return Span{}, Quotes{}, strLitTokenizer{}, false
	}

	length := X1
	if r1, r2, has := cur.peekTwo(); has && r1 == quote && r2 == quote {
		cur.one()
		cur.one()
		length = X3
	}

	tok = strLitTokenizer{
		cur:       cur,
		kind:      kind,
		state:     stateBegin,
		multiline: length == X3,
	}
	quotes = Quotes{Kind: kind, Len: length}
	return tok.cur.spanFrom(start), quotes, tok, true
}

func (t *strLitTokenizer) cursor() cursor {
	return t.cur
}

// unicodeHex consumes up to len hex digits, decoding the resulting code
// point.
func (t *strLitTokenizer) unicodeHex(hexLen HexLen) UnicodeEscape {
	var codePoint uint32
	for n := uint32(0); n < uint32(hexLen); n++ {
		r, ok := t.cur.peekOne()
		digit, isHex := hexDigit(r)
		if !ok || !isHex {
			return UnicodeEscape{Kind: UnicodeNotEnoughDigits, NotEnoughDigits: n}
		}
		codePoint = codePoint*16 + digit
		t.cur.one()
	}
	if !validScalarValue(codePoint) {
		return UnicodeEscape{Kind: UnicodeInvalidScalarValue, InvalidScalar: codePoint}
	}
	return UnicodeEscape{Kind: UnicodeValid, Char: rune(codePoint)}
}

func hexDigit(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	default:
		return 0, false
	}
}

// validScalarValue reports whether v is a valid Unicode scalar value: any
// code point except surrogates (0xD800..0xDFFF) and values >= 0x110000.
func validScalarValue(v uint32) bool {
	if v >= 0xD800 && v <= 0xDFFF {
		return false
	}
	return v < 0x110000
}

// eat3TrailingQuotes looks ahead for the closing three quotes of a
// multiline literal, applying the tie-break that lets four or five
// consecutive quotes (`""""`, `"""""`) parse as an empty/one-quote string
// followed by the real close.
func (t *strLitTokenizer) eat3TrailingQuotes() bool {
	quote := t.kind.Quote()

	lookahead := t.cur
	if !lookahead.tryConsume(quote) || !lookahead.tryConsume(quote) {
		return false
	}
	if lookahead.tryConsume(quote) {
		// Four consecutive quotes: the first three don't close the
		// literal, they're a literal quote char followed by the real
		// closing triple.
		return false
	}
	t.cur.one()
	t.cur.one()
	return true
}

func (t *strLitTokenizer) trimmedWhitespace(begin rune) StrLitSubtoken {
	includesNewline := begin == '\n'
	for {
		r, ok := t.cur.peekOne()
		if !ok || (r != ' ' && r != '\t' && r != '\n') {
			break
		}
		includesNewline = includesNewline || r == '\n'
		t.cur.one()
	}
	return StrLitSubtoken{Kind: SubTrimmedWhitespace, IncludesNewline: includesNewline}
}

// next produces the next subtoken, or ok=false once the literal's content
// is exhausted (after TrailingQuotes, or at EOF/bare newline for an
// unterminated literal).
func (t *strLitTokenizer) next() (Span, StrLitSubtoken, bool) {
	start := t.cur.currentIndex()

	switch t.state {
	case stateBegin:
		t.state = stateContent
		if t.multiline && t.cur.tryConsume('\n') {
			return t.cur.spanFrom(start), StrLitSubtoken{Kind: SubLeadingNewline}, true
		}
		return t.next()

	case stateContent:
		ch, ok := t.cur.peekOne()
		if !ok {
			return Span{}, StrLitSubtoken{}, false
		}
		if ch == '\n' && !t.multiline {
			return Span{}, StrLitSubtoken{}, false
		}
		t.cur.one()

		var sub StrLitSubtoken
		switch {
		case t.kind == Basic && ch == '\\':
			sub = t.shorthandOrUnicode()
		case ch == t.kind.Quote():
			if t.multiline && !t.eat3TrailingQuotes() {
				sub = StrLitSubtoken{Kind: SubChar, Char: ch}
			} else {
				t.state = stateEnd
				sub = StrLitSubtoken{Kind: SubTrailingQuotes}
			}
		case (ch >= 0x20 && ch != 0x7f) || ch == '\t' || ch == '\n':
			sub = StrLitSubtoken{Kind: SubChar, Char: ch}
		default:
			sub = StrLitSubtoken{Kind: SubBannedChar, Char: ch}
		}
		return t.cur.spanFrom(start), sub, true

	default: // stateEnd
		return Span{}, StrLitSubtoken{}, false
	}
}

// shorthandOrUnicode is called with the cursor positioned just past a `\`
// inside a basic string.
func (t *strLitTokenizer) shorthandOrUnicode() StrLitSubtoken {
	ch, ok := t.cur.one()
	if !ok {
		return StrLitSubtoken{Kind: SubShorthandEscape, Shorthand: ShorthandEscape{HasBad: false}}
	}
	switch ch {
	case '"':
		return shorthand('"')
	case '\\':
		return shorthand('\\')
	case 'n':
		return shorthand('\n')
	case 'r':
		return shorthand('\r')
	case 't':
		return shorthand('\t')
	case 'b':
		return shorthand('\b')
	case 'f':
		return shorthand('\f')
	case 'u', 'U':
		hexLen := X4
		if ch == 'U' {
			hexLen = X8
		}
		return StrLitSubtoken{Kind: SubUnicodeEscape, HexKind: hexLen, Unicode: t.unicodeHex(hexLen)}
	case ' ', '\t', '\n':
		if t.multiline {
			return t.trimmedWhitespace(ch)
		}
		return StrLitSubtoken{Kind: SubShorthandEscape, Shorthand: ShorthandEscape{Bad: ch, HasBad: true}}
	default:
		return StrLitSubtoken{Kind: SubShorthandEscape, Shorthand: ShorthandEscape{Bad: ch, HasBad: true}}
	}
}

func shorthand(c rune) StrLitSubtoken {
	return StrLitSubtoken{Kind: SubShorthandEscape, Shorthand: ShorthandEscape{OK: true, Char: c}}
}
