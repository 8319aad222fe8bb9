package lexer

//go:generate stringer -type=TokenKind -output=token_string.go

// TokenKind is the kind of a low-level lexeme. Two of these, Unknown and
// StrLitSubtokenTok, carry a payload beyond their span; see Token.Char and
// Token.Sub.
type TokenKind uint8

const (
	Whitespace TokenKind = iota
	Newline
	Comment
	Equals
	Period
	Comma
	Colon
	Plus
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Keylike
	Unknown
	// StrLitSubtokenTok wraps a StrLitSubtoken produced while inside a
	// string literal, including the LeadingQuotes/TrailingQuotes that
	// bracket it.
	StrLitSubtokenTok
)

// Token is a single lexeme: its span in the original input, its kind, and
// (for the two kinds that need one) a payload.
type Token struct {
	Span Span
	Kind TokenKind
	Char rune            // valid iff Kind == Unknown
	Sub  StrLitSubtoken   // valid iff Kind == StrLitSubtokenTok
}

type lexState uint8

const (
	readingContent lexState = iota
	readingStrLit
)

// Tokenizer is the low-level, error-resilient TOML lexer. It never
// returns an error: a byte sequence it can't otherwise classify becomes an
// Unknown token, and the same goes for malformed content inside a string
// literal (see the StrLitSubtoken variants other than Char).
type Tokenizer struct {
	cur    cursor
	state  lexState
	strlit strLitTokenizer
}

// New builds a Tokenizer over input, skipping one leading UTF-8 BOM if
// present.
func New(input string) *Tokenizer {
	cur := newCursor(input)
	cur.tryConsume(0xFEFF)
	return &Tokenizer{cur: cur, state: readingContent}
}

// Input returns the complete input the Tokenizer was built from.
func (t *Tokenizer) Input() string {
	return t.cur.string()
}

// CurrentIndex is the byte offset the Tokenizer will resume reading from.
func (t *Tokenizer) CurrentIndex() int {
	return t.cur.currentIndex()
}

// Clone returns an independent copy of the Tokenizer's current position,
// cheap enough to support lookahead by cloning and discarding: every field
// involved is a plain value (no pointers, no shared buffers).
func (t *Tokenizer) Clone() *Tokenizer {
	cp := *t
	return &cp
}

// Next produces the next Token, or ok=false once the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if t.state == readingStrLit {
		span, sub, ok := t.strlit.next()
		if ok {
			return Token{Span: span, Kind: StrLitSubtokenTok, Sub: sub}, true
		}
		t.cur = t.strlit.cursor()
		t.state = readingContent
		return t.Next()
	}
	return t.contentToken()
}

func (t *Tokenizer) contentToken() (Token, bool) {
	start := t.cur.currentIndex()
	ch, ok := t.cur.peekOne()
	if !ok {
		return Token{}, false
	}

	switch {
	case ch == '\n':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Newline}, true
	case isWhitespace(ch):
		return t.whitespaceToken(start), true
	case ch == '#':
		return t.commentToken(start), true
	case ch == '=':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Equals}, true
	case ch == '.':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Period}, true
	case ch == ',':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Comma}, true
	case ch == ':':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Colon}, true
	case ch == '+':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Plus}, true
	case ch == '{':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: LeftBrace}, true
	case ch == '}':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: RightBrace}, true
	case ch == '[':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: LeftBracket}, true
	case ch == ']':
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: RightBracket}, true
	case ch == '\'' || ch == '"':
		return t.leadingQuotesToken()
	case isKeylike(ch):
		return t.keylikeToken(start), true
	default:
		t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Unknown, Char: ch}, true
	}
}

func (t *Tokenizer) leadingQuotesToken() (Token, bool) {
	span, quotes, strlit, ok := tryStrLit(t.cur)
	if !ok {
		// unreachable: caller already peeked a quote character.
		start := t.cur.currentIndex()
		ch, _ := t.cur.one()
		return Token{Span: t.cur.spanFrom(start), Kind: Unknown, Char: ch}, true
	}
	t.strlit = strlit
	t.state = readingStrLit
	return Token{Span: span, Kind: StrLitSubtokenTok, Sub: StrLitSubtoken{Kind: SubLeadingQuotes, Quotes: quotes}}, true
}

func (t *Tokenizer) whitespaceToken(start int) Token {
	for {
		ch, ok := t.cur.peekOne()
		if !ok || !isWhitespace(ch) {
			break
		}
		t.cur.one()
	}
	return Token{Span: t.cur.spanFrom(start), Kind: Whitespace}
}

// commentToken consumes from '#' through, but not including, the line's
// terminating newline (or EOF), or a control character below U+0020 other
// than tab. A stray control character ends the comment right there so it
// surfaces as its own Unknown token next.
func (t *Tokenizer) commentToken(start int) Token {
	t.cur.one() // the '#'
	for {
		ch, ok := t.cur.peekOne()
		if !ok || !(ch == '\t' || ch >= 0x20) {
			break
		}
		t.cur.one()
	}
	return Token{Span: t.cur.spanFrom(start), Kind: Comment}
}

func (t *Tokenizer) keylikeToken(start int) Token {
	for {
		ch, ok := t.cur.peekOne()
		if !ok || !isKeylike(ch) {
			break
		}
		t.cur.one()
	}
	return Token{Span: t.cur.spanFrom(start), Kind: Keylike}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

// isKeylike reports whether ch can appear in a bare key or in one of the
// keyword-shaped literals (true, false, inf, nan) and numbers. It is
// deliberately permissive; neither this package nor the token package
// decides whether a Keylike span parses as one of those - that is left to
// whatever consumes the Keylike token.
func isKeylike(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch == '-' || ch == '_':
		return true
	default:
		return false
	}
}
