package token

import (
	"github.com/Flyclops/toml/lexer"
)

// TraceFunc is called with every token actually consumed via Next (not
// ones only looked at through Peek). It exists purely for development
// tracing and never influences parsing; the default is a no-op.
type TraceFunc func(Token)

// TokenizerOption configures a Tokenizer at construction time.
type TokenizerOption func(*Tokenizer)

// WithTrace installs fn to observe every token this Tokenizer emits.
func WithTrace(fn TraceFunc) TokenizerOption {
	return func(t *Tokenizer) { t.trace = fn }
}

// WithName attaches a source name to the Tokenizer, used only by whatever
// diagnostic layer sits above this package.
func WithName(name string) TokenizerOption {
	return func(t *Tokenizer) { t.name = name }
}

// Tokenizer turns a lexer.Tokenizer's resilient token stream into
// complete, decoded Tokens, surfacing the first malformed thing it meets
// as an *Error.
type Tokenizer struct {
	low   *lexer.Tokenizer
	input string
	trace TraceFunc
	name  string
}

// New builds a Tokenizer over input.
func New(input string, opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{low: lexer.New(input), input: input}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name is the source name attached via WithName, or "" if none was given.
func (t *Tokenizer) Name() string {
	return t.name
}

// Peek returns the next token without consuming it. ok is false at EOF.
func (t *Tokenizer) Peek() (Token, error, bool) {
	clone := *t
	clone.low = t.low.Clone()
	clone.trace = nil
	return clone.Next()
}

// Next consumes and returns the next token. ok is false at EOF.
func (t *Tokenizer) Next() (Token, error, bool) {
	low, ok := t.low.Next()
	if !ok {
		return Token{}, nil, false
	}

	var tok Token
	var err error

	switch low.Kind {
	case lexer.Whitespace:
		tok = Token{Kind: Whitespace, Span: low.Span, Text: t.slice(low.Span)}
	case lexer.Newline:
		tok = Token{Kind: Newline, Span: low.Span}
	case lexer.Comment:
		tok = Token{Kind: Comment, Span: low.Span, Text: t.slice(low.Span)}
	case lexer.Equals:
		tok = Token{Kind: Equals, Span: low.Span}
	case lexer.Period:
		tok = Token{Kind: Period, Span: low.Span}
	case lexer.Comma:
		tok = Token{Kind: Comma, Span: low.Span}
	case lexer.Colon:
		tok = Token{Kind: Colon, Span: low.Span}
	case lexer.Plus:
		tok = Token{Kind: Plus, Span: low.Span}
	case lexer.LeftBrace:
		tok = Token{Kind: LeftBrace, Span: low.Span}
	case lexer.RightBrace:
		tok = Token{Kind: RightBrace, Span: low.Span}
	case lexer.LeftBracket:
		tok = Token{Kind: LeftBracket, Span: low.Span}
	case lexer.RightBracket:
		tok = Token{Kind: RightBracket, Span: low.Span}
	case lexer.Keylike:
		tok = Token{Kind: Keylike, Span: low.Span, Text: t.slice(low.Span)}
	case lexer.StrLitSubtokenTok:
		tok, err = t.unescapeStrLit(low.Span, low.Sub.Quotes)
	default: // lexer.Unknown
		err = &Error{Kind: Unexpected, Span: low.Span, Char: low.Char}
	}

	if err != nil {
		return Token{}, err, true
	}
	if t.trace != nil {
		t.trace(tok)
	}
	return tok, nil, true
}

func (t *Tokenizer) slice(span lexer.Span) string {
	return t.input[span.Start:span.End]
}

// escapeValueSpan shifts span past the leading backslash, so an error
// about the escape's value (the bad shorthand letter, the invalid scalar)
// points at that character rather than at the backslash itself.
func escapeValueSpan(span lexer.Span) lexer.Span {
	return lexer.Span{Start: span.Start + 1, End: span.End}
}

// unescapeStrLit is called with leadingSpan the span of a just-consumed
// LeadingQuotes subtoken. It drives the low tokenizer through the rest of
// the literal, decoding escapes as it goes, until TrailingQuotes or an
// unterminated string.
func (t *Tokenizer) unescapeStrLit(leadingSpan lexer.Span, quotes lexer.Quotes) (Token, error) {
	srcStart := leadingSpan.Start
	acc := newEscapeAccumulator(t.input, leadingSpan.End)

	for {
		low, ok := t.low.Next()
		if !ok || low.Kind != lexer.StrLitSubtokenTok {
			// Either genuine EOF, or the low lexer gave up on the
			// literal and fell back to lexing ordinary content (for
			// example a bare newline ending a single-line string).
			// Either way the string was never terminated.
			end := leadingSpan.End
			if ok {
				end = low.Span.Start
			}
			return Token{}, &Error{Kind: UnterminatedString, Span: lexer.Span{Start: end, End: end}}
		}
		sub := low.Sub
		switch sub.Kind {
		case lexer.SubChar:
			acc.appendVerbatim(low.Span)
		case lexer.SubBannedChar:
			return Token{}, &Error{Kind: InvalidCharInString, Span: low.Span, Char: sub.Char}
		case lexer.SubShorthandEscape:
			if sub.Shorthand.OK {
				acc.appendDecoded(low.Span, string(sub.Shorthand.Char))
				break
			}
			if sub.Shorthand.HasBad {
				return Token{}, &Error{Kind: InvalidShorthandEscape, Span: escapeValueSpan(low.Span), Char: sub.Shorthand.Bad}
			}
			return Token{}, &Error{Kind: UnterminatedString, Span: low.Span}
		case lexer.SubUnicodeEscape:
			switch sub.Unicode.Kind {
			case lexer.UnicodeValid:
				acc.appendDecoded(low.Span, string(sub.Unicode.Char))
			case lexer.UnicodeNotEnoughDigits:
				return Token{}, &Error{
					Kind:           NotEnoughDigitsInHex,
					Span:           low.Span,
					ExpectedDigits: uint8(sub.HexKind),
					ActualDigits:   uint8(sub.Unicode.NotEnoughDigits),
				}
			case lexer.UnicodeInvalidScalarValue:
				return Token{}, &Error{Kind: InvalidEscapeValue, Span: escapeValueSpan(low.Span), Value: sub.Unicode.InvalidScalar}
			}
		case lexer.SubTrimmedWhitespace:
			if !sub.IncludesNewline {
				return Token{}, &Error{Kind: NoNewlineInTrimmedWhitespace, Span: low.Span}
			}
			acc.skip(low.Span)
		case lexer.SubLeadingNewline:
			acc.skip(low.Span)
		case lexer.SubTrailingQuotes:
			srcEnd := low.Span.End
			return Token{
				Kind:      String,
				Span:      lexer.Span{Start: srcStart, End: srcEnd},
				Src:       t.input[srcStart:srcEnd],
				Val:       acc.finish(),
				Multiline: quotes.Len == lexer.X3,
			}, nil
		}
	}
}

// Eat consumes and discards the next token if it has kind k, reporting
// whether it did.
func (t *Tokenizer) Eat(k Kind) (bool, error) {
	_, ok, err := t.EatSpanned(k)
	return ok, err
}

// EatSpanned is like Eat but also returns the consumed token's span.
func (t *Tokenizer) EatSpanned(k Kind) (lexer.Span, bool, error) {
	tok, err, present := t.Peek()
	if err != nil {
		return lexer.Span{}, false, err
	}
	if !present || tok.Kind != k {
		return lexer.Span{}, false, nil
	}
	t.Next()
	return tok.Span, true, nil
}

// Expect consumes the next token, requiring it to have kind k.
func (t *Tokenizer) Expect(k Kind) error {
	_, err := t.ExpectSpanned(k)
	return err
}

// ExpectSpanned is like Expect but also returns the consumed token's span.
func (t *Tokenizer) ExpectSpanned(k Kind) (lexer.Span, error) {
	span, ok, err := t.EatSpanned(k)
	if err != nil {
		return lexer.Span{}, err
	}
	if ok {
		return span, nil
	}
	tok, err, present := t.Peek()
	if err != nil {
		return lexer.Span{}, err
	}
	found := "eof"
	span = lexer.Span{Start: t.low.CurrentIndex(), End: t.low.CurrentIndex()}
	if present {
		found = tok.Describe()
		span = tok.Span
	}
	return lexer.Span{}, &Error{Kind: Wanted, Span: span, Expected: Kind(k).Describe(), Found: found}
}

// Describe names k as it would appear in a Wanted error's Expected field.
func (k Kind) Describe() string {
	return Token{Kind: k}.Describe()
}

// EatWhitespace consumes a single Whitespace token if present.
func (t *Tokenizer) EatWhitespace() (bool, error) {
	return t.Eat(Whitespace)
}

// EatComment consumes a single Comment token if present.
func (t *Tokenizer) EatComment() (bool, error) {
	return t.Eat(Comment)
}

// EatNewlineOrEOF requires the next token to be a Newline, or requires
// EOF; anything else is a Wanted error.
func (t *Tokenizer) EatNewlineOrEOF() error {
	tok, err, present := t.Peek()
	if err != nil {
		return err
	}
	if !present {
		return nil
	}
	if tok.Kind == Newline {
		t.Next()
		return nil
	}
	return &Error{Kind: Wanted, Span: tok.Span, Expected: "a newline", Found: tok.Describe()}
}

// SkipToNewline consumes tokens up to and including the next Newline, or
// through EOF, whichever comes first. It also stops at the first token
// that fails with an error, leaving the rest of that line unread. It's
// used to resynchronize after a structural error.
func (t *Tokenizer) SkipToNewline() {
	for {
		tok, err, present := t.Next()
		if err != nil || !present {
			return
		}
		if tok.Kind == Newline {
			return
		}
	}
}

// TableKey reads a single dotted-key component: a bare Keylike token, or a
// non-multiline quoted string. A multiline string, an empty quoted
// string, or a bare newline in this position are all errors.
func (t *Tokenizer) TableKey() (Token, error) {
	tok, err, present := t.Next()
	if err != nil {
		return Token{}, err
	}
	if !present {
		return Token{}, &Error{Kind: Wanted, Expected: "a table key", Found: "eof"}
	}
	switch tok.Kind {
	case Keylike:
		return tok, nil
	case String:
		if tok.Multiline {
			return Token{}, &Error{Kind: MultilineStringKey, Span: tok.Span}
		}
		if tok.Val == "" {
			return Token{}, &Error{Kind: EmptyTableKey, Span: tok.Span}
		}
		return tok, nil
	case Newline:
		return Token{}, &Error{Kind: NewlineInTableKey, Span: tok.Span}
	default:
		return Token{}, &Error{Kind: Wanted, Span: tok.Span, Expected: "a table key", Found: tok.Describe()}
	}
}
