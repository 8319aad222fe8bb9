package token

import (
	"fmt"

	"github.com/Flyclops/toml/lexer"
)

// ErrorKind discriminates the fixed set of ways a tokenizer can reject an
// input. It is exhaustive: every malformed thing the lexer can surface,
// and every structural rule this package enforces on top of it, maps to
// exactly one of these.
type ErrorKind uint8

const (
	InvalidCharInString ErrorKind = iota
	InvalidShorthandEscape
	NotEnoughDigitsInHex
	InvalidEscapeValue
	UnterminatedString
	NoNewlineInTrimmedWhitespace
	Unexpected
	NewlineInTableKey
	MultilineStringKey
	EmptyTableKey
	Wanted
)

// Error is the tokenizer's one error type. Exactly the fields relevant to
// Kind are populated; see the ErrorKind constants.
type Error struct {
	Kind ErrorKind
	Span lexer.Span

	Char  rune   // InvalidCharInString, InvalidShorthandEscape, Unexpected
	Value uint32 // InvalidEscapeValue

	ExpectedDigits uint8 // NotEnoughDigitsInHex; 4 or 8
	ActualDigits   uint8 // NotEnoughDigitsInHex; digits actually read

	Expected string // Wanted
	Found    string // Wanted
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharInString:
		return fmt.Sprintf("invalid character in string: %q", e.Char)
	case InvalidShorthandEscape:
		return fmt.Sprintf("invalid escape character in string: %q", e.Char)
	case NotEnoughDigitsInHex:
		return fmt.Sprintf("not enough digits in unicode escape: expected %d, found %d", e.ExpectedDigits, e.ActualDigits)
	case InvalidEscapeValue:
		return fmt.Sprintf("invalid escape value: %#x", e.Value)
	case UnterminatedString:
		return "unterminated string"
	case NoNewlineInTrimmedWhitespace:
		return "non-whitespace character found after line-ending backslash"
	case Unexpected:
		return fmt.Sprintf("unexpected character found: %q", e.Char)
	case NewlineInTableKey:
		return "found newline in table key"
	case MultilineStringKey:
		return "multiline strings are not allowed for key"
	case EmptyTableKey:
		return "empty table key found"
	case Wanted:
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	default:
		return "unknown tokenizer error"
	}
}
