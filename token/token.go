package token

import "github.com/Flyclops/toml/lexer"

//go:generate stringer -type=Kind -output=kind_string.go

// Kind is the kind of a complete, decoded token.
type Kind uint8

const (
	Whitespace Kind = iota
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
	String
)

// Token is one complete lexeme. Text holds the raw source slice for
// Whitespace, Comment and Keylike. Src and Val are populated only for
// String: Src is the token's raw source including its quotes, Val is the
// decoded value, and Multiline reports whether it was a triple-quoted
// literal.
type Token struct {
	Kind      Kind
	Span      lexer.Span
	Text      string
	Src       string
	Val       string
	Multiline bool
}

// Describe names a token's kind for use in "expected X, found Y" messages.
func (t Token) Describe() string {
	switch t.Kind {
	case Whitespace:
		return "whitespace"
	case Newline:
		return "a newline"
	case Comment:
		return "a comment"
	case Equals:
		return "an equals"
	case Period:
		return "a period"
	case Comma:
		return "a comma"
	case Colon:
		return "a colon"
	case Plus:
		return "a plus"
	case LeftBrace:
		return "a left brace"
	case RightBrace:
		return "a right brace"
	case LeftBracket:
		return "a left bracket"
	case RightBracket:
		return "a right bracket"
	case Keylike:
		return "a keylike token"
	case String:
		return "a string"
	default:
		return "an unknown token"
	}
}
