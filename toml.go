// Package toml re-exports this module's three external surfaces - the low
// lexer, the high tokenizer, and the datetime parser - under one import
// path. It assembles nothing further: no table tree, no Unmarshal, no
// document model. A caller wanting those builds them on top of
// token.Tokenizer.
package toml

import (
	"github.com/Flyclops/toml/datetime"
	"github.com/Flyclops/toml/lexer"
	"github.com/Flyclops/toml/token"
)

// NewLexer builds a low-level, error-resilient Tokenizer over input. See
// package lexer.
func NewLexer(input string) *lexer.Tokenizer {
	return lexer.New(input)
}

// NewTokenizer builds the high-level Tokenizer over input. See package
// token.
func NewTokenizer(input string, opts ...token.TokenizerOption) *token.Tokenizer {
	return token.New(input, opts...)
}

// ParseDatetime parses one of TOML's four datetime shapes. See package
// datetime.
func ParseDatetime(s string) (datetime.Datetime, error) {
	return datetime.Parse(s)
}

// Type aliases so callers who only import this package still name the
// underlying types directly.
type (
	Token           = token.Token
	TokenKind       = token.Kind
	TokenizerOption = token.TokenizerOption
	TokenError      = token.Error
	Datetime        = datetime.Datetime
	Date            = datetime.Date
	Time            = datetime.Time
	Offset          = datetime.Offset
)

// WithTrace and WithName re-export the token package's construction
// options for callers that only import this package.
var (
	WithTrace = token.WithTrace
	WithName  = token.WithName
)
