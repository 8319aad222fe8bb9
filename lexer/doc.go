// Package lexer implements the low-level, error-resilient half of the TOML
// tokenizer.
//
// A Tokenizer classifies every byte of an input string into a stream of
// well-formed or malformed Tokens, including sub-tokens found inside string
// literals. It never fails outright: a byte sequence it cannot classify
// becomes Unknown, or, inside a string literal, a malformed StrLitSubtoken.
// Deciding whether any of that is an error is left to the package that sits
// above this one (see the token package).
//
// The lexer performs no escape decoding and does no lookahead beyond what a
// single token requires; it is reusable well outside of this module's TOML
// use.
package lexer
