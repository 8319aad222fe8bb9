// Package token implements the error-reluctant TOML tokenizer.
//
// It sits directly on top of package lexer, turning the low lexer's
// resilient token stream into a stream of complete, semantically
// meaningful tokens: punctuation, keys, and fully decoded strings.
// Unlike the lexer, which never fails, this package surfaces the first
// malformed thing it meets as a typed error and stops - a TOML document
// with one bad escape sequence anywhere in it is, as a whole, invalid.
package token
