package lexer

import "testing"

// collectStrLit runs a string literal to completion, returning its
// subtokens (not including the LeadingQuotes, which tryStrLit reports
// directly) and the cursor positioned just past the literal.
func collectStrLit(t *testing.T, input string) (Quotes, []StrLitSubtoken, cursor) {
	t.Helper()
	cur := newCursor(input)
	_, quotes, tok, ok := tryStrLit(cur)
	if !ok {
		t.Fatalf("tryStrLit(%q): not a string literal", input)
	}
	var subs []StrLitSubtoken
	for {
		_, sub, ok := tok.next()
		if !ok {
			break
		}
		subs = append(subs, sub)
	}
	return quotes, subs, tok.cursor()
}

func TestStrLitLeadingAndTrailingQuotes(t *testing.T) {
	cases := []struct {
		input string
		kind  StrLitKind
		len   QuotesLen
	}{
		{`"abc"`, Basic, X1},
		{`'abc'`, Literal, X1},
		{`"""abc"""`, Basic, X3},
		{`'''abc'''`, Literal, X3},
	}
	for _, c := range cases {
		quotes, subs, _ := collectStrLit(t, c.input)
		if quotes.Kind != c.kind || quotes.Len != c.len {
			t.Errorf("%q: quotes = %+v, want {%v %v}", c.input, quotes, c.kind, c.len)
		}
		last := subs[len(subs)-1]
		if last.Kind != SubTrailingQuotes {
			t.Errorf("%q: last subtoken = %+v, want TrailingQuotes", c.input, last)
		}
	}
}

func TestStrLitFourQuotesIsLiteralQuoteThenClose(t *testing.T) {
	// `""""abc"""` closes after an embedded '"' char, not immediately.
	_, subs, _ := collectStrLit(t, `""""abc"""`)
	if len(subs) < 2 {
		t.Fatalf("too few subtokens: %+v", subs)
	}
	if subs[0].Kind != SubChar || subs[0].Char != '"' {
		t.Fatalf("first subtoken = %+v, want Char('\"')", subs[0])
	}
}

func TestStrLitUnicodeEscapeValid(t *testing.T) {
	_, subs, _ := collectStrLit(t, "\"\\u00e9\"")
	var got *StrLitSubtoken
	for i := range subs {
		if subs[i].Kind == SubUnicodeEscape {
			got = &subs[i]
		}
	}
	if got == nil {
		t.Fatalf("no unicode escape subtoken found in %+v", subs)
	}
	if got.HexKind != X4 || got.Unicode.Kind != UnicodeValid || got.Unicode.Char != 'é' {
		t.Fatalf("unicode escape = %+v, want valid \\u00e9", got)
	}
}

func TestStrLitUnicodeEscapeNotEnoughDigits(t *testing.T) {
	_, subs, _ := collectStrLit(t, `"\u00"`)
	found := false
	for _, s := range subs {
		if s.Kind == SubUnicodeEscape {
			found = true
			if s.Unicode.Kind != UnicodeNotEnoughDigits || s.Unicode.NotEnoughDigits != 2 {
				t.Fatalf("unicode escape = %+v, want NotEnoughDigits(2)", s)
			}
		}
	}
	if !found {
		t.Fatalf("no unicode escape subtoken found in %+v", subs)
	}
}

func TestStrLitUnicodeEscapeInvalidScalarValue(t *testing.T) {
	// D800 is a surrogate half, not a valid scalar value.
	_, subs, _ := collectStrLit(t, `"\ud800"`)
	for _, s := range subs {
		if s.Kind == SubUnicodeEscape {
			if s.Unicode.Kind != UnicodeInvalidScalarValue || s.Unicode.InvalidScalar != 0xD800 {
				t.Fatalf("unicode escape = %+v, want InvalidScalarValue(0xD800)", s)
			}
			return
		}
	}
	t.Fatalf("no unicode escape subtoken found in %+v", subs)
}

func TestStrLitShorthandEscapesValid(t *testing.T) {
	cases := map[string]rune{
		`"\n"`: '\n',
		`"\t"`: '\t',
		`"\r"`: '\r',
		`"\""`: '"',
		`"\\"`: '\\',
		`"\b"`: '\b',
		`"\f"`: '\f',
	}
	for input, want := range cases {
		_, subs, _ := collectStrLit(t, input)
		if len(subs) != 2 || subs[0].Kind != SubShorthandEscape {
			t.Fatalf("%q: subtokens = %+v", input, subs)
		}
		sh := subs[0].Shorthand
		if !sh.OK || sh.Char != want {
			t.Fatalf("%q: shorthand = %+v, want OK char %q", input, sh, want)
		}
	}
}

func TestStrLitShorthandEscapeInvalid(t *testing.T) {
	_, subs, _ := collectStrLit(t, `"\q"`)
	if len(subs) == 0 || subs[0].Kind != SubShorthandEscape {
		t.Fatalf("subtokens = %+v", subs)
	}
	sh := subs[0].Shorthand
	if sh.OK || !sh.HasBad || sh.Bad != 'q' {
		t.Fatalf("shorthand = %+v, want Err(Some('q'))", sh)
	}
}

func TestStrLitBannedChars(t *testing.T) {
	_, subs, _ := collectStrLit(t, "\"\x01\"")
	if len(subs) == 0 || subs[0].Kind != SubBannedChar || subs[0].Char != 0x01 {
		t.Fatalf("subtokens = %+v, want BannedChar(0x01)", subs)
	}
}

func TestStrLitLeadingNewlineInMultiline(t *testing.T) {
	_, subs, _ := collectStrLit(t, "\"\"\"\nabc\"\"\"")
	if len(subs) == 0 || subs[0].Kind != SubLeadingNewline {
		t.Fatalf("subtokens = %+v, want LeadingNewline first", subs)
	}
}

func TestStrLitNoLeadingNewlineInSingleline(t *testing.T) {
	_, subs, _ := collectStrLit(t, "\"\nabc\"")
	if len(subs) != 0 {
		t.Fatalf("single-line string with embedded newline should terminate unclosed, got %+v", subs)
	}
}

func TestStrLitValidCharItself(t *testing.T) {
	_, subs, _ := collectStrLit(t, `"x"`)
	if len(subs) != 2 || subs[0].Kind != SubChar || subs[0].Char != 'x' {
		t.Fatalf("subtokens = %+v", subs)
	}
}

func TestStrLitEscapesIgnoredInLiteralStrings(t *testing.T) {
	_, subs, _ := collectStrLit(t, `'\n'`)
	if len(subs) != 3 {
		t.Fatalf("subtokens = %+v, want raw Char subtokens for \\, n, then TrailingQuotes", subs)
	}
	if subs[0].Kind != SubChar || subs[0].Char != '\\' {
		t.Fatalf("first char = %+v, want literal backslash", subs[0])
	}
	if subs[1].Kind != SubChar || subs[1].Char != 'n' {
		t.Fatalf("second char = %+v, want literal n", subs[1])
	}
}

func TestStrLitTrimmedWhitespaceWithNewline(t *testing.T) {
	_, subs, _ := collectStrLit(t, "\"\"\"a\\  \n   b\"\"\"")
	found := false
	for _, s := range subs {
		if s.Kind == SubTrimmedWhitespace {
			found = true
			if !s.IncludesNewline {
				t.Fatalf("trimmed whitespace = %+v, want IncludesNewline", s)
			}
		}
	}
	if !found {
		t.Fatalf("no trimmed whitespace subtoken in %+v", subs)
	}
}

func TestStrLitTrimmedWhitespaceWithNoNewline(t *testing.T) {
	_, subs, _ := collectStrLit(t, "\"\"\"a\\   b\"\"\"")
	found := false
	for _, s := range subs {
		if s.Kind == SubTrimmedWhitespace {
			found = true
			if s.IncludesNewline {
				t.Fatalf("trimmed whitespace = %+v, want !IncludesNewline", s)
			}
		}
	}
	if !found {
		t.Fatalf("no trimmed whitespace subtoken in %+v", subs)
	}
}

func TestStrLitNotAStringLiteral(t *testing.T) {
	cur := newCursor("abc")
	if _, _, _, ok := tryStrLit(cur); ok {
		t.Fatalf("tryStrLit on non-quote input reported ok=true")
	}
}
