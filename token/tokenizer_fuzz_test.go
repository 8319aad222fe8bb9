package token

import "testing"

// FuzzTokenizer checks that the high tokenizer either produces a
// well-formed token stream or stops with a typed *Error - never a panic,
// and never a token whose span runs past the input.
func FuzzTokenizer(f *testing.F) {
	f.Add(`key = "value"`)
	f.Add(`"""multi\nline"""`)
	f.Add(`"\uD800"`)
	f.Add(`"unterminated`)
	f.Add("k = \"a\\ \n b\"")
	f.Add(`k."q".m = 1`)

	f.Fuzz(func(t *testing.T, input string) {
		tok := New(input)
		for {
			tk, err, ok := tok.Next()
			if err != nil {
				if _, isTokenErr := err.(*Error); !isTokenErr {
					t.Fatalf("error of unexpected type: %#v", err)
				}
				return
			}
			if !ok {
				return
			}
			if tk.Span.End > len(input) || tk.Span.Start > tk.Span.End {
				t.Fatalf("token span out of range: %+v (input len %d)", tk, len(input))
			}
		}
	})
}
