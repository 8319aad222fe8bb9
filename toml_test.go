package toml

import "testing"

func TestNewTokenizerDecodesAString(t *testing.T) {
	tok := NewTokenizer(`greeting = "hello\nworld"`)
	var got Token
	for {
		tk, err, ok := tok.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		if tk.Val != "" {
			got = tk
		}
	}
	if got.Val != "hello\nworld" {
		t.Fatalf("got.Val = %q, want %q", got.Val, "hello\nworld")
	}
}

func TestParseDatetimeFacade(t *testing.T) {
	dt, err := ParseDatetime("1979-05-27T07:32:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dt.IsOffsetDatetime() {
		t.Fatalf("dt = %+v, want an offset datetime", dt)
	}
}

func TestNewLexerLowLevel(t *testing.T) {
	lx := NewLexer("a = 1")
	count := 0
	for {
		_, ok := lx.Next()
		if !ok {
			break
		}
		count++
	}
	if count == 0 {
		t.Fatalf("expected at least one low-level token")
	}
}
