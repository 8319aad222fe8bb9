package datetime

import (
	"os"
	"testing"

	"gopkg.in/yaml.v2"
)

type fixtureCase struct {
	Input  string `yaml:"input"`
	Valid  bool   `yaml:"valid"`
	Kind   string `yaml:"kind"`
	Render string `yaml:"render"`
}

func loadFixtures(t *testing.T) []fixtureCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/cases.yaml")
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}
	var cases []fixtureCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}
	return cases
}

func TestFixtures(t *testing.T) {
	for _, tc := range loadFixtures(t) {
		tc := tc
		t.Run(tc.Input, func(t *testing.T) {
			dt, err := Parse(tc.Input)
			if !tc.Valid {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want an error", tc.Input, dt)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error %v", tc.Input, err)
			}

			var gotKind string
			switch {
			case dt.IsOffsetDatetime():
				gotKind = "offset-datetime"
			case dt.IsLocalDatetime():
				gotKind = "local-datetime"
			case dt.IsLocalDate():
				gotKind = "local-date"
			case dt.IsLocalTime():
				gotKind = "local-time"
			}
			if gotKind != tc.Kind {
				t.Fatalf("Parse(%q) kind = %q, want %q", tc.Input, gotKind, tc.Kind)
			}

			want := tc.Render
			if want == "" {
				want = tc.Input
			}
			if got := dt.String(); got != want {
				t.Fatalf("Parse(%q).String() = %q, want %q", tc.Input, got, want)
			}
		})
	}
}
