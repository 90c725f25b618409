package ngram

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "words and terminal punctuation",
			in:   "The boat drifted. It was quiet!",
			want: []string{"the", "boat", "drifted", ".", "it", "was", "quiet", "!"},
		},
		{
			name: "drops digits and single letters",
			in:   "A ship sailed 42 miles in x9 days",
			want: []string{"ship", "sailed", "miles", "in", "days"},
		},
		{
			name: "drops commas and semicolons",
			in:   "red, green; blue?",
			want: []string{"red", "green", "blue", "?"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "only noise",
			in:   "12 3 , ; 4",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTitleCaseStarter(t *testing.T) {
	testCases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"The river bent east", "The", true},
		{"once upon a time", "", false},
		{"IBM built machines", "", false},
		{"A dog barked", "", false}, // single letters are not model tokens
		{"  Quietly, she left", "Quietly", true},
		{"", "", false},
	}

	for _, tc := range testCases {
		got, ok := titleCaseStarter(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("titleCaseStarter(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
