package corpus

import (
	"strings"
	"testing"
)

func TestKeepSentence(t *testing.T) {
	p := NewProcessor()

	testCases := []struct {
		name string
		in   string
		want bool
	}{
		{
			name: "well-formed mixed-case sentence",
			in:   "The captain watched the tide roll in at dawn.", // 45 chars
			want: true,
		},
		{
			name: "uppercase heading",
			in:   "CHAPTER ONE THE BEGINNING", // 25 chars, all caps
			want: false,
		},
		{
			name: "short uppercase is fine",
			in:   "STOP IT NOW OK",
			want: true,
		},
		{
			name: "too short",
			in:   "Go home.",
			want: false,
		},
		{
			name: "too long",
			in:   "The tide " + strings.Repeat("rose and fell ", 40),
			want: false,
		},
		{
			name: "too much non-letter noise",
			in:   "Call 555-0147 x22 re: #4471 $18.99 (ref 31)",
			want: false,
		},
		{
			name: "heavy word repetition",
			in:   "the the the the the the tide rose",
			want: false,
		},
		{
			name: "repetition allowed in short sentences",
			in:   "so it goes, so it",
			want: true,
		},
		{
			// 9 runes but 10 bytes; a byte count would let it pass the
			// minimum-length gate.
			name: "accented sentence below minimum rune length",
			in:   "Où es-tu?",
			want: false,
		},
		{
			// 460 runes but 690 bytes; a byte count would reject it as
			// too long.
			name: "accented sentence within maximum rune length",
			in:   strings.Repeat("éa", 230),
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.keepSentence(tc.in); got != tc.want {
				t.Errorf("keepSentence(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFilterSentencesKeepsOrder(t *testing.T) {
	p := NewProcessor()
	in := []string{
		"The first sentence survives the gate.",
		"ALL UPPERCASE HEADINGS DO NOT SURVIVE",
		"The second sentence also survives the gate.",
	}
	got := p.FilterSentences(in)
	if len(got) != 2 || got[0] != in[0] || got[1] != in[2] {
		t.Errorf("FilterSentences() = %q", got)
	}
}
