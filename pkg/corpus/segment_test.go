package corpus

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "abbreviation is not a boundary",
			in:   "Dr. Smith went home. She was tired.",
			want: []string{"Dr. Smith went home.", "She was tired."},
		},
		{
			name: "decimal is not a boundary",
			in:   "The value 3.14 appears often. It is pi.",
			want: []string{"The value 3.14 appears often.", "It is pi."},
		},
		{
			name: "splits on all terminal marks",
			in:   "Stop! Who goes there? Nobody answered.",
			want: []string{"Stop!", "Who goes there?", "Nobody answered."},
		},
		{
			name: "no split before lowercase",
			in:   "He paused... then spoke.",
			want: []string{"He paused... then spoke."},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "trailing text without punctuation",
			in:   "It ended. without warning",
			want: []string{"It ended. without warning"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitSentences(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
