package analysis

import "testing"

func paragraphTexts(paragraphs []Paragraph) []string {
	texts := make([]string, len(paragraphs))
	for i, paragraph := range paragraphs {
		texts[i] = paragraph.Text
	}
	return texts
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "numbered items absorb continuation lines",
			raw:  []string{"1. intro text", "continued line", "2. next item", "more"},
			want: []string{"1. intro textcontinued line", "2. next itemmore"},
		},
		{
			name: "every paragraph numbered",
			raw:  []string{"1 a", "2 b", "3 c"},
			want: []string{"1 a", "2 b", "3 c"},
		},
		{
			name: "empty paragraphs are absorbed",
			raw:  []string{"1. a", "", "tail", "2. b"},
			want: []string{"1. atail", "2. b"},
		},
		{
			name: "trailing empty paragraph",
			raw:  []string{"1. a", "2. b", ""},
			want: []string{"1. a", "2. b"},
		},
		{
			name: "unnumbered prefix is never flushed",
			raw:  []string{"Preface", "1. a", "2. b"},
			want: nil,
		},
		{
			name: "no digits at all",
			raw:  []string{"a", "b"},
			want: nil,
		},
		{
			name: "empty input",
			raw:  nil,
			want: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := paragraphTexts(Segment(test.raw))
			if len(got) != len(test.want) {
				t.Fatalf("Segment() = %q, want %q", got, test.want)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("paragraph %d = %q, want %q", i, got[i], test.want[i])
				}
			}
		})
	}
}

func TestSegmentIndexesAndTokens(t *testing.T) {
	paragraphs := Segment([]string{"1. кот", "2. пёс, кот"})

	if len(paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paragraphs))
	}
	for i, paragraph := range paragraphs {
		if paragraph.Index != i {
			t.Errorf("paragraph %d has Index %d", i, paragraph.Index)
		}
	}
	if len(paragraphs[1].Tokens) != 5 {
		t.Errorf("tokens = %q, want 5 tokens", paragraphs[1].Tokens)
	}
}
