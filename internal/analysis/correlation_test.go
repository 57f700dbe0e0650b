package analysis

import (
	"math"
	"testing"
)

func keywordsFor(words ...string) []Keyword {
	keywords := make([]Keyword, len(words))
	for i, word := range words {
		keywords[i] = Keyword{Word: word, Root: word}
	}
	return keywords
}

func TestCorrelate(t *testing.T) {
	relative := RelativeFrequencyTable{
		"x": {1, 2, 3, 4},
		"y": {2, 1, 4, 3},
		"z": {4, 3, 2, 1},
	}

	matrix := Correlate(keywordsFor("x", "y", "z"), relative)

	tests := []struct {
		row, col string
		want     float64
	}{
		{"x", "x", 1},
		{"y", "y", 1},
		{"y", "x", 0.6},
		{"z", "x", -1},
		{"z", "y", -0.6},
	}
	for _, test := range tests {
		got, ok := matrix.At(test.row, test.col)
		if !ok {
			t.Errorf("At(%s, %s) undefined", test.row, test.col)
			continue
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("At(%s, %s) = %v, want %v", test.row, test.col, got, test.want)
		}
	}
}

func TestCorrelateDiagonalWithRoundedRatios(t *testing.T) {
	relative := RelativeFrequencyTable{
		"a": {0.1, 0.333, 0, 0.25, 0.125},
	}

	matrix := Correlate(keywordsFor("a"), relative)

	got, ok := matrix.At("a", "a")
	if !ok || got != 1 {
		t.Errorf("At(a, a) = %v, %v; want 1, true", got, ok)
	}
}

func TestCorrelateLowerTriangleStorage(t *testing.T) {
	relative := RelativeFrequencyTable{
		"a": {0.1, 0.2, 0.4},
		"b": {0.3, 0.1, 0.2},
	}

	matrix := Correlate(keywordsFor("a", "b"), relative)

	if !matrix.Stored("b", "a") {
		t.Error("Stored(b, a) = false, want true")
	}
	if matrix.Stored("a", "b") {
		t.Error("Stored(a, b) = true, want false above the diagonal")
	}
	if len(matrix.Row(0)) != 1 || len(matrix.Row(1)) != 2 {
		t.Errorf("row lengths = %d, %d; want 1, 2", len(matrix.Row(0)), len(matrix.Row(1)))
	}

	lower, lowerOK := matrix.At("b", "a")
	upper, upperOK := matrix.At("a", "b")
	if lower != upper || lowerOK != upperOK {
		t.Errorf("At(a, b) = %v, %v does not mirror At(b, a) = %v, %v", upper, upperOK, lower, lowerOK)
	}

	if _, ok := matrix.At("a", "missing"); ok {
		t.Error("At with unknown keyword reported a value")
	}
}

func TestCorrelateDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		relative RelativeFrequencyTable
	}{
		{
			name:     "single paragraph",
			relative: RelativeFrequencyTable{"a": {0.5}, "b": {0.2}},
		},
		{
			name:     "zero variance",
			relative: RelativeFrequencyTable{"a": {0.1, 0.1, 0.1}, "b": {0.1, 0.2, 0.3}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			matrix := Correlate(keywordsFor("a", "b"), test.relative)

			value, ok := matrix.At("b", "a")
			if ok || value != 0 {
				t.Errorf("At(b, a) = %v, %v; want 0, false", value, ok)
			}
			if matrix.Defined("a", "a") {
				t.Error("Defined(a, a) = true for a degenerate vector")
			}
		})
	}
}
