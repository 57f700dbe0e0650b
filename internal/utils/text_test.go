package utils

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: " кот и пёс ", want: []string{"кот", "и", "пёс"}},
		{text: "1. intro text", want: []string{"1", ".", "intro", "text"}},
		{text: "Скорость 3.5 м/с, цикл 1,5 ч.", want: []string{"Скорость", "3.5", "м", "/", "с", ",", "цикл", "1,5", "ч", "."}},
		{text: "северо-запад don't", want: []string{"северо-запад", "do", "n't"}},
		{text: "It's THEY'LL can't we've", want: []string{"It", "'s", "THEY", "'LL", "ca", "n't", "we", "'ve"}},
		{text: "o'clock rock'n'roll don’t", want: []string{"o'clock", "rock'n'roll", "don’t"}},
		{text: "Wait... what?!", want: []string{"Wait", "...", "what", "?", "!"}},
		{text: "trailing- -leading", want: []string{"trailing", "-", "-", "leading"}},
		{text: "   ", want: []string{}},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			got := Tokenize(test.text)
			if !slices.Equal(got, test.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", test.text, got, test.want)
			}
		})
	}
}

func TestStartsWithDigit(t *testing.T) {
	tests := map[string]bool{
		"1. item":        true,
		"٣ arabic-indic": true,
		"item 1":         false,
		"":               false,
		" 1":             false,
	}
	for input, want := range tests {
		if got := StartsWithDigit(input); got != want {
			t.Errorf("StartsWithDigit(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("автосамосвал", 4); got != "авто" {
		t.Errorf("Truncate() = %q, want %q", got, "авто")
	}
	if got := Truncate("  ", 4); got != "Unknown" {
		t.Errorf("Truncate(blank) = %q, want Unknown", got)
	}
}
