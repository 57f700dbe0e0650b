package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into word and punctuation tokens. Word tokens are
// runs of letters, digits, marks and underscores; a hyphen or apostrophe
// joins two word runs ("северо-запад", "o'clock") and a dot or comma joins
// two digit runs ("3.14", "1,5"). An English clitic after an ASCII
// apostrophe is split off as in Treebank tokenization ("don't" gives "do"
// and "n't"); the typographic apostrophe never splits. Every other
// non-space rune is a token of its own, except that a repeated punctuation
// rune ("...", "--") stays together.
func Tokenize(text string) []string {
	runes := []rune(text)
	tokens := make([]string, 0, len(runes)/4)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			start := i
			i++
			for i < len(runes) {
				if isWordRune(runes[i]) {
					i++
					continue
				}
				if i+1 < len(runes) && joinsWord(runes[i-1], runes[i], runes[i+1]) {
					i += 2
					continue
				}
				break
			}
			tokens = append(tokens, splitClitic(string(runes[start:i]))...)
		default:
			start := i
			i++
			for i < len(runes) && runes[i] == r {
				i++
			}
			tokens = append(tokens, string(runes[start:i]))
		}
	}

	return tokens
}

var clitics = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

func splitClitic(word string) []string {
	for _, clitic := range clitics {
		cut := len(word) - len(clitic)
		if cut > 0 && strings.EqualFold(word[cut:], clitic) {
			return []string{word[:cut], word[cut:]}
		}
	}
	return []string{word}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

func joinsWord(prev, sep, next rune) bool {
	switch sep {
	case '-', '\'', '’':
		return isWordRune(next)
	case '.', ',':
		return unicode.IsDigit(prev) && unicode.IsDigit(next)
	default:
		return false
	}
}

// CountWords returns the number of tokens Tokenize produces for text.
func CountWords(text string) int {
	return len(Tokenize(text))
}

// StartsWithDigit reports whether the first rune of s is a decimal digit.
func StartsWithDigit(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsDigit(r)
}

func Truncate(s string, maxLength int) string {
	defaultString := "Unknown"

	if strings.TrimSpace(s) == "" {
		return defaultString
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}
