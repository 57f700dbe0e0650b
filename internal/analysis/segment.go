package analysis

import "github.com/wgomg/textstat/internal/utils"

// Segment merges raw paragraph texts into logical paragraphs. Texts are
// concatenated without a separator; the accumulated text is emitted once it
// starts with a digit and the next raw paragraph starts a new numbered item
// (or the input ends). Text that never starts with a digit is never emitted.
func Segment(raw []string) []Paragraph {
	var paragraphs []Paragraph
	accumulator := ""

	for i, text := range raw {
		accumulator += text

		if accumulator == "" || !utils.StartsWithDigit(accumulator) {
			continue
		}
		last := i == len(raw)-1
		if !last && !utils.StartsWithDigit(raw[i+1]) {
			continue
		}

		paragraphs = append(paragraphs, Paragraph{
			Index:  len(paragraphs),
			Text:   accumulator,
			Tokens: utils.Tokenize(accumulator),
		})
		accumulator = ""
	}

	return paragraphs
}
