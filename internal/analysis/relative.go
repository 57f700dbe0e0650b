package analysis

// RelativeFrequencies divides every count by its paragraph's token count and
// rounds to three decimals. A paragraph without tokens gets exactly 0.
func RelativeFrequencies(counts FrequencyTable, words ParagraphWordCounts) RelativeFrequencyTable {
	relative := make(RelativeFrequencyTable, len(counts))

	for keyword, perParagraph := range counts {
		ratios := make([]float64, len(perParagraph))
		for p, count := range perParagraph {
			if words[p] == 0 {
				ratios[p] = 0
				continue
			}
			ratios[p] = round(float64(count)/float64(words[p]), 3)
		}
		relative[keyword] = ratios
	}

	return relative
}
