package analysis

import (
	"cmp"
	"slices"
	"strings"
)

// CountFrequencies counts, for every keyword and paragraph, the tokens that
// start with the keyword's root. The match is a plain case-sensitive prefix
// test. It also returns each paragraph's token count and the per-keyword
// totals sorted by count, descending, ties kept in keyword order.
func CountFrequencies(keywords []Keyword, paragraphs []Paragraph) (FrequencyTable, ParagraphWordCounts, []KeywordTotal) {
	counts := make(FrequencyTable, len(keywords))
	words := make(ParagraphWordCounts, len(paragraphs))
	totals := make([]KeywordTotal, 0, len(keywords))

	for _, paragraph := range paragraphs {
		words[paragraph.Index] = len(paragraph.Tokens)
	}

	for _, keyword := range keywords {
		perParagraph := make([]int, len(paragraphs))
		total := 0

		for _, paragraph := range paragraphs {
			for _, token := range paragraph.Tokens {
				if strings.HasPrefix(token, keyword.Root) {
					perParagraph[paragraph.Index]++
					total++
				}
			}
		}

		counts[keyword.Word] = perParagraph
		totals = append(totals, KeywordTotal{Keyword: keyword.Word, Count: total})
	}

	slices.SortStableFunc(totals, func(a, b KeywordTotal) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return counts, words, totals
}
