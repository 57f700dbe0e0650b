package analysis

import (
	"cmp"
	"slices"
)

// SatelliteOptions are the thresholds of the satellite analysis.
type SatelliteOptions struct {
	CorrelationThreshold float64
	LowerBand            float64
	UpperBand            float64
	CandidateCap         int
}

type keywordPair struct {
	row string
	col string
}

// FindSatellites selects strongly correlated keywords, pairs each with the
// first word whose correlation lies in the satellite band and computes the
// likelihood ratio of the keyword's relative-frequency mass with and without
// the satellite. Keywords without a satellite or with an empty paragraph
// group are recorded as skips; the analysis itself never fails.
func FindSatellites(
	matrix *CorrelationMatrix,
	counts FrequencyTable,
	relative RelativeFrequencyTable,
	opts SatelliteOptions,
) ([]SatellitePair, []Skip) {
	pairs := selectPairs(matrix, opts.CorrelationThreshold)
	candidates := rankCandidates(pairs, opts.CandidateCap)

	var results []SatellitePair
	var skips []Skip

	for _, keyword := range candidates {
		satellite, ok := findSatellite(matrix, keyword, opts.LowerBand, opts.UpperBand)
		if !ok {
			skips = append(skips, Skip{Keyword: keyword, Reason: ErrMissingSatellite})
			continue
		}

		groupA, groupB := partition(counts[keyword], counts[satellite])
		if len(groupA) == 0 || len(groupB) == 0 {
			skips = append(skips, Skip{Keyword: keyword, Satellite: satellite, Reason: ErrEmptyPartitionGroup})
			continue
		}

		ratio, ok := LikelihoodRatio(relative[keyword], groupA, groupB)
		if !ok {
			skips = append(skips, Skip{Keyword: keyword, Satellite: satellite, Reason: ErrDegenerateStatistic})
			continue
		}

		results = append(results, SatellitePair{
			Keyword:   keyword,
			Satellite: satellite,
			Ratio:     ratio,
			GroupA:    groupA,
			GroupB:    groupB,
		})
	}

	return results, skips
}

// selectPairs walks the stored lower triangle, diagonal excluded, row by row.
func selectPairs(matrix *CorrelationMatrix, threshold float64) []keywordPair {
	keywords := matrix.Keywords()
	var pairs []keywordPair

	for row := range keywords {
		for col := 0; col < row; col++ {
			value, ok := matrix.AtIndex(row, col)
			if ok && value > threshold {
				pairs = append(pairs, keywordPair{row: keywords[row], col: keywords[col]})
			}
		}
	}

	return pairs
}

// rankCandidates counts each word over both positions of the pairs and keeps
// the limit most frequent, first-encountered order breaking ties.
func rankCandidates(pairs []keywordPair, limit int) []string {
	type candidate struct {
		word  string
		count int
	}

	position := make(map[string]int)
	var ranked []candidate
	add := func(word string) {
		if i, ok := position[word]; ok {
			ranked[i].count++
			return
		}
		position[word] = len(ranked)
		ranked = append(ranked, candidate{word: word, count: 1})
	}

	for _, pair := range pairs {
		add(pair.row)
		add(pair.col)
	}

	slices.SortStableFunc(ranked, func(a, b candidate) int {
		return cmp.Compare(b.count, a.count)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	words := make([]string, len(ranked))
	for i, c := range ranked {
		words[i] = c.word
	}
	return words
}

// findSatellite scans the keyword's row and column in keyword order and
// returns the first other word with a defined coefficient in [lower, upper].
func findSatellite(matrix *CorrelationMatrix, keyword string, lower, upper float64) (string, bool) {
	for _, other := range matrix.Keywords() {
		if other == keyword {
			continue
		}
		value, ok := matrix.At(keyword, other)
		if ok && value >= lower && value <= upper {
			return other, true
		}
	}
	return "", false
}

// partition splits the paragraphs containing the keyword into those that
// also contain the satellite (A) and those that do not (B).
func partition(keywordCounts, satelliteCounts []int) (groupA, groupB []int) {
	for p, count := range keywordCounts {
		if count == 0 {
			continue
		}
		if p < len(satelliteCounts) && satelliteCounts[p] > 0 {
			groupA = append(groupA, p)
		} else {
			groupB = append(groupB, p)
		}
	}
	return groupA, groupB
}

// LikelihoodRatio divides the keyword's relative-frequency mass over groupA
// by its mass over groupB. ok is false when groupB carries no mass.
func LikelihoodRatio(relative []float64, groupA, groupB []int) (float64, bool) {
	sumA, sumB := 0.0, 0.0
	for _, p := range groupA {
		sumA += relative[p]
	}
	for _, p := range groupB {
		sumB += relative[p]
	}
	if sumB == 0 {
		return 0, false
	}
	return sumA / sumB, true
}
