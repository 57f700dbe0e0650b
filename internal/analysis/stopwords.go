package analysis

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wgomg/textstat/internal/utils"
)

// StopWordFilter removes stop words from run texts and keeps running totals
// over every run it has seen. It is not safe for concurrent use.
type StopWordFilter struct {
	stopWords map[string]struct{}
	caser     cases.Caser
	total     int
	removed   []string
}

// NewStopWordFilter builds a filter over stopWords. Membership is
// case-insensitive, folded with the lower-casing rules of tag.
func NewStopWordFilter(stopWords map[string]struct{}, tag language.Tag) *StopWordFilter {
	caser := cases.Lower(tag)
	folded := make(map[string]struct{}, len(stopWords))
	for word := range stopWords {
		folded[caser.String(word)] = struct{}{}
	}
	return &StopWordFilter{
		stopWords: folded,
		caser:     caser,
	}
}

// Filter tokenizes text, counts every token towards the running total and
// strips each stop word by replacing " word " with a single space. A stop
// word at the very start or end of the text has no surrounding spaces and
// stays in the cleaned text, although it is still reported as removed.
func (f *StopWordFilter) Filter(text string) (string, []string) {
	cleaned := text
	var removed []string

	for _, token := range utils.Tokenize(text) {
		f.total++
		if _, ok := f.stopWords[f.caser.String(token)]; !ok {
			continue
		}
		removed = append(removed, token)
		cleaned = strings.ReplaceAll(cleaned, " "+token+" ", " ")
	}

	f.removed = append(f.removed, removed...)
	return cleaned, removed
}

// Total is the number of tokens seen, stop words included.
func (f *StopWordFilter) Total() int {
	return f.total
}

// Removed lists every removed stop word in original casing, duplicates kept.
func (f *StopWordFilter) Removed() []string {
	return f.removed
}

// Used is the sorted set of distinct removed stop words.
func (f *StopWordFilter) Used() []string {
	used := slices.Clone(f.removed)
	slices.Sort(used)
	return slices.Compact(used)
}

// Ratio is count(removed) / count(total), or 0 before any token was seen.
func (f *StopWordFilter) Ratio() float64 {
	if f.total == 0 {
		return 0
	}
	return float64(len(f.removed)) / float64(f.total)
}

// Percentage is Ratio rounded to two places, scaled by 100 and truncated.
// Float error can leave it one below the rounded ratio: 0.29 gives 28.
func (f *StopWordFilter) Percentage() int {
	return int(round(f.Ratio(), 2) * 100)
}

// SetSize is the number of distinct stop words the filter knows.
func (f *StopWordFilter) SetSize() int {
	return len(f.stopWords)
}

// round rounds the exact binary value of value to places decimals, exact
// ties going to the even digit: round(0.0625, 3) is 0.062.
func round(value float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', places, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
