// Package report turns a finished analysis run into the four logical sheets
// (absolute frequencies, relative frequencies, correlation matrix and
// likelihood ratios) and writes them out as CSV, JSON or CBOR.
package report

import (
	"strconv"

	"github.com/wgomg/textstat/internal/analysis"
)

const (
	AbsoluteSheet    = "absolute"
	RelativeSheet    = "relative"
	CorrelationSheet = "correlation"
	LikelihoodSheet  = "likelihood"
)

// Sheet is a rectangular-ish grid of cells. Rows may be shorter than the
// header; the correlation sheet leaves the upper triangle blank.
type Sheet struct {
	Name string     `json:"name" cbor:"name"`
	Rows [][]string `json:"rows" cbor:"rows"`
}

// Sheets builds all four sheets in export order.
func Sheets(run *analysis.Run) []Sheet {
	return []Sheet{
		Absolute(run),
		Relative(run),
		Correlation(run),
		Likelihood(run),
	}
}

func header(run *analysis.Run) []string {
	row := []string{"paragraph", "words"}
	for _, keyword := range run.Keywords {
		row = append(row, keyword.Word)
	}
	return row
}

// Absolute has one row per logical paragraph: its 1-based number, its token
// count and the occurrence count of every keyword.
func Absolute(run *analysis.Run) Sheet {
	rows := [][]string{header(run)}
	for p := range run.Paragraphs {
		row := []string{strconv.Itoa(p + 1), strconv.Itoa(run.WordCounts[p])}
		for _, keyword := range run.Keywords {
			row = append(row, strconv.Itoa(run.Counts[keyword.Word][p]))
		}
		rows = append(rows, row)
	}
	return Sheet{Name: AbsoluteSheet, Rows: rows}
}

// Relative has the same shape as Absolute with ratio values.
func Relative(run *analysis.Run) Sheet {
	rows := [][]string{header(run)}
	for p := range run.Paragraphs {
		row := []string{strconv.Itoa(p + 1), strconv.Itoa(run.WordCounts[p])}
		for _, keyword := range run.Keywords {
			row = append(row, formatFloat(run.Relative[keyword.Word][p]))
		}
		rows = append(rows, row)
	}
	return Sheet{Name: RelativeSheet, Rows: rows}
}

// Correlation writes the lower triangle, diagonal included. Cells above the
// diagonal are empty strings.
func Correlation(run *analysis.Run) Sheet {
	keywords := run.Correlation.Keywords()

	head := append([]string{""}, keywords...)
	rows := [][]string{head}
	for i, keyword := range keywords {
		row := make([]string, len(keywords)+1)
		row[0] = keyword
		for j := 0; j <= i; j++ {
			value, _ := run.Correlation.AtIndex(i, j)
			row[j+1] = formatFloat(value)
		}
		rows = append(rows, row)
	}
	return Sheet{Name: CorrelationSheet, Rows: rows}
}

// Likelihood writes a three-row block per satellite pair.
func Likelihood(run *analysis.Run) Sheet {
	var rows [][]string
	for _, pair := range run.Satellites {
		rows = append(rows,
			[]string{"keyword", pair.Keyword},
			[]string{"satellite", pair.Satellite},
			[]string{"ratio", formatFloat(pair.Ratio)},
		)
	}
	return Sheet{Name: LikelihoodSheet, Rows: rows}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
