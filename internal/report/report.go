package report

import (
	"github.com/wgomg/textstat/internal/analysis"
)

// StopWords summarizes the stop-word pre-pass over a document.
type StopWords struct {
	Language   string   `json:"language" cbor:"language"`
	SetSize    int      `json:"set_size" cbor:"set_size"`
	Used       []string `json:"used" cbor:"used"`
	Removed    int      `json:"removed" cbor:"removed"`
	Total      int      `json:"total" cbor:"total"`
	Percentage int      `json:"percentage" cbor:"percentage"`
}

// NewStopWords captures the running totals of filter.
func NewStopWords(language string, filter *analysis.StopWordFilter) StopWords {
	used := filter.Used()
	if used == nil {
		used = []string{}
	}
	return StopWords{
		Language:   language,
		SetSize:    filter.SetSize(),
		Used:       used,
		Removed:    len(filter.Removed()),
		Total:      filter.Total(),
		Percentage: filter.Percentage(),
	}
}

type Skip struct {
	Keyword   string `json:"keyword" cbor:"keyword"`
	Satellite string `json:"satellite,omitempty" cbor:"satellite,omitempty"`
	Reason    string `json:"reason" cbor:"reason"`
}

// Report is the serializable result of one run.
type Report struct {
	RunID      string                   `json:"run_id" cbor:"run_id"`
	Source     string                   `json:"source" cbor:"source"`
	StopWords  StopWords                `json:"stop_words" cbor:"stop_words"`
	Paragraphs int                      `json:"paragraphs" cbor:"paragraphs"`
	WordCount  int                      `json:"word_count" cbor:"word_count"`
	Totals     []analysis.KeywordTotal  `json:"totals" cbor:"totals"`
	Satellites []analysis.SatellitePair `json:"satellites" cbor:"satellites"`
	Skips      []Skip                   `json:"skips" cbor:"skips"`
	Sheets     []Sheet                  `json:"sheets" cbor:"sheets"`
}

func New(runID, source string, stopWords StopWords, run *analysis.Run) *Report {
	skips := make([]Skip, 0, len(run.Skips))
	for _, skip := range run.Skips {
		skips = append(skips, Skip{
			Keyword:   skip.Keyword,
			Satellite: skip.Satellite,
			Reason:    skip.Reason.Error(),
		})
	}

	satellites := run.Satellites
	if satellites == nil {
		satellites = []analysis.SatellitePair{}
	}

	return &Report{
		RunID:      runID,
		Source:     source,
		StopWords:  stopWords,
		Paragraphs: len(run.Paragraphs),
		WordCount:  run.WordCount(),
		Totals:     run.Totals,
		Satellites: satellites,
		Skips:      skips,
		Sheets:     Sheets(run),
	}
}
