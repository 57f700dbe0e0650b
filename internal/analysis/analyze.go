package analysis

import "fmt"

// Run is the run-scoped context: every table of one analysis, owned by it
// alone and discarded with it.
type Run struct {
	Keywords   []Keyword
	Paragraphs []Paragraph

	Counts      FrequencyTable
	WordCounts  ParagraphWordCounts
	Totals      []KeywordTotal
	Relative    RelativeFrequencyTable
	Correlation *CorrelationMatrix

	Satellites []SatellitePair
	Skips      []Skip
}

// Analyze runs segmentation, counting, normalization, correlation and the
// satellite analysis over raw paragraph texts, in that order.
func Analyze(raw []string, opts Options) (*Run, error) {
	if len(raw) == 0 {
		return nil, &InputError{Reason: ErrEmptyDocument}
	}

	opts = opts.withDefaults()
	keywords := CapKeywords(opts.Keywords, opts.KeywordCap)
	if err := validateKeywords(keywords); err != nil {
		return nil, err
	}

	run := &Run{Keywords: keywords}

	run.Paragraphs = Segment(raw)
	if len(run.Paragraphs) == 0 {
		return nil, &InputError{
			Reason: ErrNoLogicalParagraphs,
			Detail: fmt.Sprintf("%d raw paragraphs, none starting with a digit", len(raw)),
		}
	}

	run.Counts, run.WordCounts, run.Totals = CountFrequencies(keywords, run.Paragraphs)
	run.Relative = RelativeFrequencies(run.Counts, run.WordCounts)
	run.Correlation = Correlate(keywords, run.Relative)

	// Fewer than two paragraphs or a constant vector leaves the keyword's
	// coefficients undefined; record it before the satellite pass.
	for _, keyword := range run.Undefined() {
		run.Skips = append(run.Skips, Skip{Keyword: keyword, Reason: ErrDegenerateStatistic})
	}

	satellites, skips := FindSatellites(run.Correlation, run.Counts, run.Relative, SatelliteOptions{
		CorrelationThreshold: opts.CorrelationThreshold,
		LowerBand:            opts.LowerBand,
		UpperBand:            opts.UpperBand,
		CandidateCap:         opts.CandidateCap,
	})
	run.Satellites = satellites
	run.Skips = append(run.Skips, skips...)

	return run, nil
}

func validateKeywords(keywords []Keyword) error {
	if len(keywords) == 0 {
		return &InputError{Reason: ErrNoKeywords}
	}
	seen := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		if keyword.Word == "" || keyword.Root == "" {
			return &InputError{Reason: ErrInvalidKeyword, Detail: fmt.Sprintf("keyword %q has an empty word or root", keyword.Word)}
		}
		if seen[keyword.Word] {
			return &InputError{Reason: ErrInvalidKeyword, Detail: fmt.Sprintf("keyword %q listed twice", keyword.Word)}
		}
		seen[keyword.Word] = true
	}
	return nil
}

// WordCount is the total number of tokens across all logical paragraphs.
func (r *Run) WordCount() int {
	return r.WordCounts.Total()
}

// Undefined lists the keywords whose relative-frequency vector has no
// variance, which leaves their whole correlation row undefined.
func (r *Run) Undefined() []string {
	var words []string
	for i, keyword := range r.Correlation.Keywords() {
		if _, ok := r.Correlation.AtIndex(i, i); !ok {
			words = append(words, keyword)
		}
	}
	return words
}
