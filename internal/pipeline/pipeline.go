// Package pipeline runs one analysis end to end: the stop-word pre-pass over
// the document runs, then segmentation, counting, normalization, correlation
// and the satellite analysis over the cleaned text.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wgomg/textstat/internal/analysis"
	"github.com/wgomg/textstat/internal/config"
	"github.com/wgomg/textstat/internal/document"
	"github.com/wgomg/textstat/internal/report"
	"github.com/wgomg/textstat/internal/stopwords"
	"github.com/wgomg/textstat/internal/utils"
)

// CleanedFile is the name of the cleaned document written next to the sheets.
const CleanedFile = "cleaned.txt"

// sampleLimit bounds the text handed to language detection.
const sampleLimit = 4096

type Runner struct {
	logger    *utils.Logger
	cfg       *config.Config
	stopWords *stopwords.Provider
	keywords  []analysis.Keyword
}

// NewRunner loads the configured keyword list once. The list is kept
// uncapped; each run applies its own cap.
func NewRunner(cfg *config.Config, logger *utils.Logger, provider *stopwords.Provider) (*Runner, error) {
	keywords, err := config.LoadKeywords(cfg.Frequency.KeywordsFile, 0)
	if err != nil {
		return nil, fmt.Errorf("loading keywords: %w", err)
	}

	return &Runner{
		logger:    logger,
		cfg:       cfg,
		stopWords: provider,
		keywords:  keywords,
	}, nil
}

// Request describes one run. Zero-valued overrides fall back to the
// configuration.
type Request struct {
	Source   string
	Document document.Document
	Language string
	Keywords []analysis.Keyword
	Cap      int
}

// Outcome is everything a successful run produced. Document holds the
// cleaned runs.
type Outcome struct {
	Run      *analysis.Run
	Report   *report.Report
	Document document.Document
}

func (r *Runner) Run(req Request, runID string) (*Outcome, error) {
	texts := document.Texts(req.Document)
	if len(texts) == 0 {
		return nil, &analysis.InputError{Reason: analysis.ErrEmptyDocument}
	}

	r.logger.Info(&runID, "Analyzing %s: %d raw paragraphs, %d words",
		req.Source, len(texts), utils.CountWords(strings.Join(texts, "\n")))

	lang := req.Language
	if lang == "" {
		lang = r.cfg.StopWords.Language
	}
	lang, err := r.stopWords.Resolve(lang, sample(texts), &runID)
	if err != nil {
		return nil, err
	}
	set, err := r.stopWords.Load(lang)
	if err != nil {
		return nil, err
	}
	sets, hitRate := r.stopWords.CacheStats()
	r.logger.Debug(&runID, "Stop-word cache: %d sets, hit rate %.2f", sets, hitRate)

	filter := analysis.NewStopWordFilter(set, stopwords.Tag(lang))
	for _, paragraph := range req.Document.Paragraphs() {
		for _, run := range paragraph.Runs() {
			cleaned, removed := filter.Filter(run.Text())
			if len(removed) > 0 {
				r.logger.Debug(&runID, "Removed stop words %v", removed)
			}
			run.SetText(cleaned)
		}
	}
	stop := report.NewStopWords(lang, filter)
	r.logger.Info(&runID, "Stop words (%s, %d known): %d of %d tokens removed (%d%%)",
		lang, stop.SetSize, stop.Removed, stop.Total, stop.Percentage)

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = r.keywords
	}
	opts := r.cfg.AnalysisOptions(keywords)
	if req.Cap > 0 {
		opts.KeywordCap = req.Cap
	}

	run, err := analysis.Analyze(document.Texts(req.Document), opts)
	if err != nil {
		return nil, err
	}

	r.logger.Info(&runID, "Segmented %d logical paragraphs, %d words, %d keywords",
		len(run.Paragraphs), run.WordCount(), len(run.Keywords))
	for _, skip := range run.Skips {
		r.logger.Debug(&runID, "Skipped %s", skip)
	}
	r.logger.Info(&runID, "Found %d satellite pairs, %d skipped", len(run.Satellites), len(run.Skips))

	return &Outcome{
		Run:      run,
		Report:   report.New(runID, req.Source, stop, run),
		Document: req.Document,
	}, nil
}

// Export writes the sheets in format and the cleaned document into dir. It
// is only ever called with a complete Outcome.
func (r *Runner) Export(outcome *Outcome, dir, format string, runID string) ([]string, error) {
	paths, err := report.Export(dir, format, outcome.Report)
	if err != nil {
		return paths, fmt.Errorf("exporting report: %w", err)
	}

	cleaned := filepath.Join(dir, CleanedFile)
	var builder strings.Builder
	if err := document.WriteText(&builder, outcome.Document); err != nil {
		return paths, err
	}
	if err := os.WriteFile(cleaned, []byte(builder.String()), 0o644); err != nil {
		return paths, fmt.Errorf("writing %s: %w", cleaned, err)
	}
	paths = append(paths, cleaned)

	r.logger.Info(&runID, "Wrote %d files to %s", len(paths), dir)
	return paths, nil
}

// IsInputError reports whether err rejects the input as a whole.
func IsInputError(err error) bool {
	var inputErr *analysis.InputError
	return errors.As(err, &inputErr) || errors.Is(err, stopwords.ErrUnsupportedLanguage)
}

func sample(texts []string) string {
	text := strings.Join(texts, " ")
	if len(text) <= sampleLimit {
		return text
	}
	return strings.ToValidUTF8(text[:sampleLimit], "")
}
