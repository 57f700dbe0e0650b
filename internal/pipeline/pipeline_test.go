package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wgomg/textstat/internal/analysis"
	"github.com/wgomg/textstat/internal/config"
	"github.com/wgomg/textstat/internal/document"
	"github.com/wgomg/textstat/internal/report"
	"github.com/wgomg/textstat/internal/stopwords"
	"github.com/wgomg/textstat/internal/utils"
)

var keywords = []analysis.Keyword{
	{Word: "модель", Root: "модел"},
	{Word: "карьер", Root: "карьер"},
	{Word: "блок", Root: "блок"},
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := &config.Config{
		StopWords: config.StopWordsConfig{Language: "russian"},
		Frequency: config.FrequencyConfig{Cap: analysis.DefaultKeywordCap},
		Satellite: config.SatelliteConfig{
			CorrelationThreshold: analysis.DefaultCorrelationThreshold,
			LowerBand:            analysis.DefaultLowerBand,
			UpperBand:            analysis.DefaultUpperBand,
			CandidateCap:         analysis.DefaultCandidateCap,
		},
	}
	logger := utils.NewDiscardLogger()

	runner, err := NewRunner(cfg, logger, stopwords.NewProvider(logger, ""))
	if err != nil {
		t.Fatalf("NewRunner() error: %v", err)
	}
	return runner
}

func testDocument() *document.TextDocument {
	return document.FromParagraphs([]string{
		"1. модель и карьер",
		"описание и модель",
		"2. карьер и блок",
		"3. модель блок",
	})
}

func TestRun(t *testing.T) {
	runner := newTestRunner(t)

	outcome, err := runner.Run(Request{Source: "test", Document: testDocument(), Keywords: keywords}, "run-1")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	stop := outcome.Report.StopWords
	if stop.Removed != 3 || stop.Total != 17 || stop.Percentage != 18 {
		t.Errorf("stop words = %+v, want 3 of 17 removed (18%%)", stop)
	}

	wantTexts := []string{"1. модель карьер", "описание модель", "2. карьер блок", "3. модель блок"}
	if got := document.Texts(outcome.Document); !reflect.DeepEqual(got, wantTexts) {
		t.Errorf("cleaned texts = %q, want %q", got, wantTexts)
	}

	if outcome.Report.Paragraphs != 3 {
		t.Errorf("Paragraphs = %d, want 3", outcome.Report.Paragraphs)
	}
	if got := outcome.Run.Counts["модель"]; !reflect.DeepEqual(got, []int{2, 0, 1}) {
		t.Errorf("counts[модель] = %v, want [2 0 1]", got)
	}
	if outcome.Report.RunID != "run-1" {
		t.Errorf("RunID = %q", outcome.Report.RunID)
	}
}

func TestRunAppliesCap(t *testing.T) {
	runner := newTestRunner(t)

	outcome, err := runner.Run(Request{Document: testDocument(), Keywords: keywords, Cap: 2}, "")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(outcome.Run.Keywords) != 2 || outcome.Run.Keywords[1].Word != "карьер" {
		t.Errorf("keywords = %v, want the first two", outcome.Run.Keywords)
	}
}

func TestRunDefaultKeywords(t *testing.T) {
	runner := newTestRunner(t)

	outcome, err := runner.Run(Request{Document: testDocument()}, "")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(outcome.Run.Keywords) != analysis.DefaultKeywordCap {
		t.Errorf("got %d keywords, want %d", len(outcome.Run.Keywords), analysis.DefaultKeywordCap)
	}
}

func TestRunDetectsLanguage(t *testing.T) {
	runner := newTestRunner(t)
	doc := document.FromParagraphs([]string{
		"1. The model of the transport system in the open pit is described in this paragraph.",
		"2. The model of the loading and unloading cycle is described in the next paragraph.",
	})

	outcome, err := runner.Run(Request{
		Document: doc,
		Language: stopwords.Auto,
		Keywords: []analysis.Keyword{{Word: "model", Root: "model"}},
	}, "")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if outcome.Report.StopWords.Language != "english" {
		t.Errorf("language = %q, want english", outcome.Report.StopWords.Language)
	}
}

func TestRunInputErrors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "empty document",
			req:  Request{Document: document.FromParagraphs(nil)},
		},
		{
			name: "no numbered paragraphs",
			req:  Request{Document: document.FromParagraphs([]string{"введение", "описание модели"})},
		},
		{
			name: "unsupported language",
			req:  Request{Document: testDocument(), Language: "klingon"},
		},
	}

	runner := newTestRunner(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := runner.Run(tt.req, "")
			if !IsInputError(err) {
				t.Fatalf("Run() error = %v, want an input error", err)
			}
			if outcome != nil {
				t.Error("Run() returned a partial outcome")
			}
		})
	}
}

func TestExport(t *testing.T) {
	runner := newTestRunner(t)
	outcome, err := runner.Run(Request{Document: testDocument(), Keywords: keywords}, "")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := runner.Export(outcome, dir, report.FormatCSV, "")
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if len(paths) != 5 {
		t.Errorf("wrote %v, want four sheets and the cleaned text", paths)
	}

	cleaned, err := os.ReadFile(filepath.Join(dir, CleanedFile))
	if err != nil {
		t.Fatal(err)
	}
	want := "1. модель карьер\nописание модель\n2. карьер блок\n3. модель блок\n"
	if string(cleaned) != want {
		t.Errorf("%s = %q, want %q", CleanedFile, cleaned, want)
	}
}
