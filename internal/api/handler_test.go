package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wgomg/textstat/internal/analysis"
	"github.com/wgomg/textstat/internal/config"
	"github.com/wgomg/textstat/internal/paperless"
	"github.com/wgomg/textstat/internal/pipeline"
	"github.com/wgomg/textstat/internal/report"
	"github.com/wgomg/textstat/internal/stopwords"
	"github.com/wgomg/textstat/internal/utils"
)

const content = "1. модель и карьер\nописание модели\n2. карьер и блок\n3. модель блок"

type response struct {
	Status string        `json:"status"`
	Error  string        `json:"error"`
	Data   report.Report `json:"data"`
}

func testConfig(paperlessURL string) *config.Config {
	return &config.Config{
		App:       config.AppConfig{HttpTimeoutSeconds: 5},
		Paperless: config.PaperlessConfig{URL: paperlessURL, Token: "secret"},
		StopWords: config.StopWordsConfig{Language: "russian"},
		Frequency: config.FrequencyConfig{Cap: analysis.DefaultKeywordCap},
		Satellite: config.SatelliteConfig{
			CorrelationThreshold: analysis.DefaultCorrelationThreshold,
			LowerBand:            analysis.DefaultLowerBand,
			UpperBand:            analysis.DefaultUpperBand,
			CandidateCap:         analysis.DefaultCandidateCap,
		},
	}
}

func newTestServer(t *testing.T, paperlessURL string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(newTestRouter(t, paperlessURL))
	t.Cleanup(server.Close)
	return server
}

func newTestRouter(t *testing.T, paperlessURL string) http.Handler {
	t.Helper()
	cfg := testConfig(paperlessURL)
	logger := utils.NewDiscardLogger()

	runner, err := pipeline.NewRunner(cfg, logger, stopwords.NewProvider(logger, ""))
	if err != nil {
		t.Fatal(err)
	}

	var client *paperless.Client
	if paperlessURL != "" {
		if client, err = paperless.NewClient(cfg, logger); err != nil {
			t.Fatal(err)
		}
	}

	return NewRouter(NewHandler(logger, runner, client), []string{"*"})
}

func post(t *testing.T, url string, body any) (int, response) {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}

	resp, err := http.Post(url, "application/json", reader)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.StatusCode, decoded
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, "")

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
	}
}

func TestAnalyze(t *testing.T) {
	server := newTestServer(t, "")

	tests := []struct {
		name           string
		request        AnalyzeRequest
		wantParagraphs int
	}{
		{
			name:           "text content",
			request:        AnalyzeRequest{Content: content},
			wantParagraphs: 3,
		},
		{
			name:           "paragraphs",
			request:        AnalyzeRequest{Paragraphs: strings.Split(content, "\n")},
			wantParagraphs: 3,
		},
		{
			name:           "markdown",
			request:        AnalyzeRequest{Content: "1. модель и *карьер*\n2. карьер и блок\n\n```\nкод и пример\n```\n", Format: FormatMarkdown},
			wantParagraphs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, server.URL+"/analyze", tt.request)
			if status != http.StatusOK {
				t.Fatalf("status = %d (%s), want 200", status, body.Error)
			}
			if body.Data.Paragraphs != tt.wantParagraphs {
				t.Errorf("paragraphs = %d, want %d", body.Data.Paragraphs, tt.wantParagraphs)
			}
			if body.Data.StopWords.Removed != 2 {
				t.Errorf("removed stop words = %d, want 2", body.Data.StopWords.Removed)
			}
			if len(body.Data.Sheets) != 4 {
				t.Errorf("got %d sheets, want 4", len(body.Data.Sheets))
			}
		})
	}
}

func TestAnalyzeErrors(t *testing.T) {
	server := newTestServer(t, "")

	tests := []struct {
		name       string
		request    AnalyzeRequest
		wantStatus int
	}{
		{"no numbered paragraphs", AnalyzeRequest{Content: "введение\nописание"}, http.StatusUnprocessableEntity},
		{"empty", AnalyzeRequest{}, http.StatusUnprocessableEntity},
		{"duplicate keyword", AnalyzeRequest{
			Content:  content,
			Keywords: []analysis.Keyword{{Word: "модель", Root: "модел"}, {Word: "модель", Root: "модел"}},
		}, http.StatusUnprocessableEntity},
		{"unsupported language", AnalyzeRequest{Content: content, Language: "latin"}, http.StatusUnprocessableEntity},
		{"both inputs", AnalyzeRequest{Content: content, Paragraphs: []string{"1. x"}}, http.StatusBadRequest},
		{"unknown format", AnalyzeRequest{Content: content, Format: "docx"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, server.URL+"/analyze", tt.request)
			if status != tt.wantStatus {
				t.Errorf("status = %d (%s), want %d", status, body.Error, tt.wantStatus)
			}
			if body.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestDocumentAnalyze(t *testing.T) {
	var note paperless.Note
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/documents/42/":
			json.NewEncoder(w).Encode(paperless.Document{ID: 42, Title: "Отчёт", Content: content})
		case r.Method == http.MethodPost && r.URL.Path == "/api/documents/42/notes/":
			json.NewDecoder(r.Body).Decode(&note)
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	server := newTestServer(t, upstream.URL)

	status, body := post(t, server.URL+"/documents/42/analyze", DocumentAnalyzeRequest{Note: true})
	if status != http.StatusOK {
		t.Fatalf("status = %d (%s), want 200", status, body.Error)
	}
	if body.Data.Source != "Отчёт" || body.Data.Paragraphs != 3 {
		t.Errorf("report = %+v", body.Data)
	}
	if !strings.HasPrefix(note.Note, "Paragraphs: 3") {
		t.Errorf("note = %q", note.Note)
	}

	status, body = post(t, server.URL+"/documents/42/analyze", nil)
	if status != http.StatusOK {
		t.Errorf("empty body: status = %d (%s), want 200", status, body.Error)
	}

	status, _ = post(t, server.URL+"/documents/7/analyze", nil)
	if status != http.StatusNotFound {
		t.Errorf("missing document: status = %d, want 404", status)
	}

	status, _ = post(t, server.URL+"/documents/abc/analyze", nil)
	if status != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", status)
	}
}

func TestDocumentAnalyzeChunkedEmptyBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(paperless.Document{ID: 42, Title: "Отчёт", Content: content})
	}))
	defer upstream.Close()

	router := newTestRouter(t, upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/documents/42/analyze", nil)
	req.Body = io.NopCloser(strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d (%s), want 200", rec.Code, rec.Body.String())
	}
}

func TestDocumentAnalyzeWithoutPaperless(t *testing.T) {
	server := newTestServer(t, "")

	status, _ := post(t, server.URL+"/documents/42/analyze", nil)
	if status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}
}
