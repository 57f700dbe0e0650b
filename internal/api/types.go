package api

import "github.com/wgomg/textstat/internal/analysis"

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// AnalyzeRequest carries a document either as ready paragraphs or as
// content in FormatText (one paragraph per line) or FormatMarkdown.
type AnalyzeRequest struct {
	Paragraphs []string           `json:"paragraphs,omitempty"`
	Content    string             `json:"content,omitempty"`
	Format     string             `json:"format,omitempty"`
	Source     string             `json:"source,omitempty"`
	Language   string             `json:"language,omitempty"`
	Keywords   []analysis.Keyword `json:"keywords,omitempty"`
	Cap        int                `json:"cap,omitempty"`
}

// DocumentAnalyzeRequest is the optional body of a Paperless document run.
// Note attaches a digest of the result to the document.
type DocumentAnalyzeRequest struct {
	Language string             `json:"language,omitempty"`
	Keywords []analysis.Keyword `json:"keywords,omitempty"`
	Cap      int                `json:"cap,omitempty"`
	Note     bool               `json:"note,omitempty"`
}
