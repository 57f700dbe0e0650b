// Package document abstracts the source document the statistics are taken
// from: an ordered list of paragraphs, each an ordered list of text runs
// that can be read and replaced. Table cells are flattened into the same
// paragraph list as body text.
package document

import (
	"fmt"
	"io"
	"strings"
)

// Run is a piece of paragraph text that can be rewritten in place.
type Run interface {
	Text() string
	SetText(text string)
}

// Paragraph is an ordered list of runs.
type Paragraph interface {
	Runs() []Run
}

// Document is an ordered list of paragraphs, table cells included.
type Document interface {
	Paragraphs() []Paragraph
}

// Text concatenates the runs of a paragraph.
func Text(paragraph Paragraph) string {
	var builder strings.Builder
	for _, run := range paragraph.Runs() {
		builder.WriteString(run.Text())
	}
	return builder.String()
}

// Texts returns the text of every paragraph in document order.
func Texts(doc Document) []string {
	paragraphs := doc.Paragraphs()
	texts := make([]string, len(paragraphs))
	for i, paragraph := range paragraphs {
		texts[i] = Text(paragraph)
	}
	return texts
}

// WriteText writes one paragraph per line.
func WriteText(w io.Writer, doc Document) error {
	for _, text := range Texts(doc) {
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

// TextRun is an in-memory run.
type TextRun struct {
	text string
}

func NewTextRun(text string) *TextRun {
	return &TextRun{text: text}
}

func (r *TextRun) Text() string        { return r.text }
func (r *TextRun) SetText(text string) { r.text = text }

// TextParagraph is an in-memory paragraph.
type TextParagraph struct {
	runs []Run
}

func NewTextParagraph(runs ...string) *TextParagraph {
	paragraph := &TextParagraph{runs: make([]Run, len(runs))}
	for i, text := range runs {
		paragraph.runs[i] = NewTextRun(text)
	}
	return paragraph
}

func (p *TextParagraph) Runs() []Run { return p.runs }

// TextDocument is an in-memory document.
type TextDocument struct {
	paragraphs []Paragraph
}

func (d *TextDocument) Paragraphs() []Paragraph { return d.paragraphs }

// FromParagraphs builds a document with one single-run paragraph per text.
func FromParagraphs(texts []string) *TextDocument {
	doc := &TextDocument{paragraphs: make([]Paragraph, len(texts))}
	for i, text := range texts {
		doc.paragraphs[i] = NewTextParagraph(text)
	}
	return doc
}

// ParseText splits plain text into paragraphs, one per line. Empty lines
// stay as empty paragraphs; a trailing newline does not add one.
func ParseText(content string) *TextDocument {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return &TextDocument{}
	}
	return FromParagraphs(strings.Split(content, "\n"))
}
