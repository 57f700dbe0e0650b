package document

import (
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.Table),
		)
	})
	return markdownParserInstance
}

// ParseMarkdown turns Markdown into a document. Paragraphs, headings, list
// item text and table cells each become one paragraph whose runs are the
// inline text segments. Items of an ordered list get their number back as
// a leading run so numbered sections keep their digits.
func ParseMarkdown(source []byte) *TextDocument {
	root := getMarkdownParser().Parser().Parse(text.NewReader(source))
	collector := &markdownCollector{source: source}
	_ = ast.Walk(root, collector.walk)
	return &TextDocument{paragraphs: collector.paragraphs}
}

type markdownCollector struct {
	source     []byte
	paragraphs []Paragraph
}

func (c *markdownCollector) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock, ast.KindHeading, extast.KindTableCell:
		paragraph := &TextParagraph{}
		if marker := listMarker(node); marker != "" {
			paragraph.runs = append(paragraph.runs, NewTextRun(marker))
		}
		c.collectRuns(node, paragraph)
		c.paragraphs = append(c.paragraphs, paragraph)
		return ast.WalkSkipChildren, nil

	case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// collectRuns appends one run per inline text node below node. Soft line
// breaks become a trailing space.
func (c *markdownCollector) collectRuns(node ast.Node, paragraph *TextParagraph) {
	_ = ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := child.(type) {
		case *ast.Text:
			value := string(n.Segment.Value(c.source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				value += " "
			}
			paragraph.runs = append(paragraph.runs, NewTextRun(value))
		case *ast.String:
			paragraph.runs = append(paragraph.runs, NewTextRun(string(n.Value)))
		case *ast.AutoLink:
			paragraph.runs = append(paragraph.runs, NewTextRun(string(n.Label(c.source))))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

// listMarker returns "N. " when node is the first block of an item in an
// ordered list.
func listMarker(node ast.Node) string {
	item, ok := node.Parent().(*ast.ListItem)
	if !ok || item.FirstChild() != node {
		return ""
	}
	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return ""
	}

	number := list.Start
	for sibling := list.FirstChild(); sibling != nil && sibling != ast.Node(item); sibling = sibling.NextSibling() {
		number++
	}
	return fmt.Sprintf("%d%c ", number, list.Marker)
}
