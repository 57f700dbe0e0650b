package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wgomg/textstat/internal/analysis"
)

// LoadKeywords reads a YAML mapping of display keyword to root, for example
//
//	модель: модел
//	карьер: карьер
//
// and returns the pairs in file order, truncated to the first limit entries.
// An empty path yields the built-in list.
func LoadKeywords(path string, limit int) ([]analysis.Keyword, error) {
	if path == "" {
		return analysis.CapKeywords(analysis.DefaultKeywords(), limit), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	keywords, err := ParseKeywords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return analysis.CapKeywords(keywords, limit), nil
}

// ParseKeywords decodes a YAML keyword mapping. A plain map would lose the
// order the keywords were written in, so the document node is walked instead.
func ParseKeywords(data []byte) ([]analysis.Keyword, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parsing keywords: %w", err)
	}
	if len(document.Content) == 0 {
		return nil, fmt.Errorf("parsing keywords: empty document")
	}

	mapping := document.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing keywords: line %d: expected a mapping of keyword to root", mapping.Line)
	}

	keywords := make([]analysis.Keyword, 0, len(mapping.Content)/2)
	seen := make(map[string]bool, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parsing keywords: line %d: keyword and root must be scalars", key.Line)
		}
		if seen[key.Value] {
			return nil, fmt.Errorf("parsing keywords: line %d: duplicate keyword %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		root := value.Value
		if root == "" {
			root = key.Value
		}
		keywords = append(keywords, analysis.Keyword{Word: key.Value, Root: root})
	}
	return keywords, nil
}

// AnalysisOptions combines the satellite settings with keywords.
func (c *Config) AnalysisOptions(keywords []analysis.Keyword) analysis.Options {
	return analysis.Options{
		Keywords:             keywords,
		KeywordCap:           c.Frequency.Cap,
		CorrelationThreshold: c.Satellite.CorrelationThreshold,
		LowerBand:            c.Satellite.LowerBand,
		UpperBand:            c.Satellite.UpperBand,
		CandidateCap:         c.Satellite.CandidateCap,
	}
}
