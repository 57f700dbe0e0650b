// Package stopwords supplies stop-word sets by language. Sets ship embedded
// as JSONC lists; an extra list can be merged from a file, and the language
// "auto" picks a set by detecting the language of a text sample.
package stopwords

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/tidwall/jsonc"
	"golang.org/x/text/language"

	"github.com/wgomg/textstat/internal/utils"
)

//go:embed corpus/*.jsonc
var corpus embed.FS

// Auto selects the stop-word set from the language of the analyzed text.
const Auto = "auto"

var ErrUnsupportedLanguage = errors.New("unsupported stop-word language")

var tags = map[string]language.Tag{
	"russian": language.Russian,
	"english": language.English,
}

var detected = map[whatlanggo.Lang]string{
	whatlanggo.Rus: "russian",
	whatlanggo.Eng: "english",
}

type Provider struct {
	logger    *utils.Logger
	cache     *utils.WordSetCache
	extraFile string
}

// NewProvider returns a provider that merges the words of extraFile, when
// set, into every embedded set it loads.
func NewProvider(logger *utils.Logger, extraFile string) *Provider {
	return &Provider{
		logger:    logger,
		cache:     utils.NewWordSetCache(),
		extraFile: extraFile,
	}
}

// Languages lists the embedded stop-word sets.
func Languages() []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Tag is the language tag used for case folding of lang's stop words.
func Tag(lang string) language.Tag {
	if tag, ok := tags[strings.ToLower(lang)]; ok {
		return tag
	}
	return language.Und
}

// Resolve maps lang to an embedded set name. For Auto the language of sample
// is detected; a detection outside the embedded sets is an error.
func (p *Provider) Resolve(lang, sample string, runID *string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang != Auto {
		if _, ok := tags[lang]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
		}
		return lang, nil
	}

	info := whatlanggo.Detect(sample)
	name, ok := detected[info.Lang]
	p.logger.Debug(runID, "Detected language %s (confidence %.2f)", info.Lang.String(), info.Confidence)
	if !ok {
		return "", fmt.Errorf("%w: detected %s", ErrUnsupportedLanguage, info.Lang.String())
	}
	return name, nil
}

// Load returns the stop-word set for an embedded language name. Sets are
// loaded once per provider.
func (p *Provider) Load(lang string) (map[string]struct{}, error) {
	return p.cache.GetOrLoad(lang, func() (map[string]struct{}, error) {
		if _, ok := tags[lang]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
		}

		data, err := corpus.ReadFile(path.Join("corpus", lang+".jsonc"))
		if err != nil {
			return nil, fmt.Errorf("reading %s stop words: %w", lang, err)
		}
		words, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s stop words: %w", lang, err)
		}

		if p.extraFile != "" {
			extra, err := ReadFile(p.extraFile)
			if err != nil {
				return nil, err
			}
			words = append(words, extra...)
		}

		set := make(map[string]struct{}, len(words))
		for _, word := range words {
			set[word] = struct{}{}
		}
		return set, nil
	})
}

// CacheStats reports how many sets are cached and the cache hit rate.
func (p *Provider) CacheStats() (int, float64) {
	return p.cache.Size(), p.cache.HitRate()
}

// Parse strips JSONC comments and trailing commas and decodes a list of words.
func Parse(data []byte) ([]string, error) {
	var words []string
	if err := json.Unmarshal(jsonc.ToJSON(data), &words); err != nil {
		return nil, fmt.Errorf("parsing stop words: %w", err)
	}

	cleaned := words[:0]
	for _, word := range words {
		if word = strings.TrimSpace(word); word != "" {
			cleaned = append(cleaned, word)
		}
	}
	return cleaned, nil
}

// ReadFile reads a JSONC stop-word list from disk.
func ReadFile(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	words, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return words, nil
}
