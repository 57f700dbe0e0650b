package analysis

// Keyword is a display word and the root prefix its occurrences are matched by.
type Keyword struct {
	Word string `json:"word" yaml:"word"`
	Root string `json:"root" yaml:"root"`
}

// Paragraph is one logical paragraph produced by Segment.
type Paragraph struct {
	Index  int
	Text   string
	Tokens []string
}

// FrequencyTable maps keyword -> paragraph index -> occurrence count.
type FrequencyTable map[string][]int

// ParagraphWordCounts maps paragraph index -> token count.
type ParagraphWordCounts []int

// Total is the word count of the whole segmented document.
func (c ParagraphWordCounts) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

// RelativeFrequencyTable maps keyword -> paragraph index -> ratio in [0,1].
type RelativeFrequencyTable map[string][]float64

// KeywordTotal is a keyword's occurrence count over the whole document.
type KeywordTotal struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// SatellitePair is one likelihood-ratio result. GroupA holds the paragraphs
// where both words occur, GroupB those with the keyword but not the satellite.
type SatellitePair struct {
	Keyword   string  `json:"keyword"`
	Satellite string  `json:"satellite"`
	Ratio     float64 `json:"ratio"`
	GroupA    []int   `json:"group_a"`
	GroupB    []int   `json:"group_b"`
}

const (
	DefaultKeywordCap           = 21
	DefaultCorrelationThreshold = 0.25
	DefaultLowerBand            = 0.15
	DefaultUpperBand            = 0.25
	DefaultCandidateCap         = 5
)

// Options configures one run. Each zero field is replaced by its default on
// its own, so a threshold or band bound of exactly 0 cannot be requested.
type Options struct {
	Keywords   []Keyword
	KeywordCap int

	CorrelationThreshold float64
	LowerBand            float64
	UpperBand            float64
	CandidateCap         int
}

// DefaultOptions returns the built-in keyword list and satellite settings.
func DefaultOptions() Options {
	return Options{
		Keywords:             DefaultKeywords(),
		KeywordCap:           DefaultKeywordCap,
		CorrelationThreshold: DefaultCorrelationThreshold,
		LowerBand:            DefaultLowerBand,
		UpperBand:            DefaultUpperBand,
		CandidateCap:         DefaultCandidateCap,
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if len(o.Keywords) == 0 {
		o.Keywords = defaults.Keywords
	}
	if o.KeywordCap <= 0 {
		o.KeywordCap = defaults.KeywordCap
	}
	if o.CorrelationThreshold == 0 {
		o.CorrelationThreshold = defaults.CorrelationThreshold
	}
	if o.LowerBand == 0 {
		o.LowerBand = defaults.LowerBand
	}
	if o.UpperBand == 0 {
		o.UpperBand = defaults.UpperBand
	}
	if o.CandidateCap <= 0 {
		o.CandidateCap = defaults.CandidateCap
	}
	return o
}

// CapKeywords keeps the first limit keywords in supplied order. The list is
// never re-ranked.
func CapKeywords(keywords []Keyword, limit int) []Keyword {
	if limit <= 0 || len(keywords) <= limit {
		return keywords
	}
	return keywords[:limit]
}

// DefaultKeywords is the built-in keyword/root list used when the caller
// supplies none.
func DefaultKeywords() []Keyword {
	return []Keyword{
		{Word: "автосамосвал", Root: "автосамосвал"},
		{Word: "модель", Root: "модел"},
		{Word: "транспортный", Root: "транспортн"},
		{Word: "движение", Root: "движен"},
		{Word: "карьер", Root: "карьер"},

		{Word: "работа", Root: "работ"},
		{Word: "состояние", Root: "состоян"},
		{Word: "разгрузка", Root: "разгрузк"},
		{Word: "блок", Root: "блок"},
		{Word: "пункт", Root: "пункт"},

		{Word: "погрузка", Root: "погрузк"},
		{Word: "система", Root: "систем"},
		{Word: "экскаватор", Root: "экскаватор"},
		{Word: "время", Root: "врем"},
		{Word: "управление", Root: "управлен"},

		{Word: "имитационный", Root: "имитационн"},
		{Word: "параметр", Root: "параметр"},
		{Word: "временить", Root: "времен"},
		{Word: "скорость", Root: "скорост"},
		{Word: "цикл", Root: "цикл"},

		{Word: "граф", Root: "граф"},
	}
}
