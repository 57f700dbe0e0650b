package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDocument is the InputError reason for a run with no raw paragraphs.
	ErrEmptyDocument = errors.New("document has no paragraphs")
	// ErrNoLogicalParagraphs is the InputError reason when segmentation yields nothing.
	ErrNoLogicalParagraphs = errors.New("no numbered paragraphs found")
	// ErrNoKeywords is the InputError reason for an empty keyword set.
	ErrNoKeywords = errors.New("no keywords configured")
	// ErrInvalidKeyword is the InputError reason for an empty or duplicate keyword.
	ErrInvalidKeyword = errors.New("invalid keyword")
)

// Skip reasons. They are recorded on the run, never returned from Analyze.
var (
	ErrDegenerateStatistic = errors.New("degenerate statistic")
	ErrMissingSatellite    = errors.New("no satellite word in correlation band")
	ErrEmptyPartitionGroup = errors.New("empty paragraph group")
)

// InputError aborts a whole run. No partial result accompanies it.
type InputError struct {
	Reason error
	Detail string
}

func (e *InputError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid input: %v", e.Reason)
	}
	return fmt.Sprintf("invalid input: %v: %s", e.Reason, e.Detail)
}

func (e *InputError) Unwrap() error {
	return e.Reason
}

// Skip records a keyword (or keyword/satellite pair) the satellite analysis
// passed over, and why.
type Skip struct {
	Keyword   string
	Satellite string
	Reason    error
}

func (s Skip) String() string {
	if s.Satellite == "" {
		return fmt.Sprintf("%s: %v", s.Keyword, s.Reason)
	}
	return fmt.Sprintf("%s/%s: %v", s.Keyword, s.Satellite, s.Reason)
}
