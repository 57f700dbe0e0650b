package analysis

import "gonum.org/v1/gonum/stat"

// varianceEpsilon treats a standard deviation this small as zero; a constant
// vector of rounded ratios can leave float noise in the mean.
const varianceEpsilon = 1e-12

// CorrelationMatrix holds Pearson coefficients between keywords. Only the
// lower triangle including the diagonal (col index <= row index) is stored;
// At mirrors reads above the diagonal.
type CorrelationMatrix struct {
	keywords []string
	index    map[string]int
	values   [][]float64
	defined  [][]bool
}

// Correlate computes the lower triangle of the correlation matrix over the
// keywords' relative-frequency vectors. With fewer than two paragraphs or a
// zero-variance vector the coefficient is undefined and stored as 0.
func Correlate(keywords []Keyword, relative RelativeFrequencyTable) *CorrelationMatrix {
	m := &CorrelationMatrix{
		keywords: make([]string, len(keywords)),
		index:    make(map[string]int, len(keywords)),
		values:   make([][]float64, len(keywords)),
		defined:  make([][]bool, len(keywords)),
	}

	for i, keyword := range keywords {
		m.keywords[i] = keyword.Word
		m.index[keyword.Word] = i
	}

	for row := range keywords {
		m.values[row] = make([]float64, row+1)
		m.defined[row] = make([]bool, row+1)
		for col := 0; col <= row; col++ {
			value, ok := pearson(relative[m.keywords[row]], relative[m.keywords[col]])
			m.values[row][col] = value
			m.defined[row][col] = ok
		}
	}

	return m
}

// pearson is the sample correlation (1/(n-1)) * sum(zx * zy), rounded to
// three decimals. ok is false when n < 2 or either vector has no variance.
func pearson(x, y []float64) (float64, bool) {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0, false
	}

	meanX, stdX := stat.MeanStdDev(x, nil)
	meanY, stdY := stat.MeanStdDev(y, nil)
	if stdX <= varianceEpsilon || stdY <= varianceEpsilon {
		return 0, false
	}

	sum := 0.0
	for p := range x {
		sum += (x[p] - meanX) / stdX * ((y[p] - meanY) / stdY)
	}

	return round(sum/float64(n-1), 3), true
}

// Keywords returns the row/column order of the matrix.
func (m *CorrelationMatrix) Keywords() []string {
	return m.keywords
}

// Len is the number of keywords.
func (m *CorrelationMatrix) Len() int {
	return len(m.keywords)
}

// At returns the coefficient for (row, col), reading the stored lower
// triangle for pairs above the diagonal. ok is false for unknown keywords
// and for undefined coefficients.
func (m *CorrelationMatrix) At(row, col string) (float64, bool) {
	i, iok := m.index[row]
	j, jok := m.index[col]
	if !iok || !jok {
		return 0, false
	}
	return m.AtIndex(i, j)
}

// AtIndex is At by keyword position.
func (m *CorrelationMatrix) AtIndex(i, j int) (float64, bool) {
	if i < 0 || j < 0 || i >= len(m.keywords) || j >= len(m.keywords) {
		return 0, false
	}
	if j > i {
		i, j = j, i
	}
	return m.values[i][j], m.defined[i][j]
}

// Stored reports whether (row, col) is physically populated, which holds
// only for col index <= row index.
func (m *CorrelationMatrix) Stored(row, col string) bool {
	i, iok := m.index[row]
	j, jok := m.index[col]
	return iok && jok && j <= i
}

// Row returns the stored entries of row i: columns 0..i.
func (m *CorrelationMatrix) Row(i int) []float64 {
	return m.values[i]
}

// Defined reports whether the coefficient for (row, col) could be computed.
func (m *CorrelationMatrix) Defined(row, col string) bool {
	_, ok := m.At(row, col)
	return ok
}
