package sheetread

import "strings"

// CellKind discriminates the closed set of cell shapes a roster file can hold.
// Numeric spreadsheet dates arrive as CellNumber carrying the date serial;
// narrowing to date vs quantity happens per logical field during mapping.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet cell, already narrowed to the closed variant.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// IsEmpty reports whether the cell holds no value. A text cell that trims to
// nothing counts as empty.
func (c Cell) IsEmpty() bool {
	if c.Kind == CellEmpty {
		return true
	}
	return c.Kind == CellText && strings.TrimSpace(c.Text) == ""
}

// Row is one data row materialized as header → cell. Keys are stored folded
// (trimmed, lowercased) so header lookup tolerates case and stray spaces.
type Row struct {
	// Num is the 1-based sheet row number; the header row is 1, so the
	// first data row is 2.
	Num   int
	Cells map[string]Cell
}

// Get returns the cell under the given header spelling, tolerant of case and
// surrounding whitespace. Absent headers return an empty cell.
func (r Row) Get(header string) Cell {
	return r.Cells[FoldHeader(header)]
}

// FoldHeader normalizes a header spelling for lookup.
func FoldHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
