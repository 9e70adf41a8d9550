package sheetread

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tealeg/xlsx/v3"
)

// ReadError is the terminal failure for a whole import: the bytes could not
// be parsed as a supported spreadsheet structure. No partial rows survive it.
type ReadError struct {
	Reason string
	Err    error
}

func (e *ReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("read spreadsheet: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("read spreadsheet: %s", e.Reason)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

// ReadFile reads the file at path and returns its data rows. See ReadBytes.
func ReadFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes parses spreadsheet bytes into ordered data rows. XLSX workbooks
// are detected by their zip signature; anything else is treated as CSV. Only
// the first worksheet is read; its first row is taken as the header and not
// emitted. Rows whose cells are all blank are dropped. The input bytes are
// not retained.
func ReadBytes(data []byte) ([]Row, error) {
	if len(data) == 0 {
		return nil, &ReadError{Reason: "empty file"}
	}
	if bytes.HasPrefix(data, oleMagic) {
		return nil, &ReadError{Reason: "legacy .xls binary format is not supported, save as .xlsx or .csv"}
	}
	if bytes.HasPrefix(data, zipMagic) {
		return readXLSX(data)
	}
	return readCSV(data)
}

func readXLSX(data []byte) ([]Row, error) {
	wb, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, &ReadError{Reason: "not a valid xlsx workbook", Err: err}
	}
	if len(wb.Sheets) == 0 {
		return nil, &ReadError{Reason: "workbook has no sheets"}
	}
	sheet := wb.Sheets[0]
	defer sheet.Close()

	if sheet.MaxRow == 0 {
		return nil, nil
	}

	headers, err := xlsxHeaders(sheet)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i := 1; i < sheet.MaxRow; i++ {
		r, err := sheet.Row(i)
		if err != nil {
			return nil, &ReadError{Reason: fmt.Sprintf("read sheet row %d", i+1), Err: err}
		}
		row := Row{Num: i + 1, Cells: make(map[string]Cell, len(headers))}
		empty := true
		for col, header := range headers {
			if header == "" {
				continue
			}
			cell := toCell(r.GetCell(col))
			if !cell.IsEmpty() {
				empty = false
			}
			row.Cells[header] = cell
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func xlsxHeaders(sheet *xlsx.Sheet) ([]string, error) {
	r, err := sheet.Row(0)
	if err != nil {
		return nil, &ReadError{Reason: "read header row", Err: err}
	}
	headers := make([]string, sheet.MaxCol)
	for col := 0; col < sheet.MaxCol; col++ {
		headers[col] = FoldHeader(r.GetCell(col).String())
	}
	return headers, nil
}

// toCell narrows a workbook cell into the closed Cell variant. Date-formatted
// cells stay numeric: their serial is what the date normalizer expects.
func toCell(c *xlsx.Cell) Cell {
	if c == nil || c.Value == "" {
		return Cell{}
	}
	switch c.Type() {
	case xlsx.CellTypeNumeric, xlsx.CellTypeDate:
		if v, err := c.Float(); err == nil {
			return Cell{Kind: CellNumber, Number: v}
		}
		return Cell{Kind: CellText, Text: c.Value}
	default:
		return Cell{Kind: CellText, Text: c.String()}
	}
}
