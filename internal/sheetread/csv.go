package sheetread

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV parses CSV bytes into data rows. Exports from Chilean hospital
// systems commonly use semicolon delimiters and Windows-1252 encoding, so the
// delimiter is sniffed from the header line and non-UTF-8 input is decoded
// through the charmap before parsing.
func readCSV(data []byte) ([]Row, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return nil, &ReadError{Reason: "undecodable character encoding", Err: err}
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, &ReadError{Reason: "malformed csv", Err: err}
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = FoldHeader(h)
	}

	var rows []Row
	for i, record := range records[1:] {
		row := Row{Num: i + 2, Cells: make(map[string]Cell, len(headers))}
		empty := true
		for col, header := range headers {
			if header == "" || col >= len(record) {
				continue
			}
			cell := Cell{}
			if strings.TrimSpace(record[col]) != "" {
				cell = Cell{Kind: CellText, Text: record[col]}
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

// sniffDelimiter picks the delimiter by counting candidates in the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
