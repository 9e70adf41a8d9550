package ingest

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/camm-health/stayload/internal/model"
	"github.com/camm-health/stayload/internal/normalize"
	"github.com/camm-health/stayload/internal/sheetread"
)

const (
	minAge = 0
	maxAge = 150
)

// RowMapper turns one raw roster row into a validated PatientRecord draft or
// the list of issues that prevented it. All required-field checks run; their
// failures are collected rather than short-circuited, and no record with a
// missing required field is ever emitted.
type RowMapper struct {
	// Now is the import time used to derive DaysInStay.
	Now time.Time
	// ExtraAliases adds config-provided header spellings per field key,
	// tried after the built-in ones.
	ExtraAliases map[string][]string
}

// MapRow maps a single row. A panic during mapping is recovered into one
// issue naming the row, so a bad row never aborts the batch.
func (m *RowMapper) MapRow(row sheetread.Row) (rec *model.PatientRecord, issues []string) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			issues = []string{fmt.Sprintf("Fila %d: %v", row.Num, r)}
		}
	}()
	return m.mapRow(row)
}

func (m *RowMapper) mapRow(row sheetread.Row) (*model.PatientRecord, []string) {
	var issues []string

	name := stringValue(m.Resolve(row, "name"))
	if name == nil {
		issues = append(issues, fmt.Sprintf("Fila %d: Falta el nombre del paciente", row.Num))
	}

	ageCell := m.Resolve(row, "age")
	age := numberValue(ageCell)
	switch {
	case ageCell.IsEmpty():
		issues = append(issues, fmt.Sprintf("Fila %d: Falta la edad del paciente", row.Num))
	case age == nil || *age < minAge || *age > maxAge:
		issues = append(issues, fmt.Sprintf("Fila %d: Edad inválida (%s)", row.Num, rawValue(ageCell)))
	}

	admission := dateValue(m.Resolve(row, "admission_date"))
	if admission == nil {
		issues = append(issues, fmt.Sprintf("Fila %d: Falta la fecha de ingreso", row.Num))
	}

	service := stringValue(m.Resolve(row, "service"))
	if service == nil {
		issues = append(issues, fmt.Sprintf("Fila %d: Falta el servicio", row.Num))
	}

	diagnosis := stringValue(m.Resolve(row, "diagnosis"))
	if diagnosis == nil {
		issues = append(issues, fmt.Sprintf("Fila %d: Falta el diagnóstico", row.Num))
	}

	if len(issues) > 0 {
		return nil, issues
	}

	rec := &model.PatientRecord{
		Name:          *name,
		Age:           int(math.Round(*age)),
		AdmissionDate: *admission,
		Service:       *service,
		Diagnosis:     *diagnosis,

		RUT:                  stringValue(m.Resolve(row, "rut")),
		GRDCode:              stringValue(m.Resolve(row, "grd_code")),
		ExpectedStayDays:     numberValue(m.Resolve(row, "expected_stay_days")),
		ResponsibleClinician: stringValue(m.Resolve(row, "responsible_clinician")),
		Bed:                  stringValue(m.Resolve(row, "bed")),
		Insurance:            stringValue(m.Resolve(row, "insurance")),
		Contact:              stringValue(m.Resolve(row, "contact")),

		DaysInStay: daysInStay(*admission, m.Now),
		RiskLevel:  model.RiskLow,
		Status:     model.StatusActive,
		CaseStatus: model.CaseOpen,
	}
	return rec, nil
}

// Resolve tries the field's accepted header spellings in order and returns
// the first present, non-empty cell.
func (m *RowMapper) Resolve(row sheetread.Row, key string) sheetread.Cell {
	field, ok := model.FieldByKey(key)
	if !ok {
		return sheetread.Cell{}
	}
	for _, alias := range field.Aliases {
		if c := row.Get(alias); !c.IsEmpty() {
			return c
		}
	}
	for _, alias := range m.ExtraAliases[key] {
		if c := row.Get(alias); !c.IsEmpty() {
			return c
		}
	}
	return sheetread.Cell{}
}

// stringValue narrows a cell to a trimmed, non-empty string. Numeric cells
// (bed numbers, bare RUTs) render without a trailing decimal part.
func stringValue(c sheetread.Cell) *string {
	switch c.Kind {
	case sheetread.CellText:
		return normalize.CleanString(c.Text)
	case sheetread.CellNumber:
		s := strconv.FormatFloat(c.Number, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

// numberValue narrows a cell to a number; absent or uncoercible cells are nil.
func numberValue(c sheetread.Cell) *float64 {
	switch c.Kind {
	case sheetread.CellNumber:
		v := c.Number
		return &v
	case sheetread.CellText:
		return normalize.ParseNumber(c.Text)
	default:
		return nil
	}
}

// dateValue narrows a cell to a YYYY-MM-DD calendar date: numeric cells are
// spreadsheet date serials, text cells go through ISO passthrough or generic
// layout parsing.
func dateValue(c sheetread.Cell) *string {
	switch c.Kind {
	case sheetread.CellNumber:
		return normalize.ISODateFromSerial(c.Number)
	case sheetread.CellText:
		return normalize.ISODateFromString(c.Text)
	default:
		return nil
	}
}

// rawValue renders a cell for inclusion in an issue message.
func rawValue(c sheetread.Cell) string {
	switch c.Kind {
	case sheetread.CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return c.Text
	}
}

// daysInStay is the whole-day distance between the admission date and the
// import date, on civil date boundaries.
func daysInStay(admission string, now time.Time) int {
	adm, err := time.Parse("2006-01-02", admission)
	if err != nil {
		return 0
	}
	diff := normalize.CivilDate(now).Sub(normalize.CivilDate(adm)).Hours() / 24
	return int(math.Ceil(math.Abs(diff)))
}
