// Package sheetwrite generates the downloadable roster workbooks: the blank
// template users fill in, and the export of in-memory records.
package sheetwrite

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/camm-health/stayload/internal/model"
)

// TemplateFileName is the fixed name of the fillable template workbook.
const TemplateFileName = "plantilla_pacientes.xlsx"

const sheetName = "Pacientes"

// BuildTemplate creates a workbook holding only the canonical header row.
func BuildTemplate() (*xlsx.File, error) {
	file := xlsx.NewFile()
	sh, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("add template sheet: %w", err)
	}
	addHeaderRow(sh)
	return file, nil
}

// WriteTemplate saves the template workbook into dir and returns its path.
func WriteTemplate(dir string) (string, error) {
	file, err := BuildTemplate()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, TemplateFileName)
	if err := file.Save(path); err != nil {
		return "", fmt.Errorf("save template: %w", err)
	}
	return path, nil
}

// ExportFileName returns the export name for the given day,
// e.g. pacientes_export_2026-08-29.xlsx.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("pacientes_export_%s.xlsx", now.Format("2006-01-02"))
}

// BuildExport creates a workbook with the canonical header row and one row
// per record, in the fixed column order of model.AllFields.
func BuildExport(records []model.PatientRecord) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sh, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("add export sheet: %w", err)
	}
	addHeaderRow(sh)
	for _, rec := range records {
		row := sh.AddRow()
		for _, field := range model.AllFields {
			cell := row.AddCell()
			if v := fieldValue(&rec, field.Key); v != nil {
				cell.SetValue(v)
			}
		}
	}
	return file, nil
}

// WriteExport saves the export workbook into dir and returns its path.
func WriteExport(dir string, records []model.PatientRecord, now time.Time) (string, error) {
	file, err := BuildExport(records)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFileName(now))
	if err := file.Save(path); err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}
	return path, nil
}

func addHeaderRow(sh *xlsx.Sheet) {
	row := sh.AddRow()
	for _, header := range model.FieldHeaders() {
		row.AddCell().SetString(header)
	}
	sh.SetColWidth(1, len(model.AllFields), 22)
}

// fieldValue maps a logical field key to the record's value for that column.
// nil means the cell stays empty.
func fieldValue(rec *model.PatientRecord, key string) any {
	switch key {
	case "name":
		return rec.Name
	case "rut":
		return optional(rec.RUT)
	case "age":
		return rec.Age
	case "admission_date":
		return rec.AdmissionDate
	case "service":
		return rec.Service
	case "diagnosis":
		return rec.Diagnosis
	case "grd_code":
		return optional(rec.GRDCode)
	case "expected_stay_days":
		if rec.ExpectedStayDays == nil {
			return nil
		}
		return *rec.ExpectedStayDays
	case "responsible_clinician":
		return optional(rec.ResponsibleClinician)
	case "bed":
		return optional(rec.Bed)
	case "insurance":
		return optional(rec.Insurance)
	case "contact":
		return optional(rec.Contact)
	default:
		return nil
	}
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
