package model

// ImportOutcome is the aggregate result of one import run: accepted records in
// original row order (failed rows omitted) and every issue collected along the
// way. There is no success flag; callers derive one from the two slices.
type ImportOutcome struct {
	Records []PatientRecord `json:"records"`
	Issues  []string        `json:"errors"`
}

// Imported returns the count of accepted records.
func (o *ImportOutcome) Imported() int {
	return len(o.Records)
}

// ImportReport is the minimal result shape shared by the local pipeline and
// the remote hand-off path: how many records were accepted, and why the rest
// were not.
type ImportReport struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// Report reduces the outcome to the shared report shape.
func (o *ImportOutcome) Report() ImportReport {
	return ImportReport{Imported: o.Imported(), Errors: o.Issues}
}
