package ingest

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/camm-health/stayload/internal/config"
	"github.com/camm-health/stayload/internal/model"
	"github.com/camm-health/stayload/internal/sheetread"
)

// summaryIssue is prepended when a run produced issues but no records at all.
const summaryIssue = "No se pudo importar ningún paciente. Revise el formato del archivo."

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full import pipeline: preflight → read → map. Row-level
// problems never fail the run; they surface as issues in the outcome. Only an
// unreadable file (or a failed guard) is terminal.
func Run(log zerolog.Logger, cfg *config.Config, now time.Time) (*model.ImportOutcome, *model.ImportSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(log, cfg.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "preflight", Err: err}
	}

	// Phase 2: Read
	readStart := time.Now()
	rows, err := sheetread.ReadFile(pf.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}
	readDur := time.Since(readStart)
	log.Info().Int("rows", len(rows)).Dur("duration", readDur).Msg("read complete")

	// Phase 3: Map & validate
	mapStart := time.Now()
	mapper := &RowMapper{Now: now, ExtraAliases: cfg.HeaderAliases}
	outcome := &model.ImportOutcome{}

	for _, row := range rows {
		rec, issues := mapper.MapRow(row)
		if rec != nil {
			outcome.Records = append(outcome.Records, *rec)
			continue
		}
		outcome.Issues = append(outcome.Issues, issues...)
		log.Warn().Int("row", row.Num).Strs("issues", issues).Msg("row rejected")
	}

	if len(outcome.Records) == 0 && len(outcome.Issues) > 0 {
		outcome.Issues = append([]string{summaryIssue}, outcome.Issues...)
	}
	mapDur := time.Since(mapStart)

	summary := &model.ImportSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		ImportBatchID: pf.ImportBatchID.String(),
		RowsRead:      int64(len(rows)),
		RowsImported:  int64(len(outcome.Records)),
		RowsRejected:  int64(len(rows) - len(outcome.Records)),
		DurationRead:  readDur,
		DurationMap:   mapDur,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_imported", summary.RowsImported).
		Int64("rows_rejected", summary.RowsRejected).
		Str("batch_id", summary.ImportBatchID).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("import pipeline complete")

	return outcome, summary, nil
}
