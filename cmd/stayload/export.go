package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/camm-health/stayload/internal/exitcode"
	"github.com/camm-health/stayload/internal/logging"
	"github.com/camm-health/stayload/internal/model"
	"github.com/camm-health/stayload/internal/repo"
	"github.com/camm-health/stayload/internal/sheetwrite"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the dated export workbook from stored episodes",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FromPath, "from", "", "Episodes JSON written by 'import --out' (required)")
	f.StringVar(&cfg.OutDir, "out", ".", "Directory for the export file")
	_ = exportCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	loadConfigFile(log)

	if err := cfg.ValidateExport(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	episodes := repo.NewEpisodeRepository()
	if err := episodes.LoadJSON(cfg.FromPath); err != nil {
		log.Error().Err(err).Msg("loading episodes failed")
		os.Exit(exitcode.ReadError)
	}

	records := make([]model.PatientRecord, 0, episodes.Count())
	for _, ep := range episodes.List() {
		records = append(records, ep.PatientRecord)
	}

	path, err := sheetwrite.WriteExport(cfg.OutDir, records, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("export generation failed")
		os.Exit(exitcode.WriteError)
	}
	fmt.Printf("Exported %d episodes to %s\n", len(records), path)
	return nil
}
