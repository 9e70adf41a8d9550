package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/camm-health/stayload/internal/exitcode"
	"github.com/camm-health/stayload/internal/ingest"
	"github.com/camm-health/stayload/internal/logging"
	"github.com/camm-health/stayload/internal/model"
	"github.com/camm-health/stayload/internal/sheetread"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and column stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to roster file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	loadConfigFile(log)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pf, err := ingest.Preflight(log, cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("preflight failed")
		os.Exit(exitcode.ValidationError)
	}

	rows, err := sheetread.ReadFile(pf.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read roster file")
		os.Exit(exitcode.ReadError)
	}

	mapper := &ingest.RowMapper{Now: time.Now(), ExtraAliases: cfg.HeaderAliases}
	columnCounts := make(map[string]int)
	var valid, invalid int
	for _, row := range rows {
		rec, _ := mapper.MapRow(row)
		if rec != nil {
			valid++
		} else {
			invalid++
		}
		for _, field := range model.AllFields {
			if !mapper.Resolve(row, field.Key).IsEmpty() {
				columnCounts[field.Key]++
			}
		}
	}

	fmt.Println("=== stayload plan ===")
	fmt.Printf("File:       %s\n", pf.FilePath)
	fmt.Printf("SHA-256:    %s\n", pf.FileSHA256)
	fmt.Printf("Size:       %d bytes\n", pf.FileSize)
	fmt.Printf("Data rows:  %d\n", len(rows))
	fmt.Printf("Valid:      %d\n", valid)
	fmt.Printf("Invalid:    %d\n", invalid)
	fmt.Println()
	fmt.Println("Column coverage:")
	for _, field := range model.AllFields {
		marker := " "
		if field.Required {
			marker = "*"
		}
		fmt.Printf("  %-24s%s %d/%d rows\n", field.Header, marker, columnCounts[field.Key], len(rows))
	}
	fmt.Println("\nFormat guard: OK")
	return nil
}
