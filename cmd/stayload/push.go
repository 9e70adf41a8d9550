package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/camm-health/stayload/internal/apiclient"
	"github.com/camm-health/stayload/internal/exitcode"
	"github.com/camm-health/stayload/internal/ingest"
	"github.com/camm-health/stayload/internal/logging"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Forward the raw roster file to the remote import service",
	RunE:  runPush,
}

func init() {
	f := pushCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to roster file (required)")
	f.DurationVar(&cfg.APITimeout, "timeout", 30*time.Second, "Upload timeout")
	_ = pushCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	loadConfigFile(log)

	if err := cfg.ValidateWithAPI(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat roster file")
		os.Exit(exitcode.UsageError)
	}
	if err := ingest.CheckFile(filepath.Base(cfg.FilePath), stat.Size()); err != nil {
		log.Error().Err(err).Msg("file rejected before upload")
		os.Exit(exitcode.ValidationError)
	}

	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	result, err := client.PushFile(context.Background(), cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("push failed")
		os.Exit(exitcode.PushError)
	}

	report := result.Report()
	fmt.Printf("Remote import %s: %d records processed\n", result.Status, report.Imported)
	for _, issue := range report.Errors {
		fmt.Printf("  - %s\n", issue)
	}
	if len(report.Errors) > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
