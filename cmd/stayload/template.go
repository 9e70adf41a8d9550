package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camm-health/stayload/internal/exitcode"
	"github.com/camm-health/stayload/internal/logging"
	"github.com/camm-health/stayload/internal/sheetwrite"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the fillable roster template workbook",
	RunE:  runTemplate,
}

func init() {
	templateCmd.Flags().StringVar(&cfg.OutDir, "out", ".", "Directory for the template file")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	path, err := sheetwrite.WriteTemplate(cfg.OutDir)
	if err != nil {
		log.Error().Err(err).Msg("template generation failed")
		os.Exit(exitcode.WriteError)
	}
	fmt.Printf("Template written to %s\n", path)
	return nil
}
