package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/camm-health/stayload/internal/config"
	"github.com/camm-health/stayload/internal/exitcode"
)

var (
	cfg     config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "stayload",
	Short: "Hospital length-of-stay roster import toolkit",
	Long: "Parses hospital roster spreadsheets (XLSX/CSV), validates patient rows, " +
		"generates template and export workbooks, or forwards raw files to the remote import service.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.APIBaseURL, "api-url", os.Getenv("STAYLOAD_API_URL"), "Remote import service base URL (or set STAYLOAD_API_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Optional YAML config file (api_url, header_aliases)")
}

// loadConfigFile applies the optional YAML overlay before a command runs.
func loadConfigFile(log zerolog.Logger) {
	if cfgFile == "" {
		return
	}
	if err := cfg.LoadFromFile(cfgFile); err != nil {
		log.Error().Err(err).Msg("config file invalid")
		os.Exit(exitcode.UsageError)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
