package cli

import (
	"fmt"
	"os"

	"axesarif/internal/flags"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// configPath is the optional YAML config file (see --config).
var configPath string

var rootCmd = &cobra.Command{
	Use:   "axe-sarif",
	Short: "Convert axe-core accessibility results to SARIF 2.1.0",
	Long: `axe-sarif converts axe-core accessibility scan results into SARIF 2.1.0 logs.

Conversion is deterministic: the same axe results always produce the same log.

Examples:
	# Show available commands and global flags
	axe-sarif --help

	# Convert one scan to a SARIF file
	axe-sarif convert --input results.json --out results.sarif

	# Check an existing SARIF log
	axe-sarif validate results.sarif

	# Upload a log to GitHub code scanning
	axe-sarif upload --sarif results.sarif --repo org/repo --ref main --commit <sha>

	# Print build info
	axe-sarif version

Output:
	By default, commands write human-readable output to stdout.
	Some commands support structured output (see each command's --help).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose logging (prints resolved inputs, log digests and every GitHub API call)")
	rootCmd.PersistentFlags().StringVar(&configPath, flags.FlagConfig, "", "Read settings from this YAML file (flags given on the command line take precedence)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
