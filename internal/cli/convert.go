package cli

import (
	"context"
	"fmt"
	"os"

	"axesarif/internal/config"
	"axesarif/internal/engine"
	"axesarif/internal/flags"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var convertCmd = &cobra.Command{
	Use:   "convert [input...]",
	Short: "Convert axe-core results to a SARIF 2.1.0 log",
	Long: `Convert one or more axe-core results documents into a single SARIF 2.1.0 log.

Each input becomes one run. Inputs are JSON files produced by axe.run(), a
directory (every *.json file inside, sorted by name), or "-" for stdin.
Inputs may be given with --input or as positional arguments.

Mapping:
	violations   -> kind "fail", level "error"
	passes       -> kind "pass", level "none"
	incomplete   -> kind "open", level "none"
	inapplicable -> no results

	Every rule that appears in the input becomes a reportingDescriptor. WCAG
	tags become taxa of a "WCAG" taxonomy that rules reference by index.

Output:
	Console output is controlled by --console-format (default: text).
	- text:   one line per result, "[STATUS] page: rule (target) - message"
	- json:   one JSON array of flattened findings
	- ndjson: one flattened finding per line

	Files can be written via:
	- --out / --out-format: the SARIF log (sarif) or flattened findings (ndjson)
	- --report: a Markdown summary
	- --no-console: suppress the console sink (use with --out/--report)

Exit codes:
	0 = converted
	1 = violations found and --fail-on-violations set
	2 = partial failure (some inputs skipped under --keep-going)
	3 = fatal error (nothing written)

Examples:
  # Convert one scan
  axe-sarif convert --input results.json --out results.sarif

  # Convert every scan in a directory and gate CI on violations
  axe-sarif convert -i ./axe-results --out a11y.sarif --fail-on-violations

  # Read from stdin, print machine-readable findings
  npx @axe-core/cli https://example.com --stdout | axe-sarif convert - --console-format ndjson

  # Settings from a file; flags still win
  axe-sarif convert --config axe-sarif.yaml --scan-name nightly
`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		if err := resolveSettings(cmd, configPath, cfg, convertOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}
		cfg.Input.Paths = append(cfg.Input.Paths, args...)

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Runtime.Timeout)
		eng := engine.NewEngine(buildVersion)
		code := eng.Run(ctx, cfg)
		cancel()
		os.Exit(code)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// MAINTAINER NOTE: If you add/change/remove flags here, keep fileSettings
	// in internal/cli/settings.go in sync.

	// Input
	convertCmd.Flags().StringSliceVarP(&cfg.Input.Paths, flags.FlagInput, "i", nil, "axe results to convert: file, directory or - for stdin (repeatable; comma-separated accepted)")

	// Conversion options
	convertCmd.Flags().StringVar(&convertOpts.scanName, flags.FlagScanName, "", "Record this name as the run property scanName")
	convertCmd.Flags().StringVar(&convertOpts.testCaseID, flags.FlagTestCaseID, "", "Record this id as the run property testCaseId")
	convertCmd.Flags().StringVar(&convertOpts.scanID, flags.FlagScanID, "", "Scan identifier (accepted for compatibility; not recorded)")

	// Output
	convertCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	convertCmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (FAIL, PASS, INCOMPLETE). Comma-separated.")
	convertCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write output to this path")
	convertCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Format for --out: sarif|ndjson (default: inferred from file extension)")
	convertCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Write a Markdown report to this path")
	convertCmd.Flags().BoolVar(&cfg.Output.Validate, flags.FlagValidate, false, "Validate the log against the SARIF 2.1.0 schema before writing")
	convertCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --out/--report)")

	// Runtime
	convertCmd.Flags().IntVar(&cfg.Runtime.Concurrency, flags.FlagConcurrency, cfg.Runtime.Concurrency, "Inputs read and parsed concurrently (default: 4)")
	convertCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Global timeout (default: 5m)")
	convertCmd.Flags().BoolVar(&cfg.Runtime.FailOnViolations, flags.FlagFailOnViolations, false, "Exit 1 when any violation is converted")
	convertCmd.Flags().BoolVar(&cfg.Runtime.KeepGoing, flags.FlagKeepGoing, false, "Skip unreadable or malformed inputs instead of aborting (exit 2 if any were skipped)")
}
