package cli

import (
	"axesarif/internal/config"
	"axesarif/internal/flags"

	"github.com/spf13/cobra"
)

// optionFlags holds the raw conversion option flags. They only reach
// cfg.Options when given on the command line.
type optionFlags struct {
	scanName   string
	testCaseID string
	scanID     string
}

var convertOpts optionFlags

// fileSettings maps each flag to the config field it overrides. Fields whose
// flag was not given on the command line are taken from --config.
var fileSettings = []struct {
	flag  string
	apply func(dst, src *config.Config)
}{
	{flags.FlagInput, func(dst, src *config.Config) { dst.Input.Paths = src.Input.Paths }},
	{flags.FlagScanName, func(dst, src *config.Config) { dst.Options.ScanName = src.Options.ScanName }},
	{flags.FlagTestCaseID, func(dst, src *config.Config) { dst.Options.TestCaseID = src.Options.TestCaseID }},
	{flags.FlagScanID, func(dst, src *config.Config) { dst.Options.ScanID = src.Options.ScanID }},
	{flags.FlagConsoleFormat, func(dst, src *config.Config) { dst.Output.ConsoleFormat = src.Output.ConsoleFormat }},
	{flags.FlagConsoleFilterStatus, func(dst, src *config.Config) { dst.Output.ConsoleFilterStatus = src.Output.ConsoleFilterStatus }},
	{flags.FlagOut, func(dst, src *config.Config) { dst.Output.Out = src.Output.Out }},
	{flags.FlagOutFormat, func(dst, src *config.Config) { dst.Output.OutFormat = src.Output.OutFormat }},
	{flags.FlagReport, func(dst, src *config.Config) { dst.Output.Report = src.Output.Report }},
	{flags.FlagValidate, func(dst, src *config.Config) { dst.Output.Validate = src.Output.Validate }},
	{flags.FlagNoConsole, func(dst, src *config.Config) { dst.Output.NoConsole = src.Output.NoConsole }},
	{flags.FlagConcurrency, func(dst, src *config.Config) { dst.Runtime.Concurrency = src.Runtime.Concurrency }},
	{flags.FlagTimeout, func(dst, src *config.Config) { dst.Runtime.Timeout = src.Runtime.Timeout }},
	{flags.FlagFailOnViolations, func(dst, src *config.Config) { dst.Runtime.FailOnViolations = src.Runtime.FailOnViolations }},
	{flags.FlagKeepGoing, func(dst, src *config.Config) { dst.Runtime.KeepGoing = src.Runtime.KeepGoing }},
	{flags.FlagRepo, func(dst, src *config.Config) { dst.Upload.Repo = src.Upload.Repo }},
	{flags.FlagRef, func(dst, src *config.Config) { dst.Upload.Ref = src.Upload.Ref }},
	{flags.FlagCommit, func(dst, src *config.Config) { dst.Upload.Commit = src.Upload.Commit }},
	{flags.FlagCheckoutURI, func(dst, src *config.Config) { dst.Upload.CheckoutURI = src.Upload.CheckoutURI }},
	{flags.FlagAPIURL, func(dst, src *config.Config) { dst.Upload.APIURL = src.Upload.APIURL }},
	{flags.FlagWait, func(dst, src *config.Config) { dst.Upload.Wait = src.Upload.Wait }},
}

// resolveSettings layers cfg: defaults, then the --config file (if any),
// then flags given on the command line.
func resolveSettings(cmd *cobra.Command, path string, cfg *config.Config, opts optionFlags) error {
	if path != "" {
		fromFile := config.New()
		if err := config.LoadFile(path, fromFile); err != nil {
			return err
		}
		for _, s := range fileSettings {
			if !cmd.Flags().Changed(s.flag) {
				s.apply(cfg, fromFile)
			}
		}
	}

	applyOptionFlags(cmd, cfg, opts)
	return nil
}

func applyOptionFlags(cmd *cobra.Command, cfg *config.Config, opts optionFlags) {
	if cmd.Flags().Changed(flags.FlagScanName) {
		v := opts.scanName
		cfg.Options.ScanName = &v
	}
	if cmd.Flags().Changed(flags.FlagTestCaseID) {
		v := opts.testCaseID
		cfg.Options.TestCaseID = &v
	}
	if cmd.Flags().Changed(flags.FlagScanID) {
		v := opts.scanID
		cfg.Options.ScanID = &v
	}
}
