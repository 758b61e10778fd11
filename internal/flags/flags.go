package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// engine. IMPORTANT: these are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringArrayVarP(&inputs, flags.FlagInput, "i", nil, "...")
//	arg := "--" + flags.FlagInput
const (
	// Global
	FlagVerbose = "verbose"
	FlagConfig  = "config"

	// Input
	FlagInput = "input"

	// Conversion options
	FlagScanName   = "scan-name"
	FlagTestCaseID = "test-case-id"
	FlagScanID     = "scan-id"

	// Output
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagReport              = "report"
	FlagValidate            = "validate"
	FlagNoConsole           = "no-console"

	// Runtime
	FlagConcurrency      = "concurrency"
	FlagTimeout          = "timeout"
	FlagFailOnViolations = "fail-on-violations"
	FlagKeepGoing        = "keep-going"

	// Upload
	FlagSARIF       = "sarif"
	FlagRepo        = "repo"
	FlagRef         = "ref"
	FlagCommit      = "commit"
	FlagCheckoutURI = "checkout-uri"
	FlagAPIURL      = "api-url"
	FlagWait        = "wait"
	FlagToken       = "token"
)
