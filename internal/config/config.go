package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields, keep these in sync:
	// - CLI flags in internal/cli/convert.go and internal/cli/upload.go
	// - YAML keys in internal/config/file.go
	Input   Input
	Options Options
	Output  Output
	Runtime Runtime
	Upload  Upload
}

type Input struct {
	// Paths lists axe results to convert (see --input). Each entry is a JSON
	// file, a directory (every *.json inside, sorted), or "-" for stdin.
	// Values may be provided as repeated flags and/or comma-separated lists.
	Paths []string
}

// Options are passed through to the converter. A nil field was not supplied.
type Options struct {
	// ScanName is recorded as the run property "scanName" (see --scan-name).
	ScanName *string

	// TestCaseID is recorded as the run property "testCaseId" (see --test-case-id).
	TestCaseID *string

	// ScanID is accepted and currently ignored (see --scan-id).
	ScanID *string
}

type Output struct {
	// ConsoleFormat controls the human-facing console sink format (see --console-format).
	// Allowed values: text, json, ndjson.
	ConsoleFormat string

	// ConsoleFilterStatus filters console output by result status (see --console-filter-status).
	// Allowed values: FAIL, PASS, INCOMPLETE.
	ConsoleFilterStatus []string

	// Out writes the SARIF log to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: sarif, ndjson. If empty, it is inferred from the --out file extension.
	OutFormat string

	// Report writes a Markdown summary to this path (see --report).
	Report string

	// Validate checks the log against the SARIF 2.1.0 schema before writing (see --validate).
	Validate bool

	// NoConsole suppresses the console sink (see --no-console).
	NoConsole bool
}

type Runtime struct {
	// Concurrency bounds how many inputs are read and parsed at once (see --concurrency).
	// Must be >= 1.
	Concurrency int

	// Timeout is the deadline for the whole command (see --timeout).
	// Must be > 0.
	Timeout time.Duration

	// FailOnViolations exits 1 when any result has kind "fail" (see --fail-on-violations).
	FailOnViolations bool

	// KeepGoing skips unreadable or malformed inputs instead of aborting (see --keep-going).
	KeepGoing bool

	// Verbose enables [verbose] diagnostics on stderr.
	Verbose bool
}

type Upload struct {
	// Repo is the target repository as OWNER/REPO (see --repo).
	Repo string

	// Ref is the fully qualified git ref the analysis belongs to (see --ref).
	Ref string

	// Commit is the commit SHA the analysis belongs to (see --commit).
	Commit string

	// CheckoutURI is the base URI of the checkout (see --checkout-uri).
	CheckoutURI string

	// APIURL targets a GitHub Enterprise Server API root (see --api-url).
	APIURL string

	// Wait polls until GitHub has processed the upload (see --wait).
	Wait bool
}

func New() *Config {
	return &Config{
		Output: Output{
			ConsoleFormat: "text",
		},
		Runtime: Runtime{
			Concurrency: 4,
			Timeout:     5 * time.Minute,
		},
	}
}

// Validate normalizes c and checks the settings a convert run needs.
func (c *Config) Validate() error {
	c.Input.Paths = splitCommaList(c.Input.Paths)
	c.Output.ConsoleFilterStatus = splitCommaList(c.Output.ConsoleFilterStatus)

	if len(c.Input.Paths) == 0 {
		return errors.New("at least one --input must be provided")
	}
	stdin := 0
	for _, p := range c.Input.Paths {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("--input - (stdin) may be given only once")
	}

	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		return errors.New("--console-format must be one of: text, json, ndjson")
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	for i, st := range c.Output.ConsoleFilterStatus {
		v := strings.ToUpper(strings.TrimSpace(st))
		if v != "FAIL" && v != "PASS" && v != "INCOMPLETE" {
			return fmt.Errorf("unsupported --console-filter-status value: %s (must be one of: FAIL, PASS, INCOMPLETE)", st)
		}
		c.Output.ConsoleFilterStatus[i] = v
	}

	if c.Runtime.Concurrency <= 0 {
		return errors.New("--concurrency must be >= 1")
	}
	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".sarif", ".json":
				c.Output.OutFormat = "sarif"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if c.Output.OutFormat != "sarif" && c.Output.OutFormat != "ndjson" {
			return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
		}
	}

	if c.Output.NoConsole && c.Output.Out == "" && c.Output.Report == "" {
		return errors.New("--no-console requires --out or --report")
	}
	return nil
}

// ValidateUpload checks the settings the upload command needs.
func (c *Config) ValidateUpload() error {
	c.Upload.Repo = strings.TrimSpace(c.Upload.Repo)
	c.Upload.Ref = strings.TrimSpace(c.Upload.Ref)
	c.Upload.Commit = strings.TrimSpace(c.Upload.Commit)

	if c.Upload.Repo == "" {
		return errors.New("--repo is required")
	}
	if owner, repo, ok := strings.Cut(c.Upload.Repo, "/"); !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return fmt.Errorf("invalid --repo %q: expected OWNER/REPO", c.Upload.Repo)
	}
	if c.Upload.Commit == "" {
		return errors.New("--commit is required")
	}
	if c.Upload.Ref == "" {
		return errors.New("--ref is required")
	}
	if !strings.HasPrefix(c.Upload.Ref, "refs/") {
		c.Upload.Ref = "refs/heads/" + c.Upload.Ref
	}
	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}
	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
