package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// fileConfig mirrors Config as it appears in a YAML file. Pointer fields
// distinguish an absent key from a zero value.
type fileConfig struct {
	Input struct {
		Paths []string `yaml:"paths"`
	} `yaml:"input"`
	Options struct {
		ScanName   *string `yaml:"scan_name"`
		TestCaseID *string `yaml:"test_case_id"`
		ScanID     *string `yaml:"scan_id"`
	} `yaml:"options"`
	Output struct {
		ConsoleFormat       *string  `yaml:"console_format"`
		ConsoleFilterStatus []string `yaml:"console_filter_status"`
		Out                 *string  `yaml:"out"`
		OutFormat           *string  `yaml:"out_format"`
		Report              *string  `yaml:"report"`
		Validate            *bool    `yaml:"validate"`
		NoConsole           *bool    `yaml:"no_console"`
	} `yaml:"output"`
	Runtime struct {
		Concurrency      *int    `yaml:"concurrency"`
		Timeout          *string `yaml:"timeout"`
		FailOnViolations *bool   `yaml:"fail_on_violations"`
		KeepGoing        *bool   `yaml:"keep_going"`
	} `yaml:"runtime"`
	Upload struct {
		Repo        *string `yaml:"repo"`
		Ref         *string `yaml:"ref"`
		Commit      *string `yaml:"commit"`
		CheckoutURI *string `yaml:"checkout_uri"`
		APIURL      *string `yaml:"api_url"`
		Wait        *bool   `yaml:"wait"`
	} `yaml:"upload"`
}

// LoadFile applies the YAML config at path on top of cfg. Keys absent from
// the file leave cfg untouched. Relative input paths are kept as written.
func LoadFile(path string, cfg *Config) error {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	content, err := os.ReadFile(trimmedPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", trimmedPath, err)
	}
	return fc.apply(cfg)
}

func (fc *fileConfig) apply(cfg *Config) error {
	if len(fc.Input.Paths) > 0 {
		cfg.Input.Paths = fc.Input.Paths
	}

	if fc.Options.ScanName != nil {
		cfg.Options.ScanName = fc.Options.ScanName
	}
	if fc.Options.TestCaseID != nil {
		cfg.Options.TestCaseID = fc.Options.TestCaseID
	}
	if fc.Options.ScanID != nil {
		cfg.Options.ScanID = fc.Options.ScanID
	}

	setString(&cfg.Output.ConsoleFormat, fc.Output.ConsoleFormat)
	if len(fc.Output.ConsoleFilterStatus) > 0 {
		cfg.Output.ConsoleFilterStatus = fc.Output.ConsoleFilterStatus
	}
	setString(&cfg.Output.Out, fc.Output.Out)
	setString(&cfg.Output.OutFormat, fc.Output.OutFormat)
	setString(&cfg.Output.Report, fc.Output.Report)
	setBool(&cfg.Output.Validate, fc.Output.Validate)
	setBool(&cfg.Output.NoConsole, fc.Output.NoConsole)

	if fc.Runtime.Concurrency != nil {
		cfg.Runtime.Concurrency = *fc.Runtime.Concurrency
	}
	if fc.Runtime.Timeout != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*fc.Runtime.Timeout))
		if err != nil {
			return fmt.Errorf("parse config: runtime.timeout: %w", err)
		}
		cfg.Runtime.Timeout = d
	}
	setBool(&cfg.Runtime.FailOnViolations, fc.Runtime.FailOnViolations)
	setBool(&cfg.Runtime.KeepGoing, fc.Runtime.KeepGoing)

	setString(&cfg.Upload.Repo, fc.Upload.Repo)
	setString(&cfg.Upload.Ref, fc.Upload.Ref)
	setString(&cfg.Upload.Commit, fc.Upload.Commit)
	setString(&cfg.Upload.CheckoutURI, fc.Upload.CheckoutURI)
	setString(&cfg.Upload.APIURL, fc.Upload.APIURL)
	setBool(&cfg.Upload.Wait, fc.Upload.Wait)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
