package engine

import (
	"context"
	"fmt"
	"io"
	"os"

	"axesarif/internal/axe"
	"axesarif/internal/config"
	"axesarif/internal/converter"
	"axesarif/internal/output"
	"axesarif/internal/rules"
	"axesarif/internal/sarif"
)

// Exit codes of a convert run.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitPartial    = 2
	ExitFatal      = 3
)

func exitCodeForRun(fatal, partial, violations bool) int {
	// 0 = converted, nothing to gate on
	// 1 = violations found and --fail-on-violations set
	// 2 = partial failure (some inputs skipped under --keep-going)
	// 3 = fatal error (nothing written)
	if fatal {
		return ExitFatal
	}
	if partial {
		return ExitPartial
	}
	if violations {
		return ExitViolations
	}
	return ExitOK
}

func setupOutputManager(cfg *config.Config, stdout io.Writer) (*output.Manager, error) {
	outMgr := output.NewManager()

	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(stdout, cfg.Output.ConsoleFormat, cfg.Output.ConsoleFilterStatus)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

func convertOptions(cfg *config.Config) converter.Options {
	return converter.Options{
		ScanName:   cfg.Options.ScanName,
		TestCaseID: cfg.Options.TestCaseID,
		ScanID:     cfg.Options.ScanID,
	}
}

func hasViolations(log *sarif.Log) bool {
	for _, run := range log.Runs {
		for _, res := range run.Results {
			if res.Kind == sarif.KindFail {
				return true
			}
		}
	}
	return false
}

type Engine struct {
	Converter *converter.Converter
	Loader    *Loader

	// Stdout receives console output; Stderr receives errors and verbose logs.
	Stdout io.Writer
	Stderr io.Writer
}

func NewEngine(version string) *Engine {
	return &Engine{
		Converter: converter.Default(version),
		Loader:    NewLoader(os.Stdin),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

func (e *Engine) errorf(format string, args ...any) {
	fmt.Fprintf(e.Stderr, "Error: "+format+"\n", args...)
}

func (e *Engine) verbosef(cfg *config.Config, format string, args ...any) {
	if cfg.Runtime.Verbose {
		fmt.Fprintf(e.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// Run converts every configured input into one SARIF log, writes it to the
// configured sinks and returns the process exit code.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	sources, err := expandInputs(cfg.Input.Paths)
	if err != nil {
		e.errorf("%v", err)
		return exitCodeForRun(true, false, false)
	}
	e.verbosef(cfg, "resolved %d input(s)", len(sources))

	loaded, err := loadAll(ctx, e.Loader, sources, cfg.Runtime.Concurrency, cfg.Runtime.KeepGoing)
	if err != nil {
		e.errorf("%v", err)
		return exitCodeForRun(true, false, false)
	}

	partial := false
	var scans []*axe.Results
	for _, lr := range loaded {
		if lr.Err != nil {
			partial = true
			e.errorf("skipping %s: %v", lr.Source, lr.Err)
			continue
		}
		e.verbosef(cfg, "loaded %s: %d violations, %d passes, %d incomplete, %d inapplicable",
			lr.Source, len(lr.Results.Violations), len(lr.Results.Passes), len(lr.Results.Incomplete), len(lr.Results.Inapplicable))
		scans = append(scans, rules.Decorate(lr.Results))
	}

	log, skipped, err := e.convert(cfg, scans)
	if err != nil {
		e.errorf("%v", err)
		return exitCodeForRun(true, false, false)
	}
	partial = partial || skipped
	if len(log.Runs) == 0 {
		e.errorf("no input could be converted")
		return exitCodeForRun(true, false, false)
	}

	if cfg.Output.Validate {
		if err := sarif.ValidateLog(log); err != nil {
			e.errorf("%v", err)
			return exitCodeForRun(true, false, false)
		}
		e.verbosef(cfg, "log is valid SARIF %s", sarif.Version)
	}
	if cfg.Runtime.Verbose {
		if digest, err := sarif.Digest(log); err == nil {
			e.verbosef(cfg, "log digest sha256:%s", digest)
		}
	}

	outMgr, err := setupOutputManager(cfg, e.Stdout)
	if err != nil {
		e.errorf("creating output sinks: %v", err)
		return exitCodeForRun(true, false, false)
	}
	e.verbosef(cfg, "writing log to %d sink(s)", outMgr.Len())
	if err := outMgr.Deliver(log); err != nil {
		e.errorf("%v", err)
		return exitCodeForRun(true, false, false)
	}

	return exitCodeForRun(false, partial, cfg.Runtime.FailOnViolations && hasViolations(log))
}

// convert builds the log. With --keep-going a malformed scan is skipped and
// reported; otherwise the conversion is all-or-nothing.
func (e *Engine) convert(cfg *config.Config, scans []*axe.Results) (*sarif.Log, bool, error) {
	opts := convertOptions(cfg)
	if !cfg.Runtime.KeepGoing {
		log, err := e.Converter.ConvertAll(scans, opts)
		return log, false, err
	}

	skipped := false
	log := &sarif.Log{Schema: sarif.SchemaURI, Version: sarif.Version, Runs: []sarif.Run{}}
	for i, scan := range scans {
		run, err := e.Converter.ConvertRun(scan, opts)
		if err != nil {
			skipped = true
			e.errorf("skipping scan %d: %v", i, err)
			continue
		}
		log.Runs = append(log.Runs, run)
	}
	return log, skipped, nil
}
