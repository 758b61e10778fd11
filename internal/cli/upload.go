package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"axesarif/internal/config"
	"axesarif/internal/engine"
	"axesarif/internal/flags"
	gh "axesarif/internal/github"
	"axesarif/internal/sarif"

	"github.com/spf13/cobra"
)

var (
	uploadSARIFPath string
	uploadToken     string
)

// uploadPollInterval is how often --wait checks the processing status.
var uploadPollInterval = 5 * time.Second

const uploadHelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}Usage:
  {{.UseLine}}

{{if .HasAvailableLocalFlags}}Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}Environment:
	axe-sarif authenticates to GitHub using an access token.

	Sources (in order):
	1) --token
	2) GITHUB_TOKEN environment variable (set automatically in GitHub Actions)
	3) GH_TOKEN environment variable
	4) GitHub CLI (gh) authentication via gh auth token (if gh is installed and logged in)

  Token guidance (brief):
  - PAT (classic): needs security_events (public_repo is enough for public repos).
  - Fine-grained PAT: grant the target repository
    Code scanning alerts: Read and write.
  - GitHub Actions: grant the job "permissions: security-events: write".

  Examples:
    # macOS/Linux
    export GITHUB_TOKEN="<your_token>"
    axe-sarif upload --sarif a11y.sarif --repo my-org/site --ref main --commit "$(git rev-parse HEAD)"

    # Windows PowerShell
    $env:GITHUB_TOKEN = "<your_token>"
    axe-sarif upload --sarif a11y.sarif --repo my-org/site --ref main --commit <sha>

{{if .HasAvailableSubCommands}}Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasHelpSubCommands}}Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a SARIF log to GitHub code scanning",
	Long: `Upload a SARIF log to GitHub code scanning.

The log is validated against the SARIF 2.1.0 schema first, then gzipped,
base64-encoded and sent to the code scanning SARIF endpoint of --repo.
Violations then show up as code scanning alerts for the given commit.

Exit codes:
	0 = uploaded (and processed, with --wait)
	3 = fatal error (invalid log, auth failure, rejected or failed upload)

Examples:
  axe-sarif upload --sarif a11y.sarif --repo my-org/site --ref main --commit <sha>

  # GitHub Enterprise Server, wait for processing
  axe-sarif upload --sarif a11y.sarif --repo my-org/site --ref refs/pull/7/merge \
    --commit <sha> --api-url https://ghe.example.com/api/v3 --wait
`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		if err := resolveSettings(cmd, configPath, cfg, optionFlags{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}
		if strings.TrimSpace(uploadSARIFPath) == "" {
			fmt.Fprintln(os.Stderr, "Error: --sarif is required")
			os.Exit(engine.ExitFatal)
		}
		if err := cfg.ValidateUpload(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}

		data, err := readDocument(cmd.InOrStdin(), uploadSARIFPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", uploadSARIFPath, err)
			os.Exit(engine.ExitFatal)
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Runtime.Timeout)
		defer cancel()

		token, source, err := gh.ResolveAuthToken(ctx, uploadToken, cfg.Upload.APIURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve GitHub auth token: %v\n", err)
			os.Exit(engine.ExitFatal)
		}
		if strings.TrimSpace(token) == "" {
			fmt.Fprintln(os.Stderr, "Error: GitHub auth token is required (pass --token, set GITHUB_TOKEN or run 'gh auth login')")
			os.Exit(engine.ExitFatal)
		}
		if cfg.Runtime.Verbose {
			fmt.Fprintf(os.Stderr, "[verbose] github token source: %s\n", source)
		}

		client, err := gh.NewClient(ctx, token,
			gh.WithVerbose(cfg.Runtime.Verbose, nil),
			gh.WithAPIURL(cfg.Upload.APIURL),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create GitHub client: %v\n", err)
			os.Exit(engine.ExitFatal)
		}

		if err := runUpload(ctx, cmd.OutOrStdout(), client, cfg, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}
	},
}

// runUpload validates data, uploads it and, with cfg.Upload.Wait, waits for
// processing to finish.
func runUpload(ctx context.Context, w io.Writer, client *gh.Client, cfg *config.Config, data []byte) error {
	log, err := sarif.Decode(data)
	if err != nil {
		return err
	}
	if err := sarif.Validate(data); err != nil {
		return err
	}
	if len(log.Runs) == 0 {
		return errors.New("sarif log has no runs")
	}

	owner, repo, err := gh.ParseRepo(cfg.Upload.Repo)
	if err != nil {
		return err
	}

	id, err := client.UploadSARIF(ctx, owner, repo, gh.UploadRequest{
		CommitSHA:   cfg.Upload.Commit,
		Ref:         cfg.Upload.Ref,
		CheckoutURI: cfg.Upload.CheckoutURI,
		ToolName:    log.Runs[0].Tool.Driver.Name,
		StartedAt:   time.Now(),
		SARIF:       data,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Uploaded %d run(s) to %s/%s (upload id %s)\n", len(log.Runs), owner, repo, id)

	if !cfg.Upload.Wait {
		return nil
	}
	state, err := client.WaitForProcessing(ctx, owner, repo, id, uploadPollInterval)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Processing %s", state.Status)
	if state.AnalysesURL != "" {
		fmt.Fprintf(w, ": %s", state.AnalysesURL)
	}
	fmt.Fprintln(w)
	return nil
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.SetHelpTemplate(uploadHelpTemplate)

	// MAINTAINER NOTE: If you add/change/remove flags here, keep fileSettings
	// in internal/cli/settings.go in sync.
	uploadCmd.Flags().StringVar(&uploadSARIFPath, flags.FlagSARIF, "", "SARIF log to upload (- for stdin)")
	uploadCmd.Flags().StringVar(&cfg.Upload.Repo, flags.FlagRepo, "", "Target repository as OWNER/REPO")
	uploadCmd.Flags().StringVar(&cfg.Upload.Ref, flags.FlagRef, "", "Git ref of the analysis (branch name or refs/...)")
	uploadCmd.Flags().StringVar(&cfg.Upload.Commit, flags.FlagCommit, "", "Commit SHA of the analysis")
	uploadCmd.Flags().StringVar(&cfg.Upload.CheckoutURI, flags.FlagCheckoutURI, "", "Base URI of the checkout the log refers to")
	uploadCmd.Flags().StringVar(&cfg.Upload.APIURL, flags.FlagAPIURL, "", "GitHub API root (GitHub Enterprise Server)")
	uploadCmd.Flags().BoolVar(&cfg.Upload.Wait, flags.FlagWait, false, "Wait until GitHub has processed the upload")
	uploadCmd.Flags().StringVar(&uploadToken, flags.FlagToken, "", "GitHub token (default: GITHUB_TOKEN, GH_TOKEN or gh auth token)")
	uploadCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Global timeout (default: 5m)")
}
