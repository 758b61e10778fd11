package cli

import (
	"fmt"
	"io"
	"os"

	"axesarif/internal/sarif"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.sarif>...",
	Short: "Validate SARIF logs against the SARIF 2.1.0 schema",
	Long: `Validate one or more SARIF logs against the SARIF 2.1.0 schema.

For each valid log the canonical (RFC 8785) sha256 digest is printed. Two
logs with the same digest are equal regardless of key order or whitespace.
Use "-" to read a log from stdin.

Examples:
  axe-sarif validate results.sarif
  cat results.sarif | axe-sarif validate -

Output:
	One line per file:
	  OK      {PATH}  sha256:{DIGEST}
	  INVALID {PATH}  {REASON}
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			if err := validateFile(cmd.OutOrStdout(), cmd.InOrStdin(), path); err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
		}
		return nil
	},
}

// readDocument reads path, or r when path is "-".
func readDocument(r io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(r)
	}
	return os.ReadFile(path)
}

// validateFile prints one status line for path and returns the validation
// error, if any.
func validateFile(w io.Writer, stdin io.Reader, path string) error {
	digest, err := checkDocument(stdin, path)
	if err != nil {
		fmt.Fprintf(w, "%s %s  %v\n", color.RedString("INVALID"), path, err)
		return err
	}
	fmt.Fprintf(w, "%s      %s  sha256:%s\n", color.GreenString("OK"), path, digest)
	return nil
}

func checkDocument(stdin io.Reader, path string) (string, error) {
	data, err := readDocument(stdin, path)
	if err != nil {
		return "", err
	}
	log, err := sarif.Decode(data)
	if err != nil {
		return "", err
	}
	if err := sarif.Validate(data); err != nil {
		return "", err
	}
	return sarif.Digest(log)
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
