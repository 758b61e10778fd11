package cli

import (
	"fmt"
	"io"
	"strings"

	"axesarif/internal/rules"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	rulesListQuiet    bool
	rulesListSelector string
)
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List rules with local metadata",
	Long: `List the axe rules this build carries extra metadata for.

Rules listed here are custom axe rules (or rules with local documentation).
During conversion their help URL, title and guideline tags fill in what the
axe results leave out. Every other rule is converted from the axe results
alone (see "axe-sarif convert --help").

Examples:
  # List all registered rules
  axe-sarif rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered rules",
	Long: `List all rules currently registered in this build.

Without --select, rules are sorted by rule ID. --select narrows the list to a comma-separated
set of rule IDs and "tag:<axe tag>" terms.

Examples:
  axe-sarif rules list
  axe-sarif rules list --select tag:wcag412 -q

Output:
  A vertical list of rules:
    ----------------------------------------
    RULE: {ID}
    ----------------------------------------
    {TITLE}
    {DESCRIPTION}
    Help: {HELP URL}
    Tags: {TAGS}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rList, err := rules.Resolve(rulesListSelector)
		if err != nil {
			return err
		}
		for _, r := range rList {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), r.ID())
			} else {
				printRule(cmd.OutOrStdout(), r)
			}
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-id]",
	Short: "Show details of a specific rule",
	Long: `Show details of a specific rule by its ID.

Examples:
  axe-sarif rules show get-frame-title
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rList, err := rules.Resolve(args[0])
		if err != nil {
			return err
		}
		if len(rList) == 0 {
			return fmt.Errorf("rule not found: %s", args[0])
		}
		printRule(cmd.OutOrStdout(), rList[0])
		return nil
	},
}

func printRule(w io.Writer, r rules.Rule) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "RULE: %s\n", r.ID())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, r.Title())
	fmt.Fprintln(w, r.Description())
	if u := r.HelpURL(); u != "" {
		fmt.Fprintf(w, "Help: %s\n", u)
	}
	if tags := r.Tags(); len(tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(tags, ", "))
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule IDs")
	rulesListCmd.Flags().StringVar(&rulesListSelector, "select", "", "Rule IDs and tag:<tag> terms to list (comma-separated; empty = all)")
	rulesCmd.AddCommand(rulesShowCmd)
}
