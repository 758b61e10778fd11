package cli

import (
	"fmt"
	"io"
	"sort"

	"axesarif/internal/taxonomy"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect the built-in WCAG taxonomy",
	Long: `Inspect the WCAG guideline lookup used to build SARIF taxonomies.

An axe tag present in this lookup becomes a taxon of the "WCAG" taxonomy
when it appears on a converted rule. Tags not listed here are ignored.

Examples:
  axe-sarif taxonomy list
  axe-sarif taxonomy show wcag143
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var taxonomyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known guideline tags",
	Long: `List every axe tag the WCAG lookup knows, sorted by tag.

Output:
  One line per tag:
    {TAG}  {TAXON ID}  {NAME}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printGuidelines(cmd.OutOrStdout(), taxonomy.WCAG)
		return nil
	},
}

var taxonomyShowCmd = &cobra.Command{
	Use:   "show [tag]",
	Short: "Show the guideline for an axe tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, ok := taxonomy.WCAG[args[0]]
		if !ok {
			return fmt.Errorf("tag not found: %s", args[0])
		}
		printGuideline(cmd.OutOrStdout(), args[0], g)
		return nil
	},
}

func printGuidelines(w io.Writer, lookup taxonomy.Lookup) {
	tags := make([]string, 0, len(lookup))
	for tag := range lookup {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		g := lookup[tag]
		fmt.Fprintf(w, "%-10s %-10s %s\n", tag, g.ID, g.Name)
	}
}

func printGuideline(w io.Writer, tag string, g taxonomy.Guideline) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "TAG: %s\n", tag)
	fmt.Fprintf(w, "ID:    %s\n", g.ID)
	fmt.Fprintf(w, "Title: %s\n", g.Title)
	fmt.Fprintf(w, "Name:  %s\n", g.Name)
	fmt.Fprintf(w, "URL:   %s\n", g.URL)
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
	taxonomyCmd.AddCommand(taxonomyListCmd)
	taxonomyCmd.AddCommand(taxonomyShowCmd)
}
