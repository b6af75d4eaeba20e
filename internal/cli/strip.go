package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kwx/internal/adapter/markdown"
)

var stripKeepFrontmatter bool

var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Print the plain text left after removing Markdown syntax",
	Long: `Strip runs only the Markdown reduction stage and prints the resulting
plain text. Useful for checking what the keyword extractor will see.

Examples:
  kwx strip article.md
  kwx strip article.md --keep-frontmatter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
	stripCmd.Flags().BoolVar(&stripKeepFrontmatter, "keep-frontmatter", false, "do not remove a leading frontmatter block")
}

func runStrip(cmd *cobra.Command, args []string) error {
	doc, err := readInput(cmd, GetConfig(), args)
	if err != nil {
		return err
	}

	var text string
	if stripKeepFrontmatter {
		text = markdown.Strip(doc)
	} else {
		text = markdown.Reduce(doc)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
