package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"kwx/config"
	"kwx/internal/adapter/analyzer"
	"kwx/internal/adapter/fs"
	"kwx/internal/adapter/markdown"
	"kwx/internal/domain"
	"kwx/internal/port"
	"kwx/internal/usecase"
)

var (
	extractMax    int
	extractFormat string
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract ranked keywords from a Markdown article",
	Long: `Extract reads a Markdown article from a file, or from standard input when no
file is given, removes frontmatter and Markdown syntax, and prints the most
frequent content words. Regular files must match input.includes (Markdown
extensions by default, any case); pipes such as <(...) are read as given.
Diagnostics go to stderr.

Examples:
  kwx extract article.md
  kwx extract article.md --format text
  cat article.md | kwx extract --max-keywords 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().IntVarP(&extractMax, "max-keywords", "n", 0, "maximum number of keywords (default from config: 30)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "output format: json or text (default from config: json)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	doc, err := readInput(cmd, cfg, args)
	if err != nil {
		return err
	}

	uc := newAnalyzeUseCase(cfg)
	out := cmd.OutOrStdout()

	if cfg.Output.Format == "text" {
		text, err := uc.AnalyzeText(doc, cfg.Extract.MaxKeywords)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}

	result, err := uc.Analyze(doc, cfg.Extract.MaxKeywords)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	return writeJSON(out, result, cfg.Output.Indent)
}

// effectiveConfig applies command-line overrides to a copy of the loaded config.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	c := *GetConfig()
	if cmd.Flags().Changed("max-keywords") {
		c.Extract.MaxKeywords = extractMax
	}
	if cmd.Flags().Changed("format") {
		c.Output.Format = strings.ToLower(strings.TrimSpace(extractFormat))
	}
	return &c
}

func readInput(cmd *cobra.Command, cfg *config.Config, args []string) (string, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	var src port.SourceReader = fs.NewSource(cfg.Input.Includes, cmd.InOrStdin())
	doc, err := src.Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return doc, nil
}

// newAnalyzeUseCase wires the pipeline. The dictionary is only loaded when
// the first document is tokenized.
func newAnalyzeUseCase(cfg *config.Config) *usecase.AnalyzeUseCase {
	tokenizer := analyzer.NewLazyMorphTokenizer(analyzer.Options{
		Mode:     cfg.Tokenizer.Mode,
		UserDict: cfg.Tokenizer.UserDict,
		Log:      GetLogger("analyzer"),
	})
	extractor := usecase.NewKeywordExtractor(tokenizer, GetLogger("usecase"))
	return usecase.NewAnalyzeUseCase(markdown.NewReducer(), extractor)
}

func writeJSON(w io.Writer, result *domain.Analysis, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
