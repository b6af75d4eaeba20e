package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kwx/config"
	"kwx/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	logs     *logging.Provider
)

var rootCmd = &cobra.Command{
	Use:   "kwx",
	Short: "Extract keywords from Markdown articles",
	Long: `kwx strips Markdown syntax from an article, runs Japanese morphological
analysis over the remaining prose and ranks content words by frequency.

Example usage:
  kwx extract article.md             # JSON keywords for a file
  cat article.md | kwx extract       # Read from standard input
  kwx extract article.md -f text     # Space-separated keywords only
  kwx extract article.md -n 50       # Up to 50 keywords
  kwx strip article.md               # Show the plain text being analysed`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logs, err = logging.New(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		if cfgFile != "" {
			if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
				GetLogger("cli").Warn("config file not found, using defaults", "path", cfgFile)
			}
		}

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./kwx.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "directory to search for kwx.yaml (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return cfg
}

// GetLogger returns the named component logger.
func GetLogger(name string) logging.Logger {
	return logs.Get(name)
}
