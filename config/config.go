package config

import (
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the keyword extractor.
type Config struct {
	Extract   ExtractConfig   `yaml:"extract"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ExtractConfig holds keyword extraction settings.
type ExtractConfig struct {
	MaxKeywords int `yaml:"max_keywords"`
}

// TokenizerConfig holds morphological tokenizer settings.
type TokenizerConfig struct {
	Mode     string `yaml:"mode"`      // "normal", "search", "extended"
	UserDict string `yaml:"user_dict"` // Optional kagome user dictionary
}

// InputConfig holds input file settings.
type InputConfig struct {
	Includes []string `yaml:"includes"` // Glob patterns accepted as Markdown
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Indent int    `yaml:"indent"` // JSON indent width in spaces
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console", "pretty" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			MaxKeywords: 30,
		},
		Tokenizer: TokenizerConfig{
			Mode: "normal",
		},
		Input: InputConfig{
			Includes: []string{"**/*.md", "**/*.markdown", "**/*.mdx"},
		},
		Output: OutputConfig{
			Format: "json",
			Indent: 2,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate checks that every setting is within its allowed range.
func (c *Config) Validate() error {
	return validation.Errors{
		"extract": validation.ValidateStruct(&c.Extract,
			validation.Field(&c.Extract.MaxKeywords, validation.Required, validation.Min(1)),
		),
		"tokenizer": validation.ValidateStruct(&c.Tokenizer,
			validation.Field(&c.Tokenizer.Mode, validation.In("normal", "search", "extended")),
		),
		"output": validation.ValidateStruct(&c.Output,
			validation.Field(&c.Output.Format, validation.Required, validation.In("json", "text")),
			validation.Field(&c.Output.Indent, validation.Min(0), validation.Max(8)),
		),
		"logging": validation.ValidateStruct(&c.Logging,
			validation.Field(&c.Logging.Level, validation.In("trace", "debug", "info", "warn", "warning", "error")),
			validation.Field(&c.Logging.Format, validation.In("console", "pretty", "json")),
		),
	}.Filter()
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for kwx.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "kwx.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".kwx", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
