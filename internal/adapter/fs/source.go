package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrNotMarkdown is returned for a path outside the include patterns.
	ErrNotMarkdown = errors.New("not a markdown file")
	// ErrInvalidEncoding is returned when input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// DefaultIncludes are the patterns treated as Markdown when none are configured.
var DefaultIncludes = []string{"**/*.md", "**/*.markdown", "**/*.mdx"}

// Source reads Markdown documents from files or standard input.
type Source struct {
	includes []string
	stdin    io.Reader
}

// NewSource creates a Source accepting paths that match includes.
func NewSource(includes []string, stdin io.Reader) *Source {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Source{
		includes: includes,
		stdin:    stdin,
	}
}

// Read returns the document at path, or standard input when path is "" or "-".
// Regular files must match the include patterns; pipes and devices are read
// as given.
func (s *Source) Read(path string) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == "-" {
		data, err = io.ReadAll(s.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	} else {
		if !s.Accepts(path) && !isStream(path) {
			return "", fmt.Errorf("%w: %s", ErrNotMarkdown, path)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return "", err
		}
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return strings.TrimPrefix(string(data), "\uFEFF"), nil
}

// Accepts reports whether path matches one of the include patterns,
// ignoring case.
func (s *Source) Accepts(path string) bool {
	p := strings.ToLower(strings.TrimLeft(filepath.ToSlash(filepath.Clean(path)), "/"))
	for _, pattern := range s.includes {
		matched, err := doublestar.Match(strings.ToLower(pattern), p)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// isStream reports whether path names a pipe, socket or character device,
// such as the /dev/fd/N paths produced by shell process substitution.
func isStream(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&(os.ModeNamedPipe|os.ModeSocket|os.ModeCharDevice) != 0
}
