package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPatterns are the file name patterns recognized as documentation
// files when no configuration overrides them.
var DefaultPatterns = []string{
	"testdoc.yaml",
	"testdoc.yml",
	"*.testdoc.yaml",
	"*.testdoc.yml",
}

// skipDirs are directory names never descended into during discovery.
// These hold third-party or VCS content that cannot contain authored
// documentation records.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
}

// Scanner discovers documentation files under one or more roots.
type Scanner struct {
	// patterns are the file name patterns to match, in filepath.Match syntax.
	patterns []string

	// ignore are path patterns to skip, matched against the
	// slash-separated path relative to the scan root.
	ignore []string

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithPatterns overrides the documentation file name patterns.
// Empty input keeps the defaults.
func WithPatterns(patterns []string) Option {
	return func(s *Scanner) {
		if len(patterns) > 0 {
			s.patterns = patterns
		}
	}
}

// WithIgnorePatterns sets path patterns to exclude from discovery.
// Patterns are matched against the root-relative slash path, and against
// the base name as a convenience.
func WithIgnorePatterns(patterns []string) Option {
	return func(s *Scanner) {
		s.ignore = patterns
	}
}

// WithLogger sets a custom logger for the scanner.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner with the given options.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		patterns: DefaultPatterns,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Discover walks the given roots and returns all documentation file
// paths, sorted and deduplicated. A root that is itself a regular file
// is accepted directly regardless of patterns, so users can point the
// CLI at a single file.
//
// The walk respects context cancellation between directory entries.
func (s *Scanner) Discover(ctx context.Context, roots ...string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat scan root: %w", err)
		}

		if info.Mode().IsRegular() {
			if !seen[root] {
				seen[root] = true
				paths = append(paths, root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if skipDirs[d.Name()] || s.ignored(rel, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !s.matches(d.Name()) || s.ignored(rel, d.Name()) {
				return nil
			}

			s.logger.Debug("discovered documentation file", "path", path)
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// matches reports whether the file name matches any documentation pattern.
func (s *Scanner) matches(name string) bool {
	for _, pattern := range s.patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ignored reports whether the relative path or base name matches any
// ignore pattern.
func (s *Scanner) ignored(rel, name string) bool {
	for _, pattern := range s.ignore {
		if ok, err := filepath.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
