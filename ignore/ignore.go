// Package ignore decides which files are excluded from documentation
// indexing, combining the project's configured ignore patterns with a set
// of default excludes and the project's .gitignore rules.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher excludes files from indexing. Patterns come from the resolved
// configuration's ignore list: a pattern containing glob metacharacters is
// matched with doublestar against the root-relative path, any other
// pattern excludes every file whose path contains it as a substring.
// The matcher is built once per run and is read-only afterwards.
type Matcher struct {
	rootDir          string
	patterns         []string
	gitIgnore        gitignore.GitIgnore
	maxFileSizeBytes int64
}

// MatcherOptions configures the ignore matcher.
type MatcherOptions struct {
	RootDir          string
	Patterns         []string // ignore patterns from the resolved configuration
	MaxFileSizeBytes int64    // 0 means no size cutoff
}

// NewMatcher builds a matcher from the configured patterns, the default
// excludes, and the project's .gitignore when present.
func NewMatcher(options MatcherOptions) *Matcher {
	return &Matcher{
		rootDir:          options.RootDir,
		patterns:         options.Patterns,
		gitIgnore:        loadGitignore(options.RootDir),
		maxFileSizeBytes: options.MaxFileSizeBytes,
	}
}

// ShouldIgnore reports whether the file at absolutePath is excluded from
// indexing.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if matchesDefaultPatterns(relativePath) {
		return true
	}

	if m.matchesConfigPatterns(relativePath, filepath.ToSlash(absolutePath)) {
		return true
	}

	if m.gitIgnore != nil {
		isDir := false
		if info, err := os.Stat(absolutePath); err == nil {
			isDir = info.IsDir()
		}
		// Relative() matches without requiring the path to exist on disk.
		if match := m.gitIgnore.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}

	return false
}

// ShouldIgnoreDir reports whether a directory should be skipped entirely
// during traversal.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	switch filepath.Base(absolutePath) {
	case ".git", ".svn", ".hg", ".idea", ".vscode", "CMakeFiles":
		return true
	}
	return m.ShouldIgnore(absolutePath)
}

// IsFileTooLarge reports whether a file exceeds the configured size cutoff.
func (m *Matcher) IsFileTooLarge(fileSize int64) bool {
	return m.maxFileSizeBytes > 0 && fileSize > m.maxFileSizeBytes
}

// matchesConfigPatterns applies the configured ignore patterns: glob
// patterns against the relative path, plain patterns as substrings of
// either form of the path.
func (m *Matcher) matchesConfigPatterns(relativePath, absolutePath string) bool {
	for _, pattern := range m.patterns {
		if strings.ContainsAny(pattern, "*?[{") {
			if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
				return true
			}
			continue
		}
		if strings.Contains(relativePath, pattern) || strings.Contains(absolutePath, pattern) {
			return true
		}
	}
	return false
}

// matchesDefaultPatterns checks the path against the builtin excludes:
// bare names against every path component, glob patterns against the
// basename.
func matchesDefaultPatterns(relativePath string) bool {
	baseName := relativePath
	if idx := strings.LastIndex(relativePath, "/"); idx >= 0 {
		baseName = relativePath[idx+1:]
	}

	for _, pattern := range defaultPatterns {
		if !strings.ContainsAny(pattern, "*?[") {
			for _, part := range strings.Split(relativePath, "/") {
				if part == pattern {
					return true
				}
			}
			continue
		}
		if matched, err := filepath.Match(pattern, baseName); err == nil && matched {
			return true
		}
	}
	return false
}

// loadGitignore reads the project's .gitignore, returning nil when the
// project has none.
func loadGitignore(rootDir string) gitignore.GitIgnore {
	f, err := os.Open(filepath.Join(rootDir, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, rootDir, nil)
}
