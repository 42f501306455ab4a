// Package compiledb loads the clang-style compilation database
// (compile_commands.json) that names the project's translation units.
package compiledb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Entry is one record of a compilation database: a single compiler
// invocation for a single source file. Either Command or Arguments is set,
// depending on the generator.
type Entry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Command   string   `json:"command,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	Output    string   `json:"output,omitempty"`
}

// SourcePath returns the absolute path of the entry's source file.
// Relative files are resolved against the entry's directory, as the
// compilation database format specifies.
func (e Entry) SourcePath() string {
	if filepath.IsAbs(e.File) {
		return filepath.Clean(e.File)
	}
	return filepath.Join(e.Directory, e.File)
}

// Load reads and parses a compilation database.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading compilation database: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing compilation database %s: %w", path, err)
	}
	return entries, nil
}

// SourceFiles returns the distinct absolute source paths of all entries,
// sorted. A file compiled multiple times (for example once per build
// configuration) appears once.
func SourceFiles(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	var files []string
	for _, entry := range entries {
		path := entry.SourcePath()
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}
