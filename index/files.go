package index

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// FileIndex tracks every file indexed during a run, keyed by root-relative
// path. Writes come from the indexing worker pool, so access is guarded.
type FileIndex struct {
	mu          sync.RWMutex
	files       map[string]*IndexedFile
	sortedPaths []string
	dirty       bool
}

// NewFileIndex creates an empty file index.
func NewFileIndex() *FileIndex {
	return &FileIndex{
		files: make(map[string]*IndexedFile),
	}
}

// Add records an indexed file, replacing any previous entry for the same
// relative path.
func (fi *FileIndex) Add(file *IndexedFile) {
	fi.mu.Lock()
	defer fi.mu.Unlock()

	if _, exists := fi.files[file.RelativePath]; !exists {
		fi.sortedPaths = append(fi.sortedPaths, file.RelativePath)
		fi.dirty = true
	}
	fi.files[file.RelativePath] = file
}

// Get returns the entry for a relative path, or nil.
func (fi *FileIndex) Get(relativePath string) *IndexedFile {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	return fi.files[relativePath]
}

// Count returns the number of indexed files.
func (fi *FileIndex) Count() int {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	return len(fi.files)
}

// TranslationUnitCount returns how many indexed files came from the
// compilation database.
func (fi *FileIndex) TranslationUnitCount() int {
	fi.mu.RLock()
	defer fi.mu.RUnlock()

	count := 0
	for _, file := range fi.files {
		if file.TranslationUnit {
			count++
		}
	}
	return count
}

// TotalSizeBytes returns the combined size of all indexed files.
func (fi *FileIndex) TotalSizeBytes() int64 {
	fi.mu.RLock()
	defer fi.mu.RUnlock()

	var total int64
	for _, file := range fi.files {
		total += file.SizeBytes
	}
	return total
}

// LanguageCounts returns a language -> file count breakdown.
func (fi *FileIndex) LanguageCounts() map[string]int {
	fi.mu.RLock()
	defer fi.mu.RUnlock()

	counts := make(map[string]int)
	for _, file := range fi.files {
		counts[file.Language]++
	}
	return counts
}

// Glob returns files whose relative path matches a doublestar pattern, in
// path order.
func (fi *FileIndex) Glob(pattern string) ([]*IndexedFile, error) {
	pattern = strings.ReplaceAll(pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	fi.mu.Lock()
	fi.ensureSorted()
	defer fi.mu.Unlock()

	var matches []*IndexedFile
	for _, path := range fi.sortedPaths {
		matched, err := doublestar.Match(pattern, path)
		if err != nil || !matched {
			continue
		}
		if file, ok := fi.files[path]; ok {
			matches = append(matches, file)
		}
	}
	return matches, nil
}

// All returns every indexed file in path order.
func (fi *FileIndex) All() []*IndexedFile {
	fi.mu.Lock()
	fi.ensureSorted()
	defer fi.mu.Unlock()

	all := make([]*IndexedFile, 0, len(fi.sortedPaths))
	for _, path := range fi.sortedPaths {
		all = append(all, fi.files[path])
	}
	return all
}

// ensureSorted re-sorts the path slice after concurrent Adds.
// Callers must hold the write lock.
func (fi *FileIndex) ensureSorted() {
	if fi.dirty {
		sort.Strings(fi.sortedPaths)
		fi.dirty = false
	}
}
