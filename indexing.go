package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"cppdocs/config"
	"cppdocs/ignore"
	"cppdocs/index"
	"cppdocs/language"
)

// indexJob is one file queued for the worker pool.
type indexJob struct {
	path            string
	translationUnit bool
}

// indexProject feeds every translation unit named by the compilation
// database, plus the configured markdown pages, through a bounded worker
// pool into both indexes. Pool size follows num_threads (0 means all
// available); debug.limit_num_indexed_files caps the translation units.
// Returns the number of files indexed and total bytes processed.
func indexProject(
	cfg *config.Config,
	sources []string,
	fileIndex *index.FileIndex,
	contentIndex *index.ContentIndex,
	matcher *ignore.Matcher,
	logger *slog.Logger,
) (int, int64) {
	workers := cfg.NumThreads
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if cfg.DebugLimitNumIndexedFiles > 0 && len(sources) > cfg.DebugLimitNumIndexedFiles {
		sources = sources[:cfg.DebugLimitNumIndexedFiles]
	}

	var indexedCount int
	var totalSize int64
	var mu sync.Mutex

	jobs := make(chan indexJob, 100)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				size, err := indexOneFile(job, cfg, fileIndex, contentIndex)
				if err != nil {
					logger.Debug("skipped file", "path", job.path, "error", err)
					continue
				}
				mu.Lock()
				indexedCount++
				totalSize += size
				mu.Unlock()
			}
		}()
	}

	for _, src := range sources {
		if matcher.ShouldIgnore(src) {
			logger.Debug("ignored translation unit", "path", src)
			continue
		}
		if info, err := os.Stat(src); err == nil && matcher.IsFileTooLarge(info.Size()) {
			logger.Debug("skipped oversized file", "path", src)
			continue
		}
		jobs <- indexJob{path: src, translationUnit: true}
	}

	// Markdown pages were already validated during resolution and are
	// indexed unconditionally so documentation search covers them.
	for _, page := range cfg.MarkdownPaths {
		jobs <- indexJob{path: page}
	}

	close(jobs)
	wg.Wait()
	return indexedCount, totalSize
}

// indexOneFile reads one file and records it in both indexes.
func indexOneFile(
	job indexJob,
	cfg *config.Config,
	fileIndex *index.FileIndex,
	contentIndex *index.ContentIndex,
) (int64, error) {
	info, err := os.Stat(job.path)
	if err != nil {
		return 0, fmt.Errorf("stat: %w", err)
	}

	content, err := os.ReadFile(job.path)
	if err != nil {
		return 0, fmt.Errorf("reading file: %w", err)
	}
	if language.IsBinaryContent(content) {
		return 0, fmt.Errorf("binary file")
	}

	relPath, err := filepath.Rel(cfg.RootDir, job.path)
	if err != nil {
		relPath = job.path
	}
	relPath = filepath.ToSlash(relPath)

	contentStr := string(content)
	lang := language.Detect(job.path)

	fileIndex.Add(&index.IndexedFile{
		Path:            job.path,
		RelativePath:    relPath,
		Language:        lang,
		SizeBytes:       info.Size(),
		ModTime:         info.ModTime(),
		LineCount:       strings.Count(contentStr, "\n") + 1,
		TranslationUnit: job.translationUnit,
	})

	if err := contentIndex.IndexFile(relPath, contentStr, lang); err != nil {
		return 0, fmt.Errorf("indexing content: %w", err)
	}
	return info.Size(), nil
}
