package main

import (
	_ "embed"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cppdocs/compiledb"
	"cppdocs/config"
	"cppdocs/ignore"
	"cppdocs/index"
)

//go:embed attribution.md
var attributionText string

// maxIndexedFileSize is the size cutoff for indexed files. Anything larger
// is almost certainly generated and would bloat the search index.
const maxIndexedFileSize = 1024 * 1024

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes one full cppdocs invocation and returns the process exit
// code. Resolution failures surface here only as an invalid configuration;
// the mapping to a nonzero exit happens in exactly one place.
func run(args []string, stderr io.Writer) int {
	// The severity threshold must be settled before any diagnostic is
	// emitted; --verbose raises it from warning to info.
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	flags := flag.NewFlagSet("cppdocs", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("verbose", false, "Whether to use verbose output")
	oss := flags.Bool("oss", false, "Show open source notices")
	if err := flags.Parse(args); err != nil {
		logger.Error("error found while parsing command line arguments", "error", err)
		return 1
	}

	// Terminal command: dump the bundled attribution text and stop.
	if *oss {
		level.Set(slog.LevelInfo)
		logger.Info("displaying OSS attribution\n" + attributionText)
		return 0
	}

	if *verbose {
		level.Set(slog.LevelInfo)
	}

	mode := config.ModeFull
	if binaryMode == "client" {
		mode = config.ModeClient
	}

	resolver := &config.Resolver{
		Logger:  logger,
		Version: version,
		Mode:    mode,
	}
	cfg := resolver.Resolve()
	if !cfg.Valid {
		return 1
	}

	entries, err := compiledb.Load(cfg.CompileCommandsPath)
	if err != nil {
		logger.Error("unable to load compilation database", "path", cfg.CompileCommandsPath, "error", err)
		return 1
	}

	matcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:          cfg.RootDir,
		Patterns:         cfg.IgnorePaths,
		MaxFileSizeBytes: maxIndexedFileSize,
	})

	fileIndex := index.NewFileIndex()
	var contentIndex *index.ContentIndex
	if cfg.Mode == config.ModeFull {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			logger.Error("unable to create output directory", "path", cfg.OutputDir, "error", err)
			return 1
		}
		contentIndex, err = index.NewPersistentContentIndex(filepath.Join(cfg.OutputDir, "search-index"))
	} else {
		contentIndex, err = index.NewContentIndex()
	}
	if err != nil {
		logger.Error("unable to create the search index", "error", err)
		return 1
	}
	defer contentIndex.Close()

	start := time.Now()
	indexProject(cfg, compiledb.SourceFiles(entries), fileIndex, contentIndex, matcher, logger)
	logSummary(logger, cfg, fileIndex, contentIndex, time.Since(start))

	return 0
}
