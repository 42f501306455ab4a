package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cppdocs/probe"
)

// FileName is the project configuration file, looked up in the current
// working directory.
const FileName = ".cppdocs.toml"

// timestampLayout is the fixed UTC format stamped into every resolved
// configuration.
const timestampLayout = "2006-01-02T15:04:05 UTC"

// Resolver resolves the runtime configuration from the project
// configuration file and the host environment. Every diagnostic goes
// through Logger; failures never panic and never call os.Exit. Callers
// detect failure solely through Config.Valid.
type Resolver struct {
	Logger  *slog.Logger
	Version string
	Mode    BinaryMode

	// WorkDir overrides the current working directory. Used by tests.
	WorkDir string

	// DiscoverIncludes overrides the system include path prober.
	// Used by tests; nil means probe the real system compiler.
	DiscoverIncludes func() ([]string, error)
}

// Resolve runs the resolution pipeline: locate and parse .cppdocs.toml,
// probe the system compiler when enabled, extract and cross-validate every
// field. The pipeline is strictly linear; the first failing mandatory step
// reports its error and returns the Config with Valid left false.
func (r *Resolver) Resolve() *Config {
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}

	cfg := &Config{
		ToolVersion:       r.Version,
		Mode:              r.Mode,
		UseSystemIncludes: true,
	}

	// Locate .cppdocs.toml in the working directory.
	workDir := r.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Error("unable to determine the current working directory", "error", err)
			return cfg
		}
		workDir = wd
	}
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		log.Error("unable to resolve the current working directory", "error", err)
		return cfg
	}
	cfg.RootDir = absDir

	configPath := filepath.Join(cfg.RootDir, FileName)
	info, err := os.Stat(configPath)
	if err != nil || !info.Mode().IsRegular() {
		log.Error("current directory doesn't contain a "+FileName+" file", "dir", cfg.RootDir)
		return cfg
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Error("unable to read configuration file", "path", configPath, "error", err)
		return cfg
	}

	doc, err := parseDocument(data)
	if err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			log.Error("error in configuration file",
				"path", configPath, "line", row, "column", col, "error", derr.Error())
		} else {
			log.Error("error in configuration file", "path", configPath, "error", err)
		}
		return cfg
	}

	// The compilation database must point at an existing regular file.
	cfg.CompileCommandsPath = doc.strOr("paths", "compile_commands", "")
	if !isRegularFile(cfg.CompileCommandsPath) {
		log.Error("compile_commands is not a valid file", "path", cfg.CompileCommandsPath)
		return cfg
	}

	// output_dir is mandatory for Full builds; for Client builds a local
	// output directory is accepted but output is handled remotely.
	outputDir, outputDirSet := doc.str("paths", "output_dir")
	if outputDirSet && cfg.Mode == ModeClient {
		log.Warn("'output_dir' is specified in " + FileName + " but this is a client build; " +
			"documentation will be uploaded instead of being saved locally")
	} else if !outputDirSet && cfg.Mode == ModeFull {
		log.Error("no 'output_dir' specified in " + FileName + "; it is required so that documentation can be saved locally")
		return cfg
	}
	cfg.OutputDir = outputDir

	cfg.ProjectName = doc.strOr("project", "name", "")
	cfg.ProjectVersion = doc.strOr("project", "version", "")
	cfg.GitRepoURL = doc.strOr("project", "git_repo_url", "")
	if cfg.ProjectName == "" {
		log.Error("project name in " + FileName + " is empty, not a string, or invalid")
		return cfg
	}
	if cfg.GitRepoURL != "" && !strings.HasSuffix(cfg.GitRepoURL, "/") {
		log.Error("git repo URL is missing the mandatory trailing slash", "url", cfg.GitRepoURL)
		return cfg
	}

	// num_threads must be a non-negative integer when present; absent
	// means 0, which indexes with all available threads.
	if rawThreads, present := doc.value("project", "num_threads"); present {
		numThreads, isInt := rawThreads.(int64)
		if !isInt {
			log.Error("number of threads in " + FileName + " is not an integer")
			return cfg
		}
		if numThreads < 0 {
			log.Error("number of threads must be a positive integer greater than or equal to 0")
			return cfg
		}
		cfg.NumThreads = int(numThreads)
	}

	// Probe the system compiler for its builtin include search paths.
	// Probed paths come first so user-declared paths are searched after
	// them, mirroring the compiler's own ordering.
	if use, ok := doc.boolean("includes", "use_system_includes"); ok {
		cfg.UseSystemIncludes = use
	}
	if cfg.UseSystemIncludes {
		discover := r.DiscoverIncludes
		if discover == nil {
			discover = func() ([]string, error) {
				return probe.Prober{}.Discover()
			}
		}
		systemPaths, err := discover()
		if err != nil {
			log.Error("failed to determine the system include paths", "error", err)
			return cfg
		}
		cfg.IncludePaths = append(cfg.IncludePaths, systemPaths...)
	}

	// User-declared include paths follow the probed ones, in declaration
	// order. A malformed entry is skipped, never fatal.
	if includes, ok := doc.list("includes", "paths"); ok {
		for _, entry := range includes {
			s, ok := entry.(string)
			if !ok || s == "" {
				log.Warn("an include path from " + FileName + " is malformed, ignoring it")
				continue
			}
			cfg.IncludePaths = append(cfg.IncludePaths, s)
		}
	}

	if ignores, ok := doc.list("ignore", "paths"); ok {
		for _, entry := range ignores {
			s, ok := entry.(string)
			if !ok || s == "" {
				log.Warn("an ignore directive from " + FileName + " is malformed, ignoring it")
				continue
			}
			cfg.IgnorePaths = append(cfg.IgnorePaths, s)
		}
	}

	if b, ok := doc.boolean("ignore", "ignore_private_members"); ok {
		cfg.IgnorePrivateMembers = b
	}
	if b, ok := doc.boolean("ignore", "ignore_plain_comments"); ok {
		cfg.IgnorePlainComments = b
	}

	// Markdown pages. Each entry must name an existing regular file; a bad
	// entry is dropped with a warning and the rest of the list survives.
	cfg.Homepage = doc.strOr("pages", "homepage", "")
	if mdPaths, ok := doc.list("pages", "paths"); ok {
		for _, entry := range mdPaths {
			s, ok := entry.(string)
			if !ok || s == "" {
				log.Warn("a path to a markdown file in " + FileName + " is malformed, ignoring it")
				continue
			}
			if !isRegularFile(s) {
				log.Warn("a path to a markdown file in "+FileName+" either doesn't exist or isn't a file, ignoring it", "path", s)
				continue
			}
			cfg.MarkdownPaths = append(cfg.MarkdownPaths, s)
		}
	}

	// Indexing only the first N files is a bring-up aid for huge codebases,
	// not a production option.
	if limit, ok := doc.integer("debug", "limit_num_indexed_files"); ok {
		cfg.DebugLimitNumIndexedFiles = int(limit)
	}

	cfg.Timestamp = time.Now().UTC().Format(timestampLayout)
	cfg.Valid = true

	// Dump the resolved state at info level.
	log.Info("cppdocs version", "version", cfg.ToolVersion)
	log.Info("timestamp", "utc", cfg.Timestamp)
	log.Info("root directory", "path", cfg.RootDir)
	if cfg.Mode != ModeClient {
		log.Info("output directory", "path", cfg.OutputDir)
	}
	log.Info("project", "name", cfg.ProjectName, "version", cfg.ProjectVersion)
	if cfg.NumThreads == 0 {
		log.Info("indexing with all available threads")
	} else {
		log.Info("indexing", "threads", cfg.NumThreads)
	}
	if cfg.DebugLimitNumIndexedFiles > 0 {
		log.Info("only indexing a limited number of files", "limit", cfg.DebugLimitNumIndexedFiles)
	}

	return cfg
}

// isRegularFile reports whether path names an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
