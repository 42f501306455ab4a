package ignore

// defaultPatterns are always excluded from indexing: build system
// internals, version control metadata, and artifacts that can never be
// documentation-worthy C++ sources.
var defaultPatterns = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Build trees
	"CMakeFiles",
	"CMakeCache.txt",
	".ninja_deps",
	".ninja_log",
	"*.ninja",

	// Object and link artifacts
	"*.o",
	"*.obj",
	"*.a",
	"*.lib",
	"*.so",
	"*.so.*",
	"*.dylib",
	"*.dll",
	"*.exe",

	// Precompiled headers and module caches
	"*.gch",
	"*.pch",
	"*.pcm",

	// Coverage and profiling
	"*.gcda",
	"*.gcno",
	"*.profraw",
	"*.profdata",

	// Editor leftovers
	".idea",
	".vscode",
	"*.swp",
	"*~",

	// OS noise
	".DS_Store",
	"Thumbs.db",
}
