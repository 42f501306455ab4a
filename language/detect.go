// Package language classifies the files a C++ project brings to indexing.
package language

import (
	"path/filepath"
	"strings"
)

// extensionToLanguage maps file extensions (without dot) to language names.
// The surface is deliberately narrow: sources a C++ compilation database
// can name, plus the build and documentation files found next to them.
var extensionToLanguage = map[string]string{
	// C++
	"cpp": "C++", "cc": "C++", "cxx": "C++", "c++": "C++",
	"hpp": "C++", "hh": "C++", "hxx": "C++", "h++": "C++",
	"ipp": "C++", "inl": "C++", "tpp": "C++",
	// C (headers default to C++ for documentation purposes)
	"c": "C",
	"h": "C++",
	// Mixed-project companions
	"m": "Objective-C", "mm": "Objective-C++",
	"cu": "CUDA", "cuh": "CUDA",
	// Build systems
	"cmake": "CMake",
	"ninja": "Ninja",
	"mk":    "Makefile",
	// Interface definitions
	"proto": "Protobuf",
	"idl":   "IDL",
	// Documentation pages
	"md":  "Markdown",
	"mdx": "Markdown",
	"rst": "reStructuredText",
	"dox": "Doxygen",
	// Config
	"toml": "TOML",
	"yaml": "YAML", "yml": "YAML",
	"json": "JSON",
}

// Detect returns the language for a file path, or "Unknown" when
// unrecognized. Well-known build file names win over their extension, so
// CMakeLists.txt is CMake rather than whatever ".txt" would map to.
func Detect(filePath string) string {
	switch strings.ToLower(filepath.Base(filePath)) {
	case "makefile", "gnumakefile":
		return "Makefile"
	case "cmakelists.txt":
		return "CMake"
	case "meson.build":
		return "Meson"
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if lang, ok := extensionToLanguage[ext]; ok {
		return lang
	}
	return "Unknown"
}

// IsSource reports whether the language is compiled C-family source, as
// opposed to build files, pages, or configuration.
func IsSource(lang string) bool {
	switch lang {
	case "C", "C++", "Objective-C", "Objective-C++", "CUDA":
		return true
	}
	return false
}
