package index

import "time"

// IndexedFile is one source file that has been indexed: a translation
// unit named by the compilation database, or a page/header pulled in
// alongside it.
type IndexedFile struct {
	Path            string    // Absolute file path
	RelativePath    string    // Path relative to the project root (forward slashes)
	Language        string    // Detected language
	SizeBytes       int64     // File size in bytes
	ModTime         time.Time // Last modification time
	LineCount       int       // Number of lines in the file
	TranslationUnit bool      // Listed in the compilation database
}
