package index

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/bmatcuk/doublestar/v4"
)

// ContentIndex is the full-text search index over indexed source files.
// Full builds persist it on disk under the output directory so the
// generated documentation ships a usable search index; client builds keep
// it in memory.
type ContentIndex struct {
	mu    sync.RWMutex
	index bleve.Index
	// fileContents keeps raw content for line-level result extraction
	fileContents map[string]string // key: relative path
}

// NewContentIndex creates an in-memory content index.
func NewContentIndex() (*ContentIndex, error) {
	bleveIndex, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}
	return &ContentIndex{
		index:        bleveIndex,
		fileContents: make(map[string]string),
	}, nil
}

// NewPersistentContentIndex creates a content index stored at path,
// replacing any index left by a previous run.
func NewPersistentContentIndex(path string) (*ContentIndex, error) {
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("clearing stale search index: %w", err)
	}
	bleveIndex, err := bleve.New(path, buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating search index at %s: %w", path, err)
	}
	return &ContentIndex{
		index:        bleveIndex,
		fileContents: make(map[string]string),
	}, nil
}

// sourceDocument is the document structure stored in bleve.
type sourceDocument struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Language string `json:"language"`
}

func buildIndexMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	contentField := bleve.NewTextFieldMapping()
	contentField.Store = false // raw content lives in fileContents
	contentField.IncludeInAll = true
	docMapping.AddFieldMappingsAt("content", contentField)

	pathField := bleve.NewTextFieldMapping()
	pathField.Store = true
	pathField.IncludeInAll = false
	docMapping.AddFieldMappingsAt("path", pathField)

	langField := bleve.NewKeywordFieldMapping()
	langField.Store = true
	langField.IncludeInAll = false
	docMapping.AddFieldMappingsAt("language", langField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// IndexFile adds or updates a file's content in the search index.
func (ci *ContentIndex) IndexFile(relativePath string, content string, language string) error {
	ci.mu.Lock()
	defer ci.mu.Unlock()

	ci.fileContents[relativePath] = content
	doc := sourceDocument{Content: content, Path: relativePath, Language: language}
	if err := ci.index.Index(relativePath, doc); err != nil {
		return fmt.Errorf("indexing %s: %w", relativePath, err)
	}
	return nil
}

// SearchResult is one file with matching lines.
type SearchResult struct {
	RelativePath string
	Matches      []LineMatch
}

// LineMatch is a single matching line.
type LineMatch struct {
	LineNumber int
	LineText   string
}

// Search runs a full-text query over the indexed sources. Query forms:
// plain text (word match), "quoted text" (phrase), /pattern/ (regexp).
// An optional doublestar glob restricts results by relative path.
func (ci *ContentIndex) Search(queryString string, fileGlob string, maxResults int) ([]SearchResult, error) {
	ci.mu.RLock()
	defer ci.mu.RUnlock()

	if maxResults <= 0 {
		maxResults = 50
	}

	request := bleve.NewSearchRequest(buildQuery(queryString))
	request.Size = maxResults * 5 // oversample, results are regrouped per file
	request.Fields = []string{"path", "language"}

	searchResults, err := ci.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	var results []SearchResult
	for _, hit := range searchResults.Hits {
		relativePath := hit.ID
		content, ok := ci.fileContents[relativePath]
		if !ok {
			continue
		}
		if fileGlob != "" && !globMatches(fileGlob, relativePath) {
			continue
		}
		matches := findMatchingLines(content, queryString)
		if len(matches) == 0 {
			continue
		}
		results = append(results, SearchResult{RelativePath: relativePath, Matches: matches})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}

// buildQuery parses the query string into a bleve query.
func buildQuery(queryString string) query.Query {
	queryString = strings.TrimSpace(queryString)

	if strings.HasPrefix(queryString, "/") && strings.HasSuffix(queryString, "/") && len(queryString) > 2 {
		return bleve.NewRegexpQuery(queryString[1 : len(queryString)-1])
	}
	if strings.HasPrefix(queryString, "\"") && strings.HasSuffix(queryString, "\"") && len(queryString) > 2 {
		return bleve.NewMatchPhraseQuery(queryString[1 : len(queryString)-1])
	}
	return bleve.NewMatchQuery(queryString)
}

// findMatchingLines locates the query term line by line, case-insensitive.
func findMatchingLines(content string, queryString string) []LineMatch {
	term := strings.TrimSpace(queryString)
	if strings.HasPrefix(term, "/") && strings.HasSuffix(term, "/") && len(term) > 2 {
		term = term[1 : len(term)-1]
	} else if strings.HasPrefix(term, "\"") && strings.HasSuffix(term, "\"") && len(term) > 2 {
		term = term[1 : len(term)-1]
	}
	termLower := strings.ToLower(term)

	var matches []LineMatch
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), termLower) {
			matches = append(matches, LineMatch{LineNumber: i + 1, LineText: line})
		}
	}
	return matches
}

// globMatches applies a doublestar pattern to a relative path.
func globMatches(pattern, path string) bool {
	pattern = strings.ReplaceAll(pattern, "\\", "/")
	matched, err := doublestar.Match(pattern, path)
	return err == nil && matched
}

// DocumentCount returns the number of documents in the index.
func (ci *ContentIndex) DocumentCount() uint64 {
	ci.mu.RLock()
	defer ci.mu.RUnlock()
	count, _ := ci.index.DocCount()
	return count
}

// Close flushes and closes the underlying index.
func (ci *ContentIndex) Close() error {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	return ci.index.Close()
}
