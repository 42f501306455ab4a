package probe

import "strings"

// Search-list region markers as printed by gcc and clang. The start line
// reads `#include "..." search starts here:` (and again for <...>); the
// end line closes the region and stops the scan.
const (
	markerInclude     = "#include"
	markerSearchStart = "search starts here:"
	markerSearchEnd   = "End of search list."
)

// ScanSearchList extracts include paths from a compiler's -Wp,-v stderr
// diagnostics. Within the region bounded by the start and end markers,
// every line beginning with a space is a search path; everything outside
// the region is ignored even if it looks like a path. Absent markers yield
// an empty result, not an error: the scrape tolerates compilers with
// unusual diagnostic formats.
func ScanSearchList(output string) []string {
	var paths []string
	inSearchList := false

	for _, line := range strings.Split(output, "\n") {
		if !inSearchList {
			inSearchList = strings.Contains(line, markerInclude) && strings.Contains(line, markerSearchStart)
		}
		if inSearchList && strings.HasPrefix(line, " ") {
			paths = append(paths, strings.TrimSpace(line))
		}
		if strings.Contains(line, markerSearchEnd) {
			break
		}
	}

	return paths
}
