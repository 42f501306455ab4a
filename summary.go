package main

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"cppdocs/config"
	"cppdocs/index"
)

// logSummary reports the outcome of an indexing run at info level.
func logSummary(
	logger *slog.Logger,
	cfg *config.Config,
	fileIndex *index.FileIndex,
	contentIndex *index.ContentIndex,
	duration time.Duration,
) {
	logger.Info("indexing complete",
		"project", cfg.ProjectName,
		"files", fileIndex.Count(),
		"translationUnits", fileIndex.TranslationUnitCount(),
		"documents", contentIndex.DocumentCount(),
		"totalSize", formatFileSize(fileIndex.TotalSizeBytes()),
		"duration", formatDuration(duration),
	)

	for _, entry := range languageBreakdown(fileIndex) {
		logger.Info("indexed language", "language", entry.lang, "files", entry.count)
	}
}

type langEntry struct {
	lang  string
	count int
}

// languageBreakdown returns language counts, most common first, with ties
// broken alphabetically for stable output.
func languageBreakdown(fileIndex *index.FileIndex) []langEntry {
	counts := fileIndex.LanguageCounts()
	entries := make([]langEntry, 0, len(counts))
	for lang, count := range counts {
		entries = append(entries, langEntry{lang, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].lang < entries[j].lang
	})
	return entries
}

// formatFileSize converts bytes to a human-readable string.
func formatFileSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatDuration formats a duration for the summary line.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return d.Round(time.Millisecond).String()
	}
	totalMinutes := totalSeconds / 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, totalSeconds%60)
	}
	return fmt.Sprintf("%dh%dm", totalMinutes/60, totalMinutes%60)
}
