package main

import (
	"testing"
	"time"

	"cppdocs/index"
)

func Test_FormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := formatFileSize(tt.bytes); got != tt.expected {
			t.Errorf("formatFileSize(%d) = %q, want %q", tt.bytes, got, tt.expected)
		}
	}
}

func Test_FormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{250 * time.Millisecond, "250ms"},
		{3 * time.Second, "3s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Hour, "2h0m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.duration); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
		}
	}
}

func Test_LanguageBreakdown_Ordering(t *testing.T) {
	fi := index.NewFileIndex()
	fi.Add(&index.IndexedFile{RelativePath: "a.cpp", Language: "C++"})
	fi.Add(&index.IndexedFile{RelativePath: "b.cpp", Language: "C++"})
	fi.Add(&index.IndexedFile{RelativePath: "c.md", Language: "Markdown"})
	fi.Add(&index.IndexedFile{RelativePath: "d.c", Language: "C"})

	entries := languageBreakdown(fi)
	if len(entries) != 3 {
		t.Fatalf("expected 3 languages, got %d", len(entries))
	}
	if entries[0].lang != "C++" || entries[0].count != 2 {
		t.Errorf("most common language first, got %+v", entries[0])
	}
	// Tie between C and Markdown resolves alphabetically.
	if entries[1].lang != "C" || entries[2].lang != "Markdown" {
		t.Errorf("tie ordering wrong: %+v", entries[1:])
	}
}
