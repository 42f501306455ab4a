package compiledb

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeDatabase(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compile_commands.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing database: %v", err)
	}
	return path
}

func Test_Load_CommandForm(t *testing.T) {
	path := writeDatabase(t, `[
  {"directory": "/src/build", "file": "../lib/a.cpp", "command": "c++ -c ../lib/a.cpp"},
  {"directory": "/src/build", "file": "/src/lib/b.cpp", "command": "c++ -c /src/lib/b.cpp"}
]`)

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if got := entries[0].SourcePath(); got != "/src/lib/a.cpp" {
		t.Errorf("relative file not resolved against directory: %q", got)
	}
	if got := entries[1].SourcePath(); got != "/src/lib/b.cpp" {
		t.Errorf("absolute file mangled: %q", got)
	}
}

func Test_Load_ArgumentsForm(t *testing.T) {
	path := writeDatabase(t, `[
  {"directory": "/src", "file": "main.cpp", "arguments": ["c++", "-std=c++17", "-c", "main.cpp"], "output": "main.o"}
]`)

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries[0].Arguments) != 4 {
		t.Errorf("arguments not preserved: %v", entries[0].Arguments)
	}
	if entries[0].Output != "main.o" {
		t.Errorf("output not preserved: %q", entries[0].Output)
	}
}

func Test_Load_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing database")
	}
}

func Test_Load_MalformedJSON(t *testing.T) {
	path := writeDatabase(t, `{"not": "an array"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a malformed database")
	}
}

func Test_SourceFiles_DedupesAndSorts(t *testing.T) {
	entries := []Entry{
		{Directory: "/src", File: "z.cpp"},
		{Directory: "/src", File: "a.cpp"},
		{Directory: "/src", File: "./a.cpp"},
		{Directory: "/other", File: "/src/z.cpp"},
	}

	want := []string{"/src/a.cpp", "/src/z.cpp"}
	if got := SourceFiles(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("SourceFiles() = %v, want %v", got, want)
	}
}
