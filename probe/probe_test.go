package probe

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// writeFakeCompiler creates a shell script that mimics a compiler dumping
// its include search list on stderr.
func writeFakeCompiler(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-cxx")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake compiler: %v", err)
	}
	return path
}

func Test_Prober_Discover_ParsesCompilerOutput(t *testing.T) {
	compiler := writeFakeCompiler(t, `#!/bin/sh
cat >&2 <<'EOF'
ignoring nonexistent directory "/nope"
#include "..." search starts here:
#include <...> search starts here:
 /usr/include/c++/12
 /usr/include
End of search list.
EOF
exit 0
`)

	paths, err := Prober{Compiler: compiler}.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	want := []string{"/usr/include/c++/12", "/usr/include"}
	if len(paths) != len(want) {
		t.Fatalf("Discover() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func Test_Prober_Discover_CompilerNotFound(t *testing.T) {
	_, err := Prober{Compiler: "cppdocs-no-such-compiler-xyz"}.Discover()
	if err == nil {
		t.Fatal("expected an error for a missing compiler")
	}
}

func Test_Prober_Discover_NonzeroExit(t *testing.T) {
	compiler := writeFakeCompiler(t, "#!/bin/sh\necho boom >&2\nexit 3\n")

	_, err := Prober{Compiler: compiler}.Discover()
	if err == nil {
		t.Fatal("expected an error for a failing compiler")
	}
}

func Test_Prober_Discover_Timeout(t *testing.T) {
	compiler := writeFakeCompiler(t, "#!/bin/sh\nsleep 5\n")

	start := time.Now()
	_, err := Prober{Compiler: compiler, Timeout: 100 * time.Millisecond}.Discover()
	if err == nil {
		t.Fatal("expected an error when the compiler hangs")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("timeout took too long: %v", elapsed)
	}
}

func Test_Prober_Discover_RemovesTempFile(t *testing.T) {
	compiler := writeFakeCompiler(t, "#!/bin/sh\nexit 0\n")

	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	if _, err := (Prober{Compiler: compiler}).Discover(); err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	leftovers, err := filepath.Glob(filepath.Join(tmpDir, "cppdocs-include-probe-*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temporary probe files were not removed: %v", leftovers)
	}
}
