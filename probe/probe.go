// Package probe discovers the host C++ compiler's builtin header search
// paths by running a preprocessor pass and scraping the include-search
// diagnostics the compiler prints on stderr.
package probe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

const (
	// defaultCompiler is the canonical name of the system default C++
	// compiler, resolved through PATH.
	defaultCompiler = "c++"

	// defaultTimeout bounds the compiler subprocess. A working compiler
	// finishes the empty preprocessor pass near-instantly.
	defaultTimeout = 10 * time.Second
)

// Prober runs the system compiler to discover its builtin include search
// paths. The zero value probes "c++" with the default timeout.
type Prober struct {
	Compiler string        // executable name or path, default "c++"
	Timeout  time.Duration // subprocess deadline, default 10s
}

// Discover spawns the compiler with flags that dump its include search
// list ("-E -Wp,-v" on an empty translation unit), captures stderr into a
// temporary file, and scans it for the search-list markers. The temporary
// file is removed on every return path.
//
// These flags work on every clang and gcc we have tried, but the output
// format is not a stable contract: if the markers never appear, Discover
// returns zero paths rather than an error. Failure to find or run the
// compiler at all is an error.
func (p Prober) Discover() ([]string, error) {
	compiler := p.Compiler
	if compiler == "" {
		compiler = defaultCompiler
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	tmp, err := os.CreateTemp("", "cppdocs-include-probe-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file for compiler output: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	compilerPath, err := exec.LookPath(compiler)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("finding system default C++ compiler %q: %w", compiler, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stdin and Stdout are left nil so the subprocess gets the null
	// device for both; only the stderr diagnostics matter.
	cmd := exec.CommandContext(ctx, compilerPath, "-E", "-Wp,-v", "-xc++", os.DevNull)
	cmd.Stderr = tmp

	runErr := cmd.Run()
	closeErr := tmp.Close()
	if runErr != nil {
		return nil, fmt.Errorf("running %s: %w", compilerPath, runErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("flushing compiler output: %w", closeErr)
	}

	output, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("reading compiler's default include paths: %w", err)
	}

	return ScanSearchList(string(output)), nil
}
