// Package integration provides CLI integration tests for worklog.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// worklogBin is the path to the built worklog binary.
	worklogBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config
// directory and log file.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	LogFile   string
}

// NewTestEnv creates a new isolated test environment with an empty log file.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build worklog: %v", buildErr)
	}
	if worklogBin == "" {
		t.Fatal("worklog binary not built (worklogBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	logFile := filepath.Join(tempDir, "worklog.log")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(logFile, nil, 0o644); err != nil {
		t.Fatalf("failed to create log file: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		LogFile:   logFile,
	}
}

// SeedLog overwrites the log file with the given content.
func (e *TestEnv) SeedLog(content string) {
	e.t.Helper()
	if err := os.WriteFile(e.LogFile, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to seed log: %v", err)
	}
}

// ReadLog returns the current log file content.
func (e *TestEnv) ReadLog() string {
	e.t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if err != nil {
		e.t.Fatalf("failed to read log: %v", err)
	}
	return string(data)
}

// CmdResult holds the result of a worklog command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunWorklog executes the worklog CLI with the given arguments, pointing it
// at the environment's config directory and log file.
func (e *TestEnv) RunWorklog(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--file", e.LogFile}, args...)
	cmd := exec.Command(worklogBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("failed to run worklog: %v", err)
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunWorklog executes worklog and fails the test on a non-zero exit.
func (e *TestEnv) MustRunWorklog(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunWorklog(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("worklog %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
