package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/pandoc"
)

// doctorPandoc is a converter that reports a fixed version line.
func doctorPandoc() *pandoc.Converter {
	found := func(string) (string, error) { return "/usr/bin/pandoc", nil }
	run := func(_ context.Context, _ []byte, _ ...string) (string, error) {
		return "pandoc 3.1.12\nCompiled with pandoc-types", nil
	}
	return pandoc.NewConverter(found, run)
}

// healthyDoctorEnv pins the config dir and editor so every check can pass.
func healthyDoctorEnv(t *testing.T) *journal.FileStorage {
	t.Helper()
	t.Setenv("DIARIO_CONFIG_HOME", t.TempDir())
	t.Setenv("DIARIO_EDITOR", "sh")

	return newTestStorage(t, map[string]*journal.Entry{
		journal.Today().String(): {Journal: "presente"},
	})
}

func TestDoctorCommand_AllHealthy(t *testing.T) {
	storage := healthyDoctorEnv(t)

	cmd := newDoctorCmdInternal(storage, doctorPandoc())
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	expectations := []string{
		"diario doctor v",
		"STORAGE",
		"CONTENT",
		"TOOLS",
		"pandoc 3.1.12 found",
		"sh found",
		"8 passed",
		"0 warnings",
		"0 failed",
	}
	for _, expected := range expectations {
		if !strings.Contains(output, expected) {
			t.Errorf("output missing %q\noutput: %s", expected, output)
		}
	}
}

func TestDoctorCommand_FreshInstallWarns(t *testing.T) {
	t.Setenv("DIARIO_CONFIG_HOME", t.TempDir())
	t.Setenv("DIARIO_EDITOR", "sh")

	cmd := newDoctorCmdInternal(newFreshStorage(t), doctorPandoc())
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "not created yet") {
		t.Errorf("output missing the missing-file warning\noutput: %s", output)
	}
	if !strings.Contains(output, "Run 'diario init'") {
		t.Errorf("output missing the init hint\noutput: %s", output)
	}
}

func TestDoctorCommand_MissingPandoc(t *testing.T) {
	storage := healthyDoctorEnv(t)

	cmd := newDoctorCmdInternal(storage, missingPandoc())
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "PDF export disabled") {
		t.Errorf("output missing the pandoc warning\noutput: %s", output)
	}
	if !strings.Contains(output, "pandoc is not installed") {
		t.Errorf("output missing the install hint\noutput: %s", output)
	}
}

func TestDoctorCommand_MalformedSettings(t *testing.T) {
	storage := healthyDoctorEnv(t)

	path := config.SettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte("editor: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cmd := newDoctorCmdInternal(storage, doctorPandoc())
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "1 failed") {
		t.Errorf("a malformed settings file should fail a check\noutput: %s", output)
	}
	if !strings.Contains(output, "Fix or delete "+path) {
		t.Errorf("output missing the settings hint\noutput: %s", output)
	}
}

func TestDoctorCommand_FixRemovesTempFiles(t *testing.T) {
	storage := healthyDoctorEnv(t)

	stray := filepath.Join(filepath.Dir(storage.Path()), ".tmp-12345.json")
	if err := os.WriteFile(stray, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	// Without --fix the stray file is only reported
	cmd := newDoctorCmdInternal(storage, doctorPandoc())
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "stray temp file") {
		t.Errorf("output missing the temp file warning\noutput: %s", buf.String())
	}
	if _, err := os.Stat(stray); err != nil {
		t.Fatal("the stray file must survive a run without --fix")
	}

	// With --fix it is removed
	cmd = newDoctorCmdInternal(storage, doctorPandoc())
	buf = new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--fix"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() with --fix error = %v", err)
	}
	if !strings.Contains(buf.String(), "auto-fixed") {
		t.Errorf("output missing the auto-fix notice\noutput: %s", buf.String())
	}
	if _, err := os.Stat(stray); err == nil {
		t.Error("--fix should remove the stray temp file")
	}
}

func TestDoctorCommand_Quiet(t *testing.T) {
	storage := healthyDoctorEnv(t)

	cmd := newDoctorCmdInternal(storage, doctorPandoc())
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--quiet"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "STORAGE") {
		t.Errorf("quiet mode should hide all-passing sections\noutput: %s", output)
	}
	if !strings.Contains(output, "8 passed") {
		t.Errorf("quiet mode keeps the summary line\noutput: %s", output)
	}
}

func TestDoctorCommand_JSON(t *testing.T) {
	storage := healthyDoctorEnv(t)

	root := newTestRootCmd(newDoctorCmdInternal(storage, doctorPandoc()))
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"doctor", "--json"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result doctorResult
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v\noutput: %s", err, buf.String())
	}

	if result.Version == "" {
		t.Error("version should not be empty")
	}
	if len(result.Storage) != 3 {
		t.Errorf("storage checks = %d, want 3", len(result.Storage))
	}
	if len(result.Content) != 2 {
		t.Errorf("content checks = %d, want 2", len(result.Content))
	}
	if len(result.Tools) != 3 {
		t.Errorf("tool checks = %d, want 3", len(result.Tools))
	}

	total := result.Summary.Passed + result.Summary.Warnings + result.Summary.Failed
	if total != 8 {
		t.Errorf("summary total = %d, want 8", total)
	}
	if result.Summary.Failed != 0 {
		t.Errorf("failed = %d, want 0", result.Summary.Failed)
	}

	for _, check := range append(append(result.Storage, result.Content...), result.Tools...) {
		if check.Name == "" || check.Message == "" {
			t.Errorf("check %+v missing a name or message", check)
		}
	}
}
