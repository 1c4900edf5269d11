// Package pandoc wraps the external pandoc binary used for PDF export.
package pandoc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/entrelineas/diario/internal/output"
)

// Binary is the converter probed in PATH. Only PDF export needs it; the
// txt and md formats work without any external tool.
const Binary = "pandoc"

// InstallHint is the message shown when the converter is missing.
const InstallHint = "pandoc is not installed: install it from https://pandoc.org/installing.html to enable PDF export, or use the txt or md format"

// LookPathFunc locates a binary in PATH.
type LookPathFunc func(file string) (string, error)

// RunFunc executes the converter with stdin content and arguments.
// It returns captured stdout.
type RunFunc func(ctx context.Context, stdin []byte, args ...string) (string, error)

// defaultRun executes the real pandoc binary.
// Returns an *output.ExitError on failure with appropriate exit code.
func defaultRun(ctx context.Context, stdin []byte, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, Binary, args...)
	if len(stdin) > 0 {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if pandoc is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewUserError(InstallHint)
		}

		// Conversion failed - include stderr in message
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("pandoc failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Converter renders markdown through the external pandoc binary.
type Converter struct {
	lookPath LookPathFunc
	run      RunFunc
}

// NewConverter creates a Converter.
// If lookPath is nil, uses exec.LookPath.
// If run is nil, executes the real binary.
func NewConverter(lookPath LookPathFunc, run RunFunc) *Converter {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if run == nil {
		run = defaultRun
	}
	return &Converter{lookPath: lookPath, run: run}
}

// Available reports whether the converter binary is in PATH.
func (c *Converter) Available() bool {
	_, err := c.lookPath(Binary)
	return err == nil
}

// Version returns the converter's version line for diagnostics.
func (c *Converter) Version(ctx context.Context) (string, error) {
	if !c.Available() {
		return "", output.NewUserError(InstallHint)
	}
	out, err := c.run(ctx, nil, "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}

// RenderPDF converts markdown content to a PDF at outPath.
// A missing binary is a user error carrying the install hint, so callers
// surface the alternative formats instead of crashing.
func (c *Converter) RenderPDF(ctx context.Context, markdown []byte, outPath string) error {
	if !c.Available() {
		return output.NewUserError(InstallHint)
	}
	_, err := c.run(ctx, markdown, "--from", "markdown", "--output", outPath)
	return err
}
