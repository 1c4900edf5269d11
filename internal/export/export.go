package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrelineas/diario/internal/journal"
	"github.com/entrelineas/diario/internal/output"
	"github.com/entrelineas/diario/internal/pandoc"
)

// FormatEntry renders an entry in the given format.
// For pdf this is the pandoc input, not the final binary.
func FormatEntry(format Format, date journal.Date, entry *journal.Entry) (string, error) {
	switch format {
	case Text:
		return FormatText(date, entry)
	case Markdown:
		return FormatMarkdown(date, entry)
	case PDF:
		return FormatPDFInput(date, entry)
	default:
		return "", output.NewUserError(fmt.Sprintf("unknown export format %q", format))
	}
}

// ExportEntry renders the entry and writes it to path.
// If force is false and the target exists, returns a conflict error
// before anything is written. PDF output goes through pandoc.
func ExportEntry(ctx context.Context, conv *pandoc.Converter, date journal.Date, entry *journal.Entry, format Format, path string, force bool) error {
	content, err := FormatEntry(format, date, entry)
	if err != nil {
		return err
	}

	if format == PDF {
		if err := checkTarget(path, force); err != nil {
			return err
		}
		if err := ensureDir(path); err != nil {
			return err
		}
		return conv.RenderPDF(ctx, []byte(content), path)
	}

	return WriteFile(path, []byte(content), force)
}

// WriteFile writes rendered content to path.
// If force is false and the file already exists, returns a conflict error.
func WriteFile(path string, content []byte, force bool) error {
	if err := checkTarget(path, force); err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", path, err))
	}
	return nil
}

// checkTarget refuses to overwrite an existing file unless force is set.
func checkTarget(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return output.NewConflictError(fmt.Sprintf("export target already exists: %s (use --force to overwrite)", path))
	}
	return nil
}

// ensureDir creates the parent directory for path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create export directory", err)
	}
	return nil
}
