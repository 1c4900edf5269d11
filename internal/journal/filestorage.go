package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrelineas/diario/internal/config"
	"github.com/entrelineas/diario/internal/output"
)

// DataFileName is the journal data file name inside the data directory.
const DataFileName = "journal_data.json"

// FileStorage persists the whole journal as a single JSON document on disk.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage backed by the given file path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultPath resolves the journal data file location.
// Priority: $DIARIO_FILE, then the user data directory.
func DefaultPath() (string, error) {
	if path := os.Getenv("DIARIO_FILE"); path != "" {
		return path, nil
	}
	dir := config.DataDir()
	if dir == "" {
		return "", errors.New("cannot resolve the user data directory")
	}
	return filepath.Join(dir, DataFileName), nil
}

// NewDefaultStorage creates a FileStorage at the default data file path.
func NewDefaultStorage() (*FileStorage, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to resolve journal data path", err)
	}
	return NewFileStorage(path), nil
}

// Path returns the data file path.
func (fs *FileStorage) Path() string {
	return fs.path
}

// Exists returns true if the data file exists.
func (fs *FileStorage) Exists() bool {
	info, err := os.Stat(fs.path)
	return err == nil && !info.IsDir()
}

// Load reads the journal document from disk.
// A missing file yields a fresh empty document, not an error.
// A file this version cannot parse is reported without touching it.
func (fs *FileStorage) Load() (*Document, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDocument(), nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read journal file: "+fs.path, err)
	}

	doc, err := FromJSON(data)
	if err != nil {
		if errors.Is(err, ErrUnknownSchema) {
			return nil, output.NewUserError(err.Error() + " (file: " + fs.path + ")")
		}
		return nil, output.NewSystemErrorWithCause("journal file is not valid JSON: "+fs.path, err)
	}
	return doc, nil
}

// Save validates the document and writes it to disk.
// Uses write-to-temp-then-rename so a crash never leaves a half-written file.
func (fs *FileStorage) Save(doc *Document) error {
	if err := doc.Validate(); err != nil {
		return output.NewUserError(err.Error())
	}

	data, err := doc.ToJSON()
	if err != nil {
		return output.NewSystemError("failed to serialize journal: " + err.Error())
	}

	if err = os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create data directory", err)
	}

	if err = atomicWrite(fs.path, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write journal file", err)
	}

	return nil
}

// LoadOrSeed loads the journal and fills placeholder entries for every date
// from SeedStart through today that has none. The document is written back
// when anything was added or the file did not exist yet.
// Returns the document and the number of entries seeded.
func (fs *FileStorage) LoadOrSeed(seeder *Seeder, color string) (*Document, int, error) {
	existed := fs.Exists()

	doc, err := fs.Load()
	if err != nil {
		return nil, 0, err
	}

	added := seeder.Seed(doc, SeedStart, Today(), color)
	if added > 0 || !existed || doc.Legacy {
		if err := fs.Save(doc); err != nil {
			return nil, 0, err
		}
		doc.Legacy = false
	}
	return doc, added, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
