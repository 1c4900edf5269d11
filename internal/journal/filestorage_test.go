package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/entrelineas/diario/internal/output"
)

// --- Test Helpers ---

func writeDataFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write test data file: %v", err)
	}
}

// --- DefaultPath Tests ---

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("DIARIO_FILE", "/tmp/custom-journal.json")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if path != "/tmp/custom-journal.json" {
		t.Errorf("DefaultPath() = %q, want DIARIO_FILE value", path)
	}
}

func TestDefaultPath_DataDir(t *testing.T) {
	t.Setenv("DIARIO_FILE", "")
	dataHome := t.TempDir()
	t.Setenv("DIARIO_DATA_HOME", dataHome)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	want := filepath.Join(dataHome, DataFileName)
	if path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

// --- Load Tests ---

func TestFileStorage_Load(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, path string)
		wantCount   int
		wantLegacy  bool
		wantErr     bool
		wantCode    int
		errContains string
	}{
		{
			name:      "missing file yields empty document",
			setup:     func(t *testing.T, path string) {},
			wantCount: 0,
		},
		{
			name: "loads current schema",
			setup: func(t *testing.T, path string) {
				writeDataFile(t, path, []byte(`{
					"schema": "diario.journal/v1",
					"entries": {"2024-01-01": {"journal": "texto", "poetry": "verso"}}
				}`))
			},
			wantCount: 1,
		},
		{
			name: "upgrades legacy flat map",
			setup: func(t *testing.T, path string) {
				writeDataFile(t, path, []byte(`{
					"2024-01-01": {"journal": "texto", "poetry": "verso"}
				}`))
			},
			wantCount:  1,
			wantLegacy: true,
		},
		{
			name: "corrupt file is a system error",
			setup: func(t *testing.T, path string) {
				writeDataFile(t, path, []byte("{ truncated"))
			},
			wantErr:     true,
			wantCode:    output.ExitSystemError,
			errContains: "not valid JSON",
		},
		{
			name: "unknown schema is a user error",
			setup: func(t *testing.T, path string) {
				writeDataFile(t, path, []byte(`{"schema": "diario.journal/v99", "entries": {}}`))
			},
			wantErr:     true,
			wantCode:    output.ExitUserError,
			errContains: "unknown journal schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DataFileName)
			tt.setup(t, path)
			store := NewFileStorage(path)

			doc, err := store.Load()

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				if code := output.GetExitCode(err); code != tt.wantCode {
					t.Errorf("exit code = %d, want %d", code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.Count() != tt.wantCount {
				t.Errorf("Count() = %d, want %d", doc.Count(), tt.wantCount)
			}
			if doc.Legacy != tt.wantLegacy {
				t.Errorf("Legacy = %v, want %v", doc.Legacy, tt.wantLegacy)
			}
		})
	}
}

func TestFileStorage_Load_NeverClobbersCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)
	corrupt := []byte("{ definitely broken json")
	writeDataFile(t, path, corrupt)

	store := NewFileStorage(path)
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for corrupt file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("data file vanished: %v", err)
	}
	if string(data) != string(corrupt) {
		t.Error("corrupt data file was modified by a failed load")
	}
}

// --- Save Tests ---

func TestFileStorage_Save_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DataFileName)
	store := NewFileStorage(path)

	doc := NewDocument()
	doc.Put(MustDate("2024-01-01"), &Entry{Journal: "línea uno\nlínea dos", Poetry: "verso", Color: "#fffef5"})

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	restored, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entry := restored.Get(MustDate("2024-01-01"))
	if entry == nil {
		t.Fatal("entry missing after round-trip")
	}
	if entry.Journal != "línea uno\nlínea dos" {
		t.Errorf("Journal = %q, want multiline text back", entry.Journal)
	}
	if entry.Color != "#fffef5" {
		t.Errorf("Color = %q, want %q", entry.Color, "#fffef5")
	}
}

func TestFileStorage_Save_RejectsInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)
	store := NewFileStorage(path)

	doc := NewDocument()
	doc.Put(MustDate("2024-01-01"), &Entry{Color: "rojo"})

	err := store.Save(doc)
	if err == nil {
		t.Fatal("expected error for invalid document")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if store.Exists() {
		t.Error("invalid document should not be written")
	}
}

func TestFileStorage_Save_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStorage(filepath.Join(dir, DataFileName))

	doc := NewDocument()
	doc.Put(MustDate("2024-01-01"), NewEntry(""))
	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	for _, dirEntry := range dirEntries {
		if name := dirEntry.Name(); len(name) > 0 && name[0] == '.' {
			t.Errorf("temp file left behind: %s", name)
		}
	}
}

// --- LoadOrSeed Tests ---

func TestFileStorage_LoadOrSeed_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)
	store := NewFileStorage(path)
	seeder := NewSeeder(fixedIntN(0))

	doc, added, err := store.LoadOrSeed(seeder, "")
	if err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}

	if added == 0 {
		t.Error("first run should seed entries")
	}
	if added != doc.Count() {
		t.Errorf("added = %d but Count() = %d, want equal on first run", added, doc.Count())
	}
	if doc.Get(SeedStart) == nil {
		t.Errorf("expected placeholder for start date %s", SeedStart)
	}
	if doc.Get(Today()) == nil {
		t.Error("expected placeholder for today")
	}
	if !store.Exists() {
		t.Error("first run should create the data file")
	}

	// Reload from disk: the placeholders persisted.
	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after seed error = %v", err)
	}
	if reloaded.Count() != doc.Count() {
		t.Errorf("reloaded Count() = %d, want %d", reloaded.Count(), doc.Count())
	}
}

func TestFileStorage_LoadOrSeed_SecondRunAddsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)
	store := NewFileStorage(path)
	seeder := NewSeeder(fixedIntN(1))

	if _, _, err := store.LoadOrSeed(seeder, ""); err != nil {
		t.Fatalf("first LoadOrSeed() error = %v", err)
	}

	doc, added, err := store.LoadOrSeed(seeder, "")
	if err != nil {
		t.Fatalf("second LoadOrSeed() error = %v", err)
	}
	if added != 0 {
		t.Errorf("second run added = %d, want 0", added)
	}
	if doc.Count() == 0 {
		t.Error("second run should still see the seeded entries")
	}
}

func TestFileStorage_LoadOrSeed_PreservesEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)
	store := NewFileStorage(path)
	seeder := NewSeeder(fixedIntN(2))

	doc, _, err := store.LoadOrSeed(seeder, "")
	if err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}

	// Edit an entry and save, then seed again.
	entry := doc.Get(MustDate("2024-01-15"))
	entry.Journal = "mi texto, no el generado"
	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, added, err := store.LoadOrSeed(seeder, "")
	if err != nil {
		t.Fatalf("LoadOrSeed() after edit error = %v", err)
	}
	if added != 0 {
		t.Errorf("added = %d, want 0", added)
	}
	if got := reloaded.Get(MustDate("2024-01-15")).Journal; got != "mi texto, no el generado" {
		t.Errorf("Journal = %q, edit did not survive reload", got)
	}
}

func TestFileStorage_LoadOrSeed_UpgradesLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DataFileName)
	writeDataFile(t, path, []byte(`{
		"2024-01-01": {"journal": "texto viejo", "poetry": "verso viejo"}
	}`))

	store := NewFileStorage(path)
	doc, _, err := store.LoadOrSeed(NewSeeder(fixedIntN(0)), "")
	if err != nil {
		t.Fatalf("LoadOrSeed() error = %v", err)
	}

	// The old entry survives the upgrade.
	if got := doc.Get(MustDate("2024-01-01")).Journal; got != "texto viejo" {
		t.Errorf("Journal = %q, want legacy text preserved", got)
	}

	// The rewritten file carries the schema envelope.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read rewritten file: %v", err)
	}
	if !strings.Contains(string(data), SchemaVersion) {
		t.Error("rewritten file should carry the schema marker")
	}
}

// --- Exists Tests ---

func TestFileStorage_Exists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DataFileName)
	store := NewFileStorage(path)

	if store.Exists() {
		t.Error("expected Exists() false before any write")
	}

	writeDataFile(t, path, []byte("{}"))
	if !store.Exists() {
		t.Error("expected Exists() true after write")
	}

	dirStore := NewFileStorage(dir)
	if dirStore.Exists() {
		t.Error("a directory at the path should not count as the data file")
	}
}
