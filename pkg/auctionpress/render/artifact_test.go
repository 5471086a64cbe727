package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteArtifactOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.html")

	if err := WriteArtifact(path, []byte("first version")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteArtifact(path, []byte("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected wholesale overwrite, got %q", data)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the artifact in the directory, found %d entries", len(entries))
	}
}

func TestWriteArtifactMissingDir(t *testing.T) {
	err := WriteArtifact(filepath.Join(t.TempDir(), "missing", "catalogue.html"), []byte("x"))
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
