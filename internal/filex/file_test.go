package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "a", "b")

	got, err := EnsureDir(dir)
	if err != nil {
		t.Fatalf("EnsureDir error: %v", err)
	}

	info, err := os.Stat(got)
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory at %s", got)
	}
}

func TestEnsureDir_ExistingIsFine(t *testing.T) {
	base := t.TempDir()
	if _, err := EnsureDir(base); err != nil {
		t.Fatalf("EnsureDir on existing dir: %v", err)
	}
}
