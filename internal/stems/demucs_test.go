package stems

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyWithProgress(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "vocals.wav")
	dst := filepath.Join(dir, "track_vocals.wav")

	payload := []byte("fake wav payload")
	if err := os.WriteFile(src, payload, 0644); err != nil {
		t.Fatal(err)
	}

	if err := copyWithProgress(src, dst); err != nil {
		t.Fatalf("copyWithProgress: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Errorf("copied payload mismatch: %q", got)
	}
}

func TestCopyWithProgressMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := copyWithProgress(filepath.Join(dir, "missing.wav"), filepath.Join(dir, "out.wav"))
	if err == nil {
		t.Error("expected error for missing source")
	}
}
