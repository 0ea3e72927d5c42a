package fetch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewestFileWithExt(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	writeFile(t, dir, "old.wav", now.Add(-2*time.Hour))
	want := writeFile(t, dir, "new.wav", now)
	writeFile(t, dir, "ignored.mp3", now.Add(time.Hour))

	got, err := newestFileWithExt(dir, ".wav")
	if err != nil {
		t.Fatalf("newestFileWithExt: %v", err)
	}
	if got != want {
		t.Errorf("newestFileWithExt = %q, want %q", got, want)
	}
}

func TestNewestFileWithExtCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "track.WAV", time.Now())

	got, err := newestFileWithExt(dir, ".wav")
	if err != nil {
		t.Fatalf("newestFileWithExt: %v", err)
	}
	if got != want {
		t.Errorf("newestFileWithExt = %q, want %q", got, want)
	}
}

func TestNewestFileWithExtEmpty(t *testing.T) {
	if _, err := newestFileWithExt(t.TempDir(), ".wav"); err == nil {
		t.Error("expected error for directory without matches")
	}
}
