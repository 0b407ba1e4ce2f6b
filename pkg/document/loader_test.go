package document

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExtractsHeadingIDsInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "# First Heading\n\ntext\n\n## Second, With Punctuation!\n\n### First Heading\n")

	cache := NewCache()
	loaded, err := cache.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Document order, duplicates kept.
	expected := []string{"first-heading", "second-with-punctuation", "first-heading"}
	if !slices.Equal(loaded.HeadingIDs, expected) {
		t.Errorf("HeadingIDs = %v, want %v", loaded.HeadingIDs, expected)
	}
}

func TestLoadIsMemoized(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "# Heading\n")

	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the file after the first load must not change the cached
	// result: the second access is a cache hit, not a re-parse.
	if err := os.WriteFile(path, []byte("# Changed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("second Load returned a different entry; expected a cache hit")
	}
	if !slices.Equal(second.HeadingIDs, []string{"heading"}) {
		t.Errorf("HeadingIDs after cache hit = %v, want [heading]", second.HeadingIDs)
	}
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %d, want 1", cache.Len())
	}
}

func TestLoadRejectsRelativePath(t *testing.T) {
	t.Parallel()

	cache := NewCache()
	if _, err := cache.Load("relative/doc.md"); err == nil {
		t.Error("Load with a relative path succeeded, want internal error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "gone.md")); err == nil {
		t.Error("Load of a missing file succeeded, want error")
	}
}

func TestLoadToleratesInvalidUTF8(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.md")
	// "# Caf<0xE9>\n" in Latin-1: 0xE9 is not valid UTF-8.
	if err := os.WriteFile(path, []byte{'#', ' ', 'C', 'a', 'f', 0xE9, '\n'}, 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewCache()
	loaded, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load of invalid UTF-8 failed: %v", err)
	}
	if len(loaded.HeadingIDs) != 1 {
		t.Fatalf("HeadingIDs = %v, want one entry", loaded.HeadingIDs)
	}
	// The bad byte is substituted, never fatal.
	if loaded.HeadingIDs[0] != "caf" {
		t.Errorf("heading id = %q, want %q", loaded.HeadingIDs[0], "caf")
	}
}
