package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadResumeFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.md")
	if err := os.WriteFile(first, []byte("Jane Doe\njane@example.com"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := os.WriteFile(second, []byte("# John Smith"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fp := NewFileProcessor(nil)
	contents, err := fp.ReadResumeFiles(0, first, second)
	if err != nil {
		t.Fatalf("ReadResumeFiles failed: %v", err)
	}
	if len(contents) != 2 {
		t.Fatalf("len(contents) = %d, want 2", len(contents))
	}
	if !strings.Contains(contents[0], "jane@example.com") {
		t.Errorf("contents[0] = %q", contents[0])
	}
	if contents[1] != "# John Smith" {
		t.Errorf("contents[1] = %q", contents[1])
	}
}

func TestReadResumeFilesMissingFile(t *testing.T) {
	fp := NewFileProcessor(nil)
	_, err := fp.ReadResumeFiles(0, filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadResumeFilesTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fp := NewFileProcessor(nil)
	_, err := fp.ReadResumeFiles(1024, path)
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("error = %v", err)
	}
}

func TestReadResumeFilesUnrecognizedExtensionReadAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.rtf")
	if err := os.WriteFile(path, []byte("plain fallback"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fp := NewFileProcessor(nil)
	contents, err := fp.ReadResumeFiles(0, path)
	if err != nil {
		t.Fatalf("ReadResumeFiles failed: %v", err)
	}
	if contents[0] != "plain fallback" {
		t.Errorf("contents[0] = %q", contents[0])
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "result.json")

	fp := NewFileProcessor(nil)
	if err := fp.WriteFile(path, `{"ok":true}`); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("content = %q", data)
	}
}
