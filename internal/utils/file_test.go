package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	tests := []struct {
		name        string
		filename    string
		expectError bool
	}{
		{"existing file", path, false},
		{"empty filename", "", true},
		{"missing file", filepath.Join(dir, "missing.txt"), true},
		{"directory", dir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputFile(tt.filename)
			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, make([]byte, 100), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	if err := ValidateFileSize(path, 200); err != nil {
		t.Errorf("file under limit should pass: %v", err)
	}
	if err := ValidateFileSize(path, 50); err == nil {
		t.Error("file over limit should fail")
	}
	// Zero disables the check
	if err := ValidateFileSize(path, 0); err != nil {
		t.Errorf("zero limit should disable the check: %v", err)
	}
}

func TestIsSupportedResumeFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"resume.pdf", true},
		{"resume.docx", true},
		{"resume.txt", true},
		{"resume.md", true},
		{"resume.text", true},
		{"RESUME.PDF", true},
		{"resume.doc", false},
		{"resume.odt", false},
		{"resume", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := IsSupportedResumeFile(tt.filename); got != tt.expected {
				t.Errorf("IsSupportedResumeFile(%q) = %v, want %v", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatFileSize(tt.size); got != tt.expected {
				t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.expected)
			}
		})
	}
}
