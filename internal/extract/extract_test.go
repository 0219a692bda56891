package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "jobsprint/internal/errors"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestFromFilePlainText(t *testing.T) {
	content := "Jane Doe\njane@example.com\n\nExperience\n- Led things."

	for _, ext := range []string{"resume.txt", "resume.md", "resume.text", "RESUME.TXT"} {
		t.Run(ext, func(t *testing.T) {
			path := writeTempFile(t, ext, content)
			text, err := FromFile(path)
			if err != nil {
				t.Fatalf("FromFile failed: %v", err)
			}
			if text != content {
				t.Errorf("text = %q, want %q", text, content)
			}
		})
	}
}

func TestFromFileNotFound(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeFileNotFound {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.ErrCodeFileNotFound)
	}
}

func TestFromFileUnsupportedType(t *testing.T) {
	path := writeTempFile(t, "resume.odt", "some content")

	_, err := FromFile(path)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeUnsupportedFileType {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.ErrCodeUnsupportedFileType)
	}
}

func TestPDFRejectsGarbage(t *testing.T) {
	_, err := PDF([]byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected error for invalid PDF bytes")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeInvalidFormat {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.ErrCodeInvalidFormat)
	}
}

func TestDOCXRejectsGarbage(t *testing.T) {
	_, err := DOCX([]byte("this is not a docx archive"))
	if err == nil {
		t.Fatal("expected error for invalid DOCX bytes")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeInvalidFormat {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.ErrCodeInvalidFormat)
	}
}
