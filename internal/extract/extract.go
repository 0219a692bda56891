// Package extract converts resume files into plain text for the parser and
// scorer. PDF, DOCX, and TXT are supported; scanned PDFs come back empty and
// surface as a no-text error downstream.
package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	apperrors "jobsprint/internal/errors"
)

// FromFile reads a resume file and returns its plain text. The file type is
// chosen by extension.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.NewIOError(apperrors.ErrCodeFileNotFound,
				"file does not exist", err).WithContext("file", path)
		}
		return "", apperrors.NewIOError(apperrors.ErrCodeFileNotReadable,
			"failed to read file", err).WithContext("file", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF(data)
	case ".docx":
		return DOCX(data)
	case ".txt", ".md", ".text":
		return string(data), nil
	}
	return "", apperrors.NewValidationError(apperrors.ErrCodeUnsupportedFileType,
		"unsupported file type, use PDF, DOCX, or TXT", nil).WithContext("file", path)
}

// PDF extracts the plain text of every page. Null bytes seen in some PDFs
// are scrubbed.
func PDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewParseError(apperrors.ErrCodeInvalidFormat,
			"failed to parse PDF", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return strings.ReplaceAll(b.String(), "\x00", ""), nil
}

var (
	docxParaEndRe = regexp.MustCompile(`</w:p>`)
	docxTagRe     = regexp.MustCompile(`<[^>]+>`)
)

// DOCX extracts the document text. Paragraph boundaries become newlines so
// line-based heuristics keep working.
func DOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewParseError(apperrors.ErrCodeInvalidFormat,
			"failed to parse DOCX", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParaEndRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	).Replace(content)
	return content, nil
}
