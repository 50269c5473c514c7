package services

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/microcosm-cc/bluemonday"
)

// htmlStripper removes all markup from HTML uploads, leaving plain text
var htmlStripper = bluemonday.StrictPolicy()

// ExtractText derives best-effort plain text from uploaded document bytes.
// Unsupported or unparseable formats return a diagnostic placeholder string,
// never an error: degraded extraction must not block the upload flow.
func ExtractText(filename string, mimeType string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case ext == ".txt" || ext == ".md" || strings.HasPrefix(mimeType, "text/plain"):
		return string(data)

	case ext == ".html" || ext == ".htm" || strings.HasPrefix(mimeType, "text/html"):
		return strings.TrimSpace(htmlStripper.Sanitize(string(data)))

	case ext == ".pdf" || mimeType == "application/pdf":
		text, err := extractPDFText(data)
		if err != nil {
			log.Printf("[WARNING] PDF text extraction failed for %s: %v", filename, err)
			return extractionPlaceholder(filename)
		}
		return text

	default:
		return extractionPlaceholder(filename)
	}
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}

// extractionPlaceholder is the documented degradation marker for formats we
// cannot extract
func extractionPlaceholder(filename string) string {
	return fmt.Sprintf("[Text extraction is not supported for %s. Manual review of the original file is required.]", filepath.Base(filename))
}
