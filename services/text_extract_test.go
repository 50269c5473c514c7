package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	t.Run("Plain text passthrough", func(t *testing.T) {
		content := "Civil Action No. 24-CV-1234\n/s/ Jane Doe"
		assert.Equal(t, content, ExtractText("motion.txt", "text/plain", []byte(content)))
		assert.Equal(t, content, ExtractText("notes.md", "", []byte(content)))
	})

	t.Run("HTML is stripped to text", func(t *testing.T) {
		html := `<html><body><h1>Motion</h1><p>Civil Action No. <b>24-CV-1234</b></p></body></html>`
		text := ExtractText("motion.html", "text/html", []byte(html))
		assert.NotContains(t, text, "<")
		assert.Contains(t, text, "Motion")
		assert.Contains(t, text, "24-CV-1234")
	})

	t.Run("Mime type decides when the extension is missing", func(t *testing.T) {
		text := ExtractText("upload", "text/plain", []byte("plain content"))
		assert.Equal(t, "plain content", text)
	})

	t.Run("Malformed PDF degrades to placeholder", func(t *testing.T) {
		text := ExtractText("broken.pdf", "application/pdf", []byte("not a pdf"))
		assert.Contains(t, text, "broken.pdf")
		assert.Contains(t, text, "Manual review")
	})

	t.Run("Unsupported formats get a placeholder", func(t *testing.T) {
		text := ExtractText("scan.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte{0x50, 0x4b})
		assert.Contains(t, text, "scan.docx")
		assert.Contains(t, text, "not supported")
	})
}

func TestExtractionPlaceholder(t *testing.T) {
	// Placeholder uses the base name only, not the full path
	text := extractionPlaceholder("owners/abc/documents/scan.tiff")
	assert.Contains(t, text, "scan.tiff")
	assert.NotContains(t, text, "owners/")
}
