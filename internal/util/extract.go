package util

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// MaxResumeChars bounds the resume text forwarded to the model.
const MaxResumeChars = 12000

var ErrExtraction = errors.New("text extraction failed")

// DetectMimeType returns the declared type unless it is missing or generic,
// in which case the content is sniffed.
func DetectMimeType(declared string, data []byte) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(data)
}

// ExtractText returns the plain text of an uploaded document. PDFs go through
// MuPDF; everything else is read as UTF-8.
func ExtractText(data []byte, mimeType string) (string, error) {
	if strings.Contains(strings.ToLower(mimeType), "pdf") {
		return extractPDFText(data)
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrExtraction, err)
	}
	defer doc.Close()
	if doc.NumPage() == 0 {
		return "", fmt.Errorf("%w: PDF has no pages", ErrExtraction)
	}

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, n+1, err)
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(pageText)
	}

	Logger().WithField("pages", doc.NumPage()).WithField("chars", b.Len()).Debug("pdf text extracted")
	return b.String(), nil
}

// Truncate keeps at most limit characters of text. It never splits a
// multi-byte character.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) <= limit {
		return text
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}
