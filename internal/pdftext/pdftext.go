// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext reads the embedded text layer of a PDF without the
// conversion engine. Scanned, image-only pages yield no text.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts page text with github.com/ledongthuc/pdf.
type Reader struct{}

// Extract opens the PDF at path and returns the trimmed text of every page
// that could be read, in page order, separated by blank lines. Pages whose
// extraction fails are skipped. Only an unreadable file is an error.
func (Reader) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		text, err := pageText(r.Page(i))
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// pageText extracts one page. The parser panics on some malformed content
// streams; that is reported as an error for the page.
func pageText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading page: %v", r)
		}
	}()
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}
