// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a converted document into plain text by trying
// extraction strategies in a fixed order until one succeeds.
//
// The order is: direct text export, structured per-page text, Markdown
// export, and for PDFs only, the pdftext reader. Text that looks garbled is
// never accepted from the direct export. When every strategy fails the
// result carries a diagnostic text instead of an error, because the
// conversion itself succeeded.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/docling-extract/internal/convert"
	"github.com/pdiddy/docling-extract/internal/document"
	"github.com/pdiddy/docling-extract/pkg/types"
)

// minFallbackLength is the trimmed length the PDF reader's text must exceed.
const minFallbackLength = 10

// PDFReader extracts text from a PDF file without the conversion engine.
type PDFReader interface {
	Extract(path string) (string, error)
}

// Extractor runs conversions and the extraction cascade.
type Extractor struct {
	pdf    PDFReader
	logger *zap.Logger
}

// New creates an Extractor. A nil pdf disables the PDF fallback and a nil
// logger discards diagnostics.
func New(pdf PDFReader, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{pdf: pdf, logger: logger}
}

// Process converts the file at path with c and builds the result record.
// A conversion error yields a failed result; everything after conversion
// yields a successful one.
func (e *Extractor) Process(c convert.Converter, path string) types.ExtractionResult {
	conv, err := c.Convert(path)
	if err != nil {
		e.logger.Debug("conversion failed", zap.String("file", path), zap.Error(err))
		return types.Failed(path, err.Error())
	}

	text, method := e.Text(conv.Document, path)
	e.logger.Debug("text extracted",
		zap.String("file", path),
		zap.String("method", string(method)),
		zap.Int("length", len(text)))

	return types.Succeeded(path, text, Collect(conv, method))
}

// Collect assembles metadata for a conversion whose text came from method.
func Collect(conv *convert.Conversion, method types.ExtractionMethod) types.Metadata {
	doc := conv.Document
	return types.Metadata{
		PageCount:        len(doc.Pages),
		HasTables:        len(doc.Tables) > 0,
		HasFigures:       len(doc.Figures) > 0,
		ProcessingTime:   conv.ProcessingTime,
		ExtractionMethod: method,
	}
}

// cascade is the state shared by the strategies of one extraction.
type cascade struct {
	doc  *document.Document
	path string

	// markdownErr is set by the markdown strategy when the export fails.
	markdownErr error
}

// strategy attempts one extraction. ok reports whether text is accepted.
type strategy func(e *Extractor, c *cascade) (text string, method types.ExtractionMethod, ok bool)

var strategies = []strategy{
	directText,
	structuredText,
	markdownText,
	pdfFallback,
	allFailed,
}

// Text runs the cascade over doc, which was converted from path, and returns
// the accepted text and the method that produced it. A panic raised by a
// document capability ends the cascade with MethodError.
func (e *Extractor) Text(doc *document.Document, path string) (text string, method types.ExtractionMethod) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("Text extraction failed: %v", r)
			method = types.MethodError
		}
	}()

	c := &cascade{doc: doc, path: path}
	for _, s := range strategies {
		if text, method, ok := s(e, c); ok {
			return text, method
		}
	}
	return "", types.MethodNone
}

func directText(e *Extractor, c *cascade) (string, types.ExtractionMethod, bool) {
	text, err := c.doc.Text()
	if err != nil {
		e.logger.Debug("direct text export failed", zap.Error(err))
		return "", "", false
	}
	if text == "" {
		return "", "", false
	}
	if Garbled(text) {
		e.logger.Debug("direct text export looks garbled", zap.Int("length", len(text)))
		return "", "", false
	}
	return text, types.MethodDirectText, true
}

func structuredText(_ *Extractor, c *cascade) (string, types.ExtractionMethod, bool) {
	text := StructuredText(c.doc.Pages)
	if text == "" {
		return "", "", false
	}
	return text, types.MethodStructured, true
}

// StructuredText joins the text of each page with blank lines. A page uses
// its own text when present, otherwise its space-joined cell texts. Pages
// dominated by slashes are dropped.
func StructuredText(pages []document.Page) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		text := p.Text
		if text == "" {
			cells := make([]string, 0, len(p.Cells))
			for _, cell := range p.Cells {
				if cell.Text != "" {
					cells = append(cells, cell.Text)
				}
			}
			text = strings.Join(cells, " ")
		}
		if text == "" || slashHeavy(text, utf8.RuneCountInString(text), pageSlashRatio) {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}

func markdownText(e *Extractor, c *cascade) (string, types.ExtractionMethod, bool) {
	md, err := c.doc.Markdown()
	if err != nil {
		e.logger.Debug("markdown export failed", zap.Error(err))
		c.markdownErr = err
		return "", "", false
	}
	return md, types.MethodMarkdown, true
}

func pdfFallback(e *Extractor, c *cascade) (string, types.ExtractionMethod, bool) {
	if c.markdownErr == nil || e.pdf == nil || !IsPDF(c.path) {
		return "", "", false
	}
	text, err := e.pdf.Extract(c.path)
	if err != nil {
		e.logger.Debug("pdf fallback failed", zap.String("file", c.path), zap.Error(err))
		return "", "", false
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) <= minFallbackLength {
		return "", "", false
	}
	return text, types.MethodPDFReader, true
}

func allFailed(_ *Extractor, c *cascade) (string, types.ExtractionMethod, bool) {
	return fmt.Sprintf("All text extraction methods failed. Markdown error: %v", c.markdownErr),
		types.MethodFailed, true
}

// IsPDF reports whether path has a .pdf extension, ignoring case.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
