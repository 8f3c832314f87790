// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document defines the in-memory model a conversion engine returns.
//
// Every engine capability is optional. Export functions are nil when the
// engine did not provide them, and collections are nil when the engine did
// not expose them at all (as opposed to exposing an empty list).
package document

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a capability the caller asked for is absent.
var ErrUnsupported = errors.New("capability not supported by document")

// Cell is one text-bearing cell of a page, typically a table cell.
type Cell struct {
	Text string
}

// Page holds the text the engine attributed to a single page.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Text is the page's own text, if the engine produced any.
	Text string

	// Cells are the page's constituent cells, used when Text is empty.
	Cells []Cell
}

// Table is a detected table. Only its presence matters to extraction.
type Table struct {
	Page  int
	Cells []Cell
}

// Figure is a detected picture or chart.
type Figure struct {
	Page    int
	Caption string
}

// Document is the structured model of one converted file.
type Document struct {
	// ExportText returns the whole document as plain text.
	ExportText func() (string, error)

	// ExportMarkdown returns the whole document as Markdown.
	ExportMarkdown func() (string, error)

	Pages   []Page
	Tables  []Table
	Figures []Figure
}

// Text calls ExportText, or returns an error wrapping ErrUnsupported when
// it is absent.
func (d *Document) Text() (string, error) {
	if d.ExportText == nil {
		return "", fmt.Errorf("text export: %w", ErrUnsupported)
	}
	return d.ExportText()
}

// Markdown calls ExportMarkdown, or returns an error wrapping ErrUnsupported
// when it is absent.
func (d *Document) Markdown() (string, error) {
	if d.ExportMarkdown == nil {
		return "", fmt.Errorf("markdown export: %w", ErrUnsupported)
	}
	return d.ExportMarkdown()
}
