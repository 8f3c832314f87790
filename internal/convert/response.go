// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/docling-extract/internal/document"
)

// Response statuses reported by the engine.
const (
	statusSuccess        = "success"
	statusPartialSuccess = "partial_success"
	statusFailure        = "failure"
	statusSkipped        = "skipped"
)

// response mirrors the docling-serve conversion response envelope.
type response struct {
	Status         string          `json:"status"`
	Errors         []responseError `json:"errors"`
	ProcessingTime *float64        `json:"processing_time"`
	Document       *exportDocument `json:"document"`
}

type responseError struct {
	ComponentType string `json:"component_type"`
	ModuleName    string `json:"module_name"`
	ErrorMessage  string `json:"error_message"`
}

// exportDocument holds the export formats the engine was asked for. A nil
// field means the engine did not produce that format.
type exportDocument struct {
	Filename    string           `json:"filename"`
	TextContent *string          `json:"text_content"`
	MDContent   *string          `json:"md_content"`
	JSONContent *doclingDocument `json:"json_content"`

	// ExportErrors maps an export name ("text", "markdown", "json") to the
	// message of the engine error that left it null.
	ExportErrors map[string]string `json:"export_errors"`
}

// Export names used as keys of exportDocument.ExportErrors.
const (
	exportText     = "text"
	exportMarkdown = "markdown"
)

// doclingDocument is the subset of the DoclingDocument JSON schema used here.
type doclingDocument struct {
	Name     string              `json:"name"`
	Texts    []textItem          `json:"texts"`
	Tables   []tableItem         `json:"tables"`
	Pictures []pictureItem       `json:"pictures"`
	Pages    map[string]pageItem `json:"pages"`
}

type provenance struct {
	PageNo int `json:"page_no"`
}

type textItem struct {
	Label string       `json:"label"`
	Text  string       `json:"text"`
	Prov  []provenance `json:"prov"`
}

type tableCell struct {
	Text string `json:"text"`
}

type tableItem struct {
	Prov []provenance `json:"prov"`
	Data struct {
		TableCells []tableCell `json:"table_cells"`
	} `json:"data"`
}

type pictureItem struct {
	Prov []provenance `json:"prov"`
}

type pageItem struct {
	PageNo int `json:"page_no"`
}

// DecodeResponse parses an engine response envelope. A failure or skipped
// status is reported as an error wrapping ErrEngineFailed.
func DecodeResponse(data []byte) (*Conversion, error) {
	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing engine response: %w", err)
	}

	switch resp.Status {
	case "", statusSuccess, statusPartialSuccess:
	case statusFailure, statusSkipped:
		return nil, fmt.Errorf("%w: status %s%s", ErrEngineFailed, resp.Status, joinErrors(resp.Errors))
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrEngineFailed, resp.Status)
	}

	if resp.Document == nil {
		return nil, fmt.Errorf("%w: response has no document", ErrEngineFailed)
	}

	conv := &Conversion{Document: buildDocument(resp.Document)}
	if resp.ProcessingTime != nil {
		conv.ProcessingTime = *resp.ProcessingTime
	}
	return conv, nil
}

func joinErrors(errs []responseError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.ErrorMessage != "" {
			msgs = append(msgs, e.ErrorMessage)
		}
	}
	if len(msgs) == 0 {
		return ""
	}
	return ": " + strings.Join(msgs, "; ")
}

func buildDocument(exp *exportDocument) *document.Document {
	doc := &document.Document{}

	doc.ExportText = exportFunc(exp.TextContent, exp.ExportErrors[exportText])
	doc.ExportMarkdown = exportFunc(exp.MDContent, exp.ExportErrors[exportMarkdown])

	dd := exp.JSONContent
	if dd == nil {
		return doc
	}

	if doc.ExportMarkdown == nil {
		texts := dd.Texts
		doc.ExportMarkdown = func() (string, error) { return renderMarkdown(texts), nil }
	}
	if dd.Pages != nil {
		doc.Pages = buildPages(dd)
	}
	if dd.Tables != nil {
		doc.Tables = make([]document.Table, 0, len(dd.Tables))
		for _, t := range dd.Tables {
			doc.Tables = append(doc.Tables, document.Table{Page: firstPage(t.Prov), Cells: cells(t)})
		}
	}
	if dd.Pictures != nil {
		doc.Figures = make([]document.Figure, 0, len(dd.Pictures))
		for _, p := range dd.Pictures {
			doc.Figures = append(doc.Figures, document.Figure{Page: firstPage(p.Prov)})
		}
	}
	return doc
}

// exportFunc turns one export of the envelope into a capability. A reported
// export error wins over a missing value; with neither the capability is absent.
func exportFunc(content *string, errMsg string) func() (string, error) {
	switch {
	case content != nil:
		value := *content
		return func() (string, error) { return value, nil }
	case errMsg != "":
		err := errors.New(errMsg)
		return func() (string, error) { return "", err }
	}
	return nil
}

// buildPages orders pages by number and attaches the text items and table
// cells whose first provenance points at each page.
func buildPages(dd *doclingDocument) []document.Page {
	pages := make([]document.Page, 0, len(dd.Pages))
	index := make(map[int]int, len(dd.Pages))
	for key, p := range dd.Pages {
		n := p.PageNo
		if n == 0 {
			n, _ = strconv.Atoi(key)
		}
		pages = append(pages, document.Page{Number: n})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })
	for i, p := range pages {
		index[p.Number] = i
	}

	lines := make(map[int][]string)
	for _, t := range dd.Texts {
		n := firstPage(t.Prov)
		if _, ok := index[n]; !ok || t.Text == "" {
			continue
		}
		lines[n] = append(lines[n], t.Text)
	}
	for n, l := range lines {
		pages[index[n]].Text = strings.Join(l, "\n")
	}

	for _, t := range dd.Tables {
		i, ok := index[firstPage(t.Prov)]
		if !ok {
			continue
		}
		pages[i].Cells = append(pages[i].Cells, cells(t)...)
	}
	return pages
}

func cells(t tableItem) []document.Cell {
	out := make([]document.Cell, 0, len(t.Data.TableCells))
	for _, c := range t.Data.TableCells {
		out = append(out, document.Cell{Text: c.Text})
	}
	return out
}

func firstPage(prov []provenance) int {
	if len(prov) == 0 {
		return 0
	}
	return prov[0].PageNo
}
