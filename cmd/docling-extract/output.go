// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/docling-extract/pkg/types"
)

// writeResult prints res as indented JSON. Non-ASCII and HTML characters are
// written literally.
func writeResult(w io.Writer, res types.ExtractionResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// writePreflight prints the single-line error object used before any
// conversion starts: {"success": false, "error": "..."}.
func writePreflight(w io.Writer, msg string) error {
	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "{\"success\": false, \"error\": %s}\n", bytes.TrimSpace(quoted.Bytes()))
	return err
}
