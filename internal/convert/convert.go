// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert hands documents to the docling conversion engine and
// decodes its response into a document.Document.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/docling-extract/internal/document"
)

// ErrEngineFailed is returned when the engine reports a failed or skipped
// conversion, or produces no usable response.
var ErrEngineFailed = errors.New("docling conversion failed")

// Conversion is the outcome of a successful engine run.
type Conversion struct {
	Document *document.Document

	// ProcessingTime is the engine-reported duration in seconds, 0 if unknown.
	ProcessingTime float64
}

// Converter transforms a document file into a structured model. The
// container and command backends implement this interface.
type Converter interface {
	// Convert reads the file at path and returns the engine's model of it.
	Convert(path string) (*Conversion, error)
}

// decodeOutput turns raw engine stdout into a Conversion. stderr is only used
// to make error messages useful.
func decodeOutput(path string, stdout, stderr *bytes.Buffer) (*Conversion, error) {
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%w: engine produced empty output for %s%s",
			ErrEngineFailed, path, stderrSuffix(stderr))
	}
	conv, err := DecodeResponse(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decoding engine output for %s: %w", path, err)
	}
	return conv, nil
}

// stderrSuffix formats the engine's stderr for inclusion in an error message.
func stderrSuffix(stderr *bytes.Buffer) string {
	if stderr == nil {
		return ""
	}
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return ""
	}
	return ": " + lastLine(msg)
}

// lastLine returns the final line of s; engine tracebacks end with the cause.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
