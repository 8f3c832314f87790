// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"

	"github.com/pdiddy/docling-extract/internal/container"
)

// CommandConverter runs a local docling wrapper executable. The executable
// receives the file path as its only argument and writes a response envelope
// on stdout.
type CommandConverter struct {
	exec    container.Executor
	command string
}

// NewCommandConverter resolves command on PATH and returns a converter that
// runs it through exec.
func NewCommandConverter(exec container.Executor, command string) (*CommandConverter, error) {
	bin, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("docling command %s not found: %w", command, err)
	}
	return &CommandConverter{exec: exec, command: bin}, nil
}

// Convert runs the wrapper on path and decodes its response.
func (c *CommandConverter) Convert(path string) (*Conversion, error) {
	var out, errOut bytes.Buffer
	if err := c.exec.RunPiped(c.command, []string{path}, nil, &out, &errOut); err != nil {
		return nil, fmt.Errorf("running %s on %s: %w%s", c.command, path, err, stderrSuffix(&errOut))
	}
	return decodeOutput(path, &out, &errOut)
}
