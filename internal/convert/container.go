// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/docling-extract/internal/container"
)

// ContainerConverter converts documents by piping them through a docling
// image. The image reads the document on stdin, takes the original file name
// as its only argument, and writes a response envelope on stdout.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
}

// NewContainerConverter creates a converter that uses the given container
// runtime to run image. It verifies that the image exists locally before
// returning.
func NewContainerConverter(rt container.Runtime, image string) (*ContainerConverter, error) {
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("docling image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{runtime: rt, image: image}, nil
}

// Convert streams the file at path through the docling container and decodes
// the response.
func (c *ContainerConverter) Convert(path string) (*Conversion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var out, errOut bytes.Buffer
	spec := container.RunSpec{Image: c.image, Args: []string{filepath.Base(path)}}
	if err := c.runtime.Run(spec, f, &out, &errOut); err != nil {
		return nil, fmt.Errorf("converting %s with docling: %w%s", path, err, stderrSuffix(&errOut))
	}

	return decodeOutput(path, &out, &errOut)
}
