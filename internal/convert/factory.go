// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdiddy/docling-extract/internal/container"
	"github.com/pdiddy/docling-extract/pkg/types"
)

// New builds the Converter selected by cfg.Backend.
func New(cfg types.EngineConfig) (Converter, error) {
	switch cfg.Backend {
	case types.BackendContainer, "":
		rt, err := container.DetectRuntime(cfg.Runtime)
		if err != nil {
			return nil, err
		}
		c, err := NewContainerConverter(rt, cfg.Image)
		if err != nil {
			return nil, err
		}
		return c, nil
	case types.BackendCommand:
		c, err := NewCommandConverter(container.OSExecutor{}, cfg.Command)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown engine backend %q: want %s or %s",
			cfg.Backend, types.BackendContainer, types.BackendCommand)
	}
}
