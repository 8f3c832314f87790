// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container detects a local container runtime and runs conversion
// images through it.
package container

import (
	"fmt"
	"io"
	"os/exec"
)

const (
	binDocker = "docker"
	binPodman = "podman"

	// RuntimeAuto selects docker when it is operational, otherwise podman.
	RuntimeAuto = "auto"
)

// RunSpec describes a single container invocation.
type RunSpec struct {
	// Image is the image reference, e.g. "docling-json:latest".
	Image string

	// Args are passed to the image entrypoint after the image name.
	Args []string
}

// Runtime provides container operations: checking availability, verifying
// images, and running containers.
type Runtime interface {
	// Name returns the runtime name ("docker" or "podman").
	Name() string

	// Available reports whether the runtime binary exists on PATH and
	// responds to an info command.
	Available() bool

	// ImageExists checks whether the named image exists locally.
	ImageExists(image string) error

	// Run executes a container, piping stdin into it and collecting its
	// stdout and stderr.
	Run(spec RunSpec, stdin io.Reader, stdout, stderr io.Writer) error
}

// Executor abstracts command execution so that engines and tests can
// substitute their own process handling.
type Executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// OSExecutor is the production executor backed by os/exec.
type OSExecutor struct{}

func (OSExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OSExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (OSExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runtime implements Runtime for a specific container binary. Docker and
// Podman differ only in binary name and the image existence subcommand.
type runtime struct {
	bin           string
	imageCheckCmd []string // e.g. ["image", "inspect"] for docker
	exec          Executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "info") == nil
}

func (r *runtime) ImageExists(image string) error {
	args := make([]string, 0, len(r.imageCheckCmd)+1)
	args = append(args, r.imageCheckCmd...)
	args = append(args, image)

	if err := r.exec.RunSilent(r.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, r.bin, err)
	}
	return nil
}

func (r *runtime) Run(spec RunSpec, stdin io.Reader, stdout, stderr io.Writer) error {
	args := make([]string, 0, 4+len(spec.Args))
	args = append(args, "run", "--rm", "-i", spec.Image)
	args = append(args, spec.Args...)
	if err := r.exec.RunPiped(r.bin, args, stdin, stdout, stderr); err != nil {
		return fmt.Errorf("running %s container %s: %w", r.bin, spec.Image, err)
	}
	return nil
}

func newDockerRuntime(exec Executor) *runtime {
	return &runtime{
		bin:           binDocker,
		imageCheckCmd: []string{"image", "inspect"},
		exec:          exec,
	}
}

func newPodmanRuntime(exec Executor) *runtime {
	return &runtime{
		bin:           binPodman,
		imageCheckCmd: []string{"image", "exists"},
		exec:          exec,
	}
}

// DetectRuntime returns the runtime named by preferred ("docker" or
// "podman"), or with "auto" or "" tries docker first and falls back to
// podman. It returns an error when the chosen runtime is not operational.
func DetectRuntime(preferred string) (Runtime, error) {
	return detectRuntime(OSExecutor{}, preferred)
}

func detectRuntime(exec Executor, preferred string) (Runtime, error) {
	var candidates []*runtime
	switch preferred {
	case "", RuntimeAuto:
		candidates = []*runtime{newDockerRuntime(exec), newPodmanRuntime(exec)}
	case binDocker:
		candidates = []*runtime{newDockerRuntime(exec)}
	case binPodman:
		candidates = []*runtime{newPodmanRuntime(exec)}
	default:
		return nil, fmt.Errorf("unknown container runtime %q: want %s, %s or %s",
			preferred, RuntimeAuto, binDocker, binPodman)
	}

	for _, rt := range candidates {
		if rt.Available() {
			return rt, nil
		}
	}

	if len(candidates) == 1 {
		return nil, fmt.Errorf("no container runtime available: %s not found or not operational", preferred)
	}
	return nil, fmt.Errorf(
		"no container runtime available: neither %s nor %s found or operational",
		binDocker, binPodman,
	)
}
