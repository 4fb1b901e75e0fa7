// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner drives the local model runner (the ollama executable):
// checking that it is installed and its daemon is reachable, ensuring a
// model is present, and running a prompt against it.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const binOllama = "ollama"

var (
	// ErrExecutableNotFound means the runner binary is not on PATH.
	ErrExecutableNotFound = errors.New("ollama executable not found")

	// ErrRunnerNotReady means the binary exists but its background daemon
	// does not answer.
	ErrRunnerNotReady = errors.New("ollama daemon is not running")
)

// ModelRunner is the capability the summarize stage needs from the local
// model runner. Every call blocks until the underlying process exits.
type ModelRunner interface {
	// Check verifies the runner is installed and its daemon is reachable.
	// It returns an error wrapping ErrExecutableNotFound or ErrRunnerNotReady.
	Check(ctx context.Context) error

	// HasModel reports whether model is available locally.
	HasModel(ctx context.Context, model string) (bool, error)

	// Pull downloads model, writing the runner's progress output to progress.
	Pull(ctx context.Context, model string, progress io.Writer) error

	// Run sends prompt to model and returns the complete text output.
	Run(ctx context.Context, model, prompt string) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Capture(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
	Stream(ctx context.Context, name string, args []string, progress io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Capture(ctx context.Context, name string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (o *osExecutor) Stream(ctx context.Context, name string, args []string, progress io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = progress
	cmd.Stderr = progress
	return cmd.Run()
}

// Ollama implements ModelRunner by invoking the ollama CLI.
type Ollama struct {
	bin  string
	exec executor
}

var defaultExec = &osExecutor{}

// NewOllama returns a ModelRunner backed by the ollama binary on PATH.
func NewOllama() *Ollama {
	return newOllama(defaultExec)
}

func newOllama(exec executor) *Ollama {
	return &Ollama{bin: binOllama, exec: exec}
}

// Name returns the runner binary name.
func (o *Ollama) Name() string { return o.bin }

// Check runs "ollama list". Any output on stderr means the daemon is not
// serving requests.
func (o *Ollama) Check(ctx context.Context) error {
	if _, err := o.exec.LookPath(o.bin); err != nil {
		return fmt.Errorf("%w: install it from https://ollama.com/download", ErrExecutableNotFound)
	}

	_, stderr, err := o.exec.Capture(ctx, o.bin, "list")
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil || strings.TrimSpace(stderr) != "" {
		return fmt.Errorf("%w: start it with 'systemctl start ollama'", ErrRunnerNotReady)
	}
	return nil
}

// HasModel runs "ollama show <model>". A failure or any stderr output
// means the model must be pulled first.
func (o *Ollama) HasModel(ctx context.Context, model string) (bool, error) {
	_, stderr, err := o.exec.Capture(ctx, o.bin, "show", model)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	return err == nil && strings.TrimSpace(stderr) == "", nil
}

// Pull runs "ollama pull <model>" and blocks until the download completes.
func (o *Ollama) Pull(ctx context.Context, model string, progress io.Writer) error {
	if err := o.exec.Stream(ctx, o.bin, []string{"pull", model}, progress); err != nil {
		return fmt.Errorf("pulling model %s: %w", model, err)
	}
	return nil
}

// Run runs "ollama run <model> <prompt>" and returns its stdout once the
// process exits. The runner's stderr carries only spinner noise and is
// dropped.
func (o *Ollama) Run(ctx context.Context, model, prompt string) (string, error) {
	stdout, _, err := o.exec.Capture(ctx, o.bin, "run", model, prompt)
	if err != nil {
		return "", fmt.Errorf("running model %s: %w", model, err)
	}
	return stdout, nil
}
