// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// result is the canned outcome of one captured command.
type result struct {
	stdout string
	stderr string
	err    error
}

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool   // binary -> whether LookPath succeeds
	results       map[string]result // "bin arg1 arg2" -> captured outcome
	streamFunc    func(name string, args []string, progress io.Writer) error
	calls         []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Capture(_ context.Context, name string, args ...string) (string, string, error) {
	key := name + " " + strings.Join(args, " ")
	m.calls = append(m.calls, key)
	r, ok := m.results[key]
	if !ok {
		return "", "", errors.New("command failed: " + key)
	}
	return r.stdout, r.stderr, r.err
}

func (m *mockExecutor) Stream(_ context.Context, name string, args []string, progress io.Writer) error {
	m.calls = append(m.calls, name+" "+strings.Join(args, " "))
	if m.streamFunc != nil {
		return m.streamFunc(name, args, progress)
	}
	return nil
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		exec    *mockExecutor
		wantErr error
	}{
		{
			name: "installed and running",
			exec: &mockExecutor{
				availableBins: map[string]bool{"ollama": true},
				results:       map[string]result{"ollama list": {stdout: "NAME\nllama3.2:latest\n"}},
			},
		},
		{
			name:    "executable missing",
			exec:    &mockExecutor{availableBins: map[string]bool{}},
			wantErr: ErrExecutableNotFound,
		},
		{
			name: "daemon writes to stderr",
			exec: &mockExecutor{
				availableBins: map[string]bool{"ollama": true},
				results:       map[string]result{"ollama list": {stderr: "Error: could not connect to ollama app"}},
			},
			wantErr: ErrRunnerNotReady,
		},
		{
			name: "list exits non-zero",
			exec: &mockExecutor{
				availableBins: map[string]bool{"ollama": true},
				results:       map[string]result{"ollama list": {err: errors.New("exit status 1")}},
			},
			wantErr: ErrRunnerNotReady,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newOllama(tt.exec).Check(context.Background())
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckSkipsListWhenNotInstalled(t *testing.T) {
	m := &mockExecutor{availableBins: map[string]bool{}}
	_ = newOllama(m).Check(context.Background())
	assert.Empty(t, m.calls, "no process should run when the binary is missing")
}

func TestCheckCancelled(t *testing.T) {
	m := &mockExecutor{
		availableBins: map[string]bool{"ollama": true},
		results:       map[string]result{"ollama list": {err: errors.New("signal: killed")}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newOllama(m).Check(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHasModel(t *testing.T) {
	tests := []struct {
		name string
		res  result
		ok   bool
		want bool
	}{
		{name: "present", res: result{stdout: "Model\n  architecture llama\n"}, ok: true, want: true},
		{name: "stderr means absent", res: result{stderr: "Error: model 'x' not found"}, ok: true},
		{name: "failure means absent", res: result{err: errors.New("exit status 1")}, ok: true},
		{name: "unknown command means absent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockExecutor{results: map[string]result{}}
			if tt.ok {
				m.results["ollama show llama3.2"] = tt.res
			}
			got, err := newOllama(m).HasModel(context.Background(), "llama3.2")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPull(t *testing.T) {
	var gotArgs []string
	m := &mockExecutor{
		streamFunc: func(name string, args []string, progress io.Writer) error {
			gotArgs = args
			fmt.Fprint(progress, "pulling manifest\nsuccess\n")
			return nil
		},
	}

	var progress bytes.Buffer
	require.NoError(t, newOllama(m).Pull(context.Background(), "llama3.2", &progress))
	assert.Equal(t, []string{"pull", "llama3.2"}, gotArgs)
	assert.Contains(t, progress.String(), "success")
}

func TestPullError(t *testing.T) {
	m := &mockExecutor{
		streamFunc: func(string, []string, io.Writer) error { return errors.New("exit status 1") },
	}
	err := newOllama(m).Pull(context.Background(), "nope", io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pulling model nope")
}

func TestRun(t *testing.T) {
	m := &mockExecutor{
		results: map[string]result{
			"ollama run llama3.2 Summarize this.": {stdout: "summary: ok\n\nkeywords: a, b\n", stderr: "⠋ ⠙ ⠹"},
		},
	}
	out, err := newOllama(m).Run(context.Background(), "llama3.2", "Summarize this.")
	require.NoError(t, err)
	assert.Equal(t, "summary: ok\n\nkeywords: a, b\n", out)
}

func TestRunError(t *testing.T) {
	m := &mockExecutor{
		results: map[string]result{"ollama run llama3.2 p": {err: errors.New("exit status 1")}},
	}
	_, err := newOllama(m).Run(context.Background(), "llama3.2", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running model llama3.2")
}

func TestName(t *testing.T) {
	assert.Equal(t, "ollama", NewOllama().Name())
}
