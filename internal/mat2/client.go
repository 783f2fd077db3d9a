package mat2

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"matclean/internal/deps"
	"matclean/internal/fileutil"
	"matclean/internal/services"
)

// Cleaner defines the behaviour required by the orchestrator.
type Cleaner interface {
	Clean(ctx context.Context, path string) (string, error)
	Version(ctx context.Context) (string, error)
}

// Executor abstracts command execution for testability. Run returns the
// subprocess exit code and captured standard error; err is reserved for
// failures to launch or wait on the process itself.
type Executor interface {
	Run(ctx context.Context, dir, binary string, args []string) (int, string, error)
}

// Option configures the client.
type Option func(*CLI)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *CLI) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// CLI wraps mat2 command-line interactions.
type CLI struct {
	binary         string
	fileTimeout    time.Duration
	versionTimeout time.Duration
	exec           Executor
}

// New constructs a mat2 client.
func New(binary string, fileTimeout, versionTimeout time.Duration, opts ...Option) (*CLI, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("mat2 binary required")
	}
	client := &CLI{
		binary:         binary,
		fileTimeout:    fileTimeout,
		versionTimeout: versionTimeout,
		exec:           commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Version probes the tool with a short deadline. A failed probe means the tool
// is absent or broken; callers treat that as fatal for the whole run.
func (c *CLI) Version(ctx context.Context) (string, error) {
	if _, err := exec.LookPath(c.binary); err != nil {
		return "", services.Wrap(services.ErrNotFound, "mat2", "version", fmt.Sprintf("binary %q not found", c.binary), nil)
	}
	version, err := deps.ProbeVersion(ctx, c.binary, c.versionTimeout)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, "mat2", "version", "", err)
	}
	return version, nil
}

// Clean runs mat2 on the given file and returns the cleaned artifact path.
// The original file is never touched; mat2 writes a sibling copy.
func (c *CLI) Clean(ctx context.Context, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("input path required")
	}

	runCtx := ctx
	if c.fileTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.fileTimeout)
		defer cancel()
	}

	args := []string{"--unknown-members", "omit", path}
	code, stderr, err := c.exec.Run(runCtx, filepath.Dir(path), c.binary, args)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if runCtx.Err() != nil {
		return "", services.Wrap(services.ErrTimeout, "mat2", "clean", fmt.Sprintf("no result within %s", c.fileTimeout), nil)
	}
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "mat2", "clean", "", err)
	}

	switch code {
	case 0:
		artifact := ArtifactPath(path)
		if !fileutil.IsRegularFile(artifact) {
			return "", services.Wrap(services.ErrExternalTool, "mat2", "clean", "tool reported success but produced no cleaned copy", nil)
		}
		return artifact, nil
	case 1:
		// mat2 exits 1 when it does not handle the format. Not a failure.
		return "", services.Wrap(services.ErrUnsupported, "mat2", "clean", "format refused by tool", nil)
	default:
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = fmt.Sprintf("exit code %d", code)
		}
		marker := services.ErrExternalTool
		if strings.Contains(strings.ToLower(detail), "permission denied") {
			marker = services.ErrPermission
		}
		return "", services.Wrap(marker, "mat2", "clean", detail, nil)
	}
}

type commandExecutor struct{}

// minimalEnvKeys lists the only variables forwarded to the subprocess.
var minimalEnvKeys = []string{"PATH", "HOME", "LANG", "LC_ALL", "TMPDIR"}

func (commandExecutor) Run(ctx context.Context, dir, binary string, args []string) (int, string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Dir = dir
	cmd.Env = minimalEnv()
	// Do not let a killed tool's children hold the output pipes open.
	cmd.WaitDelay = time.Second
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return 0, stderr.String(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), stderr.String(), nil
	}
	return -1, stderr.String(), err
}

func minimalEnv() []string {
	env := make([]string, 0, len(minimalEnvKeys))
	for _, key := range minimalEnvKeys {
		if value, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+value)
		}
	}
	return env
}

var _ Cleaner = (*CLI)(nil)
