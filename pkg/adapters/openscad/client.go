package openscad

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/cardforge/pkg/core"
)

// DefaultBinary is the renderer looked up on PATH when none is configured.
const DefaultBinary = "openscad"

// RenderError reports a renderer run that exited non-zero.
// Diagnostic holds the renderer's own output, untouched.
type RenderError struct {
	Output     string
	ExitCode   int
	Diagnostic string
	Err        error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("render %s failed (exit %d)", e.Output, e.ExitCode)
	if e.Diagnostic != "" {
		msg += ":\n" + e.Diagnostic
	}
	return msg
}

// Unwrap lets errors.Is match both core.ErrRenderFailed and the exec error.
func (e *RenderError) Unwrap() []error {
	return []error{core.ErrRenderFailed, e.Err}
}

// Client runs the renderer binary. One call, one blocking subprocess.
type Client struct {
	Binary string
	Logger *slog.Logger

	mu       sync.Mutex
	renders  int
	failures int
	last     string
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the renderer executable (name on PATH or explicit path).
func WithBinary(bin string) Option {
	return func(c *Client) {
		if bin != "" {
			c.Binary = bin
		}
	}
}

// WithLogger sets the logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.Logger = logger
	}
}

// NewClient creates a renderer client.
func NewClient(opts ...Option) *Client {
	c := &Client{Binary: DefaultBinary}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Check verifies the renderer binary can be resolved.
func (c *Client) Check() error {
	if _, err := exec.LookPath(c.Binary); err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrRendererNotFound, c.Binary, err)
	}
	return nil
}

// Args builds the renderer argument vector: output flag, defines, then the template.
// Some renderers are positional, so the order is fixed.
func (c *Client) Args(templatePath, outputPath string, params core.Params) []string {
	args := []string{"-o", outputPath}
	args = append(args, DefineArgs(params)...)
	return append(args, templatePath)
}

// Render creates the output directory and runs the renderer once.
// A non-zero exit is returned as *RenderError; there is no retry.
func (c *Client) Render(templatePath, outputPath string, params core.Params) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := c.Args(templatePath, outputPath, params)
	c.Logger.Debug("executing renderer", "bin", c.Binary, "args", args)

	cmd := exec.Command(c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	c.record(outputPath, err)
	if err == nil {
		return nil
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	diag := strings.TrimSpace(stderr.String())
	if diag == "" {
		diag = strings.TrimSpace(stdout.String())
	}
	return &RenderError{Output: outputPath, ExitCode: code, Diagnostic: diag, Err: err}
}

func (c *Client) record(output string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renders++
	c.last = output
	if err != nil {
		c.failures++
	}
}
