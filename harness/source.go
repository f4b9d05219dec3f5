package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/logcapture/logcapture/capio"
)

// OutputSource produces the log output that a check's expectations are
// evaluated against.
type OutputSource interface {
	// Describe returns a short description of the source for debug output.
	Describe() string

	// FetchOutput returns the complete log output.
	FetchOutput(ctx context.Context) (string, error)
}

// CommandSource runs a program and captures its combined stdout and stderr.
type CommandSource struct {
	Command []string
	Timeout time.Duration
	Logger  capio.Logger
}

func (c CommandSource) Describe() string {
	return fmt.Sprintf("command %q", strings.Join(c.Command, " "))
}

func (c CommandSource) FetchOutput(ctx context.Context) (string, error) {
	if len(c.Command) == 0 {
		return "", fmt.Errorf("no command specified")
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	logger := c.Logger
	if logger == nil {
		logger = capio.NullLogger()
	}
	logger.Printf("running %s", c.Describe())

	cmd := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...) //nolint:gosec
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%s timed out after %s", c.Describe(), c.Timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		// A nonzero exit status is not an error here; the output may still
		// contain exactly the log lines the expectations want to see.
		if errors.As(err, &exitErr) {
			logger.Printf("%s exited with status %d", c.Describe(), exitErr.ExitCode())
			return buf.String(), nil
		}
		return "", fmt.Errorf("could not run %s: %w", c.Describe(), err)
	}
	return buf.String(), nil
}

// FileSource reads log output from a file.
type FileSource struct {
	Path string
}

func (f FileSource) Describe() string {
	return fmt.Sprintf("file %q", f.Path)
}

func (f FileSource) FetchOutput(context.Context) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", f.Describe(), err)
	}
	return string(data), nil
}

// ReaderSource reads log output from an arbitrary reader, such as stdin. The
// reader is consumed once, on the first FetchOutput call; the content is
// cached so that every check sharing the source sees the same output.
type ReaderSource struct {
	Reader io.Reader
	Name   string

	once    sync.Once
	content string
	err     error
}

func (r *ReaderSource) Describe() string {
	return r.Name
}

func (r *ReaderSource) FetchOutput(context.Context) (string, error) {
	r.once.Do(func() {
		data, err := io.ReadAll(r.Reader)
		if err != nil {
			r.err = fmt.Errorf("cannot read %s: %w", r.Describe(), err)
			return
		}
		r.content = string(data)
	})
	return r.content, r.err
}
