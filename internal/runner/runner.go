// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/flibot/stackctl/internal/fault"
	"github.com/flibot/stackctl/internal/log"
)

const (
	// ExitNotFound is the shell status for a command missing from PATH.
	ExitNotFound = 127

	// waitDelay bounds how long a child may take to exit after it has been
	// sent an interrupt before it is killed.
	waitDelay = 10 * time.Second
)

// Result is the outcome of one command.
type Result struct {
	Code int
	Err  error
}

// OK reports a zero exit.
func (r Result) OK() bool {
	return r.Code == 0
}

// CommandRunner runs argv to completion. Run forwards stdio; Capture returns
// stdout while stderr still reaches the user.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) Result
	Capture(ctx context.Context, argv []string) (string, Result)
}

// LookPathFunc resolves a binary on PATH, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// Exec runs commands as child processes. Zero values mean the parent's stdio.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes argv with stdio forwarded.
func (e *Exec) Run(ctx context.Context, argv []string) Result {
	cmd, err := e.command(ctx, argv)
	if err != nil {
		return Result{Code: 1, Err: err}
	}
	cmd.Stdin = orReader(e.Stdin, os.Stdin)
	cmd.Stdout = orWriter(e.Stdout, os.Stdout)
	cmd.Stderr = orWriter(e.Stderr, os.Stderr)

	return result(ctx, cmd.Run())
}

// Capture executes argv and returns what it wrote to stdout.
func (e *Exec) Capture(ctx context.Context, argv []string) (string, Result) {
	cmd, err := e.command(ctx, argv)
	if err != nil {
		return "", Result{Code: 1, Err: err}
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = orWriter(e.Stderr, os.Stderr)

	res := result(ctx, cmd.Run())
	return out.String(), res
}

func (e *Exec) command(ctx context.Context, argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}
	log.Debugf("exec: %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	// Give the child the chance to shut down the way it would on a terminal
	// ^C before it is killed.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = waitDelay
	return cmd, nil
}

// result maps the error returned by exec.Cmd.Run onto a Result.
func result(ctx context.Context, err error) Result {
	if err == nil {
		return Result{}
	}

	if ctx.Err() != nil {
		return Result{Code: fault.ExitInterrupted, Err: fmt.Errorf("%w: %v", fault.ErrInterrupted, err)}
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code := ee.ExitCode()
		if code < 0 {
			// Killed by a signal that did not come through ctx.
			code = 1
		}
		return Result{Code: code, Err: err}
	}

	if errors.Is(err, exec.ErrNotFound) {
		return Result{Code: ExitNotFound, Err: err}
	}

	return Result{Code: 1, Err: err}
}

func orReader(r io.Reader, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}

// Dry prints each argv prefixed with "+ " instead of running it.
type Dry struct {
	W io.Writer
}

func (d *Dry) Run(_ context.Context, argv []string) Result {
	fmt.Fprintln(d.W, "+ "+strings.Join(argv, " "))
	return Result{}
}

func (d *Dry) Capture(ctx context.Context, argv []string) (string, Result) {
	return "", d.Run(ctx, argv)
}
