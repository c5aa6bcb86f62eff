// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package fault defines the failure kinds stackctl reports and the process
// exit code each one maps to. Every failure is terminal for the invocation.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

// ExitInterrupted is the conventional shell status for SIGINT (128+2).
const ExitInterrupted = 130

var (
	// ErrToolMissing means the orchestration tool is not on PATH.
	ErrToolMissing = errors.New("orchestration tool not found")

	// ErrConfigMissing means neither the environment file nor its template
	// exist.
	ErrConfigMissing = errors.New("environment file missing")

	// ErrConfigNeedsEditing means the environment file was just seeded from
	// the template and must be edited before the stack can start.
	ErrConfigNeedsEditing = errors.New("environment file needs editing")

	// ErrUnrecognizedCommand means the positional argument is not a known
	// subcommand.
	ErrUnrecognizedCommand = errors.New("unrecognized command")

	// ErrInterrupted means the invocation was cancelled by a signal.
	ErrInterrupted = errors.New("interrupted")
)

// DelegatedError is a non-zero exit from the external tool. Code is passed
// through unchanged as the process exit code.
type DelegatedError struct {
	Argv []string
	Code int
	Err  error
}

func (e *DelegatedError) Error() string {
	return fmt.Sprintf("%s exited with code %d", strings.Join(e.Argv, " "), e.Code)
}

func (e *DelegatedError) Unwrap() error {
	return e.Err
}

// ExitCode maps err onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var de *DelegatedError
	if errors.As(err, &de) && de.Code != 0 {
		return de.Code
	}

	if errors.Is(err, ErrInterrupted) {
		return ExitInterrupted
	}

	return 1
}

// IsInterrupt reports whether err is a cancellation, either observed by
// stackctl itself or reported by the child as a SIGINT exit status.
func IsInterrupt(err error) bool {
	if errors.Is(err, ErrInterrupted) {
		return true
	}
	var de *DelegatedError
	return errors.As(err, &de) && de.Code == ExitInterrupted
}
