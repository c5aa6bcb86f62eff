// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"tool missing", fmt.Errorf("%w: docker", ErrToolMissing), 1},
		{"config missing", ErrConfigMissing, 1},
		{"needs editing", ErrConfigNeedsEditing, 1},
		{"unrecognized", ErrUnrecognizedCommand, 1},
		{"interrupted", fmt.Errorf("logs: %w", ErrInterrupted), 130},
		{"delegated", &DelegatedError{Argv: []string{"docker", "compose", "up"}, Code: 17}, 17},
		{"wrapped delegated", fmt.Errorf("start: %w", &DelegatedError{Code: 3}), 3},
		{"delegated without code", &DelegatedError{Err: errors.New("exec failed")}, 1},
		{"anything else", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestDelegatedError(t *testing.T) {
	cause := errors.New("signal: killed")
	err := &DelegatedError{Argv: []string{"docker", "compose", "logs", "-f"}, Code: 137, Err: cause}

	assert.Equal(t, "docker compose logs -f exited with code 137", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(ErrInterrupted))
	assert.True(t, IsInterrupt(&DelegatedError{Code: ExitInterrupted}))
	assert.False(t, IsInterrupt(&DelegatedError{Code: 1}))
	assert.False(t, IsInterrupt(ErrToolMissing))
	assert.False(t, IsInterrupt(nil))
}
