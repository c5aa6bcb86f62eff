// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"testing"

	apex "github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flibot/stackctl/internal/config"
	"github.com/flibot/stackctl/internal/log"
	"github.com/flibot/stackctl/internal/meta"
	"github.com/flibot/stackctl/internal/runner"
)

func TestHandleHelp(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"naked", []string{"stackctl"}, []string{"stackctl", "help"}},
		{"long flag", []string{"stackctl", "--help"}, []string{"stackctl", "help"}},
		{"short flag", []string{"stackctl", "-h"}, []string{"stackctl", "help"}},
		{"subcommand untouched", []string{"stackctl", "start"}, []string{"stackctl", "start"}},
		{"later flag untouched", []string{"stackctl", "start", "-h"}, []string{"stackctl", "start", "-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handleHelp(tt.args))
		})
	}
}

func TestHandleHelp_DoesNotAlias(t *testing.T) {
	args := []string{"stackctl", "--help"}
	_ = handleHelp(args)
	assert.Equal(t, "--help", args[1])
}

func TestHandleVersion(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, handleVersion([]string{"stackctl", "--version"}, &buf))
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	assert.True(t, handleVersion([]string{"stackctl", "status", "-v"}, &buf))

	buf.Reset()
	assert.False(t, handleVersion([]string{"stackctl", "status"}, &buf))
	assert.Empty(t, buf.String())
}

func TestRun_ExitCodes(t *testing.T) {
	newMeta := func(out *bytes.Buffer) meta.Meta {
		return meta.Meta{
			Context:  context.Background(),
			Out:      out,
			Runner:   &runner.Dry{W: out},
			LookPath: exec.LookPath,
		}
	}

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"help", []string{"stackctl", "help"}, 0},
		{"unknown", []string{"stackctl", "foo"}, 1},
		{"dry stop", []string{"stackctl", "--tool", "docker", "stop"}, 0},
		{"unknown flag", []string{"stackctl", "--bogus"}, 1},
		{"subcommand help flag", []string{"stackctl", "--tool", "docker", "stop", "-h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.code, run(context.Background(), newMeta(&out), tt.args))
		})
	}
}

func TestRun_ErrorsReportedOnce(t *testing.T) {
	for _, args := range [][]string{
		{"stackctl", "foo"},
		{"stackctl", "--bogus"},
		{"stackctl", "start", "--bogus"},
	} {
		var out bytes.Buffer
		m := meta.Meta{Context: context.Background(), Out: &out, Runner: &runner.Dry{W: &out}, LookPath: exec.LookPath}

		assert.Equal(t, 1, run(context.Background(), m, args))
		assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("[ERROR]")), "args %v", args)
	}
}

func TestApplyLogLevel(t *testing.T) {
	cfg := config.Type{Source: "stackctl.yaml", Data: map[string]interface{}{"log": "debug"}}
	t.Cleanup(func() { log.InitLoggerTo(io.Discard, "error") })

	t.Run("env wins", func(t *testing.T) {
		t.Setenv("STACKCTL_LOG", "error")
		log.InitLoggerTo(io.Discard, "error")

		applyLogLevel(cfg)
		assert.Equal(t, apex.ErrorLevel, apex.Log.(*apex.Logger).Level)
	})

	t.Run("config used", func(t *testing.T) {
		t.Setenv("STACKCTL_LOG", "")
		require.NoError(t, os.Unsetenv("STACKCTL_LOG"))
		log.InitLoggerTo(io.Discard, "error")

		applyLogLevel(cfg)
		assert.Equal(t, apex.DebugLevel, apex.Log.(*apex.Logger).Level)
	})
}
