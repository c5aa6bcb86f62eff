// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/flibot/stackctl/internal/config"
	"github.com/flibot/stackctl/internal/engine"
	"github.com/flibot/stackctl/internal/runner"
)

// Meta contains runtime metadata shared by commands. Besides the arguments,
// configuration and context it carries the process collaborators (runner,
// PATH lookup, engine dialer, output) so tests can replace them.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string

	// Out receives console messages and usage text.
	Out io.Writer
	// Color enables colored level labels.
	Color bool

	Runner   runner.CommandRunner
	LookPath runner.LookPathFunc
	// Engine is nil when the daemon should not be probed.
	Engine engine.DialFunc
}
