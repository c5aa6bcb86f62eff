// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/compose"
	"github.com/flibot/stackctl/internal/console"
	"github.com/flibot/stackctl/internal/engine"
	"github.com/flibot/stackctl/internal/fault"
	"github.com/flibot/stackctl/internal/log"
	"github.com/flibot/stackctl/internal/meta"
	"github.com/flibot/stackctl/internal/runner"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// consoleFor builds the console for cmd honoring --no-color.
func consoleFor(cmd *cli.Command) *console.Console {
	m := GetMeta(cmd)
	return console.New(m.Out, m.Color && !cmd.Bool("no-color"))
}

// reportedError marks an error that has already been printed.
type reportedError struct {
	error
}

func (r reportedError) Unwrap() error {
	return r.error
}

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// reported prints the action's error as an [ERROR] line before returning it.
func reported(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		err := action(ctx, cmd)
		if err == nil || IsReported(err) {
			return err
		}
		log.Debugf("%s failed: %v", cmd.Name, err)
		consoleFor(cmd).Errorf("%s", err)
		return reportedError{err}
	}
}

// stack is everything a subcommand needs to manage the compose project.
type stack struct {
	meta    meta.Meta
	con     *console.Console
	project compose.Project
	// runner executes orchestration steps; it prints them under --dry-run.
	runner runner.CommandRunner
	dry    bool

	envFile     string
	envTemplate string
	dataDir     string
	legacyDB    string
}

// newStack resolves the flags of cmd into a stack. Tool resolution probes
// with the real runner even under --dry-run since the probe changes nothing.
func newStack(ctx context.Context, cmd *cli.Command) (*stack, error) {
	m := GetMeta(cmd)
	if m.Runner == nil || m.LookPath == nil {
		return nil, errors.New("command runner is not configured")
	}

	kind, err := compose.ParseKind(cmd.String("tool"))
	if err != nil {
		return nil, err
	}

	dir := cmd.String("dir")
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) && m.StartingDir != "" && dir != "." {
		dir = filepath.Join(m.StartingDir, dir)
	}

	s := &stack{
		meta:        m,
		con:         consoleFor(cmd),
		runner:      m.Runner,
		dry:         cmd.Bool("dry-run"),
		envFile:     resolve(dir, cmd.String("env-file")),
		envTemplate: resolve(dir, cmd.String("env-template")),
		dataDir:     resolve(dir, cmd.String("data-dir")),
		legacyDB:    resolve(dir, cmd.String("legacy-db")),
	}
	if s.dry {
		s.runner = &runner.Dry{W: m.Out}
	}

	s.project = compose.Project{
		Tool: compose.Resolve(ctx, m.Runner, m.LookPath, kind),
		Name: cmd.String("project"),
	}
	if dir != "." {
		s.project.Dir = dir
	}
	for _, f := range strings.Split(cmd.String("file"), ",") {
		if f = strings.TrimSpace(f); f != "" {
			s.project.Files = append(s.project.Files, resolve(dir, f))
		}
	}

	log.Debugf("stack: tool=%s dir=%s env=%s data=%s dry=%v", s.project.Tool, dir, s.envFile, s.dataDir, s.dry)
	return s, nil
}

// resolve anchors a relative path at the project directory.
func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// name is how messages refer to the stack.
func (s *stack) name() string {
	if s.project.Name != "" {
		return fmt.Sprintf("stack %q", s.project.Name)
	}
	return "the stack"
}

// requireTool fails with ErrToolMissing unless the orchestration tool is on
// PATH.
func (s *stack) requireTool() error {
	if !s.project.Tool.Found {
		return fmt.Errorf("%w: install %s (docker compose, docker-compose or podman compose)",
			fault.ErrToolMissing, s.project.Tool.Binary())
	}
	return nil
}

// probeEngine warns when the docker daemon does not answer. It never fails:
// the following compose step reports the real error.
func (s *stack) probeEngine(ctx context.Context) {
	if s.meta.Engine == nil || s.dry || s.project.Tool.Engine() != "docker" {
		return
	}
	if _, err := engine.Probe(ctx, s.meta.Engine); err != nil {
		log.WithError(err).Warn("engine probe failed")
		s.con.Warnf("Docker daemon is not reachable (%v)", err)
	}
}

// run executes steps in order and stops at the first failure. A non-zero exit
// becomes a *fault.DelegatedError carrying the step's exit code.
func (s *stack) run(ctx context.Context, steps ...[]string) error {
	for _, argv := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", fault.ErrInterrupted, err)
		}
		log.Tracef("step: %s", strings.Join(argv, " "))
		if res := s.runner.Run(ctx, argv); !res.OK() {
			return &fault.DelegatedError{Argv: argv, Code: res.Code, Err: res.Err}
		}
	}
	return nil
}
