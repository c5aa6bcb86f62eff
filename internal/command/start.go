// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/datadir"
	"github.com/flibot/stackctl/internal/envfile"
	"github.com/flibot/stackctl/internal/fault"
	"github.com/flibot/stackctl/internal/log"
	"github.com/flibot/stackctl/internal/meta"
)

// startCommandAction is the action handler for the "start" subcommand. The
// checks run in a fixed order so that a missing environment file is reported
// before anything is created on disk.
func startCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}

	s.con.Infof("Starting %s...", s.name())

	if err := s.requireTool(); err != nil {
		return err
	}

	if err := s.ensureEnv(); err != nil {
		return err
	}

	created, err := datadir.Ensure(s.dataDir)
	if err != nil {
		return err
	}
	if created {
		s.con.Infof("Created data directory %s", s.dataDir)
	}

	s.migrateLegacy()
	s.checkEnvKeys()
	s.probeEngine(ctx)

	if err := s.run(ctx, s.project.Up()); err != nil {
		return err
	}

	s.con.Successf("Started %s", s.name())
	s.con.Infof("Follow the logs with: stackctl logs")
	return nil
}

// ensureEnv seeds the environment file from its template on first run and
// asks for it to be edited.
func (s *stack) ensureEnv() error {
	err := envfile.Ensure(s.envFile, s.envTemplate)
	if errors.Is(err, fault.ErrConfigNeedsEditing) {
		s.con.Warnf("Created %s from %s", s.envFile, s.envTemplate)
		s.con.Warnf("Fill in %s and run start again", s.envFile)
	}
	return err
}

// migrateLegacy copies a database left in the project root by older layouts
// into the data directory. Problems are warnings: the stack can run without it.
func (s *stack) migrateLegacy() {
	if s.legacyDB == "" {
		return
	}
	dst, copied, err := datadir.Migrate(s.legacyDB, s.dataDir)
	switch {
	case err != nil:
		log.Warnf("legacy migration failed: src=%s err=%v", s.legacyDB, err)
		s.con.Warnf("Could not migrate %s: %v", s.legacyDB, err)
	case copied:
		s.con.Infof("Migrated %s to %s", s.legacyDB, dst)
	}
}

// checkEnvKeys warns about keys declared in the template, or listed under
// env.required in the config file, that have no value in the environment file.
func (s *stack) checkEnvKeys() {
	required, err := s.meta.Config.GetStringSlice("env.required", []string(nil))
	if err != nil {
		log.WithError(err).Warn("ignoring env.required")
	}

	if tmpl, err := envfile.Parse(s.envTemplate); err == nil {
		required = append(envfile.Keys(tmpl), required...)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("cannot read env template")
	}
	if len(required) == 0 {
		return
	}

	entries, err := envfile.Parse(s.envFile)
	if err != nil {
		s.con.Warnf("Could not read %s: %v", s.envFile, err)
		return
	}

	if missing := envfile.MissingKeys(entries, required); len(missing) > 0 {
		s.con.Warnf("%s has no value for: %s", s.envFile, strings.Join(missing, ", "))
	}
}

// startCommandBuilder constructs the "start" subcommand.
func startCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "start",
		Usage:    "start the stack in the background",
		Metadata: map[string]any{"meta": meta},
		Action:   reported(startCommandAction),
	}
}
