// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/meta"
)

// cleanCommandAction removes the stack with its volumes and then prunes
// unused engine data system-wide. Volumes are not recoverable afterwards.
func cleanCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}

	s.con.Warnf("Removing %s with its volumes and pruning unused %s data...", s.name(), s.project.Tool.Engine())
	if err := s.run(ctx, s.project.DownVolumes(), s.project.SystemPrune()); err != nil {
		return err
	}

	s.con.Successf("Cleanup complete")
	return nil
}

// cleanCommandBuilder constructs the "clean" subcommand.
func cleanCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "clean",
		Usage:    "remove containers, volumes and unused engine data",
		Metadata: map[string]any{"meta": meta},
		Action:   reported(cleanCommandAction),
	}
}
