// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/meta"
)

func updateCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}
	s.probeEngine(ctx)

	s.con.Infof("Pulling images and recreating %s...", s.name())
	if err := s.run(ctx, s.project.Pull(), s.project.UpBuild()); err != nil {
		return err
	}

	s.con.Successf("Updated %s", s.name())
	return nil
}

// updateCommandBuilder constructs the "update" subcommand.
func updateCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "update",
		Usage:    "pull the latest images and recreate the stack",
		Metadata: map[string]any{"meta": meta},
		Action:   reported(updateCommandAction),
	}
}
