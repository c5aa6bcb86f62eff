// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/meta"
)

func restartCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}

	s.con.Infof("Restarting %s...", s.name())
	if err := s.run(ctx, s.project.Restart()); err != nil {
		return err
	}

	s.con.Successf("Restarted %s", s.name())
	return nil
}

// restartCommandBuilder constructs the "restart" subcommand.
func restartCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "restart",
		Usage:    "restart the stack's services",
		Metadata: map[string]any{"meta": meta},
		Action:   reported(restartCommandAction),
	}
}
