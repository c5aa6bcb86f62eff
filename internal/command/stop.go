// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/meta"
)

func stopCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}

	s.con.Infof("Stopping %s...", s.name())
	if err := s.run(ctx, s.project.Down()); err != nil {
		return err
	}

	s.con.Successf("Stopped %s", s.name())
	return nil
}

// stopCommandBuilder constructs the "stop" subcommand.
func stopCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "stop",
		Usage:    "stop and remove the stack's containers",
		Metadata: map[string]any{"meta": meta},
		Action:   reported(stopCommandAction),
	}
}
