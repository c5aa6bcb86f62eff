// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/meta"
)

func buildCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}

	if err := s.requireTool(); err != nil {
		return err
	}
	s.probeEngine(ctx)

	s.con.Infof("Building images without cache...")
	if err := s.run(ctx, s.project.Build()); err != nil {
		return err
	}

	s.con.Successf("Images built")
	return nil
}

// buildCommandBuilder constructs the "build" subcommand.
func buildCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "build",
		Usage:    "rebuild the stack's images without cache",
		Metadata: map[string]any{"meta": meta},
		Action:   reported(buildCommandAction),
	}
}
