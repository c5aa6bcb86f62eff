// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/datadir"
	"github.com/flibot/stackctl/internal/log"
	"github.com/flibot/stackctl/internal/meta"
)

// statusCommandAction lists the stack's containers, then summarizes the data
// directory when there is one.
func statusCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}

	s.con.Infof("Status of %s:", s.name())
	if err := s.run(ctx, s.project.Ps()); err != nil {
		return err
	}

	if info, err := os.Stat(s.dataDir); err != nil || !info.IsDir() {
		return nil
	}
	summary, err := datadir.Summarize(s.dataDir)
	if err != nil {
		log.WithError(err).Warn("data dir summary failed")
		return nil
	}
	s.con.Infof("%s", summary)
	return nil
}

// statusCommandBuilder constructs the "status" subcommand.
func statusCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "status",
		Usage:    "show the stack's containers",
		Metadata: map[string]any{"meta": meta},
		Action:   reported(statusCommandAction),
	}
}
