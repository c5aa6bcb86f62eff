// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/fault"
	"github.com/flibot/stackctl/internal/meta"
)

// logsCommandAction follows the service logs until the user interrupts it.
// The interrupt is the normal way out, so it is not an error.
func logsCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := newStack(ctx, cmd)
	if err != nil {
		return err
	}

	s.con.Infof("Following logs of %s (Ctrl+C to stop)...", s.name())
	err = s.run(ctx, s.project.Logs(cmd.String("tail")))
	if fault.IsInterrupt(err) {
		s.con.Println()
		return nil
	}
	return err
}

// logsCommandBuilder constructs the "logs" subcommand.
func logsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "logs",
		Usage:    "follow the stack's logs",
		Metadata: map[string]any{"meta": meta},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tail",
				Usage: "number of lines to show from the end of the logs (default: all)",
			},
		},
		Action: reported(logsCommandAction),
	}
}
