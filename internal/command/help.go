// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/meta"
)

// printUsage writes the usage text: synopsis, every subcommand in
// registration order, then the global flags.
func printUsage(w io.Writer, root *cli.Command) {
	fmt.Fprintf(w, "Usage: %s\n\n", root.UsageText)
	fmt.Fprintf(w, "%s: %s\n\n", root.Name, root.Usage)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Commands:")
	for _, sub := range root.Commands {
		if sub.Hidden {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Usage)
	}

	// Flag strings are "names\tusage", so they share the column layout.
	fmt.Fprintln(tw, "\nFlags:")
	for _, f := range root.Flags {
		fmt.Fprintf(tw, "  %v\n", f)
	}
	fmt.Fprintln(tw, "  --version, -v\tprint the version")
	tw.Flush()
}

func helpCommandAction(_ context.Context, cmd *cli.Command) error {
	printUsage(GetMeta(cmd).Out, cmd.Root())
	return nil
}

// helpCommandBuilder constructs the "help" subcommand. -h and --help are
// rewritten to it before parsing.
func helpCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "help",
		Usage:    "show this help",
		Metadata: map[string]any{"meta": meta},
		Action:   helpCommandAction,
	}
}
