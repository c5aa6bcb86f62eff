// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/fault"
	"github.com/flibot/stackctl/internal/meta"
)

// InitApp builds the stackctl command tree around m.
func InitApp(ctx context.Context, m meta.Meta) (*cli.Command, error) {
	if m.Out == nil {
		return nil, errors.New("meta has no output writer")
	}
	if m.Context == nil {
		m.Context = ctx
	}

	app := &cli.Command{
		Name:            "stackctl",
		Usage:           "manage the bot's compose stack",
		UsageText:       "stackctl [flags] {start|stop|restart|logs|build|clean|status|update|help}",
		Flags:           NewGlobalFlags(m.Config),
		Metadata:        map[string]any{"meta": m},
		HideHelp:        true,
		HideHelpCommand: true,
		Writer:          m.Out,
		ErrWriter:       m.Out,
		Action:          rootCommandAction,
		OnUsageError:    usageError,
		// Exit codes are mapped by main; never let cli call os.Exit.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	// Order matters: it is the order of the usage text.
	app.Commands = append(app.Commands,
		startCommandBuilder(m),
		stopCommandBuilder(m),
		restartCommandBuilder(m),
		logsCommandBuilder(m),
		buildCommandBuilder(m),
		cleanCommandBuilder(m),
		statusCommandBuilder(m),
		updateCommandBuilder(m),
		helpCommandBuilder(m),
	)
	for _, sub := range app.Commands {
		sub.HideHelp = true
		sub.OnUsageError = usageError
	}

	return app, nil
}

// rootCommandAction runs when no subcommand matched: either nothing was given,
// which shows the usage, or the argument is unknown.
func rootCommandAction(_ context.Context, cmd *cli.Command) error {
	con := consoleFor(cmd)
	if !cmd.Args().Present() {
		printUsage(con.W, cmd.Root())
		return nil
	}

	name := cmd.Args().First()
	con.Errorf("Unknown command: %s", name)
	con.Println()
	printUsage(con.W, cmd.Root())
	return reportedError{fmt.Errorf("%w: %s", fault.ErrUnrecognizedCommand, name)}
}

// usageError reports a flag parse failure the same way as an unknown command.
// Help flags are not defined, so -h or --help anywhere end up here and show
// the usage text.
func usageError(_ context.Context, cmd *cli.Command, err error, _ bool) error {
	con := consoleFor(cmd)
	if isHelpFlag(err) {
		printUsage(con.W, cmd.Root())
		return nil
	}

	con.Errorf("%v", err)
	con.Println()
	printUsage(con.W, cmd.Root())
	return reportedError{err}
}

func isHelpFlag(err error) bool {
	_, name, ok := strings.Cut(err.Error(), "flag provided but not defined: ")
	if !ok {
		return false
	}
	name = strings.TrimLeft(name, "-")
	return name == "h" || name == "help"
}
