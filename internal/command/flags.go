// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/flibot/stackctl/internal/compose"
	"github.com/flibot/stackctl/internal/config"
)

// NewGlobalFlags returns the flags every subcommand understands. Values come
// from the command line, then STACKCTL_* variables, then cfg's file.
func NewGlobalFlags(cfg config.Type) []cli.Flag {
	flags := []cli.Flag{
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"C"},
			Usage:   "project directory holding the compose file, .env and data",
			Value:   ".",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_DIR")),
		}),
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "comma-separated compose files (default: the tool's own lookup)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_COMPOSE_FILE")),
		}),
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "project",
			Aliases: []string{"p"},
			Usage:   "compose project name",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_PROJECT")),
		}),
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "tool",
			Usage:   "orchestration tool: auto, docker, docker-compose or podman",
			Value:   string(compose.Auto),
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_TOOL")),
			Validator: func(value string) error {
				_, err := compose.ParseKind(value)
				return err
			},
		}),
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "env-file",
			Usage:   "environment file required by start",
			Value:   ".env",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_ENV_FILE")),
		}),
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "env-template",
			Usage:   "template copied to the environment file when it is missing",
			Value:   "env_example.txt",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_ENV_TEMPLATE")),
		}),
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "data-dir",
			Usage:   "host directory the stack persists data in",
			Value:   "data",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_DATA_DIR")),
		}),
		newStringFlag(cfg, &cli.StringFlag{
			Name:    "legacy-db",
			Usage:   "database file from older layouts, copied into the data directory once",
			Value:   "flibusta_bot.db",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_LEGACY_DB")),
		}),
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "print orchestration commands instead of running them",
			Sources: cli.NewValueSourceChain(cli.EnvVar("STACKCTL_DRY_RUN")),
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}

	return flags
}

// newStringFlag appends cfg's file as the last value source of flag.
func newStringFlag(cfg config.Type, flag *cli.StringFlag) *cli.StringFlag {
	if cfg.Source == "" {
		return flag
	}
	src := yaml.YAML(flag.Name, altsrc.StringSourcer(cfg.Source))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}
