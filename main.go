// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/flibot/stackctl/internal/command"
	"github.com/flibot/stackctl/internal/config"
	"github.com/flibot/stackctl/internal/console"
	"github.com/flibot/stackctl/internal/engine"
	"github.com/flibot/stackctl/internal/fault"
	"github.com/flibot/stackctl/internal/log"
	"github.com/flibot/stackctl/internal/meta"
	"github.com/flibot/stackctl/internal/runner"
	"github.com/flibot/stackctl/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// handleHelp rewrites a leading -h/--help to the help subcommand and supplies
// it when no argument is given at all.
func handleHelp(args []string) []string {
	if len(args) <= 1 {
		return append(args, "help")
	}
	if args[1] == "-h" || args[1] == "--help" {
		out := append([]string{}, args...)
		out[1] = "help"
		return out
	}
	return args
}

// applyLogLevel takes the log level from the config file's "log" key unless
// STACKCTL_LOG is set.
func applyLogLevel(cfg config.Type) {
	if _, ok := os.LookupEnv("STACKCTL_LOG"); ok {
		return
	}
	if level, err := cfg.GetString("log", ""); err == nil && level != "" {
		log.InitLoggerTo(os.Stderr, level)
	} else if err != nil {
		log.Warnf("ignoring config key log: %v", err)
	}
}

// run builds the app around m and runs it, returning the exit code.
func run(ctx context.Context, m meta.Meta, args []string) int {
	app, err := command.InitApp(ctx, m)
	if err != nil {
		log.Errorf("app init failed: %v", err)
		return 1
	}

	err = app.Run(ctx, args)
	if err != nil && !command.IsReported(err) {
		console.New(m.Out, m.Color).Errorf("%v", err)
	}
	if err != nil {
		log.Debugf("app run err: err=%v", err)
	}
	return fault.ExitCode(err)
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, os.Stdout) {
		return 0
	}
	args = handleHelp(args)

	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		log.Errorf("config load failed: %v", err)
		return 1
	}
	applyLogLevel(cfg)

	// SIGINT/SIGTERM cancel the running step; "logs" relies on it.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sd, _ := os.Getwd()
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
		Out:         os.Stdout,
		Color:       console.ColorEnabled(os.Stdout),
		Runner:      &runner.Exec{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
		LookPath:    exec.LookPath,
		Engine:      engine.Dial,
	}

	return run(ctx, m, args)
}
