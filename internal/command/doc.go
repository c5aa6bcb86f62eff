// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the stackctl command set. Each subcommand runs its
// pre-flight checks, delegates one fixed sequence of orchestration steps to a
// runner.CommandRunner and reports the outcome on the console. The first
// failing step ends the invocation; main maps the returned error to an exit
// code with fault.ExitCode.
package command
