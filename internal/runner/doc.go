// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package runner executes external commands on behalf of stackctl. Commands
// never talk to os/exec directly: they go through CommandRunner so the
// dispatcher can be exercised with a fake, and so --dry-run can print argv
// instead of running it.
//
// Exit status conventions follow the shell: a child's own exit code is passed
// through, a binary missing from PATH is 127, and a run cancelled by the
// context (SIGINT/SIGTERM) is 130.
package runner
