// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for stackctl's optional
// YAML configuration. The first file found wins:
//   - $STACKCTL_CFG_FILE
//   - ./stackctl.yaml (next to the compose project)
//   - os.UserConfigDir()/stackctl.yaml
//
// Top-level keys are named after the global flags (tool, file, project,
// env-file, env-template, data-dir, legacy-db) and are consulted after the
// command line and STACKCTL_* environment variables. Nested keys are addressed
// with dotted paths, e.g. "env.required".
package config
