// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package compose resolves which orchestration tool manages the stack (the
// docker compose plugin, standalone docker-compose or podman compose) and
// builds the argv for each lifecycle operation. It never executes anything
// itself apart from the version probe used during resolution.
package compose
