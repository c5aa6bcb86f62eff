// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/flibot/stackctl/internal/log"
	"github.com/flibot/stackctl/internal/runner"
)

// Kind names an orchestration tool flavor.
type Kind string

const (
	Auto   Kind = "auto"
	Docker Kind = "docker"
	Legacy Kind = "docker-compose"
	Podman Kind = "podman"
)

// Kinds lists the accepted --tool values.
var Kinds = []Kind{Auto, Docker, Legacy, Podman}

// ParseKind validates a --tool value.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return Auto, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown tool %q (want one of %v)", s, Kinds)
}

// Tool is a resolved orchestration tool.
type Tool struct {
	Kind Kind
	// Argv is the prefix every compose invocation starts with.
	Argv []string
	// Found is false when the binary is not on PATH.
	Found bool
	// Version is only known for the docker plugin when it was probed.
	Version string
}

// Binary is the executable that has to be on PATH.
func (t Tool) Binary() string {
	return t.Argv[0]
}

// Engine is the container engine CLI behind the tool, used for system-wide
// operations compose does not cover.
func (t Tool) Engine() string {
	if t.Kind == Podman {
		return "podman"
	}
	return "docker"
}

func (t Tool) String() string {
	return strings.Join(t.Argv, " ")
}

func newTool(k Kind) Tool {
	switch k {
	case Legacy:
		return Tool{Kind: Legacy, Argv: []string{"docker-compose"}}
	case Podman:
		return Tool{Kind: Podman, Argv: []string{"podman", "compose"}}
	default:
		return Tool{Kind: Docker, Argv: []string{"docker", "compose"}}
	}
}

// Resolve picks the tool to use. An explicit kind is only checked for PATH
// presence. Auto prefers the docker compose plugin, then docker-compose, then
// podman compose; when none is available the plugin is returned with Found
// unset so that callers without a tool precondition still surface the tool's
// own failure.
func Resolve(ctx context.Context, r runner.CommandRunner, lookPath runner.LookPathFunc, k Kind) Tool {
	if k != Auto && k != "" {
		t := newTool(k)
		_, err := lookPath(t.Binary())
		t.Found = err == nil
		log.Debugf("tool %s: found=%v", t, t.Found)
		return t
	}

	if _, err := lookPath("docker"); err == nil {
		t := newTool(Docker)
		if version, ok := probePlugin(ctx, r, t); ok {
			t.Found = true
			t.Version = version
			return t
		}
	}

	for _, k := range []Kind{Legacy, Podman} {
		t := newTool(k)
		if _, err := lookPath(t.Binary()); err == nil {
			t.Found = true
			log.Debugf("tool resolved: %s", t)
			return t
		}
	}

	log.Debugf("no orchestration tool found on PATH")
	return newTool(Docker)
}

// probePlugin checks that "docker compose" is installed, since the docker CLI
// may be present without the compose plugin.
func probePlugin(ctx context.Context, r runner.CommandRunner, t Tool) (string, bool) {
	out, res := r.Capture(ctx, append(append([]string{}, t.Argv...), "version", "--format", "json"))
	if !res.OK() {
		log.Debugf("compose plugin probe failed: code=%d err=%v", res.Code, res.Err)
		return "", false
	}
	version := gjson.Get(out, "version").String()
	log.Debugf("tool resolved: %s version=%s", t, version)
	return version, true
}
