// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package engine talks to the Docker Engine API directly. stackctl only uses
// it to tell a missing daemon apart from a failing compose run.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"

	"github.com/flibot/stackctl/internal/log"
)

// ProbeTimeout bounds a single ping.
const ProbeTimeout = 5 * time.Second

// Pinger is the subset of the Docker client used here.
type Pinger interface {
	Ping(ctx context.Context) (types.Ping, error)
	Close() error
}

// DialFunc opens an engine connection.
type DialFunc func() (Pinger, error)

// Dial connects using DOCKER_HOST and friends, negotiating the API version.
func Dial() (Pinger, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return cli, nil
}

// Probe pings the daemon and returns the API version it speaks.
func Probe(ctx context.Context, dial DialFunc) (string, error) {
	p, err := dial()
	if err != nil {
		return "", err
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	ping, err := p.Ping(ctx)
	if err != nil {
		return "", fmt.Errorf("docker daemon unreachable: %w", err)
	}
	log.Debugf("docker daemon reachable: api=%s os=%s", ping.APIVersion, ping.OSType)
	return ping.APIVersion, nil
}
