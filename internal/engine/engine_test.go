// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	ping   types.Ping
	err    error
	closed bool
	hasDL  bool
}

func (f *fakePinger) Ping(ctx context.Context) (types.Ping, error) {
	_, f.hasDL = ctx.Deadline()
	return f.ping, f.err
}

func (f *fakePinger) Close() error {
	f.closed = true
	return nil
}

func TestProbe_Reachable(t *testing.T) {
	p := &fakePinger{ping: types.Ping{APIVersion: "1.46", OSType: "linux"}}

	version, err := Probe(context.Background(), func() (Pinger, error) { return p, nil })

	assert.NoError(t, err)
	assert.Equal(t, "1.46", version)
	assert.True(t, p.closed)
	assert.True(t, p.hasDL, "ping must run with a deadline")
}

func TestProbe_Unreachable(t *testing.T) {
	p := &fakePinger{err: errors.New("connection refused")}

	_, err := Probe(context.Background(), func() (Pinger, error) { return p, nil })

	assert.ErrorContains(t, err, "docker daemon unreachable: connection refused")
	assert.True(t, p.closed)
}

func TestProbe_DialError(t *testing.T) {
	_, err := Probe(context.Background(), func() (Pinger, error) { return nil, errors.New("bad DOCKER_HOST") })

	assert.EqualError(t, err, "bad DOCKER_HOST")
}

func TestDial_FromEnv(t *testing.T) {
	t.Setenv("DOCKER_HOST", "tcp://127.0.0.1:1")

	p, err := Dial()

	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}
