// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggerTo_DefaultsToError(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "")

	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Errorf("shown %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, " E shown 3")
}

func TestInitLoggerTo_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "chatty")

	Warnf("quiet")
	assert.Empty(t, buf.String())
}

func TestTracef(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "debug")
	Tracef("not yet")
	assert.Empty(t, buf.String())

	InitLoggerTo(&buf, "TRACE")
	Tracef("argv=%v", []string{"docker", "compose"})
	assert.Contains(t, buf.String(), " T argv=[docker compose]")
}

func TestHandler_Fields(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "warn")

	WithError(errors.New("boom")).Warn("probe failed")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, " W probe failed")
	assert.True(t, strings.HasSuffix(line, "error=boom"), line)
}
