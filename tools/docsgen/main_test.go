// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	subs, err := collect(Config{Subcommands: []Extra{{ID: "start", Notes: []string{"n"}}}})
	require.NoError(t, err)

	var ids []string
	for _, s := range subs {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"start", "stop", "restart", "logs", "build", "clean", "status", "update", "help"}, ids)
	assert.Equal(t, []string{"n"}, subs[0].Notes)

	var logs Subcommand
	for _, s := range subs {
		if s.ID == "logs" {
			logs = s
		}
	}
	var names []string
	for _, f := range logs.Flags {
		names = append(names, f.ID)
	}
	assert.Contains(t, names, "tail")
	assert.Contains(t, names, "dir")
	assert.IsNonDecreasing(t, names)
}

func TestGenerate(t *testing.T) {
	docs := t.TempDir()
	src := filepath.Join("..", "..", "docs", "templates")
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "templates"), 0o755))
	for _, name := range []string{"stackctl.yaml", "stackctl.md.tmpl", "stackctl.man.tmpl"} {
		b, err := os.ReadFile(filepath.Join(src, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(docs, "templates", name), b, 0o600))
	}

	var out bytes.Buffer
	require.NoError(t, generate(docs, &out))

	md, err := os.ReadFile(filepath.Join(docs, "commands", "start.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# stackctl start")
	assert.Contains(t, string(md), "`--dir, -C`")

	assert.FileExists(t, filepath.Join(docs, "man", "share", "man1", "stackctl-clean.1"))
	assert.Contains(t, out.String(), "Generating")
}
