// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package datadir

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure_Creates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	created, err := Ensure(dir)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.DirExists(t, dir)
}

func TestEnsure_ExistingIsUntouched(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	db := filepath.Join(dir, "flibusta_bot.db")
	require.NoError(t, os.WriteFile(db, []byte("sqlite"), 0o600))

	created, err := Ensure(dir)

	assert.NoError(t, err)
	assert.False(t, created)
	info, _ := os.Stat(dir)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	b, _ := os.ReadFile(db)
	assert.Equal(t, "sqlite", string(b))
}

func TestEnsure_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := Ensure(path)

	assert.ErrorContains(t, err, "not a directory")
}

func TestMigrate(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "flibusta_bot.db")
	dir := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(src, []byte("old db"), 0o644))

	dst, copied, err := Migrate(src, dir)

	require.NoError(t, err)
	assert.True(t, copied)
	assert.Equal(t, filepath.Join(dir, "flibusta_bot.db"), dst)
	b, _ := os.ReadFile(dst)
	assert.Equal(t, "old db", string(b))
	assert.FileExists(t, src, "the legacy file is kept")
}

func TestMigrate_KeepsModTime(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "flibusta_bot.db")
	require.NoError(t, os.WriteFile(src, []byte("old db"), 0o644))
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, stamp, stamp))
	dir := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	dst, copied, err := Migrate(src, dir)

	require.NoError(t, err)
	require.True(t, copied)
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(info.ModTime()), "got %v", info.ModTime())
}

func TestMigrate_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "flibusta_bot.db")
	dir := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(src, []byte("old db"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flibusta_bot.db"), []byte("new db"), 0o644))

	_, copied, err := Migrate(src, dir)

	require.NoError(t, err)
	assert.False(t, copied)
	b, _ := os.ReadFile(filepath.Join(dir, "flibusta_bot.db"))
	assert.Equal(t, "new db", string(b))
}

func TestMigrate_NoLegacyFile(t *testing.T) {
	root := t.TempDir()

	_, copied, err := Migrate(filepath.Join(root, "flibusta_bot.db"), filepath.Join(root, "data"))

	assert.NoError(t, err)
	assert.False(t, copied)
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "books"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flibusta_bot.db"), make([]byte, 2000), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books", "a.fb2"), make([]byte, 500), 0o644))

	newest := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "flibusta_bot.db"), newest, newest))
	older := newest.Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "books", "a.fb2"), older, older))

	s, err := Summarize(dir)

	require.NoError(t, err)
	assert.Equal(t, 2, s.Files)
	assert.Equal(t, uint64(2500), s.Bytes)
	assert.WithinDuration(t, newest, s.LastWrite, time.Second)
	assert.Contains(t, s.String(), "2.5 kB in 2 files, last write 2 hours ago")
}

func TestSummary_String(t *testing.T) {
	assert.Equal(t, "data: empty", Summary{Dir: "data"}.String())

	one := Summary{Dir: "data", Files: 1, Bytes: 10, LastWrite: time.Now()}
	assert.Contains(t, one.String(), "10 B in 1 file,")
}

func TestSummarize_Missing(t *testing.T) {
	_, err := Summarize(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
