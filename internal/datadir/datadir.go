// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package datadir manages the host directory the stack persists its state in.
package datadir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/flibot/stackctl/internal/log"
)

// Ensure creates dir (and parents) when missing. It reports whether anything
// was created; an existing directory is left untouched.
func Ensure(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("data directory %s exists but is not a directory", dir)
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("failed to stat data directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return false, fmt.Errorf("failed to create data directory: %w", err)
	}
	log.Debugf("created data dir: path=%s", dir)
	return true, nil
}

// Migrate copies the legacy file src into dir under the same base name. It
// is a no-op when src does not exist and it never overwrites an existing
// destination; both cases return copied=false. src itself is kept.
func Migrate(src, dir string) (dst string, copied bool, err error) {
	dst = filepath.Join(dir, filepath.Base(src))

	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return dst, false, nil
	} else if err != nil {
		return dst, false, fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if info.IsDir() {
		return dst, false, fmt.Errorf("legacy database %s is a directory", src)
	}

	if _, err := os.Stat(dst); err == nil {
		log.Debugf("legacy migration skipped, %s exists", dst)
		return dst, false, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return dst, false, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return dst, false, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return dst, false, fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return dst, false, err
	}
	// Keep the original timestamp so the copy reads as the same database.
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		log.Debugf("keeping mtime of %s failed: %v", dst, err)
	}

	log.Infof("migrated %s to %s", src, dst)
	return dst, true, nil
}

// Summary describes what a data directory holds.
type Summary struct {
	Dir       string
	Files     int
	Bytes     uint64
	LastWrite time.Time
}

// Summarize walks dir and totals regular files.
func Summarize(dir string) (Summary, error) {
	s := Summary{Dir: dir}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Entries can vanish while the stack is running.
			if errors.Is(walkErr, fs.ErrNotExist) && path != dir {
				return nil
			}
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		s.Files++
		s.Bytes += uint64(info.Size())
		if info.ModTime().After(s.LastWrite) {
			s.LastWrite = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize %s: %w", dir, err)
	}
	return s, nil
}

// String renders e.g. "data: 1.2 MB in 3 files, last write 5 minutes ago".
func (s Summary) String() string {
	if s.Files == 0 {
		return fmt.Sprintf("%s: empty", s.Dir)
	}
	noun := "files"
	if s.Files == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%s: %s in %d %s, last write %s",
		s.Dir, humanize.Bytes(s.Bytes), s.Files, noun, humanize.Time(s.LastWrite))
}
