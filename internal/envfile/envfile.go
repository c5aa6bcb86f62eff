// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package envfile manages the stack's environment file: seeding it from the
// checked-in template on first run and checking it for unset keys.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/flibot/stackctl/internal/fault"
	"github.com/flibot/stackctl/internal/log"
)

// Ensure makes sure the environment file exists. When it does not, the
// template is copied in its place and ErrConfigNeedsEditing is returned so the
// caller stops until someone has filled it in. Without a template nothing is
// written and ErrConfigMissing is returned.
func Ensure(envPath, templatePath string) error {
	if _, err := os.Stat(envPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", envPath, err)
	}

	if _, err := os.Stat(templatePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: neither %s nor %s exist", fault.ErrConfigMissing, envPath, templatePath)
		}
		return fmt.Errorf("failed to stat %s: %w", templatePath, err)
	}

	if err := copyFile(templatePath, envPath); err != nil {
		return err
	}
	log.Infof("seeded %s from %s", envPath, templatePath)

	return fmt.Errorf("%w: %s was created from %s", fault.ErrConfigNeedsEditing, envPath, templatePath)
}

// copyFile copies src to a new file dst with owner-only permissions, since
// the environment file carries secrets. An existing dst is never replaced.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:mnd
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return out.Close()
}

// Entry is one KEY=VALUE assignment.
type Entry struct {
	Key   string
	Value string
}

// Parse reads an environment file. Blank lines and # comments are skipped,
// an "export " prefix is accepted and matching outer quotes are removed.
// Entries keep file order.
func Parse(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			log.Debugf("envfile: ignoring line %d without '='", n)
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: unquote(strings.TrimSpace(value))})
	}
	return entries, scanner.Err()
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	// Unquoted values may carry a trailing comment.
	if i := strings.Index(v, " #"); i >= 0 {
		return strings.TrimSpace(v[:i])
	}
	return v
}

// Keys returns the keys of entries in order, without duplicates.
func Keys(entries []Entry) []string {
	seen := map[string]bool{}
	var keys []string
	for _, e := range entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// MissingKeys returns the required keys that are absent or empty in entries,
// in the order they were required. The last assignment of a key wins.
func MissingKeys(entries []Entry, required []string) []string {
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}

	var missing []string
	seen := map[string]bool{}
	for _, k := range required {
		if seen[k] {
			continue
		}
		seen[k] = true
		if values[k] == "" {
			missing = append(missing, k)
		}
	}
	return missing
}
