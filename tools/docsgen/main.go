// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders the per-subcommand markdown and man pages under
// docs/. Names, usage and flags come from the live command tree; examples and
// notes come from docs/templates/stackctl.yaml.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/flibot/stackctl/internal/command"
	"github.com/flibot/stackctl/internal/meta"
)

type Config struct {
	Subcommands []Extra `yaml:"subcommands"`
}

// Extra is the hand-written part of a subcommand's page.
type Extra struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
	Env         string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Subcommand struct {
	Extra
	Short string
	Usage string
	Flags []Flag
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(2)
	}
	if err := generate(os.Args[1], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(docs string, w io.Writer) error {
	data, err := os.ReadFile(filepath.Join(docs, "templates", "stackctl.yaml"))
	if err != nil {
		return err
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse stackctl.yaml: %w", err)
	}

	subs, err := collect(config)
	if err != nil {
		return err
	}

	types := []Outputs{
		{Template: filepath.Join(docs, "templates", "stackctl.md.tmpl"), Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: filepath.Join(docs, "templates", "stackctl.man.tmpl"), Folder: filepath.Join(docs, "man", "share", "man1"), Prefix: "stackctl-", Suffix: ".1"},
	}

	version := getVersion()
	for _, sub := range subs {
		metadata := TemplateData{
			Subcommand: sub,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    version,
			IDUpper:    strings.ToUpper(sub.ID),
		}

		for _, t := range types {
			if err := render(t, metadata, w); err != nil {
				return err
			}
		}
	}
	return nil
}

func render(t Outputs, metadata TemplateData, w io.Writer) error {
	if err := os.MkdirAll(t.Folder, 0o755); err != nil {
		return err
	}

	tmpl, err := template.ParseFiles(t.Template)
	if err != nil {
		return err
	}

	path := filepath.Join(t.Folder, t.Prefix+metadata.ID+t.Suffix)
	fmt.Fprintln(w, "Generating", path)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, metadata)
}

// collect walks the command tree and attaches the hand-written extras. Every
// subcommand gets the global flags plus its own, sorted by name.
func collect(config Config) ([]Subcommand, error) {
	app, err := command.InitApp(context.Background(), meta.Meta{Out: io.Discard})
	if err != nil {
		return nil, err
	}

	extras := map[string]Extra{}
	for _, e := range config.Subcommands {
		extras[e.ID] = e
	}

	global := flagsOf(app.Flags)
	var subs []Subcommand
	for _, c := range app.Commands {
		extra := extras[c.Name]
		extra.ID = c.Name

		flags := append(append([]Flag{}, global...), flagsOf(c.Flags)...)
		sort.Slice(flags, func(i, j int) bool {
			return flags[i].ID < flags[j].ID
		})

		subs = append(subs, Subcommand{
			Extra: extra,
			Short: c.Usage,
			Usage: fmt.Sprintf("stackctl [flags] %s", c.Name),
			Flags: flags,
		})
	}
	return subs, nil
}

func flagsOf(in []cli.Flag) []Flag {
	var out []Flag
	for _, f := range in {
		names := f.Names()
		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
		if d, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = d.GetUsage()
			flag.Default = d.GetValue()
			if env := d.GetEnvVars(); len(env) > 0 {
				flag.Env = env[0]
			}
		}
		out = append(out, flag)
	}
	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
