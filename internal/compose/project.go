// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compose

// Project is a compose application: the tool plus the options selecting the
// compose files, project name and project directory. Its methods return the
// full argv of each operation.
type Project struct {
	Tool  Tool
	Files []string
	Name  string
	Dir   string
}

func (p Project) argv(args ...string) []string {
	argv := append([]string{}, p.Tool.Argv...)
	for _, f := range p.Files {
		argv = append(argv, "-f", f)
	}
	if p.Name != "" {
		argv = append(argv, "-p", p.Name)
	}
	if p.Dir != "" {
		argv = append(argv, "--project-directory", p.Dir)
	}
	return append(argv, args...)
}

// Up starts the stack detached.
func (p Project) Up() []string {
	return p.argv("up", "-d")
}

// UpBuild starts the stack detached, rebuilding images first.
func (p Project) UpBuild() []string {
	return p.argv("up", "-d", "--build")
}

// Down stops and removes the stack's containers and networks.
func (p Project) Down() []string {
	return p.argv("down")
}

// DownVolumes is Down plus named volumes and orphaned containers.
func (p Project) DownVolumes() []string {
	return p.argv("down", "-v", "--remove-orphans")
}

func (p Project) Restart() []string {
	return p.argv("restart")
}

// Logs follows service logs. tail limits the backlog ("" means all).
func (p Project) Logs(tail string) []string {
	if tail != "" {
		return p.argv("logs", "-f", "--tail", tail)
	}
	return p.argv("logs", "-f")
}

// Build rebuilds images without the layer cache.
func (p Project) Build() []string {
	return p.argv("build", "--no-cache")
}

func (p Project) Pull() []string {
	return p.argv("pull")
}

func (p Project) Ps() []string {
	return p.argv("ps")
}

// SystemPrune removes unused engine data system-wide, not only the project's.
func (p Project) SystemPrune() []string {
	return []string{p.Tool.Engine(), "system", "prune", "-f"}
}
