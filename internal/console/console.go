// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package console prints the leveled status lines users see while a command
// runs. It is separate from internal/log, which carries diagnostics.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Level is the severity of a console line.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// Label returns the bracketed tag printed in front of a message.
func (l Level) Label() string {
	switch l {
	case Success:
		return "[SUCCESS]"
	case Warning:
		return "[WARNING]"
	case Error:
		return "[ERROR]"
	default:
		return "[INFO]"
	}
}

// Palette holds the ANSI colors used for each level label.
type Palette struct {
	Info    lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultPalette is blue/green/yellow/red.
var DefaultPalette = Palette{
	Info:    lipgloss.Color("4"),
	Success: lipgloss.Color("2"),
	Warning: lipgloss.Color("3"),
	Error:   lipgloss.Color("1"),
}

func (p Palette) color(l Level) lipgloss.Color {
	switch l {
	case Success:
		return p.Success
	case Warning:
		return p.Warning
	case Error:
		return p.Error
	default:
		return p.Info
	}
}

// Format renders one console line. A nil renderer produces plain text.
func Format(r *lipgloss.Renderer, p Palette, l Level, msg string) string {
	label := l.Label()
	if r != nil {
		label = r.NewStyle().Bold(true).Foreground(p.color(l)).Render(label)
	}
	return label + " " + msg
}

// Console writes leveled lines to W.
type Console struct {
	W        io.Writer
	Palette  Palette
	renderer *lipgloss.Renderer
}

// New returns a Console writing to w. Colors are only used when color is true;
// the renderer additionally strips them when w is not a terminal.
func New(w io.Writer, color bool) *Console {
	c := &Console{W: w, Palette: DefaultPalette}
	if color {
		c.renderer = lipgloss.NewRenderer(w)
	}
	return c
}

// ColorEnabled reports whether stdout can take colors: it must be a terminal
// and NO_COLOR must be unset.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (c *Console) print(l Level, format string, args ...any) {
	fmt.Fprintln(c.W, Format(c.renderer, c.Palette, l, fmt.Sprintf(format, args...)))
}

func (c *Console) Infof(format string, args ...any)    { c.print(Info, format, args...) }
func (c *Console) Successf(format string, args ...any) { c.print(Success, format, args...) }
func (c *Console) Warnf(format string, args ...any)    { c.print(Warning, format, args...) }
func (c *Console) Errorf(format string, args ...any)   { c.print(Error, format, args...) }

// Println writes an unlabeled line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.W, a...)
}
