// Package output formats dante's terminal output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ColorMode selects when colors are used.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses auto, always or never.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors honors NO_COLOR and dumb terminals in auto mode.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return !color.NoColor
	}
}

// Printer writes status lines and tables.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter writes to stdout and stderr.
func NewPrinter(mode ColorMode) *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr, ResolveColors(mode))
}

// NewPrinterWithWriters is used by tests and by commands that capture output.
func NewPrinterWithWriters(out, errw io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errw, useColors: useColors}
}

// Out returns the stdout writer.
func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) Info(format string, args ...any) {
	p.line(p.out, color.FgCyan, "", "", format, args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.line(p.out, color.FgGreen, "✓ ", "[OK] ", format, args...)
}

func (p *Printer) Warning(format string, args ...any) {
	p.line(p.err, color.FgYellow, "⚠ ", "[WARN] ", format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.line(p.err, color.FgRed, "✗ ", "[ERROR] ", format, args...)
}

// Print writes a plain line.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a section title.
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", title)
}

// Status colors a ticket status or an active flag.
func (p *Printer) Status(s string) string {
	if !p.useColors {
		return s
	}
	switch s {
	case "Abierto", "active":
		return color.GreenString(s)
	case "En Progreso":
		return color.YellowString(s)
	case "Cerrado", "inactive":
		return color.RedString(s)
	default:
		return s
	}
}

func (p *Printer) line(w io.Writer, c color.Attribute, colorPrefix, plainPrefix, format string, args ...any) {
	if p.useColors {
		color.New(c).Fprintf(w, colorPrefix+format+"\n", args...)
		return
	}
	fmt.Fprintf(w, plainPrefix+format+"\n", args...)
}
