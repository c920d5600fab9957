package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// diagWriter returns a Windows-safe stderr writer for colored diagnostics (errors/warnings),
// wrapping os.Stderr through go-colorable so ANSI escapes render correctly on Windows consoles.
func diagWriter() io.Writer {
	return colorable.NewColorable(os.Stderr)
}

// colorEnabled resolves opts.color ("auto", "always", "never") against whether stderr is a
// terminal, the same decision fatih/color makes internally but explicit so --color always/never
// can override the isatty probe.
func colorEnabled() bool {
	switch opts.color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}

func printError(format string, a ...interface{}) {
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	if !colorEnabled() {
		c.DisableColor()
	}
	c.Fprintf(diagWriter(), format, a...)
}

func printWarning(format string, a ...interface{}) {
	c := color.New(color.FgYellow)
	c.EnableColor()
	if !colorEnabled() {
		c.DisableColor()
	}
	c.Fprintf(diagWriter(), format, a...)
}
