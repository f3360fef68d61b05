// Package logger provides tagged, colored console output for diagnostics.
// Everything goes to stderr so report output on stdout stays clean.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

var useColor = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

func paint(color, s string) string {
	if !useColor {
		return s
	}
	return color + s + colorReset
}

func logf(color, tag, msg string) {
	stamp := time.Now().Format("15:04:05")
	fmt.Fprintf(os.Stderr, "%s %s %s\n",
		paint(colorGray, stamp),
		paint(color, fmt.Sprintf("[%s]", tag)),
		msg)
}

// Info logs an informational message under a tag.
func Info(tag, msg string) { logf(colorCyan, tag, msg) }

// Success logs a completed step.
func Success(tag, msg string) { logf(colorGreen, tag, msg) }

// Warn logs a recoverable problem.
func Warn(tag, msg string) { logf(colorYellow, tag, msg) }

// Error logs a failure.
func Error(tag, msg string) { logf(colorRed, tag, msg) }

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Fprintf(os.Stderr, "%s %s\n",
		paint(colorBold, "eve-scout"),
		paint(colorGray, version))
}

// Section prints a visual separator with a title.
func Section(title string) {
	fmt.Fprintf(os.Stderr, "%s\n", paint(colorBold, "── "+title+" ──"))
}

// Stats prints a single labeled value.
func Stats(label string, value interface{}) {
	fmt.Fprintf(os.Stderr, "  %s %v\n", paint(colorGray, label+":"), value)
}
