// Package logWriter provides the color logger used across the application.
package logWriter

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Logger wraps a standard Go logger with color output. It accepts any
// io.Writer so files, buffers and stdout all use the same logger.
type Logger struct {
	writer   *log.Logger
	disabled bool
}

// New creates a Logger writing to w. With timestamps set, standard log
// flags are included; with disabled set, all output is suppressed.
func New(w io.Writer, timestamps, disabled bool) *Logger {
	var flags int
	if timestamps {
		flags = log.LstdFlags
	}
	return &Logger{
		writer:   log.New(w, "", flags),
		disabled: disabled,
	}
}

// Infof logs a formatted message in white.
func (l *Logger) Infof(format string, a ...any) {
	if !l.disabled {
		l.writer.Println(color.HiWhiteString(format, a...))
	}
}

// Successf logs a formatted message in green.
func (l *Logger) Successf(format string, a ...any) {
	if !l.disabled {
		l.writer.Println(color.HiGreenString(format, a...))
	}
}

// Warnf logs a formatted message in yellow.
func (l *Logger) Warnf(format string, a ...any) {
	if !l.disabled {
		l.writer.Println(color.HiYellowString(format, a...))
	}
}

// Errorf logs a formatted message in red.
func (l *Logger) Errorf(format string, a ...any) {
	if !l.disabled {
		l.writer.Println(color.HiRedString(format, a...))
	}
}

var highlight = color.New(color.FgBlack, color.BgHiWhite).SprintFunc()

// Highlightf logs a formatted message in black on a white background.
func (l *Logger) Highlightf(format string, a ...any) {
	if !l.disabled {
		l.writer.Println(highlight(fmt.Sprintf(format, a...)))
	}
}
