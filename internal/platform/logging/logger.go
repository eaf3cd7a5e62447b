// Package logging provides the leveled logger used across the client.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger provides leveled logging. Info/Warn/Debug write to stdout, Error to
// stderr, so piping command output stays clean.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger

	verbose bool
}

// NewLogger creates a Logger writing to stdout/stderr. Debug lines are
// dropped unless verbose is set.
func NewLogger(verbose bool) *Logger {
	return newLogger(os.Stdout, os.Stderr, verbose)
}

func newLogger(out, errOut io.Writer, verbose bool) *Logger {
	flags := 0
	return &Logger{
		info:    log.New(out, "", flags),
		warn:    log.New(out, "", flags),
		err:     log.New(errOut, "", flags),
		debug:   log.New(out, "", flags),
		verbose: verbose,
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Printf(fmt.Sprintf("[%s] INFO  %s", l.timestamp(), format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Printf(fmt.Sprintf("[%s] WARN  %s", l.timestamp(), format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Printf(fmt.Sprintf("[%s] ERROR %s", l.timestamp(), format), args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.debug.Printf(fmt.Sprintf("[%s] DEBUG %s", l.timestamp(), format), args...)
}
