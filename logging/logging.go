package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
	tags   map[string]string
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewDefaultLoggerWithWriters(prefix, debug, os.Stdout, os.Stderr)
}

// NewDefaultLoggerWithWriters routes DEBUG/INFO to out and WARN/ERROR to errOut.
// Level tags are coloured only when errOut is a terminal that supports it.
func NewDefaultLoggerWithWriters(prefix string, debug bool, out, errOut io.Writer) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	term := termenv.NewOutput(errOut)
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
		tags: map[string]string{
			"DEBUG": term.String("DEBUG").Foreground(term.Color("8")).String(),
			"INFO":  term.String("INFO").Foreground(term.Color("4")).String(),
			"WARN":  term.String("WARN").Foreground(term.Color("3")).String(),
			"ERROR": term.String("ERROR").Foreground(term.Color("1")).Bold().String(),
		},
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) prefixf(level string, format string, args ...any) string {
	tag := l.tags[level]
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, tag, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", tag, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

type nopLogger struct{}

func NewNopLogger() Logger                             { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NewNopLogger()
	}
	return l
}
