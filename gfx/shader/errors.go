package shader

import (
	"fmt"
	"strings"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "VERTEX"
	case Fragment:
		return "FRAGMENT"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// CompileError carries the driver's info log for a stage that failed to compile.
type CompileError struct {
	Program string
	Stage   Stage
	Log     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader %q: %s stage compilation failed: %s", e.Program, e.Stage, strings.TrimSpace(e.Log))
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader %q: program linking failed: %s", e.Program, strings.TrimSpace(e.Log))
}

// SourceError reports a shader source file that could not be read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("reading shader source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
