package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrMalformedLine marks an env-style line that has no key/value separator.
// It is always wrapped in a *ParseError carrying the offending line number.
var ErrMalformedLine = errors.New("malformed line: missing '=' separator")

// FileError reports a configuration file that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a file extension with no registered loader.
type UnsupportedFormatError struct {
	Path      string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	ext := filepath.Ext(e.Path)
	if ext == "" {
		ext = e.Path
	}
	return fmt.Sprintf("unsupported file type %q (supported: %s)", ext, strings.Join(e.Supported, ", "))
}

// ParseError reports a malformed configuration document. Line is 1-based and
// zero when the failure is not tied to a single line.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
