package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a directory contains none of the default
	// configuration filenames.
	ErrNotFound = errors.New("configuration file not found")

	// ErrUnsupportedFormat indicates a configuration file whose extension
	// matches no supported document format.
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")
)

// ParseError reports a configuration document that exists but cannot be
// decoded by its format parser.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse configuration file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError reports an app configuration that still lacks a
// required value after merging inherited options.
type MissingFieldError struct {
	App   string
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.App == "" {
		return fmt.Sprintf("app configuration is missing required value %q", e.Field)
	}
	return fmt.Sprintf("app %q is missing required value %q", e.App, e.Field)
}
