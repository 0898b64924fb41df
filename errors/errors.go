package errors

import (
	"errors"
)

// Usage errors.
var ErrNoEnvironment = errors.New("must set environment at least once")

// Configuration errors.
var (
	ErrEnvironmentNotDefined = errors.New("chosen environment is not defined")
	ErrInvalidLogLevel       = errors.New("invalid log level")
	ErrInvalidSubstitution   = errors.New("invalid substitution order")
	ErrInvalidTemplatePath   = errors.New("template path has no extension to strip")
)

// I/O errors.
var (
	ErrReadDefinitions = errors.New("failed to read environment definition file")
	ErrCreateStateDir  = errors.New("failed to create state directory")
	ErrReadState       = errors.New("failed to read state file")
	ErrWriteState      = errors.New("failed to write state file")
	ErrReadTemplate    = errors.New("failed to read template file")
	ErrWriteOutput     = errors.New("failed to write rendered file")
	ErrStartCommand    = errors.New("failed to start command")
)

// Parse errors.
var (
	ErrParseState       = errors.New("failed to parse state file")
	ErrParseDefinitions = errors.New("failed to parse environment definition file")
	ErrParseConfig      = errors.New("failed to parse preform configuration")
)
