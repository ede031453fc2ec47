package rdfio

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormat  = errors.New("unknown format")
	ErrNotSupported   = errors.New("operation is not supported by format")
	ErrLiteralSubject = errors.New("literal in subject position")
	ErrInvalidName    = errors.New("iri cannot be written as a qualified name")
)

// ParseError is returned when a document cannot be read.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SerializeError is returned when a store cannot be written in a format.
type SerializeError struct {
	Format string
	Err    error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Format, e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }
