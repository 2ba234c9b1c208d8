// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package diag implements the DiagnosticSink (spec.md §4.6): a typed,
// buffered, position-aware error reporter that renders NOTE/WARN/ERR/
// FATAL diagnostics with surrounding source context.
package diag

import (
	"errors"
	"strings"
)

// Level is one of the four diagnostic severities (spec.md §4.6).
type Level int

const (
	Note Level = iota
	Warn
	Err
	Fatal
)

func (l Level) String() string {
	switch l {
	case Note:
		return "note"
	case Warn:
		return "warning"
	case Err:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Kind distinguishes the error taxonomy of spec.md §7.
type Kind int

const (
	KindIO Kind = iota
	KindLex
	KindParse
	KindInternal
)

// Pos is a resolved 1-based line/column position within a named file.
type Pos struct {
	File string
	Line int
	Col  int
}

// Span describes the location and extent of a diagnostic: a starting
// Pos plus the number of bytes/columns the underlined ribbon covers.
type Span struct {
	Pos
	Length int
}

// Error is a positional compiler error, modeled directly on the
// teacher's token.PosError: one root message plus optional chained
// cause and hint, rendered with source context by a Sink.
type Error struct {
	Kind    Kind
	Level   Level
	Span    Span
	Message string
	Fix     string
	Cause   error
}

// New builds an Error at the given span with the given taxonomy Kind.
// Level defaults to Err; use SetLevel to promote to Fatal or demote to
// Warn/Note.
func New(kind Kind, span Span, msg string) *Error {
	return &Error{Kind: kind, Level: Err, Span: span, Message: msg}
}

func (e *Error) SetLevel(l Level) *Error {
	e.Level = l
	return e
}

func (e *Error) SetCause(err error) *Error {
	e.Cause = err
	return e
}

func (e *Error) SetFix(fix string) *Error {
	e.Fix = fix
	return e
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Explain walks err's chain and, if it finds a *diag.Error, renders it
// through a throwaway Sink with default line-context settings. This is
// a convenience for callers (e.g. the CLI boundary) that just want a
// string and do not otherwise need a Sink.
func Explain(err error, lines LineSource) string {
	var dErr *Error
	if errors.As(err, &dErr) {
		s := NewSink(DefaultConfig())
		s.report(dErr)

		var sb strings.Builder
		s.renderOne(&sb, dErr, lines)

		return sb.String()
	}

	return err.Error()
}
