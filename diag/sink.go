// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Config holds the DiagnosticSink knobs spec.md §4.6 calls "fixed by
// the build" — this port makes them load-bearing configuration
// instead (see the config package).
type Config struct {
	// LinesToShow is how many lines of context surround the error
	// line in a rendered frame. Spec.md recommends 5.
	LinesToShow int
	// MaxErrors is the ERR budget; exceeding it promotes the next ERR
	// to FATAL (spec.md §4.6's abort policy).
	MaxErrors int
	// ColorOutput enables the ANSI color scheme.
	ColorOutput bool
}

// DefaultConfig returns spec.md's recommended defaults.
func DefaultConfig() Config {
	return Config{LinesToShow: 5, MaxErrors: 50, ColorOutput: true}
}

// LineSource resolves source line text for diagnostic rendering. A
// *source.Reader or *source.FileCache is adapted to it through
// ReaderLineSource or CacheLineSource (lines.go).
type LineSource interface {
	ReadLine(path string, lineNo int) (string, bool)
}

// Sink collects diagnostics and renders them with source context. It
// is internally synchronized (spec.md §5): appends are atomic and
// rendering to an io.Writer is serialized so frames from different
// diagnostics never interleave.
type Sink struct {
	mu      sync.Mutex
	cfg     Config
	entries []*Error
	errCount int
	fatal   bool
}

// NewSink constructs an empty Sink with the given Config.
func NewSink(cfg Config) *Sink {
	return &Sink{cfg: cfg}
}

// Report appends a diagnostic, applying the error-budget promotion
// policy: once errCount exceeds cfg.MaxErrors, the triggering ERR is
// promoted to FATAL (spec.md §4.6).
func (s *Sink) Report(e *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report(e)
}

// report is the unlocked core of Report, also used by Explain's
// throwaway sink.
func (s *Sink) report(e *Error) {
	if e.Level == Err {
		s.errCount++
		if s.errCount > s.cfg.MaxErrors {
			e.Level = Fatal
		}
	}

	if e.Level == Fatal {
		s.fatal = true
	}

	s.entries = append(s.entries, e)
}

// Fatal reports whether a FATAL diagnostic has been recorded, the
// abort signal spec.md §4.6/§7 says halts the pipeline at the current
// boundary.
func (s *Sink) Fatal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fatal
}

// Entries returns a snapshot of the recorded diagnostics, in the
// order they were reported. Diagnostics from one file appear in
// source order; diagnostics across files are unordered relative to
// each other at the Sink level (callers partition by file if needed).
func (s *Sink) Entries() []*Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Error, len(s.entries))
	copy(out, s.entries)

	return out
}

// Empty reports whether no diagnostics have been recorded.
func (s *Sink) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries) == 0
}

// Render writes every recorded diagnostic to w, one frame at a time,
// serialized under the Sink's lock so two frames never interleave
// even if Render is called concurrently with Report.
func (s *Sink) Render(w io.Writer, lines LineSource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder

	for _, e := range s.entries {
		s.renderOne(&sb, e, lines)
	}

	_, _ = io.WriteString(w, sb.String())
}

// isSynthetic reports whether a file name is a placeholder like
// "<stdin>" or "<test>", per spec.md §4.6's "skip the code frame" rule.
func isSynthetic(file string) bool {
	return strings.HasPrefix(file, "<") && strings.HasSuffix(file, ">")
}

func levelColor(l Level) *color.Color {
	switch l {
	case Note:
		return color.New(color.FgCyan)
	case Warn:
		return color.New(color.FgYellow)
	case Err:
		return color.New(color.FgRed)
	case Fatal:
		return color.New(color.FgRed, color.Bold, color.BlinkSlow)
	default:
		return color.New()
	}
}

// renderOne renders a single diagnostic's header, and — unless the
// file is synthetic — a gutter-and-caret-ribbon source frame centered
// on the error line (spec.md §4.6).
func (s *Sink) renderOne(sb *strings.Builder, e *Error, lines LineSource) {
	c := levelColor(e.Level)
	if !s.cfg.ColorOutput {
		c.DisableColor()
	}

	header := fmt.Sprintf("%s: %s", e.Level, e.Message)
	sb.WriteString(c.Sprint(header))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf("  --> %s:%d:%d\n", e.Span.File, e.Span.Line, e.Span.Col))

	if isSynthetic(e.Span.File) {
		sb.WriteByte('\n')
		return
	}

	if lines == nil {
		sb.WriteByte('\n')
		return
	}

	s.renderFrame(sb, e, lines)

	if e.Fix != "" {
		sb.WriteString(fmt.Sprintf("  = fix: %s\n", e.Fix))
	}

	sb.WriteByte('\n')
}

// renderFrame prints up to cfg.LinesToShow lines of context centered
// on e.Span.Line, each with a line-number gutter, and underlines the
// span with a caret ribbon of length Span.Length starting at Span.Col
// (a Length of 0 or 1 is drawn as "^~~~").
func (s *Sink) renderFrame(sb *strings.Builder, e *Error, lines LineSource) {
	show := s.cfg.LinesToShow
	if show < 1 {
		show = 1
	}

	half := show / 2
	first := e.Span.Line - half
	if first < 1 {
		first = 1
	}

	last := first + show - 1

	indent := len(strconv.Itoa(last))

	for ln := first; ln <= last; ln++ {
		text, ok := lines.ReadLine(e.Span.File, ln)
		if !ok {
			continue
		}

		sb.WriteString(fmt.Sprintf("%*d | %s\n", indent, ln, text))

		if ln == e.Span.Line {
			sb.WriteString(strings.Repeat(" ", indent))
			sb.WriteString(" | ")
			sb.WriteString(strings.Repeat(" ", max(0, e.Span.Col-1)))

			ribbon := e.Span.Length
			if ribbon <= 1 {
				sb.WriteString("^~~~")
			} else {
				sb.WriteString(strings.Repeat("^", ribbon))
			}

			sb.WriteByte('\n')
		}
	}
}
