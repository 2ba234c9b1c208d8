// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package source provides memory-mapped, line-indexed, concurrent-safe
// access to compiler source files, plus a process-wide cache of their
// contents (spec.md §4.1, §4.2).
package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/sirupsen/logrus"
)

// ErrFileNotFound mirrors spec.md §7's IoError taxonomy entry.
var ErrFileNotFound = errors.New("source: file not found")

// Reader gives fast, random, line-indexed access to one source file
// using OS page-cache semantics. After construction it is fully
// immutable, so any number of goroutines may call its read methods
// concurrently without external synchronization (spec.md §4.1, §5).
type Reader struct {
	name      string
	blob      []byte
	region    mmap.MMap // nil if the mapping fell back to a plain read
	lineIndex []int     // byte offset of the start of each line
}

// Open memory-maps path (or falls back to a full read for small files
// or when mapping is unavailable) and builds its LineIndex in one
// sequential pass, per spec.md §4.1's "sequential scan then random
// access" intended usage pattern.
func Open(path string) (*Reader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}

		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r := &Reader{name: abs}

	// spec.md §9: mapping is required only for performance on large
	// files; substitute a straight read below ~64 KiB or when the
	// platform cannot map.
	const mmapThreshold = 64 * 1024

	if info.Size() >= mmapThreshold {
		region, mmapErr := mmap.Map(f, mmap.RDONLY, 0)
		if mmapErr == nil {
			r.region = region
		} else {
			logrus.WithError(mmapErr).WithField("file", abs).
				Warn("source: mmap failed, falling back to buffered read")
		}
	}

	if r.region != nil {
		r.blob = normalizeNewlines(r.region)
	} else {
		buf, readErr := os.ReadFile(abs)
		if readErr != nil {
			return nil, readErr
		}

		r.blob = normalizeNewlines(buf)
	}

	r.buildLineIndex()

	return r, nil
}

// buildLineIndex scans the blob once, recording the byte offset where
// each line begins. CRLF sequences are tolerated: the '\r' stays part
// of the previous line's bytes only if the caller fed us raw CRLF
// text; read_line callers get '\n'-delimited spans either way.
func (r *Reader) buildLineIndex() {
	r.lineIndex = append(r.lineIndex, 0)

	for i, b := range r.blob {
		if b == '\n' && i+1 < len(r.blob) {
			r.lineIndex = append(r.lineIndex, i+1)
		}
	}
}

// TotalLines returns the number of newline-terminated lines plus one
// if the buffer is non-empty and does not end in a newline.
func (r *Reader) TotalLines() int {
	if len(r.blob) == 0 {
		return 0
	}

	if r.blob[len(r.blob)-1] == '\n' {
		return len(r.lineIndex)
	}

	return len(r.lineIndex)
}

// ReadLine returns the bytes of the given 1-based line, excluding its
// trailing newline. Out-of-range line numbers return an empty slice.
func (r *Reader) ReadLine(lineNo int) string {
	if lineNo < 1 || lineNo > len(r.lineIndex) {
		return ""
	}

	start := r.lineIndex[lineNo-1]

	var end int
	if lineNo < len(r.lineIndex) {
		end = r.lineIndex[lineNo] - 1 // drop the newline
	} else {
		end = len(r.blob)
		if end > start && r.blob[end-1] == '\n' {
			end--
		}
	}

	if end < start || start > len(r.blob) {
		return ""
	}

	if end > len(r.blob) {
		end = len(r.blob)
	}

	return string(r.blob[start:end])
}

// LineOffset returns the byte offset where the given 1-based line
// begins, for callers (the lexer) that need to stamp tokens with
// absolute file offsets. Out-of-range line numbers return the length
// of the blob.
func (r *Reader) LineOffset(lineNo int) int {
	if lineNo < 1 || lineNo > len(r.lineIndex) {
		return len(r.blob)
	}

	return r.lineIndex[lineNo-1]
}

// ReadLines returns a contiguous slice covering count lines starting
// at startLine, each separated by a single newline. Partial ranges
// clip to the lines actually available.
func (r *Reader) ReadLines(startLine, count int) string {
	if count <= 0 || startLine < 1 {
		return ""
	}

	lines := make([]string, 0, count)

	for ln := startLine; ln < startLine+count; ln++ {
		if ln > len(r.lineIndex) {
			break
		}

		lines = append(lines, r.ReadLine(ln))
	}

	return strings.Join(lines, "\n")
}

// ReadFile returns the whole blob as a string.
func (r *Reader) ReadFile() string {
	return string(r.blob)
}

// FileName returns the canonicalized absolute path this Reader opened.
func (r *Reader) FileName() string {
	return r.name
}

// Close releases the memory mapping, if any. No value returned by
// this Reader may be used after Close.
func (r *Reader) Close() error {
	if r.region != nil {
		err := r.region.Unmap()
		r.region = nil
		r.blob = nil

		return err
	}

	return nil
}

// normalizeNewlines rewrites CRLF to LF, matching spec.md §6's "CRLF
// tolerated by normalizing to \n during read" file-format note.
func normalizeNewlines(buf []byte) []byte {
	if !bytes.Contains(buf, []byte("\r\n")) {
		return buf
	}

	return bytes.ReplaceAll(buf, []byte("\r\n"), []byte("\n"))
}
