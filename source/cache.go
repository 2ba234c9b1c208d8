// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// FileCache memoizes file contents across the compilation unit
// (spec.md §4.2) so repeated parses of the same path do not hit the
// filesystem twice. It is process-wide state, passed around as an
// explicit dependency rather than a singleton (spec.md §9).
type FileCache struct {
	mu      sync.Mutex
	entries map[string]string

	// fill deduplicates concurrent Fill calls for the same path: if
	// two worker goroutines race to parse the same file, only one
	// actually reads it (spec.md §5's "FileCache ... guarded by one
	// mutex" combined with the worker-parallel scheduling model).
	fill singleflight.Group
}

// NewFileCache constructs an empty cache.
func NewFileCache() *FileCache {
	return &FileCache{entries: make(map[string]string)}
}

// Get returns the cached contents for path, if present.
func (c *FileCache) Get(path string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[path]

	return v, ok
}

// Put inserts or idempotently overwrites path's contents. Per
// spec.md §4.2, last writer wins but callers are expected to only
// ever Put byte-identical contents for a given path.
func (c *FileCache) Put(path, contents string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[path]; exists {
		logrus.WithField("file", path).Debug("source: cache overwrite (expected byte-identical)")
	}

	c.entries[path] = contents
}

// Fill returns the cached contents for path, reading and inserting
// them via open if absent. Concurrent Fill calls for the same path
// that miss the cache collapse into a single open() call.
func (c *FileCache) Fill(path string, open func() (string, error)) (string, error) {
	if v, ok := c.Get(path); ok {
		return v, nil
	}

	v, err, _ := c.fill.Do(path, func() (interface{}, error) {
		if v, ok := c.Get(path); ok {
			return v, nil
		}

		contents, openErr := open()
		if openErr != nil {
			return "", openErr
		}

		c.Put(path, contents)

		return contents, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// GetLine returns the requested 1-based line from path's cached
// contents by a linear scan, a convenience for the diagnostic renderer
// when a Reader is not at hand (spec.md §4.2).
func (c *FileCache) GetLine(path string, lineNo int) (string, bool) {
	contents, ok := c.Get(path)
	if !ok {
		return "", false
	}

	if lineNo < 1 {
		return "", false
	}

	lines := strings.Split(contents, "\n")
	if lineNo > len(lines) {
		return "", false
	}

	return lines[lineNo-1], true
}
