// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package diag

// ReaderLineSource adapts a single *source.Reader (or anything with
// the same two methods) to LineSource, ignoring the path argument
// since a Reader only ever serves one file.
type ReaderLineSource struct {
	Name string
	Read func(lineNo int) string
}

func (r ReaderLineSource) ReadLine(path string, lineNo int) (string, bool) {
	if path != r.Name {
		return "", false
	}

	return r.Read(lineNo), true
}

// CacheLineSource adapts anything shaped like *source.FileCache to
// LineSource.
type CacheLineSource struct {
	Read func(path string, lineNo int) (string, bool)
}

func (c CacheLineSource) ReadLine(path string, lineNo int) (string, bool) {
	return c.Read(path, lineNo)
}
