// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.hlx")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestReaderReadLineMatchesSplit(t *testing.T) {
	contents := "let a = 1;\nfn main() {\n  return a;\n}\n"
	path := writeTemp(t, contents)

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	want := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	for i, line := range want {
		require.Equal(t, line, r.ReadLine(i+1))
	}
}

func TestReaderOutOfRangeIsEmpty(t *testing.T) {
	path := writeTemp(t, "only line\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, "", r.ReadLine(0))
	require.Equal(t, "", r.ReadLine(99))
}

func TestReaderEmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 0, r.TotalLines())
	require.Equal(t, "", r.ReadFile())
}

func TestReaderReadLinesClips(t *testing.T) {
	path := writeTemp(t, "a\nb\nc\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, "a\nb\nc", r.ReadLines(1, 10))
	require.Equal(t, "b\nc", r.ReadLines(2, 5))
}

func TestReaderConcurrentReads(t *testing.T) {
	path := writeTemp(t, strings.Repeat("line of source text\n", 2000))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for n := 1; n <= 100; n++ {
				_ = r.ReadLine(n)
			}

			done <- struct{}{}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
