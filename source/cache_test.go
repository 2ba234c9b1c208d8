// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileCachePutGet(t *testing.T) {
	c := NewFileCache()

	_, ok := c.Get("/a.hlx")
	require.False(t, ok)

	c.Put("/a.hlx", "content")

	v, ok := c.Get("/a.hlx")
	require.True(t, ok)
	require.Equal(t, "content", v)
}

func TestFileCacheFillDedups(t *testing.T) {
	c := NewFileCache()

	var opens int64

	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			v, err := c.Fill("/shared.hlx", func() (string, error) {
				atomic.AddInt64(&opens, 1)

				return "shared contents", nil
			})
			require.NoError(t, err)
			require.Equal(t, "shared contents", v)
		}()
	}

	wg.Wait()

	require.Equal(t, int64(1), atomic.LoadInt64(&opens))
}

func TestFileCacheGetLine(t *testing.T) {
	c := NewFileCache()
	c.Put("/f.hlx", "one\ntwo\nthree")

	line, ok := c.GetLine("/f.hlx", 2)
	require.True(t, ok)
	require.Equal(t, "two", line)

	_, ok = c.GetLine("/f.hlx", 10)
	require.False(t, ok)

	_, ok = c.GetLine("/missing.hlx", 1)
	require.False(t, ok)
}
