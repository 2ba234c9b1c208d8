// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinkRendersFrame(t *testing.T) {
	sink := NewSink(DefaultConfig())
	sink.Report(New(KindParse, Span{Pos: Pos{File: "main.hlx", Line: 2, Col: 3}, Length: 1}, "unexpected token"))

	src := map[int]string{
		1: "fn main() {",
		2: "  x",
		3: "}",
	}

	lines := CacheLineSource{Read: func(path string, lineNo int) (string, bool) {
		v, ok := src[lineNo]
		return v, ok
	}}

	var sb strings.Builder
	sink.Render(&sb, lines)

	out := sb.String()
	require.Contains(t, out, "unexpected token")
	require.Contains(t, out, "main.hlx:2:3")
	require.Contains(t, out, "  x")
}

func TestSinkSyntheticFileSkipsFrame(t *testing.T) {
	sink := NewSink(DefaultConfig())
	sink.Report(New(KindLex, Span{Pos: Pos{File: "<stdin>", Line: 1, Col: 1}, Length: 1}, "bad byte"))

	var sb strings.Builder
	sink.Render(&sb, nil)

	out := sb.String()
	require.Contains(t, out, "<stdin>:1:1")
	require.NotContains(t, out, " | ")
}

func TestSinkErrorBudgetPromotesToFatal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxErrors = 1
	sink := NewSink(cfg)

	sink.Report(New(KindParse, Span{}, "first"))
	require.False(t, sink.Fatal())

	sink.Report(New(KindParse, Span{}, "second"))
	require.True(t, sink.Fatal())

	entries := sink.Entries()
	require.Equal(t, Fatal, entries[1].Level)
}
