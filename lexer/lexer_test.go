// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliclang/helixfc/diag"
	"github.com/heliclang/helixfc/source"
)

func openTemp(t *testing.T, contents string) *source.Reader {
	t.Helper()

	path := t.TempDir() + "/in.hlx"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	r, err := source.Open(path)
	require.NoError(t, err)

	return r
}

func TestLexerTokenizesKeywordsAndIdentifiers(t *testing.T) {
	r := openTemp(t, "let x = 42\n")
	sink := diag.NewSink(diag.DefaultConfig())

	list := New(r, sink).Tokenize()
	require.True(t, sink.Empty())

	var values []string
	for _, tok := range list.All() {
		if tok.Value != "" {
			values = append(values, tok.Value)
		}
	}

	assert.Equal(t, []string{"let", "x", "=", "42"}, values)
}

func TestLexerEmitsNewlinePerLine(t *testing.T) {
	r := openTemp(t, "let x = 1\nlet y = 2\n")
	sink := diag.NewSink(diag.DefaultConfig())

	list := New(r, sink).Tokenize()

	newlines := 0
	for _, tok := range list.All() {
		if tok.Value == "" && tok.Length == 0 && tok.Kind.String() == "Delimiter" {
			newlines++
		}
	}

	assert.Equal(t, 2, newlines)
}

func TestLexerSkipsLineComment(t *testing.T) {
	r := openTemp(t, "let x = 1 // comment\n")
	sink := diag.NewSink(diag.DefaultConfig())

	list := New(r, sink).Tokenize()
	require.True(t, sink.Empty())

	for _, tok := range list.All() {
		assert.NotContains(t, tok.Value, "comment")
	}
}

func TestLexerSkipsBlockComment(t *testing.T) {
	r := openTemp(t, "let x = 1\n/* block\nspans lines */\nlet y = 2\n")
	sink := diag.NewSink(diag.DefaultConfig())

	list := New(r, sink).Tokenize()
	require.True(t, sink.Empty())

	var values []string
	for _, tok := range list.All() {
		if tok.Value != "" {
			values = append(values, tok.Value)
		}
	}

	assert.Equal(t, []string{"let", "x", "=", "1", "let", "y", "=", "2"}, values)
}

func TestLexerUnclosedBlockCommentReportsError(t *testing.T) {
	r := openTemp(t, "let x = 1\n/* never closed\n")
	sink := diag.NewSink(diag.DefaultConfig())

	New(r, sink).Tokenize()

	require.False(t, sink.Empty())
	assert.Contains(t, sink.Entries()[0].Message, "unclosed block comment")
}

func TestLexerScansStringAndCharLiterals(t *testing.T) {
	r := openTemp(t, `let s = "hi" let c = 'a'`+"\n")
	sink := diag.NewSink(diag.DefaultConfig())

	list := New(r, sink).Tokenize()
	require.True(t, sink.Empty())

	var values []string
	for _, tok := range list.All() {
		if tok.Value != "" {
			values = append(values, tok.Value)
		}
	}

	assert.Equal(t, []string{"let", "s", "=", `"hi"`, "let", "c", "=", "'a'"}, values)
}
