// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heliclang/helixfc/token"
)

func subKinds(toks []token.Token) []token.SubKind {
	out := make([]token.SubKind, len(toks))
	for i, t := range toks {
		out[i] = t.SubKind
	}

	return out
}

func TestPreprocessorRewritesIfBrace(t *testing.T) {
	raw := []token.Token{
		token.New(1, 1, 2, 0, "if"),
		token.New(1, 4, 1, 3, "x"),
		token.New(1, 6, 1, 5, "{"),
		token.NewNewline(1, 7, 6),
		token.New(2, 1, 1, 7, "y"),
		token.NewNewline(2, 2, 8),
		token.New(3, 1, 1, 9, "}"),
		token.NewEOF(4, 1, 10),
	}

	out := NewPreprocessor(raw).Process()
	kinds := subKinds(out)

	assert.Contains(t, kinds, token.PunctColon)
	assert.Contains(t, kinds, token.LayoutDedent)
	assert.NotContains(t, kinds, token.PunctLBrace)
	assert.NotContains(t, kinds, token.PunctRBrace)
}

func TestPreprocessorPreservesNonBodyBrace(t *testing.T) {
	raw := []token.Token{
		token.New(1, 1, 3, 0, "let"),
		token.New(1, 5, 1, 4, "s"),
		token.New(1, 7, 1, 6, "="),
		token.New(1, 9, 1, 8, "{"),
		token.New(1, 10, 1, 9, "1"),
		token.New(1, 11, 1, 10, "}"),
		token.NewNewline(1, 12, 11),
		token.NewEOF(2, 1, 12),
	}

	out := NewPreprocessor(raw).Process()
	kinds := subKinds(out)

	assert.Contains(t, kinds, token.PunctLBrace)
	assert.Contains(t, kinds, token.PunctRBrace)
	assert.NotContains(t, kinds, token.LayoutDedent)
}

func TestPreprocessorForHeaderSemicolonsSurvive(t *testing.T) {
	raw := []token.Token{
		token.New(1, 1, 3, 0, "for"),
		token.New(1, 5, 1, 4, "i"),
		token.New(1, 7, 1, 6, ";"),
		token.New(1, 9, 1, 8, "i"),
		token.New(1, 11, 1, 10, ";"),
		token.New(1, 13, 1, 12, "i"),
		token.New(1, 15, 1, 14, "{"),
		token.NewNewline(1, 16, 15),
		token.New(2, 1, 1, 16, "}"),
		token.NewEOF(3, 1, 17),
	}

	out := NewPreprocessor(raw).Process()

	semicolons := 0
	for _, tok := range out {
		if tok.SubKind == token.PunctSemicolon {
			semicolons++
		}
	}

	assert.Equal(t, 2, semicolons)
}

func TestPreprocessorContinuationSuppressesNewline(t *testing.T) {
	raw := []token.Token{
		token.New(1, 1, 1, 0, "x"),
		token.New(1, 3, 1, 2, "+"),
		token.New(1, 5, 3, 4, "..."),
		token.NewNewline(1, 8, 7),
		token.New(2, 1, 1, 8, "y"),
		token.NewNewline(2, 2, 9),
		token.NewEOF(3, 1, 10),
	}

	out := NewPreprocessor(raw).Process()
	kinds := subKinds(out)

	newlineCount := 0
	for _, k := range kinds {
		if k == token.LayoutNewline {
			newlineCount++
		}
	}

	assert.Equal(t, 1, newlineCount)
}

func TestPreprocessorCollapsesBlankLines(t *testing.T) {
	raw := []token.Token{
		token.New(1, 1, 1, 0, "x"),
		token.NewNewline(1, 2, 1),
		token.NewNewline(2, 1, 2),
		token.NewNewline(3, 1, 3),
		token.New(4, 1, 1, 4, "y"),
		token.NewNewline(4, 2, 5),
		token.NewEOF(5, 1, 6),
	}

	out := NewPreprocessor(raw).Process()

	newlineCount := 0
	for _, t := range out {
		if t.SubKind == token.LayoutNewline {
			newlineCount++
		}
	}

	assert.Equal(t, 2, newlineCount)
}
