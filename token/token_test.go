// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPartition(t *testing.T) {
	// Every lexeme in every table must classify as exactly its own
	// table's kind: the classifier is a partition (spec.md §8).
	for lex, want := range keywords {
		kind, sub := Classify(lex)
		assert.Equal(t, Keyword, kind, "keyword %q", lex)
		assert.Equal(t, want, sub)
	}

	for lex, want := range primitives {
		kind, sub := Classify(lex)
		assert.Equal(t, Primitive, kind, "primitive %q", lex)
		assert.Equal(t, want, sub)
	}

	for lex, want := range operators {
		kind, sub := Classify(lex)
		assert.Equal(t, Operator, kind, "operator %q", lex)
		assert.Equal(t, want, sub)
	}
}

func TestClassifyPunctuationShadowedByOperator(t *testing.T) {
	// '<' and '>' are listed as Punctuation in spec.md §3 but the
	// Operator table wins because it is consulted first.
	kind, sub := Classify("<")
	assert.Equal(t, Operator, kind)
	assert.Equal(t, OpLt, sub)

	kind, sub = Classify(">")
	assert.Equal(t, Operator, kind)
	assert.Equal(t, OpGt, sub)
}

func TestClassifyIdentifierFallback(t *testing.T) {
	kind, sub := Classify("myVariable")
	assert.Equal(t, Identifier, kind)
	assert.Equal(t, IdentSubKind, sub)
}

func TestClassifyLiteralShapes(t *testing.T) {
	cases := []struct {
		value string
		kind  Kind
		sub   SubKind
	}{
		{"42", Literal, LitInt},
		{"-7", Literal, LitInt},
		{"3.14", Literal, LitFloat},
		{`"hello"`, Literal, LitString},
		{"'a'", Literal, LitChar},
		{"true", Literal, LitBoolTrue},
		{"false", Literal, LitBoolFalse},
		{"null", Literal, LitNull},
	}

	for _, c := range cases {
		kind, sub := Classify(c.value)
		assert.Equal(t, c.kind, kind, c.value)
		assert.Equal(t, c.sub, sub, c.value)
	}
}

func TestTokenListPeekRewind(t *testing.T) {
	toks := []Token{
		New(1, 1, 3, 0, "let"),
		New(1, 5, 1, 4, "a"),
		NewEOF(1, 6, 5),
	}

	list := NewList("<test>", toks)

	assert.Equal(t, KwLet, list.Current().SubKind)
	assert.Equal(t, "a", list.Peek(1).Value)

	first := list.Next()
	assert.Equal(t, "let", first.Value)

	mark := list.Cursor()
	_ = list.Next()
	assert.True(t, list.Current().IsEOF())

	list.Seek(mark)
	assert.Equal(t, "a", list.Current().Value)
}
