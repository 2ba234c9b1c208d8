// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

// List is an ordered, immutable-once-built sequence of Tokens
// belonging to one source file. It supports forward iteration,
// peek-by-offset, and rewind, which the parser needs for its
// occasional two-token lookahead (spec.md §4.4).
type List struct {
	file   string
	tokens []Token
	pos    int
}

// NewList wraps tokens (already ending in an EOF token) as a List for
// the given file name.
func NewList(file string, tokens []Token) *List {
	return &List{file: file, tokens: tokens}
}

// File returns the originating file name.
func (l *List) File() string {
	return l.file
}

// Len returns the total number of tokens, including the trailing EOF.
func (l *List) Len() int {
	return len(l.tokens)
}

// Cursor returns the current forward-iteration position.
func (l *List) Cursor() int {
	return l.pos
}

// Seek moves the cursor to an absolute position, clamped to range.
// It is the rewind primitive the parser uses to back out of a
// tentative parse (e.g. the generic vs. relational '<' tie-break).
func (l *List) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}

	if pos > len(l.tokens) {
		pos = len(l.tokens)
	}

	l.pos = pos
}

// Peek returns the token at Cursor()+offset without advancing.
// Offsets beyond the list return the trailing EOF token.
func (l *List) Peek(offset int) Token {
	idx := l.pos + offset
	if idx < 0 {
		idx = 0
	}

	if idx >= len(l.tokens) {
		return l.tokens[len(l.tokens)-1]
	}

	return l.tokens[idx]
}

// Current returns the token at the cursor, equivalent to Peek(0).
func (l *List) Current() Token {
	return l.Peek(0)
}

// Next returns the current token and advances the cursor by one.
// At end of stream it keeps returning the EOF token without erroring.
func (l *List) Next() Token {
	tok := l.Current()
	if l.pos < len(l.tokens)-1 {
		l.pos++
	}

	return tok
}

// All returns the full backing slice. Callers must not mutate it.
func (l *List) All() []Token {
	return l.tokens
}
