// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package lexer converts a source file's bytes into a classified
// token.List, per spec.md §4.3, then rewrites its layout via the
// LinePreprocessor so the parser can treat brace-delimited and
// line-oriented blocks uniformly.
package lexer

import (
	"sort"
	"strings"

	"github.com/heliclang/helixfc/diag"
	"github.com/heliclang/helixfc/source"
	"github.com/heliclang/helixfc/token"
)

// symbolLexemes is every exact-match operator/punctuation lexeme the
// grammar defines (spec.md §3), mirroring token's private tables so
// the lexer knows what strings to look for without token exporting
// its internal maps.
var symbolLexemes = []string{
	"===", "**=", "..=", "...",
	"==", "!=", ">=", "<=", "+=", "-=", "*=", "/=", "%=", "@=", "~=",
	"++", "--", "**", "+-", "&&", "!&", "||", "!|", "^^", "!!", "<<", ">>",
	"~&", "~|", "->", "::", "..",
	"+", "-", "*", "/", "%", "@", "&", "|", "^", "~", ">", "<", "=", ".",
	"(", ")", "{", "}", "[", "]", ",", ";", ":", "?",
}

// sortedSymbols is symbolLexemes ordered longest first, so the greedy
// longest-prefix match in longestSymbol never needs to backtrack.
var sortedSymbols = sortedCopy(symbolLexemes)

func sortedCopy(syms []string) []string {
	out := append([]string(nil), syms...)
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })

	return out
}

// Lexer tokenizes one source file, line by line, via its Reader.
type Lexer struct {
	reader *source.Reader
	sink   *diag.Sink

	inBlockComment bool
}

// New constructs a Lexer over an already-open Reader, reporting
// lexical errors (spec.md §7 LexError) to sink.
func New(reader *source.Reader, sink *diag.Sink) *Lexer {
	return &Lexer{reader: reader, sink: sink}
}

// Tokenize implements the algorithm of spec.md §4.3: iterate lines,
// track the block-comment flag, split each remaining line into
// lexemes by greedy longest-prefix match, classify each, and emit a
// layout NEWLINE at each logical line end. The result still needs a
// pass through Preprocessor.Process before a parser can consume it.
func (l *Lexer) Tokenize() *token.List {
	var toks []token.Token

	total := l.reader.TotalLines()

	for ln := 1; ln <= total; ln++ {
		line := l.reader.ReadLine(ln)

		if l.inBlockComment {
			if strings.Contains(line, "*/") {
				l.inBlockComment = false
			}

			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "/*") {
			l.inBlockComment = !strings.Contains(trimmed[2:], "*/")

			continue
		}

		lineToks, emittedAny := l.tokenizeLine(ln, line)
		toks = append(toks, lineToks...)

		if emittedAny {
			toks = append(toks, token.NewNewline(ln, len(line)+1, l.reader.LineOffset(ln)+len(line)))
		}
	}

	if l.inBlockComment {
		l.sink.Report(diag.New(diag.KindLex, diag.Span{
			Pos: diag.Pos{File: l.reader.FileName(), Line: total, Col: 1}, Length: 1,
		}, "unclosed block comment"))

		return token.NewList(l.reader.FileName(), []token.Token{token.NewEOF(total+1, 1, 0)})
	}

	lastLine := total + 1
	toks = append(toks, token.NewEOF(lastLine, 1, len(l.reader.ReadFile())))

	return token.NewList(l.reader.FileName(), toks)
}

// tokenizeLine splits one line's bytes into classified tokens via
// greedy longest-prefix matching against the lexeme tables, treating
// space/tab as separators. Unknown bytes are reported as LexErrors and
// skipped so the lexer can continue past them.
func (l *Lexer) tokenizeLine(ln int, line string) ([]token.Token, bool) {
	var toks []token.Token

	base := l.reader.LineOffset(ln)

	col := 1
	i := 0

	for i < len(line) {
		b := line[i]

		if b == ' ' || b == '\t' {
			i++
			col++

			continue
		}

		if strings.HasPrefix(line[i:], "//") {
			break // line comment: rest of line is dropped
		}

		if lex, ok := longestSymbol(line[i:]); ok {
			toks = append(toks, token.New(ln, col, len(lex), base+i, lex))
			i += len(lex)
			col += len(lex)

			continue
		}

		if isIdentStart(b) {
			start := i
			for i < len(line) && isIdentPart(line[i]) {
				i++
			}

			value := line[start:i]
			toks = append(toks, token.New(ln, col, len(value), base+start, value))
			col += len(value)

			continue
		}

		if lit, n, ok := scanLiteral(line[i:]); ok {
			toks = append(toks, token.New(ln, col, n, base+i, lit))
			i += n
			col += n

			continue
		}

		l.sink.Report(diag.New(diag.KindLex, diag.Span{
			Pos: diag.Pos{File: l.reader.FileName(), Line: ln, Col: col}, Length: 1,
		}, "unexpected byte '"+string(b)+"'"))
		i++
		col++
	}

	return toks, len(toks) > 0
}

// longestSymbol returns the longest operator/punctuation lexeme that
// prefixes s, if any.
func longestSymbol(s string) (string, bool) {
	for _, sym := range sortedSymbols {
		if strings.HasPrefix(s, sym) {
			return sym, true
		}
	}

	return "", false
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// scanLiteral recognizes number, string, and char literals by shape.
// It returns the literal's full source text (quotes included for
// string/char) and its byte length.
func scanLiteral(s string) (string, int, bool) {
	switch s[0] {
	case '"':
		return scanQuoted(s, '"')
	case '\'':
		return scanQuoted(s, '\'')
	}

	if s[0] >= '0' && s[0] <= '9' {
		return scanNumber(s)
	}

	return "", 0, false
}

func scanQuoted(s string, quote byte) (string, int, bool) {
	i := 1
	escaping := false

	for i < len(s) {
		c := s[i]
		i++

		if escaping {
			escaping = false
			continue
		}

		if c == '\\' {
			escaping = true
			continue
		}

		if c == quote {
			return s[:i], i, true
		}
	}

	return "", 0, false
}

func scanNumber(s string) (string, int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i < len(s) && s[i] == '.' && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}

	return s[:i], i, true
}
