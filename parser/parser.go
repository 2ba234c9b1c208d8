// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package parser implements the recursive-descent / Pratt parser of
// spec.md §4.4: it consumes a preprocessed token.List and produces an
// *ast.Program, reporting ParseErrors to a diag.Sink as it goes.
package parser

import (
	"fmt"

	"github.com/heliclang/helixfc/ast"
	"github.com/heliclang/helixfc/diag"
	"github.com/heliclang/helixfc/token"
)

// Parser threads a cursor through a token.List and builds an AST.
// It holds no state beyond the cursor, the sink, and the current
// layout-recovery bookkeeping, so it is used once per file and
// discarded.
type Parser struct {
	toks *token.List
	sink *diag.Sink
	file string

	// cancel is polled at the start of every top-level declaration
	// (spec.md §5's cooperative cancellation). A nil cancel never
	// fires.
	cancel func() bool

	prev token.Token

	// noObjectLiteral suppresses the `Type { ... }` ObjectInvocation
	// reading of a brace while parsing a condition. In the common case
	// the LinePreprocessor has already rewritten the condition's own
	// trailing body brace into ':' before the parser ever sees it, so
	// this rarely has anything to suppress; it is a second line of
	// defense for the position, not the primary fix. Set around
	// condition parsing only.
	noObjectLiteral bool
}

// New constructs a Parser over toks, reporting diagnostics to sink.
// cancel may be nil.
func New(toks *token.List, sink *diag.Sink, cancel func() bool) *Parser {
	return &Parser{toks: toks, sink: sink, file: toks.File(), cancel: cancel}
}

// requiresBailout is the panic value parseRequiresDecl's internal
// expectation failures raise, caught at the enclosing top-level
// declaration boundary (spec.md §4.4: "Errors inside a RequiresDecl
// abort the enclosing declaration and resync to the next top-level
// keyword"). This mirrors go/parser's own internal bailout-panic
// convention for unrecoverable single-declaration errors.
type requiresBailout struct{}

// Parse consumes the whole token stream and returns the resulting
// Program, or nil if cancellation fired before completion (spec.md §5:
// "on cancellation, the parser discards its partial output and
// returns no AST").
func (p *Parser) Parse() *ast.Program {
	start := p.cur()

	p.skipNewlines()

	var body []ast.Node

	for !p.cur().IsEOF() {
		if p.cancel != nil && p.cancel() {
			return nil
		}

		if decl := p.parseTopLevelDecl(); decl != nil {
			body = append(body, decl)
		}

		p.skipNewlines()
	}

	return ast.NewProgram(p.file, nil, body, p.span(start))
}

// parseTopLevelDecl parses one TopLevelDecl production, recovering
// from a requiresBailout by discarding tokens up to the next
// recognizable top-level starter.
func (p *Parser) parseTopLevelDecl() (decl ast.Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(requiresBailout); ok {
				p.syncToTopLevelKeyword()
				decl = nil

				return
			}

			panic(r)
		}
	}()

	start := p.cur()
	vis := p.tryParseAccessSpecifier()

	if p.at(token.KwConst) {
		if isUDTKeyword(p.peek(1).SubKind) {
			p.advance()

			return p.parseUDT(start, vis, true)
		}

		d := p.parseConstDeclCore()
		p.consumeStmtEnd()

		return d
	}

	switch {
	case isUDTKeyword(p.cur().SubKind):
		return p.parseUDT(start, vis, false)
	case p.at(token.KwEnum):
		return p.parseEnumDecl(start, vis)
	case p.at(token.KwType):
		return p.parseTypeDecl(start, vis)
	case p.at(token.KwFFI):
		return p.parseFFIDecl(start)
	case p.at(token.KwLet):
		d := p.parseLetBindingCore()
		p.consumeStmtEnd()

		return d
	case isFuncSpecifier(p.cur().SubKind) || p.at(token.KwFn) || p.at(token.KwOp):
		return p.parseFuncOrOpDecl(start, vis)
	default:
		return p.parseStatement()
	}
}

func isUDTKeyword(sub token.SubKind) bool {
	switch sub {
	case token.KwStruct, token.KwClass, token.KwInterface, token.KwUnion:
		return true
	default:
		return false
	}
}

func isFuncSpecifier(sub token.SubKind) bool {
	switch sub {
	case token.KwInline, token.KwAsync, token.KwStatic, token.KwEval:
		return true
	default:
		return false
	}
}

// --- cursor helpers -------------------------------------------------

func (p *Parser) cur() token.Token       { return p.toks.Current() }
func (p *Parser) peek(n int) token.Token { return p.toks.Peek(n) }

func (p *Parser) advance() token.Token {
	tok := p.toks.Next()
	p.prev = tok

	return tok
}

func (p *Parser) at(sub token.SubKind) bool { return p.cur().SubKind == sub }

// isContextual reports whether the current token is an identifier
// spelling a contextual keyword (spec.md §3's lexeme tables have no
// entry for "requires"/"derives"/"delete"; the grammar
// nonetheless treats them as keywords at specific grammar positions).
func (p *Parser) isContextual(word string) bool {
	return p.cur().Kind == token.Identifier && p.cur().Value == word
}

func (p *Parser) skipNewlines() {
	for p.at(token.LayoutNewline) {
		p.advance()
	}
}

// consumeStmtEnd swallows one trailing NEWLINE if present; a DEDENT or
// EOF right after a statement needs no explicit terminator.
func (p *Parser) consumeStmtEnd() {
	if p.at(token.LayoutNewline) {
		p.advance()
	}
}

// span builds a Span covering from start's first byte to the last
// consumed token's end, the convention every parseX function in this
// package follows.
func (p *Parser) span(start token.Token) ast.Span {
	return ast.Span{Start: start.Offset, End: p.prev.End()}
}

// --- diagnostics & recovery ------------------------------------------

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	length := tok.Length
	if length < 1 {
		length = 1
	}

	msg := fmt.Sprintf(format, args...)
	p.sink.Report(diag.New(diag.KindParse, diag.Span{
		Pos:    diag.Pos{File: p.file, Line: tok.Line, Col: tok.Column},
		Length: length,
	}, msg))
}

// expect consumes the current token if it matches sub, else reports a
// ParseError and leaves the cursor in place so the caller's own
// recovery can take over.
func (p *Parser) expect(sub token.SubKind, desc string) (token.Token, bool) {
	if p.at(sub) {
		return p.advance(), true
	}

	p.errorf(p.cur(), "expected %s, found %q", desc, p.cur().Value)

	return token.Token{}, false
}

func (p *Parser) expectIdent() string {
	if p.cur().Kind == token.Identifier {
		return p.advance().Value
	}

	p.errorf(p.cur(), "expected identifier, found %q", p.cur().Value)

	return "<error>"
}

// recoverStatement discards tokens up to the next NEWLINE, DEDENT, '}'
// or EOF, per spec.md §4.4's Suite-level recovery rule.
func (p *Parser) recoverStatement() {
	for {
		switch p.cur().SubKind {
		case token.LayoutNewline, token.LayoutDedent, token.LayoutEOF, token.PunctRBrace:
			return
		default:
			p.advance()
		}
	}
}

// topLevelStarters is consulted by syncToTopLevelKeyword after a
// requiresBailout.
var topLevelStarters = map[token.SubKind]bool{
	token.KwStruct: true, token.KwClass: true, token.KwInterface: true,
	token.KwUnion: true, token.KwEnum: true, token.KwType: true,
	token.KwFFI: true, token.KwFn: true, token.KwOp: true,
	token.KwLet: true, token.KwConst: true,
	token.KwPub: true, token.KwPriv: true, token.KwProt: true, token.KwIntl: true,
	token.KwInline: true, token.KwAsync: true, token.KwStatic: true, token.KwEval: true,
}

func (p *Parser) syncToTopLevelKeyword() {
	for !p.cur().IsEOF() && !topLevelStarters[p.cur().SubKind] {
		p.advance()
	}
}
