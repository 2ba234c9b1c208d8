// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/heliclang/helixfc/ast"
	"github.com/heliclang/helixfc/token"
)

// parseCondition parses an expression in condition position, where a
// trailing '{' must stay the body opener rather than an
// ObjectInvocation literal's opener.
func (p *Parser) parseCondition() ast.Node {
	p.noObjectLiteral = true
	expr := p.parseAssignment()
	p.noObjectLiteral = false

	return expr
}

// parseSuite parses a `{ Statement* }` block. The LinePreprocessor has
// already rewritten every Suite-introducing '{' into ':' followed by
// NEWLINE and the matching close into NEWLINE+DEDENT (spec.md §4.3),
// so a real source '{' only ever reaches here for an
// ObjectInvocation/enum body, never a Suite — a Suite runs from its
// leading ':' to the next DEDENT.
func (p *Parser) parseSuite() *ast.Suite {
	start := p.cur()

	p.expect(token.PunctColon, "':'")
	p.skipNewlines()

	var stmts []ast.Node

	for !p.at(token.LayoutDedent) && !p.cur().IsEOF() {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}

		p.skipNewlines()
	}

	if p.at(token.LayoutDedent) {
		p.advance()
	}

	return ast.NewSuite(stmts, p.span(start))
}

// parseStatement parses one Suite-level statement and consumes its
// trailing terminator.
func (p *Parser) parseStatement() (result ast.Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(requiresBailout); ok {
				p.recoverStatement()
				result = nil

				return
			}

			panic(r)
		}
	}()

	p.skipNewlines()

	start := p.cur()

	switch {
	case p.at(token.KwIf):
		return p.parseIfStatement()
	case p.at(token.KwWhile):
		return p.parseWhileLoop()
	case p.at(token.KwFor):
		return p.parseForOrRangeLoop()
	case p.at(token.KwReturn):
		p.advance()

		var value ast.Node
		if !p.at(token.LayoutNewline) && !p.at(token.LayoutDedent) && !p.cur().IsEOF() {
			value = p.parseAssignment()
		}

		stmt := ast.NewReturnStatement(value, p.span(start))
		p.consumeStmtEnd()

		return stmt
	case p.at(token.KwBreak):
		p.advance()
		stmt := ast.NewBreakStatement(p.span(start))
		p.consumeStmtEnd()

		return stmt
	case p.at(token.KwContinue):
		p.advance()
		stmt := ast.NewContinueStatement(p.span(start))
		p.consumeStmtEnd()

		return stmt
	case p.at(token.KwYield):
		p.advance()
		value := p.parseAssignment()
		stmt := ast.NewYieldStatement(value, p.span(start))
		p.consumeStmtEnd()

		return stmt
	case p.at(token.KwLet):
		d := p.parseLetBindingCore()
		p.consumeStmtEnd()

		return d
	case p.at(token.KwConst):
		d := p.parseConstDeclCore()
		p.consumeStmtEnd()

		return d
	case p.at(token.KwAuto):
		d := p.parseAutoVarDecl()
		p.consumeStmtEnd()

		return d
	case p.atVarDeclStart():
		d := p.parseVarDeclParam()
		p.consumeFieldEnd()

		return d
	default:
		return p.parseExprOrAssignmentStatement()
	}
}

// consumeFieldEnd swallows a statement-position VarDecl's terminator:
// a UDT field list separates members with ',' on one line (spec.md §8
// scenario 6's `struct F { n: int, d: int }`) or with NEWLINE across
// several; either is acceptable here, and neither is mandatory right
// before the Suite's closing DEDENT.
func (p *Parser) consumeFieldEnd() {
	if p.at(token.PunctComma) {
		p.advance()

		return
	}

	p.consumeStmtEnd()
}

func (p *Parser) parseIfStatement() ast.Node {
	start := p.advance() // 'if'
	cond := p.parseCondition()
	then := p.parseSuite()

	var elseIfs []*ast.ElseIfStatement

	var els *ast.ElseStatement

	for p.at(token.KwElse) {
		estart := p.advance()

		if p.at(token.KwIf) {
			p.advance()
			econd := p.parseCondition()
			ebody := p.parseSuite()
			elseIfs = append(elseIfs, ast.NewElseIfStatement(econd, ebody, p.span(estart)))

			continue
		}

		ebody := p.parseSuite()
		els = ast.NewElseStatement(ebody, p.span(estart))

		break
	}

	return ast.NewIfStatement(cond, then, elseIfs, els, p.span(start))
}

func (p *Parser) parseWhileLoop() ast.Node {
	start := p.advance() // 'while'
	cond := p.parseCondition()
	body := p.parseSuite()

	return ast.NewWhileLoop(cond, body, p.span(start))
}

// parseForOrRangeLoop disambiguates `for init; cond; step { }` from
// `for ident : range-expr { }` using the two-token lookahead spec.md
// §4.4 calls for: the LinePreprocessor rewrites the first '{' after
// 'for' (the body brace of a brace-free header) into ':', so a ':'
// seen right after a lone loop-variable identifier is the RangeLoop's
// own separator.
func (p *Parser) parseForOrRangeLoop() ast.Node {
	start := p.advance() // 'for'

	if p.cur().Kind == token.Identifier && p.peek(1).SubKind == token.PunctColon {
		name := p.advance().Value
		p.advance() // ':'
		rng := p.parseCondition()
		body := p.parseSuite()

		return ast.NewRangeLoop(name, rng, body, p.span(start))
	}

	var initStmt ast.Node
	if !p.at(token.PunctSemicolon) {
		initStmt = p.parseForClauseInit()
	}

	p.expect(token.PunctSemicolon, "';'")

	var cond ast.Node
	if !p.at(token.PunctSemicolon) {
		cond = p.parseAssignment()
	}

	p.expect(token.PunctSemicolon, "';'")

	var step ast.Node
	if !p.at(token.PunctColon) {
		step = p.parseAssignment()
	}

	body := p.parseSuite()

	return ast.NewForLoop(initStmt, cond, step, body, p.span(start))
}

// parseForClauseInit parses a for-header's init clause, which is
// either a let-binding or a bare expression/assignment.
func (p *Parser) parseForClauseInit() ast.Node {
	if p.at(token.KwLet) {
		return p.parseLetBindingCore()
	}

	return p.parseAssignment()
}

func (p *Parser) parseAutoVarDecl() ast.Node {
	start := p.advance() // 'auto'
	name := p.expectIdent()
	p.expect(token.OpAssign, "'='")
	value := p.parseAssignment()

	return ast.NewLetDecl(name, nil, value, p.span(start))
}

// parseExprOrAssignmentStatement parses an expression statement, which
// parseAssignment already folds an assignment-operator form of into an
// *ast.Assignment when present.
func (p *Parser) parseExprOrAssignmentStatement() ast.Node {
	start := p.cur()
	expr := p.parseAssignment()

	if cond, ok := expr.(*ast.Conditional); ok {
		stmt := ast.NewConditionalStatement(cond, p.span(start))
		p.consumeStmtEnd()

		return stmt
	}

	p.consumeStmtEnd()

	return expr
}
