// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"unicode"

	"github.com/heliclang/helixfc/ast"
	"github.com/heliclang/helixfc/token"
)

// precedence levels, lowest to highest, per spec.md §4.4's operator
// table. Assignment and the ternary sit below all of these and are
// handled by their own dedicated parse functions.
const (
	precNone = iota
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precPowCast
)

var binaryPrec = map[token.SubKind]int{
	token.OpLOr: precLogicalOr, token.OpLNor: precLogicalOr, token.OpLXor: precLogicalOr,
	token.OpLAnd: precLogicalAnd, token.OpLNand: precLogicalAnd,
	token.OpBitOr: precBitOr, token.OpBitNor: precBitOr,
	token.OpBitXor: precBitXor,
	token.OpBitAnd: precBitAnd, token.OpBitNand: precBitAnd,
	token.OpEq: precEquality, token.OpNeq: precEquality, token.OpIdentical: precEquality,
	token.OpLt: precRelational, token.OpGt: precRelational, token.OpLe: precRelational, token.OpGe: precRelational,
	token.OpShl: precShift, token.OpShr: precShift,
	token.OpAdd: precAdditive, token.OpSub: precAdditive, token.OpAddSub: precAdditive,
	token.OpMul: precMultiplicative, token.OpDiv: precMultiplicative, token.OpMod: precMultiplicative,
	token.OpPow: precPowCast,
}

// rightAssoc holds the operators that bind right-to-left; every other
// binary operator in binaryPrec is left-associative.
var rightAssoc = map[token.SubKind]bool{
	token.OpPow: true,
}

// assignOps is the set of assignment-family operators handled by
// parseAssignment before falling through to the ternary/binary chain.
var assignOps = map[token.SubKind]bool{
	token.OpAssign: true, token.OpAddAssign: true, token.OpSubAssign: true,
	token.OpMulAssign: true, token.OpDivAssign: true, token.OpModAssign: true,
	token.OpAtAssign: true, token.OpNotAssign: true, token.OpPowAssign: true,
}

// parseAssignment is the expression parser's entry point: target op=
// value, falling through to the ternary conditional when no
// assignment operator follows the parsed left side.
func (p *Parser) parseAssignment() ast.Node {
	start := p.cur()
	left := p.parseTernary()

	if assignOps[p.cur().SubKind] {
		op := p.advance()
		value := p.parseAssignment()

		return ast.NewAssignment(left, op.Value, value, p.span(start))
	}

	return left
}

// parseTernary handles `cond ? then : else`, right-associative, sitting
// between assignment and the binary-operator chain per spec.md §4.4.
func (p *Parser) parseTernary() ast.Node {
	start := p.cur()
	cond := p.parseBinary(precLogicalOr)

	if !p.at(token.PunctQuestion) {
		return cond
	}

	p.advance()
	then := p.parseAssignment()
	p.expect(token.PunctColon, "':'")
	els := p.parseTernary()

	return ast.NewConditional(cond, then, els, p.span(start))
}

// parseBinary implements precedence climbing over binaryPrec, folding
// the result into BinaryOp nodes as it goes.
func (p *Parser) parseBinary(minPrec int) ast.Node {
	start := p.cur()
	left := p.parseCast()

	for {
		prec, ok := binaryPrec[p.cur().SubKind]
		if !ok || prec < minPrec {
			return left
		}

		op := p.advance()

		nextMin := prec + 1
		if rightAssoc[op.SubKind] {
			nextMin = prec
		}

		right := p.parseBinary(nextMin)
		left = ast.NewBinaryOp(op.SubKind, left, right, p.span(start))
	}
}

// parseCast handles the power/cast precedence tier: `expr is Type`,
// reusing the "is" keyword already in the token tables since spec.md's
// lexeme set has no dedicated "as" cast keyword.
func (p *Parser) parseCast() ast.Node {
	start := p.cur()
	expr := p.parseUnary()

	for p.at(token.KwIs) {
		p.advance()
		typ := p.parseTypeExpr()
		expr = ast.NewCast(expr, typ, p.span(start))
	}

	return expr
}

// unaryOps is the set of prefix operator sub-kinds spec.md §4.4 names.
var unaryOps = map[token.SubKind]bool{
	token.OpSub: true, token.OpLNot: true, token.OpBitNot: true,
	token.OpInc: true, token.OpDec: true, token.OpMul: true, token.OpBitAnd: true,
}

func (p *Parser) parseUnary() ast.Node {
	start := p.cur()

	if unaryOps[p.cur().SubKind] {
		op := p.advance()
		operand := p.parseUnary()

		return ast.NewUnaryOp(op.SubKind, operand, false, p.span(start))
	}

	return p.parsePostfix()
}

// parsePostfix folds member access, indexing, calls, generic
// invocations and postfix ++/-- onto a primary expression.
func (p *Parser) parsePostfix() ast.Node {
	start := p.cur()
	expr := p.parsePrimary()

	for {
		switch {
		case p.at(token.OpMember):
			p.advance()
			member := p.expectIdent()
			expr = ast.NewDotAccess(expr, member, p.span(start))
		case p.at(token.OpScope):
			p.advance()
			member := p.expectIdent()
			expr = ast.NewScopeAccess(expr, member, p.span(start))
		case p.at(token.PunctLBracket):
			p.advance()
			index := p.parseAssignment()
			p.expect(token.PunctRBracket, "']'")
			expr = ast.NewArrayAccess(expr, index, p.span(start))
		case p.at(token.PunctLParen):
			args := p.parseArgList()
			expr = p.buildCall(expr, args, start)
		case p.at(token.OpLt) && p.looksLikeGenericArgs():
			// Committing to a GenericInvocation here needs more than a
			// closing '>': `a < b > c` also parses a closed `<...>` run,
			// so only a call's '(' immediately after confirms this was
			// ever a generic argument list rather than two chained
			// relational comparisons (spec.md §4.4's tie-break).
			mark := p.toks.Cursor()

			typeArgs, ok := p.tryParseGenericArgs()
			if !ok || !p.at(token.PunctLParen) {
				p.toks.Seek(mark)

				return expr
			}

			args := p.parseArgList()
			expr = ast.NewGenericInvocation(expr, typeArgs, args, p.span(start))
		case p.at(token.PunctLBrace) && !p.noObjectLiteral && p.looksLikeType(expr):
			names, values, _ := p.parseObjectFields()
			expr = ast.NewObjectInvocation(expr, names, values, p.span(start))
		case p.at(token.OpInc) || p.at(token.OpDec):
			op := p.advance()
			expr = ast.NewUnaryOp(op.SubKind, expr, true, p.span(start))
		default:
			return expr
		}
	}
}

// buildCall decides FunctionCall vs StructureInvocation per spec.md
// §4.4's naming-convention tie-break: a callee whose resolved name
// starts with an uppercase letter is read as constructing a type.
func (p *Parser) buildCall(callee ast.Node, args []ast.Node, start token.Token) ast.Node {
	if p.looksLikeType(callee) {
		return ast.NewStructureInvocation(callee, args, p.span(start))
	}

	return ast.NewFunctionCall(callee, args, p.span(start))
}

// looksLikeType applies the capitalization heuristic to whatever name
// a postfix chain's head ultimately resolves to.
func (p *Parser) looksLikeType(n ast.Node) bool {
	name := nameOf(n)
	if name == "" {
		return false
	}

	r := []rune(name)[0]

	return unicode.IsUpper(r)
}

func nameOf(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.DotAccess:
		return v.Member
	case *ast.ScopeAccess:
		return v.Member
	case *ast.PathAccess:
		if len(v.Segments) == 0 {
			return ""
		}

		return v.Segments[len(v.Segments)-1]
	default:
		return ""
	}
}

// looksLikeGenericArgs is a cheap syntactic pre-check before spending a
// backtracked parse attempt: a '<' only introduces type arguments when
// the token right after it could start a TypeExpr.
func (p *Parser) looksLikeGenericArgs() bool {
	next := p.peek(1)

	return next.Kind == token.Identifier || next.Kind == token.Primitive
}

// tryParseGenericArgs attempts `< TypeExpr (, TypeExpr)* >` starting at
// the current '<', backtracking to the entry cursor position on
// failure so the caller can fall back to treating '<' as relational
// less-than (spec.md §4.4's generic-vs-relational tie-break).
func (p *Parser) tryParseGenericArgs() ([]ast.Node, bool) {
	mark := p.toks.Cursor()
	p.advance() // '<'

	var args []ast.Node

	for !p.at(token.OpGt) {
		typ, ok := p.tryParseTypeExprNoFail()
		if !ok {
			p.toks.Seek(mark)

			return nil, false
		}

		args = append(args, typ)

		if p.at(token.PunctComma) {
			p.advance()
			continue
		}

		break
	}

	if !p.at(token.OpGt) {
		p.toks.Seek(mark)

		return nil, false
	}

	p.advance() // '>'

	if len(args) == 0 {
		p.toks.Seek(mark)

		return nil, false
	}

	return args, true
}

// parsePrimary parses the atomic expression forms: literals,
// identifiers, parenthesized expressions, and primitive type names
// used in expression position (e.g. `int(x)` conversions).
func (p *Parser) parsePrimary() ast.Node {
	start := p.cur()

	switch {
	case p.cur().Kind == token.Literal:
		tok := p.advance()

		return ast.NewLiteral(tok.SubKind, tok.Value, p.span(start))
	case p.cur().Kind == token.Identifier:
		return ast.NewIdentifier(p.advance().Value, p.span(start))
	case p.cur().Kind == token.Primitive:
		tok := p.advance()

		return ast.NewIdentifier(tok.Value, p.span(start))
	case p.at(token.PunctLParen):
		p.advance()
		inner := p.parseAssignment()
		p.expect(token.PunctRParen, "')'")

		return ast.NewParenthesized(inner, p.span(start))
	case p.at(token.KwAwait), p.at(token.KwSpawn):
		kw := p.advance()

		return p.parseUnaryKeyword(start, kw.SubKind)
	default:
		p.errorf(p.cur(), "expected expression, found %q", p.cur().Value)
		p.advance()

		return ast.NewIdentifier("<error>", p.span(start))
	}
}

// parseUnaryKeyword wraps the await/spawn keyword operators around
// their operand, reusing UnaryOp with the keyword's own SubKind.
func (p *Parser) parseUnaryKeyword(start token.Token, kw token.SubKind) ast.Node {
	operand := p.parseUnary()

	return ast.NewUnaryOp(kw, operand, false, p.span(start))
}

// parseArgList parses a parenthesized, comma-separated argument list.
func (p *Parser) parseArgList() []ast.Node {
	p.expect(token.PunctLParen, "'('")

	var args []ast.Node

	for !p.at(token.PunctRParen) && !p.cur().IsEOF() {
		args = append(args, p.parseAssignment())

		if p.at(token.PunctComma) {
			p.advance()
			continue
		}

		break
	}

	p.expect(token.PunctRParen, "')'")

	return args
}

// parseTypeExpr parses a type-position expression: a dotted/scoped
// path optionally followed by angle-bracketed type arguments.
func (p *Parser) parseTypeExpr() ast.Node {
	start := p.cur()

	var base ast.Node

	switch {
	case p.cur().Kind == token.Primitive:
		tok := p.advance()
		base = ast.NewIdentifier(tok.Value, p.span(start))
	case p.cur().Kind == token.Identifier:
		segs := []string{p.expectIdent()}

		for p.at(token.OpMember) || p.at(token.OpScope) {
			p.advance()
			segs = append(segs, p.expectIdent())
		}

		if len(segs) == 1 {
			base = ast.NewIdentifier(segs[0], p.span(start))
		} else {
			base = ast.NewPathAccess(segs, p.span(start))
		}
	default:
		p.errorf(p.cur(), "expected type, found %q", p.cur().Value)
		base = ast.NewIdentifier("<error>", p.span(start))
	}

	if p.at(token.OpLt) {
		if typeArgs, ok := p.tryParseGenericArgs(); ok {
			return ast.NewGenericInvocation(base, typeArgs, nil, p.span(start))
		}
	}

	return base
}

// tryParseTypeExprNoFail attempts parseTypeExpr without ever reporting
// a diagnostic, used by tryParseGenericArgs's backtracked lookahead.
func (p *Parser) tryParseTypeExprNoFail() (ast.Node, bool) {
	if p.cur().Kind != token.Identifier && p.cur().Kind != token.Primitive {
		return nil, false
	}

	return p.parseTypeExpr(), true
}
