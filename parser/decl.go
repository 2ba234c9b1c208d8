// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/heliclang/helixfc/ast"
	"github.com/heliclang/helixfc/token"
)

// tryParseAccessSpecifier consumes a leading pub/priv/prot/intl
// modifier if present, defaulting to Public (spec.md §3's access
// keywords, grammar sketch's VisDecl?).
func (p *Parser) tryParseAccessSpecifier() ast.AccessSpecifier {
	switch p.cur().SubKind {
	case token.KwPub:
		p.advance()
		return ast.Public
	case token.KwPriv:
		p.advance()
		return ast.Private
	case token.KwProt:
		p.advance()
		return ast.Protected
	case token.KwIntl:
		p.advance()
		return ast.Internal
	default:
		return ast.Public
	}
}

// parseUDT parses the shared struct/class/interface/union body after
// an optional 'const' and VisDecl have already been consumed by the
// caller.
func (p *Parser) parseUDT(start token.Token, vis ast.AccessSpecifier, isConst bool) ast.Node {
	kindTok := p.advance() // struct | class | interface | union
	name := p.expectIdent()

	var derives *ast.UDTDeriveDecl
	if p.isContextual("derives") {
		derives = p.parseUDTDerive()
	}

	var requires *ast.RequiresDecl
	if p.isContextual("requires") {
		requires = p.parseRequiresDecl()
	}

	body := p.parseSuite()

	switch kindTok.SubKind {
	case token.KwClass:
		return ast.NewClassDecl(name, vis, isConst, derives, requires, body, p.span(start))
	case token.KwInterface:
		return ast.NewInterDecl(name, vis, isConst, derives, requires, body, p.span(start))
	case token.KwUnion:
		return ast.NewUnionDecl(name, vis, isConst, derives, requires, body, p.span(start))
	default:
		return ast.NewStructDecl(name, vis, isConst, derives, requires, body, p.span(start))
	}
}

func (p *Parser) parseUDTDerive() *ast.UDTDeriveDecl {
	start := p.advance() // 'derives' (contextual identifier)

	var types []ast.Node
	var vis []ast.AccessSpecifier

	for {
		v := p.tryParseAccessSpecifier()
		t := p.parseTypeExpr()

		types = append(types, t)
		vis = append(vis, v)

		if p.at(token.PunctComma) {
			p.advance()
			continue
		}

		break
	}

	return ast.NewUDTDeriveDecl(types, vis, p.span(start))
}

// parseRequiresDecl parses 'requires' '<' RequiresParamList '>'
// TypeBoundList?. Any malformed clause aborts the enclosing
// declaration per spec.md §4.4.
func (p *Parser) parseRequiresDecl() *ast.RequiresDecl {
	start := p.advance() // 'requires'

	if _, ok := p.expect(token.OpLt, "'<'"); !ok {
		panic(requiresBailout{})
	}

	var params []*ast.RequiresParamDecl

	for !p.at(token.OpGt) {
		pstart := p.cur()

		isConst := false
		if p.at(token.KwConst) {
			isConst = true
			p.advance()
		}

		name := p.expectIdent()

		var typ ast.Node
		if p.at(token.PunctColon) {
			p.advance()
			typ = p.parseTypeExpr()
		}

		var def ast.Node
		if p.at(token.OpAssign) {
			p.advance()
			def = p.parseTypeExpr()
		}

		params = append(params, ast.NewRequiresParamDecl(name, isConst, typ, def, p.span(pstart)))

		if p.at(token.PunctComma) {
			p.advance()
			continue
		}

		break
	}

	if _, ok := p.expect(token.OpGt, "'>'"); !ok {
		panic(requiresBailout{})
	}

	var bounds *ast.TypeBoundList
	if p.at(token.KwIf) {
		bstart := p.cur()

		var list []*ast.TypeBoundDecl
		for p.at(token.KwIf) {
			ifStart := p.advance()
			expr := p.parseAssignment()

			list = append(list, ast.NewTypeBoundDecl(expr, p.span(ifStart)))
		}

		bounds = ast.NewTypeBoundList(list, p.span(bstart))
	}

	return ast.NewRequiresDecl(params, bounds, p.span(start))
}

func (p *Parser) parseEnumDecl(start token.Token, vis ast.AccessSpecifier) ast.Node {
	p.advance() // 'enum'
	name := p.expectIdent()

	var derives ast.Node
	if p.isContextual("derives") {
		p.advance()
		derives = p.parseTypeExpr()
	}

	fnames, fvalues, bodySpan := p.parseObjectFields()
	body := ast.NewObjectInvocation(ast.NewIdentifier(name, bodySpan), fnames, fvalues, bodySpan)

	return ast.NewEnumDecl(name, vis, derives, body, p.span(start))
}

func (p *Parser) parseTypeDecl(start token.Token, vis ast.AccessSpecifier) ast.Node {
	p.advance() // 'type'
	name := p.expectIdent()

	var requires *ast.RequiresDecl
	if p.isContextual("requires") {
		requires = p.parseRequiresDecl()
	}

	p.expect(token.OpAssign, "'='")
	value := p.parseAssignment()
	p.consumeStmtEnd()

	return ast.NewTypeDecl(name, vis, requires, value, p.span(start))
}

func (p *Parser) parseFFIDecl(start token.Token) ast.Node {
	p.advance() // 'ffi'

	var shape ast.FFISpecifier

	switch p.cur().SubKind {
	case token.KwClass:
		shape = ast.FFIClass
	case token.KwInterface:
		shape = ast.FFIInterface
	case token.KwStruct:
		shape = ast.FFIStruct
	case token.KwEnum:
		shape = ast.FFIEnum
	case token.KwUnion:
		shape = ast.FFIUnion
	case token.KwType:
		shape = ast.FFIType
	default:
		p.errorf(p.cur(), "expected ffi shape, found %q", p.cur().Value)
		shape = ast.FFIType
	}

	p.advance()
	name := p.expectIdent()
	body := p.parseSuite()

	return ast.NewFFIDecl(shape, name, body, p.span(start))
}

// parseFuncOrOpDecl consumes the shared specifier run (inline/async/
// static/eval) and then dispatches on 'fn' vs 'op'.
func (p *Parser) parseFuncOrOpDecl(start token.Token, vis ast.AccessSpecifier) ast.Node {
	var specs []ast.FunctionSpecifier

loop:
	for {
		switch p.cur().SubKind {
		case token.KwInline:
			specs = append(specs, ast.FnInline)
			p.advance()
		case token.KwAsync:
			specs = append(specs, ast.FnAsync)
			p.advance()
		case token.KwStatic:
			specs = append(specs, ast.FnStatic)
			p.advance()
		case token.KwEval:
			specs = append(specs, ast.FnEval)
			p.advance()
		default:
			break loop
		}
	}

	if p.at(token.KwOp) {
		return p.parseOpDecl(start, specs)
	}

	return p.parseFuncDecl(start, specs)
}

func (p *Parser) parseFuncDecl(start token.Token, specs []ast.FunctionSpecifier) ast.Node {
	p.expect(token.KwFn, "'fn'")
	name := p.parseDottedName()

	p.expect(token.PunctLParen, "'('")
	params := p.parseParamList()
	p.expect(token.PunctRParen, "')'")

	var retType ast.Node
	if p.at(token.OpArrow) {
		p.advance()
		retType = p.parseTypeExpr()
	}

	var requires *ast.RequiresDecl
	if p.isContextual("requires") {
		requires = p.parseRequiresDecl()
	}

	var qualifier *ast.FunctionQualifier
	var body *ast.Suite

	if p.at(token.OpAssign) {
		p.advance()
		q := p.parseFuncQualifier()
		qualifier = &q
		p.consumeStmtEnd()
	} else {
		body = p.parseSuite()
	}

	return ast.NewFuncDecl(name, specs, params, retType, requires, qualifier, body, p.span(start))
}

func (p *Parser) parseFuncQualifier() ast.FunctionQualifier {
	switch {
	case p.at(token.KwDefault):
		p.advance()
		return ast.FnDefault
	case p.at(token.KwPanic):
		p.advance()
		return ast.FnPanic
	case p.isContextual("delete"):
		p.advance()
		return ast.FnDelete
	case p.at(token.KwConst):
		p.advance()
		return ast.FnQualConst
	default:
		p.errorf(p.cur(), "expected default/panic/delete/const, found %q", p.cur().Value)
		return ast.FnDefault
	}
}

func (p *Parser) parseOpDecl(start token.Token, specs []ast.FunctionSpecifier) ast.Node {
	p.advance() // 'op'
	symbol := p.parseOperatorSymbol()

	p.expect(token.PunctLParen, "'('")
	params := p.parseParamList()
	p.expect(token.PunctRParen, "')'")

	var retType ast.Node
	if p.at(token.OpArrow) {
		p.advance()
		retType = p.parseTypeExpr()
	}

	var requires *ast.RequiresDecl
	if p.isContextual("requires") {
		requires = p.parseRequiresDecl()
	}

	body := p.parseSuite()

	return ast.NewOpDecl(symbol, specs, params, retType, requires, body, p.span(start))
}

// parseOperatorSymbol accepts either a single operator lexeme or the
// bracket pair '[' ']' naming the index operator.
func (p *Parser) parseOperatorSymbol() string {
	if p.cur().Kind == token.Operator {
		return p.advance().Value
	}

	if p.at(token.PunctLBracket) {
		p.advance()
		p.expect(token.PunctRBracket, "']'")

		return "[]"
	}

	p.errorf(p.cur(), "expected operator symbol, found %q", p.cur().Value)

	return p.advance().Value
}

func (p *Parser) parseDottedName() string {
	parts := []string{p.expectIdent()}

	for p.at(token.OpScope) || p.at(token.OpMember) {
		p.advance()
		parts = append(parts, p.expectIdent())
	}

	out := parts[0]
	for _, part := range parts[1:] {
		out += "::" + part
	}

	return out
}

func (p *Parser) parseParamList() []*ast.VarDecl {
	var params []*ast.VarDecl

	for !p.at(token.PunctRParen) {
		params = append(params, p.parseVarDeclParam())

		if p.at(token.PunctComma) {
			p.advance()
			continue
		}

		break
	}

	return params
}

// atVarDeclStart reports whether the cursor sits at a bare `name :
// Type` field declaration in statement position (spec.md §8 scenario
// 6: a struct/interface/union body's field list, e.g.
// `struct F { n: int, d: int }`, parses each `n: int` as a VarDecl
// Suite statement, not a LetDecl). The lookahead is deliberately
// narrow — only IDENT immediately followed by ':' qualifies — so an
// ordinary expression or assignment statement starting with an
// identifier (`foo()`, `foo = 1`, `foo.bar`) never matches this and
// falls through to parseExprOrAssignmentStatement as before.
func (p *Parser) atVarDeclStart() bool {
	return p.cur().Kind == token.Identifier && p.peek(1).SubKind == token.PunctColon
}

func (p *Parser) parseVarDeclParam() *ast.VarDecl {
	start := p.cur()
	name := p.expectIdent()

	var typ ast.Node
	if p.at(token.PunctColon) {
		p.advance()
		typ = p.parseTypeExpr()
	}

	var initv ast.Node
	if p.at(token.OpAssign) {
		p.advance()
		initv = p.parseAssignment()
	}

	return ast.NewVarDecl(name, typ, initv, p.span(start))
}

func (p *Parser) parseLetBindingCore() *ast.LetDecl {
	start := p.advance() // 'let'
	name := p.expectIdent()

	var typ ast.Node
	if p.at(token.PunctColon) {
		p.advance()
		typ = p.parseTypeExpr()
	}

	var value ast.Node
	if p.at(token.OpAssign) {
		p.advance()
		value = p.parseAssignment()
	}

	return ast.NewLetDecl(name, typ, value, p.span(start))
}

func (p *Parser) parseConstDeclCore() *ast.ConstDecl {
	start := p.advance() // 'const'
	name := p.expectIdent()

	var typ ast.Node
	if p.at(token.PunctColon) {
		p.advance()
		typ = p.parseTypeExpr()
	}

	p.expect(token.OpAssign, "'='")
	value := p.parseAssignment()

	return ast.NewConstDecl(name, typ, value, p.span(start))
}

// parseObjectFields parses a brace-delimited `{ name: value, ... }`
// field list shared by enum bodies and ObjectInvocation expressions.
func (p *Parser) parseObjectFields() ([]string, []ast.Node, ast.Span) {
	start := p.cur()
	p.expect(token.PunctLBrace, "'{'")
	p.skipNewlines()

	var names []string
	var values []ast.Node

	for !p.at(token.PunctRBrace) && !p.cur().IsEOF() {
		name := p.expectIdent()
		p.expect(token.PunctColon, "':'")
		value := p.parseAssignment()

		names = append(names, name)
		values = append(values, value)

		if p.at(token.PunctComma) {
			p.advance()
			p.skipNewlines()

			continue
		}

		p.skipNewlines()

		break
	}

	p.expect(token.PunctRBrace, "'}'")

	return names, values, p.span(start)
}
