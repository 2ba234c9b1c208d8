// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"fmt"
	"strings"

	"github.com/heliclang/helixfc/token"
)

// opLexemes maps an operator SubKind back to the exact lexeme the
// lexer consumed for it, the inverse of token/tables.go's operators
// table. SourcePrinter is the only consumer that needs this direction.
var opLexemes = map[token.SubKind]string{
	token.OpAdd: "+", token.OpSub: "-", token.OpMul: "*", token.OpDiv: "/",
	token.OpMod: "%", token.OpAt: "@", token.OpPow: "**", token.OpAddSub: "+-",
	token.OpBitAnd: "&", token.OpBitNand: "~&", token.OpBitOr: "|", token.OpBitNor: "~|",
	token.OpBitXor: "^", token.OpBitNot: "~", token.OpShl: "<<", token.OpShr: ">>",
	token.OpEq: "==", token.OpNeq: "!=", token.OpGt: ">", token.OpLt: "<",
	token.OpGe: ">=", token.OpLe: "<=", token.OpIdentical: "===",
	token.OpAssign: "=", token.OpAddAssign: "+=", token.OpSubAssign: "-=",
	token.OpMulAssign: "*=", token.OpDivAssign: "/=", token.OpModAssign: "%=",
	token.OpAtAssign: "@=", token.OpNotAssign: "~=", token.OpPowAssign: "**=",
	token.OpInc: "++", token.OpDec: "--",
	token.OpLAnd: "&&", token.OpLNand: "!&", token.OpLOr: "||", token.OpLNor: "!|",
	token.OpLXor: "^^", token.OpLNot: "!!",
	token.OpRange: "..", token.OpRangeIncl: "..=",
	token.OpMember: ".", token.OpArrow: "->", token.OpScope: "::",
	token.KwAwait: "await", token.KwSpawn: "spawn",
}

// SourcePrinter renders a Node back to Helix source text, the
// pretty-printer half of spec.md §8's round-trip law (print | lex |
// parse reproduces a structurally equal tree). It covers every node a
// normal program body can contain; UDT/FFI/generics-declaration
// surface area beyond struct/fn is out of scope for this pass (see
// DESIGN.md) and SourcePrinter panics rather than silently emitting
// something unparseable.
type SourcePrinter struct {
	sb strings.Builder
}

// NewSourcePrinter returns a printer ready to render one tree.
func NewSourcePrinter() *SourcePrinter { return &SourcePrinter{} }

// Print renders root and returns the accumulated source text.
func (p *SourcePrinter) Print(root Node) string {
	root.Accept(p)

	return p.sb.String()
}

func (p *SourcePrinter) w(s string)         { p.sb.WriteString(s) }
func (p *SourcePrinter) expr(n Node) string { return NewSourcePrinter().Print(n) }

func (p *SourcePrinter) VisitProgram(n *Program) {
	for i, c := range n.Body {
		if i > 0 {
			p.w("\n")
		}

		c.Accept(p)
	}
}

func (p *SourcePrinter) VisitComment(n *Comment)                     { panic("SourcePrinter: Comment not supported") }
func (p *SourcePrinter) VisitCompilerDirective(n *CompilerDirective) { panic("SourcePrinter: CompilerDirective not supported") }

func (p *SourcePrinter) VisitSuite(n *Suite) {
	p.w("{\n")

	for _, s := range n.Statements {
		p.w(p.expr(s))
		p.w("\n")
	}

	p.w("}")
}

func (p *SourcePrinter) VisitVarDecl(n *VarDecl) {
	p.w(n.Name)

	if n.Type != nil {
		p.w(": " + p.expr(n.Type))
	}

	if n.Init != nil {
		p.w(" = " + p.expr(n.Init))
	}
}

func (p *SourcePrinter) VisitLetDecl(n *LetDecl) {
	p.w("let " + n.Name)

	if n.Type != nil {
		p.w(": " + p.expr(n.Type))
	}

	if n.Value != nil {
		p.w(" = " + p.expr(n.Value))
	}
}

func (p *SourcePrinter) VisitConstDecl(n *ConstDecl) {
	p.w("const " + n.Name)

	if n.Type != nil {
		p.w(": " + p.expr(n.Type))
	}

	p.w(" = " + p.expr(n.Value))
}

func (p *SourcePrinter) VisitFuncDecl(n *FuncDecl) {
	if n.Requires != nil || n.Qualifier != nil || len(n.Specifiers) > 0 {
		panic("SourcePrinter: FuncDecl specifiers/requires/qualifier not supported")
	}

	p.w("fn " + n.Name + "(")

	for i, param := range n.Params {
		if i > 0 {
			p.w(", ")
		}

		p.w(p.expr(param))
	}

	p.w(")")

	if n.RetType != nil {
		p.w(" -> " + p.expr(n.RetType))
	}

	p.w(" " + p.expr(n.Body))
}

func (p *SourcePrinter) VisitOpDecl(n *OpDecl) { panic("SourcePrinter: OpDecl not supported") }

func (p *SourcePrinter) VisitStructDecl(n *StructDecl) {
	if n.Derives != nil || n.Requires != nil {
		panic("SourcePrinter: StructDecl derives/requires not supported")
	}

	p.w("struct " + n.Name + " " + p.expr(n.Body))
}

func (p *SourcePrinter) VisitClassDecl(n *ClassDecl) { panic("SourcePrinter: ClassDecl not supported") }
func (p *SourcePrinter) VisitInterDecl(n *InterDecl) { panic("SourcePrinter: InterDecl not supported") }
func (p *SourcePrinter) VisitEnumDecl(n *EnumDecl)   { panic("SourcePrinter: EnumDecl not supported") }
func (p *SourcePrinter) VisitUnionDecl(n *UnionDecl) { panic("SourcePrinter: UnionDecl not supported") }
func (p *SourcePrinter) VisitTypeDecl(n *TypeDecl)   { panic("SourcePrinter: TypeDecl not supported") }
func (p *SourcePrinter) VisitFFIDecl(n *FFIDecl)     { panic("SourcePrinter: FFIDecl not supported") }

func (p *SourcePrinter) VisitRequiresDecl(n *RequiresDecl) {
	panic("SourcePrinter: RequiresDecl not supported")
}
func (p *SourcePrinter) VisitRequiresParamDecl(n *RequiresParamDecl) {
	panic("SourcePrinter: RequiresParamDecl not supported")
}
func (p *SourcePrinter) VisitTypeBoundList(n *TypeBoundList) {
	panic("SourcePrinter: TypeBoundList not supported")
}
func (p *SourcePrinter) VisitTypeBoundDecl(n *TypeBoundDecl) {
	panic("SourcePrinter: TypeBoundDecl not supported")
}
func (p *SourcePrinter) VisitUDTDeriveDecl(n *UDTDeriveDecl) {
	panic("SourcePrinter: UDTDeriveDecl not supported")
}

func (p *SourcePrinter) VisitAssignment(n *Assignment) {
	p.w(p.expr(n.Target) + " " + n.Op + " " + p.expr(n.Value))
}

func (p *SourcePrinter) VisitForLoop(n *ForLoop) {
	p.w("for ")

	if n.Init != nil {
		p.w(p.expr(n.Init))
	}

	p.w("; ")

	if n.Cond != nil {
		p.w(p.expr(n.Cond))
	}

	p.w("; ")

	if n.Step != nil {
		p.w(p.expr(n.Step))
	}

	p.w(" " + p.expr(n.Body))
}

func (p *SourcePrinter) VisitRangeLoop(n *RangeLoop) {
	p.w("for " + n.Var + " : " + p.expr(n.Range) + " " + p.expr(n.Body))
}

func (p *SourcePrinter) VisitWhileLoop(n *WhileLoop) {
	p.w("while " + p.expr(n.Cond) + " " + p.expr(n.Body))
}

func (p *SourcePrinter) VisitIfStatement(n *IfStatement) {
	p.w("if " + p.expr(n.Cond) + " " + p.expr(n.Then))

	for _, e := range n.ElseIfs {
		p.w(" " + p.expr(e))
	}

	if n.Else != nil {
		p.w(" " + p.expr(n.Else))
	}
}

func (p *SourcePrinter) VisitElseIfStatement(n *ElseIfStatement) {
	p.w("else if " + p.expr(n.Cond) + " " + p.expr(n.Body))
}

func (p *SourcePrinter) VisitElseStatement(n *ElseStatement) {
	p.w("else " + p.expr(n.Body))
}

func (p *SourcePrinter) VisitConditionalStatement(n *ConditionalStatement) {
	p.w(p.expr(n.Expr))
}

func (p *SourcePrinter) VisitReturnStatement(n *ReturnStatement) {
	p.w("return")

	if n.Value != nil {
		p.w(" " + p.expr(n.Value))
	}
}

func (p *SourcePrinter) VisitContinueStatement(n *ContinueStatement) { p.w("continue") }
func (p *SourcePrinter) VisitBreakStatement(n *BreakStatement)       { p.w("break") }
func (p *SourcePrinter) VisitYieldStatement(n *YieldStatement) {
	p.w("yield " + p.expr(n.Value))
}

func (p *SourcePrinter) VisitBinaryOp(n *BinaryOp) {
	p.w(p.expr(n.Lhs) + " " + lexemeOf(n.Op) + " " + p.expr(n.Rhs))
}

func (p *SourcePrinter) VisitUnaryOp(n *UnaryOp) {
	sym := lexemeOf(n.Op)
	if n.Op == token.KwAwait || n.Op == token.KwSpawn {
		sym += " "
	}

	if n.Postfix {
		p.w(p.expr(n.Operand) + sym)
	} else {
		p.w(sym + p.expr(n.Operand))
	}
}

func (p *SourcePrinter) VisitLiteral(n *Literal)       { p.w(n.Text) }
func (p *SourcePrinter) VisitIdentifier(n *Identifier) { p.w(n.Name) }

func (p *SourcePrinter) VisitDotAccess(n *DotAccess)     { p.w(p.expr(n.Target) + "." + n.Member) }
func (p *SourcePrinter) VisitScopeAccess(n *ScopeAccess) { p.w(p.expr(n.Target) + "::" + n.Member) }
func (p *SourcePrinter) VisitPathAccess(n *PathAccess)   { p.w(strings.Join(n.Segments, ".")) }

func (p *SourcePrinter) VisitFunctionCall(n *FunctionCall) {
	p.w(p.expr(n.Callee) + "(")

	for i, a := range n.Args {
		if i > 0 {
			p.w(", ")
		}

		p.w(p.expr(a))
	}

	p.w(")")
}

func (p *SourcePrinter) VisitArrayAccess(n *ArrayAccess) {
	p.w(p.expr(n.Target) + "[" + p.expr(n.Index) + "]")
}

func (p *SourcePrinter) VisitParenthesized(n *Parenthesized) {
	p.w("(" + p.expr(n.Inner) + ")")
}

func (p *SourcePrinter) VisitConditional(n *Conditional) {
	p.w(p.expr(n.Cond) + " ? " + p.expr(n.Then) + " : " + p.expr(n.Else))
}

func (p *SourcePrinter) VisitCast(n *Cast) {
	p.w(p.expr(n.Expr) + " is " + p.expr(n.Type))
}

func (p *SourcePrinter) VisitGenericInvocation(n *GenericInvocation) {
	p.w(p.expr(n.Callee) + "<")

	for i, a := range n.TypeArgs {
		if i > 0 {
			p.w(", ")
		}

		p.w(p.expr(a))
	}

	p.w(">(")

	for i, a := range n.Args {
		if i > 0 {
			p.w(", ")
		}

		p.w(p.expr(a))
	}

	p.w(")")
}

func (p *SourcePrinter) VisitObjectInvocation(n *ObjectInvocation) {
	p.w(p.expr(n.Type) + "{")

	for i, name := range n.FieldNames {
		if i > 0 {
			p.w(", ")
		}

		p.w(name + ": " + p.expr(n.FieldValues[i]))
	}

	p.w("}")
}

func (p *SourcePrinter) VisitStructureInvocation(n *StructureInvocation) {
	p.w(p.expr(n.Type) + "(")

	for i, v := range n.Values {
		if i > 0 {
			p.w(", ")
		}

		p.w(p.expr(v))
	}

	p.w(")")
}

func lexemeOf(sub token.SubKind) string {
	sym, ok := opLexemes[sub]
	if !ok {
		panic(fmt.Sprintf("SourcePrinter: no lexeme registered for operator %v", sub))
	}

	return sym
}
