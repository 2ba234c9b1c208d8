// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "strings"

// PrettyDumpVisitor reproduces Node.String(depth) output through the
// Visitor protocol rather than direct recursion, so callers that only
// hold a Visitor (not a Node) can still obtain the same tree dump
// (spec.md §4.5).
type PrettyDumpVisitor struct {
	sb    strings.Builder
	depth int
}

// NewPrettyDumpVisitor returns a fresh visitor ready to dump one tree.
func NewPrettyDumpVisitor() *PrettyDumpVisitor {
	return &PrettyDumpVisitor{}
}

// String returns the accumulated dump after visiting is complete.
func (p *PrettyDumpVisitor) String() string {
	return p.sb.String()
}

// Dump visits root and returns its dump in one call.
func (p *PrettyDumpVisitor) Dump(root Node) string {
	root.Accept(p)

	return p.String()
}

func (p *PrettyDumpVisitor) line(label string) {
	p.sb.WriteString(indent(p.depth) + label + "\n")
}

func (p *PrettyDumpVisitor) descend(children ...Node) {
	p.depth++

	for _, c := range children {
		if c != nil {
			c.Accept(p)
		}
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitProgram(n *Program) {
	p.line("Program("+n.FileName+")")
	p.depth++

	if n.Comment != nil {
		n.Comment.Accept(p)
	}

	for _, c := range n.Body {
		c.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitComment(n *Comment) { p.line("Comment("+n.Text+")") }
func (p *PrettyDumpVisitor) VisitCompilerDirective(n *CompilerDirective) {
	p.line("CompilerDirective("+n.Name+" "+strings.Join(n.Args, " ")+")")
}

func (p *PrettyDumpVisitor) VisitSuite(n *Suite) {
	p.line("Suite")
	p.depth++

	for _, s := range n.Statements {
		s.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitVarDecl(n *VarDecl)     { p.line("VarDecl("+n.Name+")"); p.descend(n.Type, n.Init) }
func (p *PrettyDumpVisitor) VisitLetDecl(n *LetDecl)     { p.line("LetDecl("+n.Name+")"); p.descend(n.Type, n.Value) }
func (p *PrettyDumpVisitor) VisitConstDecl(n *ConstDecl) { p.line("ConstDecl("+n.Name+")"); p.descend(n.Type, n.Value) }
func (p *PrettyDumpVisitor) VisitFuncDecl(n *FuncDecl) {
	p.line("FuncDecl("+n.Name+")")
	p.depth++

	for _, param := range n.Params {
		param.Accept(p)
	}

	if n.Body != nil {
		n.Body.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitOpDecl(n *OpDecl) {
	p.line("OpDecl("+n.Symbol+")")
	p.depth++

	for _, param := range n.Params {
		param.Accept(p)
	}

	n.Body.Accept(p)
	p.depth--
}

func (p *PrettyDumpVisitor) VisitStructDecl(n *StructDecl) {
	p.line("StructDecl("+n.Name+")")
	p.descend(n.Body)
}

func (p *PrettyDumpVisitor) VisitClassDecl(n *ClassDecl) {
	p.line("ClassDecl("+n.Name+")")
	p.descend(n.Body)
}

func (p *PrettyDumpVisitor) VisitInterDecl(n *InterDecl) {
	p.line("InterDecl("+n.Name+")")
	p.descend(n.Body)
}

func (p *PrettyDumpVisitor) VisitEnumDecl(n *EnumDecl) {
	p.line("EnumDecl("+n.Name+")")
	p.descend(n.Body)
}

func (p *PrettyDumpVisitor) VisitUnionDecl(n *UnionDecl) {
	p.line("UnionDecl("+n.Name+")")
	p.descend(n.Body)
}

func (p *PrettyDumpVisitor) VisitTypeDecl(n *TypeDecl) {
	p.line("TypeDecl("+n.Name+")")
	p.descend(n.Value)
}

func (p *PrettyDumpVisitor) VisitFFIDecl(n *FFIDecl) {
	p.line("FFIDecl("+n.Shape.String()+" "+n.Name+")")
	p.descend(n.Body)
}

func (p *PrettyDumpVisitor) VisitRequiresDecl(n *RequiresDecl) {
	p.line("RequiresDecl")
	p.depth++

	for _, param := range n.Params {
		param.Accept(p)
	}

	if n.Bounds != nil {
		n.Bounds.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitRequiresParamDecl(n *RequiresParamDecl) {
	p.line("RequiresParamDecl("+n.Name+")")
}

func (p *PrettyDumpVisitor) VisitTypeBoundList(n *TypeBoundList) {
	p.line("TypeBoundList")
	p.depth++

	for _, b := range n.Bounds {
		b.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitTypeBoundDecl(n *TypeBoundDecl) {
	p.line("TypeBoundDecl")
	p.descend(n.Expr)
}

func (p *PrettyDumpVisitor) VisitUDTDeriveDecl(n *UDTDeriveDecl) {
	p.line("UDTDeriveDecl")
	p.depth++

	for _, t := range n.Types {
		t.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitAssignment(n *Assignment) {
	p.line("Assignment("+n.Op+")")
	p.descend(n.Target, n.Value)
}

func (p *PrettyDumpVisitor) VisitForLoop(n *ForLoop) {
	p.line("ForLoop")
	p.descend(n.Init, n.Cond, n.Step, n.Body)
}

func (p *PrettyDumpVisitor) VisitRangeLoop(n *RangeLoop) {
	p.line("RangeLoop("+n.Var+")")
	p.descend(n.Range, n.Body)
}

func (p *PrettyDumpVisitor) VisitWhileLoop(n *WhileLoop) {
	p.line("WhileLoop")
	p.descend(n.Cond, n.Body)
}

func (p *PrettyDumpVisitor) VisitIfStatement(n *IfStatement) {
	p.line("IfStatement")
	p.depth++
	n.Cond.Accept(p)
	n.Then.Accept(p)

	for _, e := range n.ElseIfs {
		e.Accept(p)
	}

	if n.Else != nil {
		n.Else.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitElseIfStatement(n *ElseIfStatement) {
	p.line("ElseIfStatement")
	p.descend(n.Cond, n.Body)
}

func (p *PrettyDumpVisitor) VisitElseStatement(n *ElseStatement) {
	p.line("ElseStatement")
	p.descend(n.Body)
}

func (p *PrettyDumpVisitor) VisitConditionalStatement(n *ConditionalStatement) {
	p.line("ConditionalStatement")
	p.descend(n.Expr)
}

func (p *PrettyDumpVisitor) VisitReturnStatement(n *ReturnStatement) {
	p.line("ReturnStatement")
	p.descend(n.Value)
}

func (p *PrettyDumpVisitor) VisitContinueStatement(n *ContinueStatement) { p.line("ContinueStatement") }
func (p *PrettyDumpVisitor) VisitBreakStatement(n *BreakStatement)       { p.line("BreakStatement") }
func (p *PrettyDumpVisitor) VisitYieldStatement(n *YieldStatement) {
	p.line("YieldStatement")
	p.descend(n.Value)
}

func (p *PrettyDumpVisitor) VisitBinaryOp(n *BinaryOp) {
	p.line("BinaryOp("+string(n.Op)+")")
	p.descend(n.Lhs, n.Rhs)
}

func (p *PrettyDumpVisitor) VisitUnaryOp(n *UnaryOp) {
	p.line("UnaryOp("+string(n.Op)+")")
	p.descend(n.Operand)
}

func (p *PrettyDumpVisitor) VisitLiteral(n *Literal) {
	p.line("Literal("+string(n.SubKind)+" "+n.Text+")")
}

func (p *PrettyDumpVisitor) VisitIdentifier(n *Identifier) { p.line("Identifier("+n.Name+")") }
func (p *PrettyDumpVisitor) VisitDotAccess(n *DotAccess) {
	p.line("DotAccess(."+n.Member+")")
	p.descend(n.Target)
}

func (p *PrettyDumpVisitor) VisitScopeAccess(n *ScopeAccess) {
	p.line("ScopeAccess(::"+n.Member+")")
	p.descend(n.Target)
}

func (p *PrettyDumpVisitor) VisitPathAccess(n *PathAccess) {
	p.line("PathAccess("+strings.Join(n.Segments, ".")+")")
}

func (p *PrettyDumpVisitor) VisitFunctionCall(n *FunctionCall) {
	p.line("FunctionCall")
	p.depth++
	n.Callee.Accept(p)

	for _, a := range n.Args {
		a.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitArrayAccess(n *ArrayAccess) {
	p.line("ArrayAccess")
	p.descend(n.Target, n.Index)
}

func (p *PrettyDumpVisitor) VisitParenthesized(n *Parenthesized) {
	p.line("Parenthesized")
	p.descend(n.Inner)
}

func (p *PrettyDumpVisitor) VisitConditional(n *Conditional) {
	p.line("Conditional")
	p.descend(n.Cond, n.Then, n.Else)
}

func (p *PrettyDumpVisitor) VisitCast(n *Cast) {
	p.line("Cast")
	p.descend(n.Expr, n.Type)
}

func (p *PrettyDumpVisitor) VisitGenericInvocation(n *GenericInvocation) {
	p.line("GenericInvocation")
	p.depth++
	n.Callee.Accept(p)

	for _, a := range n.TypeArgs {
		a.Accept(p)
	}

	for _, a := range n.Args {
		a.Accept(p)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitObjectInvocation(n *ObjectInvocation) {
	p.line("ObjectInvocation")
	p.depth++
	n.Type.Accept(p)

	for i, v := range n.FieldValues {
		p.line(n.FieldNames[i] + ":")
		p.descend(v)
	}

	p.depth--
}

func (p *PrettyDumpVisitor) VisitStructureInvocation(n *StructureInvocation) {
	p.line("StructureInvocation")
	p.depth++
	n.Type.Accept(p)

	for _, v := range n.Values {
		v.Accept(p)
	}

	p.depth--
}
