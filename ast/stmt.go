// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "strings"

// Assignment is `target op= value` for any assignment-family operator.
type Assignment struct {
	base

	Target Node
	Op     string
	Value  Node
}

func NewAssignment(target Node, op string, value Node, span Span) *Assignment {
	return &Assignment{base: base{span}, Target: target, Op: op, Value: value}
}

func (n *Assignment) NodeKind() Kind   { return KindAssignment }
func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }
func (n *Assignment) String(depth int) string {
	return indent(depth) + "Assignment(" + n.Op + ")\n" + n.Target.String(depth+1) + n.Value.String(depth+1)
}

// ForLoop is the classic three-clause `for init; cond; step { ... }`.
type ForLoop struct {
	base

	Init, Cond, Step Node // any may be nil for an omitted clause
	Body             *Suite
}

func NewForLoop(init, cond, step Node, body *Suite, span Span) *ForLoop {
	return &ForLoop{base: base{span}, Init: init, Cond: cond, Step: step, Body: body}
}

func (n *ForLoop) NodeKind() Kind   { return KindForLoop }
func (n *ForLoop) Accept(v Visitor) { v.VisitForLoop(n) }
func (n *ForLoop) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "ForLoop\n")

	for _, c := range []Node{n.Init, n.Cond, n.Step} {
		if c != nil {
			sb.WriteString(c.String(depth + 1))
		}
	}

	sb.WriteString(n.Body.String(depth + 1))

	return sb.String()
}

// RangeLoop is `for ident : range { ... }`.
type RangeLoop struct {
	base

	Var   string
	Range Node
	Body  *Suite
}

func NewRangeLoop(v string, rng Node, body *Suite, span Span) *RangeLoop {
	return &RangeLoop{base: base{span}, Var: v, Range: rng, Body: body}
}

func (n *RangeLoop) NodeKind() Kind   { return KindRangeLoop }
func (n *RangeLoop) Accept(v Visitor) { v.VisitRangeLoop(n) }
func (n *RangeLoop) String(depth int) string {
	return indent(depth) + "RangeLoop(" + n.Var + ")\n" + n.Range.String(depth+1) + n.Body.String(depth+1)
}

// WhileLoop is `while cond { ... }`.
type WhileLoop struct {
	base

	Cond Node
	Body *Suite
}

func NewWhileLoop(cond Node, body *Suite, span Span) *WhileLoop {
	return &WhileLoop{base: base{span}, Cond: cond, Body: body}
}

func (n *WhileLoop) NodeKind() Kind   { return KindWhileLoop }
func (n *WhileLoop) Accept(v Visitor) { v.VisitWhileLoop(n) }
func (n *WhileLoop) String(depth int) string {
	return indent(depth) + "WhileLoop\n" + n.Cond.String(depth+1) + n.Body.String(depth+1)
}

// ElseIfStatement is one `else if cond { ... }` arm.
type ElseIfStatement struct {
	base

	Cond Node
	Body *Suite
}

func NewElseIfStatement(cond Node, body *Suite, span Span) *ElseIfStatement {
	return &ElseIfStatement{base: base{span}, Cond: cond, Body: body}
}

func (n *ElseIfStatement) NodeKind() Kind   { return KindElseIfStatement }
func (n *ElseIfStatement) Accept(v Visitor) { v.VisitElseIfStatement(n) }
func (n *ElseIfStatement) String(depth int) string {
	return indent(depth) + "ElseIfStatement\n" + n.Cond.String(depth+1) + n.Body.String(depth+1)
}

// ElseStatement is the terminal `else { ... }` arm.
type ElseStatement struct {
	base

	Body *Suite
}

func NewElseStatement(body *Suite, span Span) *ElseStatement {
	return &ElseStatement{base: base{span}, Body: body}
}

func (n *ElseStatement) NodeKind() Kind   { return KindElseStatement }
func (n *ElseStatement) Accept(v Visitor) { v.VisitElseStatement(n) }
func (n *ElseStatement) String(depth int) string {
	return indent(depth) + "ElseStatement\n" + n.Body.String(depth+1)
}

// IfStatement is `if cond { ... }` plus its chained else-if/else arms.
type IfStatement struct {
	base

	Cond     Node
	Then     *Suite
	ElseIfs  []*ElseIfStatement
	Else     *ElseStatement // nil if absent
}

func NewIfStatement(cond Node, then *Suite, elseIfs []*ElseIfStatement, els *ElseStatement, span Span) *IfStatement {
	return &IfStatement{base: base{span}, Cond: cond, Then: then, ElseIfs: elseIfs, Else: els}
}

func (n *IfStatement) NodeKind() Kind   { return KindIfStatement }
func (n *IfStatement) Accept(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "IfStatement\n")
	sb.WriteString(n.Cond.String(depth + 1))
	sb.WriteString(n.Then.String(depth + 1))

	for _, e := range n.ElseIfs {
		sb.WriteString(e.String(depth + 1))
	}

	if n.Else != nil {
		sb.WriteString(n.Else.String(depth + 1))
	}

	return sb.String()
}

// ConditionalStatement wraps a ternary Conditional expression used in
// statement position (spec.md groups it with statements, distinct from
// the expression-level Conditional node it wraps).
type ConditionalStatement struct {
	base

	Expr *Conditional
}

func NewConditionalStatement(expr *Conditional, span Span) *ConditionalStatement {
	return &ConditionalStatement{base: base{span}, Expr: expr}
}

func (n *ConditionalStatement) NodeKind() Kind   { return KindConditionalStatement }
func (n *ConditionalStatement) Accept(v Visitor) { v.VisitConditionalStatement(n) }
func (n *ConditionalStatement) String(depth int) string {
	return indent(depth) + "ConditionalStatement\n" + n.Expr.String(depth+1)
}

// ReturnStatement is `return expr;` (Value nil for a bare `return;`).
type ReturnStatement struct {
	base

	Value Node
}

func NewReturnStatement(value Node, span Span) *ReturnStatement {
	return &ReturnStatement{base: base{span}, Value: value}
}

func (n *ReturnStatement) NodeKind() Kind   { return KindReturnStatement }
func (n *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) String(depth int) string {
	s := indent(depth) + "ReturnStatement\n"
	if n.Value != nil {
		s += n.Value.String(depth + 1)
	}

	return s
}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ base }

func NewContinueStatement(span Span) *ContinueStatement { return &ContinueStatement{base{span}} }

func (n *ContinueStatement) NodeKind() Kind                { return KindContinueStatement }
func (n *ContinueStatement) Accept(v Visitor)               { v.VisitContinueStatement(n) }
func (n *ContinueStatement) String(depth int) string        { return indent(depth) + "ContinueStatement\n" }

// BreakStatement is `break;`.
type BreakStatement struct{ base }

func NewBreakStatement(span Span) *BreakStatement { return &BreakStatement{base{span}} }

func (n *BreakStatement) NodeKind() Kind         { return KindBreakStatement }
func (n *BreakStatement) Accept(v Visitor)        { v.VisitBreakStatement(n) }
func (n *BreakStatement) String(depth int) string { return indent(depth) + "BreakStatement\n" }

// YieldStatement is `yield expr;`.
type YieldStatement struct {
	base

	Value Node
}

func NewYieldStatement(value Node, span Span) *YieldStatement {
	return &YieldStatement{base: base{span}, Value: value}
}

func (n *YieldStatement) NodeKind() Kind   { return KindYieldStatement }
func (n *YieldStatement) Accept(v Visitor) { v.VisitYieldStatement(n) }
func (n *YieldStatement) String(depth int) string {
	return indent(depth) + "YieldStatement\n" + n.Value.String(depth+1)
}
