// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"strings"

	"github.com/heliclang/helixfc/token"
)

// BinaryOp is `lhs op rhs`, e.g. the result of the Pratt expression
// parser folding two operands across an infix operator.
type BinaryOp struct {
	base

	Op       token.SubKind
	Lhs, Rhs Node
}

func NewBinaryOp(op token.SubKind, lhs, rhs Node, span Span) *BinaryOp {
	return &BinaryOp{base: base{span}, Op: op, Lhs: lhs, Rhs: rhs}
}

func (n *BinaryOp) NodeKind() Kind   { return KindBinaryOp }
func (n *BinaryOp) Accept(v Visitor) { v.VisitBinaryOp(n) }
func (n *BinaryOp) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "BinaryOp(" + string(n.Op) + ")\n")
	sb.WriteString(n.Lhs.String(depth + 1))
	sb.WriteString(n.Rhs.String(depth + 1))

	return sb.String()
}

// UnaryOp is a prefix or postfix operator applied to a single operand,
// e.g. `-x`, `!!flag` or `i++`.
type UnaryOp struct {
	base

	Op      token.SubKind
	Operand Node
	Postfix bool // true for postfix ++/-- rather than prefix
}

func NewUnaryOp(op token.SubKind, operand Node, postfix bool, span Span) *UnaryOp {
	return &UnaryOp{base: base{span}, Op: op, Operand: operand, Postfix: postfix}
}

func (n *UnaryOp) NodeKind() Kind   { return KindUnaryOp }
func (n *UnaryOp) Accept(v Visitor) { v.VisitUnaryOp(n) }
func (n *UnaryOp) String(depth int) string {
	return indent(depth) + "UnaryOp(" + string(n.Op) + ")\n" + n.Operand.String(depth+1)
}

// DotAccess is `obj.member`.
type DotAccess struct {
	base

	Target Node
	Member string
}

func NewDotAccess(target Node, member string, span Span) *DotAccess {
	return &DotAccess{base: base{span}, Target: target, Member: member}
}

func (n *DotAccess) NodeKind() Kind   { return KindDotAccess }
func (n *DotAccess) Accept(v Visitor) { v.VisitDotAccess(n) }
func (n *DotAccess) String(depth int) string {
	return indent(depth) + "DotAccess(." + n.Member + ")\n" + n.Target.String(depth+1)
}

// ScopeAccess is `Namespace::member`.
type ScopeAccess struct {
	base

	Target Node
	Member string
}

func NewScopeAccess(target Node, member string, span Span) *ScopeAccess {
	return &ScopeAccess{base: base{span}, Target: target, Member: member}
}

func (n *ScopeAccess) NodeKind() Kind   { return KindScopeAccess }
func (n *ScopeAccess) Accept(v Visitor) { v.VisitScopeAccess(n) }
func (n *ScopeAccess) String(depth int) string {
	return indent(depth) + "ScopeAccess(::" + n.Member + ")\n" + n.Target.String(depth+1)
}

// PathAccess is a multi-segment dotted/scoped path collapsed into a
// single node by the parser once no further accessor follows, used
// for things like qualified type names in a FuncDecl return type.
type PathAccess struct {
	base

	Segments []string
}

func NewPathAccess(segments []string, span Span) *PathAccess {
	return &PathAccess{base: base{span}, Segments: segments}
}

func (n *PathAccess) NodeKind() Kind   { return KindPathAccess }
func (n *PathAccess) Accept(v Visitor) { v.VisitPathAccess(n) }
func (n *PathAccess) String(depth int) string {
	return indent(depth) + "PathAccess(" + strings.Join(n.Segments, ".") + ")\n"
}

// FunctionCall is `callee(args...)`.
type FunctionCall struct {
	base

	Callee Node
	Args   []Node
}

func NewFunctionCall(callee Node, args []Node, span Span) *FunctionCall {
	return &FunctionCall{base: base{span}, Callee: callee, Args: args}
}

func (n *FunctionCall) NodeKind() Kind   { return KindFunctionCall }
func (n *FunctionCall) Accept(v Visitor) { v.VisitFunctionCall(n) }
func (n *FunctionCall) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "FunctionCall\n")
	sb.WriteString(n.Callee.String(depth + 1))

	for _, a := range n.Args {
		sb.WriteString(a.String(depth + 1))
	}

	return sb.String()
}

// ArrayAccess is `target[index]`.
type ArrayAccess struct {
	base

	Target Node
	Index  Node
}

func NewArrayAccess(target, index Node, span Span) *ArrayAccess {
	return &ArrayAccess{base: base{span}, Target: target, Index: index}
}

func (n *ArrayAccess) NodeKind() Kind   { return KindArrayAccess }
func (n *ArrayAccess) Accept(v Visitor) { v.VisitArrayAccess(n) }
func (n *ArrayAccess) String(depth int) string {
	return indent(depth) + "ArrayAccess\n" + n.Target.String(depth+1) + n.Index.String(depth+1)
}

// Parenthesized is `(inner)`, kept as its own node so pretty-printing
// and precedence-sensitive re-emission can restore the parens.
type Parenthesized struct {
	base

	Inner Node
}

func NewParenthesized(inner Node, span Span) *Parenthesized {
	return &Parenthesized{base: base{span}, Inner: inner}
}

func (n *Parenthesized) NodeKind() Kind   { return KindParenthesized }
func (n *Parenthesized) Accept(v Visitor) { v.VisitParenthesized(n) }
func (n *Parenthesized) String(depth int) string {
	return indent(depth) + "Parenthesized\n" + n.Inner.String(depth+1)
}

// Conditional is the ternary expression `cond ? then : else`.
type Conditional struct {
	base

	Cond, Then, Else Node
}

func NewConditional(cond, then, els Node, span Span) *Conditional {
	return &Conditional{base: base{span}, Cond: cond, Then: then, Else: els}
}

func (n *Conditional) NodeKind() Kind   { return KindConditional }
func (n *Conditional) Accept(v Visitor) { v.VisitConditional(n) }
func (n *Conditional) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "Conditional\n")
	sb.WriteString(n.Cond.String(depth + 1))
	sb.WriteString(n.Then.String(depth + 1))
	sb.WriteString(n.Else.String(depth + 1))

	return sb.String()
}

// Cast is a power/cast-precedence `expr is Type` coercion.
type Cast struct {
	base

	Expr Node
	Type Node
}

func NewCast(expr, typ Node, span Span) *Cast {
	return &Cast{base: base{span}, Expr: expr, Type: typ}
}

func (n *Cast) NodeKind() Kind   { return KindCast }
func (n *Cast) Accept(v Visitor) { v.VisitCast(n) }
func (n *Cast) String(depth int) string {
	return indent(depth) + "Cast\n" + n.Expr.String(depth+1) + n.Type.String(depth+1)
}

// GenericInvocation is `Callee<TypeArgs...>(args...)`, the
// tie-broken generic-call interpretation of spec.md §4.4.
type GenericInvocation struct {
	base

	Callee   Node
	TypeArgs []Node
	Args     []Node
}

func NewGenericInvocation(callee Node, typeArgs, args []Node, span Span) *GenericInvocation {
	return &GenericInvocation{base: base{span}, Callee: callee, TypeArgs: typeArgs, Args: args}
}

func (n *GenericInvocation) NodeKind() Kind   { return KindGenericInvocation }
func (n *GenericInvocation) Accept(v Visitor) { v.VisitGenericInvocation(n) }
func (n *GenericInvocation) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "GenericInvocation\n")
	sb.WriteString(n.Callee.String(depth + 1))

	for _, a := range n.TypeArgs {
		sb.WriteString(a.String(depth + 1))
	}

	for _, a := range n.Args {
		sb.WriteString(a.String(depth + 1))
	}

	return sb.String()
}

// ObjectInvocation is a named-field object literal: `Type { field: value, ... }`.
type ObjectInvocation struct {
	base

	Type         Node
	FieldNames   []string
	FieldValues  []Node
}

func NewObjectInvocation(typ Node, fieldNames []string, fieldValues []Node, span Span) *ObjectInvocation {
	return &ObjectInvocation{base: base{span}, Type: typ, FieldNames: fieldNames, FieldValues: fieldValues}
}

func (n *ObjectInvocation) NodeKind() Kind   { return KindObjectInvocation }
func (n *ObjectInvocation) Accept(v Visitor) { v.VisitObjectInvocation(n) }
func (n *ObjectInvocation) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "ObjectInvocation\n")
	sb.WriteString(n.Type.String(depth + 1))

	for i, v := range n.FieldValues {
		sb.WriteString(indent(depth+1) + n.FieldNames[i] + ":\n")
		sb.WriteString(v.String(depth + 2))
	}

	return sb.String()
}

// StructureInvocation is a positional aggregate literal: `Type(a, b, c)`
// distinguished from FunctionCall once the callee is known to name a
// type rather than a function.
type StructureInvocation struct {
	base

	Type   Node
	Values []Node
}

func NewStructureInvocation(typ Node, values []Node, span Span) *StructureInvocation {
	return &StructureInvocation{base: base{span}, Type: typ, Values: values}
}

func (n *StructureInvocation) NodeKind() Kind   { return KindStructureInvocation }
func (n *StructureInvocation) Accept(v Visitor) { v.VisitStructureInvocation(n) }
func (n *StructureInvocation) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "StructureInvocation\n")
	sb.WriteString(n.Type.String(depth + 1))

	for _, v := range n.Values {
		sb.WriteString(v.String(depth + 1))
	}

	return sb.String()
}
