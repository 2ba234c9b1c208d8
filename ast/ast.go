// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package ast defines the Helix syntax tree: a tagged-interface node
// hierarchy where every node carries a source Span and implements the
// Visitor double-dispatch contract.
package ast

import "fmt"

// Kind discriminates a Node's concrete variant for callers that want
// to switch on it without a type assertion (e.g. JsonDumpVisitor).
type Kind int

const (
	KindProgram Kind = iota
	KindComment
	KindCompilerDirective
	KindSuite
	KindVarDecl
	KindLetDecl
	KindConstDecl
	KindFuncDecl
	KindOpDecl
	KindStructDecl
	KindClassDecl
	KindInterDecl
	KindEnumDecl
	KindUnionDecl
	KindTypeDecl
	KindFFIDecl
	KindRequiresDecl
	KindRequiresParamDecl
	KindTypeBoundList
	KindTypeBoundDecl
	KindUDTDeriveDecl
	KindAssignment
	KindForLoop
	KindRangeLoop
	KindWhileLoop
	KindIfStatement
	KindElseIfStatement
	KindElseStatement
	KindConditionalStatement
	KindReturnStatement
	KindContinueStatement
	KindBreakStatement
	KindYieldStatement
	KindBinaryOp
	KindUnaryOp
	KindLiteral
	KindIdentifier
	KindDotAccess
	KindScopeAccess
	KindPathAccess
	KindFunctionCall
	KindArrayAccess
	KindParenthesized
	KindConditional
	KindCast
	KindGenericInvocation
	KindObjectInvocation
	KindStructureInvocation
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindNames = map[Kind]string{
	KindProgram: "Program", KindComment: "Comment",
	KindCompilerDirective: "CompilerDirective", KindSuite: "Suite",
	KindVarDecl: "VarDecl", KindLetDecl: "LetDecl", KindConstDecl: "ConstDecl",
	KindFuncDecl: "FuncDecl", KindOpDecl: "OpDecl", KindStructDecl: "StructDecl",
	KindClassDecl: "ClassDecl", KindInterDecl: "InterDecl", KindEnumDecl: "EnumDecl",
	KindUnionDecl: "UnionDecl", KindTypeDecl: "TypeDecl", KindFFIDecl: "FFIDecl",
	KindRequiresDecl: "RequiresDecl", KindRequiresParamDecl: "RequiresParamDecl",
	KindTypeBoundList: "TypeBoundList", KindTypeBoundDecl: "TypeBoundDecl",
	KindUDTDeriveDecl: "UDTDeriveDecl", KindAssignment: "Assignment",
	KindForLoop: "ForLoop", KindRangeLoop: "RangeLoop", KindWhileLoop: "WhileLoop",
	KindIfStatement: "IfStatement", KindElseIfStatement: "ElseIfStatement",
	KindElseStatement: "ElseStatement", KindConditionalStatement: "ConditionalStatement",
	KindReturnStatement: "ReturnStatement", KindContinueStatement: "ContinueStatement",
	KindBreakStatement: "BreakStatement", KindYieldStatement: "YieldStatement",
	KindBinaryOp: "BinaryOp", KindUnaryOp: "UnaryOp", KindLiteral: "Literal",
	KindIdentifier: "Identifier", KindDotAccess: "DotAccess",
	KindScopeAccess: "ScopeAccess", KindPathAccess: "PathAccess",
	KindFunctionCall: "FunctionCall", KindArrayAccess: "ArrayAccess",
	KindParenthesized: "Parenthesized", KindConditional: "Conditional",
	KindCast: "Cast", KindGenericInvocation: "GenericInvocation",
	KindObjectInvocation: "ObjectInvocation", KindStructureInvocation: "StructureInvocation",
}

// Span is a node's source extent, expressed as the byte offsets of its
// first and last covering token (spec.md §3: "first_token_offset,
// last_token_offset").
type Span struct {
	Start int
	End   int
}

// Contains reports whether s fully covers other, the invariant spec.md
// §8 requires between every parent and its children.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Node is the common protocol every AST variant implements: a source
// Span, a discriminant for switch-based consumers, double-dispatch
// into a Visitor, and a depth-aware pretty-printer.
type Node interface {
	Span() Span
	NodeKind() Kind
	Accept(v Visitor)
	String(depth int) string
}

// base is embedded by every concrete node to supply the Span half of
// the Node contract without repeating the field and getter everywhere.
type base struct {
	span Span
}

func (b base) Span() Span { return b.span }

// indent renders depth levels of two-space indentation for
// String(depth) implementations.
func indent(depth int) string {
	out := make([]byte, depth*2)
	for i := range out {
		out[i] = ' '
	}

	return string(out)
}
