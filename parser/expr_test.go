// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliclang/helixfc/ast"
	"github.com/heliclang/helixfc/token"
)

// exprOf parses a single `let _ = <expr>` statement and returns the
// expression that was assigned, the smallest well-formed context an
// expression can appear in at Suite level.
func exprOf(t *testing.T, expr string) ast.Node {
	t.Helper()

	prog := mustParse(t, "fn f() {\n  let _ = "+expr+"\n}\n")
	fn := prog.Body[0].(*ast.FuncDecl)
	let := fn.Body.Statements[0].(*ast.LetDecl)

	return let.Value
}

func TestBinaryOpPrecedenceMulBeforeAdd(t *testing.T) {
	n := exprOf(t, "1 + 2 * 3")

	bin, ok := n.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.OpAdd, bin.Op)

	rhs, ok := bin.Rhs.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.OpMul, rhs.Op)
}

func TestBinaryOpLeftAssociative(t *testing.T) {
	n := exprOf(t, "1 - 2 - 3")

	bin := n.(*ast.BinaryOp)
	require.Equal(t, token.OpSub, bin.Op)

	lhs, ok := bin.Lhs.(*ast.BinaryOp)
	require.True(t, ok, "subtraction should nest on the left")
	require.Equal(t, token.OpSub, lhs.Op)
}

func TestPowIsRightAssociative(t *testing.T) {
	n := exprOf(t, "2 ** 3 ** 2")

	bin := n.(*ast.BinaryOp)
	require.Equal(t, token.OpPow, bin.Op)

	rhs, ok := bin.Rhs.(*ast.BinaryOp)
	require.True(t, ok, "'**' should nest on the right")
	require.Equal(t, token.OpPow, rhs.Op)
}

func TestTernaryIsRightAssociativeAndBelowBinary(t *testing.T) {
	n := exprOf(t, "a ? b : c ? d : e")

	cond, ok := n.(*ast.Conditional)
	require.True(t, ok)

	_, elseIsTernary := cond.Else.(*ast.Conditional)
	require.True(t, elseIsTernary, "dangling ternary should bind to the else branch")
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	n := exprOf(t, "-a + b")

	bin := n.(*ast.BinaryOp)
	require.Equal(t, token.OpAdd, bin.Op)

	_, ok := bin.Lhs.(*ast.UnaryOp)
	require.True(t, ok)
}

func TestCastBindsAtPowerTier(t *testing.T) {
	n := exprOf(t, "x is int")

	cast, ok := n.(*ast.Cast)
	require.True(t, ok)

	_, ok = cast.Expr.(*ast.Identifier)
	require.True(t, ok)
}

func TestDotChainBuildsNestedDotAccess(t *testing.T) {
	n := exprOf(t, "a.b.c")

	outer, ok := n.(*ast.DotAccess)
	require.True(t, ok)
	require.Equal(t, "c", outer.Member)

	inner, ok := outer.Target.(*ast.DotAccess)
	require.True(t, ok)
	require.Equal(t, "b", inner.Member)
}

func TestLowercaseCalleeIsFunctionCall(t *testing.T) {
	n := exprOf(t, "doWork(1, 2)")

	call, ok := n.(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestUppercaseCalleeIsStructureInvocation(t *testing.T) {
	n := exprOf(t, "Point(1, 2)")

	inv, ok := n.(*ast.StructureInvocation)
	require.True(t, ok)
	require.Len(t, inv.Values, 2)
}

func TestUppercaseBraceIsObjectInvocation(t *testing.T) {
	n := exprOf(t, "Point{x: 1, y: 2}")

	inv, ok := n.(*ast.ObjectInvocation)
	require.True(t, ok)
	require.Equal(t, []string{"x", "y"}, inv.FieldNames)
}

func TestRelationalLessThanIsNotMisreadAsGenericArgs(t *testing.T) {
	n := exprOf(t, "a < b")

	bin, ok := n.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.OpLt, bin.Op)

	_, isIdent := bin.Rhs.(*ast.Identifier)
	require.True(t, isIdent)
}

func TestGenericInvocationParsesTypeArgs(t *testing.T) {
	n := exprOf(t, "Box<int>(1)")

	gi, ok := n.(*ast.GenericInvocation)
	require.True(t, ok)
	require.Len(t, gi.TypeArgs, 1)
	require.Len(t, gi.Args, 1)
}

func TestChainedRelationalDoesNotBacktrackAsGeneric(t *testing.T) {
	// In a < b > c, tryParseGenericArgs closes `<b>` cleanly, but no
	// '(' follows it, so parsePostfix rewinds to 'a' and this parses as
	// two relational comparisons chained through the parser's normal
	// left-associative climb, (a < b) > c, since '<' and '>' share one
	// precedence tier - this confirms no generic invocation results
	// and the expression parses to a single BinaryOp tree.
	n := exprOf(t, "a < b > c")

	_, ok := n.(*ast.BinaryOp)
	require.True(t, ok)
}

func TestArrayAccessAndIndexing(t *testing.T) {
	n := exprOf(t, "items[0]")

	acc, ok := n.(*ast.ArrayAccess)
	require.True(t, ok)

	lit, ok := acc.Index.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "0", lit.Text)
}

func TestAwaitWrapsOperandAsUnaryOp(t *testing.T) {
	n := exprOf(t, "await fetch()")

	op, ok := n.(*ast.UnaryOp)
	require.True(t, ok)
	require.Equal(t, token.KwAwait, op.Op)

	_, ok = op.Operand.(*ast.FunctionCall)
	require.True(t, ok)
}

func TestParenthesizedPreservesGrouping(t *testing.T) {
	n := exprOf(t, "(1 + 2) * 3")

	bin := n.(*ast.BinaryOp)
	require.Equal(t, token.OpMul, bin.Op)

	_, ok := bin.Lhs.(*ast.Parenthesized)
	require.True(t, ok)
}

func TestAssignmentOperatorFoldsIntoAssignment(t *testing.T) {
	prog := mustParse(t, "fn f() {\n  x += 1\n}\n")
	fn := prog.Body[0].(*ast.FuncDecl)

	assign, ok := fn.Body.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	require.Equal(t, "+=", assign.Op)
}
