// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliclang/helixfc/ast"
)

func TestConditionWithUppercaseCallKeepsBodyBraceAsSuite(t *testing.T) {
	// Build() looks uppercase-calleed; the LinePreprocessor has already
	// rewritten this if's body-opening '{' into ':' before the parser
	// runs, so the condition parses as a plain FunctionCall/
	// StructureInvocation and the body still comes through as a Suite.
	prog := mustParse(t, "fn f() {\n  if Build() {\n    return\n  }\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	ifStmt, ok := fn.Body.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.Then.Statements, 1)
}

func TestObjectInvocationStillWorksOutsideCondition(t *testing.T) {
	n := exprOf(t, "Config{debug: true}")

	_, ok := n.(*ast.ObjectInvocation)
	require.True(t, ok)
}

func TestForLoopOmittedClauses(t *testing.T) {
	prog := mustParse(t, "fn f() {\n  for ;; {\n    break\n  }\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	loop, ok := fn.Body.Statements[0].(*ast.ForLoop)
	require.True(t, ok)
	require.Nil(t, loop.Init)
	require.Nil(t, loop.Cond)
	require.Nil(t, loop.Step)
}

func TestNestedSuitesTrackSeparateDedents(t *testing.T) {
	prog := mustParse(t, "fn f() {\n  if true {\n    while false {\n      break\n    }\n  }\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	ifStmt := fn.Body.Statements[0].(*ast.IfStatement)
	require.Len(t, ifStmt.Then.Statements, 1)

	_, ok := ifStmt.Then.Statements[0].(*ast.WhileLoop)
	require.True(t, ok)
}

func TestReturnWithoutValue(t *testing.T) {
	prog := mustParse(t, "fn f() {\n  return\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.Nil(t, ret.Value)
}

func TestYieldStatement(t *testing.T) {
	prog := mustParse(t, "fn f() {\n  yield 1\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	y, ok := fn.Body.Statements[0].(*ast.YieldStatement)
	require.True(t, ok)
	require.NotNil(t, y.Value)
}

func TestAutoVarDeclSugarBuildsLetDecl(t *testing.T) {
	prog := mustParse(t, "fn f() {\n  auto n = 1\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	let, ok := fn.Body.Statements[0].(*ast.LetDecl)
	require.True(t, ok)
	require.Equal(t, "n", let.Name)
	require.Nil(t, let.Type)
}

func TestStatementLevelBailoutRecoversToNextStatement(t *testing.T) {
	_, sink := parseSource(t, "fn f() {\n  let = \n  return\n}\n")

	require.False(t, sink.Empty())
}

func TestBareConditionalExpressionBecomesStatement(t *testing.T) {
	prog := mustParse(t, "fn f() {\n  a ? b() : c()\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	_, ok := fn.Body.Statements[0].(*ast.ConditionalStatement)
	require.True(t, ok)
}
