// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliclang/helixfc/ast"
	"github.com/heliclang/helixfc/diag"
	"github.com/heliclang/helixfc/lexer"
	"github.com/heliclang/helixfc/source"
	"github.com/heliclang/helixfc/token"
)

// parseSource runs the full pipeline (source.Open -> lexer.Tokenize ->
// lexer.Preprocessor -> token.List -> parser.Parse) over contents and
// returns the resulting Program alongside the diagnostic sink, the way
// helixfc.ParseFile itself is wired.
func parseSource(t *testing.T, contents string) (*ast.Program, *diag.Sink) {
	t.Helper()

	path := t.TempDir() + "/in.hlx"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	r, err := source.Open(path)
	require.NoError(t, err)
	defer r.Close()

	sink := diag.NewSink(diag.DefaultConfig())
	raw := lexer.New(r, sink).Tokenize()
	normalized := lexer.NewPreprocessor(raw.All()).Process()
	toks := token.NewList(path, normalized)

	prog := New(toks, sink, nil).Parse()

	return prog, sink
}

func mustParse(t *testing.T, contents string) *ast.Program {
	t.Helper()

	prog, sink := parseSource(t, contents)
	require.True(t, sink.Empty(), "unexpected diagnostics: %v", sink.Entries())
	require.NotNil(t, prog)

	return prog
}

func TestParseEmptyProgram(t *testing.T) {
	prog := mustParse(t, "")

	require.Empty(t, prog.Body)
}

func TestParseLetDecl(t *testing.T) {
	prog := mustParse(t, "let x = 42\n")

	require.Len(t, prog.Body, 1)

	let, ok := prog.Body[0].(*ast.LetDecl)
	require.True(t, ok)
	require.Equal(t, "x", let.Name)
	require.Nil(t, let.Type)

	lit, ok := let.Value.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "42", lit.Text)
}

func TestParseLetDeclWithTypeAnnotation(t *testing.T) {
	prog := mustParse(t, "let x: int = 1\n")

	let := prog.Body[0].(*ast.LetDecl)
	require.NotNil(t, let.Type)

	typeName, ok := let.Type.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "int", typeName.Name)
}

func TestParseStructDecl(t *testing.T) {
	prog := mustParse(t, "struct Point {\n  let x: int\n  let y: int\n}\n")

	require.Len(t, prog.Body, 1)

	sd, ok := prog.Body[0].(*ast.StructDecl)
	require.True(t, ok)
	require.Equal(t, "Point", sd.Name)
	require.Equal(t, ast.Public, sd.Vis)
	require.Len(t, sd.Body.Statements, 2)
}

func TestParseStructFieldListWithoutLet(t *testing.T) {
	// spec.md §8 scenario 6: a bare `name: Type` field list, comma-
	// separated on one line, parses each field as a VarDecl Suite
	// statement rather than requiring an explicit `let`.
	prog := mustParse(t, "struct F { n: int, d: int }\n")

	sd, ok := prog.Body[0].(*ast.StructDecl)
	require.True(t, ok)
	require.Equal(t, "F", sd.Name)
	require.Len(t, sd.Body.Statements, 2)

	n, ok := sd.Body.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "n", n.Name)
	nType, ok := n.Type.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "int", nType.Name)

	d, ok := sd.Body.Statements[1].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "d", d.Name)
	dType, ok := d.Type.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "int", dType.Name)
}

func TestParseFuncDeclWithParamsAndReturnType(t *testing.T) {
	prog := mustParse(t, "fn add(a: int, b: int) -> int {\n  return a + b\n}\n")

	fn, ok := prog.Body[0].(*ast.FuncDecl)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "a", fn.Params[0].Name)
	require.Equal(t, "b", fn.Params[1].Name)
	require.NotNil(t, fn.RetType)
	require.Nil(t, fn.Qualifier)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 1)

	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)

	bin, ok := ret.Value.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.OpAdd, bin.Op)
}

func TestParseFuncDeclWithDefaultQualifier(t *testing.T) {
	prog := mustParse(t, "fn Point() = default\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	require.Nil(t, fn.Body)
	require.NotNil(t, fn.Qualifier)
	require.Equal(t, ast.FnDefault, *fn.Qualifier)
}

func TestParseIfElseIfElse(t *testing.T) {
	prog := mustParse(t, "fn classify(n: int) {\n" +
		"  if n < 0 {\n    return\n  } else if n == 0 {\n    return\n  } else {\n    return\n  }\n" +
		"}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	ifStmt, ok := fn.Body.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.ElseIfs, 1)
	require.NotNil(t, ifStmt.Else)
}

func TestParseWhileLoop(t *testing.T) {
	prog := mustParse(t, "fn spin() {\n  while true {\n    break\n  }\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	_, ok := fn.Body.Statements[0].(*ast.WhileLoop)
	require.True(t, ok)
}

func TestParseClassicForLoop(t *testing.T) {
	prog := mustParse(t, "fn count() {\n  for let i = 0; i < 10; i = i + 1 {\n    continue\n  }\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	loop, ok := fn.Body.Statements[0].(*ast.ForLoop)
	require.True(t, ok)
	require.NotNil(t, loop.Init)
	require.NotNil(t, loop.Cond)
	require.NotNil(t, loop.Step)
}

func TestParseRangeLoop(t *testing.T) {
	prog := mustParse(t, "fn walk() {\n  for item : items {\n    continue\n  }\n}\n")

	fn := prog.Body[0].(*ast.FuncDecl)
	loop, ok := fn.Body.Statements[0].(*ast.RangeLoop)
	require.True(t, ok)
	require.Equal(t, "item", loop.Var)
}

func TestParseEnumDecl(t *testing.T) {
	prog := mustParse(t, "enum Color {\n  red: 0,\n  green: 1,\n  blue: 2\n}\n")

	en, ok := prog.Body[0].(*ast.EnumDecl)
	require.True(t, ok)
	require.Equal(t, "Color", en.Name)
}

func TestParseRequiresDecl(t *testing.T) {
	prog := mustParse(t, "struct Box requires<T> {\n  let value: T\n}\n")

	sd := prog.Body[0].(*ast.StructDecl)
	require.NotNil(t, sd.Requires)
	require.Len(t, sd.Requires.Params, 1)
	require.Equal(t, "T", sd.Requires.Params[0].Name)
}

func TestParseDerivesClause(t *testing.T) {
	prog := mustParse(t, "struct Circle derives pub Shape {\n  let radius: int\n}\n")

	sd := prog.Body[0].(*ast.StructDecl)
	require.NotNil(t, sd.Derives)
	require.Len(t, sd.Derives.Types, 1)
}

func TestParseTypeDecl(t *testing.T) {
	prog := mustParse(t, "type Handle = int\n")

	td, ok := prog.Body[0].(*ast.TypeDecl)
	require.True(t, ok)
	require.Equal(t, "Handle", td.Name)
}

func TestParseAccessSpecifiers(t *testing.T) {
	prog := mustParse(t, "priv struct Hidden {\n  let x: int\n}\n")

	sd := prog.Body[0].(*ast.StructDecl)
	require.Equal(t, ast.Private, sd.Vis)
}

func TestParseTopLevelRecoversAfterBadDeclaration(t *testing.T) {
	_, sink := parseSource(t, "struct <<<\nfn ok() {\n  return\n}\n")

	require.False(t, sink.Empty())
}
