// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/heliclang/helixfc/ast"
)

// assertRoundTrips exercises spec.md §8's round-trip law: printing a
// parsed Program back to source, then lexing/preprocessing/parsing
// that output again, must yield a tree with the same shape as the
// original (not the same bytes — NewSourcePrinter never reproduces the
// original's whitespace, only a re-parseable rendering of it). Shape
// equality is checked by comparing PrettyDumpVisitor dumps rather than
// the Programs directly, since dumps carry no Span data. A dump does
// not print every field (a FuncDecl's return type and a UnaryOp's
// prefix/postfix flag are not shown), so a change confined to such a
// field is not detected.
func assertRoundTrips(t *testing.T, contents string) {
	t.Helper()

	original := mustParse(t, contents)
	printed := ast.NewSourcePrinter().Print(original)

	reparsed, sink := parseSource(t, printed)
	require.True(t, sink.Empty(), "re-parsing printed source produced diagnostics: %s", printed)

	wantDump := ast.NewPrettyDumpVisitor().Dump(original)
	gotDump := ast.NewPrettyDumpVisitor().Dump(reparsed)

	if diff := cmp.Diff(wantDump, gotDump); diff != "" {
		t.Fatalf("round trip changed AST shape (-want +got):\n%s\nprinted source:\n%s", diff, printed)
	}
}

func TestRoundTripLetDeclWithExpression(t *testing.T) {
	assertRoundTrips(t, "let x: int = 1 + 2 * 3\n")
}

func TestRoundTripFuncWithControlFlow(t *testing.T) {
	assertRoundTrips(t, "fn f(a: int, b: int) -> int {\n"+
		"  if a < b {\n"+
		"    return a\n"+
		"  } else if a > b {\n"+
		"    return b\n"+
		"  } else {\n"+
		"    return 0\n"+
		"  }\n"+
		"}\n")
}

func TestRoundTripClassicForLoop(t *testing.T) {
	assertRoundTrips(t, "fn f() {\n"+
		"  for let i = 0; i < 10; i = i + 1 {\n"+
		"    continue\n"+
		"  }\n"+
		"}\n")
}

func TestRoundTripRangeLoop(t *testing.T) {
	assertRoundTrips(t, "fn f() {\n"+
		"  for item : items {\n"+
		"    break\n"+
		"  }\n"+
		"}\n")
}

func TestRoundTripWhileLoopAndAssignment(t *testing.T) {
	assertRoundTrips(t, "fn f() {\n"+
		"  while true {\n"+
		"    x += 1\n"+
		"  }\n"+
		"}\n")
}

func TestRoundTripStructDecl(t *testing.T) {
	assertRoundTrips(t, "struct Point {\n"+
		"  let x: int\n"+
		"  let y: int\n"+
		"}\n")
}

func TestRoundTripExpressionVariety(t *testing.T) {
	assertRoundTrips(t, "fn f() {\n"+
		"  let _ = Point(1, 2)\n"+
		"  let _ = Point{x: 1, y: 2}\n"+
		"  let _ = Box<int>(1)\n"+
		"  let _ = items[0]\n"+
		"  let _ = a.b.c\n"+
		"  let _ = (1 + 2) * 3\n"+
		"  let _ = x is int\n"+
		"  let _ = a ? b : c\n"+
		"  let _ = -a\n"+
		"  let _ = await fetch()\n"+
		"}\n")
}
