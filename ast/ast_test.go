// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/heliclang/helixfc/token"
)

func sampleProgram() *Program {
	lit := NewLiteral(token.LitInt, "5", Span{10, 11})
	let := NewLetDecl("a", nil, lit, Span{0, 11})

	return NewProgram("main.hlx", nil, []Node{let}, Span{0, 11})
}

func TestSpanContainment(t *testing.T) {
	parent := Span{Start: 0, End: 20}
	child := Span{Start: 2, End: 10}

	assert.True(t, parent.Contains(child))
	assert.False(t, child.Contains(parent))
}

func TestPrettyDumpVisitorMatchesStringMethod(t *testing.T) {
	prog := sampleProgram()

	viaString := prog.String(0)
	viaVisitor := NewPrettyDumpVisitor().Dump(prog)

	assert.Equal(t, viaString, viaVisitor)
}

func TestJsonDumpVisitorStructure(t *testing.T) {
	prog := sampleProgram()

	out := NewJsonDumpVisitor().Dump(prog)

	assert.Equal(t, "Program", out["kind"])
	assert.Equal(t, "main.hlx", out["fileName"])

	body, ok := out["body"].([]any)
	assert.True(t, ok)
	assert.Len(t, body, 1)

	letJSON, ok := body[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "LetDecl", letJSON["kind"])
	assert.Equal(t, "a", letJSON["name"])
}

func TestWalkVisitsAllChildren(t *testing.T) {
	lhs := NewIdentifier("x", Span{0, 1})
	rhs := NewLiteral(token.LitInt, "1", Span{4, 5})
	bin := NewBinaryOp(token.OpGt, lhs, rhs, Span{0, 5})

	var visited []Node
	Walk(bin, func(n Node) { visited = append(visited, n) })

	assert.Equal(t, []Node{lhs, rhs}, visited)
}

func TestCommentOwnerIndexIsNonOwningLink(t *testing.T) {
	let := NewLetDecl("a", nil, NewLiteral(token.LitInt, "1", Span{}), Span{})
	comment := NewComment("docs for a", false, 0, Span{})
	prog := NewProgram("x.hlx", comment, []Node{let}, Span{})

	assert.Equal(t, 0, prog.Comment.OwnerIndex)
	assert.Same(t, let, prog.Body[prog.Comment.OwnerIndex])
}

func TestSpansRoundTripThroughCmp(t *testing.T) {
	a := Span{Start: 1, End: 5}
	b := Span{Start: 1, End: 5}

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("spans should compare equal (-want +got):\n%s", diff)
	}
}
