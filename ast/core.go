// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"strings"

	"github.com/heliclang/helixfc/token"
)

// Program is the AST root: a filename, an optional leading file
// comment, and the ordered top-level declarations/statements.
type Program struct {
	base

	FileName string
	Comment  *Comment
	Body     []Node
}

func NewProgram(fileName string, comment *Comment, body []Node, span Span) *Program {
	return &Program{base: base{span}, FileName: fileName, Comment: comment, Body: body}
}

func (n *Program) NodeKind() Kind   { return KindProgram }
func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }
func (n *Program) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "Program(" + n.FileName + ")\n")

	if n.Comment != nil {
		sb.WriteString(n.Comment.String(depth + 1))
	}

	for _, c := range n.Body {
		sb.WriteString(c.String(depth + 1))
	}

	return sb.String()
}

// Comment is a verbatim comment, non-owning-linked to the declaration
// it documents via an index into the owning Program.Body (spec.md
// §9's cycle-avoidance resolution): OwnerIndex is -1 when the comment
// documents nothing (e.g. trailing or file-header commentary).
type Comment struct {
	base

	Text       string
	Block      bool
	OwnerIndex int
}

func NewComment(text string, block bool, ownerIndex int, span Span) *Comment {
	return &Comment{base: base{span}, Text: text, Block: block, OwnerIndex: ownerIndex}
}

func (n *Comment) NodeKind() Kind   { return KindComment }
func (n *Comment) Accept(v Visitor) { v.VisitComment(n) }
func (n *Comment) String(depth int) string {
	return indent(depth) + "Comment(" + n.Text + ")\n"
}

// CompilerDirective is a verbatim `#directive ...` line, captured but
// not interpreted by the core (spec.md §1 Non-goals).
type CompilerDirective struct {
	base

	Name string
	Args []string
}

func NewCompilerDirective(name string, args []string, span Span) *CompilerDirective {
	return &CompilerDirective{base: base{span}, Name: name, Args: args}
}

func (n *CompilerDirective) NodeKind() Kind   { return KindCompilerDirective }
func (n *CompilerDirective) Accept(v Visitor) { v.VisitCompilerDirective(n) }
func (n *CompilerDirective) String(depth int) string {
	return indent(depth) + "CompilerDirective(" + n.Name + " " + strings.Join(n.Args, " ") + ")\n"
}

// Suite is a statement block: either a single CodeLine statement or a
// brace-delimited list, indistinguishable once LinePreprocessor has
// normalized the layout markers (spec.md §4.4's Suite production).
type Suite struct {
	base

	Statements []Node
}

func NewSuite(statements []Node, span Span) *Suite {
	return &Suite{base: base{span}, Statements: statements}
}

func (n *Suite) NodeKind() Kind   { return KindSuite }
func (n *Suite) Accept(v Visitor) { v.VisitSuite(n) }
func (n *Suite) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "Suite\n")

	for _, s := range n.Statements {
		sb.WriteString(s.String(depth + 1))
	}

	return sb.String()
}

// Identifier is a bare name reference.
type Identifier struct {
	base

	Name string
}

func NewIdentifier(name string, span Span) *Identifier {
	return &Identifier{base: base{span}, Name: name}
}

func (n *Identifier) NodeKind() Kind   { return KindIdentifier }
func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }
func (n *Identifier) String(depth int) string {
	return indent(depth) + "Identifier(" + n.Name + ")\n"
}

// Literal is a scalar constant: int, float, string, char, bool, or
// null, classified by its originating token's SubKind.
type Literal struct {
	base

	SubKind token.SubKind
	Text    string
}

func NewLiteral(sub token.SubKind, text string, span Span) *Literal {
	return &Literal{base: base{span}, SubKind: sub, Text: text}
}

func (n *Literal) NodeKind() Kind   { return KindLiteral }
func (n *Literal) Accept(v Visitor) { v.VisitLiteral(n) }
func (n *Literal) String(depth int) string {
	return indent(depth) + "Literal(" + string(n.SubKind) + " " + n.Text + ")\n"
}
