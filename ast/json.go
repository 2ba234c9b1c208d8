// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

// JsonDumpVisitor produces the structured JSON representation spec.md
// §4.5 requires: each node becomes a map with "kind", its span, and
// child fields keyed by name. It builds a tree of map[string]any
// values rather than marshaling directly, so callers can further
// transform it before encoding.
type JsonDumpVisitor struct {
	result map[string]any
}

// NewJsonDumpVisitor returns a fresh visitor ready to dump one tree.
func NewJsonDumpVisitor() *JsonDumpVisitor {
	return &JsonDumpVisitor{}
}

// Dump visits root and returns its JSON-able value tree.
func (j *JsonDumpVisitor) Dump(root Node) map[string]any {
	root.Accept(j)

	return j.result
}

func spanFields(n Node) map[string]any {
	s := n.Span()

	return map[string]any{"kind": n.NodeKind().String(), "start": s.Start, "end": s.End}
}

func childJSON(n Node) map[string]any {
	if n == nil {
		return nil
	}

	sub := &JsonDumpVisitor{}
	n.Accept(sub)

	return sub.result
}

func childrenJSON(n []Node) []any {
	out := make([]any, 0, len(n))

	for _, c := range n {
		sub := &JsonDumpVisitor{}
		c.Accept(sub)
		out = append(out, sub.result)
	}

	return out
}

func (j *JsonDumpVisitor) VisitProgram(n *Program) {
	fields := spanFields(n)
	fields["fileName"] = n.FileName
	fields["comment"] = childJSON(nodeOrNil(n.Comment))
	fields["body"] = childrenJSON(n.Body)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitComment(n *Comment) {
	fields := spanFields(n)
	fields["text"] = n.Text
	fields["block"] = n.Block
	fields["ownerIndex"] = n.OwnerIndex
	j.result = fields
}

func (j *JsonDumpVisitor) VisitCompilerDirective(n *CompilerDirective) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["args"] = n.Args
	j.result = fields
}

func (j *JsonDumpVisitor) VisitSuite(n *Suite) {
	fields := spanFields(n)
	fields["statements"] = childrenJSON(n.Statements)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitVarDecl(n *VarDecl) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["type"] = childJSON(n.Type)
	fields["init"] = childJSON(n.Init)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitLetDecl(n *LetDecl) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["type"] = childJSON(n.Type)
	fields["value"] = childJSON(n.Value)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitConstDecl(n *ConstDecl) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["type"] = childJSON(n.Type)
	fields["value"] = childJSON(n.Value)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitFuncDecl(n *FuncDecl) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["params"] = childrenJSON(varDeclsToNodes(n.Params))
	fields["retType"] = childJSON(n.RetType)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitOpDecl(n *OpDecl) {
	fields := spanFields(n)
	fields["symbol"] = n.Symbol
	fields["params"] = childrenJSON(varDeclsToNodes(n.Params))
	fields["retType"] = childJSON(n.RetType)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitStructDecl(n *StructDecl) { j.result = udtJSON(n, n.Name, n.Body) }
func (j *JsonDumpVisitor) VisitClassDecl(n *ClassDecl)   { j.result = udtJSON(n, n.Name, n.Body) }
func (j *JsonDumpVisitor) VisitInterDecl(n *InterDecl)   { j.result = udtJSON(n, n.Name, n.Body) }
func (j *JsonDumpVisitor) VisitUnionDecl(n *UnionDecl)   { j.result = udtJSON(n, n.Name, n.Body) }

func udtJSON(n Node, name string, body *Suite) map[string]any {
	fields := spanFields(n)
	fields["name"] = name
	fields["body"] = childJSON(nodeOrNil(body))

	return fields
}

func (j *JsonDumpVisitor) VisitEnumDecl(n *EnumDecl) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["derives"] = childJSON(n.Derives)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitTypeDecl(n *TypeDecl) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["value"] = childJSON(n.Value)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitFFIDecl(n *FFIDecl) {
	fields := spanFields(n)
	fields["shape"] = n.Shape.String()
	fields["name"] = n.Name
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitRequiresDecl(n *RequiresDecl) {
	fields := spanFields(n)
	fields["params"] = childrenJSON(requiresParamsToNodes(n.Params))
	fields["bounds"] = childJSON(nodeOrNil(n.Bounds))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitRequiresParamDecl(n *RequiresParamDecl) {
	fields := spanFields(n)
	fields["name"] = n.Name
	fields["const"] = n.Const
	fields["type"] = childJSON(n.Type)
	fields["default"] = childJSON(n.Default)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitTypeBoundList(n *TypeBoundList) {
	fields := spanFields(n)
	fields["bounds"] = childrenJSON(typeBoundsToNodes(n.Bounds))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitTypeBoundDecl(n *TypeBoundDecl) {
	fields := spanFields(n)
	fields["expr"] = childJSON(n.Expr)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitUDTDeriveDecl(n *UDTDeriveDecl) {
	fields := spanFields(n)
	fields["types"] = childrenJSON(n.Types)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitAssignment(n *Assignment) {
	fields := spanFields(n)
	fields["op"] = n.Op
	fields["target"] = childJSON(n.Target)
	fields["value"] = childJSON(n.Value)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitForLoop(n *ForLoop) {
	fields := spanFields(n)
	fields["init"] = childJSON(n.Init)
	fields["cond"] = childJSON(n.Cond)
	fields["step"] = childJSON(n.Step)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitRangeLoop(n *RangeLoop) {
	fields := spanFields(n)
	fields["var"] = n.Var
	fields["range"] = childJSON(n.Range)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitWhileLoop(n *WhileLoop) {
	fields := spanFields(n)
	fields["cond"] = childJSON(n.Cond)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitIfStatement(n *IfStatement) {
	fields := spanFields(n)
	fields["cond"] = childJSON(n.Cond)
	fields["then"] = childJSON(nodeOrNil(n.Then))
	fields["elseIfs"] = childrenJSON(elseIfsToNodes(n.ElseIfs))
	fields["else"] = childJSON(nodeOrNil(n.Else))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitElseIfStatement(n *ElseIfStatement) {
	fields := spanFields(n)
	fields["cond"] = childJSON(n.Cond)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitElseStatement(n *ElseStatement) {
	fields := spanFields(n)
	fields["body"] = childJSON(nodeOrNil(n.Body))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitConditionalStatement(n *ConditionalStatement) {
	fields := spanFields(n)
	fields["expr"] = childJSON(nodeOrNil(n.Expr))
	j.result = fields
}

func (j *JsonDumpVisitor) VisitReturnStatement(n *ReturnStatement) {
	fields := spanFields(n)
	fields["value"] = childJSON(n.Value)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitContinueStatement(n *ContinueStatement) { j.result = spanFields(n) }
func (j *JsonDumpVisitor) VisitBreakStatement(n *BreakStatement)       { j.result = spanFields(n) }

func (j *JsonDumpVisitor) VisitYieldStatement(n *YieldStatement) {
	fields := spanFields(n)
	fields["value"] = childJSON(n.Value)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitBinaryOp(n *BinaryOp) {
	fields := spanFields(n)
	fields["op"] = string(n.Op)
	fields["lhs"] = childJSON(n.Lhs)
	fields["rhs"] = childJSON(n.Rhs)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitUnaryOp(n *UnaryOp) {
	fields := spanFields(n)
	fields["op"] = string(n.Op)
	fields["postfix"] = n.Postfix
	fields["operand"] = childJSON(n.Operand)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitLiteral(n *Literal) {
	fields := spanFields(n)
	fields["subKind"] = string(n.SubKind)
	fields["text"] = n.Text
	j.result = fields
}

func (j *JsonDumpVisitor) VisitIdentifier(n *Identifier) {
	fields := spanFields(n)
	fields["name"] = n.Name
	j.result = fields
}

func (j *JsonDumpVisitor) VisitDotAccess(n *DotAccess) {
	fields := spanFields(n)
	fields["member"] = n.Member
	fields["target"] = childJSON(n.Target)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitScopeAccess(n *ScopeAccess) {
	fields := spanFields(n)
	fields["member"] = n.Member
	fields["target"] = childJSON(n.Target)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitPathAccess(n *PathAccess) {
	fields := spanFields(n)
	fields["segments"] = n.Segments
	j.result = fields
}

func (j *JsonDumpVisitor) VisitFunctionCall(n *FunctionCall) {
	fields := spanFields(n)
	fields["callee"] = childJSON(n.Callee)
	fields["args"] = childrenJSON(n.Args)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitArrayAccess(n *ArrayAccess) {
	fields := spanFields(n)
	fields["target"] = childJSON(n.Target)
	fields["index"] = childJSON(n.Index)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitParenthesized(n *Parenthesized) {
	fields := spanFields(n)
	fields["inner"] = childJSON(n.Inner)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitConditional(n *Conditional) {
	fields := spanFields(n)
	fields["cond"] = childJSON(n.Cond)
	fields["then"] = childJSON(n.Then)
	fields["else"] = childJSON(n.Else)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitCast(n *Cast) {
	fields := spanFields(n)
	fields["expr"] = childJSON(n.Expr)
	fields["type"] = childJSON(n.Type)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitGenericInvocation(n *GenericInvocation) {
	fields := spanFields(n)
	fields["callee"] = childJSON(n.Callee)
	fields["typeArgs"] = childrenJSON(n.TypeArgs)
	fields["args"] = childrenJSON(n.Args)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitObjectInvocation(n *ObjectInvocation) {
	fields := spanFields(n)
	fields["type"] = childJSON(n.Type)
	fields["fieldNames"] = n.FieldNames
	fields["fieldValues"] = childrenJSON(n.FieldValues)
	j.result = fields
}

func (j *JsonDumpVisitor) VisitStructureInvocation(n *StructureInvocation) {
	fields := spanFields(n)
	fields["type"] = childJSON(n.Type)
	fields["values"] = childrenJSON(n.Values)
	j.result = fields
}

// nodeOrNil boxes a possibly-nil concrete *T into the Node interface,
// returning a true nil interface (not a non-nil interface wrapping a
// nil pointer) when the pointer itself is nil.
func nodeOrNil[T interface {
	Node
	comparable
}](v T) Node {
	var zero T
	if v == zero {
		return nil
	}

	return v
}

func varDeclsToNodes(v []*VarDecl) []Node {
	out := make([]Node, len(v))
	for i, p := range v {
		out[i] = p
	}

	return out
}

func requiresParamsToNodes(v []*RequiresParamDecl) []Node {
	out := make([]Node, len(v))
	for i, p := range v {
		out[i] = p
	}

	return out
}

func typeBoundsToNodes(v []*TypeBoundDecl) []Node {
	out := make([]Node, len(v))
	for i, p := range v {
		out[i] = p
	}

	return out
}

func elseIfsToNodes(v []*ElseIfStatement) []Node {
	out := make([]Node, len(v))
	for i, p := range v {
		out[i] = p
	}

	return out
}
