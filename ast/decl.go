// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

import "strings"

// VarDecl is one parameter/field-shaped binding: `name: Type = init`,
// used both for function parameters and UDT members.
type VarDecl struct {
	base

	Name string
	Type Node // nil if the type was elided and must be inferred
	Init Node // nil if no default/initializer was given
}

func NewVarDecl(name string, typ, initv Node, span Span) *VarDecl {
	return &VarDecl{base: base{span}, Name: name, Type: typ, Init: initv}
}

func (n *VarDecl) NodeKind() Kind   { return KindVarDecl }
func (n *VarDecl) Accept(v Visitor) { v.VisitVarDecl(n) }
func (n *VarDecl) String(depth int) string {
	s := indent(depth) + "VarDecl(" + n.Name + ")\n"
	if n.Type != nil {
		s += n.Type.String(depth + 1)
	}

	if n.Init != nil {
		s += n.Init.String(depth + 1)
	}

	return s
}

// LetDecl is `let name: Type = value;`.
type LetDecl struct {
	base

	Name  string
	Type  Node
	Value Node
}

func NewLetDecl(name string, typ, value Node, span Span) *LetDecl {
	return &LetDecl{base: base{span}, Name: name, Type: typ, Value: value}
}

func (n *LetDecl) NodeKind() Kind   { return KindLetDecl }
func (n *LetDecl) Accept(v Visitor) { v.VisitLetDecl(n) }
func (n *LetDecl) String(depth int) string {
	s := indent(depth) + "LetDecl(" + n.Name + ")\n"
	if n.Type != nil {
		s += n.Type.String(depth + 1)
	}

	if n.Value != nil {
		s += n.Value.String(depth + 1)
	}

	return s
}

// ConstDecl is `const name: Type = value;`.
type ConstDecl struct {
	base

	Name  string
	Type  Node
	Value Node
}

func NewConstDecl(name string, typ, value Node, span Span) *ConstDecl {
	return &ConstDecl{base: base{span}, Name: name, Type: typ, Value: value}
}

func (n *ConstDecl) NodeKind() Kind   { return KindConstDecl }
func (n *ConstDecl) Accept(v Visitor) { v.VisitConstDecl(n) }
func (n *ConstDecl) String(depth int) string {
	s := indent(depth) + "ConstDecl(" + n.Name + ")\n"
	if n.Type != nil {
		s += n.Type.String(depth + 1)
	}

	if n.Value != nil {
		s += n.Value.String(depth + 1)
	}

	return s
}

// RequiresParamDecl is one generic parameter inside a `requires<...>`
// clause: optionally const, optionally typed, with an optional default.
type RequiresParamDecl struct {
	base

	Name    string
	Const   bool
	Type    Node
	Default Node
}

func NewRequiresParamDecl(name string, isConst bool, typ, def Node, span Span) *RequiresParamDecl {
	return &RequiresParamDecl{base: base{span}, Name: name, Const: isConst, Type: typ, Default: def}
}

func (n *RequiresParamDecl) NodeKind() Kind   { return KindRequiresParamDecl }
func (n *RequiresParamDecl) Accept(v Visitor) { v.VisitRequiresParamDecl(n) }
func (n *RequiresParamDecl) String(depth int) string {
	return indent(depth) + "RequiresParamDecl(" + n.Name + ")\n"
}

// TypeBoundDecl is one `if <instance-of-expression>` bound attached to
// a requires clause.
type TypeBoundDecl struct {
	base

	Expr Node
}

func NewTypeBoundDecl(expr Node, span Span) *TypeBoundDecl {
	return &TypeBoundDecl{base: base{span}, Expr: expr}
}

func (n *TypeBoundDecl) NodeKind() Kind   { return KindTypeBoundDecl }
func (n *TypeBoundDecl) Accept(v Visitor) { v.VisitTypeBoundDecl(n) }
func (n *TypeBoundDecl) String(depth int) string {
	return indent(depth) + "TypeBoundDecl\n" + n.Expr.String(depth+1)
}

// TypeBoundList is the ordered set of TypeBoundDecls following a
// requires clause's parameter list.
type TypeBoundList struct {
	base

	Bounds []*TypeBoundDecl
}

func NewTypeBoundList(bounds []*TypeBoundDecl, span Span) *TypeBoundList {
	return &TypeBoundList{base: base{span}, Bounds: bounds}
}

func (n *TypeBoundList) NodeKind() Kind   { return KindTypeBoundList }
func (n *TypeBoundList) Accept(v Visitor) { v.VisitTypeBoundList(n) }
func (n *TypeBoundList) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "TypeBoundList\n")

	for _, b := range n.Bounds {
		sb.WriteString(b.String(depth + 1))
	}

	return sb.String()
}

// RequiresDecl is a declaration's generic-parameter clause:
// `requires<Params...> TypeBoundList?`.
type RequiresDecl struct {
	base

	Params []*RequiresParamDecl
	Bounds *TypeBoundList // nil if absent
}

func NewRequiresDecl(params []*RequiresParamDecl, bounds *TypeBoundList, span Span) *RequiresDecl {
	return &RequiresDecl{base: base{span}, Params: params, Bounds: bounds}
}

func (n *RequiresDecl) NodeKind() Kind   { return KindRequiresDecl }
func (n *RequiresDecl) Accept(v Visitor) { v.VisitRequiresDecl(n) }
func (n *RequiresDecl) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "RequiresDecl\n")

	for _, p := range n.Params {
		sb.WriteString(p.String(depth + 1))
	}

	if n.Bounds != nil {
		sb.WriteString(n.Bounds.String(depth + 1))
	}

	return sb.String()
}

// UDTDeriveDecl is a UDT's `derives A, pub B, ...` base-type list.
type UDTDeriveDecl struct {
	base

	Types []Node
	Vis   []AccessSpecifier // parallel to Types; Public if unspecified
}

func NewUDTDeriveDecl(types []Node, vis []AccessSpecifier, span Span) *UDTDeriveDecl {
	return &UDTDeriveDecl{base: base{span}, Types: types, Vis: vis}
}

func (n *UDTDeriveDecl) NodeKind() Kind   { return KindUDTDeriveDecl }
func (n *UDTDeriveDecl) Accept(v Visitor) { v.VisitUDTDeriveDecl(n) }
func (n *UDTDeriveDecl) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "UDTDeriveDecl\n")

	for _, t := range n.Types {
		sb.WriteString(t.String(depth + 1))
	}

	return sb.String()
}

// udtHeader is the field set shared by every UDT declaration kind
// (struct/class/interface/union), embedded rather than repeated.
type udtHeader struct {
	Name     string
	Vis      AccessSpecifier
	Const    bool
	Derives  *UDTDeriveDecl
	Requires *RequiresDecl
	Body     *Suite
}

// StructDecl is `struct Name derives? requires? { ... }`.
type StructDecl struct {
	base
	udtHeader
}

func NewStructDecl(name string, vis AccessSpecifier, isConst bool, derives *UDTDeriveDecl, requires *RequiresDecl, body *Suite, span Span) *StructDecl {
	return &StructDecl{base: base{span}, udtHeader: udtHeader{name, vis, isConst, derives, requires, body}}
}

func (n *StructDecl) NodeKind() Kind   { return KindStructDecl }
func (n *StructDecl) Accept(v Visitor) { v.VisitStructDecl(n) }
func (n *StructDecl) String(depth int) string {
	return indent(depth) + "StructDecl(" + n.Name + ")\n" + n.Body.String(depth+1)
}

// ClassDecl is `class Name derives? requires? { ... }`.
type ClassDecl struct {
	base
	udtHeader
}

func NewClassDecl(name string, vis AccessSpecifier, isConst bool, derives *UDTDeriveDecl, requires *RequiresDecl, body *Suite, span Span) *ClassDecl {
	return &ClassDecl{base: base{span}, udtHeader: udtHeader{name, vis, isConst, derives, requires, body}}
}

func (n *ClassDecl) NodeKind() Kind   { return KindClassDecl }
func (n *ClassDecl) Accept(v Visitor) { v.VisitClassDecl(n) }
func (n *ClassDecl) String(depth int) string {
	return indent(depth) + "ClassDecl(" + n.Name + ")\n" + n.Body.String(depth+1)
}

// InterDecl is `interface Name derives? requires? { ... }`.
type InterDecl struct {
	base
	udtHeader
}

func NewInterDecl(name string, vis AccessSpecifier, isConst bool, derives *UDTDeriveDecl, requires *RequiresDecl, body *Suite, span Span) *InterDecl {
	return &InterDecl{base: base{span}, udtHeader: udtHeader{name, vis, isConst, derives, requires, body}}
}

func (n *InterDecl) NodeKind() Kind   { return KindInterDecl }
func (n *InterDecl) Accept(v Visitor) { v.VisitInterDecl(n) }
func (n *InterDecl) String(depth int) string {
	return indent(depth) + "InterDecl(" + n.Name + ")\n" + n.Body.String(depth+1)
}

// EnumDecl is `enum Name derives Type? { ... }`.
type EnumDecl struct {
	base

	Name    string
	Vis     AccessSpecifier
	Derives Node // nil if absent
	Body    *ObjectInvocation
}

func NewEnumDecl(name string, vis AccessSpecifier, derives Node, body *ObjectInvocation, span Span) *EnumDecl {
	return &EnumDecl{base: base{span}, Name: name, Vis: vis, Derives: derives, Body: body}
}

func (n *EnumDecl) NodeKind() Kind   { return KindEnumDecl }
func (n *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(n) }
func (n *EnumDecl) String(depth int) string {
	return indent(depth) + "EnumDecl(" + n.Name + ")\n" + n.Body.String(depth+1)
}

// UnionDecl is `union Name derives? requires? { ... }`.
type UnionDecl struct {
	base
	udtHeader
}

func NewUnionDecl(name string, vis AccessSpecifier, isConst bool, derives *UDTDeriveDecl, requires *RequiresDecl, body *Suite, span Span) *UnionDecl {
	return &UnionDecl{base: base{span}, udtHeader: udtHeader{name, vis, isConst, derives, requires, body}}
}

func (n *UnionDecl) NodeKind() Kind   { return KindUnionDecl }
func (n *UnionDecl) Accept(v Visitor) { v.VisitUnionDecl(n) }
func (n *UnionDecl) String(depth int) string {
	return indent(depth) + "UnionDecl(" + n.Name + ")\n" + n.Body.String(depth+1)
}

// TypeDecl is `type Name requires? = Expr;`, a type alias.
type TypeDecl struct {
	base

	Name     string
	Vis      AccessSpecifier
	Requires *RequiresDecl
	Value    Node
}

func NewTypeDecl(name string, vis AccessSpecifier, requires *RequiresDecl, value Node, span Span) *TypeDecl {
	return &TypeDecl{base: base{span}, Name: name, Vis: vis, Requires: requires, Value: value}
}

func (n *TypeDecl) NodeKind() Kind   { return KindTypeDecl }
func (n *TypeDecl) Accept(v Visitor) { v.VisitTypeDecl(n) }
func (n *TypeDecl) String(depth int) string {
	return indent(depth) + "TypeDecl(" + n.Name + ")\n" + n.Value.String(depth+1)
}

// FFIDecl is `ffi struct|class|interface|enum|union|type Name { ... }`,
// exposing a UDT shape across the foreign-function boundary.
type FFIDecl struct {
	base

	Shape FFISpecifier
	Name  string
	Body  *Suite
}

func NewFFIDecl(shape FFISpecifier, name string, body *Suite, span Span) *FFIDecl {
	return &FFIDecl{base: base{span}, Shape: shape, Name: name, Body: body}
}

func (n *FFIDecl) NodeKind() Kind   { return KindFFIDecl }
func (n *FFIDecl) Accept(v Visitor) { v.VisitFFIDecl(n) }
func (n *FFIDecl) String(depth int) string {
	return indent(depth) + "FFIDecl(" + n.Shape.String() + " " + n.Name + ")\n" + n.Body.String(depth+1)
}

// FuncDecl is `specifiers? fn path(params...) -> RetType? requires? Suite`.
type FuncDecl struct {
	base

	Name       string
	Specifiers []FunctionSpecifier
	Params     []*VarDecl
	RetType    Node // nil if omitted (void)
	Requires   *RequiresDecl
	Qualifier  *FunctionQualifier // nil if the function has a real body
	Body       *Suite             // nil if Qualifier is set instead
}

func NewFuncDecl(name string, specifiers []FunctionSpecifier, params []*VarDecl, retType Node, requires *RequiresDecl, qualifier *FunctionQualifier, body *Suite, span Span) *FuncDecl {
	return &FuncDecl{
		base: base{span}, Name: name, Specifiers: specifiers, Params: params,
		RetType: retType, Requires: requires, Qualifier: qualifier, Body: body,
	}
}

func (n *FuncDecl) NodeKind() Kind   { return KindFuncDecl }
func (n *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(n) }
func (n *FuncDecl) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "FuncDecl(" + n.Name + ")\n")

	for _, p := range n.Params {
		sb.WriteString(p.String(depth + 1))
	}

	if n.Body != nil {
		sb.WriteString(n.Body.String(depth + 1))
	}

	return sb.String()
}

// OpDecl is `op NAME(params...) -> RetType requires? Suite`, an
// operator-overload declaration sharing FuncDecl's shape.
type OpDecl struct {
	base

	Symbol     string
	Specifiers []FunctionSpecifier
	Params     []*VarDecl
	RetType    Node
	Requires   *RequiresDecl
	Body       *Suite
}

func NewOpDecl(symbol string, specifiers []FunctionSpecifier, params []*VarDecl, retType Node, requires *RequiresDecl, body *Suite, span Span) *OpDecl {
	return &OpDecl{
		base: base{span}, Symbol: symbol, Specifiers: specifiers, Params: params,
		RetType: retType, Requires: requires, Body: body,
	}
}

func (n *OpDecl) NodeKind() Kind   { return KindOpDecl }
func (n *OpDecl) Accept(v Visitor) { v.VisitOpDecl(n) }
func (n *OpDecl) String(depth int) string {
	var sb strings.Builder

	sb.WriteString(indent(depth) + "OpDecl(" + n.Symbol + ")\n")

	for _, p := range n.Params {
		sb.WriteString(p.String(depth + 1))
	}

	sb.WriteString(n.Body.String(depth + 1))

	return sb.String()
}
