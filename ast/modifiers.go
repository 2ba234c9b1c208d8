// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package ast

// AccessSpecifier is a declaration's visibility modifier.
type AccessSpecifier int

const (
	Public AccessSpecifier = iota
	Private
	Protected
	Internal
)

func (a AccessSpecifier) String() string {
	return [...]string{"Public", "Private", "Protected", "Internal"}[a]
}

// StorageSpecifier is a declaration's storage-class modifier.
type StorageSpecifier int

const (
	StorageFFI StorageSpecifier = iota
	StorageStatic
	StorageAsync
	StorageEval
)

func (s StorageSpecifier) String() string {
	return [...]string{"Ffi", "Static", "Async", "Eval"}[s]
}

// TypeQualifier modifies a TypeDecl or UDT member type.
type TypeQualifier int

const (
	TypeConst TypeQualifier = iota
	TypeModule
	TypeYield
	TypeAsync
	TypeFFI
	TypeStatic
	TypeMacro
)

func (t TypeQualifier) String() string {
	return [...]string{"Const", "Module", "Yield", "Async", "Ffi", "Static", "Macro"}[t]
}

// FunctionSpecifier modifies a FuncDecl or OpDecl's calling convention.
type FunctionSpecifier int

const (
	FnInline FunctionSpecifier = iota
	FnAsync
	FnStatic
	FnConst
	FnEval
	FnOther
)

func (f FunctionSpecifier) String() string {
	return [...]string{"Inline", "Async", "Static", "Const", "Eval", "Other"}[f]
}

// FunctionQualifier is a FuncDecl's post-signature qualifier, e.g.
// `fn foo() = default;`.
type FunctionQualifier int

const (
	FnDefault FunctionQualifier = iota
	FnPanic
	FnDelete
	FnQualConst
)

func (f FunctionQualifier) String() string {
	return [...]string{"Default", "Panic", "Delete", "Const"}[f]
}

// FFISpecifier names which UDT shape an FFIDecl exposes across the
// foreign-function boundary.
type FFISpecifier int

const (
	FFIClass FFISpecifier = iota
	FFIInterface
	FFIStruct
	FFIEnum
	FFIUnion
	FFIType
)

func (f FFISpecifier) String() string {
	return [...]string{"Class", "Interface", "Struct", "Enum", "Union", "Type"}[f]
}
