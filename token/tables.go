// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import "strings"

// keywords is the exhaustive keyword lexeme table (spec.md §3).
var keywords = map[string]SubKind{
	"if": KwIf, "else": KwElse, "unless": KwUnless, "macro": KwMacro,
	"define": KwDefine, "fn": KwFn, "op": KwOp, "inline": KwInline,
	"return": KwReturn, "enclosing": KwEnclosing, "async": KwAsync,
	"spawn": KwSpawn, "await": KwAwait, "thread": KwThread, "for": KwFor,
	"while": KwWhile, "break": KwBreak, "continue": KwContinue,
	"case": KwCase, "match": KwMatch, "switch": KwSwitch,
	"default": KwDefault, "enum": KwEnum, "type": KwType, "class": KwClass,
	"union": KwUnion, "struct": KwStruct, "abstract": KwAbstract,
	"interface": KwInterface, "is": KwIs, "try": KwTry, "panic": KwPanic,
	"catch": KwCatch, "finally": KwFinally, "let": KwLet, "priv": KwPriv,
	"auto": KwAuto, "const": KwConst, "global": KwGlobal, "from": KwFrom,
	"using": KwUsing, "import": KwImport, "extern": KwExtern,
	"yield": KwYield, "ffi": KwFFI, "static": KwStatic, "eval": KwEval,
	"pub": KwPub, "prot": KwProt, "intl": KwIntl,
}

// primitives is the exhaustive primitive-type lexeme table.
var primitives = map[string]SubKind{
	"void": PrimVoid, "bool": PrimBool, "byte": PrimByte, "char": PrimChar,
	"pointer": PrimPointer, "float": PrimFloat, "int": PrimInt,
	"decimal": PrimDecimal, "string": PrimString, "list": PrimList,
	"tuple": PrimTuple, "set": PrimSet, "map": PrimMap, "any": PrimAny,
}

// operators is the exhaustive operator lexeme table. Longer lexemes
// that are prefixes of shorter ones (e.g. "**=" vs "**" vs "*") are
// resolved by the lexer's longest-match scan, not by this table.
var operators = map[string]SubKind{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "%": OpMod, "@": OpAt,
	"**": OpPow, "+-": OpAddSub,
	"&": OpBitAnd, "~&": OpBitNand, "|": OpBitOr, "~|": OpBitNor,
	"^": OpBitXor, "~": OpBitNot, "<<": OpShl, ">>": OpShr,
	"==": OpEq, "!=": OpNeq, ">": OpGt, "<": OpLt, ">=": OpGe, "<=": OpLe,
	"===": OpIdentical,
	"=": OpAssign, "+=": OpAddAssign, "-=": OpSubAssign, "*=": OpMulAssign,
	"/=": OpDivAssign, "%=": OpModAssign, "@=": OpAtAssign,
	"~=": OpNotAssign, "**=": OpPowAssign,
	"++": OpInc, "--": OpDec,
	"&&": OpLAnd, "!&": OpLNand, "||": OpLOr, "!|": OpLNor,
	"^^": OpLXor, "!!": OpLNot,
	"..": OpRange, "..=": OpRangeIncl,
	".": OpMember, "->": OpArrow, "::": OpScope,
	"...": OpContinuation,
}

// punctuation is the exhaustive structural-punctuation lexeme table.
// '<' and '>' are listed in spec.md §3 but are unreachable here: the
// Operator table is consulted first and claims them.
var punctuation = map[string]SubKind{
	"(": PunctLParen, ")": PunctRParen,
	"{": PunctLBrace, "}": PunctRBrace,
	"[": PunctLBracket, "]": PunctRBracket,
	",": PunctComma, ";": PunctSemicolon, ":": PunctColon, "?": PunctQuestion,
	`"`: PunctQuote, "'": PunctApos,
	"//": PunctLineCmt, "/*": PunctBlockCmt,
}

// delimiters is the exhaustive whitespace lexeme table.
var delimiters = map[string]SubKind{
	" ": DelimSpace, "\t": DelimTab, "\n": DelimNewline,
}

// lexemeTables lists the exact-match tables in the declaration order
// spec.md §3 mandates: keywords, primitives, operators, punctuation,
// delimiters. Literals are classified by shape, not by table lookup,
// and are consulted only after every table here misses.
var lexemeTables = []struct {
	kind Kind
	tbl  map[string]SubKind
}{
	{Keyword, keywords},
	{Primitive, primitives},
	{Operator, operators},
	{Punctuation, punctuation},
	{Delimiter, delimiters},
}

// Classify resolves the Kind/SubKind of a raw lexeme value per the
// classification rule in spec.md §3: consult the lookup tables in
// declaration order, then fall back to shape-based literal detection,
// then to Identifier.
func Classify(value string) (Kind, SubKind) {
	for _, t := range lexemeTables {
		if sub, ok := t.tbl[value]; ok {
			return t.kind, sub
		}
	}

	if sub, ok := classifyLiteralShape(value); ok {
		return Literal, sub
	}

	return Identifier, IdentSubKind
}

// classifyLiteralShape recognizes the literal shapes spec.md §3 names:
// integer, float, string, char, bool-true, bool-false, null. It does
// not itself strip quote delimiters; the lexer hands it the literal's
// full source text, quotes included (see the lexer's scanLiteral).
func classifyLiteralShape(value string) (SubKind, bool) {
	switch value {
	case "true":
		return LitBoolTrue, true
	case "false":
		return LitBoolFalse, true
	case "null":
		return LitNull, true
	}

	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return LitString, true
	}

	if len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		return LitChar, true
	}

	if isIntLiteral(value) {
		return LitInt, true
	}

	if isFloatLiteral(value) {
		return LitFloat, true
	}

	return "", false
}

func isIntLiteral(value string) bool {
	if value == "" {
		return false
	}

	for i, r := range value {
		if r >= '0' && r <= '9' {
			continue
		}

		if i == 0 && r == '-' && len(value) > 1 {
			continue
		}

		return false
	}

	return true
}

func isFloatLiteral(value string) bool {
	dotSeen := false
	digitSeen := false

	for i, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digitSeen = true
		case r == '.' && !dotSeen:
			dotSeen = true
		case i == 0 && r == '-' && len(value) > 1:
			// leading sign, allowed once
		default:
			return false
		}
	}

	return dotSeen && digitSeen
}
