// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package lexer

import "github.com/heliclang/helixfc/token"

// bodyIntroducers is the set of keywords whose following '{' opens a
// Suite body block that the parser treats as an indent level rather
// than a bare punctuation pair (spec.md §4.3). KwEnum is deliberately
// absent: an enum's '{' opens a `name: value, ...` field list, the
// same object-literal shape ObjectInvocation parses, not a statement
// Suite, so it stays a literal brace pair for parseObjectFields.
var bodyIntroducers = map[token.SubKind]bool{
	token.KwIf: true, token.KwElse: true, token.KwUnless: true,
	token.KwFor: true, token.KwWhile: true, token.KwMatch: true,
	token.KwSwitch: true, token.KwTry: true, token.KwCatch: true,
	token.KwFinally: true, token.KwFn: true, token.KwOp: true,
	token.KwClass: true, token.KwStruct: true, token.KwInterface: true,
	token.KwUnion: true, token.KwMacro: true,
	token.KwAsync: true, token.KwThread: true,
}

// braceFrame tracks one pending '{'/'}' pair seen by the
// Preprocessor so it knows, on the matching '}', whether to rewrite
// it as a DEDENT (body brace) or pass it through untouched (a bare
// grouping brace, e.g. a struct-literal or set-literal brace).
type braceFrame struct {
	isBody bool
}

// Preprocessor rewrites a raw token stream into the layout-normalized
// form the parser expects, per spec.md §4.3:
//
//   - a body-introducing keyword's following '{' becomes ':' + NEWLINE,
//     and its matching '}' becomes NEWLINE + DEDENT;
//   - ';' becomes NEWLINE, except inside a for-loop header, where the
//     two statement-separating semicolons are preserved verbatim;
//   - a line ending in the continuation sentinel '...' suppresses the
//     NEWLINE that would otherwise terminate it;
//   - runs of consecutive NEWLINEs collapse to one.
//
// The obscure historical "<\r1>" sentinel some Helix sources carry is
// not reproduced; see DESIGN.md's Open Question log for why.
type Preprocessor struct {
	in  []token.Token
	out []token.Token

	frames []braceFrame

	// forHeaderDepth counts nested for-loop headers currently open
	// (between KwFor and the body-opening ':'), so ';' inside one is
	// preserved rather than rewritten to NEWLINE.
	forHeaderDepth int

	// suppressNextNewline is set by a trailing '...' continuation
	// sentinel and consumed by the NEWLINE that immediately follows it
	// in the raw stream.
	suppressNextNewline bool
}

// NewPreprocessor wraps a raw token stream (as produced by
// Lexer.Tokenize, EOF token included) for rewriting.
func NewPreprocessor(toks []token.Token) *Preprocessor {
	return &Preprocessor{in: toks}
}

// Process runs the full rewrite and returns the normalized stream,
// ready for token.NewList.
func (p *Preprocessor) Process() []token.Token {
	pendingBodyIntroducer := false

	for i := 0; i < len(p.in); i++ {
		t := p.in[i]

		switch {
		case t.Kind == token.Keyword && t.SubKind == token.KwFor:
			// for opens both a body (its '{') and a header whose own
			// ';' separators must survive the NEWLINE rewrite.
			pendingBodyIntroducer = true
			p.forHeaderDepth++
			p.emit(t)

		case t.Kind == token.Keyword && bodyIntroducers[t.SubKind]:
			pendingBodyIntroducer = true
			p.emit(t)

		case t.Kind == token.Punctuation && t.SubKind == token.PunctLBrace:
			p.frames = append(p.frames, braceFrame{isBody: pendingBodyIntroducer})

			if pendingBodyIntroducer {
				p.emit(token.Token{
					Line: t.Line, Column: t.Column, Length: 1, Offset: t.Offset,
					Value: ":", Kind: token.Punctuation, SubKind: token.PunctColon,
				})
				p.emitNewline(t)

				if p.forHeaderDepth > 0 {
					p.forHeaderDepth--
				}
			} else {
				p.emit(t)
			}

			pendingBodyIntroducer = false

		case t.Kind == token.Punctuation && t.SubKind == token.PunctRBrace:
			frame := braceFrame{}
			if len(p.frames) > 0 {
				frame = p.frames[len(p.frames)-1]
				p.frames = p.frames[:len(p.frames)-1]
			}

			if frame.isBody {
				p.emitNewline(t)
				p.emit(token.NewDedent(t.Line, t.Column, t.Offset))
			} else {
				p.emit(t)
			}

		case t.Kind == token.Punctuation && t.SubKind == token.PunctSemicolon:
			if p.forHeaderDepth > 0 {
				p.emit(t) // statement separator inside a for-header, kept verbatim
			} else {
				p.emitNewline(t)
			}

		case t.SubKind == token.OpContinuation:
			// drop the sentinel itself; the NEWLINE it shields is
			// dropped below when we reach it.
			p.suppressNextNewline = true

		case t.SubKind == token.LayoutNewline && p.suppressNextNewline:
			p.suppressNextNewline = false

		default:
			p.emit(t)
		}
	}

	return p.collapseNewlines(p.out)
}

func (p *Preprocessor) emit(t token.Token) {
	p.out = append(p.out, t)
}

func (p *Preprocessor) emitNewline(at token.Token) {
	p.out = append(p.out, token.NewNewline(at.Line, at.Column, at.Offset))
}

// collapseNewlines drops a NEWLINE that immediately follows another
// NEWLINE (an empty source line contributes nothing to block
// structure) and strips a leading NEWLINE at the very start of the
// stream.
func (p *Preprocessor) collapseNewlines(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))

	for _, t := range toks {
		if t.SubKind == token.LayoutNewline {
			if len(out) == 0 {
				continue
			}

			if out[len(out)-1].SubKind == token.LayoutNewline {
				continue
			}
		}

		out = append(out, t)
	}

	return out
}
