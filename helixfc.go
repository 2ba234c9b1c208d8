// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package helixfc wires the frontend core's stages — source reading,
// lexing, layout preprocessing, and parsing — into the single
// ParseFile entry point spec.md §6 describes, and exposes the two
// read-only tree visitors (PrettyDumpVisitor, JsonDumpVisitor) callers
// use to inspect the result.
package helixfc

import (
	"github.com/heliclang/helixfc/ast"
	"github.com/heliclang/helixfc/diag"
	"github.com/heliclang/helixfc/lexer"
	"github.com/heliclang/helixfc/parser"
	"github.com/heliclang/helixfc/source"
	"github.com/heliclang/helixfc/token"
)

// ParseFile runs the full frontend pipeline over path: open the file,
// record its contents in cache (if given), tokenize, normalize layout,
// and parse. It always
// returns a Sink — possibly non-empty even when ast is non-nil, since
// recoverable errors don't halt parsing — and returns a nil ast only
// on an IoError or a cancellation.
//
// cancel, if non-nil, is polled cooperatively between top-level
// declarations (spec.md §5); it never interrupts mid-declaration.
func ParseFile(path string, cache *source.FileCache, cfg diag.Config, cancel func() bool) (*ast.Program, *diag.Sink) {
	sink := diag.NewSink(cfg)

	reader, err := source.Open(path)
	if err != nil {
		sink.Report(diag.New(diag.KindIO, diag.Span{Pos: diag.Pos{File: path, Line: 1, Col: 1}, Length: 1}, err.Error()))

		return nil, sink
	}
	defer reader.Close()

	if cache != nil {
		if _, cacheErr := cache.Fill(path, func() (string, error) {
			return reader.ReadFile(), nil
		}); cacheErr != nil {
			sink.Report(diag.New(diag.KindIO, diag.Span{Pos: diag.Pos{File: path, Line: 1, Col: 1}, Length: 1}, cacheErr.Error()))
		}
	}

	raw := lexer.New(reader, sink).Tokenize()
	normalized := lexer.NewPreprocessor(raw.All()).Process()
	toks := token.NewList(path, normalized)

	prog := parser.New(toks, sink, cancel).Parse()

	return prog, sink
}

// DumpPretty renders prog as an indented tree via PrettyDumpVisitor,
// the textual form spec.md §4.5 expects from a debugging CLI.
func DumpPretty(prog *ast.Program) string {
	return ast.NewPrettyDumpVisitor().Dump(prog)
}

// DumpJSON renders prog as the JSON-able map ast.JsonDumpVisitor
// builds, ready for json.Marshal by the caller.
func DumpJSON(prog *ast.Program) map[string]any {
	return ast.NewJsonDumpVisitor().Dump(prog)
}
