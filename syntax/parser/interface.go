// Copyright 2024 The langparse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/exprsyntax/langparse/syntax/abstracter"
	"github.com/exprsyntax/langparse/syntax/aggregate"
	"github.com/exprsyntax/langparse/syntax/ast"
	"github.com/exprsyntax/langparse/syntax/cst"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/quirks"
	"github.com/exprsyntax/langparse/syntax/source"
	"github.com/exprsyntax/langparse/syntax/token"
)

// QuirkSettings re-exports quirks.Settings at the parser package
// boundary so callers driving ParseAST don't need a second import for
// the common case (spec.md §6's Configuration section).
type QuirkSettings = quirks.Settings

// config holds every knob Option can set. It follows the
// functional-option shape cue/parser.Option uses: Option is a function
// over a private config rather than an exported struct, so new knobs
// can be added without breaking callers.
type config struct {
	tabWidth   int
	firstLine  source.FirstLineBehavior
	convention token.Convention
	abortCheck func() bool
}

func newConfig(opts []Option) *config {
	c := &config{tabWidth: 4, firstLine: source.NotScript, convention: token.LineColumn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a parse. The zero value of every option is the
// package default, matching cue/parser's Option pattern.
type Option func(*config)

// TabWidth overrides the default tab width of 4 used for column
// computation (spec.md §4.1).
func TabWidth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.tabWidth = n
		}
	}
}

// FirstLine controls how a leading `#!` shebang is treated (spec.md §4.1).
func FirstLine(b source.FirstLineBehavior) Option {
	return func(c *config) { c.firstLine = b }
}

// SourceConvention selects whether positions are reported as
// line/column pairs or as a flat character index (spec.md §3, §6).
func SourceConvention(conv token.Convention) Option {
	return func(c *config) { c.convention = conv }
}

// AbortCheck installs a probe the parser polls between productions; once
// it returns true, parsing unwinds with ExpectedOperand/ErrorAborted
// nodes instead of continuing, letting an embedding host bound parse
// time without tearing down the goroutine (spec.md §5).
func AbortCheck(fn func() bool) Option {
	return func(c *config) { c.abortCheck = fn }
}

// Tokenize runs the tokenizer alone over src, returning every token
// including trivia and the tail-reparsed terminal token if the input
// ends mid-string/mid-comment (spec.md §4.5). It never fails: malformed
// input produces Error_* token kinds rather than a Go error, with
// details recorded in issues.
func Tokenize(filename string, src []byte, issues *errors.List, opts ...Option) []token.Token {
	cfg := newConfig(opts)
	file := token.NewFile(filename, len(src), cfg.convention)
	p := newParser(file, src, issues, cfg)

	var toks []token.Token
	for {
		t := p.scan.NextToken()
		toks = append(toks, t)
		if t.Kind == token.EndOfFile {
			break
		}
	}
	for i, t := range toks {
		toks[i] = reparseIfUnsafe(file, src, t)
	}
	p.reportUnsafeEncoding()
	return toks
}

func reparseIfUnsafe(file *token.File, src []byte, t token.Token) token.Token {
	switch t.Kind {
	case token.ErrorUnterminatedString, token.ErrorUnterminatedComment, token.ErrorUnterminatedFileString:
		return reparseTail(file, src, t)
	default:
		return t
	}
}

func reparseTail(file *token.File, src []byte, t token.Token) token.Token {
	end := file.Pos(len(src))
	t.Span.End = end
	t.Text = string(src[file.Offset(t.Span.Start):len(src)])
	t.Flags |= token.Unterminated
	return t
}

// ParseCST parses src into one concrete syntax tree node covering the
// whole input (component C4/C5, spec.md §4.4-§4.5). It never returns an
// error; malformed input is represented in the tree as SyntaxError/
// UnterminatedGroup/GroupMissingCloser recovery nodes, with
// corresponding entries appended to issues.
func ParseCST(filename string, src []byte, issues *errors.List, opts ...Option) cst.Node {
	cfg := newConfig(opts)
	file := token.NewFile(filename, len(src), cfg.convention)
	p := newParser(file, src, issues, cfg)

	node := p.parseExpr(LowestPrecedence)
	trailing := p.peekSignificant()
	if trailing.Kind != token.EndOfFile && trailing.Kind != token.ToplevelNewline {
		p.addIssue("unexpected-trailing-input", errors.Error, trailing.Span, "unexpected trailing input starting with %q", trailing.Text)
		node = &cst.SyntaxError{Kind: cst.UnexpectedCloser, Children: []cst.Node{node}, Bounds: cst.Cover(node, &cst.Leaf{Tok: trailing})}
	}
	// Checked only now, not before parsing starts: a mid-stream BOM or
	// invalid UTF-8 byte past the first rune is only visible on the
	// reader once scanning has actually walked over it.
	p.reportUnsafeEncoding()
	return aggregate.Normalize(node)
}

// ParseCSTSequence parses a sequence of toplevel-newline- or
// semicolon-separated expressions, the shape a whole source file takes
// (spec.md §4.4's toplevel loop), returning one node per expression.
func ParseCSTSequence(filename string, src []byte, issues *errors.List, opts ...Option) []cst.Node {
	cfg := newConfig(opts)
	file := token.NewFile(filename, len(src), cfg.convention)
	p := newParser(file, src, issues, cfg)

	var out []cst.Node
	for {
		peek := p.peekSignificant()
		if peek.Kind == token.EndOfFile {
			break
		}
		if peek.Kind == token.ToplevelNewline || peek.Kind == token.Semi {
			p.scan.NextToken()
			continue
		}
		out = append(out, aggregate.Normalize(p.parseExpr(LowestPrecedence)))
	}
	p.reportUnsafeEncoding()
	return out
}

// ParseAST parses src and abstracts the result in one call (components
// C4-C7, spec.md §4.4-§4.7): trivia dropped, operators rewritten to
// canonical head symbols. See syntax/abstracter for the abstraction
// rules applied.
func ParseAST(filename string, src []byte, issues *errors.List, settings QuirkSettings, opts ...Option) ast.Node {
	tree := ParseCST(filename, src, issues, opts...)
	return abstracter.Abstract(tree, issues, settings)
}

// ParseASTSequence is the sequence form of ParseAST, matching
// ParseCSTSequence.
func ParseASTSequence(filename string, src []byte, issues *errors.List, settings QuirkSettings, opts ...Option) []ast.Node {
	trees := ParseCSTSequence(filename, src, issues, opts...)
	out := make([]ast.Node, len(trees))
	for i, t := range trees {
		out[i] = abstracter.Abstract(t, issues, settings)
	}
	return out
}
