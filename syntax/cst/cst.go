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

// Package cst declares the concrete-syntax-tree node types the parser
// (syntax/parser) builds (spec.md §3). Trivia is not kept in the tree:
// the parser skips whitespace, comments and internal newlines, so every
// input byte appears in the token stream that Tokenize returns but not
// necessarily in a CST leaf.
//
// The Node interface and its Pos()/End() contract follow cue/ast.Node;
// the node set itself is specific to this grammar's tagged-union shape
// rather than CUE's.
package cst

import "github.com/exprsyntax/langparse/syntax/token"

// A Node is any node in the concrete syntax tree.
type Node interface {
	Pos() token.Pos
	End() token.Pos
	Span() token.Span
}

// Leaf wraps a single token as a CST node (spec.md §3).
type Leaf struct {
	Tok token.Token
}

// Prefix is a prefix-operator application: `op child`.
type Prefix struct {
	Op     token.Token
	Child  Node
	Bounds token.Span
}

// Postfix is a postfix-operator application: `child op`.
type Postfix struct {
	Op     token.Token
	Child  Node
	Bounds token.Span
}

// Binary is a non-associative binary operator application.
type Binary struct {
	Op     token.Token
	LHS    Node
	RHS    Node
	Bounds token.Span
}

// Infix is an n-ary chain of one associative operator, produced by
// chain flattening (spec.md §4.5): `a op b op c` -> one Infix with
// Children [a,b,c] and the same Op repeated len(Children)-1 times, or,
// for a mixed-operator comparison chain, Ops holding the operator
// between each pair (spec.md's Inequality chaining).
type Infix struct {
	// Op is the single operator for a homogeneous chain (Plus, Times,
	// And, ...). It is the zero Token when Ops is used instead.
	Op token.Token
	// Ops holds one operator token per gap between Children, used only
	// for mixed-operator inequality chains; nil for a homogeneous chain.
	Ops      []token.Token
	Children []Node
	Bounds   token.Span
}

// Ternary is a fixed-arity three-operand construct. The parser builds it
// only for the `a : b : c` continuation; the `/:` tag-set continuations
// become Compound nodes (spec.md §4.4).
type Ternary struct {
	Op     token.Token
	A, B, C Node
	Bounds token.Span
}

// Group is a balanced bracketed construct: `(...)`, `[...]`, `{...}`,
// and their long-named counterparts. Children holds the comma-separated
// elements; Commas holds the comma tokens between them so the CST stays
// lossless (spec.md §3's "Infix ... preserved in CST" invariant extends
// to Group's separators).
type Group struct {
	Open     token.Token
	Children []Node
	Commas   []token.Token
	Close    token.Token
	Bounds   token.Span
}

// Call is a function application: `head[args]`. The
// arguments are themselves a Group so the opener/closer/comma tokens
// stay attached to it (spec.md §3).
type Call struct {
	Head   Node
	Args   *Group
	Bounds token.Span
}

// Compound is a fixed-shape multi-token construct that isn't a simple
// operator application: `_x`, `x_`, `#name`, `%%`, and similar patterns
// and slots (spec.md §3). Tokens holds every token consumed; Children
// holds any sub-nodes embedded in it (e.g. the head in `x_Head`).
type Compound struct {
	Tag      string
	Tokens   []token.Token
	Children []Node
	Bounds   token.Span
}

// SyntaxErrorKind enumerates the shapes of parser recovery nodes
// (spec.md §3, §7).
type SyntaxErrorKind int

const (
	ExpectedOperand SyntaxErrorKind = iota
	UnexpectedCloser
	MissingCloser
	UnsupportedToken
	StackOverflow
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case ExpectedOperand:
		return "ExpectedOperand"
	case UnexpectedCloser:
		return "UnexpectedCloser"
	case MissingCloser:
		return "MissingCloser"
	case UnsupportedToken:
		return "UnsupportedToken"
	case StackOverflow:
		return "StackOverflow"
	default:
		return "SyntaxError(?)"
	}
}

// SyntaxError is a recovery node inserted in place of a construct the
// parser could not make sense of. It still carries whatever children
// were parsed before recovery kicked in, so span coverage and
// losslessness (spec.md §8 properties 1-2) hold even through an error.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Children []Node
	Bounds   token.Span
}

// UnterminatedGroup is the specific SyntaxError shape for a Group whose
// opener was never matched by a closer before end of input (spec.md
// §3's scenario 5: lone `(`).
type UnterminatedGroup struct {
	Open     token.Token
	Children []Node
	Commas   []token.Token
	Bounds   token.Span
}

// GroupMissingCloser is the recovery shape produced when an enclosing
// group is terminated early by an unexpected closer belonging to an
// outer frame (spec.md §4.5's group-handling recovery policy).
type GroupMissingCloser struct {
	Open     token.Token
	Children []Node
	Commas   []token.Token
	Bounds   token.Span
}

func (n *Leaf) Pos() token.Pos   { return n.Tok.Span.Start }
func (n *Leaf) End() token.Pos   { return n.Tok.Span.End }
func (n *Leaf) Span() token.Span { return n.Tok.Span }

func (n *Prefix) Pos() token.Pos   { return n.Bounds.Start }
func (n *Prefix) End() token.Pos   { return n.Bounds.End }
func (n *Prefix) Span() token.Span { return n.Bounds }

func (n *Postfix) Pos() token.Pos   { return n.Bounds.Start }
func (n *Postfix) End() token.Pos   { return n.Bounds.End }
func (n *Postfix) Span() token.Span { return n.Bounds }

func (n *Binary) Pos() token.Pos   { return n.Bounds.Start }
func (n *Binary) End() token.Pos   { return n.Bounds.End }
func (n *Binary) Span() token.Span { return n.Bounds }

func (n *Infix) Pos() token.Pos   { return n.Bounds.Start }
func (n *Infix) End() token.Pos   { return n.Bounds.End }
func (n *Infix) Span() token.Span { return n.Bounds }

func (n *Ternary) Pos() token.Pos   { return n.Bounds.Start }
func (n *Ternary) End() token.Pos   { return n.Bounds.End }
func (n *Ternary) Span() token.Span { return n.Bounds }

func (n *Group) Pos() token.Pos   { return n.Bounds.Start }
func (n *Group) End() token.Pos   { return n.Bounds.End }
func (n *Group) Span() token.Span { return n.Bounds }

func (n *Call) Pos() token.Pos   { return n.Bounds.Start }
func (n *Call) End() token.Pos   { return n.Bounds.End }
func (n *Call) Span() token.Span { return n.Bounds }

func (n *Compound) Pos() token.Pos   { return n.Bounds.Start }
func (n *Compound) End() token.Pos   { return n.Bounds.End }
func (n *Compound) Span() token.Span { return n.Bounds }

func (n *SyntaxError) Pos() token.Pos   { return n.Bounds.Start }
func (n *SyntaxError) End() token.Pos   { return n.Bounds.End }
func (n *SyntaxError) Span() token.Span { return n.Bounds }

func (n *UnterminatedGroup) Pos() token.Pos   { return n.Bounds.Start }
func (n *UnterminatedGroup) End() token.Pos   { return n.Bounds.End }
func (n *UnterminatedGroup) Span() token.Span { return n.Bounds }

func (n *GroupMissingCloser) Pos() token.Pos   { return n.Bounds.Start }
func (n *GroupMissingCloser) End() token.Pos   { return n.Bounds.End }
func (n *GroupMissingCloser) Span() token.Span { return n.Bounds }

// Cover returns the smallest span covering every node in ns, used by
// parselets to compute a Bounds field from their assembled children.
func Cover(ns ...Node) token.Span {
	var sp token.Span
	for _, n := range ns {
		if n == nil {
			continue
		}
		sp = sp.Cover(n.Span())
	}
	return sp
}
