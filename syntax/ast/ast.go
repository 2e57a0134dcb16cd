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

// Package ast declares the abstract-syntax-tree node set the abstracter
// (syntax/abstracter) produces from an aggregated CST: trivia discarded,
// every operator rewritten to a canonical head symbol (spec.md §3,
// §4.7).
//
// The Node interface's Pos()/End() contract follows cue/ast.Node, but
// the node set itself collapses to the small tagged union spec.md §3
// calls for: a Leaf for literals and symbols, and one Call shape that
// every operator, pattern, and compound construct desugars into.
package ast

import "github.com/exprsyntax/langparse/syntax/token"

// A Node is any node in the abstract syntax tree. Every node owns its
// children exclusively; there is no sharing or cycles (spec.md §3).
type Node interface {
	Pos() token.Pos
	End() token.Pos
	Metadata() *AstMetadata
}

// LeafKind distinguishes the literal/identifier shapes a Leaf can take.
type LeafKind int

const (
	LeafSymbol LeafKind = iota
	LeafInteger
	LeafReal
	LeafRational
	LeafString
)

func (k LeafKind) String() string {
	switch k {
	case LeafSymbol:
		return "Symbol"
	case LeafInteger:
		return "Integer"
	case LeafReal:
		return "Real"
	case LeafRational:
		return "Rational"
	case LeafString:
		return "String"
	default:
		return "LeafKind(?)"
	}
}

// AstMetadata is carried by every node: its source span, any issues
// raised while producing it, and optional hints for round-tripping to
// source (spec.md §3).
type AstMetadata struct {
	Span   token.Span
	Issues []string // issue tags attached during abstraction; see syntax/errors for full Issue values held alongside the tree
	// SourceHint records why this node has the shape it does when that
	// isn't recoverable from the shape alone, e.g. "desugared from a-b".
	SourceHint string
}

// Leaf is a literal or a bare symbol reference; text is retained
// verbatim (numbers are not evaluated, spec.md §9).
type Leaf struct {
	Kind LeafKind
	Text string
	Meta AstMetadata
}

func (n *Leaf) Pos() token.Pos        { return n.Meta.Span.Start }
func (n *Leaf) End() token.Pos        { return n.Meta.Span.End }
func (n *Leaf) Metadata() *AstMetadata { return &n.Meta }

// Call is the single compound shape the AST uses for everything that
// isn't a bare Leaf: every operator application, pattern, slot, and
// desugared compound construct becomes Call{Head: Leaf{Symbol,
// HeadName}, Args: [...]}  (spec.md §4.7). Head is itself a Node rather
// than a bare string so `f[x][y]`-style nested heads and computed heads
// round-trip without a special case.
type Call struct {
	Head Node
	Args []Node
	Meta AstMetadata
}

func (n *Call) Pos() token.Pos        { return n.Meta.Span.Start }
func (n *Call) End() token.Pos        { return n.Meta.Span.End }
func (n *Call) Metadata() *AstMetadata { return &n.Meta }

// NewSymbol builds a Leaf{LeafSymbol} node, the common case of
// constructing a head for a desugared Call.
func NewSymbol(name string, span token.Span) *Leaf {
	return &Leaf{Kind: LeafSymbol, Text: name, Meta: AstMetadata{Span: span}}
}

// NewCall builds a Call with head name headName, covering span.
func NewCall(headName string, span token.Span, args ...Node) *Call {
	return &Call{
		Head: NewSymbol(headName, span),
		Args: args,
		Meta: AstMetadata{Span: span},
	}
}

// HeadName reports the canonical head name of n if n is a Call whose
// Head is a plain symbol Leaf, and ok=false otherwise (e.g. a computed
// head like `f[x][y]`).
func HeadName(n Node) (name string, ok bool) {
	call, isCall := n.(*Call)
	if !isCall {
		return "", false
	}
	leaf, isLeaf := call.Head.(*Leaf)
	if !isLeaf || leaf.Kind != LeafSymbol {
		return "", false
	}
	return leaf.Text, true
}

// IsSyntaxError reports whether n is (or is headed by) the
// UnsupportedOperator / SyntaxError escape hatch abstraction falls back
// to for constructs it cannot make total sense of (spec.md §4.7, §8
// property 4).
func IsSyntaxError(n Node) bool {
	name, ok := HeadName(n)
	return ok && (name == "SyntaxError" || name == "UnsupportedOperator")
}
