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

// Package aggregate implements component C6 (spec.md §4.6): normalizing
// a parsed concrete syntax tree before abstraction. The parser already
// drops whitespace/comment/internal-newline trivia and flattens
// associative chains as it builds the tree (syntax/parser's
// peekSignificant and infixChainParselet), so what remains here is
// collapsing a redundant `(expr)` wrapper down to its single child —
// the one normalization that has to happen after a tree exists rather
// than while it's being built, since the parser can't know in advance
// whether a parenthesized group will turn out to wrap exactly one
// element until it's finished parsing it.
//
// Aggregate is idempotent (spec.md §8 property 3): running it twice
// produces the same tree as running it once, since a collapsed node
// never re-exposes another collapsible Group.
package aggregate

import "github.com/exprsyntax/langparse/syntax/cst"

// Normalize returns n with every redundant single-child `(...)` Group
// replaced by its child, recursively.
func Normalize(n cst.Node) cst.Node {
	switch v := n.(type) {
	case nil:
		return nil
	case *cst.Group:
		children := mapNodes(v.Children, Normalize)
		if v.Open.Kind.String() == "(" && len(children) == 1 {
			return children[0]
		}
		return &cst.Group{Open: v.Open, Children: children, Commas: v.Commas, Close: v.Close, Bounds: v.Bounds}
	case *cst.Prefix:
		return &cst.Prefix{Op: v.Op, Child: Normalize(v.Child), Bounds: v.Bounds}
	case *cst.Postfix:
		return &cst.Postfix{Op: v.Op, Child: Normalize(v.Child), Bounds: v.Bounds}
	case *cst.Binary:
		return &cst.Binary{Op: v.Op, LHS: Normalize(v.LHS), RHS: Normalize(v.RHS), Bounds: v.Bounds}
	case *cst.Infix:
		return &cst.Infix{Op: v.Op, Ops: v.Ops, Children: mapNodes(v.Children, Normalize), Bounds: v.Bounds}
	case *cst.Ternary:
		return &cst.Ternary{Op: v.Op, A: Normalize(v.A), B: Normalize(v.B), C: Normalize(v.C), Bounds: v.Bounds}
	case *cst.Call:
		args := &cst.Group{Open: v.Args.Open, Children: mapNodes(v.Args.Children, Normalize), Commas: v.Args.Commas, Close: v.Args.Close, Bounds: v.Args.Bounds}
		return &cst.Call{Head: Normalize(v.Head), Args: args, Bounds: v.Bounds}
	case *cst.Compound:
		return &cst.Compound{Tag: v.Tag, Tokens: v.Tokens, Children: mapNodes(v.Children, Normalize), Bounds: v.Bounds}
	case *cst.SyntaxError:
		return &cst.SyntaxError{Kind: v.Kind, Children: mapNodes(v.Children, Normalize), Bounds: v.Bounds}
	case *cst.UnterminatedGroup:
		return &cst.UnterminatedGroup{Open: v.Open, Children: mapNodes(v.Children, Normalize), Commas: v.Commas, Bounds: v.Bounds}
	case *cst.GroupMissingCloser:
		return &cst.GroupMissingCloser{Open: v.Open, Children: mapNodes(v.Children, Normalize), Commas: v.Commas, Bounds: v.Bounds}
	default:
		return n
	}
}

func mapNodes(ns []cst.Node, f func(cst.Node) cst.Node) []cst.Node {
	if ns == nil {
		return nil
	}
	out := make([]cst.Node, len(ns))
	for i, n := range ns {
		out[i] = f(n)
	}
	return out
}
