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

// Package abstracter implements component C7 (spec.md §4.7): rewriting
// an aggregated concrete syntax tree into the abstract syntax tree
// declared in syntax/ast. Every CST shape maps onto one or more Call
// nodes headed by a canonical symbol; the mapping is total, falling
// back to an UnsupportedOperator Call rather than panicking on a CST
// shape it doesn't recognize (spec.md §8 property 4).
package abstracter

import (
	"github.com/exprsyntax/langparse/syntax/ast"
	"github.com/exprsyntax/langparse/syntax/cst"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/quirks"
	"github.com/exprsyntax/langparse/syntax/token"
)

// opHeads maps a CST operator token.Kind to the canonical AST head name
// it desugars to for a simple Binary/Infix/Prefix/Postfix application
// (spec.md §4.7). Kinds needing special-case rewriting (Minus, the
// compound-assign family, patterns, slots) are handled directly in
// node's per-shape methods rather than through this table.
var opHeads = map[token.Kind]string{
	token.Plus:                  "Plus",
	token.Star:                  "Times",
	token.Slash:                 "Times", // a/b -> Times(a, Power(b,-1)), see binary
	token.Caret:                 "Power",
	token.AmpAmp:                "And",
	token.LongNameAnd:           "And",
	token.BarBar:                "Or",
	token.LongNameOr:            "Or",
	token.Bang:                  "Not",
	token.LongNameNot:           "Not",
	token.EqualEqual:            "Equal",
	token.BangEqual:             "Unequal",
	token.EqualEqualEqual:       "SameQ",
	token.LongNameNotEqual:      "Unequal",
	token.Less:                  "Less",
	token.LessEqual:             "LessEqual",
	token.Greater:               "Greater",
	token.GreaterEqual:          "GreaterEqual",
	token.LongNameLessEqual:     "LessEqual",
	token.LongNameGreaterEqual:  "GreaterEqual",
	token.Arrow:                 "Rule",
	token.RuleDelayed:           "RuleDelayed",
	token.LongNameRule:          "Rule",
	token.LongNameRuleDelayed:   "RuleDelayed",
	token.SlashDot:              "ReplaceAll",
	token.SlashAt:               "Apply",
	token.LongNameElement:       "Element",
	token.LongNameNotElement:    "NotElement",
	token.LongNameUnion:         "Union",
	token.LongNameIntersection:  "Intersection",
	token.LongNameForAll:        "ForAll",
	token.LongNameExists:        "Exists",
	token.LongNameNotExists:     "NotExists",
	token.LongNameInvisibleTimes: "Times",
	token.FakeImplicitTimes:     "Times",
	token.LongNameCircleTimes:   "CircleTimes",
	token.LongNameCirclePlus:    "CirclePlus",
	token.LongNamePlusMinus:     "PlusMinus",
	token.LongNameMinusPlus:     "MinusPlus",
	token.PlusPlus:              "Increment",
	token.MinusMinus:            "Decrement",
	token.BangBang:              "Factorial2",
	token.SemiSemi:              "Span",
}

// inequalityHeads maps a comparison token.Kind to its AST head name,
// used when collapsing a mixed chain into one Inequality call (spec.md
// §4.5, §4.7).
var inequalityHeads = map[token.Kind]string{
	token.Less:                 "Less",
	token.LessEqual:            "LessEqual",
	token.Greater:              "Greater",
	token.GreaterEqual:         "GreaterEqual",
	token.EqualEqual:           "Equal",
	token.BangEqual:            "Unequal",
	token.LongNameLessEqual:    "LessEqual",
	token.LongNameGreaterEqual: "GreaterEqual",
}

// Abstract rewrites one aggregated CST node into its AST form. issues
// receives any diagnostics the rewrite itself raises (distinct from the
// ones the parser already recorded while building the CST).
func Abstract(n cst.Node, issues *errors.List, settings quirks.Settings) ast.Node {
	a := &abstractor{issues: issues, settings: settings}
	return a.node(n)
}

type abstractor struct {
	issues   *errors.List
	settings quirks.Settings
}

func (a *abstractor) addIssue(tag string, span token.Span, format string, args ...interface{}) {
	if a.issues == nil {
		return
	}
	a.issues.AddNewf(tag, errors.Error, span, format, args...)
}

func (a *abstractor) node(n cst.Node) ast.Node {
	switch v := n.(type) {
	case *cst.Leaf:
		return a.leaf(v)
	case *cst.Prefix:
		return a.prefix(v)
	case *cst.Postfix:
		return a.postfix(v)
	case *cst.Binary:
		return a.binary(v)
	case *cst.Infix:
		return a.infix(v)
	case *cst.Ternary:
		return a.ternary(v)
	case *cst.Group:
		return a.group(v)
	case *cst.Call:
		return a.call(v)
	case *cst.Compound:
		return a.compound(v)
	case *cst.SyntaxError:
		return a.syntaxError(v.Bounds, v.Kind)
	case *cst.UnterminatedGroup:
		return a.syntaxError(v.Bounds, cst.MissingCloser)
	case *cst.GroupMissingCloser:
		return a.syntaxError(v.Bounds, cst.MissingCloser)
	default:
		return a.unsupported(n.Span(), "UnsupportedOperator")
	}
}

func (a *abstractor) unsupported(span token.Span, head string) ast.Node {
	return ast.NewCall(head, span)
}

// syntaxError builds the AST's escape-hatch node for a CST recovery
// shape, recording which SyntaxErrorKind produced it the same way leaf
// records an error token's kind, so a fatal MissingCloser is
// distinguishable from an ExpectedOperand once downstream of
// abstraction (spec.md §8 scenario 5: "AST rooted at
// SyntaxError(MissingCloser,...)").
func (a *abstractor) syntaxError(span token.Span, kind cst.SyntaxErrorKind) ast.Node {
	return &ast.Call{Head: ast.NewSymbol("SyntaxError", span), Meta: ast.AstMetadata{Span: span, SourceHint: kind.String()}}
}

func (a *abstractor) leaf(n *cst.Leaf) ast.Node {
	meta := ast.AstMetadata{Span: n.Tok.Span}
	switch n.Tok.Kind {
	case token.Integer:
		return &ast.Leaf{Kind: ast.LeafInteger, Text: n.Tok.Text, Meta: meta}
	case token.Real:
		return &ast.Leaf{Kind: ast.LeafReal, Text: n.Tok.Text, Meta: meta}
	case token.Rational:
		return &ast.Leaf{Kind: ast.LeafRational, Text: n.Tok.Text, Meta: meta}
	case token.String:
		return &ast.Leaf{Kind: ast.LeafString, Text: n.Tok.Text, Meta: meta}
	case token.Symbol:
		return &ast.Leaf{Kind: ast.LeafSymbol, Text: n.Tok.Text, Meta: meta}
	default:
		if n.Tok.Kind.IsError() {
			meta.SourceHint = n.Tok.Kind.String()
			return &ast.Call{Head: ast.NewSymbol("SyntaxError", n.Tok.Span), Meta: meta}
		}
		return a.unsupported(n.Tok.Span, "UnsupportedOperator")
	}
}

func (a *abstractor) prefix(n *cst.Prefix) ast.Node {
	child := a.node(n.Child)
	switch n.Op.Kind {
	case token.Minus:
		// -x -> Times(-1, x), matching the binary chain's per-term
		// rewrite so `Plus` children are always in canonical form
		// regardless of whether the minus was unary or a chain term.
		return ast.NewCall("Times", n.Bounds, ast.NewSymbol("-1", n.Op.Span), child)
	case token.Plus:
		return child
	case token.Bang, token.LongNameNot:
		return ast.NewCall("Not", n.Bounds, child)
	case token.PlusPlus:
		return ast.NewCall("PreIncrement", n.Bounds, child)
	case token.MinusMinus:
		return ast.NewCall("PreDecrement", n.Bounds, child)
	case token.LongNameSqrt:
		return ast.NewCall("Sqrt", n.Bounds, child)
	case token.LongNamePlusMinus:
		return ast.NewCall("PlusMinus", n.Bounds, child)
	case token.LongNameMinusPlus:
		return ast.NewCall("MinusPlus", n.Bounds, child)
	case token.LongNameDel:
		return ast.NewCall("Del", n.Bounds, child)
	case token.SemiSemi:
		return ast.NewCall("Span", n.Bounds, ast.NewSymbol("All", n.Op.Span), child)
	default:
		a.addIssue("unsupported-operator", n.Bounds, "unsupported prefix operator %q", n.Op.Text)
		return a.unsupported(n.Bounds, "UnsupportedOperator")
	}
}

func (a *abstractor) postfix(n *cst.Postfix) ast.Node {
	child := a.node(n.Child)
	switch n.Op.Kind {
	case token.PlusPlus:
		return ast.NewCall("Increment", n.Bounds, child)
	case token.MinusMinus:
		return ast.NewCall("Decrement", n.Bounds, child)
	case token.Bang:
		return ast.NewCall("Factorial", n.Bounds, child)
	case token.BangBang:
		return ast.NewCall("Factorial2", n.Bounds, child)
	default:
		a.addIssue("unsupported-operator", n.Bounds, "unsupported postfix operator %q", n.Op.Text)
		return a.unsupported(n.Bounds, "UnsupportedOperator")
	}
}

func (a *abstractor) binary(n *cst.Binary) ast.Node {
	lhs := a.node(n.LHS)
	rhs := a.node(n.RHS)

	switch n.Op.Kind {
	case token.Slash:
		return ast.NewCall("Times", n.Bounds, lhs, ast.NewCall("Power", n.RHS.Span(), rhs, ast.NewSymbol("-1", n.Op.Span)))
	case token.Colon:
		if a.settings.TreatUnderDotAsOptionalDefault {
			return ast.NewCall("Optional", n.Bounds, lhs, rhs)
		}
		return ast.NewCall("Pattern", n.Bounds, lhs, rhs)
	}

	head, ok := opHeads[n.Op.Kind]
	if !ok {
		a.addIssue("unsupported-operator", n.Bounds, "unsupported operator %q", n.Op.Text)
		return a.unsupported(n.Bounds, "UnsupportedOperator")
	}
	return ast.NewCall(head, n.Bounds, lhs, rhs)
}

func (a *abstractor) infix(n *cst.Infix) ast.Node {
	if n.Ops != nil {
		return a.inequalityChain(n)
	}

	switch n.Op.Kind {
	case token.Minus:
		// a-b-c -> Plus(a, Times(-1,b), Times(-1,c)): every term after
		// the first gets negated rather than nesting Subtract calls
		// (spec.md §4.7).
		args := make([]ast.Node, len(n.Children))
		args[0] = a.node(n.Children[0])
		for i := 1; i < len(n.Children); i++ {
			term := a.node(n.Children[i])
			args[i] = ast.NewCall("Times", n.Children[i].Span(), ast.NewSymbol("-1", n.Op.Span), term)
		}
		return ast.NewCall("Plus", n.Bounds, args...)
	}

	head, ok := opHeads[n.Op.Kind]
	if !ok {
		a.addIssue("unsupported-operator", n.Bounds, "unsupported operator %q", n.Op.Text)
		return a.unsupported(n.Bounds, "UnsupportedOperator")
	}
	args := make([]ast.Node, len(n.Children))
	for i, c := range n.Children {
		args[i] = a.node(c)
	}
	return ast.NewCall(head, n.Bounds, args...)
}

// inequalityChain rewrites a mixed-operator comparison chain into one
// Inequality call recording operands and comparator symbols
// interleaved, collapsing a homogeneous chain back to its single head
// when every operator in the chain matches (spec.md §4.5, §4.7).
func (a *abstractor) inequalityChain(n *cst.Infix) ast.Node {
	allSame := true
	for i := 1; i < len(n.Ops); i++ {
		if n.Ops[i].Kind != n.Ops[0].Kind {
			allSame = false
			break
		}
	}
	if allSame {
		head, ok := inequalityHeads[n.Ops[0].Kind]
		if ok {
			args := make([]ast.Node, len(n.Children))
			for i, c := range n.Children {
				args[i] = a.node(c)
			}
			return ast.NewCall(head, n.Bounds, args...)
		}
	}

	args := make([]ast.Node, 0, 2*len(n.Children)-1)
	args = append(args, a.node(n.Children[0]))
	for i, op := range n.Ops {
		head, ok := inequalityHeads[op.Kind]
		if !ok {
			head = "UnsupportedOperator"
			a.addIssue("unsupported-operator", op.Span, "unsupported comparison operator %q", op.Text)
		}
		args = append(args, ast.NewSymbol(head, op.Span), a.node(n.Children[i+1]))
	}
	return ast.NewCall("Inequality", n.Bounds, args...)
}

func (a *abstractor) ternary(n *cst.Ternary) ast.Node {
	aNode, bNode, cNode := a.node(n.A), a.node(n.B), a.node(n.C)
	return ast.NewCall("PatternTest", n.Bounds, ast.NewCall("Pattern", cst.Cover(n.A, n.B), aNode, bNode), cNode)
}

func (a *abstractor) group(n *cst.Group) ast.Node {
	head := groupHead(n.Open.Kind)
	args := make([]ast.Node, len(n.Children))
	for i, c := range n.Children {
		args[i] = a.node(c)
	}
	return ast.NewCall(head, n.Bounds, args...)
}

func groupHead(open token.Kind) string {
	switch open {
	case token.OpenParen:
		return "Parenthesized"
	case token.OpenSquare:
		return "List" // bracket grouping used as a generic sequence in this grammar's CST
	case token.OpenCurly:
		return "List"
	case token.LessBar:
		return "Association"
	case token.LeftAngleBracketLong:
		return "AngleBracket"
	case token.LeftCeilingLong:
		return "Ceiling"
	case token.LeftFloorLong:
		return "Floor"
	case token.LeftDoubleBracketLong:
		return "Part"
	case token.LeftBracketingBarLong:
		return "BracketingBar"
	case token.LeftDoubleBracketingBarLong:
		return "DoubleBracketingBar"
	case token.LeftAssociationLong:
		return "Association"
	default:
		return "UnsupportedOperator"
	}
}

func (a *abstractor) call(n *cst.Call) ast.Node {
	head := a.node(n.Head)
	args := make([]ast.Node, len(n.Args.Children))
	for i, c := range n.Args.Children {
		args[i] = a.node(c)
	}
	return &ast.Call{Head: head, Args: args, Meta: ast.AstMetadata{Span: n.Bounds}}
}

// compound rewrites the fixed-shape multi-token CST constructs (spec.md
// §4.7's desugaring table for patterns, slots, tag rules, compound
// assignment, and message names).
func (a *abstractor) compound(n *cst.Compound) ast.Node {
	switch n.Tag {
	case "Blank", "BlankSequence", "BlankNullSequence":
		if len(n.Children) == 1 {
			return ast.NewCall(n.Tag, n.Bounds, a.node(n.Children[0]))
		}
		return ast.NewCall(n.Tag, n.Bounds)

	case "NamedBlank", "NamedBlankSequence", "NamedBlankNullSequence":
		blankTag := "Blank"
		switch n.Tag {
		case "NamedBlankSequence":
			blankTag = "BlankSequence"
		case "NamedBlankNullSequence":
			blankTag = "BlankNullSequence"
		}
		name := a.node(n.Children[0])
		var blank ast.Node
		if len(n.Children) == 2 {
			blank = ast.NewCall(blankTag, n.Bounds, a.node(n.Children[1]))
		} else {
			blank = ast.NewCall(blankTag, n.Bounds)
		}
		return ast.NewCall("Pattern", n.Bounds, name, blank)

	case "Slot", "SlotSequence":
		if len(n.Children) == 1 {
			return ast.NewCall(n.Tag, n.Bounds, a.node(n.Children[0]))
		}
		return ast.NewCall(n.Tag, n.Bounds)

	case "Out", "Out2":
		head := "Out"
		if len(n.Children) == 1 {
			return ast.NewCall(head, n.Bounds, a.node(n.Children[0]))
		}
		return ast.NewCall(head, n.Bounds)

	case "MessageName":
		return ast.NewCall("MessageName", n.Bounds, a.node(n.Children[0]), a.node(n.Children[1]))

	case "Set", "SetDelayed", "AddTo", "SubtractFrom", "TimesBy", "DivideBy":
		return ast.NewCall(n.Tag, n.Bounds, a.node(n.Children[0]), a.node(n.Children[1]))

	case "TagSet", "TagSetDelayed":
		return ast.NewCall(n.Tag, n.Bounds, a.node(n.Children[0]), a.node(n.Children[1]), a.node(n.Children[2]))

	case "TagUnset":
		return ast.NewCall(n.Tag, n.Bounds, a.node(n.Children[0]), a.node(n.Children[1]))

	case "Unset":
		return ast.NewCall("Unset", n.Bounds, a.node(n.Children[0]))

	case "Get":
		return ast.NewCall("Get", n.Bounds, a.node(n.Children[0]))

	case "Put", "PutAppend":
		return ast.NewCall(n.Tag, n.Bounds, a.node(n.Children[0]), a.node(n.Children[1]))

	case "Integrate":
		variable := n.Children[1]
		if d, ok := variable.(*cst.Prefix); ok && d.Op.Kind == token.LongNameDifferentialD {
			variable = d.Child
		}
		return ast.NewCall("Integrate", n.Bounds, a.node(n.Children[0]), a.node(variable))

	default:
		a.addIssue("unsupported-operator", n.Bounds, "unsupported construct %q", n.Tag)
		return a.unsupported(n.Bounds, "UnsupportedOperator")
	}
}
