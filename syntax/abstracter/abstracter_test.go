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

package abstracter_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/exprsyntax/langparse/syntax/abstracter"
	"github.com/exprsyntax/langparse/syntax/ast"
	"github.com/exprsyntax/langparse/syntax/cst"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/quirks"
	"github.com/exprsyntax/langparse/syntax/token"
)

var testFile = token.NewFile("t.txt", 100, token.LineColumn)

func symbol(name string) *cst.Leaf {
	return &cst.Leaf{Tok: token.Token{Kind: token.Symbol, Text: name, Span: token.Span{Start: testFile.Pos(0), End: testFile.Pos(len(name))}}}
}

func opTok(kind token.Kind, text string) token.Token {
	return token.Token{Kind: kind, Text: text, Span: token.Span{Start: testFile.Pos(0), End: testFile.Pos(len(text))}}
}

func TestColonDesugarsToOptionalByDefault(t *testing.T) {
	n := &cst.Binary{Op: opTok(token.Colon, ":"), LHS: symbol("x"), RHS: symbol("y")}
	got := abstracter.Abstract(n, &errors.List{}, quirks.Default())
	head, ok := ast.HeadName(got)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(head, "Optional"))
}

func TestColonDesugarsToPatternWhenQuirkDisabled(t *testing.T) {
	n := &cst.Binary{Op: opTok(token.Colon, ":"), LHS: symbol("x"), RHS: symbol("y")}
	got := abstracter.Abstract(n, &errors.List{}, quirks.Settings{})
	head, _ := ast.HeadName(got)
	qt.Assert(t, qt.Equals(head, "Pattern"))
}

func TestMixedInequalityChainBuildsInequalityCall(t *testing.T) {
	n := &cst.Infix{
		Ops:      []token.Token{opTok(token.Less, "<"), opTok(token.LessEqual, "<=")},
		Children: []cst.Node{symbol("a"), symbol("b"), symbol("c")},
	}
	got := abstracter.Abstract(n, &errors.List{}, quirks.Default())
	head, _ := ast.HeadName(got)
	qt.Assert(t, qt.Equals(head, "Inequality"))
	call := got.(*ast.Call)
	qt.Assert(t, qt.Equals(len(call.Args), 5)) // a, Less, b, LessEqual, c
}

func TestHomogeneousInequalityChainCollapses(t *testing.T) {
	n := &cst.Infix{
		Ops:      []token.Token{opTok(token.Less, "<"), opTok(token.Less, "<")},
		Children: []cst.Node{symbol("a"), symbol("b"), symbol("c")},
	}
	got := abstracter.Abstract(n, &errors.List{}, quirks.Default())
	head, _ := ast.HeadName(got)
	qt.Assert(t, qt.Equals(head, "Less"))
	call := got.(*ast.Call)
	qt.Assert(t, qt.Equals(len(call.Args), 3))
}

func TestUnaryMinusDesugarsToTimesNegativeOne(t *testing.T) {
	n := &cst.Prefix{Op: opTok(token.Minus, "-"), Child: symbol("x")}
	got := abstracter.Abstract(n, &errors.List{}, quirks.Default())
	head, _ := ast.HeadName(got)
	qt.Assert(t, qt.Equals(head, "Times"))
	call := got.(*ast.Call)
	lit, ok := call.Args[0].(*ast.Leaf)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(lit.Text, "-1"))
}

func TestDivisionDesugarsToTimesPower(t *testing.T) {
	n := &cst.Binary{Op: opTok(token.Slash, "/"), LHS: symbol("a"), RHS: symbol("b")}
	got := abstracter.Abstract(n, &errors.List{}, quirks.Default())
	head, _ := ast.HeadName(got)
	qt.Assert(t, qt.Equals(head, "Times"))
	call := got.(*ast.Call)
	innerHead, _ := ast.HeadName(call.Args[1])
	qt.Assert(t, qt.Equals(innerHead, "Power"))
}

func TestNamedBlankDesugarsToPatternOfBlank(t *testing.T) {
	n := &cst.Compound{Tag: "NamedBlank", Children: []cst.Node{symbol("x"), symbol("Integer")}}
	got := abstracter.Abstract(n, &errors.List{}, quirks.Default())
	head, _ := ast.HeadName(got)
	qt.Assert(t, qt.Equals(head, "Pattern"))
	call := got.(*ast.Call)
	name, _ := ast.HeadName(call.Args[0])
	qt.Assert(t, qt.Equals(name, ""))
	nameLeaf, ok := call.Args[0].(*ast.Leaf)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(nameLeaf.Text, "x"))
	blankHead, _ := ast.HeadName(call.Args[1])
	qt.Assert(t, qt.Equals(blankHead, "Blank"))
}

func TestUnrecognizedCompoundFallsBackToUnsupportedOperator(t *testing.T) {
	n := &cst.Compound{Tag: "SomethingNeverHandled"}
	issues := &errors.List{}
	got := abstracter.Abstract(n, issues, quirks.Default())
	qt.Assert(t, qt.IsTrue(ast.IsSyntaxError(got)))
	qt.Assert(t, qt.IsTrue(issues.HasErrors()))
}
