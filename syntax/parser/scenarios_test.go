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

package parser_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/exprsyntax/langparse/syntax/ast"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/parser"
	"github.com/exprsyntax/langparse/syntax/quirks"
)

func parseOne(t *testing.T, src string) (ast.Node, *errors.List) {
	t.Helper()
	issues := &errors.List{}
	node := parser.ParseAST("t.txt", []byte(src), issues, quirks.Default())
	return node, issues
}

func TestScenarioImplicitMultiplication(t *testing.T) {
	node, issues := parseOne(t, "2x")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, ok := ast.HeadName(node)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(head, "Times"))
}

func TestScenarioOperatorPrecedence(t *testing.T) {
	node, issues := parseOne(t, "1 + 2*3")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Plus"))
	call := node.(*ast.Call)
	qt.Assert(t, qt.Equals(len(call.Args), 2))
	innerHead, _ := ast.HeadName(call.Args[1])
	qt.Assert(t, qt.Equals(innerHead, "Times"))
}

func TestScenarioInequalityChain(t *testing.T) {
	node, issues := parseOne(t, "a < b <= c")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Inequality"))
}

func TestScenarioHomogeneousComparisonCollapses(t *testing.T) {
	node, issues := parseOne(t, "a < b < c")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Less"))
	call := node.(*ast.Call)
	qt.Assert(t, qt.Equals(len(call.Args), 3))
}

func TestScenarioPatternDefinition(t *testing.T) {
	node, issues := parseOne(t, "f[x_Integer] := x + 1")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "SetDelayed"))
}

func TestScenarioUnterminatedGroupRecovers(t *testing.T) {
	node, issues := parseOne(t, "f[x, y")
	qt.Assert(t, qt.IsTrue(issues.HasErrors()))
	qt.Assert(t, qt.IsFalse(node == nil))
}

func TestMessageName(t *testing.T) {
	node, issues := parseOne(t, "General::err")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "MessageName"))
}

func TestTagSet(t *testing.T) {
	node, issues := parseOne(t, "x /: f[x] = 1")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "TagSet"))
}

func TestTagUnsetConsumesTrailingDot(t *testing.T) {
	node, issues := parseOne(t, "a /: b =.")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "TagUnset"))
}

func TestBareUnset(t *testing.T) {
	node, issues := parseOne(t, "x =.")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Unset"))
}

func TestParenthesizedCallIsImplicitTimes(t *testing.T) {
	node, issues := parseOne(t, "(a)(b)")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Times"))
}

func TestNamedSlotStringifies(t *testing.T) {
	node, issues := parseOne(t, "#name")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Slot"))
	call := node.(*ast.Call)
	arg := call.Args[0].(*ast.Leaf)
	qt.Assert(t, qt.Equals(arg.Kind, ast.LeafString))
	qt.Assert(t, qt.Equals(arg.Text, "name"))
}

func TestNumericSlotStaysInteger(t *testing.T) {
	node, issues := parseOne(t, "#1")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Slot"))
	call := node.(*ast.Call)
	arg := call.Args[0].(*ast.Leaf)
	qt.Assert(t, qt.Equals(arg.Kind, ast.LeafInteger))
	qt.Assert(t, qt.Equals(arg.Text, "1"))
}

func TestFileStringifyGet(t *testing.T) {
	node, issues := parseOne(t, "<<foo.m")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Get"))
	call := node.(*ast.Call)
	arg := call.Args[0].(*ast.Leaf)
	qt.Assert(t, qt.Equals(arg.Kind, ast.LeafString))
	qt.Assert(t, qt.Equals(arg.Text, "foo.m"))
}

func TestFileStringifyPut(t *testing.T) {
	node, issues := parseOne(t, "x>>foo.m")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "Put"))
}

func TestFileStringifyPutAppend(t *testing.T) {
	node, issues := parseOne(t, "x>>>foo.m")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	head, _ := ast.HeadName(node)
	qt.Assert(t, qt.Equals(head, "PutAppend"))
}

func TestLoneOpenerIsFatalMissingCloser(t *testing.T) {
	node, issues := parseOne(t, "(")
	qt.Assert(t, qt.IsTrue(issues.HasFatal()))
	qt.Assert(t, qt.IsTrue(ast.IsSyntaxError(node)))
	call := node.(*ast.Call)
	qt.Assert(t, qt.Equals(call.Meta.SourceHint, "MissingCloser"))
}

func TestMidStreamInvalidUTF8IsFatal(t *testing.T) {
	src := append([]byte("x + "), 0xff)
	issues := &errors.List{}
	parser.ParseAST("t.txt", src, issues, quirks.Default())
	qt.Assert(t, qt.IsTrue(issues.HasFatal()))
}

func TestTokenizeReportsUnsafeEncoding(t *testing.T) {
	src := append([]byte("x + "), 0xff)
	issues := &errors.List{}
	parser.Tokenize("t.txt", src, issues)
	qt.Assert(t, qt.IsTrue(issues.HasFatal()))
}
