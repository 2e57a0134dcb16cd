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

package aggregate_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/exprsyntax/langparse/syntax/aggregate"
	"github.com/exprsyntax/langparse/syntax/cst"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/langparsetest"
	"github.com/exprsyntax/langparse/syntax/parser"
)

func parseTree(t *testing.T, src string) cst.Node {
	t.Helper()
	issues := &errors.List{}
	return parser.ParseCST("t.txt", []byte(src), issues)
}

func TestNormalizeCollapsesRedundantParens(t *testing.T) {
	tree := parseTree(t, "(1)")
	_, isLeaf := tree.(*cst.Leaf)
	qt.Assert(t, qt.IsTrue(isLeaf))
}

func TestNormalizeCollapsesNestedParens(t *testing.T) {
	tree := parseTree(t, "((1))")
	_, isLeaf := tree.(*cst.Leaf)
	qt.Assert(t, qt.IsTrue(isLeaf))
}

func TestNormalizeDoesNotCollapseCallArguments(t *testing.T) {
	tree := parseTree(t, "f[x]")
	call, ok := tree.(*cst.Call)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(len(call.Args.Children), 1))
}

func TestNormalizeKeepsMultiElementGroup(t *testing.T) {
	tree := parseTree(t, "{1, 2}")
	group, ok := tree.(*cst.Group)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(len(group.Children), 2))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	issues := &errors.List{}
	raw := parser.ParseCST("t.txt", []byte("(a+b)*(c)"), issues)
	once := aggregate.Normalize(raw)
	twice := aggregate.Normalize(once)
	qt.Assert(t, qt.Equals(langparsetest.Dump(once), langparsetest.Dump(twice)))
}

func TestNormalizeNilIsNil(t *testing.T) {
	qt.Assert(t, qt.IsNil(aggregate.Normalize(nil)))
}
