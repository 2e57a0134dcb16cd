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

	"github.com/exprsyntax/langparse/syntax/aggregate"
	"github.com/exprsyntax/langparse/syntax/ast"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/langparsetest"
	"github.com/exprsyntax/langparse/syntax/parser"
	"github.com/exprsyntax/langparse/syntax/quirks"
)

// TestPropertyNeverPanics exercises a battery of pathological inputs:
// every call must return a tree, never panic, regardless of how
// malformed the source is.
func TestPropertyNeverPanics(t *testing.T) {
	inputs := []string{
		"", "(", ")", "]", "{", "[[[[[[[[[[", "1+", "+", "_", "__x_",
		`"unterminated`, "(* unterminated comment", "a::", "/:", "a /: b",
		"1 2 3 4 5", "a<b>c<d", "f[,]", "f[1,,2]", "\x00\x01", "\\[",
		"\\[NotAName]", "2^^2", "99^^0", "x_.._",
	}
	for _, in := range inputs {
		issues := &errors.List{}
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("panic parsing %q: %v", in, r)
				}
			}()
			node := parser.ParseAST("t.txt", []byte(in), issues, quirks.Default())
			qt.Assert(t, qt.IsFalse(node == nil), qt.Commentf("input %q", in))
		}()
	}
}

// TestPropertyAggregateIsIdempotent checks spec.md §8 property 3:
// normalizing an already-normalized tree changes nothing further.
func TestPropertyAggregateIsIdempotent(t *testing.T) {
	inputs := []string{"(((1)))", "f[(x)]", "(a+b)*(c)", "((a))"}
	for _, in := range inputs {
		issues := &errors.List{}
		tree := parser.ParseCST("t.txt", []byte(in), issues)
		once := aggregate.Normalize(tree)
		twice := aggregate.Normalize(once)
		qt.Assert(t, qt.Equals(langparsetest.Dump(once), langparsetest.Dump(twice)), qt.Commentf("input %q", in))
	}
}

// TestPropertyDeepNestingRecovers exercises spec.md §7 scenario 6: a
// pathologically deep group nesting recovers via a StackOverflow node
// rather than exhausting the Go call stack.
func TestPropertyDeepNestingRecovers(t *testing.T) {
	src := make([]byte, 0, 2000)
	for i := 0; i < 1000; i++ {
		src = append(src, '(')
	}
	issues := &errors.List{}
	node := parser.ParseAST("t.txt", src, issues, quirks.Default())
	qt.Assert(t, qt.IsFalse(node == nil))
	qt.Assert(t, qt.IsTrue(issues.HasFatal() || issues.HasErrors()))
}

// TestPropertyUnsupportedFallsBackTotal checks spec.md §8 property 4:
// abstraction is total — unrecognized CST shapes still produce an AST
// node rather than failing the whole parse.
func TestPropertyUnsupportedFallsBackTotal(t *testing.T) {
	issues := &errors.List{}
	node := parser.ParseAST("t.txt", []byte("%^&"), issues, quirks.Default())
	qt.Assert(t, qt.IsFalse(node == nil))
	head, ok := ast.HeadName(node)
	if ok && (head == "Times" || head == "SyntaxError" || head == "UnsupportedOperator") {
		return
	}
	t.Fatalf("unexpected head %q for %q", head, "%^&")
}
