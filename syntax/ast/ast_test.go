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

package ast

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/exprsyntax/langparse/syntax/token"
)

func TestHeadNameOfPlainCall(t *testing.T) {
	call := NewCall("Plus", token.Span{}, NewSymbol("a", token.Span{}), NewSymbol("b", token.Span{}))
	name, ok := HeadName(call)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(name, "Plus"))
}

func TestHeadNameOfComputedHeadIsNotOK(t *testing.T) {
	inner := NewCall("f", token.Span{})
	outer := &Call{Head: inner, Meta: AstMetadata{}}
	_, ok := HeadName(outer)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestHeadNameOfLeafIsNotOK(t *testing.T) {
	_, ok := HeadName(NewSymbol("x", token.Span{}))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestIsSyntaxErrorRecognizesBothEscapeHatches(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsSyntaxError(NewCall("SyntaxError", token.Span{}))))
	qt.Assert(t, qt.IsTrue(IsSyntaxError(NewCall("UnsupportedOperator", token.Span{}))))
	qt.Assert(t, qt.IsFalse(IsSyntaxError(NewCall("Plus", token.Span{}))))
	qt.Assert(t, qt.IsFalse(IsSyntaxError(NewSymbol("x", token.Span{}))))
}

func TestLeafKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(LeafSymbol.String(), "Symbol"))
	qt.Assert(t, qt.Equals(LeafKind(99).String(), "LeafKind(?)"))
}

func TestWalkVisitsHeadAndArgs(t *testing.T) {
	call := NewCall("Plus", token.Span{}, NewSymbol("a", token.Span{}), NewSymbol("b", token.Span{}))
	var seen []string
	Walk(call, func(n Node) bool {
		if name, ok := HeadName(n); ok {
			seen = append(seen, name)
		} else if leaf, ok := n.(*Leaf); ok {
			seen = append(seen, leaf.Text)
		}
		return true
	}, nil)
	qt.Assert(t, qt.DeepEquals(seen, []string{"Plus", "Plus", "a", "b"}))
}

func TestWalkVisitorStopsDescentWhenBeforeReturnsNil(t *testing.T) {
	call := NewCall("Plus", token.Span{}, NewSymbol("a", token.Span{}))
	var visited int
	WalkVisitor(call, stubVisitor{count: &visited})
	qt.Assert(t, qt.Equals(visited, 1))
}

type stubVisitor struct{ count *int }

func (v stubVisitor) Before(Node) Visitor { *v.count++; return nil }
func (v stubVisitor) After(Node)          {}
