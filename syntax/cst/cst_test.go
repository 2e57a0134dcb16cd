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

package cst

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/exprsyntax/langparse/syntax/token"
)

var testFile = token.NewFile("t.txt", 100, token.LineColumn)

func leafAt(start, end int) *Leaf {
	return &Leaf{Tok: token.Token{Span: token.Span{
		Start: testFile.Pos(start),
		End:   testFile.Pos(end),
	}}}
}

func TestCoverSpansAllChildren(t *testing.T) {
	a := leafAt(0, 1)
	b := leafAt(5, 9)
	sp := Cover(a, b)
	qt.Assert(t, qt.Equals(sp.Start.Offset(), 0))
	qt.Assert(t, qt.Equals(sp.End.Offset(), 9))
}

func TestCoverSkipsNilNodes(t *testing.T) {
	a := leafAt(2, 4)
	sp := Cover(nil, a, nil)
	qt.Assert(t, qt.Equals(sp.Start.Offset(), 2))
	qt.Assert(t, qt.Equals(sp.End.Offset(), 4))
}

func TestSyntaxErrorKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(StackOverflow.String(), "StackOverflow"))
	qt.Assert(t, qt.Equals(SyntaxErrorKind(99).String(), "SyntaxError(?)"))
}
