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

package token

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestFileLineColumn(t *testing.T) {
	src := "ab\ncde\nf"
	f := NewFile("t.txt", len(src), LineColumn)
	for i, c := range src {
		if c == '\n' {
			f.AddLine(i + 1)
		}
	}

	pos := f.Pos(4) // 'd' in "cde"
	got := f.Position(pos)
	qt.Assert(t, qt.Equals(got.Line, 2))
	qt.Assert(t, qt.Equals(got.Column, 2))
	qt.Assert(t, qt.Equals(got.CharIdx, 4))
}

func TestFileCharacterIndex(t *testing.T) {
	src := "ab\ncde"
	f := NewFile("t.txt", len(src), CharacterIndex)
	pos := f.Pos(3)
	got := f.Position(pos)
	qt.Assert(t, qt.Equals(got.Line, 0))
	qt.Assert(t, qt.Equals(got.CharIdx, 3))
}

func TestPosCompareOrdersNoPosLast(t *testing.T) {
	f := NewFile("t.txt", 10, LineColumn)
	p := f.Pos(3)
	qt.Assert(t, qt.Equals(p.Compare(NoPos), -1))
	qt.Assert(t, qt.Equals(NoPos.Compare(p), +1))
}

func TestSpanCover(t *testing.T) {
	f := NewFile("t.txt", 10, LineColumn)
	a := Span{Start: f.Pos(1), End: f.Pos(3)}
	b := Span{Start: f.Pos(2), End: f.Pos(5)}
	got := a.Cover(b)
	qt.Assert(t, qt.Equals(got.Start, f.Pos(1)))
	qt.Assert(t, qt.Equals(got.End, f.Pos(5)))

	var zero Span
	qt.Assert(t, qt.Equals(zero.Cover(a), a))
}

func TestNewImplicitTimesIsSynthetic(t *testing.T) {
	f := NewFile("t.txt", 10, LineColumn)
	tok := NewImplicitTimes(f.Pos(4))
	qt.Assert(t, qt.Equals(tok.Kind, FakeImplicitTimes))
	qt.Assert(t, qt.IsTrue(tok.Flags.Has(Synthetic)))
}
