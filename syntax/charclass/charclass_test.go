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

package charclass

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/exprsyntax/langparse/syntax/token"
)

func TestLetterlikeStartAndContinue(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsLetterlikeStart('x')))
	qt.Assert(t, qt.IsTrue(IsLetterlikeStart('$')))
	qt.Assert(t, qt.IsFalse(IsLetterlikeStart('1')))
	qt.Assert(t, qt.IsFalse(IsLetterlikeStart('_')))

	qt.Assert(t, qt.IsTrue(IsLetterlikeContinue('1')))
	qt.Assert(t, qt.IsTrue(IsLetterlikeContinue('`')))
	qt.Assert(t, qt.IsFalse(IsLetterlikeContinue('_')))
}

func TestIsBaseDigit(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsBaseDigit('f', 16)))
	qt.Assert(t, qt.IsFalse(IsBaseDigit('g', 16)))
	qt.Assert(t, qt.IsTrue(IsBaseDigit('1', 2)))
	qt.Assert(t, qt.IsFalse(IsBaseDigit('2', 2)))
}

func TestIsWhitespaceExcludesNewlines(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsWhitespace(' ')))
	qt.Assert(t, qt.IsTrue(IsWhitespace('\t')))
	qt.Assert(t, qt.IsFalse(IsWhitespace('\n')))
	qt.Assert(t, qt.IsTrue(IsNewline('\n')))
	qt.Assert(t, qt.IsTrue(IsNewline('\r')))
}

func TestIsOperatorStart(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsOperatorStart('+')))
	qt.Assert(t, qt.IsTrue(IsOperatorStart('_')))
	qt.Assert(t, qt.IsFalse(IsOperatorStart('x')))
}

func TestLookupLongNameStandaloneOperator(t *testing.T) {
	e, ok := LookupLongName("Element")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(e.Rune, '∈'))
	qt.Assert(t, qt.Equals(e.Kind, token.LongNameElement))
}

func TestLookupLongNameDecodeOnly(t *testing.T) {
	e, ok := LookupLongName("Alpha")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(e.Rune, 'α'))
	qt.Assert(t, qt.Equals(e.Kind, token.Illegal))
}

func TestLookupLongNameUnknown(t *testing.T) {
	_, ok := LookupLongName("NotARealName")
	qt.Assert(t, qt.IsFalse(ok))
}
