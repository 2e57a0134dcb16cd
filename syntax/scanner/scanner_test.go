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

package scanner

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/source"
	"github.com/exprsyntax/langparse/syntax/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *errors.List) {
	t.Helper()
	file := token.NewFile("t.txt", len(src), token.LineColumn)
	issues := &errors.List{}
	s := &Scanner{}
	s.Init(file, []byte(src), issues, source.DefaultOptions())

	var toks []token.Token
	for {
		tok := s.NextToken()
		if tok.Kind.IsTrivia() {
			continue
		}
		toks = append(toks, tok)
		if tok.Kind == token.EndOfFile {
			break
		}
	}
	return toks, issues
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanArithmetic(t *testing.T) {
	toks, issues := scanAll(t, "1 + 2*x")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	qt.Assert(t, qt.DeepEquals(kinds(toks), []token.Kind{
		token.Integer, token.Plus, token.Integer, token.Star, token.Symbol, token.EndOfFile,
	}))
}

func TestScanMaximalMunch(t *testing.T) {
	toks, _ := scanAll(t, "a===b")
	qt.Assert(t, qt.DeepEquals(kinds(toks), []token.Kind{
		token.Symbol, token.EqualEqualEqual, token.Symbol, token.EndOfFile,
	}))
}

func TestScanUnderDotVsUnderDotDot(t *testing.T) {
	toks, _ := scanAll(t, "x_.")
	qt.Assert(t, qt.DeepEquals(kinds(toks), []token.Kind{token.Symbol, token.UnderDot, token.EndOfFile}))

	toks2, _ := scanAll(t, "x_..3")
	qt.Assert(t, qt.DeepEquals(kinds(toks2), []token.Kind{token.Symbol, token.Under, token.DotDot, token.Integer, token.EndOfFile}))
}

func TestScanNumberBaseForm(t *testing.T) {
	toks, issues := scanAll(t, "16^^ff")
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	qt.Assert(t, qt.DeepEquals(kinds(toks), []token.Kind{token.Integer, token.EndOfFile}))
	qt.Assert(t, qt.Equals(toks[0].Text, "16^^ff"))
}

func TestScanString(t *testing.T) {
	toks, issues := scanAll(t, `"hello \[Alpha] world"`)
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	qt.Assert(t, qt.DeepEquals(kinds(toks), []token.Kind{token.String, token.EndOfFile}))
}

func TestScanUnterminatedString(t *testing.T) {
	toks, issues := scanAll(t, `"never closed`)
	qt.Assert(t, qt.Equals(toks[0].Kind, token.ErrorUnterminatedString))
	qt.Assert(t, qt.IsTrue(issues.HasErrors()))
}

func TestScanLongNameOperator(t *testing.T) {
	toks, issues := scanAll(t, `a \[Element] b`)
	qt.Assert(t, qt.Equals(issues.HasErrors(), false))
	qt.Assert(t, qt.DeepEquals(kinds(toks), []token.Kind{token.Symbol, token.LongNameElement, token.Symbol, token.EndOfFile}))
}

func TestScanUnrecognizedLongName(t *testing.T) {
	_, issues := scanAll(t, `\[NotARealName]`)
	qt.Assert(t, qt.IsTrue(issues.HasErrors()))
}

func TestReparseUnterminatedExtendsToEOF(t *testing.T) {
	src := `"abc`
	file := token.NewFile("t.txt", len(src), token.LineColumn)
	toks, _ := scanAll(t, src)
	got := ReparseUnterminated(file, []byte(src), toks[0])
	qt.Assert(t, qt.Equals(got.Text, `"abc`))
	qt.Assert(t, qt.IsTrue(got.Flags.Has(token.Unterminated)))
}
